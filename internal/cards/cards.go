// Package cards implements the card status state machine.
//
// active and frozen are interchangeable; blocked (report lost/stolen) is
// terminal. Leaving active forces every control flag off, and unfreezing
// does not bring them back: controls must be re-enabled explicitly.
package cards

import (
	"errors"
	"fmt"

	"github.com/servisthird/coreledger/internal/model"
)

var (
	// ErrCardNotFound means a card ID did not resolve.
	ErrCardNotFound = errors.New("card not found")
	// ErrCardBlocked means the card is in the terminal blocked state.
	ErrCardBlocked = errors.New("card is blocked")
	// ErrCardNotFrozen means unfreeze was called on a card that is not frozen.
	ErrCardNotFrozen = errors.New("card is not frozen")
	// ErrCardNotActive means a control change was attempted outside active.
	ErrCardNotActive = errors.New("card is not active")
)

// Freeze moves an active card to frozen and drops all controls.
func Freeze(card model.Card) (model.Card, error) {
	switch card.Status {
	case model.CardStatusBlocked:
		return card, fmt.Errorf("freezing card %s: %w", card.ID, ErrCardBlocked)
	case model.CardStatusFrozen:
		return card, nil
	}
	card.Status = model.CardStatusFrozen
	card.Controls = model.CardControls{}
	return card, nil
}

// Unfreeze moves a frozen card back to active. Controls stay off.
func Unfreeze(card model.Card) (model.Card, error) {
	switch card.Status {
	case model.CardStatusBlocked:
		return card, fmt.Errorf("unfreezing card %s: %w", card.ID, ErrCardBlocked)
	case model.CardStatusActive:
		return card, fmt.Errorf("unfreezing card %s: %w", card.ID, ErrCardNotFrozen)
	}
	card.Status = model.CardStatusActive
	return card, nil
}

// ReportLost blocks a card permanently and drops all controls. Valid from
// active or frozen; reporting an already blocked card is a no-op.
func ReportLost(card model.Card) model.Card {
	card.Status = model.CardStatusBlocked
	card.Controls = model.CardControls{}
	return card
}

// SetControls replaces the control flags of an active card.
func SetControls(card model.Card, controls model.CardControls) (model.Card, error) {
	if card.Status != model.CardStatusActive {
		return card, fmt.Errorf("updating controls on card %s: %w", card.ID, ErrCardNotActive)
	}
	card.Controls = controls
	return card, nil
}
