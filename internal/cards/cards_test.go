package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servisthird/coreledger/internal/model"
)

func activeCard() model.Card {
	return model.Card{
		ID:       "card-1",
		CardType: model.CardTypeDebit,
		Status:   model.CardStatusActive,
		Controls: model.CardControls{
			Contactless:               true,
			OnlineTransactions:        true,
			InternationalTransactions: true,
			ATMWithdrawals:            true,
		},
	}
}

func TestFreezeUnfreeze_ControlsStayOff(t *testing.T) {
	card := activeCard()

	frozen, err := Freeze(card)
	require.NoError(t, err)
	assert.Equal(t, model.CardStatusFrozen, frozen.Status)
	assert.Equal(t, model.CardControls{}, frozen.Controls)

	unfrozen, err := Unfreeze(frozen)
	require.NoError(t, err)
	assert.Equal(t, model.CardStatusActive, unfrozen.Status)
	// Conservative default: flags are not restored on unfreeze.
	assert.Equal(t, model.CardControls{}, unfrozen.Controls)
}

func TestFreeze_AlreadyFrozenNoOp(t *testing.T) {
	card := activeCard()
	card.Status = model.CardStatusFrozen

	got, err := Freeze(card)
	require.NoError(t, err)
	assert.Equal(t, model.CardStatusFrozen, got.Status)
}

func TestUnfreeze_ActiveFails(t *testing.T) {
	_, err := Unfreeze(activeCard())
	assert.ErrorIs(t, err, ErrCardNotFrozen)
}

func TestReportLost_Terminal(t *testing.T) {
	for _, start := range []model.CardStatus{model.CardStatusActive, model.CardStatusFrozen} {
		card := activeCard()
		card.Status = start

		blocked := ReportLost(card)
		assert.Equal(t, model.CardStatusBlocked, blocked.Status)
		assert.Equal(t, model.CardControls{}, blocked.Controls)

		// No transition leaves blocked.
		_, err := Freeze(blocked)
		assert.ErrorIs(t, err, ErrCardBlocked)
		_, err = Unfreeze(blocked)
		assert.ErrorIs(t, err, ErrCardBlocked)
		assert.Equal(t, model.CardStatusBlocked, ReportLost(blocked).Status)
	}
}

func TestSetControls(t *testing.T) {
	card := activeCard()
	card.Controls = model.CardControls{}

	got, err := SetControls(card, model.CardControls{Contactless: true})
	require.NoError(t, err)
	assert.True(t, got.Controls.Contactless)
	assert.False(t, got.Controls.OnlineTransactions)

	frozen, err := Freeze(got)
	require.NoError(t, err)
	_, err = SetControls(frozen, model.CardControls{Contactless: true})
	assert.ErrorIs(t, err, ErrCardNotActive)
}
