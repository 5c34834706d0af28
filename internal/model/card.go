package model

import "github.com/shopspring/decimal"

// CardType distinguishes debit from credit cards.
type CardType string

const (
	CardTypeDebit  CardType = "debit"
	CardTypeCredit CardType = "credit"
)

// CardStatus is the card state machine: active and frozen are
// interchangeable, blocked is terminal.
type CardStatus string

const (
	CardStatusActive  CardStatus = "active"
	CardStatusFrozen  CardStatus = "frozen"
	CardStatusBlocked CardStatus = "blocked"
)

// CardControls are the per-card feature switches. Leaving the active
// state forces all of them off.
type CardControls struct {
	Contactless               bool `json:"contactless"`
	OnlineTransactions        bool `json:"online_transactions"`
	InternationalTransactions bool `json:"international_transactions"`
	ATMWithdrawals            bool `json:"atm_withdrawals"`
}

// Card is a payment card attached to one of the user's accounts.
type Card struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	CardType  CardType        `json:"card_type"`
	LastFour  string          `json:"last_four"`
	Status    CardStatus      `json:"status"`
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Controls  CardControls    `json:"controls"`
}
