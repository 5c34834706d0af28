package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a ledger entry. The sign of Amount
// and the type must always agree: debits are negative, credits positive.
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is one immutable, signed ledger entry for one account.
// Entries are append-only; once written they are never modified or
// deleted. Balance is a snapshot of the account's running balance after
// this entry applied, not recomputed later.
type Transaction struct {
	TransactionID string            `json:"transaction_id"`
	AccountID     string            `json:"account_id"`
	Date          time.Time         `json:"date"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"`
	Type          TransactionType   `json:"type"`
	Category      string            `json:"category"`
	Status        TransactionStatus `json:"status"`
	Balance       decimal.Decimal   `json:"balance"`
	Reference     string            `json:"reference,omitempty"` // correlates the legs of one transfer
}
