package ledger

import "errors"

// Sentinel errors for ledger operations. Callers match with errors.Is so
// the UI boundary can render a specific message per failure.
var (
	// ErrAccountNotFound means an account ID did not resolve.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAmount means an amount was zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds means the source account cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrSameAccount means a transfer named the same source and destination.
	ErrSameAccount = errors.New("source and destination are the same account")
	// ErrAmountTypeMismatch means an entry's sign disagrees with its type.
	ErrAmountTypeMismatch = errors.New("entry amount sign does not match its type")
)
