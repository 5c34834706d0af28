// Package ledger is the transaction engine for one user's ledger: an
// append-only entry log that is the source of truth for account balances,
// plus the transfer processor that orchestrates multi-entry mutations
// against it.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/servisthird/coreledger/internal/model"
)

// Append validates entry, assigns the next transaction ID, applies the
// signed amount to the owning account, snapshots the running balance onto
// the entry, and appends it to the log. Ledger append and balance update
// are one logical operation; Append never leaves one without the other.
func Append(l *model.UserLedger, entry model.Transaction) (model.Transaction, error) {
	acct := l.Account(entry.AccountID)
	if acct == nil {
		return model.Transaction{}, fmt.Errorf("appending entry for %q: %w", entry.AccountID, ErrAccountNotFound)
	}
	if entry.Amount.IsZero() {
		return model.Transaction{}, fmt.Errorf("appending entry for %q: %w", entry.AccountID, ErrInvalidAmount)
	}
	if err := checkSign(entry); err != nil {
		return model.Transaction{}, err
	}
	return apply(l, acct, entry), nil
}

// Query returns entries newest-first by date, scoped to accountID when it
// is non-empty. Date ties keep insertion order. The returned slice is a
// copy; the log itself is never handed out.
func Query(l *model.UserLedger, accountID string) []model.Transaction {
	var out []model.Transaction
	for _, txn := range l.Transactions {
		if accountID == "" || txn.AccountID == accountID {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// TransferParams describes one transfer. An empty ToAccountID models an
// external debit (bill payment): only the debit leg is written.
type TransferParams struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Description   string
	Category      string
	Now           time.Time
}

// Transfer applies a transfer as an all-or-nothing pair of ledger entries.
// Every precondition is checked before the first entry is written, so a
// failed transfer leaves zero new entries and both balances untouched.
// Both legs share the description, category, instant, and a generated
// reference; the reference is returned.
func Transfer(l *model.UserLedger, p TransferParams) (string, error) {
	if !p.Amount.IsPositive() {
		return "", fmt.Errorf("transfer of %s: %w", p.Amount, ErrInvalidAmount)
	}
	from := l.Account(p.FromAccountID)
	if from == nil {
		return "", fmt.Errorf("transfer source %q: %w", p.FromAccountID, ErrAccountNotFound)
	}

	var to *model.Account
	if p.ToAccountID != "" {
		if p.ToAccountID == p.FromAccountID {
			return "", fmt.Errorf("transfer from %q: %w", p.FromAccountID, ErrSameAccount)
		}
		to = l.Account(p.ToAccountID)
		if to == nil {
			return "", fmt.Errorf("transfer destination %q: %w", p.ToAccountID, ErrAccountNotFound)
		}
	}

	if from.AvailableBalance.LessThan(p.Amount) {
		return "", fmt.Errorf("transfer of %s from %q: %w", p.Amount, p.FromAccountID, ErrInsufficientFunds)
	}

	category := p.Category
	if category == "" {
		category = "Transfer"
	}
	ref := uuid.New().String()

	apply(l, from, model.Transaction{
		AccountID:   from.AccountID,
		Date:        p.Now,
		Description: p.Description,
		Amount:      p.Amount.Neg(),
		Type:        model.TransactionTypeDebit,
		Category:    category,
		Status:      model.TransactionStatusCompleted,
		Reference:   ref,
	})
	if to != nil {
		apply(l, to, model.Transaction{
			AccountID:   to.AccountID,
			Date:        p.Now,
			Description: p.Description,
			Amount:      p.Amount,
			Type:        model.TransactionTypeCredit,
			Category:    category,
			Status:      model.TransactionStatusCompleted,
			Reference:   ref,
		})
	}
	return ref, nil
}

// Deposit credits amount to an account through the normal append path.
func Deposit(l *model.UserLedger, accountID string, amount decimal.Decimal, description, category string, now time.Time) (model.Transaction, error) {
	if !amount.IsPositive() {
		return model.Transaction{}, fmt.Errorf("deposit of %s: %w", amount, ErrInvalidAmount)
	}
	return Append(l, model.Transaction{
		AccountID:   accountID,
		Date:        now,
		Description: description,
		Amount:      amount,
		Type:        model.TransactionTypeCredit,
		Category:    category,
		Status:      model.TransactionStatusCompleted,
	})
}

// Withdraw debits amount from an account, refusing to overdraw it.
func Withdraw(l *model.UserLedger, accountID string, amount decimal.Decimal, description, category string, now time.Time) (model.Transaction, error) {
	if !amount.IsPositive() {
		return model.Transaction{}, fmt.Errorf("withdrawal of %s: %w", amount, ErrInvalidAmount)
	}
	acct := l.Account(accountID)
	if acct == nil {
		return model.Transaction{}, fmt.Errorf("withdrawal from %q: %w", accountID, ErrAccountNotFound)
	}
	if acct.AvailableBalance.LessThan(amount) {
		return model.Transaction{}, fmt.Errorf("withdrawal of %s from %q: %w", amount, accountID, ErrInsufficientFunds)
	}
	return Append(l, model.Transaction{
		AccountID:   accountID,
		Date:        now,
		Description: description,
		Amount:      amount.Neg(),
		Type:        model.TransactionTypeDebit,
		Category:    category,
		Status:      model.TransactionStatusCompleted,
	})
}

// apply performs the actual write. Callers have already validated; apply
// cannot fail, which is what makes multi-leg operations atomic.
func apply(l *model.UserLedger, acct *model.Account, entry model.Transaction) model.Transaction {
	l.NextTxnSeq++
	entry.TransactionID = fmt.Sprintf("TXN-%06d", l.NextTxnSeq)

	acct.Balance = acct.Balance.Add(entry.Amount)
	acct.AvailableBalance = acct.AvailableBalance.Add(entry.Amount)
	entry.Balance = acct.Balance

	l.Transactions = append(l.Transactions, entry)
	l.LastUpdated = entry.Date
	return entry
}

func checkSign(entry model.Transaction) error {
	switch entry.Type {
	case model.TransactionTypeDebit:
		if entry.Amount.IsPositive() {
			return fmt.Errorf("debit %s: %w", entry.Amount, ErrAmountTypeMismatch)
		}
	case model.TransactionTypeCredit:
		if entry.Amount.IsNegative() {
			return fmt.Errorf("credit %s: %w", entry.Amount, ErrAmountTypeMismatch)
		}
	default:
		return fmt.Errorf("entry type %q: %w", entry.Type, ErrAmountTypeMismatch)
	}
	return nil
}
