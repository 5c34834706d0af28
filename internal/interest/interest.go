// Package interest computes day-prorated interest for savings accounts.
package interest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/servisthird/coreledger/internal/model"
)

var daysPerYear = decimal.NewFromInt(365)

// Accrue applies simple daily interest to a savings account for the whole
// days elapsed between its watermark and asOf, rounds to cents, and
// advances the watermark. Non-savings accounts and zero elapsed days
// return the account unchanged. Accrual adjusts the balance directly and
// deliberately writes no ledger entry; the running-sum invariant treats
// accrued interest as part of the baseline.
func Accrue(acct model.Account, asOf time.Time) model.Account {
	if acct.AccountType != model.AccountTypeSavings {
		return acct
	}

	since := acct.LastInterestDate
	if since.IsZero() {
		since = acct.OpenDate
	}
	if since.IsZero() || !asOf.After(since) {
		return acct
	}

	days := wholeDays(since, asOf)
	if days == 0 {
		return acct
	}

	rate := acct.InterestRate
	if rate.IsNegative() {
		// Rates are clamped at ingestion; a stray negative never shrinks
		// a balance here.
		return acct
	}

	interest := acct.Balance.
		Mul(rate).
		Div(daysPerYear).
		Mul(decimal.NewFromInt(days)).
		Round(2)
	if interest.IsZero() {
		acct.LastInterestDate = asOf
		return acct
	}

	acct.Balance = acct.Balance.Add(interest)
	acct.AvailableBalance = acct.AvailableBalance.Add(interest)
	acct.LastInterestDate = asOf
	return acct
}

func wholeDays(from, to time.Time) int64 {
	return int64(to.Sub(from).Hours() / 24)
}
