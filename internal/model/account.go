package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies the accounts a user can hold.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
	AccountTypeLoan     AccountType = "loan"
)

// AccountStatus is the lifecycle state of an account. Closed accounts are
// marked, never removed.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusClosed   AccountStatus = "closed"
)

// Account holds one balance for one user. Balance is authoritative: at any
// instant it equals the opening balance plus the signed sum of all ledger
// entries for the account, plus interest accrued since LastInterestDate.
type Account struct {
	AccountID        string          `json:"account_id"`
	UserID           string          `json:"user_id"`
	AccountType      AccountType     `json:"account_type"`
	AccountNumber    string          `json:"account_number"`
	AccountName      string          `json:"account_name"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	InterestRate     decimal.Decimal `json:"interest_rate"` // annualized, savings only
	CreditLimit      decimal.Decimal `json:"credit_limit"`   // credit/loan only
	Status           AccountStatus   `json:"status"`
	OpenDate         time.Time       `json:"open_date"`
	LastInterestDate time.Time       `json:"last_interest_date"` // accrual watermark
}
