// Package seed supplies the read-only reference data a new user's ledger
// is bootstrapped from: initial accounts, transactions, budget, cards,
// and payees. Seed data is consumed once per user and never re-read.
package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/servisthird/coreledger/internal/model"
)

// Data is one user's reference dataset. Account numbers are left blank
// here; the store assigns checksummed numbers at bootstrap.
type Data struct {
	Accounts     []model.Account
	Transactions []model.Transaction
	Budget       model.Budget
	Cards        []model.Card
	Payees       []model.Payee
}

// Source resolves reference data for a user identity.
type Source interface {
	ForUser(userID string) (Data, bool)
}

// DemoSource serves the built-in demo dataset to every user.
type DemoSource struct{}

// ForUser returns the demo dataset for any userID.
func (DemoSource) ForUser(string) (Data, bool) {
	return Demo(), true
}

// FileSource serves per-user datasets loaded from a YAML file keyed by
// userID.
type FileSource struct {
	users map[string]Data
}

// LoadFile reads a YAML seed file mapping userID to reference data.
// Monetary values are written as strings in the file and parsed here.
func LoadFile(path string) (*FileSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var parsed map[string]fileData
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	users := make(map[string]Data, len(parsed))
	for userID, fd := range parsed {
		data, err := fd.toData()
		if err != nil {
			return nil, fmt.Errorf("seed for user %q: %w", userID, err)
		}
		users[userID] = data
	}
	return &FileSource{users: users}, nil
}

// ForUser returns the dataset for userID, if the file defines one.
func (s *FileSource) ForUser(userID string) (Data, bool) {
	d, ok := s.users[userID]
	return d, ok
}

// Normalized returns a copy with ingestion clamps applied: negative
// interest rates become zero, missing available balances mirror the
// balance, and missing statuses default to active.
func (d Data) Normalized() Data {
	out := d
	out.Accounts = append([]model.Account(nil), d.Accounts...)
	for i := range out.Accounts {
		a := &out.Accounts[i]
		if a.InterestRate.IsNegative() {
			a.InterestRate = decimal.Zero
		}
		if a.AvailableBalance.IsZero() && !a.Balance.IsZero() {
			a.AvailableBalance = a.Balance
		}
		if a.Status == "" {
			a.Status = model.AccountStatusActive
		}
	}
	out.Cards = append([]model.Card(nil), d.Cards...)
	for i := range out.Cards {
		if out.Cards[i].Status == "" {
			out.Cards[i].Status = model.CardStatusActive
		}
	}
	return out
}

// YAML file shapes. Amounts are strings so the file stays exact; decimal
// fields do not round-trip through YAML on their own.

type fileData struct {
	Accounts     []fileAccount     `yaml:"accounts"`
	Transactions []fileTransaction `yaml:"transactions"`
	Budget       fileBudget        `yaml:"budget"`
	Cards        []fileCard        `yaml:"cards"`
	Payees       []filePayee       `yaml:"payees"`
}

type fileAccount struct {
	AccountID    string `yaml:"account_id"`
	AccountType  string `yaml:"account_type"`
	AccountName  string `yaml:"account_name"`
	Balance      string `yaml:"balance"`
	InterestRate string `yaml:"interest_rate"`
	CreditLimit  string `yaml:"credit_limit"`
	Status       string `yaml:"status"`
	OpenDate     string `yaml:"open_date"`
}

type fileTransaction struct {
	AccountID   string `yaml:"account_id"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Type        string `yaml:"type"`
	Category    string `yaml:"category"`
	Balance     string `yaml:"balance"` // running balance after this entry
}

type fileBudget struct {
	Categories []fileBudgetCategory `yaml:"categories"`
}

type fileBudgetCategory struct {
	Name  string `yaml:"name"`
	Limit string `yaml:"limit"`
	Color string `yaml:"color"`
}

type filePayee struct {
	PayeeID       string `yaml:"payee_id"`
	Name          string `yaml:"name"`
	AccountNumber string `yaml:"account_number"`
	Category      string `yaml:"category"`
	IsFavorite    bool   `yaml:"is_favorite"`
}

type fileCard struct {
	ID        string `yaml:"id"`
	AccountID string `yaml:"account_id"`
	CardType  string `yaml:"card_type"`
	LastFour  string `yaml:"last_four"`
	Limit     string `yaml:"limit"`
}

func (fd fileData) toData() (Data, error) {
	var d Data

	for _, fa := range fd.Accounts {
		balance, err := parseAmount(fa.Balance)
		if err != nil {
			return Data{}, fmt.Errorf("account %q balance: %w", fa.AccountID, err)
		}
		rate, err := parseAmount(fa.InterestRate)
		if err != nil {
			return Data{}, fmt.Errorf("account %q interest_rate: %w", fa.AccountID, err)
		}
		limit, err := parseAmount(fa.CreditLimit)
		if err != nil {
			return Data{}, fmt.Errorf("account %q credit_limit: %w", fa.AccountID, err)
		}
		opened, err := parseDate(fa.OpenDate)
		if err != nil {
			return Data{}, fmt.Errorf("account %q open_date: %w", fa.AccountID, err)
		}
		d.Accounts = append(d.Accounts, model.Account{
			AccountID:        fa.AccountID,
			AccountType:      model.AccountType(fa.AccountType),
			AccountName:      fa.AccountName,
			Balance:          balance,
			AvailableBalance: balance,
			InterestRate:     rate,
			CreditLimit:      limit,
			Status:           model.AccountStatus(fa.Status),
			OpenDate:         opened,
		})
	}

	for _, ft := range fd.Transactions {
		amount, err := parseAmount(ft.Amount)
		if err != nil {
			return Data{}, fmt.Errorf("transaction %q amount: %w", ft.Description, err)
		}
		date, err := parseDate(ft.Date)
		if err != nil {
			return Data{}, fmt.Errorf("transaction %q date: %w", ft.Description, err)
		}
		balance, err := parseAmount(ft.Balance)
		if err != nil {
			return Data{}, fmt.Errorf("transaction %q balance: %w", ft.Description, err)
		}
		d.Transactions = append(d.Transactions, model.Transaction{
			AccountID:   ft.AccountID,
			Date:        date,
			Description: ft.Description,
			Amount:      amount,
			Type:        model.TransactionType(ft.Type),
			Category:    ft.Category,
			Status:      model.TransactionStatusCompleted,
			Balance:     balance,
		})
	}

	for _, fc := range fd.Budget.Categories {
		limit, err := parseAmount(fc.Limit)
		if err != nil {
			return Data{}, fmt.Errorf("budget category %q limit: %w", fc.Name, err)
		}
		d.Budget.Categories = append(d.Budget.Categories, model.BudgetCategory{
			Name:  fc.Name,
			Limit: limit,
			Color: fc.Color,
		})
		d.Budget.MonthlyLimit = d.Budget.MonthlyLimit.Add(limit)
	}

	for _, fc := range fd.Cards {
		limit, err := parseAmount(fc.Limit)
		if err != nil {
			return Data{}, fmt.Errorf("card %q limit: %w", fc.ID, err)
		}
		d.Cards = append(d.Cards, model.Card{
			ID:        fc.ID,
			AccountID: fc.AccountID,
			CardType:  model.CardType(fc.CardType),
			LastFour:  fc.LastFour,
			Status:    model.CardStatusActive,
			Limit:     limit,
		})
	}

	for _, fp := range fd.Payees {
		d.Payees = append(d.Payees, model.Payee{
			PayeeID:       fp.PayeeID,
			Name:          fp.Name,
			AccountNumber: fp.AccountNumber,
			Category:      fp.Category,
			IsFavorite:    fp.IsFavorite,
		})
	}
	return d, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
