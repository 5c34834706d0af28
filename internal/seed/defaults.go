package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/servisthird/coreledger/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Demo returns the built-in demo dataset: a checking, savings, and credit
// account, recent categorized activity, a category budget, two cards, and
// a few payees. History dates are relative to now so a fresh user sees a
// populated dashboard; the running balances end at the seeded account
// balances.
func Demo() Data {
	opened := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	return Data{
		Accounts: []model.Account{
			{
				AccountID:        "acc-chk-001",
				AccountType:      model.AccountTypeChecking,
				AccountName:      "Everyday Checking",
				Balance:          dec("2450.75"),
				AvailableBalance: dec("2450.75"),
				Status:           model.AccountStatusActive,
				OpenDate:         opened,
			},
			{
				AccountID:        "acc-sav-001",
				AccountType:      model.AccountTypeSavings,
				AccountName:      "Rainy Day Savings",
				Balance:          dec("12000.00"),
				AvailableBalance: dec("12000.00"),
				InterestRate:     dec("0.0425"),
				Status:           model.AccountStatusActive,
				OpenDate:         opened,
			},
			{
				AccountID:        "acc-crd-001",
				AccountType:      model.AccountTypeCredit,
				AccountName:      "Rewards Credit Card",
				Balance:          dec("-430.20"),
				AvailableBalance: dec("-430.20"),
				CreditLimit:      dec("5000.00"),
				Status:           model.AccountStatusActive,
				OpenDate:         opened,
			},
		},
		Transactions: []model.Transaction{
			{
				AccountID:   "acc-chk-001",
				Date:        daysAgo(9),
				Description: "Payroll direct deposit",
				Amount:      dec("1850.00"),
				Type:        model.TransactionTypeCredit,
				Category:    "Income",
				Status:      model.TransactionStatusCompleted,
				Balance:     dec("2735.90"),
			},
			{
				AccountID:   "acc-chk-001",
				Date:        daysAgo(7),
				Description: "Fresh Market",
				Amount:      dec("-86.40"),
				Type:        model.TransactionTypeDebit,
				Category:    "Groceries",
				Status:      model.TransactionStatusCompleted,
				Balance:     dec("2649.50"),
			},
			{
				AccountID:   "acc-chk-001",
				Date:        daysAgo(5),
				Description: "City Power & Light",
				Amount:      dec("-110.00"),
				Type:        model.TransactionTypeDebit,
				Category:    "Utilities",
				Status:      model.TransactionStatusCompleted,
				Balance:     dec("2539.50"),
			},
			{
				AccountID:   "acc-chk-001",
				Date:        daysAgo(3),
				Description: "Luigi's Trattoria",
				Amount:      dec("-42.75"),
				Type:        model.TransactionTypeDebit,
				Category:    "Dining",
				Status:      model.TransactionStatusCompleted,
				Balance:     dec("2496.75"),
			},
			{
				AccountID:   "acc-crd-001",
				Date:        daysAgo(2),
				Description: "Corner Grocer",
				Amount:      dec("-63.20"),
				Type:        model.TransactionTypeDebit,
				Category:    "Groceries",
				Status:      model.TransactionStatusCompleted,
				Balance:     dec("-430.20"),
			},
			{
				AccountID:   "acc-chk-001",
				Date:        daysAgo(1),
				Description: "Metro fuel stop",
				Amount:      dec("-46.00"),
				Type:        model.TransactionTypeDebit,
				Category:    "Transportation",
				Status:      model.TransactionStatusCompleted,
				Balance:     dec("2450.75"),
			},
		},
		Budget: model.Budget{
			Categories: []model.BudgetCategory{
				{Name: "Groceries", Limit: dec("600.00"), Color: "#4caf50"},
				{Name: "Dining", Limit: dec("250.00"), Color: "#ff9800"},
				{Name: "Utilities", Limit: dec("300.00"), Color: "#2196f3"},
				{Name: "Transportation", Limit: dec("150.00"), Color: "#9c27b0"},
			},
			MonthlyLimit: dec("1300.00"),
		},
		Cards: []model.Card{
			{
				ID:        "card-debit-001",
				AccountID: "acc-chk-001",
				CardType:  model.CardTypeDebit,
				LastFour:  "4821",
				Status:    model.CardStatusActive,
				Limit:     dec("1000.00"),
				Controls: model.CardControls{
					Contactless:        true,
					OnlineTransactions: true,
					ATMWithdrawals:     true,
				},
			},
			{
				ID:        "card-credit-001",
				AccountID: "acc-crd-001",
				CardType:  model.CardTypeCredit,
				LastFour:  "9034",
				Status:    model.CardStatusActive,
				Limit:     dec("5000.00"),
				Controls: model.CardControls{
					Contactless:               true,
					OnlineTransactions:        true,
					InternationalTransactions: true,
					ATMWithdrawals:            true,
				},
			},
		},
		Payees: []model.Payee{
			{PayeeID: "payee-001", Name: "City Power & Light", AccountNumber: "88410023", Category: "Utilities", IsFavorite: true},
			{PayeeID: "payee-002", Name: "Metro Water", AccountNumber: "55200981", Category: "Utilities"},
			{PayeeID: "payee-003", Name: "Northside Apartments", AccountNumber: "10448276", Category: "Housing", IsFavorite: true},
		},
	}
}
