package model

import "github.com/shopspring/decimal"

// BudgetCategory tracks spend against a limit for one category. Spent is
// a cache derived from the transaction log by the budget tracker; it is
// never settable on its own.
type BudgetCategory struct {
	Name  string          `json:"name"`
	Limit decimal.Decimal `json:"limit"`
	Spent decimal.Decimal `json:"spent"`
	Color string          `json:"color"`
}

// Budget is one user's monthly budget. MonthlyLimit is advisory (the sum
// of category limits).
type Budget struct {
	Categories   []BudgetCategory `json:"categories"`
	MonthlyLimit decimal.Decimal  `json:"monthly_limit"`
}

// Category returns a pointer to the named category, or nil.
func (b *Budget) Category(name string) *BudgetCategory {
	for i := range b.Categories {
		if b.Categories[i].Name == name {
			return &b.Categories[i]
		}
	}
	return nil
}
