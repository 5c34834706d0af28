// Package budget derives category spend from the transaction log.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/servisthird/coreledger/internal/model"
)

// PeriodStart returns the start of the calendar month containing now, the
// default budget period.
func PeriodStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// Recompute overwrites each category's Spent with the sum of absolute
// debit amounts in [periodStart, periodStart+1 month). Categories with no
// matching entries reset to zero; limits are untouched. Spent is a cache,
// never a source of truth, so Recompute is idempotent and never fails:
// entries with categories the budget does not track are simply ignored.
func Recompute(b model.Budget, transactions []model.Transaction, periodStart time.Time) model.Budget {
	periodEnd := periodStart.AddDate(0, 1, 0)

	totals := make(map[string]decimal.Decimal, len(b.Categories))
	for _, txn := range transactions {
		if txn.Type != model.TransactionTypeDebit {
			continue
		}
		if txn.Date.Before(periodStart) || !txn.Date.Before(periodEnd) {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount.Abs())
	}

	out := b
	out.Categories = append([]model.BudgetCategory(nil), b.Categories...)
	for i := range out.Categories {
		out.Categories[i].Spent = totals[out.Categories[i].Name]
	}
	return out
}

// TotalSpent sums Spent across categories.
func TotalSpent(b model.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Categories {
		total = total.Add(c.Spent)
	}
	return total
}
