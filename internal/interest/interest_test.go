package interest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/servisthird/coreledger/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func savings(balance, rate string, lastInterest time.Time) model.Account {
	return model.Account{
		AccountID:        "acc-sav",
		AccountType:      model.AccountTypeSavings,
		Balance:          dec(balance),
		AvailableBalance: dec(balance),
		InterestRate:     dec(rate),
		OpenDate:         time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		LastInterestDate: lastInterest,
	}
}

func TestAccrue_TenDays(t *testing.T) {
	now := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	acct := savings("1000.00", "0.0425", now.AddDate(0, 0, -10))

	got := Accrue(acct, now)

	// 1000 * (0.0425/365) * 10 = 1.1643..., rounded to cents.
	assert.True(t, got.Balance.Equal(dec("1001.16")), "balance: %s", got.Balance)
	assert.True(t, got.AvailableBalance.Equal(dec("1001.16")))
	assert.Equal(t, now, got.LastInterestDate)
}

func TestAccrue_NonSavingsUnchanged(t *testing.T) {
	now := time.Now()
	acct := model.Account{
		AccountType:      model.AccountTypeChecking,
		Balance:          dec("500.00"),
		AvailableBalance: dec("500.00"),
		InterestRate:     dec("0.0425"),
		LastInterestDate: now.AddDate(0, 0, -30),
	}
	got := Accrue(acct, now)
	assert.Equal(t, acct, got)
}

func TestAccrue_SameDayNoOp(t *testing.T) {
	now := time.Date(2025, 6, 20, 18, 0, 0, 0, time.UTC)
	acct := savings("1000.00", "0.0425", now.Add(-6*time.Hour))

	got := Accrue(acct, now)

	assert.True(t, got.Balance.Equal(dec("1000.00")))
	// Under a whole day: watermark must not move either.
	assert.Equal(t, acct.LastInterestDate, got.LastInterestDate)
}

func TestAccrue_FallsBackToOpenDate(t *testing.T) {
	now := time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC)
	acct := savings("1000.00", "0.0365", time.Time{})

	got := Accrue(acct, now)

	// 10 days at 0.01/day on 1000.00.
	assert.True(t, got.Balance.Equal(dec("1001.00")), "balance: %s", got.Balance)
	assert.Equal(t, now, got.LastInterestDate)
}

func TestAccrue_ZeroRateAdvancesWatermark(t *testing.T) {
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	acct := savings("1000.00", "0", now.AddDate(0, 0, -5))

	got := Accrue(acct, now)

	assert.True(t, got.Balance.Equal(dec("1000.00")))
	assert.Equal(t, now, got.LastInterestDate)
}

func TestAccrue_NegativeRateNeverReduces(t *testing.T) {
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	acct := savings("1000.00", "-0.05", now.AddDate(0, 0, -5))

	got := Accrue(acct, now)

	assert.True(t, got.Balance.Equal(dec("1000.00")))
}
