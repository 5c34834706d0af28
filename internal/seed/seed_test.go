package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servisthird/coreledger/internal/model"
)

func TestDemo(t *testing.T) {
	d := Demo()

	require.NotEmpty(t, d.Accounts)
	require.NotEmpty(t, d.Transactions)
	require.NotEmpty(t, d.Budget.Categories)
	require.NotEmpty(t, d.Cards)
	require.NotEmpty(t, d.Payees)

	for _, a := range d.Accounts {
		assert.Empty(t, a.AccountNumber, "numbers are assigned at bootstrap, not in seed data")
		assert.False(t, a.InterestRate.IsNegative())
	}
	for _, c := range d.Cards {
		assert.NotNil(t, d.findAccount(c.AccountID), "card %s references a seed account", c.ID)
	}
}

func TestDemo_TransactionHistory(t *testing.T) {
	d := Demo()
	now := time.Now().UTC()

	last := make(map[string]model.Transaction)
	for _, txn := range d.Transactions {
		require.NotNil(t, d.findAccount(txn.AccountID), "entry %q references a seed account", txn.Description)
		assert.Empty(t, txn.TransactionID, "IDs are assigned at bootstrap, not in seed data")
		assert.False(t, txn.Date.After(now), "history never post-dates now")
		switch txn.Type {
		case model.TransactionTypeDebit:
			assert.True(t, txn.Amount.IsNegative(), "%q: debit amounts are negative", txn.Description)
		case model.TransactionTypeCredit:
			assert.True(t, txn.Amount.IsPositive(), "%q: credit amounts are positive", txn.Description)
		}
		last[txn.AccountID] = txn
	}

	// The final running balance per account matches the seeded balance.
	for accountID, txn := range last {
		acct := d.findAccount(accountID)
		assert.True(t, txn.Balance.Equal(acct.Balance),
			"account %s: last snapshot %s vs seed balance %s", accountID, txn.Balance, acct.Balance)
	}

	// Consecutive snapshots per account differ by the entry amount.
	prev := make(map[string]model.Transaction)
	for _, txn := range d.Transactions {
		if p, ok := prev[txn.AccountID]; ok {
			assert.True(t, p.Balance.Add(txn.Amount).Equal(txn.Balance),
				"%q: %s + %s != %s", txn.Description, p.Balance, txn.Amount, txn.Balance)
		}
		prev[txn.AccountID] = txn
	}
}

func (d Data) findAccount(accountID string) *model.Account {
	for i := range d.Accounts {
		if d.Accounts[i].AccountID == accountID {
			return &d.Accounts[i]
		}
	}
	return nil
}

func TestNormalized(t *testing.T) {
	d := Data{
		Accounts: []model.Account{
			{AccountID: "a1", Balance: dec("100.00"), InterestRate: dec("-0.02")},
		},
		Cards: []model.Card{{ID: "c1"}},
	}

	got := d.Normalized()

	assert.True(t, got.Accounts[0].InterestRate.IsZero(), "negative rates clamp to zero")
	assert.True(t, got.Accounts[0].AvailableBalance.Equal(dec("100.00")))
	assert.Equal(t, model.AccountStatusActive, got.Accounts[0].Status)
	assert.Equal(t, model.CardStatusActive, got.Cards[0].Status)

	// Input untouched.
	assert.True(t, d.Accounts[0].InterestRate.IsNegative())
}

const seedYAML = `
user042:
  accounts:
    - account_id: acc-chk-001
      account_type: checking
      account_name: Checking
      balance: "500.00"
      open_date: "2023-01-15"
    - account_id: acc-sav-001
      account_type: savings
      account_name: Savings
      balance: "1000.00"
      interest_rate: "0.0425"
      open_date: "2023-01-15"
  transactions:
    - account_id: acc-chk-001
      date: "2025-06-03T10:00:00Z"
      description: Grocery run
      amount: "-52.10"
      type: debit
      category: Groceries
      balance: "447.90"
  budget:
    categories:
      - name: Groceries
        limit: "600.00"
        color: "#4caf50"
  cards:
    - id: card-1
      account_id: acc-chk-001
      card_type: debit
      last_four: "4821"
      limit: "1000.00"
  payees:
    - payee_id: payee-001
      name: City Power & Light
      account_number: "88410023"
      category: Utilities
      is_favorite: true
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))

	src, err := LoadFile(path)
	require.NoError(t, err)

	data, ok := src.ForUser("user042")
	require.True(t, ok)

	require.Len(t, data.Accounts, 2)
	assert.True(t, data.Accounts[0].Balance.Equal(dec("500.00")))
	assert.True(t, data.Accounts[1].InterestRate.Equal(dec("0.0425")))
	assert.Equal(t, model.AccountTypeSavings, data.Accounts[1].AccountType)

	require.Len(t, data.Transactions, 1)
	assert.True(t, data.Transactions[0].Amount.Equal(dec("-52.10")))
	assert.Equal(t, model.TransactionTypeDebit, data.Transactions[0].Type)
	assert.True(t, data.Transactions[0].Balance.Equal(dec("447.90")))

	require.Len(t, data.Budget.Categories, 1)
	assert.True(t, data.Budget.MonthlyLimit.Equal(dec("600.00")), "monthly limit is the sum of category limits")

	require.Len(t, data.Cards, 1)
	assert.Equal(t, model.CardStatusActive, data.Cards[0].Status)

	require.Len(t, data.Payees, 1)
	assert.True(t, data.Payees[0].IsFavorite)

	_, ok = src.ForUser("stranger")
	assert.False(t, ok)
}

func TestLoadFile_BadAmount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	bad := "user1:\n  accounts:\n    - account_id: a1\n      balance: \"not-money\"\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "balance")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
