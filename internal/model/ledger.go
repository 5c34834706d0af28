package model

import "time"

// Payee is a saved bill-pay destination. Payees are reference data seeded
// at bootstrap; paying one produces a destination-less debit.
type Payee struct {
	PayeeID       string `json:"payee_id"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	Category      string `json:"category"`
	IsFavorite    bool   `json:"is_favorite"`
}

// UserLedger is the complete state for one user: accounts, the append-only
// transaction log, budget, cards, and payees. The user ledger store owns
// every instance exclusively; nothing else mutates one directly.
type UserLedger struct {
	UserID       string        `json:"user_id"`
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Budget       Budget        `json:"budget"`
	Cards        []Card        `json:"cards"`
	Payees       []Payee       `json:"payees"`
	NextTxnSeq   int           `json:"next_txn_seq"`
	LastUpdated  time.Time     `json:"last_updated"`
}

// Account returns a pointer to the account with the given ID, or nil.
func (l *UserLedger) Account(accountID string) *Account {
	for i := range l.Accounts {
		if l.Accounts[i].AccountID == accountID {
			return &l.Accounts[i]
		}
	}
	return nil
}

// Card returns a pointer to the card with the given ID, or nil.
func (l *UserLedger) Card(cardID string) *Card {
	for i := range l.Cards {
		if l.Cards[i].ID == cardID {
			return &l.Cards[i]
		}
	}
	return nil
}

// Clone returns a deep copy. Mutations are applied to a clone and swapped
// in only after the clone has been persisted.
func (l *UserLedger) Clone() *UserLedger {
	cp := *l
	cp.Accounts = append([]Account(nil), l.Accounts...)
	cp.Transactions = append([]Transaction(nil), l.Transactions...)
	cp.Cards = append([]Card(nil), l.Cards...)
	cp.Payees = append([]Payee(nil), l.Payees...)
	cp.Budget.Categories = append([]BudgetCategory(nil), l.Budget.Categories...)
	return &cp
}
