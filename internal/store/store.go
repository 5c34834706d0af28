// Package store owns one ledger per user identity. It bootstraps a new
// user from reference seed data, answers reads with interest accrued
// lazily at read time, and serializes every mutation per user so the
// gateway always receives a complete, consistent snapshot.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/servisthird/coreledger/internal/acctnum"
	"github.com/servisthird/coreledger/internal/budget"
	"github.com/servisthird/coreledger/internal/cards"
	"github.com/servisthird/coreledger/internal/interest"
	"github.com/servisthird/coreledger/internal/ledger"
	"github.com/servisthird/coreledger/internal/model"
	"github.com/servisthird/coreledger/internal/seed"
)

var (
	// ErrUserNotFound means the user has no ledger and no seed data.
	ErrUserNotFound = errors.New("user not found")
	// ErrPersistence means the gateway failed; the mutation was not applied.
	ErrPersistence = errors.New("persistence failure")
)

// Store is the user ledger store. All access goes through explicit
// userID parameters; there is no ambient current user.
type Store struct {
	gateway Gateway
	seeds   seed.Source
	logger  *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	ledgers map[string]*model.UserLedger
	locks   map[string]*sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the store's clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store over a persistence gateway and a seed source.
func New(gateway Gateway, seeds seed.Source, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		gateway: gateway,
		seeds:   seeds,
		logger:  logger,
		now:     time.Now,
		ledgers: make(map[string]*model.UserLedger),
		locks:   make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// userLock returns the mutex serializing all operations for one user.
// Different users never contend.
func (s *Store) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// get returns the cached ledger for userID, loading or bootstrapping it
// on first access. Callers must hold the user lock.
func (s *Store) get(ctx context.Context, userID string) (*model.UserLedger, error) {
	s.mu.Lock()
	cached, ok := s.ledgers[userID]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	loaded, err := s.gateway.Load(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		loaded, err = s.bootstrap(ctx, userID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("loading ledger for user %q: %w: %v", userID, ErrPersistence, err)
	}

	s.mu.Lock()
	s.ledgers[userID] = loaded
	s.mu.Unlock()
	return loaded, nil
}

// bootstrap builds a new ledger from reference seed data: account numbers
// are minted here, seeded history keeps its recorded balances, and the
// result is persisted before first use.
func (s *Store) bootstrap(ctx context.Context, userID string) (*model.UserLedger, error) {
	data, ok := s.seeds.ForUser(userID)
	if !ok {
		return nil, fmt.Errorf("bootstrapping user %q: %w", userID, ErrUserNotFound)
	}
	data = data.Normalized()
	now := s.now()

	l := &model.UserLedger{
		UserID:      userID,
		Budget:      data.Budget,
		Cards:       data.Cards,
		Payees:      data.Payees,
		LastUpdated: now,
	}

	for i, acct := range data.Accounts {
		acct.UserID = userID
		acct.AccountNumber = acctnum.Generate(acct.AccountType, userID, i+1)
		if acct.OpenDate.IsZero() {
			acct.OpenDate = now
		}
		// Interest starts accruing at first access, not at the seed's
		// historical open date.
		if acct.AccountType == model.AccountTypeSavings && acct.LastInterestDate.IsZero() {
			acct.LastInterestDate = now
		}
		l.Accounts = append(l.Accounts, acct)
	}

	// Seeded history is carried as-is: the seed balances already include
	// it, so these entries are display history, not replayed mutations.
	for _, txn := range data.Transactions {
		l.NextTxnSeq++
		if txn.TransactionID == "" {
			txn.TransactionID = fmt.Sprintf("TXN-%06d", l.NextTxnSeq)
		}
		l.Transactions = append(l.Transactions, txn)
	}

	if err := s.gateway.Save(ctx, userID, l); err != nil {
		return nil, fmt.Errorf("persisting bootstrap for user %q: %w: %v", userID, ErrPersistence, err)
	}
	s.logger.Info("bootstrapped user ledger",
		"user_id", userID,
		"accounts", len(l.Accounts),
		"seed_transactions", len(l.Transactions))
	return l, nil
}

// Accounts returns the user's accounts with savings interest accrued as
// of now. Accrual that changes anything is persisted; if persisting
// fails the accrued snapshot is still returned and the watermark stays
// put, so the next read simply recomputes.
func (s *Store) Accounts(ctx context.Context, userID string) ([]model.Account, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	l = s.accrue(ctx, l)
	return append([]model.Account(nil), l.Accounts...), nil
}

// Account returns one account by ID, interest accrued.
func (s *Store) Account(ctx context.Context, userID, accountID string) (model.Account, error) {
	accounts, err := s.Accounts(ctx, userID)
	if err != nil {
		return model.Account{}, err
	}
	for _, a := range accounts {
		if a.AccountID == accountID {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("account %q for user %q: %w", accountID, userID, ledger.ErrAccountNotFound)
}

// accrue applies lazy interest to every savings account. Callers hold the
// user lock. Returns the ledger reads should come from.
func (s *Store) accrue(ctx context.Context, l *model.UserLedger) *model.UserLedger {
	now := s.now()
	changed := false
	cp := l.Clone()
	for i := range cp.Accounts {
		before := cp.Accounts[i]
		after := interest.Accrue(before, now)
		if !after.Balance.Equal(before.Balance) || !after.LastInterestDate.Equal(before.LastInterestDate) {
			cp.Accounts[i] = after
			changed = true
		}
	}
	if !changed {
		return l
	}

	if err := s.gateway.Save(ctx, l.UserID, cp); err != nil {
		s.logger.Warn("persisting interest accrual failed; returning unsaved accrual",
			"user_id", l.UserID, "error", err)
		return cp
	}
	s.swap(l.UserID, cp)
	return cp
}

// Transactions returns the user's ledger entries newest-first, scoped to
// accountID when non-empty.
func (s *Store) Transactions(ctx context.Context, userID, accountID string) ([]model.Transaction, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ledger.Query(l, accountID), nil
}

// Budget returns the user's budget with category spend recomputed from
// the transaction log for the current period.
func (s *Store) Budget(ctx context.Context, userID string) (model.Budget, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.get(ctx, userID)
	if err != nil {
		return model.Budget{}, err
	}
	return budget.Recompute(l.Budget, l.Transactions, budget.PeriodStart(s.now())), nil
}

// Cards returns the user's cards.
func (s *Store) Cards(ctx context.Context, userID string) ([]model.Card, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return append([]model.Card(nil), l.Cards...), nil
}

// Payees returns the user's saved bill-pay payees.
func (s *Store) Payees(ctx context.Context, userID string) ([]model.Payee, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return append([]model.Payee(nil), l.Payees...), nil
}

// TransferParams describes a transfer through the store.
type TransferParams struct {
	FromAccountID string
	ToAccountID   string // empty = external debit (bill payment)
	Amount        decimal.Decimal
	Description   string
	Category      string
}

// Transfer executes an atomic transfer and persists the result. A
// transfer is never reported successful unless the updated ledger was
// durably saved: the mutation runs on a copy which replaces the cached
// ledger only after Save returns.
func (s *Store) Transfer(ctx context.Context, userID string, p TransferParams) (string, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.get(ctx, userID)
	if err != nil {
		return "", err
	}

	cp := l.Clone()
	ref, err := ledger.Transfer(cp, ledger.TransferParams{
		FromAccountID: p.FromAccountID,
		ToAccountID:   p.ToAccountID,
		Amount:        p.Amount,
		Description:   p.Description,
		Category:      p.Category,
		Now:           s.now(),
	})
	if err != nil {
		return "", err
	}
	cp.Budget = budget.Recompute(cp.Budget, cp.Transactions, budget.PeriodStart(s.now()))

	if err := s.persist(ctx, userID, cp); err != nil {
		return "", err
	}
	s.logger.Info("transfer completed",
		"user_id", userID,
		"from", p.FromAccountID,
		"to", p.ToAccountID,
		"amount", p.Amount.StringFixed(2),
		"reference", ref)
	return ref, nil
}

// Deposit credits an account (mobile deposit) and persists.
func (s *Store) Deposit(ctx context.Context, userID, accountID string, amount decimal.Decimal, description, category string) (model.Transaction, error) {
	return s.appendEntry(ctx, userID, func(cp *model.UserLedger, now time.Time) (model.Transaction, error) {
		return ledger.Deposit(cp, accountID, amount, description, category, now)
	})
}

// Withdraw debits an account and persists.
func (s *Store) Withdraw(ctx context.Context, userID, accountID string, amount decimal.Decimal, description, category string) (model.Transaction, error) {
	return s.appendEntry(ctx, userID, func(cp *model.UserLedger, now time.Time) (model.Transaction, error) {
		return ledger.Withdraw(cp, accountID, amount, description, category, now)
	})
}

func (s *Store) appendEntry(ctx context.Context, userID string, mutate func(*model.UserLedger, time.Time) (model.Transaction, error)) (model.Transaction, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.get(ctx, userID)
	if err != nil {
		return model.Transaction{}, err
	}

	cp := l.Clone()
	txn, err := mutate(cp, s.now())
	if err != nil {
		return model.Transaction{}, err
	}
	cp.Budget = budget.Recompute(cp.Budget, cp.Transactions, budget.PeriodStart(s.now()))

	if err := s.persist(ctx, userID, cp); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// FreezeCard moves a card to frozen.
func (s *Store) FreezeCard(ctx context.Context, userID, cardID string) (model.Card, error) {
	return s.mutateCard(ctx, userID, cardID, cards.Freeze)
}

// UnfreezeCard moves a frozen card back to active; controls stay off.
func (s *Store) UnfreezeCard(ctx context.Context, userID, cardID string) (model.Card, error) {
	return s.mutateCard(ctx, userID, cardID, cards.Unfreeze)
}

// ReportCardLost blocks a card permanently.
func (s *Store) ReportCardLost(ctx context.Context, userID, cardID string) (model.Card, error) {
	return s.mutateCard(ctx, userID, cardID, func(c model.Card) (model.Card, error) {
		return cards.ReportLost(c), nil
	})
}

// SetCardControls replaces an active card's control flags.
func (s *Store) SetCardControls(ctx context.Context, userID, cardID string, controls model.CardControls) (model.Card, error) {
	return s.mutateCard(ctx, userID, cardID, func(c model.Card) (model.Card, error) {
		return cards.SetControls(c, controls)
	})
}

func (s *Store) mutateCard(ctx context.Context, userID, cardID string, mutate func(model.Card) (model.Card, error)) (model.Card, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.get(ctx, userID)
	if err != nil {
		return model.Card{}, err
	}

	cp := l.Clone()
	card := cp.Card(cardID)
	if card == nil {
		return model.Card{}, fmt.Errorf("card %q for user %q: %w", cardID, userID, cards.ErrCardNotFound)
	}
	updated, err := mutate(*card)
	if err != nil {
		return model.Card{}, err
	}
	*card = updated
	cp.LastUpdated = s.now()

	if err := s.persist(ctx, userID, cp); err != nil {
		return model.Card{}, err
	}
	return updated, nil
}

// SetBudgetLimits replaces the budget's categories (limits and colors),
// recomputes spend from the log, and persists. Spent values in the input
// are ignored; they are derived, never settable.
func (s *Store) SetBudgetLimits(ctx context.Context, userID string, categories []model.BudgetCategory) (model.Budget, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.get(ctx, userID)
	if err != nil {
		return model.Budget{}, err
	}

	cp := l.Clone()
	cp.Budget.Categories = append([]model.BudgetCategory(nil), categories...)
	cp.Budget.MonthlyLimit = decimal.Zero
	for _, c := range categories {
		cp.Budget.MonthlyLimit = cp.Budget.MonthlyLimit.Add(c.Limit)
	}
	cp.Budget = budget.Recompute(cp.Budget, cp.Transactions, budget.PeriodStart(s.now()))
	cp.LastUpdated = s.now()

	if err := s.persist(ctx, userID, cp); err != nil {
		return model.Budget{}, err
	}
	return cp.Budget, nil
}

// persist saves the mutated copy and swaps it in. On failure the cached
// ledger is untouched, so the failed mutation is not observable.
func (s *Store) persist(ctx context.Context, userID string, cp *model.UserLedger) error {
	if err := s.gateway.Save(ctx, userID, cp); err != nil {
		s.logger.Error("saving ledger failed; mutation rolled back",
			"user_id", userID, "error", err)
		return fmt.Errorf("saving ledger for user %q: %w: %v", userID, ErrPersistence, err)
	}
	s.swap(userID, cp)
	return nil
}

func (s *Store) swap(userID string, l *model.UserLedger) {
	s.mu.Lock()
	s.ledgers[userID] = l
	s.mu.Unlock()
}
