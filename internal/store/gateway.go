package store

import (
	"context"
	"errors"
	"sync"

	"github.com/servisthird/coreledger/internal/model"
)

// ErrNotFound is returned by a Gateway when no ledger exists for a user.
var ErrNotFound = errors.New("user ledger not found")

// Gateway is the persistence boundary: a plain key/value store of full
// ledger snapshots per user. The store only requires read-after-write
// consistency for a single userID within a session.
type Gateway interface {
	Load(ctx context.Context, userID string) (*model.UserLedger, error)
	Save(ctx context.Context, userID string, ledger *model.UserLedger) error
}

// MemoryGateway keeps snapshots in process memory. It backs tests and the
// demo command; snapshots are deep-copied both ways so callers can never
// alias the stored state.
type MemoryGateway struct {
	mu      sync.Mutex
	ledgers map[string]*model.UserLedger
}

// NewMemoryGateway returns an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{ledgers: make(map[string]*model.UserLedger)}
}

// Load returns a copy of the stored snapshot, or ErrNotFound.
func (g *MemoryGateway) Load(_ context.Context, userID string) (*model.UserLedger, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.ledgers[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return l.Clone(), nil
}

// Save stores a copy of the snapshot.
func (g *MemoryGateway) Save(_ context.Context, userID string, ledger *model.UserLedger) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ledgers[userID] = ledger.Clone()
	return nil
}
