package store

import (
	"context"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// SaveCommit stores the events of receipt and the state after it in one transaction
	SaveCommit(ctx context.Context, receipt *chain.Receipt, state []byte) error
	// LoadSnapshot returns the latest stored state, or found == false on a fresh database
	LoadSnapshot(ctx context.Context) (height uint64, state []byte, found bool, err error)
	// GetEventsAfter returns up to limit events positioned strictly after the given position, in ledger order
	GetEventsAfter(ctx context.Context, after Position, limit int) ([]*domain.EventRecord, error)
	// GetEventsByToken returns the events of one project, newest first
	GetEventsByToken(ctx context.Context, tokenID string, limit int, offset uint64) ([]*domain.EventRecord, uint64, error)

	CursorStore

	// SetKeyValue sets a key-value pair
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key, or an empty string when the key is absent
	GetKeyValue(ctx context.Context, key string) (string, error)
}

// Position locates an event in the ledger: the transaction height and the index within it
type Position struct {
	Height uint64
	Index  int
}

// After reports whether p comes after o in ledger order
func (p Position) After(o Position) bool {
	return p.Height > o.Height || (p.Height == o.Height && p.Index > o.Index)
}
