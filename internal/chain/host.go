// Package chain executes ledger transactions one at a time against shared journaled
// state. A transaction either commits every write and event or reverts all of them.
package chain

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain/state"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/logger"
)

// Receipt describes a committed transaction
type Receipt struct {
	Height    uint64         `json:"height"`
	Timestamp uint64         `json:"timestamp"`
	Caller    common.Address `json:"caller"`
	Events    []domain.Event `json:"events"`
}

// CommitHook runs after a transaction succeeded and before its writes are final.
// Returning an error reverts the transaction.
type CommitHook func(ctx context.Context, receipt *Receipt) error

// Host owns the journal and serializes transactions
type Host struct {
	mu      sync.Mutex
	journal *state.Journal
	clock   adapter.Clock
	height  uint64
	hooks   []CommitHook
}

// NewHost creates a host reading time from clock
func NewHost(clock adapter.Clock) *Host {
	return &Host{
		journal: state.NewJournal(),
		clock:   clock,
	}
}

// Journal returns the journal every state container of this host must write to
func (h *Host) Journal() *state.Journal {
	return h.journal
}

// Height returns the height of the last committed transaction
func (h *Host) Height() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.height
}

// Restore sets the committed height, used when loading a snapshot
func (h *Host) Restore(height uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.height = height
}

// OnCommit registers a commit hook. Hooks run in registration order.
func (h *Host) OnCommit(hook CommitHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Execute runs fn as one atomic transaction sent by caller
func (h *Host) Execute(ctx context.Context, caller common.Address, fn func(c *Context) error) (receipt *Receipt, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot := h.journal.Snapshot()
	tx := &txState{
		height:    h.height + 1,
		timestamp: uint64(h.clock.Now().Unix()), //nolint:gosec,G115
	}
	c := &Context{ctx: ctx, caller: caller, tx: tx}

	defer func() {
		if r := recover(); r != nil {
			h.journal.RevertTo(snapshot)
			receipt = nil
			err = fmt.Errorf("transaction panicked: %v", r)
			logger.ErrorCtx(ctx, err, zap.String("caller", caller.Hex()))
		}
	}()

	if err := fn(c); err != nil {
		h.journal.RevertTo(snapshot)
		if domain.IsRevert(err) {
			logger.InfoCtx(ctx, "Transaction reverted",
				zap.String("caller", caller.Hex()),
				zap.Uint64("height", tx.height),
				zap.String("kind", string(domain.KindOf(err))),
				zap.String("reason", err.Error()))
		} else {
			logger.ErrorCtx(ctx, fmt.Errorf("transaction failed: %w", err),
				zap.String("caller", caller.Hex()),
				zap.Uint64("height", tx.height))
		}
		return nil, err
	}

	receipt = &Receipt{
		Height:    tx.height,
		Timestamp: tx.timestamp,
		Caller:    caller,
		Events:    tx.events,
	}

	for _, hook := range h.hooks {
		if err := hook(ctx, receipt); err != nil {
			h.journal.RevertTo(snapshot)
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	h.journal.Commit()
	h.height = tx.height

	logger.DebugCtx(ctx, "Transaction committed",
		zap.String("caller", caller.Hex()),
		zap.Uint64("height", receipt.Height),
		zap.Int("events", len(receipt.Events)))

	return receipt, nil
}

// View runs fn against the current state. Any write fn makes is discarded.
func (h *Host) View(ctx context.Context, fn func(c *Context) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot := h.journal.Snapshot()
	defer h.journal.RevertTo(snapshot)

	c := &Context{
		ctx: ctx,
		tx: &txState{
			height:    h.height,
			timestamp: uint64(h.clock.Now().Unix()), //nolint:gosec,G115
			readOnly:  true,
		},
	}
	return fn(c)
}

// Locked runs fn while holding the transaction lock, e.g. to export a consistent snapshot
func (h *Host) Locked(fn func(height uint64) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn(h.height)
}
