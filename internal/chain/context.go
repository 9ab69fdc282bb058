package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

type txState struct {
	height    uint64
	timestamp uint64
	events    []domain.Event
	readOnly  bool
}

// Context is the call context of one ledger transaction. Sub-calls made with As share
// the same transaction: the same timestamp, journal and event buffer.
type Context struct {
	ctx    context.Context
	caller common.Address
	tx     *txState
}

// Context returns the request context
func (c *Context) Context() context.Context {
	return c.ctx
}

// Caller returns the address the current call is executed for
func (c *Context) Caller() common.Address {
	return c.caller
}

// Now returns the transaction timestamp in unix seconds
func (c *Context) Now() uint64 {
	return c.tx.timestamp
}

// Height returns the height the transaction commits at
func (c *Context) Height() uint64 {
	return c.tx.height
}

// As returns a sub-call context executed on behalf of caller
func (c *Context) As(caller common.Address) *Context {
	return &Context{ctx: c.ctx, caller: caller, tx: c.tx}
}

// Emit buffers an event. Buffered events are dropped if the transaction reverts.
func (c *Context) Emit(source common.Address, payload domain.Payload) {
	if c.tx.readOnly {
		return
	}
	event := domain.Event{
		Height:    c.tx.height,
		Index:     len(c.tx.events),
		Timestamp: c.tx.timestamp,
		Type:      payload.EventType(),
		Source:    source,
		Payload:   payload,
	}
	if ref, ok := payload.(domain.TokenRef); ok {
		tokenID := ref.EventTokenID()
		event.TokenID = &tokenID
	}
	c.tx.events = append(c.tx.events, event)
}

// Events returns the events buffered so far
func (c *Context) Events() []domain.Event {
	return c.tx.events
}
