package emitter

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/logger"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/messaging"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/store"
)

// Config holds the configuration for the event emitter
type Config struct {
	CursorName     string        // key of the cursor in the store, one per destination
	BatchSize      int           // events read per poll
	PollInterval   time.Duration // wait after a poll that drained the log
	RetryInterval  time.Duration // first delay between publish attempts
	MaxRetries     uint64        // publish attempts after the first, 0 retries until canceled
	MaxRetryPeriod time.Duration // total time spent retrying one event
}

// Emitter defines the interface for the event emitter
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run relays committed events until the context is canceled or publishing fails for good
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

// emitter relays the committed event log to the message broker, in ledger order
type emitter struct {
	publisher messaging.Publisher
	store     store.Store
	config    Config
	clock     adapter.Clock
}

// NewEmitter creates a new event emitter
func NewEmitter(
	pub messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	return &emitter{
		publisher: pub,
		store:     st,
		config:    cfg,
		clock:     clock,
	}
}

// Run starts the event emitter
func (e *emitter) Run(ctx context.Context) error {
	cursor, err := e.store.GetCursor(ctx, e.config.CursorName)
	if err != nil {
		return fmt.Errorf("failed to get event cursor: %w", err)
	}

	logger.InfoCtx(ctx, "Resuming event relay",
		zap.String("cursor", e.config.CursorName),
		zap.Uint64("height", cursor.Height),
		zap.Int("index", cursor.Index))

	for {
		events, err := e.store.GetEventsAfter(ctx, cursor, e.config.BatchSize)
		if err != nil {
			return fmt.Errorf("failed to read events: %w", err)
		}

		published, err := e.publishBatch(ctx, events)
		if published > 0 {
			last := events[published-1]
			cursor = store.Position{Height: last.Height, Index: last.Index}
			if serr := e.store.SetCursor(ctx, e.config.CursorName, cursor); serr != nil {
				return fmt.Errorf("failed to save event cursor: %w", serr)
			}
			logger.DebugCtx(ctx, "Events relayed",
				zap.Int("count", published),
				zap.Uint64("height", cursor.Height),
				zap.Int("index", cursor.Index))
		}
		if err != nil {
			return err
		}

		if len(events) == e.config.BatchSize {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.clock.After(e.config.PollInterval):
		}
	}
}

// publishBatch publishes events in order and returns how many were published
func (e *emitter) publishBatch(ctx context.Context, events []*domain.EventRecord) (int, error) {
	for i, event := range events {
		if err := e.publishWithRetry(ctx, event); err != nil {
			return i, fmt.Errorf("failed to publish event %s at %d:%d: %w", event.ID, event.Height, event.Index, err)
		}
	}
	return len(events), nil
}

func (e *emitter) publishWithRetry(ctx context.Context, event *domain.EventRecord) error {
	b := backoff.NewExponentialBackOff()
	if e.config.RetryInterval > 0 {
		b.InitialInterval = e.config.RetryInterval
	}
	b.MaxElapsedTime = e.config.MaxRetryPeriod

	var policy backoff.BackOff = b
	if e.config.MaxRetries > 0 {
		policy = backoff.WithMaxRetries(b, e.config.MaxRetries)
	}

	operation := func() error {
		return e.publisher.PublishEvent(ctx, event)
	}

	var attempt int
	notify := func(err error, next time.Duration) {
		attempt++
		logger.WarnCtx(ctx, "Event publish failed, retrying",
			zap.Error(err),
			zap.String("event_id", event.ID),
			zap.Int("attempt", attempt),
			zap.Duration("next_retry_in", next))
	}

	return backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify)
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.publisher.Close()
}
