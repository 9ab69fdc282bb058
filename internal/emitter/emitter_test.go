package emitter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/emitter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/mocks"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/store"
)

const cursorName = "jetstream"

// testEmitterMocks contains all the mocks needed for testing the emitter
type testEmitterMocks struct {
	ctrl      *gomock.Controller
	publisher *mocks.MockPublisher
	store     *mocks.MockStore
	clock     *mocks.MockClock
}

func setupTestEmitter(t *testing.T) *testEmitterMocks {
	ctrl := gomock.NewController(t)
	return &testEmitterMocks{
		ctrl:      ctrl,
		publisher: mocks.NewMockPublisher(ctrl),
		store:     mocks.NewMockStore(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
}

func (m *testEmitterMocks) emitter(batchSize int) emitter.Emitter {
	return emitter.NewEmitter(m.publisher, m.store, emitter.Config{
		CursorName:    cursorName,
		BatchSize:     batchSize,
		PollInterval:  time.Second,
		RetryInterval: time.Millisecond,
		MaxRetries:    2,
	}, m.clock)
}

// stopOnPoll cancels the run the first time the emitter waits for new events
func (m *testEmitterMocks) stopOnPoll(cancel context.CancelFunc) {
	m.clock.EXPECT().After(time.Second).DoAndReturn(func(time.Duration) <-chan time.Time {
		cancel()
		return nil
	})
}

func record(height uint64, index int) *domain.EventRecord {
	return &domain.EventRecord{
		ID:     "01HX" + string(rune('A'+index)),
		Height: height,
		Index:  index,
		Type:   domain.EventTransfer,
	}
}

func TestEmitter_Run_ResumesFromCursor(t *testing.T) {
	m := setupTestEmitter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := store.Position{Height: 4, Index: 1}
	batch := []*domain.EventRecord{record(4, 2), record(5, 0)}

	gomock.InOrder(
		m.store.EXPECT().GetCursor(gomock.Any(), cursorName).Return(start, nil),
		m.store.EXPECT().GetEventsAfter(gomock.Any(), start, 10).Return(batch, nil),
		m.publisher.EXPECT().PublishEvent(gomock.Any(), batch[0]).Return(nil),
		m.publisher.EXPECT().PublishEvent(gomock.Any(), batch[1]).Return(nil),
		m.store.EXPECT().SetCursor(gomock.Any(), cursorName, store.Position{Height: 5, Index: 0}).Return(nil),
	)
	m.stopOnPoll(cancel)

	err := m.emitter(10).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitter_Run_FullBatchReadsAgainWithoutWaiting(t *testing.T) {
	m := setupTestEmitter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := []*domain.EventRecord{record(1, 0), record(1, 1)}
	second := []*domain.EventRecord{record(2, 0)}

	gomock.InOrder(
		m.store.EXPECT().GetCursor(gomock.Any(), cursorName).Return(store.Position{}, nil),
		m.store.EXPECT().GetEventsAfter(gomock.Any(), store.Position{}, 2).Return(first, nil),
		m.store.EXPECT().SetCursor(gomock.Any(), cursorName, store.Position{Height: 1, Index: 1}).Return(nil),
		m.store.EXPECT().GetEventsAfter(gomock.Any(), store.Position{Height: 1, Index: 1}, 2).Return(second, nil),
		m.store.EXPECT().SetCursor(gomock.Any(), cursorName, store.Position{Height: 2, Index: 0}).Return(nil),
	)
	m.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	m.stopOnPoll(cancel)

	err := m.emitter(2).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitter_Run_EmptyLogWaits(t *testing.T) {
	m := setupTestEmitter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.store.EXPECT().GetCursor(gomock.Any(), cursorName).Return(store.Position{Height: 9}, nil)
	m.store.EXPECT().GetEventsAfter(gomock.Any(), store.Position{Height: 9}, 10).Return(nil, nil)
	m.stopOnPoll(cancel)

	err := m.emitter(10).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitter_Run_RetriesTransientPublishFailure(t *testing.T) {
	m := setupTestEmitter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batch := []*domain.EventRecord{record(1, 0)}
	m.store.EXPECT().GetCursor(gomock.Any(), cursorName).Return(store.Position{}, nil)
	m.store.EXPECT().GetEventsAfter(gomock.Any(), store.Position{}, 10).Return(batch, nil)
	gomock.InOrder(
		m.publisher.EXPECT().PublishEvent(gomock.Any(), batch[0]).Return(errors.New("nats: timeout")),
		m.publisher.EXPECT().PublishEvent(gomock.Any(), batch[0]).Return(nil),
	)
	m.store.EXPECT().SetCursor(gomock.Any(), cursorName, store.Position{Height: 1, Index: 0}).Return(nil)
	m.stopOnPoll(cancel)

	err := m.emitter(10).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitter_Run_PublishFailureKeepsProgress(t *testing.T) {
	m := setupTestEmitter(t)

	batch := []*domain.EventRecord{record(1, 0), record(1, 1), record(2, 0)}
	publishErr := errors.New("nats: no responders")

	m.store.EXPECT().GetCursor(gomock.Any(), cursorName).Return(store.Position{}, nil)
	m.store.EXPECT().GetEventsAfter(gomock.Any(), store.Position{}, 10).Return(batch, nil)
	m.publisher.EXPECT().PublishEvent(gomock.Any(), batch[0]).Return(nil)
	// first attempt plus two retries
	m.publisher.EXPECT().PublishEvent(gomock.Any(), batch[1]).Return(publishErr).Times(3)
	m.store.EXPECT().SetCursor(gomock.Any(), cursorName, store.Position{Height: 1, Index: 0}).Return(nil)

	err := m.emitter(10).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, publishErr)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestEmitter_Run_StoreErrors(t *testing.T) {
	dbErr := errors.New("connection refused")

	t.Run("get cursor", func(t *testing.T) {
		m := setupTestEmitter(t)
		m.store.EXPECT().GetCursor(gomock.Any(), cursorName).Return(store.Position{}, dbErr)

		err := m.emitter(10).Run(context.Background())
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to get event cursor")
	})

	t.Run("read events", func(t *testing.T) {
		m := setupTestEmitter(t)
		m.store.EXPECT().GetCursor(gomock.Any(), cursorName).Return(store.Position{}, nil)
		m.store.EXPECT().GetEventsAfter(gomock.Any(), store.Position{}, 10).Return(nil, dbErr)

		err := m.emitter(10).Run(context.Background())
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to read events")
	})

	t.Run("save cursor", func(t *testing.T) {
		m := setupTestEmitter(t)
		batch := []*domain.EventRecord{record(1, 0)}
		m.store.EXPECT().GetCursor(gomock.Any(), cursorName).Return(store.Position{}, nil)
		m.store.EXPECT().GetEventsAfter(gomock.Any(), store.Position{}, 10).Return(batch, nil)
		m.publisher.EXPECT().PublishEvent(gomock.Any(), batch[0]).Return(nil)
		m.store.EXPECT().SetCursor(gomock.Any(), cursorName, gomock.Any()).Return(dbErr)

		err := m.emitter(10).Run(context.Background())
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to save event cursor")
	})
}

func TestEmitter_Close(t *testing.T) {
	m := setupTestEmitter(t)
	m.publisher.EXPECT().Close()

	m.emitter(10).Close()
}
