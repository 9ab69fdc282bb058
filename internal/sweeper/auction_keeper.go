package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/logger"
)

// AuctionLedger is the part of the ledger the keeper drives
//
//go:generate mockgen -source=auction_keeper.go -destination=../mocks/auction_ledger.go -package=mocks -mock_names=AuctionLedger=MockAuctionLedger
type AuctionLedger interface {
	// ExpiredAuctions returns the auctions that ended at the current ledger time
	ExpiredAuctions(ctx context.Context) ([]domain.Auction, error)
	// SettleAuction claims an ended auction for its winner, or refunds it when nobody bid
	SettleAuction(ctx context.Context, caller common.Address, auctionID common.Hash) (*chain.Receipt, error)
}

// AuctionKeeperConfig holds configuration for the auction keeper
type AuctionKeeperConfig struct {
	Keeper         common.Address // caller of the settlement transactions
	Interval       time.Duration  // time between sweep cycles
	WorkerPoolSize int            // concurrent settlements
	RetryInterval  time.Duration  // first delay between attempts of a failed settlement
	MaxRetries     uint64         // retries of a settlement that failed for a non-ledger reason
}

// auctionKeeper settles auctions once their end time has passed
type auctionKeeper struct {
	config    *AuctionKeeperConfig
	ledger    AuctionLedger
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewAuctionKeeper creates a new auction keeper
func NewAuctionKeeper(config *AuctionKeeperConfig, ledger AuctionLedger, clock adapter.Clock) Sweeper {
	return &auctionKeeper{
		config:    config,
		ledger:    ledger,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *auctionKeeper) Name() string {
	return "auction-keeper"
}

// Start runs a sweep cycle every interval until the context is canceled or Stop is called
func (s *auctionKeeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting auction keeper",
		zap.String("keeper", s.config.Keeper.Hex()),
		zap.Duration("interval", s.config.Interval),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithContext(ctx),
	)
	defer s.pool.StopAndWait()

	for {
		if err := s.runSweepCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Auction keeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Auction keeper stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
		}
	}
}

// Stop gracefully stops the keeper, waiting for in-flight settlements
func (s *auctionKeeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping auction keeper")
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Auction keeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Auction keeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle settles every expired auction once
func (s *auctionKeeper) runSweepCycle(ctx context.Context) error {
	cycleID := ulid.MustNewDefault(s.clock.Now()).String()

	auctions, err := s.ledger.ExpiredAuctions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list expired auctions: %w", err)
	}
	if len(auctions) == 0 {
		logger.DebugCtx(ctx, "No expired auctions", zap.String("cycle_id", cycleID))
		return nil
	}

	logger.InfoCtx(ctx, "Found expired auctions",
		zap.String("cycle_id", cycleID),
		zap.Int("count", len(auctions)))

	var settled, skipped, failed atomic.Int32
	group := s.pool.NewGroup()
	for _, auction := range auctions {
		group.Submit(func() {
			switch err := s.settle(ctx, auction); {
			case err == nil:
				settled.Add(1)
			case domain.IsRevert(err):
				// settled by someone else since the listing was read
				skipped.Add(1)
				logger.InfoCtx(ctx, "Auction not settled",
					zap.String("cycle_id", cycleID),
					zap.String("auction_id", auction.ID.Hex()),
					zap.String("reason", err.Error()))
			default:
				failed.Add(1)
				logger.ErrorCtx(ctx, err,
					zap.String("cycle_id", cycleID),
					zap.String("auction_id", auction.ID.Hex()))
			}
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("sweep cycle %s interrupted: %w", cycleID, err)
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.String("cycle_id", cycleID),
		zap.Int32("settled", settled.Load()),
		zap.Int32("skipped", skipped.Load()),
		zap.Int32("failed", failed.Load()))

	return nil
}

// settle submits one settlement, retrying failures that are not ledger reverts
func (s *auctionKeeper) settle(ctx context.Context, auction domain.Auction) error {
	b := backoff.NewExponentialBackOff()
	if s.config.RetryInterval > 0 {
		b.InitialInterval = s.config.RetryInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, s.config.MaxRetries), ctx)

	operation := func() error {
		_, err := s.ledger.SettleAuction(ctx, s.config.Keeper, auction.ID)
		if err != nil && domain.IsRevert(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var attempt int
	notify := func(err error, next time.Duration) {
		attempt++
		logger.WarnCtx(ctx, "Auction settlement failed, retrying",
			zap.Error(err),
			zap.String("auction_id", auction.ID.Hex()),
			zap.Int("attempt", attempt),
			zap.Duration("next_retry_in", next))
	}

	return backoff.RetryNotify(operation, policy, notify)
}
