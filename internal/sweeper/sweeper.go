package sweeper

import (
	"context"
)

// Sweeper is a background loop that periodically drives the ledger forward,
// such as settling auctions whose end time has passed.
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs sweep cycles until ctx is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop ends the loop and waits for in-flight work, bounded by ctx
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
