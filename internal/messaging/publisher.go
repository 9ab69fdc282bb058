package messaging

import (
	"context"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// Publisher defines the interface for publishing ledger events to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a committed ledger event
	PublishEvent(ctx context.Context, event *domain.EventRecord) error
	// Close closes the connection
	Close()
}
