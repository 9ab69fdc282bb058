package adapter

import "time"

// Clock is the wall clock of the ledger. Block timestamps, auction deadlines and
// signature deadlines all read it, so tests drive time through a mock.
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current time
	Now() time.Time
	// After waits for d and then sends the current time on the returned channel
	After(d time.Duration) <-chan time.Time
}

// SystemClock reads the operating system clock
type SystemClock struct{}

// NewClock creates a clock backed by the operating system
func NewClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
