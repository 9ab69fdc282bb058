package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	tests := []struct {
		name                       string
		maxOpen, maxIdle           int
		lifetime, idleTime         time.Duration
		wantOpen, wantIdle         int
		wantLifetime, wantIdleTime time.Duration
	}{
		{
			name:     "defaults",
			wantOpen: 20, wantIdle: 5, wantLifetime: 5 * time.Minute, wantIdleTime: 10 * time.Minute,
		},
		{
			name:    "explicit values kept",
			maxOpen: 50, maxIdle: 10, lifetime: time.Minute, idleTime: 2 * time.Minute,
			wantOpen: 50, wantIdle: 10, wantLifetime: time.Minute, wantIdleTime: 2 * time.Minute,
		},
		{
			name:    "idle clamped to open",
			maxOpen: 4, maxIdle: 8,
			wantOpen: 4, wantIdle: 4, wantLifetime: 5 * time.Minute, wantIdleTime: 10 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(tt.maxOpen, tt.maxIdle, tt.lifetime, tt.idleTime)
			assert.Equal(t, tt.wantOpen, open)
			assert.Equal(t, tt.wantIdle, idle)
			assert.Equal(t, tt.wantLifetime, lifetime)
			assert.Equal(t, tt.wantIdleTime, idleTime)
		})
	}
}

func TestCalculateSafeBatchSize(t *testing.T) {
	assert.Equal(t, 3, calculateSafeBatchSize(3, ledgerEventFields))
	assert.Equal(t, (65535-1000)/ledgerEventFields, calculateSafeBatchSize(100000, ledgerEventFields))
	assert.Equal(t, 1, calculateSafeBatchSize(10, 100000))
}

func TestPositionAfter(t *testing.T) {
	assert.True(t, Position{Height: 2}.After(Position{Height: 1, Index: 9}))
	assert.True(t, Position{Height: 1, Index: 1}.After(Position{Height: 1}))
	assert.False(t, Position{Height: 1}.After(Position{Height: 1}))
	assert.False(t, Position{Height: 1, Index: 5}.After(Position{Height: 2}))
}

func TestParsePosition(t *testing.T) {
	pos, err := parsePosition(formatPosition(Position{Height: 42, Index: 3}))
	assert.NoError(t, err)
	assert.Equal(t, Position{Height: 42, Index: 3}, pos)

	for _, bad := range []string{"", "42", "x:1", "1:y"} {
		_, err := parsePosition(bad)
		assert.Error(t, err, bad)
	}
}
