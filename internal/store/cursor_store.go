package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/store/schema"
)

// CursorStore defines the interface for storing and retrieving event cursors
type CursorStore interface {
	// GetCursor retrieves the position of the last event a consumer processed
	GetCursor(ctx context.Context, name string) (Position, error)
	// SetCursor stores the position of the last event a consumer processed
	SetCursor(ctx context.Context, name string, pos Position) error
}

func cursorKey(name string) string {
	return fmt.Sprintf("event_cursor:%s", name)
}

// GetCursor retrieves the position of the last processed event. A missing cursor is the zero position.
func (s *pgStore) GetCursor(ctx context.Context, name string) (Position, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", cursorKey(name)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Position{}, nil
		}
		return Position{}, fmt.Errorf("failed to get event cursor: %w", err)
	}

	pos, err := parsePosition(kv.Value)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse event cursor: %w", err)
	}

	return pos, nil
}

// SetCursor stores the position of the last processed event
func (s *pgStore) SetCursor(ctx context.Context, name string, pos Position) error {
	kv := schema.KeyValueStore{
		Key:   cursorKey(name),
		Value: formatPosition(pos),
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set event cursor: %w", err)
	}

	return nil
}

func formatPosition(p Position) string {
	return strconv.FormatUint(p.Height, 10) + ":" + strconv.Itoa(p.Index)
}

func parsePosition(s string) (Position, error) {
	height, index, ok := strings.Cut(s, ":")
	if !ok {
		return Position{}, fmt.Errorf("malformed position %q", s)
	}
	h, err := strconv.ParseUint(height, 10, 64)
	if err != nil {
		return Position{}, err
	}
	i, err := strconv.Atoi(index)
	if err != nil {
		return Position{}, err
	}
	return Position{Height: h, Index: i}, nil
}
