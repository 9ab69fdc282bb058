package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/logger"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/store/schema"
)

type pgStore struct {
	db   *gorm.DB
	json adapter.JSON
	jcs  adapter.JCS
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, json adapter.JSON, jcs adapter.JCS) Store {
	return &pgStore{db: db, json: json, jcs: jcs}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize keeps bulk inserts below PostgreSQL's limit of 65535 bind
// parameters per statement, leaving headroom for gorm-added columns.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// ledgerEventFields is the number of bound columns per ledger_events row
const ledgerEventFields = 10

// SaveCommit stores the events of a committed transaction and the resulting state
func (s *pgStore) SaveCommit(ctx context.Context, receipt *chain.Receipt, state []byte) error {
	records, err := BuildEventRecords(receipt, s.json, s.jcs)
	if err != nil {
		return err
	}

	events := make([]schema.LedgerEvent, len(records))
	for i, r := range records {
		events[i] = toLedgerEvent(r)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(events) > 0 {
			batchSize := calculateSafeBatchSize(len(events), ledgerEventFields)
			if err := tx.CreateInBatches(&events, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert ledger events: %w", err)
			}
		}

		snapshot := schema.LedgerSnapshot{
			ID:     schema.LatestSnapshotID,
			Height: receipt.Height,
			State:  state,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"height", "state", "updated_at"}),
		}).Create(&snapshot).Error
		if err != nil {
			return fmt.Errorf("failed to upsert ledger snapshot: %w", err)
		}

		logger.DebugCtx(ctx, "Ledger commit stored",
			zap.Uint64("height", receipt.Height),
			zap.Int("events", len(events)))

		return nil
	})
}

// LoadSnapshot returns the latest stored ledger state
func (s *pgStore) LoadSnapshot(ctx context.Context) (uint64, []byte, bool, error) {
	var snapshot schema.LedgerSnapshot
	err := s.db.WithContext(ctx).Where("id = ?", schema.LatestSnapshotID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, false, nil
		}
		return 0, nil, false, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	return snapshot.Height, snapshot.State, true, nil
}

// GetEventsAfter returns events positioned strictly after the given position, in ledger order
func (s *pgStore) GetEventsAfter(ctx context.Context, after Position, limit int) ([]*domain.EventRecord, error) {
	query := s.db.WithContext(ctx).
		Where("height > ? OR (height = ? AND event_index > ?)", after.Height, after.Height, after.Index).
		Order("height ASC, event_index ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []schema.LedgerEvent
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to query ledger events: %w", err)
	}

	results := make([]*domain.EventRecord, 0, len(events))
	for i := range events {
		results = append(results, toEventRecord(&events[i]))
	}

	return results, nil
}

// GetEventsByToken returns the events of one project, newest first, with the total count
func (s *pgStore) GetEventsByToken(ctx context.Context, tokenID string, limit int, offset uint64) ([]*domain.EventRecord, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.LedgerEvent{}).Where("token_id = ?", tokenID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger events: %w", err)
	}

	query = query.Order("height DESC, event_index DESC").Offset(int(offset)) //nolint:gosec,G115
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []schema.LedgerEvent
	if err := query.Find(&events).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query ledger events: %w", err)
	}

	results := make([]*domain.EventRecord, 0, len(events))
	for i := range events {
		results = append(results, toEventRecord(&events[i]))
	}

	return results, uint64(total), nil //nolint:gosec,G115
}

// SetKeyValue sets a key-value pair in the key-value store
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// GetKeyValue retrieves a value by key from the key-value store
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}
