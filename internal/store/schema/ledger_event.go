package schema

import (
	"time"

	"gorm.io/datatypes"
)

// LedgerEvent represents the ledger_events table - every event of every committed transaction
type LedgerEvent struct {
	// ID is a ULID assigned when the event is stored
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Height is the height of the transaction that emitted the event
	Height uint64 `gorm:"column:height;not null;uniqueIndex:idx_ledger_events_position,priority:1"`
	// EventIndex is the position of the event within its transaction
	EventIndex int `gorm:"column:event_index;not null;uniqueIndex:idx_ledger_events_position,priority:2"`
	// EventType is the ledger event type (sale_created, bid_placed, ...)
	EventType string `gorm:"column:event_type;not null;type:text;index"`
	// Source is the hex address of the emitting component
	Source string `gorm:"column:source;not null;type:text"`
	// TokenID is the hex project id for events about a single project
	TokenID *string `gorm:"column:token_id;type:text;index"`
	// Payload is the canonical (RFC 8785) JSON body of the event
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// Checksum is the hex sha256 of Payload
	Checksum string `gorm:"column:checksum;not null;type:text"`
	// Timestamp is the ledger time of the transaction
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the LedgerEvent model
func (LedgerEvent) TableName() string {
	return "ledger_events"
}
