package schema

import (
	"time"

	"gorm.io/datatypes"
)

// LatestSnapshotID is the primary key of the single snapshot row
const LatestSnapshotID = 1

// LedgerSnapshot represents the ledger_snapshots table. Only the latest state is kept.
type LedgerSnapshot struct {
	ID        int            `gorm:"column:id;primaryKey"`
	Height    uint64         `gorm:"column:height;not null"`
	State     datatypes.JSON `gorm:"column:state;not null;type:jsonb"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (LedgerSnapshot) TableName() string {
	return "ledger_snapshots"
}
