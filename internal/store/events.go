package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/store/schema"
)

// BuildEventRecords converts the events of a committed transaction into their persisted form.
// Payloads are canonicalized with JCS so the checksum is stable across encoders.
func BuildEventRecords(receipt *chain.Receipt, json adapter.JSON, jcs adapter.JCS) ([]*domain.EventRecord, error) {
	records := make([]*domain.EventRecord, 0, len(receipt.Events))
	for _, ev := range receipt.Events {
		raw, err := json.Marshal(ev.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", ev.Type, err)
		}
		canonical, err := jcs.Transform(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to canonicalize %s payload: %w", ev.Type, err)
		}

		var tokenID *string
		if ev.TokenID != nil {
			id := ev.TokenID.Hex()
			tokenID = &id
		}

		ts := time.Unix(int64(ev.Timestamp), 0) //nolint:gosec,G115
		records = append(records, &domain.EventRecord{
			ID:        ulid.MustNewDefault(ts).String(),
			Height:    ev.Height,
			Index:     ev.Index,
			Timestamp: ev.Timestamp,
			Type:      ev.Type,
			Source:    ev.Source.Hex(),
			TokenID:   tokenID,
			Payload:   canonical,
			Checksum:  Checksum(canonical),
		})
	}
	return records, nil
}

// Checksum returns the hex sha256 of a canonical payload
func Checksum(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func toLedgerEvent(r *domain.EventRecord) schema.LedgerEvent {
	return schema.LedgerEvent{
		ID:         r.ID,
		Height:     r.Height,
		EventIndex: r.Index,
		EventType:  string(r.Type),
		Source:     r.Source,
		TokenID:    r.TokenID,
		Payload:    []byte(r.Payload),
		Checksum:   r.Checksum,
		Timestamp:  time.Unix(int64(r.Timestamp), 0).UTC(), //nolint:gosec,G115
	}
}

func toEventRecord(e *schema.LedgerEvent) *domain.EventRecord {
	return &domain.EventRecord{
		ID:        e.ID,
		Height:    e.Height,
		Index:     e.EventIndex,
		Timestamp: uint64(e.Timestamp.Unix()), //nolint:gosec,G115
		Type:      domain.EventType(e.EventType),
		Source:    e.Source,
		TokenID:   e.TokenID,
		Payload:   []byte(e.Payload),
		Checksum:  e.Checksum,
	}
}
