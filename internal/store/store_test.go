package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

var (
	testMarket = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	testSeller = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	testToken  = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	testTime   = uint64(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).Unix())
)

// buildTestReceipt creates a receipt at height with n sale-removed events for tokenID
func buildTestReceipt(height uint64, tokenID common.Hash, n int) *chain.Receipt {
	receipt := &chain.Receipt{
		Height:    height,
		Timestamp: testTime + height,
		Caller:    testSeller,
	}
	for i := 0; i < n; i++ {
		id := tokenID
		receipt.Events = append(receipt.Events, domain.Event{
			Height:    height,
			Index:     i,
			Timestamp: receipt.Timestamp,
			Type:      domain.EventSaleRemoved,
			Source:    testMarket,
			TokenID:   &id,
			Payload: domain.SaleRemoved{
				SaleID:  common.BigToHash(common.Big1),
				TokenID: tokenID,
				Seller:  testSeller,
				Share:   uint64(i + 1), //nolint:gosec,G115
			},
		})
	}
	return receipt
}

func buildTestState(height uint64) []byte {
	return []byte(fmt.Sprintf(`{"height":%d}`, height))
}

func testSaveCommitAndLoadSnapshot(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("fresh database has no snapshot", func(t *testing.T) {
		_, _, found, err := store.LoadSnapshot(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("latest commit replaces the snapshot", func(t *testing.T) {
		tokenID := common.HexToHash("0x01")
		require.NoError(t, store.SaveCommit(ctx, buildTestReceipt(1, tokenID, 2), buildTestState(1)))
		require.NoError(t, store.SaveCommit(ctx, buildTestReceipt(2, tokenID, 0), buildTestState(2)))

		height, state, found, err := store.LoadSnapshot(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, uint64(2), height)
		assert.JSONEq(t, string(buildTestState(2)), string(state))
	})

	t.Run("duplicate height rolls back the whole commit", func(t *testing.T) {
		tokenID := common.HexToHash("0x02")
		require.NoError(t, store.SaveCommit(ctx, buildTestReceipt(3, tokenID, 1), buildTestState(3)))

		err := store.SaveCommit(ctx, buildTestReceipt(3, tokenID, 1), buildTestState(99))
		require.Error(t, err)

		height, state, found, err := store.LoadSnapshot(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, uint64(3), height)
		assert.JSONEq(t, string(buildTestState(3)), string(state))
	})
}

func testGetEventsAfter(t *testing.T, store Store) {
	ctx := context.Background()
	tokenID := common.HexToHash("0x0a")

	require.NoError(t, store.SaveCommit(ctx, buildTestReceipt(1, tokenID, 3), buildTestState(1)))
	require.NoError(t, store.SaveCommit(ctx, buildTestReceipt(2, tokenID, 0), buildTestState(2)))
	require.NoError(t, store.SaveCommit(ctx, buildTestReceipt(3, tokenID, 2), buildTestState(3)))

	positions := func(records []*domain.EventRecord) []Position {
		var out []Position
		for _, r := range records {
			out = append(out, Position{Height: r.Height, Index: r.Index})
		}
		return out
	}

	t.Run("from the beginning in ledger order", func(t *testing.T) {
		records, err := store.GetEventsAfter(ctx, Position{}, 0)
		require.NoError(t, err)
		assert.Equal(t, []Position{
			{Height: 1, Index: 0}, {Height: 1, Index: 1}, {Height: 1, Index: 2},
			{Height: 3, Index: 0}, {Height: 3, Index: 1},
		}, positions(records))
	})

	t.Run("after a position within a transaction", func(t *testing.T) {
		records, err := store.GetEventsAfter(ctx, Position{Height: 1, Index: 1}, 2)
		require.NoError(t, err)
		assert.Equal(t, []Position{{Height: 1, Index: 2}, {Height: 3, Index: 0}}, positions(records))
	})

	t.Run("after the last event", func(t *testing.T) {
		records, err := store.GetEventsAfter(ctx, Position{Height: 3, Index: 1}, 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("records carry the canonical payload and its checksum", func(t *testing.T) {
		records, err := store.GetEventsAfter(ctx, Position{}, 1)
		require.NoError(t, err)
		require.Len(t, records, 1)

		r := records[0]
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, domain.EventSaleRemoved, r.Type)
		assert.Equal(t, testMarket.Hex(), r.Source)
		require.NotNil(t, r.TokenID)
		assert.Equal(t, tokenID.Hex(), *r.TokenID)
		assert.Equal(t, testTime+1, r.Timestamp)
		assert.Equal(t, Checksum(r.Payload), r.Checksum)

		var payload domain.SaleRemoved
		require.NoError(t, json.Unmarshal(r.Payload, &payload))
		assert.Equal(t, testSeller, payload.Seller)
		assert.Equal(t, uint64(1), payload.Share)
	})
}

func testGetEventsByToken(t *testing.T, store Store) {
	ctx := context.Background()
	first := common.HexToHash("0x0b")
	second := common.HexToHash("0x0c")

	require.NoError(t, store.SaveCommit(ctx, buildTestReceipt(1, first, 2), buildTestState(1)))
	require.NoError(t, store.SaveCommit(ctx, buildTestReceipt(2, second, 1), buildTestState(2)))
	require.NoError(t, store.SaveCommit(ctx, buildTestReceipt(3, first, 1), buildTestState(3)))

	records, total, err := store.GetEventsByToken(ctx, first.Hex(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, records, 2)
	assert.Equal(t, uint64(3), records[0].Height)
	assert.Equal(t, uint64(1), records[1].Height)
	assert.Equal(t, 1, records[1].Index)

	records, total, err = store.GetEventsByToken(ctx, first.Hex(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].Index)

	records, total, err = store.GetEventsByToken(ctx, common.HexToHash("0xff").Hex(), 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, records)
}

func testEventsWithoutToken(t *testing.T, store Store) {
	ctx := context.Background()
	receipt := &chain.Receipt{
		Height:    1,
		Timestamp: testTime,
		Caller:    testSeller,
		Events: []domain.Event{{
			Height:    1,
			Timestamp: testTime,
			Type:      domain.EventTokenTransfer,
			Source:    testToken,
			Payload: domain.TokenTransfer{
				Token:  testToken,
				From:   testSeller,
				To:     testMarket,
				Amount: uint256.NewInt(1000),
			},
		}},
	}
	require.NoError(t, store.SaveCommit(ctx, receipt, buildTestState(1)))

	records, err := store.GetEventsAfter(ctx, Position{}, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].TokenID)
	assert.JSONEq(t, `{"amount":"1000","from":"`+testSeller.Hex()+`","to":"`+testMarket.Hex()+`","token":"`+testToken.Hex()+`"}`,
		string(records[0].Payload))
}

func testEventCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("missing cursor is the zero position", func(t *testing.T) {
		pos, err := store.GetCursor(ctx, "jetstream")
		require.NoError(t, err)
		assert.Equal(t, Position{}, pos)
	})

	t.Run("set and update cursor", func(t *testing.T) {
		require.NoError(t, store.SetCursor(ctx, "jetstream", Position{Height: 5, Index: 2}))
		require.NoError(t, store.SetCursor(ctx, "jetstream", Position{Height: 7, Index: 0}))

		pos, err := store.GetCursor(ctx, "jetstream")
		require.NoError(t, err)
		assert.Equal(t, Position{Height: 7, Index: 0}, pos)
	})

	t.Run("cursors are independent", func(t *testing.T) {
		require.NoError(t, store.SetCursor(ctx, "audit", Position{Height: 1, Index: 1}))

		pos, err := store.GetCursor(ctx, "jetstream")
		require.NoError(t, err)
		assert.Equal(t, Position{Height: 7, Index: 0}, pos)
	})

	t.Run("corrupt cursor is an error", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, cursorKey("broken"), "not-a-position"))

		_, err := store.GetCursor(ctx, "broken")
		require.Error(t, err)
	})
}

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set and get key-value", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "test:key1", "value1"))

		value, err := store.GetKeyValue(ctx, "test:key1")
		require.NoError(t, err)
		assert.Equal(t, "value1", value)
	})

	t.Run("get non-existent key returns empty string", func(t *testing.T) {
		value, err := store.GetKeyValue(ctx, "nonexistent:key")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("update existing key", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "test:key2", "value1"))
		require.NoError(t, store.SetKeyValue(ctx, "test:key2", "value2"))

		value, err := store.GetKeyValue(ctx, "test:key2")
		require.NoError(t, err)
		assert.Equal(t, "value2", value)
	})
}

// RunStoreTests runs every store test against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"SaveCommitAndLoadSnapshot", testSaveCommitAndLoadSnapshot},
		{"GetEventsAfter", testGetEventsAfter},
		{"GetEventsByToken", testGetEventsByToken},
		{"EventsWithoutToken", testEventsWithoutToken},
		{"EventCursor", testEventCursor},
		{"KeyValueStore", testKeyValueStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, initDB(t))
		})
	}
}
