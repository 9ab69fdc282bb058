package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain/state"
)

func TestMapRevert(t *testing.T) {
	j := state.NewJournal()
	m := state.NewMap[string, int](j)

	m.Set("a", 1)
	j.Commit()

	snapshot := j.Snapshot()
	m.Set("a", 2)
	m.Set("b", 3)
	m.Delete("a")
	m.Delete("missing")
	assert.Equal(t, 3, j.Len())
	assert.False(t, m.Has("a"))

	j.RevertTo(snapshot)
	assert.Equal(t, 0, j.Len())
	assert.Equal(t, 1, m.Value("a"))
	assert.False(t, m.Has("b"))
	assert.Equal(t, 1, m.Len())
}

func TestNestedSnapshots(t *testing.T) {
	j := state.NewJournal()
	v := state.NewValue(j, "genesis")

	v.Set("first")
	outer := j.Snapshot()
	v.Set("second")
	inner := j.Snapshot()
	v.Set("third")

	j.RevertTo(inner)
	assert.Equal(t, "second", v.Get())
	j.RevertTo(outer)
	assert.Equal(t, "first", v.Get())
	j.RevertTo(0)
	assert.Equal(t, "genesis", v.Get())
}

func TestRevertToInvalidSnapshotIsNoop(t *testing.T) {
	j := state.NewJournal()
	v := state.NewValue(j, 1)
	v.Set(2)

	j.RevertTo(5)
	j.RevertTo(-1)
	assert.Equal(t, 2, v.Get())
}

func TestImportIsNotJournaled(t *testing.T) {
	j := state.NewJournal()
	m := state.NewMap[string, int](j)
	v := state.NewValue(j, 0)

	m.Import(map[string]int{"x": 1, "y": 2})
	v.Import(7)
	assert.Equal(t, 0, j.Len())

	exported := m.Export()
	exported["z"] = 3
	assert.False(t, m.Has("z"))
	assert.Equal(t, 7, v.Get())
}

func TestRangeStops(t *testing.T) {
	j := state.NewJournal()
	m := state.NewMap[int, bool](j)
	for i := 0; i < 10; i++ {
		m.Set(i, true)
	}

	visited := 0
	m.Range(func(int, bool) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}
