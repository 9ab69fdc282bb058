package state

// Map is a journaled map. Values are stored by value; pointer values must be
// treated as immutable once stored.
type Map[K comparable, V any] struct {
	journal *Journal
	items   map[K]V
}

// NewMap creates a journaled map writing undo entries to j
func NewMap[K comparable, V any](j *Journal) *Map[K, V] {
	return &Map[K, V]{journal: j, items: make(map[K]V)}
}

// Get returns the value stored for k
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.items[k]
	return v, ok
}

// Value returns the value stored for k or the zero value
func (m *Map[K, V]) Value(k K) V {
	return m.items[k]
}

// Has reports whether k is present
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.items[k]
	return ok
}

// Set stores v for k
func (m *Map[K, V]) Set(k K, v V) {
	prev, existed := m.items[k]
	m.journal.record(func() {
		if existed {
			m.items[k] = prev
		} else {
			delete(m.items, k)
		}
	})
	m.items[k] = v
}

// Delete removes k
func (m *Map[K, V]) Delete(k K) {
	prev, existed := m.items[k]
	if !existed {
		return
	}
	m.journal.record(func() {
		m.items[k] = prev
	})
	delete(m.items, k)
}

// Len returns the number of entries
func (m *Map[K, V]) Len() int {
	return len(m.items)
}

// Range calls fn for every entry until fn returns false. Iteration order is unspecified.
func (m *Map[K, V]) Range(fn func(k K, v V) bool) {
	for k, v := range m.items {
		if !fn(k, v) {
			return
		}
	}
}

// Export returns a copy of the entries
func (m *Map[K, V]) Export() map[K]V {
	out := make(map[K]V, len(m.items))
	for k, v := range m.items {
		out[k] = v
	}
	return out
}

// Import replaces all entries without journaling. Only used when restoring a snapshot.
func (m *Map[K, V]) Import(items map[K]V) {
	m.items = make(map[K]V, len(items))
	for k, v := range items {
		m.items[k] = v
	}
}
