// Package state provides journaled containers for ledger state. Every write records
// an undo entry so that a failed transaction can be rolled back to a snapshot.
package state

// Journal records undo operations in write order
type Journal struct {
	entries []func()
}

// NewJournal creates an empty journal
func NewJournal() *Journal {
	return &Journal{}
}

// Snapshot returns an identifier of the current journal position
func (j *Journal) Snapshot() int {
	return len(j.entries)
}

// RevertTo undoes every write recorded after the snapshot, newest first
func (j *Journal) RevertTo(snapshot int) {
	if snapshot < 0 || snapshot > len(j.entries) {
		return
	}
	for i := len(j.entries) - 1; i >= snapshot; i-- {
		j.entries[i]()
		j.entries[i] = nil
	}
	j.entries = j.entries[:snapshot]
}

// Commit forgets all recorded undo entries
func (j *Journal) Commit() {
	clear(j.entries)
	j.entries = j.entries[:0]
}

// Len returns the number of recorded writes
func (j *Journal) Len() int {
	return len(j.entries)
}

func (j *Journal) record(undo func()) {
	j.entries = append(j.entries, undo)
}
