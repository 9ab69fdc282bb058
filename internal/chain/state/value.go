package state

// Value is a journaled single value
type Value[T any] struct {
	journal *Journal
	v       T
}

// NewValue creates a journaled value holding initial
func NewValue[T any](j *Journal, initial T) *Value[T] {
	return &Value[T]{journal: j, v: initial}
}

// Get returns the current value
func (s *Value[T]) Get() T {
	return s.v
}

// Set replaces the value
func (s *Value[T]) Set(v T) {
	prev := s.v
	s.journal.record(func() {
		s.v = prev
	})
	s.v = v
}

// Import replaces the value without journaling
func (s *Value[T]) Import(v T) {
	s.v = v
}
