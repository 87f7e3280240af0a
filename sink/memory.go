package sink

import "sync"

// MemorySink retains every appended tuple in memory, in append order. It is
// the sink tests and small interactive queries use; callers that need a
// stable multiset comparison should sort Tuples() or use go-cmp with
// cmpopts.SortSlices, since Append order is not itself a contract — the
// executor emits in depth-first/batch order, not sorted order.
type MemorySink struct {
	mu     sync.Mutex
	tuples []Tuple
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Append records t. Never returns an error; it exists to satisfy Sink.
func (m *MemorySink) Append(t Tuple) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tuples = append(m.tuples, t)

	return nil
}

// Tuples returns a defensive copy of every tuple appended so far.
func (m *MemorySink) Tuples() []Tuple {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Tuple, len(m.tuples))
	copy(out, m.tuples)

	return out
}

// Len returns the number of tuples appended so far.
func (m *MemorySink) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.tuples)
}

// ByTag returns a defensive copy of every tuple tagged tag, in append
// order. Convenient for asserting "one EMERGED, zero DELETED" style
// expectations without filtering Tuples() by hand at every call site.
func (m *MemorySink) ByTag(tag Tag) []Tuple {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Tuple
	for _, t := range m.tuples {
		if t.Tag == tag {
			out = append(out, t)
		}
	}

	return out
}

// Reset discards every tuple appended so far.
func (m *MemorySink) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tuples = nil
}
