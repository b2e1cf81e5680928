package core

// IsCyclical reports whether seq is composed entirely of a repeating
// sub-pattern (A-A-A, A-B-A-B, A-B-C-A-B-C, ...). Candidate periods are
// checked ascending, so the minimal period decides. Sequences shorter than
// four elements carry too little evidence and always return false.
func IsCyclical(seq []int) bool {
	n := len(seq)
	if n < 4 {
		return false
	}
	for k := 1; k <= n/2; k++ {
		cycle := true
		for i := k; i < n; i++ {
			if seq[i] != seq[i-k] {
				cycle = false
				break
			}
		}
		if cycle {
			return true
		}
	}
	return false
}

// History is a fixed-capacity FIFO of observed values. Once full, each push
// evicts the oldest entry.
type History struct {
	capacity int
	values   []int
}

// NewHistory constructs a history holding at most capacity values.
// A non-positive capacity yields a history that is never full.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{capacity: capacity}
}

// Push appends v, evicting the oldest value when at capacity.
func (h *History) Push(v int) {
	if h.capacity == 0 {
		return
	}
	if len(h.values) == h.capacity {
		h.values = append(h.values[:0], h.values[1:]...)
		h.values = append(h.values, v)
		return
	}
	h.values = append(h.values, v)
}

// Full reports whether the history holds capacity values.
func (h *History) Full() bool {
	return h.capacity > 0 && len(h.values) == h.capacity
}

// Len returns the number of stored values.
func (h *History) Len() int { return len(h.values) }

// Values returns the stored values, oldest first. The slice is owned by the
// history and must not be mutated.
func (h *History) Values() []int { return h.values }

// Clear discards all stored values.
func (h *History) Clear() { h.values = h.values[:0] }
