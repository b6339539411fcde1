package minheap

// MinHeap is a binary min-heap of (payload, priority) pairs, keyed by an
// IEEE-754 single-precision priority. The zero value is not usable; build
// one with New.
type MinHeap[P any] struct {
	payloads   []P
	priorities []float32
	size       int
}

// New constructs a MinHeap reserving at least capacity entries up front.
// A capacity of 0 is fine; the first Push grows it.
func New[P any](capacity int) *MinHeap[P] {
	if capacity < 0 {
		capacity = 0
	}
	return &MinHeap[P]{
		payloads:   make([]P, capacity),
		priorities: make([]float32, capacity),
	}
}

// Len returns the number of entries currently in the heap.
func (h *MinHeap[P]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no entries.
func (h *MinHeap[P]) IsEmpty() bool { return h.size == 0 }

// Clear empties the heap without releasing its backing arrays, so a
// pathfinder can reuse the same MinHeap across repeated queries without
// re-allocating.
func (h *MinHeap[P]) Clear() {
	h.size = 0
}

// Push inserts payload with the given priority, growing the backing
// arrays by doubling when full.
func (h *MinHeap[P]) Push(payload P, priority float32) {
	if h.size >= len(h.payloads) {
		h.grow()
	}

	i := h.size
	h.payloads[i] = payload
	h.priorities[i] = priority
	h.size++

	// Bubble up.
	for i > 0 {
		parent := (i - 1) >> 1
		if h.priorities[parent] <= h.priorities[i] {
			break
		}
		h.payloads[parent], h.payloads[i] = h.payloads[i], h.payloads[parent]
		h.priorities[parent], h.priorities[i] = h.priorities[i], h.priorities[parent]
		i = parent
	}
}

// Pop removes and returns the payload with the minimal priority. Popping
// an empty heap is undefined behavior per spec §4.4 — callers guarantee
// non-emptiness, so Pop does not check Len itself.
func (h *MinHeap[P]) Pop() P {
	result := h.payloads[0]
	h.size--

	if h.size > 0 {
		h.payloads[0] = h.payloads[h.size]
		h.priorities[0] = h.priorities[h.size]

		// Bubble down.
		i := 0
		for {
			left := (i << 1) + 1
			right := left + 1
			smallest := i

			if left < h.size && h.priorities[left] < h.priorities[smallest] {
				smallest = left
			}
			if right < h.size && h.priorities[right] < h.priorities[smallest] {
				smallest = right
			}
			if smallest == i {
				break
			}

			h.payloads[smallest], h.payloads[i] = h.payloads[i], h.payloads[smallest]
			h.priorities[smallest], h.priorities[i] = h.priorities[i], h.priorities[smallest]
			i = smallest
		}
	}

	return result
}

// grow doubles the backing array capacity, or allocates a starting
// capacity of 1 if the heap was built with capacity 0.
func (h *MinHeap[P]) grow() {
	newCap := len(h.payloads) * 2
	if newCap == 0 {
		newCap = 1
	}
	payloads := make([]P, newCap)
	priorities := make([]float32, newCap)
	copy(payloads, h.payloads)
	copy(priorities, h.priorities)
	h.payloads = payloads
	h.priorities = priorities
}
