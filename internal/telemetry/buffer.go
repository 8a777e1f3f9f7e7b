package telemetry

import "sync"

const DefaultMaxCapacity = 25000

// Buffer is an append-only, insertion-ordered list holding at most capacity
// entries. Overflow drops the oldest entries in one step.
type Buffer[T any] struct {
	mu       sync.RWMutex
	items    []T
	capacity int
	appended uint64
	evicted  uint64
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		capacity = DefaultMaxCapacity
	}
	return &Buffer[T]{
		items:    make([]T, 0, min(capacity, 1024)),
		capacity: capacity,
	}
}

func (b *Buffer[T]) Append(v T) {
	b.mu.Lock()
	b.items = append(b.items, v)
	b.appended++
	if excess := len(b.items) - b.capacity; excess > 0 {
		clear(b.items[:excess])
		b.items = b.items[excess:]
		b.evicted += uint64(excess)
	}
	b.mu.Unlock()
}

// Filter copies the entries accepted by keep, preserving insertion order.
func (b *Buffer[T]) Filter(keep func(T) bool) []T {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]T, 0)
	for _, v := range b.items {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (b *Buffer[T]) Snapshot() []T {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Buffer[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

func (b *Buffer[T]) Capacity() int {
	return b.capacity
}

// Counters returns the totals of appended and evicted entries since creation.
func (b *Buffer[T]) Counters() (appended, evicted uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.appended, b.evicted
}
