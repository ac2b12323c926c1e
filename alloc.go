package arraylist

// Allocator is the source of backing buffers for an ArrayList.
//
// Alloc must return a slice with len and cap both equal to n whose elements
// are all zero values. Returns nil if n <= 0.
type Allocator[T any] interface {
	Alloc(n int) []T
}

// HeapAllocator allocates every buffer from the Go heap. It is the default.
type HeapAllocator[T any] struct{}

// Alloc returns a freshly made, zeroed slice of n elements.
func (HeapAllocator[T]) Alloc(n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n)
}

// emptyBuffer returns the buffer shared by every list with zero capacity.
// The runtime backs all zero-size allocations with one process-wide
// address, so this never allocates.
func emptyBuffer[T any]() []T {
	return []T{}
}
