// Package arraylist implements a generic growable array: one contiguous
// backing buffer that doubles on demand, with O(1) indexed access.
//
// # Overview
//
// An ArrayList owns its buffer exclusively and tracks three things: the
// buffer itself (whose length is the capacity), the number of live
// elements, and a version counter bumped on every mutation. It is useful
// where a plain slice is too permissive:
//
//   - Every index is validated and errors are returned, not panicked
//   - Cleared and removed slots are zeroed so no references linger
//   - Traversals detect mutation of the list underneath them
//   - The buffer source is pluggable (Go heap or a Slab)
//
// # Basic Usage
//
//	l := arraylist.New[int]()
//
//	l.Add(10)          // returns 0
//	l.Add(20)          // returns 1
//	l.Insert(1, 15)    // [10 15 20]
//
//	v, err := l.Get(1) // 15, nil
//	_, err = l.Get(9)  // errors.Is(err, arraylist.ErrIndexOutOfRange)
//
//	arraylist.IndexOf(l, 15)  // 1
//	l.Reverse(0, l.Len())     // [20 15 10]
//	l.Sort(0, l.Len(), cmp.Compare[int])
//
// # Growth
//
// An empty list holds no buffer. The first growth allocates
// DefaultCapacity (4) slots; each later growth doubles the capacity, clamped
// to MaxCapacity, or jumps straight to the requested size if doubling is not
// enough. Appends are O(1) amortized and the number of reallocations after n
// appends is O(log n).
//
// SetCapacity reallocates to an exact size and refuses to drop live
// elements. Setting the capacity of an empty list to 0 reallocates to
// DefaultCapacity instead of freeing the buffer.
//
// # Traversal
//
// Enumerator and All capture the version when they start. If the list is
// mutated before the walk ends, Enumerator.Err reports a
// *ConcurrentModificationError and All panics with one:
//
//	for i, v := range l.All() {
//		fmt.Println(i, v)
//	}
//
// # Allocators
//
// By default buffers come from the Go heap. A Slab carves buffers out of
// large chunks and releases them in bulk, which suits many short-lived lists:
//
//	slab := arraylist.NewSlab[int](0)
//	defer slab.Release()
//
//	l := arraylist.New(arraylist.WithAllocator[int](slab))
//
// # Thread Safety
//
// Neither ArrayList nor Slab is safe for concurrent use.
package arraylist
