package arraylist

// DefaultSlabChunk is the default chunk size for new slabs, in elements.
const DefaultSlabChunk = 1 << 12

// slabChunk is a single chunk of typed slots within a slab.
type slabChunk[T any] struct {
	buf    []T // backing slots
	offset int // next free slot
}

func (c *slabChunk[T]) free() int {
	return len(c.buf) - c.offset
}

// take carves n slots off the front of the free region. The returned slice
// is capped so that appends to it cannot spill into the next block.
func (c *slabChunk[T]) take(n int) []T {
	b := c.buf[c.offset : c.offset+n : c.offset+n]
	c.offset += n
	return b
}

// Slab is a chunked bump allocator of typed slots. Not goroutine-safe.
//
// Blocks are carved sequentially out of large chunks and are never freed
// individually: buffers a list abandons while growing stay in the slab until
// Reset or Release. Chunks are ordinary Go slices of T, so pointer-bearing
// element types remain visible to the garbage collector.
type Slab[T any] struct {
	chunks    []*slabChunk[T]
	chunkSize int
	cur       int
}

// NewSlab creates a new Slab with the specified chunk size.
// If chunkSize <= 0, DefaultSlabChunk is used.
func NewSlab[T any](chunkSize int) *Slab[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultSlabChunk
	}
	s := &Slab[T]{chunkSize: chunkSize}
	s.grow(chunkSize)
	return s
}

// Alloc returns n zeroed slots carved from the slab.
// Returns nil if n <= 0.
func (s *Slab[T]) Alloc(n int) []T {
	if n <= 0 {
		return nil
	}

	// Fast path: current chunk has room
	if s.chunks != nil {
		if c := s.chunks[s.cur]; c.free() >= n {
			return c.take(n)
		}
	}

	return s.allocSlow(n)
}

// allocSlow reuses a later chunk with room, or grows the slab.
func (s *Slab[T]) allocSlow(n int) []T {
	s.panicIfReleased()

	for i := s.cur + 1; i < len(s.chunks); i++ {
		if s.chunks[i].free() >= n {
			s.cur = i
			return s.chunks[i].take(n)
		}
	}

	s.grow(n)
	return s.chunks[s.cur].take(n)
}

// EnsureCapacity ensures the current chunk has at least n free slots.
// If not, it grows the slab with a new chunk.
func (s *Slab[T]) EnsureCapacity(n int) {
	s.panicIfReleased()
	if s.chunks[s.cur].free() < n {
		s.grow(n)
	}
}

// Reset zeroes every handed-out slot and rewinds all chunks for reuse.
// Buffers obtained before Reset must no longer be used.
func (s *Slab[T]) Reset() {
	s.panicIfReleased()
	for _, c := range s.chunks {
		clear(c.buf[:c.offset])
		c.offset = 0
	}
	s.cur = 0
}

// Release drops all chunks and makes the slab unusable.
// Any subsequent allocation will panic.
func (s *Slab[T]) Release() {
	s.chunks = nil
	s.cur = 0
}

// grow appends a new chunk of at least min slots and makes it current.
func (s *Slab[T]) grow(min int) {
	size := max(s.chunkSize, min)
	s.chunks = append(s.chunks, &slabChunk[T]{buf: make([]T, size)})
	s.cur = len(s.chunks) - 1
}

// panicIfReleased panics if the slab has been released.
func (s *Slab[T]) panicIfReleased() {
	if s.chunks == nil {
		panic("arraylist: slab used after Release()")
	}
}
