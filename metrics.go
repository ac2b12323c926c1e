package arraylist

// ListMetrics contains statistical information about a list.
type ListMetrics struct {
	Len           int     // Elements in use
	Capacity      int     // Slots in the backing buffer
	Version       uint64  // Mutation counter
	Reallocations int     // Backing buffer replacements so far
	Utilization   float64 // Ratio of Len to Capacity (0.0-1.0)
}

// Reallocations returns how many times the backing buffer has been replaced.
func (l *ArrayList[T]) Reallocations() int {
	return l.reallocs
}

// Utilization returns the ratio of elements to capacity (0.0 to 1.0).
// Returns 0.0 if the list has no capacity.
func (l *ArrayList[T]) Utilization() float64 {
	if len(l.buf) == 0 {
		return 0
	}
	return float64(l.size) / float64(len(l.buf))
}

// Metrics returns a snapshot of list statistics.
func (l *ArrayList[T]) Metrics() ListMetrics {
	return ListMetrics{
		Len:           l.size,
		Capacity:      len(l.buf),
		Version:       l.version,
		Reallocations: l.reallocs,
		Utilization:   l.Utilization(),
	}
}

// SlabMetrics contains statistical information about a slab.
type SlabMetrics struct {
	SizeInUse   int     // Slots handed out
	Capacity    int     // Total slots across chunks
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// SizeInUse returns the number of slots handed out since the last Reset,
// including blocks abandoned by growing lists.
func (s *Slab[T]) SizeInUse() int {
	sum := 0
	for _, c := range s.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the slab.
func (s *Slab[T]) NumChunks() int {
	return len(s.chunks)
}

// Capacity returns the total number of slots across all chunks.
func (s *Slab[T]) Capacity() int {
	sum := 0
	for _, c := range s.chunks {
		sum += len(c.buf)
	}
	return sum
}

// ChunkSize returns the default chunk size used by this slab.
func (s *Slab[T]) ChunkSize() int {
	return s.chunkSize
}

// Utilization returns the ratio of slots in use to total capacity.
// Returns 0.0 if the slab has no capacity.
func (s *Slab[T]) Utilization() float64 {
	capacity := s.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(s.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of slab statistics.
func (s *Slab[T]) Metrics() SlabMetrics {
	return SlabMetrics{
		SizeInUse:   s.SizeInUse(),
		Capacity:    s.Capacity(),
		NumChunks:   s.NumChunks(),
		ChunkSize:   s.ChunkSize(),
		Utilization: s.Utilization(),
	}
}
