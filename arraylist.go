package arraylist

import (
	"log/slog"
	"math"
	"slices"
)

const (
	// DefaultCapacity is the capacity of the first buffer a list allocates
	// when it grows from empty.
	DefaultCapacity = 4

	// MaxCapacity is the largest capacity a list will grow to.
	MaxCapacity = math.MaxInt32

	// NotFound is returned by the search functions when no element matches.
	NotFound = -1
)

// ArrayList is a growable, index-addressable sequence backed by one
// contiguous buffer. Not goroutine-safe.
//
// The zero value is an empty list that allocates from the Go heap.
type ArrayList[T any] struct {
	buf      []T // len(buf) is the capacity
	size     int
	version  uint64
	reallocs int
	alloc    Allocator[T]
	logger   *slog.Logger
}

// New creates an empty list. No buffer is allocated until the first element
// is added.
func New[T any](opts ...Option[T]) *ArrayList[T] {
	o := buildOptions(opts)
	return &ArrayList[T]{
		buf:    emptyBuffer[T](),
		alloc:  o.alloc,
		logger: o.logger,
	}
}

// NewWithCapacity creates an empty list with room for exactly capacity
// elements. A capacity of 0 behaves like New.
func NewWithCapacity[T any](capacity int, opts ...Option[T]) (*ArrayList[T], error) {
	if capacity < 0 {
		return nil, argErr("NewWithCapacity", "capacity", capacity, "must not be negative")
	}
	if capacity > MaxCapacity {
		return nil, argErr("NewWithCapacity", "capacity", capacity, "exceeds MaxCapacity")
	}
	l := New(opts...)
	if capacity > 0 {
		l.buf = l.allocator().Alloc(capacity)
	}
	return l, nil
}

// Len returns the number of elements in the list.
func (l *ArrayList[T]) Len() int {
	return l.size
}

// Capacity returns the number of slots in the backing buffer. It is never
// less than Len.
func (l *ArrayList[T]) Capacity() int {
	return len(l.buf)
}

// Version returns the mutation counter. It increases on every structural
// or element change, including reallocation.
func (l *ArrayList[T]) Version() uint64 {
	return l.version
}

// SetCapacity reallocates the backing buffer to exactly value slots.
//
// Setting a capacity below Len fails with ErrInvalidArgument. Setting it to
// 0 on an empty list reallocates to DefaultCapacity rather than releasing the
// buffer.
func (l *ArrayList[T]) SetCapacity(value int) error {
	if value < l.size {
		return argErr("SetCapacity", "capacity", value, "less than length")
	}
	if value > MaxCapacity {
		return argErr("SetCapacity", "capacity", value, "exceeds MaxCapacity")
	}
	if value == len(l.buf) {
		return nil
	}
	if value == 0 {
		// TODO: release to the empty buffer instead once callers stop relying on the default-size reallocation.
		value = DefaultCapacity
		if value == len(l.buf) {
			return nil
		}
	}

	old := len(l.buf)
	buf := l.allocator().Alloc(value)
	copy(buf, l.buf[:l.size])
	l.buf = buf
	l.reallocs++
	l.version++

	if l.logger != nil {
		l.logger.Debug("arraylist: reallocated backing buffer",
			"old_capacity", old,
			"new_capacity", value,
			"len", l.size,
		)
	}
	return nil
}

// ensureCapacity grows the buffer so it holds at least min slots, doubling
// the current capacity where possible.
func (l *ArrayList[T]) ensureCapacity(min int) error {
	if len(l.buf) >= min {
		return nil
	}
	if min > MaxCapacity {
		return ErrCapacityExceeded
	}

	newCap := DefaultCapacity
	if len(l.buf) > 0 {
		newCap = len(l.buf) * 2
		if newCap > MaxCapacity || newCap < 0 {
			newCap = MaxCapacity
		}
	}
	if newCap < min {
		newCap = min
	}
	return l.SetCapacity(newCap)
}

// Get returns the element at index.
func (l *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, indexErr("Get", index, l.size)
	}
	return l.buf[index], nil
}

// Set replaces the element at index. It never extends the list.
func (l *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= l.size {
		return indexErr("Set", index, l.size)
	}
	l.buf[index] = value
	l.version++
	return nil
}

// Add appends value and returns the index it was stored at.
func (l *ArrayList[T]) Add(value T) (int, error) {
	if err := l.ensureCapacity(l.size + 1); err != nil {
		return NotFound, err
	}
	index := l.size
	l.buf[index] = value
	l.version++
	l.size++
	return index, nil
}

// Insert places value at index, shifting later elements one slot right.
// Inserting at Len is equivalent to Add.
func (l *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > l.size {
		return indexErr("Insert", index, l.size)
	}
	if err := l.ensureCapacity(l.size + 1); err != nil {
		return err
	}
	if index < l.size {
		copy(l.buf[index+1:l.size+1], l.buf[index:l.size])
	}
	l.buf[index] = value
	l.size++
	l.version++
	return nil
}

// RemoveAt deletes the element at index, shifting later elements one slot
// left. Capacity is unchanged.
func (l *ArrayList[T]) RemoveAt(index int) error {
	if index < 0 || index >= l.size {
		return indexErr("RemoveAt", index, l.size)
	}
	l.size--
	if index < l.size {
		copy(l.buf[index:l.size], l.buf[index+1:l.size+1])
	}
	var zero T
	l.buf[l.size] = zero
	l.version++
	return nil
}

// Clear removes all elements, zeroing their slots so the list retains no
// references. Capacity is unchanged.
func (l *ArrayList[T]) Clear() {
	if l.size > 0 {
		clear(l.buf[:l.size])
		l.size = 0
	}
	l.version++
}

// Clone returns an independent copy whose capacity equals Len. The version
// counter is copied as is.
func (l *ArrayList[T]) Clone() *ArrayList[T] {
	c := &ArrayList[T]{
		buf:     emptyBuffer[T](),
		size:    l.size,
		version: l.version,
		alloc:   l.alloc,
		logger:  l.logger,
	}
	if l.size > 0 {
		c.buf = c.allocator().Alloc(l.size)
		copy(c.buf, l.buf[:l.size])
	}
	return c
}

// CopyTo copies the elements into dst starting at dst[0].
func (l *ArrayList[T]) CopyTo(dst []T) error {
	return l.CopyToAt(dst, 0)
}

// CopyToAt copies the elements into dst starting at dst[offset].
func (l *ArrayList[T]) CopyToAt(dst []T, offset int) error {
	if dst == nil {
		return argErr("CopyTo", "destination length", 0, "destination is nil")
	}
	if offset < 0 || offset > len(dst) {
		return indexErr("CopyTo", offset, len(dst))
	}
	if len(dst)-offset < l.size {
		return argErr("CopyTo", "destination length", len(dst), "too small for list")
	}
	copy(dst[offset:], l.buf[:l.size])
	return nil
}

// Slice returns a copy of the elements in order.
func (l *ArrayList[T]) Slice() []T {
	return slices.Clone(l.buf[:l.size])
}

// IndexFunc returns the index of the first element satisfying match, or
// NotFound.
func (l *ArrayList[T]) IndexFunc(match func(T) bool) int {
	for i := 0; i < l.size; i++ {
		if match(l.buf[i]) {
			return i
		}
	}
	return NotFound
}

// Reverse reverses the order of count elements starting at index.
func (l *ArrayList[T]) Reverse(index, count int) error {
	if err := l.checkRange("Reverse", index, count); err != nil {
		return err
	}
	slices.Reverse(l.buf[index : index+count])
	l.version++
	return nil
}

// Sort sorts count elements starting at index using cmp, which must return
// a negative number when a < b, zero when equal and a positive number when
// a > b. The sort is not stable.
func (l *ArrayList[T]) Sort(index, count int, cmp func(a, b T) int) error {
	if err := l.checkRange("Sort", index, count); err != nil {
		return err
	}
	if cmp == nil {
		return argErr("Sort", "comparator", 0, "comparator is nil")
	}
	slices.SortFunc(l.buf[index:index+count], cmp)
	l.version++
	return nil
}

// checkRange validates that [index, index+count) lies within the elements.
func (l *ArrayList[T]) checkRange(op string, index, count int) error {
	switch {
	case index < 0:
		return argErr(op, "index", index, "must not be negative")
	case count < 0:
		return argErr(op, "count", count, "must not be negative")
	case l.size-index < count:
		return argErr(op, "count", count, "range exceeds length")
	}
	return nil
}

func (l *ArrayList[T]) allocator() Allocator[T] {
	if l.alloc == nil {
		l.alloc = HeapAllocator[T]{}
	}
	return l.alloc
}

// IndexOf returns the index of the first element equal to value, or
// NotFound.
func IndexOf[T comparable](l *ArrayList[T], value T) int {
	for i := 0; i < l.size; i++ {
		if l.buf[i] == value {
			return i
		}
	}
	return NotFound
}

// Contains reports whether value is present in l.
func Contains[T comparable](l *ArrayList[T], value T) bool {
	return IndexOf(l, value) != NotFound
}

// Remove deletes the first element equal to value and reports whether one
// was found.
func Remove[T comparable](l *ArrayList[T], value T) bool {
	i := IndexOf(l, value)
	if i == NotFound {
		return false
	}
	// i is in range, so RemoveAt cannot fail.
	_ = l.RemoveAt(i)
	return true
}
