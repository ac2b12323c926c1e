package arraylist

import "iter"

// Enumerator walks a list front to back and stops with an error if the
// list is mutated during the walk.
//
//	e := l.Enumerator()
//	for e.Next() {
//		use(e.Index(), e.Value())
//	}
//	if err := e.Err(); err != nil {
//		// the list changed underneath the loop
//	}
type Enumerator[T any] struct {
	list    *ArrayList[T]
	version uint64
	index   int
	current T
	err     error
}

// Enumerator returns an Enumerator positioned before the first element.
func (l *ArrayList[T]) Enumerator() *Enumerator[T] {
	return &Enumerator[T]{list: l, version: l.version, index: -1}
}

// Next advances to the next element and reports whether there is one.
func (e *Enumerator[T]) Next() bool {
	if e.err != nil {
		return false
	}
	if e.list.version != e.version {
		e.err = &ConcurrentModificationError{Expected: e.version, Actual: e.list.version}
		var zero T
		e.current = zero
		return false
	}
	if e.index+1 >= e.list.size {
		e.index = e.list.size
		var zero T
		e.current = zero
		return false
	}
	e.index++
	e.current = e.list.buf[e.index]
	return true
}

// Index returns the position of the current element.
func (e *Enumerator[T]) Index() int { return e.index }

// Value returns the current element.
func (e *Enumerator[T]) Value() T { return e.current }

// Err returns a *ConcurrentModificationError if the list was mutated
// during the walk.
func (e *Enumerator[T]) Err() error { return e.err }

// All returns an iterator over index/element pairs. It panics with a
// *ConcurrentModificationError if the list is mutated while the loop body
// runs.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		e := l.Enumerator()
		for e.Next() {
			if !yield(e.Index(), e.Value()) {
				return
			}
		}
		if err := e.Err(); err != nil {
			panic(err)
		}
	}
}
