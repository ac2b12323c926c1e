package arraylist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a malformed range or a negative
	// size, count or capacity request.
	ErrInvalidArgument = errors.New("arraylist: invalid argument")

	// ErrIndexOutOfRange is returned when an index falls outside [0, Len())
	// for access, or outside [0, Len()] for insertion.
	ErrIndexOutOfRange = errors.New("arraylist: index out of range")

	// ErrInvalidOperation is returned when the list is in a state that does
	// not permit the call, e.g. it was mutated during traversal.
	ErrInvalidOperation = errors.New("arraylist: invalid operation")

	// ErrCapacityExceeded is returned when growth would pass MaxCapacity.
	ErrCapacityExceeded = fmt.Errorf("%w: capacity exceeded", ErrInvalidOperation)
)

// IndexError describes a rejected index.
//
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("arraylist: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// ArgumentError describes a rejected argument.
//
// It unwraps to ErrInvalidArgument.
type ArgumentError struct {
	Op     string
	Name   string
	Value  int
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("arraylist: %s: invalid %s %d: %s", e.Op, e.Name, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// ConcurrentModificationError reports that a list changed while it was
// being traversed.
//
// It unwraps to ErrInvalidOperation.
type ConcurrentModificationError struct {
	Expected uint64
	Actual   uint64
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("arraylist: collection was modified during traversal (version %d, now %d)", e.Expected, e.Actual)
}

func (e *ConcurrentModificationError) Unwrap() error { return ErrInvalidOperation }

func indexErr(op string, index, n int) error {
	return &IndexError{Op: op, Index: index, Len: n}
}

func argErr(op, name string, value int, reason string) error {
	return &ArgumentError{Op: op, Name: name, Value: value, Reason: reason}
}
