package arraylist

import "log/slog"

type options[T any] struct {
	alloc  Allocator[T]
	logger *slog.Logger
}

// Option configures an ArrayList at construction.
type Option[T any] func(*options[T])

// WithAllocator sets the source of backing buffers.
//
// If nil is passed, the Go heap is used.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(o *options[T]) {
		o.alloc = a
	}
}

// WithLogger enables debug logging of reallocations.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = l
	}
}

func buildOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	if o.alloc == nil {
		o.alloc = HeapAllocator[T]{}
	}
	return o
}
