package script

import (
	"cmp"
	"context"
	"log/slog"
	"strconv"

	"github.com/manukyankhach/arraylist"
)

// Entry records the outcome of one step and the list state after it.
type Entry struct {
	Step    Step
	Result  string // empty when the op produces no value
	Err     error
	Len     int
	Cap     int
	Version uint64
	Items   []int
}

// Trace is the ordered record of a script run.
type Trace struct {
	Entries []Entry
	Metrics arraylist.ListMetrics
	Slab    *arraylist.SlabMetrics // nil for heap-backed runs
}

// Failed returns the number of steps that returned an error.
func (t *Trace) Failed() int {
	n := 0
	for _, e := range t.Entries {
		if e.Err != nil {
			n++
		}
	}
	return n
}

// Run replays s against a fresh list. Step errors are recorded in the trace;
// Run itself fails only on an invalid initial capacity or a cancelled context.
func Run(ctx context.Context, s *Script, logger *slog.Logger) (*Trace, error) {
	opts := []arraylist.Option[int]{arraylist.WithLogger[int](logger)}

	var slab *arraylist.Slab[int]
	if s.Allocator == AllocatorSlab {
		slab = arraylist.NewSlab[int](s.SlabChunk)
		defer slab.Release()
		opts = append(opts, arraylist.WithAllocator[int](slab))
	}

	l, err := arraylist.NewWithCapacity(s.Capacity, opts...)
	if err != nil {
		return nil, err
	}

	trace := &Trace{Entries: make([]Entry, 0, len(s.Steps))}
	for _, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return trace, err
		}

		var result string
		result, l, err = apply(l, st)
		if err != nil && logger != nil {
			logger.WarnContext(ctx, "step failed", "op", st.Op, "error", err)
		}

		trace.Entries = append(trace.Entries, Entry{
			Step:    st,
			Result:  result,
			Err:     err,
			Len:     l.Len(),
			Cap:     l.Capacity(),
			Version: l.Version(),
			Items:   l.Slice(),
		})
		if err != nil && s.StopOnError {
			break
		}
	}

	trace.Metrics = l.Metrics()
	if slab != nil {
		m := slab.Metrics()
		trace.Slab = &m
	}
	if logger != nil {
		logger.InfoContext(ctx, "script completed",
			"steps", len(trace.Entries),
			"failed", trace.Failed(),
			"reallocations", trace.Metrics.Reallocations,
		)
	}
	return trace, nil
}

// apply executes one step. It returns the list to continue with, which
// differs from l only for clone.
func apply(l *arraylist.ArrayList[int], st Step) (string, *arraylist.ArrayList[int], error) {
	switch st.Op {
	case OpAdd:
		i, err := l.Add(st.Value)
		if err != nil {
			return "", l, err
		}
		return strconv.Itoa(i), l, nil
	case OpInsert:
		return "", l, l.Insert(st.Index, st.Value)
	case OpSet:
		return "", l, l.Set(st.Index, st.Value)
	case OpGet:
		v, err := l.Get(st.Index)
		if err != nil {
			return "", l, err
		}
		return strconv.Itoa(v), l, nil
	case OpRemoveAt:
		return "", l, l.RemoveAt(st.Index)
	case OpClear:
		l.Clear()
		return "", l, nil
	case OpReverse:
		return "", l, l.Reverse(st.Index, rangeCount(l, st))
	case OpSort:
		order := cmp.Compare[int]
		if st.Order == "desc" {
			order = func(a, b int) int { return cmp.Compare(b, a) }
		}
		return "", l, l.Sort(st.Index, rangeCount(l, st), order)
	case OpIndexOf:
		return strconv.Itoa(arraylist.IndexOf(l, st.Value)), l, nil
	case OpSetCapacity:
		return "", l, l.SetCapacity(st.Value)
	case OpClone:
		return "", l.Clone(), nil
	}
	return "", l, ErrInvalidScript
}

func rangeCount(l *arraylist.ArrayList[int], st Step) int {
	if st.Count != nil {
		return *st.Count
	}
	return l.Len() - st.Index
}
