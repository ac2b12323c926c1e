// Package script loads YAML scripts of list operations and replays them
// against an arraylist.ArrayList.
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported step operations.
const (
	OpAdd         = "add"
	OpInsert      = "insert"
	OpSet         = "set"
	OpGet         = "get"
	OpRemoveAt    = "remove-at"
	OpClear       = "clear"
	OpReverse     = "reverse"
	OpSort        = "sort"
	OpIndexOf     = "index-of"
	OpSetCapacity = "set-capacity"
	OpClone       = "clone"
)

// Allocator names accepted by Script.Allocator.
const (
	AllocatorHeap = "heap"
	AllocatorSlab = "slab"
)

// ErrInvalidScript is returned for scripts that fail to decode or validate.
var ErrInvalidScript = errors.New("script: invalid script")

var knownOps = map[string]bool{
	OpAdd: true, OpInsert: true, OpSet: true, OpGet: true, OpRemoveAt: true,
	OpClear: true, OpReverse: true, OpSort: true, OpIndexOf: true,
	OpSetCapacity: true, OpClone: true,
}

// Script is the YAML form of a sequence of list operations.
type Script struct {
	Capacity    int    `yaml:"capacity,omitempty"`
	Allocator   string `yaml:"allocator,omitempty"`
	SlabChunk   int    `yaml:"slab-chunk,omitempty"`
	StopOnError bool   `yaml:"stop-on-error,omitempty"`
	Steps       []Step `yaml:"steps"`
}

// Step is one operation. Count is optional for reverse and sort; when
// omitted the range runs from Index to the end of the list.
type Step struct {
	Op    string `yaml:"op"`
	Index int    `yaml:"index,omitempty"`
	Count *int   `yaml:"count,omitempty"`
	Value int    `yaml:"value,omitempty"`
	Order string `yaml:"order,omitempty"` // "asc" (default) or "desc"
}

func (s Step) String() string {
	switch s.Op {
	case OpAdd, OpIndexOf:
		return fmt.Sprintf("%s value=%d", s.Op, s.Value)
	case OpInsert, OpSet:
		return fmt.Sprintf("%s index=%d value=%d", s.Op, s.Index, s.Value)
	case OpGet, OpRemoveAt:
		return fmt.Sprintf("%s index=%d", s.Op, s.Index)
	case OpSetCapacity:
		return fmt.Sprintf("%s value=%d", s.Op, s.Value)
	case OpReverse, OpSort:
		str := fmt.Sprintf("%s index=%d", s.Op, s.Index)
		if s.Count != nil {
			str += fmt.Sprintf(" count=%d", *s.Count)
		}
		if s.Op == OpSort && s.Order != "" {
			str += " order=" + s.Order
		}
		return str
	}
	return s.Op
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a script and validates its operations.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the allocator name and every step's op and order.
func (s *Script) Validate() error {
	switch s.Allocator {
	case "", AllocatorHeap, AllocatorSlab:
	default:
		return fmt.Errorf("%w: unknown allocator %q", ErrInvalidScript, s.Allocator)
	}
	for i, st := range s.Steps {
		if !knownOps[st.Op] {
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidScript, i+1, st.Op)
		}
		if st.Op == OpSort {
			switch st.Order {
			case "", "asc", "desc":
			default:
				return fmt.Errorf("%w: step %d: unknown order %q", ErrInvalidScript, i+1, st.Order)
			}
		}
	}
	return nil
}
