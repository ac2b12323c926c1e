package arraylist_test

import (
	"cmp"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/manukyankhach/arraylist"
)

// TestEdgeCases covers boundary conditions of the public API
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroAndNegativeCapacities", func(t *testing.T) {
		testCases := []struct {
			capacity int
			wantErr  bool
			wantCap  int
		}{
			{0, false, 0},
			{1, false, 1},
			{-1, true, 0},
			{-1000, true, 0},
		}

		for _, tc := range testCases {
			l, err := arraylist.NewWithCapacity[int](tc.capacity)
			if tc.wantErr {
				if !errors.Is(err, arraylist.ErrInvalidArgument) {
					t.Errorf("NewWithCapacity(%d): got err %v, want ErrInvalidArgument", tc.capacity, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("NewWithCapacity(%d): unexpected error %v", tc.capacity, err)
			}
			if l.Capacity() != tc.wantCap {
				t.Errorf("NewWithCapacity(%d): got capacity %d, want %d", tc.capacity, l.Capacity(), tc.wantCap)
			}
		}
	})

	t.Run("ZeroLengthRanges", func(t *testing.T) {
		l := arraylist.New[int]()
		if err := l.Reverse(0, 0); err != nil {
			t.Errorf("Reverse(0, 0) on empty list: %v", err)
		}
		if err := l.Sort(0, 0, cmp.Compare[int]); err != nil {
			t.Errorf("Sort(0, 0) on empty list: %v", err)
		}
		if err := l.CopyTo([]int{}); err != nil {
			t.Errorf("CopyTo(empty) on empty list: %v", err)
		}
	})

	t.Run("InsertIntoEmpty", func(t *testing.T) {
		l := arraylist.New[string]()
		if err := l.Insert(0, "x"); err != nil {
			t.Fatalf("Insert(0) on empty list: %v", err)
		}
		if l.Len() != 1 || l.Capacity() != arraylist.DefaultCapacity {
			t.Errorf("after Insert: len=%d cap=%d", l.Len(), l.Capacity())
		}
	})

	t.Run("NonComparableElements", func(t *testing.T) {
		l := arraylist.New[[]int]()
		for i := 0; i < 3; i++ {
			if _, err := l.Add([]int{i, i}); err != nil {
				t.Fatal(err)
			}
		}
		got := l.IndexFunc(func(v []int) bool { return v[0] == 2 })
		if got != 2 {
			t.Errorf("IndexFunc: got %d, want 2", got)
		}
		err := l.Sort(0, l.Len(), func(a, b []int) int { return cmp.Compare(b[0], a[0]) })
		if err != nil {
			t.Fatal(err)
		}
		if v, _ := l.Get(0); v[0] != 2 {
			t.Errorf("Sort descending: first element %v", v)
		}
	})

	t.Run("FailedCallsLeaveStateUnchanged", func(t *testing.T) {
		l := arraylist.New[int]()
		for i := 0; i < 5; i++ {
			_, _ = l.Add(i)
		}
		before := l.Metrics()
		items := l.Slice()

		_ = l.Set(5, 0)
		_ = l.Insert(7, 0)
		_ = l.RemoveAt(-1)
		_ = l.Reverse(3, 3)
		_ = l.Sort(-1, 1, cmp.Compare[int])
		_ = l.SetCapacity(4)
		_ = l.CopyTo(make([]int, 1))

		if after := l.Metrics(); after != before {
			t.Errorf("metrics changed: before %+v, after %+v", before, after)
		}
		if !slices.Equal(items, l.Slice()) {
			t.Errorf("items changed: before %v, after %v", items, l.Slice())
		}
	})
}

// TestInsertShiftsTail checks that an insert moves the tail by exactly one slot
func TestInsertShiftsTail(t *testing.T) {
	for n := 0; n <= 9; n++ {
		for i := 0; i <= n; i++ {
			l := arraylist.New[int]()
			for k := 0; k < n; k++ {
				_, _ = l.Add(k)
			}
			if err := l.Insert(i, -1); err != nil {
				t.Fatalf("n=%d Insert(%d): %v", n, i, err)
			}
			if l.Len() != n+1 {
				t.Fatalf("n=%d Insert(%d): len %d", n, i, l.Len())
			}
			if v, _ := l.Get(i); v != -1 {
				t.Errorf("n=%d Insert(%d): Get(%d) = %d", n, i, i, v)
			}
			for k := i; k < n; k++ {
				if v, _ := l.Get(k + 1); v != k {
					t.Errorf("n=%d Insert(%d): Get(%d) = %d, want %d", n, i, k+1, v, k)
				}
			}
		}
	}
}

// TestRandomOperations drives heap- and slab-backed lists alongside a plain
// slice and compares them after every step
func TestRandomOperations(t *testing.T) {
	slab := arraylist.NewSlab[int](64)
	defer slab.Release()

	lists := map[string]*arraylist.ArrayList[int]{
		"heap": arraylist.New[int](),
		"slab": arraylist.New(arraylist.WithAllocator[int](slab)),
	}

	for name, l := range lists {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))
			var ref []int

			for step := 0; step < 2000; step++ {
				v := rng.IntN(100)
				switch op := rng.IntN(7); op {
				case 0, 1:
					_, _ = l.Add(v)
					ref = append(ref, v)
				case 2:
					i := rng.IntN(len(ref) + 1)
					_ = l.Insert(i, v)
					ref = slices.Insert(ref, i, v)
				case 3:
					if len(ref) > 0 {
						i := rng.IntN(len(ref))
						_ = l.RemoveAt(i)
						ref = slices.Delete(ref, i, i+1)
					}
				case 4:
					if len(ref) > 0 {
						i := rng.IntN(len(ref))
						_ = l.Set(i, v)
						ref[i] = v
					}
				case 5:
					i := rng.IntN(len(ref) + 1)
					n := rng.IntN(len(ref) - i + 1)
					_ = l.Reverse(i, n)
					slices.Reverse(ref[i : i+n])
				case 6:
					if rng.IntN(20) == 0 {
						l.Clear()
						ref = ref[:0]
					} else {
						_ = l.Sort(0, l.Len(), cmp.Compare[int])
						slices.Sort(ref)
					}
				}

				if !slices.Equal(ref, l.Slice()) {
					t.Fatalf("step %d: list %v, want %v", step, l.Slice(), ref)
				}
				if l.Capacity() < l.Len() {
					t.Fatalf("step %d: capacity %d < len %d", step, l.Capacity(), l.Len())
				}
				if want := slices.Index(ref, v); arraylist.IndexOf(l, v) != want {
					t.Fatalf("step %d: IndexOf(%d) = %d, want %d", step, v, arraylist.IndexOf(l, v), want)
				}
			}
		})
	}
}

// TestCloneIndependence verifies clones share no storage with their source
func TestCloneIndependence(t *testing.T) {
	src := arraylist.New[string]()
	for _, s := range []string{"a", "b", "c"} {
		_, _ = src.Add(s)
	}
	c := src.Clone()

	_, _ = c.Add("d")
	_ = c.Set(0, "z")
	_ = src.Set(1, "y")

	if got := src.Slice(); !slices.Equal(got, []string{"a", "y", "c"}) {
		t.Errorf("source = %v", got)
	}
	if got := c.Slice(); !slices.Equal(got, []string{"z", "b", "c", "d"}) {
		t.Errorf("clone = %v", got)
	}
}
