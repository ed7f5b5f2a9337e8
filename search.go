package ordvec

import (
	"golang.org/x/exp/constraints"

	"github.com/bwintertkb/ordered-vec/pcmp"
)

// order is the direction a Vec is kept sorted in.
type order int

const (
	ascending order = iota
	descending
)

// compare orders x against y in the direction of o; descending reverses
// the outcome so the search probes from highest to lowest.
func compare[T constraints.Ordered](x, y T, o order) (pcmp.Ordering, bool) {
	c, ok := pcmp.Compare(x, y)
	if o == descending {
		c = c.Reverse()
	}
	return c, ok
}

// search returns the index x must occupy to keep v sorted in the
// direction of o. The slice must already be sorted in that direction.
// An equal probe ends the search, placing x immediately before the
// matched element. Returns false if x has no defined order against a
// probed element; no index is produced then.
func search[T constraints.Ordered](v []T, x T, o order) (int, bool) {
	if len(v) == 0 {
		return 0, true
	}
	if c, ok := compare(x, v[0], o); ok && c != pcmp.Greater {
		return 0, true
	}
	if c, ok := compare(x, v[len(v)-1], o); ok && c != pcmp.Less {
		return len(v), true
	}

	start, end := 0, len(v)-1
	idx := mid(start, end)
	for {
		c, ok := compare(x, v[idx], o)
		if !ok {
			return 0, false
		}
		switch c {
		case pcmp.Less:
			end = idx
		case pcmp.Greater:
			start = idx
		case pcmp.Equal:
			return idx, true
		}
		if end-start <= 1 {
			return end, true
		}
		idx = mid(start, end)
	}
}

// mid returns the midpoint of a and b, truncating.
func mid(a, b int) int { return (a + b) / 2 }
