// Package pcmp provides three-way comparison of partially ordered values.
package pcmp

import "golang.org/x/exp/constraints"

// Ordering is the result of comparing two values.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Reverse maps Less to Greater and Greater to Less; Equal is unchanged.
func (o Ordering) Reverse() Ordering { return -o }

// Compare returns the ordering of a relative to b. The second result is
// false when the two values have no defined order, such as a floating
// point NaN against anything; the Ordering is meaningless then.
func Compare[T constraints.Ordered](a, b T) (Ordering, bool) {
	switch {
	case a < b:
		return Less, true
	case a > b:
		return Greater, true
	case a == b:
		return Equal, true
	}
	return Equal, false
}
