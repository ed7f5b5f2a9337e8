// Package ordvec provides in-order insertion into sorted slices.
//
// A Vec holds elements in ascending or descending order; each push
// binary-searches for the insertion point and shifts later elements one
// position. An element equal to a probed element is placed immediately
// before it. A Vec is not safe for concurrent use.
package ordvec

import "golang.org/x/exp/constraints"

// Vec is a slice kept in sorted order, ascending or descending.
// Each push requires the Vec to already be sorted in the push's direction.
type Vec[T constraints.Ordered] []T

// PushAscending inserts x in place, preserving ascending order; returns
// the index x was placed at. The slice must be sorted in ascending
// order. Returns ErrIncomparable and leaves v unchanged if x has no
// defined order against a probed element.
func (v *Vec[T]) PushAscending(x T) (int, error) {
	return v.push(x, ascending)
}

// PushDescending inserts x in place, preserving descending order;
// returns the index x was placed at. The slice must be sorted in
// descending order. Returns ErrIncomparable and leaves v unchanged if x
// has no defined order against a probed element.
func (v *Vec[T]) PushDescending(x T) (int, error) {
	return v.push(x, descending)
}

func (v *Vec[T]) push(x T, o order) (int, error) {
	i, ok := search(*v, x, o)
	if !ok {
		return 0, ErrIncomparable
	}
	*v = insert(*v, x, i)
	return i, nil
}

// insert places x at i, shifting elements at and after i one position later.
func insert[T constraints.Ordered](a []T, x T, i int) []T {
	a = append(a, *new(T))
	copy(a[i+1:], a[i:])
	a[i] = x
	return a
}
