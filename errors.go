package ordvec

import "errors"

// ErrIncomparable reports that an item has no defined order against an
// element probed by the insertion search, such as a floating point NaN.
var ErrIncomparable = errors.New("ordvec: incomparable item")
