package ordvec_test

import (
	"fmt"
	"math"

	"github.com/bwintertkb/ordered-vec"
)

func Example() {
	var values ordvec.Vec[int]
	for _, x := range []int{5, 3, 7, 1} {
		if _, err := values.PushAscending(x); err != nil {
			panic(err)
		}
	}
	fmt.Println(values)
	// Output:
	// [1 3 5 7]
}

func Example_descending() {
	var values ordvec.Vec[int]
	for _, x := range []int{5, 3, 7, 1} {
		if _, err := values.PushDescending(x); err != nil {
			panic(err)
		}
	}
	fmt.Println(values)
	// Output:
	// [7 5 3 1]
}

func ExampleVec_PushAscending() {
	var values ordvec.Vec[float64]
	for _, x := range []float64{5.5, 3.14, 7.77} {
		i, err := values.PushAscending(x)
		if err != nil {
			panic(err)
		}
		fmt.Println(i, values)
	}
	// Output:
	// 0 [5.5]
	// 0 [3.14 5.5]
	// 2 [3.14 5.5 7.77]
}

func ExampleVec_PushDescending() {
	var values ordvec.Vec[float64]
	for _, x := range []float64{5.5, 3.14, 7.77} {
		i, err := values.PushDescending(x)
		if err != nil {
			panic(err)
		}
		fmt.Println(i, values)
	}
	// Output:
	// 0 [5.5]
	// 1 [5.5 3.14]
	// 0 [7.77 5.5 3.14]
}

func ExampleVec_PushAscending_incomparable() {
	values := ordvec.Vec[float64]{1.5, 2.7, 3.1}
	if _, err := values.PushAscending(math.NaN()); err != nil {
		fmt.Println(err)
	}
	fmt.Println(values)
	// Output:
	// ordvec: incomparable item
	// [1.5 2.7 3.1]
}
