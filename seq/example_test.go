package seq_test

import (
	"fmt"

	"github.com/katalvlaran/infseq/seq"
)

// ExampleSequence_At demonstrates lazy single-index access: only the
// requested index (and, for pure generators, nothing else) is computed.
func ExampleSequence_At() {
	squares := seq.New(func(i int) (int, error) { return i * i, nil })

	v, err := squares.At(12)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v)
	fmt.Println(squares.Cached())
	// Output:
	// 144
	// 1
}

// ExampleSequence_Range demonstrates a bounded lazy slice, pulled
// value by value.
func ExampleSequence_Range() {
	naturals := seq.New(func(i int) (int, error) { return i + 1, nil })

	r, err := naturals.Range(2, 8, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	values, err := r.Collect()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(values)
	// Output:
	// [3 5 7]
}

// ExampleSequence_Prepend demonstrates literal head values in front of
// an existing sequence; the original is untouched.
func ExampleSequence_Prepend() {
	evens := seq.New(func(i int) (int, error) { return 2 * i, nil })
	withHead := evens.Prepend(-3, -1)

	head, err := withHead.Preview(5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(head)
	// Output:
	// [-3 -1 0 2 4]
}

// ExampleNewRecurrence demonstrates a forward-filling recurrence: each
// value is derived from the memoized prefix.
func ExampleNewRecurrence() {
	// t(n) = t(n-1) + n: the triangular numbers.
	triangular := seq.NewRecurrence(func(prev []int, i int) (int, error) {
		return prev[i-1] + i, nil
	}, []int{0})

	head, err := triangular.Preview(7)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(head)
	// Output:
	// [0 1 3 6 10 15 21]
}
