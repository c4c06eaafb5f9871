package combine_test

import (
	"fmt"

	"github.com/katalvlaran/infseq/combine"
	"github.com/katalvlaran/infseq/progression"
	"github.com/katalvlaran/infseq/seq"
)

// ExampleConvolve demonstrates matrix-style composition: convolving
// the odd numbers with all-ones yields the perfect squares.
func ExampleConvolve() {
	odds := progression.Arithmetic(1, 2) // 1, 3, 5, 7, …
	unit := progression.Constant(1)      // 1, 1, 1, 1, …

	squares := combine.Convolve(odds, unit)

	head, err := squares.Preview(6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(head)
	// Output:
	// [1 4 9 16 25 36]
}

// ExampleAccumulateProduct demonstrates a running reduction: the
// factorials as running products of the naturals.
func ExampleAccumulateProduct() {
	naturals := progression.Arithmetic(1, 1) // 1, 2, 3, 4, …

	factorials := combine.AccumulateProduct(naturals)

	head, err := factorials.Preview(6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(head)
	// Output:
	// [1 2 6 24 120 720]
}

// ExampleZip demonstrates pairing two sequences elementwise.
func ExampleZip() {
	naturals := progression.Arithmetic(1, 1)
	squares := seq.New(func(i int) (int, error) { return i * i, nil })

	pairs := combine.Zip(naturals, squares)

	v, err := pairs.At(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("(%d, %d)\n", v.First, v.Second)
	// Output:
	// (4, 9)
}

// ExamplePartialSum demonstrates a bounded fold: the sum of the first
// ten powers of two.
func ExamplePartialSum() {
	powers := progression.Geometric(2)

	total, err := combine.PartialSum(powers, 0, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(total)
	// Output:
	// 1023
}
