package render_test

import (
	"fmt"

	"github.com/katalvlaran/infseq/progression"
	"github.com/katalvlaran/infseq/render"
)

// ExampleFormat demonstrates the default truncated preview.
func ExampleFormat() {
	f := progression.Fibonacci[int]()

	s, err := render.Format(f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output:
	// <Sequence: 0 1 1 2 3 5 ...>
}

// ExampleFormat_options demonstrates per-call configuration of the
// preview length and separators.
func ExampleFormat_options() {
	powers := progression.Geometric(2)

	s, err := render.Format(powers,
		render.WithPreviewLength(4),
		render.WithSeparator(" | "),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output:
	// <Sequence: 1 | 2 | 4 | 8 ...>
}
