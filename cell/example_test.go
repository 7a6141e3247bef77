// File: cell/example_test.go
package cell_test

import (
	"fmt"

	"github.com/katalvlaran/polyomino/cell"
)

// ExampleVec_Steps lists the cardinal neighbours used to grow polyominoes.
func ExampleVec_Steps() {
	for _, s := range cell.Zero.Steps() {
		fmt.Print(s, " ")
	}
	fmt.Println()
	// Output:
	// [1, 0] [0, 1] [-1, 0] [0, -1]
}

// ExampleRange walks a 3×2 box, the way a board renderer visits its cells.
func ExampleRange() {
	for v := range cell.Range(3, 2) {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// [0, 0] [0, 1] [1, 0] [1, 1] [2, 0] [2, 1]
}
