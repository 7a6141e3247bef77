// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/polyomino/cell"
	"github.com/katalvlaran/polyomino/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents demonstrates how to identify
// contiguous “islands” of non-zero cells in a 2D picture.
// Scenario:
//
//   - Grid values: 0 = empty, any value ≥ 1 = occupied
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect three islands, reported in row-major order of their first cell.
//
// Complexity: O(n·4), Memory: O(n)
func ExampleGrid_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{0, 0, 2, 2, 0},
		{3, 0, 0, 0, 0},
	}
	g, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps := g.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %d cells\n", i, len(comp))
	}

	// Output:
	// components: 3
	// component 0: 4 cells
	// component 1: 5 cells
	// component 2: 1 cells
}

////////////////////////////////////////////////////////////////////////////////
// Example: Connected
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Connected checks the polyomino invariant on raw cells.
func ExampleGrid_Connected() {
	tee := []cell.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}
	split := []cell.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}}

	g1, _ := gridgraph.NewGrid(tee, gridgraph.DefaultGridOptions())
	g2, _ := gridgraph.NewGrid(split, gridgraph.DefaultGridOptions())
	fmt.Println(g1.Connected(), g2.Connected())
	// Output:
	// true false
}
