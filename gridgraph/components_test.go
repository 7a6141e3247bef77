// File: gridgraph/components_test.go
package gridgraph

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyomino/cell"
)

// componentSizes returns the component sizes of g in ascending order.
func componentSizes(g *Grid) []int {
	var sizes []int
	for _, c := range g.ConnectedComponents() {
		sizes = append(sizes, len(c))
	}
	slices.Sort(sizes)
	return sizes
}

// TestConnectedComponents_Pieces splits a board holding an S tetromino,
// a domino and a monomino.
//
//	. S S . D
//	S S . . D
//	. . M . .
func TestConnectedComponents_Pieces(t *testing.T) {
	g, err := From2D([][]int{
		{0, 1, 1, 0, 1},
		{1, 1, 0, 0, 1},
		{0, 0, 1, 0, 0},
	}, Conn4)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4}, componentSizes(g))
	assert.False(t, g.Connected())

	first := g.ConnectedComponents()[0]
	assert.Equal(t, 1, first[0], "components start at their smallest index")
}

// TestConnectedComponents_Diagonal contrasts Conn4 and Conn8 on a staircase
// whose cells touch only at corners.
//
//	# . . .
//	. # . .
//	. . # .
//	. . . #
func TestConnectedComponents_Diagonal(t *testing.T) {
	stairs := [][]int{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	g8, err := From2D(stairs, Conn8)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, componentSizes(g8))
	assert.True(t, g8.Connected())

	g4, err := From2D(stairs, Conn4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, componentSizes(g4))
	assert.False(t, g4.Connected())
}

// TestConnectedComponents_NoLand covers a picture with no occupied cells
// and a single occupied cell in a wider box.
func TestConnectedComponents_NoLand(t *testing.T) {
	blank, err := From2D([][]int{{0, 0, 0}}, Conn4)
	require.NoError(t, err)
	assert.Empty(t, blank.ConnectedComponents())
	assert.False(t, blank.Connected(), "no cells is not a polyomino")

	lone, err := From2D([][]int{{0, 0}, {0, 1}}, Conn4)
	require.NoError(t, err)
	comps := lone.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Equal(t, []int{3}, comps[0])
	assert.Equal(t, cell.New(1, 1), lone.Cell(comps[0][0]))
}

// TestConnected_Cells exercises the path used for polyomino cell sets:
// an L-tromino is connected, two cells touching only at a corner are not.
func TestConnected_Cells(t *testing.T) {
	cases := []struct {
		name  string
		cells []cell.Vec
		want  bool
	}{
		{"Monomino", []cell.Vec{{X: 7, Y: -3}}, true},
		{"LTromino", []cell.Vec{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, true},
		{"CornerTouch", []cell.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}}, false},
		{"Gap", []cell.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.cells, DefaultGridOptions())
			if err != nil {
				t.Fatalf("NewGrid failed: %v", err)
			}
			if got := g.Connected(); got != tc.want {
				t.Errorf("Connected() = %v; want %v", got, tc.want)
			}
		})
	}
}
