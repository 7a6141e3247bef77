package gridgraph

import "github.com/RoaringBitmap/roaring/v2"

// ConnectedComponents finds all contiguous regions (“islands”) of occupied
// cells according to g.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order. Components are ordered by their smallest index.
//
// To convert an index back to (x,y), use Coordinate(idx) or Cell(idx).
//
// Time:   O(n·d), where d = 4 or 8.
// Memory: O(n) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := roaring.New()
	var comps [][]int

	it := g.land.Iterator()
	for it.HasNext() {
		i0 := it.Next()
		if seen.Contains(i0) {
			continue
		}
		// BFS to collect component
		queue := []uint32{i0}
		seen.Add(i0)
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, int(u))
			ux, uy := g.Coordinate(int(u))
			for _, d := range g.offsets {
				vx, vy := ux+d.X, uy+d.Y
				if !g.IsLand(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if seen.CheckedAdd(vi) {
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether the occupied cells form exactly one component.
// Complexity: O(n·d).
func (g *Grid) Connected() bool {
	if g.land.IsEmpty() {
		return false
	}
	comps := g.ConnectedComponents()
	return len(comps) == 1
}
