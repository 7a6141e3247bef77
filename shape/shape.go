package shape

import (
	"hash/fnv"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyomino/cell"
	"github.com/katalvlaran/polyomino/gridgraph"
)

// Key is the canonical serialization of a Shape's cell set: every cell as
// "x,y;" in ascending cell order. Two shapes are equal iff their keys are.
type Key string

// Shape is an immutable polyomino in canonical position.
//
// cells is sorted ascending by cell.Vec.Compare, duplicate-free, and has
// min X = min Y = 0. The zero Shape is the empty sentinel (order 0).
type Shape struct {
	cells []cell.Vec
	key   Key
}

// Empty returns the order-0 sentinel shape. It is a placeholder value and
// never a catalog member.
func Empty() Shape {
	return Shape{}
}

// positional translates cells so that min X and min Y are 0, then sorts and
// deduplicates them. An empty input yields the Empty sentinel.
// Complexity: O(n log n).
func positional(cells []cell.Vec) Shape {
	if len(cells) == 0 {
		return Shape{}
	}
	lo := cells[0]
	for _, c := range cells[1:] {
		lo = cell.New(min(lo.X, c.X), min(lo.Y, c.Y))
	}
	out := make([]cell.Vec, 0, len(cells))
	for _, c := range cells {
		out = append(out, c.Sub(lo))
	}
	slices.SortFunc(out, cell.Vec.Compare)
	out = slices.Clip(slices.Compact(out))

	return Shape{cells: out, key: makeKey(out)}
}

func makeKey(cells []cell.Vec) Key {
	var b strings.Builder
	b.Grow(len(cells) * 4)
	buf := make([]byte, 0, 24)
	for _, c := range cells {
		buf = strconv.AppendInt(buf[:0], int64(c.X), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(c.Y), 10)
		buf = append(buf, ';')
		b.Write(buf)
	}
	return Key(b.String())
}

// Order returns the number of cells.
func (s Shape) Order() int { return len(s.cells) }

// IsEmpty reports whether s is the Empty sentinel.
func (s Shape) IsEmpty() bool { return len(s.cells) == 0 }

// Key returns the canonical key of s.
func (s Shape) Key() Key { return s.key }

// Cells returns a copy of the cells, sorted by X then Y.
func (s Shape) Cells() []cell.Vec {
	return slices.Clone(s.cells)
}

// All yields the cells in ascending order without copying.
func (s Shape) All() iter.Seq[cell.Vec] {
	return slices.Values(s.cells)
}

// Contains reports whether c is one of the cells.
// Complexity: O(log n).
func (s Shape) Contains(c cell.Vec) bool {
	_, ok := slices.BinarySearchFunc(s.cells, c, cell.Vec.Compare)
	return ok
}

// Bounds returns the width and height of the bounding box.
func (s Shape) Bounds() (w, h int) {
	for _, c := range s.cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

// Equal reports whether s and o have the same normalized cell set.
func (s Shape) Equal(o Shape) bool { return s.key == o.key }

// Hash returns a 64-bit FNV-1a hash of the canonical key; equal shapes
// hash equally.
func (s Shape) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s.key))
	return h.Sum64()
}

// Compare orders shapes by their sorted cell sequences, lexicographically;
// a proper prefix sorts first. It returns -1, 0 or +1.
func Compare(a, b Shape) int {
	return slices.CompareFunc(a.cells, b.cells, cell.Vec.Compare)
}

// Compare is the method form of Compare(s, o).
func (s Shape) Compare(o Shape) int { return Compare(s, o) }

// Sort orders shapes ascending by Compare, in place.
func Sort(shapes []Shape) {
	slices.SortFunc(shapes, Compare)
}

// String formats s as "{[x, y], [x, y], ...}" with cells in ascending order.
func (s Shape) String() string {
	parts := make([]string, len(s.cells))
	for i, c := range s.cells {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Transform maps every cell through f and re-translates the result to the
// origin. No symmetry policy is applied.
func (s Shape) Transform(f func(cell.Vec) cell.Vec) Shape {
	out := make([]cell.Vec, len(s.cells))
	for i, c := range s.cells {
		out[i] = f(c)
	}
	return positional(out)
}

// RotateRight maps every cell (x, y) to (y, -x). Four applications return
// the original shape.
func (s Shape) RotateRight() Shape {
	return s.Transform(func(v cell.Vec) cell.Vec { return cell.New(v.Y, -v.X) })
}

// RotateLeft is the inverse of RotateRight: (x, y) to (-y, x).
func (s Shape) RotateLeft() Shape {
	return s.Transform(func(v cell.Vec) cell.Vec { return cell.New(-v.Y, v.X) })
}

// Rotations returns the distinct shapes reached by applying RotateRight zero
// through three times, starting with s itself. Its length divides 4.
func (s Shape) Rotations() []Shape {
	out := []Shape{s}
	r := s
	for i := 1; i < 4; i++ {
		r = r.RotateRight()
		out = appendUnique(out, r)
	}
	return out
}

// Reflections returns the distinct shapes obtained by scaling every cell by
// (i, j) for i, j ∈ {1, -1}: identity, Y-flip, X-flip and point reflection,
// in that order, duplicates removed.
func (s Shape) Reflections() []Shape {
	out := make([]Shape, 0, 4)
	for _, i := range [2]int{1, -1} {
		for _, j := range [2]int{1, -1} {
			by := cell.New(i, j)
			out = appendUnique(out, s.Transform(func(v cell.Vec) cell.Vec { return v.Scale(by) }))
		}
	}
	return out
}

// Without removes c and returns the remaining cells re-translated to the
// origin. ok is false when c is not a cell of s or when nothing would remain.
// Connectivity of the remainder is not checked; see Connected.
func (s Shape) Without(c cell.Vec) (rest Shape, ok bool) {
	i, found := slices.BinarySearchFunc(s.cells, c, cell.Vec.Compare)
	if !found || len(s.cells) == 1 {
		return Shape{}, false
	}
	return positional(slices.Delete(slices.Clone(s.cells), i, i+1)), true
}

// Connected reports whether the cells form a single 4-connected region.
// The Empty sentinel is not connected. A connected shape of order n spans
// at most n columns plus rows, less one; wider spreads are rejected before
// any grid is built.
// Complexity: O(n).
func (s Shape) Connected() bool {
	if s.IsEmpty() {
		return false
	}
	w, h := s.Bounds()
	if w > len(s.cells)-h+1 {
		return false
	}
	g, err := gridgraph.NewGrid(s.cells, gridgraph.DefaultGridOptions())
	if err != nil {
		return false
	}
	return g.Connected()
}

func appendUnique(shapes []Shape, s Shape) []Shape {
	for _, o := range shapes {
		if o.key == s.key {
			return shapes
		}
	}
	return append(shapes, s)
}
