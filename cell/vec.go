package cell

import (
	"cmp"
	"iter"
	"strconv"
)

// Vec is a 2-D integer grid coordinate. It is a value type: two vectors are
// equal iff both components match, so == and map keys work as expected.
type Vec struct {
	X, Y int
}

// Zero is the origin (0, 0).
var Zero = Vec{}

// New returns the vector (x, y).
func New(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Apply combines v with o componentwise: (f(v.X, o.X), f(v.Y, o.Y)).
func (v Vec) Apply(o Vec, f func(a, b int) int) Vec {
	return Vec{X: f(v.X, o.X), Y: f(v.Y, o.Y)}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies v componentwise by o. Scaling by (-1, 1) mirrors v
// across the Y axis.
func (v Vec) Scale(o Vec) Vec {
	return Vec{X: v.X * o.X, Y: v.Y * o.Y}
}

// MapBoth applies f to both axes and returns (f(X), f(Y)).
func (v Vec) MapBoth(f func(int) int) Vec {
	return Vec{X: f(v.X), Y: f(v.Y)}
}

// MapAxes applies f to each axis independently. The first result has only X
// replaced, the second only Y: ((f(X), Y), (X, f(Y))).
func (v Vec) MapAxes(f func(int) int) (Vec, Vec) {
	return Vec{X: f(v.X), Y: v.Y}, Vec{X: v.X, Y: f(v.Y)}
}

// Steps returns the four cardinal neighbours of v in the order
// +X, +Y, -X, -Y.
func (v Vec) Steps() [4]Vec {
	var out [4]Vec
	for i, z := range [2]int{1, -1} {
		out[2*i], out[2*i+1] = v.MapAxes(func(a int) int { return a + z })
	}
	return out
}

// Compare orders vectors by X first, then by Y.
// It returns -1, 0 or +1.
func (v Vec) Compare(o Vec) int {
	if c := cmp.Compare(v.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(v.Y, o.Y)
}

// Less reports whether v sorts before o under Compare.
func (v Vec) Less(o Vec) bool {
	return v.Compare(o) < 0
}

// Hash returns a deterministic 64-bit hash of v. Coordinates that fit in
// 32 bits map to distinct hashes.
func (v Vec) Hash() uint64 {
	return uint64(uint32(v.X))<<32 | uint64(uint32(v.Y))
}

// Range reads v as a width and height and returns Range(v.X, v.Y).
func (v Vec) Range() iter.Seq[Vec] {
	return Range(v.X, v.Y)
}

// String formats v as "[x, y]".
func (v Vec) String() string {
	b := make([]byte, 0, 16)
	b = append(b, '[')
	b = strconv.AppendInt(b, int64(v.X), 10)
	b = append(b, ", "...)
	b = strconv.AppendInt(b, int64(v.Y), 10)
	b = append(b, ']')
	return string(b)
}

// Range returns the lazy sequence of all vectors with 0 ≤ x < w and
// 0 ≤ y < h, x-major. Non-positive dimensions yield nothing. The sequence
// holds no state between iterations and can be ranged over repeatedly.
//
// Complexity: O(w·h) time per full iteration, O(1) memory.
func Range(w, h int) iter.Seq[Vec] {
	return func(yield func(Vec) bool) {
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				if !yield(Vec{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
