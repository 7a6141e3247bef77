package shape

import (
	"iter"
	"maps"
	"strings"
)

// Set is a read-only, deduplicated collection of shapes keyed by their
// canonical Key. It has no mutators: build one with NewSet. Iteration
// order of All is unspecified; use Sorted for a stable order.
type Set struct {
	m map[Key]Shape
}

// NewSet returns a Set holding the distinct shapes among shapes.
// Complexity: O(n).
func NewSet(shapes ...Shape) Set {
	m := make(map[Key]Shape, len(shapes))
	for _, s := range shapes {
		m[s.key] = s
	}
	return Set{m: m}
}

// Len returns the number of shapes.
func (s Set) Len() int { return len(s.m) }

// Contains reports whether a shape equal to sh is in the set.
func (s Set) Contains(sh Shape) bool {
	_, ok := s.m[sh.key]
	return ok
}

// Get looks a shape up by key.
func (s Set) Get(k Key) (Shape, bool) {
	sh, ok := s.m[k]
	return sh, ok
}

// All yields every shape once, in unspecified order.
func (s Set) All() iter.Seq[Shape] {
	return maps.Values(s.m)
}

// Sorted returns the shapes ordered by Compare. The slice is a fresh copy.
// Complexity: O(n log n).
func (s Set) Sorted() []Shape {
	out := make([]Shape, 0, len(s.m))
	for _, sh := range s.m {
		out = append(out, sh)
	}
	Sort(out)
	return out
}

// Equal reports whether s and o hold exactly the same shapes.
func (s Set) Equal(o Set) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for k := range s.m {
		if _, ok := o.m[k]; !ok {
			return false
		}
	}
	return true
}

// String lists the shapes in sorted order, one per line.
func (s Set) String() string {
	var b strings.Builder
	for i, sh := range s.Sorted() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(sh.String())
	}
	return b.String()
}
