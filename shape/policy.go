package shape

import "strconv"

// Policy selects which transformed copies of a shape count as the same shape.
type Policy int

const (
	// Fixed treats shapes as distinct unless related by pure translation.
	Fixed Policy = iota

	// OneSided identifies shapes related by rotation; reflections stay distinct.
	OneSided

	// Free identifies shapes related by rotation or reflection.
	Free
)

// Valid reports whether p is one of Fixed, OneSided, Free.
func (p Policy) Valid() bool {
	return p >= Fixed && p <= Free
}

// GroupOrder returns the size of the transform group behind p (1, 4 or 8).
// A symmetry set under p always has a size dividing GroupOrder.
func (p Policy) GroupOrder() int {
	switch p {
	case OneSided:
		return 4
	case Free:
		return 8
	default:
		return 1
	}
}

func (p Policy) String() string {
	switch p {
	case Fixed:
		return "fixed"
	case OneSided:
		return "one-sided"
	case Free:
		return "free"
	default:
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
}
