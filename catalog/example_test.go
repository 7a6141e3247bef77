// File: catalog/example_test.go
package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/polyomino/catalog"
	"github.com/katalvlaran/polyomino/shape"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Catalog sizes
////////////////////////////////////////////////////////////////////////////////

// ExampleEnumerator_Catalog prints the classic tetromino and pentomino counts.
func ExampleEnumerator_Catalog() {
	e := catalog.New()
	for _, p := range []shape.Policy{shape.Fixed, shape.OneSided, shape.Free} {
		tetro, _ := e.Catalog(4, p)
		pento, _ := e.Catalog(5, p)
		fmt.Printf("%-9s tetrominoes=%d pentominoes=%d\n", p, tetro.Len(), pento.Len())
	}
	// Output:
	// fixed     tetrominoes=19 pentominoes=63
	// one-sided tetrominoes=7 pentominoes=18
	// free      tetrominoes=5 pentominoes=12
}

////////////////////////////////////////////////////////////////////////////////
// Example: Grow
////////////////////////////////////////////////////////////////////////////////

// ExampleGrow grows the free trominoes from the monomino by hand.
func ExampleGrow() {
	dominoes, _ := catalog.Grow(catalog.Monomino(), shape.Free)
	trominoes, _ := catalog.Grow(dominoes, shape.Free)
	fmt.Println(trominoes)
	// Output:
	// {[0, 0], [0, 1], [0, 2]}
	// {[0, 0], [0, 1], [1, 0]}
}
