// Package catalog_test verifies that a shared Enumerator gives the same
// catalogs when used from many goroutines.
package catalog_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polyomino/catalog"
	"github.com/katalvlaran/polyomino/shape"
)

// TestConcurrentCatalog hammers one Enumerator with overlapping requests
// and compares every result against a private single-goroutine run.
func TestConcurrentCatalog(t *testing.T) {
	shared := catalog.New()
	want := catalog.New()
	const workers = 24

	var wg sync.WaitGroup
	wg.Add(workers)
	results := make([]shape.Set, workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			n, p := 1+id%6, policies[id%len(policies)]
			s, err := shared.Catalog(n, p)
			assert.NoError(t, err)
			results[id] = s
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		n, p := 1+i%6, policies[i%len(policies)]
		assert.True(t, got.Equal(want.MustCatalog(n, p)), "catalog(%d, %v)", n, p)
	}
}
