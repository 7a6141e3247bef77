// Command polyominoes prints the number of fixed polyominoes of orders 1
// through 6, one line per order:
//
//	there are 1 fixed monominoes.
//	there are 2 fixed dominoes.
//	...
//	there are 216 fixed hexominoes.
//
// It takes no flags and reads no input. Diagnostics go to stderr.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/polyomino/catalog"
	"github.com/katalvlaran/polyomino/shape"
)

// prefixes are the order-name stems for orders 1..6.
var prefixes = []string{"mon", "d", "tr", "tetr", "pent", "hex"}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	e := catalog.New(catalog.WithLogger(logger))
	if err := run(os.Stdout, e); err != nil {
		logger.Error("enumeration failed", "error", err)
		os.Exit(1)
	}
}

// run writes one count line per order to w.
func run(w io.Writer, e *catalog.Enumerator) error {
	for i, name := range prefixes {
		s, err := e.Catalog(i+1, shape.Fixed)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "there are %d fixed %sominoes.\n", s.Len(), name); err != nil {
			return err
		}
	}
	return nil
}
