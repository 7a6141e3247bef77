// SPDX-License-Identifier: MIT
// Package: polyomino/catalog
//
// options.go — functional options for Enumerator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • No hidden globals; everything flows through config.

package catalog

import (
	"io"
	"log/slog"
)

// DefaultMaxOrder is the largest order an Enumerator computes unless
// WithMaxOrder says otherwise.
const DefaultMaxOrder = 10

// config holds the resolved Enumerator settings.
type config struct {
	logger   *slog.Logger
	maxOrder int
	memo     bool
}

// defaultConfig returns the settings used before options are applied:
// a discarding logger, DefaultMaxOrder, memoization on.
func defaultConfig() config {
	return config{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxOrder: DefaultMaxOrder,
		memo:     true,
	}
}

// Option customizes an Enumerator.
type Option func(*config)

// WithLogger routes catalog diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("catalog: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMaxOrder caps the order an Enumerator will compute; larger requests
// fail with ErrOrderTooLarge. Panics if n < 1.
func WithMaxOrder(n int) Option {
	if n < 1 {
		panic("catalog: WithMaxOrder(n < 1)")
	}
	return func(c *config) {
		c.maxOrder = n
	}
}

// WithoutMemo disables the (policy, order) memo table. Every call then
// recomputes from the monomino.
func WithoutMemo() Option {
	return func(c *config) {
		c.memo = false
	}
}
