// SPDX-License-Identifier: MIT
// Package: modgraph/modular
//
// options.go — functional options and the resolved construction config.
//
// Contract:
//   • Option constructors validate and panic on meaningless input
//     (WithWorkers(0), WithLogger(nil)); construction itself never panics.
//   • Options are applied left to right; the last one wins.
//   • Graphs keep their resolved config, so graphs derived through the
//     algebra are built with the same workers/logger.

package modular

import (
	"io"
	"log/slog"
)

// Option customizes graph and order-matrix construction.
type Option func(*config)

// config is the resolved set of knobs. Passed by value.
type config struct {
	workers int          // ≥1; 1 means sequential
	logger  *slog.Logger // never nil after newConfig
}

const defaultWorkers = 1

// WithWorkers sets how many goroutines compute order-matrix rows.
// n == 1 (the default) keeps construction on the calling goroutine.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("modular: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger attaches a structured logger; constructions are reported at
// Debug level. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("modular: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// newConfig applies opts over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		workers: defaultWorkers,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
