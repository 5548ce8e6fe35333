// SPDX-License-Identifier: MIT
// Package: modgraph/export
//
// sink.go — rendering sinks and the Plot entry point.

package export

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/modgraph/core"
	"github.com/katalvlaran/modgraph/modular"
)

// Sink consumes an exported graph, e.g. a plotting backend.
type Sink interface {
	Render(ctx context.Context, g *core.Graph) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, g *core.Graph) error

// Render calls f(ctx, g).
func (f SinkFunc) Render(ctx context.Context, g *core.Graph) error { return f(ctx, g) }

// Plot exports g and hands the result to sink.
func Plot(ctx context.Context, g *modular.Graph, sink Sink) error {
	if sink == nil {
		return fmt.Errorf("%s: %w", methodPlot, ErrNilSink)
	}
	cg, err := ToCore(g)
	if err != nil {
		return fmt.Errorf("%s: %w", methodPlot, err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", methodPlot, err)
	}

	return sink.Render(ctx, cg)
}

// DOTSink writes Graphviz DOT. Vertices are emitted in ascending numeric
// order of their prime when Metadata["prime"] is set, lexicographically
// otherwise. Weighted edges carry the complex weight as their label only:
// Graphviz reserves "weight" for a non-negative layout integer.
type DOTSink struct {
	W    io.Writer
	Name string // graph name; "G" when empty
}

// NewDOTSink returns a DOTSink writing to w.
func NewDOTSink(w io.Writer, name string) *DOTSink { return &DOTSink{W: w, Name: name} }

// Render writes g as a digraph.
func (s *DOTSink) Render(ctx context.Context, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("DOTSink: %w", ErrNilGraph)
	}
	name := s.Name
	if name == "" {
		name = "G"
	}

	ids := orderedVertices(g)
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		if rank[edges[i].From] != rank[edges[j].From] {
			return rank[edges[i].From] < rank[edges[j].From]
		}
		return rank[edges[i].To] < rank[edges[j].To]
	})

	ew := &errWriter{w: s.W}
	ew.printf("digraph %s {\n", strconv.Quote(name))
	for _, id := range ids {
		ew.printf("  %s;\n", strconv.Quote(id))
	}
	for _, e := range edges {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.Weighted() {
			ew.printf("  %s -> %s [label=%s];\n",
				strconv.Quote(e.From), strconv.Quote(e.To), strconv.Quote(formatWeight(e.Weight)))
			continue
		}
		ew.printf("  %s -> %s;\n", strconv.Quote(e.From), strconv.Quote(e.To))
	}
	ew.printf("}\n")

	return ew.err
}

// orderedVertices sorts vertex IDs by their prime, falling back to the
// lexicographic order of IDs without one.
func orderedVertices(g *core.Graph) []string {
	ids := g.Vertices()
	key := make(map[string]int64, len(ids))
	has := make(map[string]bool, len(ids))
	for _, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			continue
		}
		if p, ok := v.Metadata[MetaPrime].(int64); ok {
			key[id], has[id] = p, true
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		switch {
		case has[a] && has[b]:
			return key[a] < key[b]
		case has[a] != has[b]:
			return has[a]
		default:
			return a < b
		}
	})

	return ids
}

// formatWeight renders z as "(re+imi)" with four decimals.
func formatWeight(z complex128) string {
	return strconv.FormatComplex(z, 'f', 4, 128)
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
