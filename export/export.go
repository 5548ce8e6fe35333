// SPDX-License-Identifier: MIT
// Package: modgraph/export
//
// export.go — modular.Graph → core.Graph adapter.

package export

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/modgraph/core"
	"github.com/katalvlaran/modgraph/modular"
)

// Sentinel errors for the export package.
var (
	// ErrNilGraph indicates a nil graph at the export boundary.
	ErrNilGraph = errors.New("export: graph is nil")

	// ErrNilSink indicates that Plot received a nil Sink.
	ErrNilSink = errors.New("export: sink is nil")
)

const (
	methodToCore = "ToCore"
	methodPlot   = "Plot"

	// MetaPrime is the vertex Metadata key holding the prime as int64.
	MetaPrime = "prime"
)

// VertexID renders a prime as its vertex identifier.
func VertexID(p int64) string { return strconv.FormatInt(p, 10) }

// ToCore builds a core.Graph with one vertex per prime and one directed edge
// per adjacency pair (discrete) or per defined weight (extended).
//
// Complexity: O(V + E log E) (edge enumeration is sorted).
func ToCore(g *modular.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodToCore, ErrNilGraph)
	}

	var out *core.Graph
	if g.IsExtended() {
		out = core.NewGraph(core.WithWeighted())
	} else {
		out = core.NewGraph()
	}

	primes := g.Primes()
	for _, p := range primes {
		id := VertexID(p)
		if err := out.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodToCore, id, err)
		}
		if err := out.SetMetadata(id, MetaPrime, p); err != nil {
			return nil, fmt.Errorf("%s: SetMetadata(%s): %w", methodToCore, id, err)
		}
	}

	if g.IsExtended() {
		w := g.Weights()
		for _, p := range primes {
			for _, q := range primes {
				z, ok := w.Get(p, q)
				if !ok {
					continue
				}
				if _, err := out.AddEdge(VertexID(p), VertexID(q), z); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d→%d): %w", methodToCore, p, q, err)
				}
			}
		}
		return out, nil
	}

	adj := g.Adjacency()
	for _, p := range primes {
		for _, q := range adj[p] {
			if _, err := out.AddEdge(VertexID(p), VertexID(q), 0); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d→%d): %w", methodToCore, p, q, err)
			}
		}
	}

	return out, nil
}
