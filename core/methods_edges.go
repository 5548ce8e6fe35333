// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/NeighborIDs/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To).
//   - nextEdgeID() is monotonic ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates the directed edge from→to with weight w, adding missing
// endpoints first.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Ensure both endpoints via AddVertex.
//  3. Under muEdgeAdj, reject a second edge for the same ordered pair.
//  4. Generate the edge ID atomically and link adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w complex128) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && w != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.adjacency[from][to]; ok {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: w}
	g.adjacency[from][to] = eid

	return eid, nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns a copy of the edge from→to.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	e := *g.edges[eid]

	return &e, nil
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		c := *e
		out = append(out, &c)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// NeighborIDs returns the successors of id sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	ids := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		ids = append(ids, to)
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(ids)

	return ids, nil
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns "e<N>" for the next N. Caller holds muEdgeAdj.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
