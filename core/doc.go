// Package core provides a small, thread-safe, directed in-memory graph used
// as the generic export container for modular graphs.
//
// The Graph G = (V, E) is always directed and simple:
//
//   - Vertices are identified by non-empty strings and carry a Metadata map.
//   - Edges are one-way From→To with an optional complex128 Weight
//     (WithWeighted); unweighted graphs reject non-zero weights.
//   - At most one edge per ordered pair; no self-loops.
//   - Edge IDs are generated atomically ("e1", "e2", ...).
//   - Separate sync.RWMutex guards for vertices (muVert) and for edges plus
//     adjacency (muEdgeAdj). Lock order is always muVert → muEdgeAdj.
//
// Determinism:
//
//	Vertices()        sorted lexicographically
//	Edges()           sorted by (From, To)
//	NeighborIDs(id)   sorted lexicographically
//
// Core methods:
//
//	AddVertex(id string) error                                   O(1)
//	HasVertex(id string) bool                                    O(1)
//	SetMetadata(id, key string, value interface{}) error         O(1)
//	Vertex(id string) (*Vertex, error)                           O(m), copy
//	AddEdge(from, to string, w complex128) (string, error)       O(1)
//	HasEdge(from, to string) bool                                O(1)
//	Edge(from, to string) (*Edge, error)                         O(1), copy
//	NeighborIDs(id string) ([]string, error)                     O(d log d)
//	Vertices() []string / Edges() []*Edge                        O(n log n)
//	VertexCount() / EdgeCount() int                              O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on an unweighted graph
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge for the same ordered pair
package core
