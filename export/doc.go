// Package export maps modular graphs onto the generic directed container
// core.Graph and hands them to rendering sinks.
//
// The modular package never imports this one: export depends on modular and
// core, and a Sink is injected by the caller at the boundary.
//
// Mapping:
//
//	prime p            → vertex "p" with Metadata["prime"] = p (int64)
//	discrete p→q       → unweighted edge "p"→"q"
//	extended w(p,q)    → weighted edge "p"→"q", Edge.Weight = w(p,q)
//
// Sinks:
//
//	Sink      interface Render(ctx, *core.Graph) error
//	SinkFunc  adapter for plain functions
//	DOTSink   Graphviz DOT writer over an io.Writer
//
// Errors:
//
//	ErrNilGraph – nil *modular.Graph or *core.Graph
//	ErrNilSink  – nil Sink passed to Plot
package export
