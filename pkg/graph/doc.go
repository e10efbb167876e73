// Package graph provides the directed multigraph container used by the
// strata layout engine.
//
// # Overview
//
// Layered (Sugiyama-style) layout is computed in phases: rank assignment,
// ordering, and coordinate assignment. All phases operate on the same
// string-keyed directed graph, reading and writing per-node layout fields
// (rank, order, x, y) and per-edge constraints (weight, minlen).
//
// The container preserves insertion order for nodes and edges. This is not
// a cosmetic property: the ranker's leave-edge/enter-edge selection and the
// positioner's tie-breaks are defined in terms of iteration order, and
// layouts must be byte-identical across runs for visual-parity testing.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.SetNode], and edges with
// [Graph.SetEdge]:
//
//	g := graph.New(graph.Options{Multigraph: true})
//	g.SetNode("a", &graph.Node{Width: 50, Height: 30})
//	g.SetNode("b", &graph.Node{Width: 75, Height: 30})
//	g.SetEdge("a", "b")
//
// Query structure with [Graph.OutEdges], [Graph.InEdges],
// [Graph.Predecessors], [Graph.Successors], and [Graph.Sources].
//
// # Dummy Nodes
//
// Callers that route edges across multiple ranks pre-split them into chains
// of dummy nodes ([Node.Dummy] non-empty). Border dummies ([Node.BorderType])
// mark cluster boundaries and receive special treatment during compaction.
// The container itself does not interpret these fields.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. The layout phases run
// synchronously on a single goroutine.
package graph
