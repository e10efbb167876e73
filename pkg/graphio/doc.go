// Package graphio provides JSON import and export for layout graphs.
//
// # Overview
//
// This package enables serialization of input graphs and computed layouts
// to and from a simple JSON format. The format is designed for:
//
//   - Feeding arbitrary directed graphs into the layout engine
//   - Integration with external tools that produce or consume graph data
//   - Caching of computed layouts for faster re-rendering
//
// # JSON Format
//
// A graph has two required top-level arrays and an optional config object:
//
//	{
//	  "config": {"nodesep": 50, "ranksep": 50, "ranker": "network-simplex"},
//	  "nodes": [
//	    {"id": "app", "width": 100, "height": 40},
//	    {"id": "lib-a", "width": 80, "height": 40}
//	  ],
//	  "edges": [
//	    {"from": "app", "to": "lib-a", "weight": 2, "minlen": 1}
//	  ]
//	}
//
// Each node must have an "id" field; width and height default to zero.
// Each edge must have "from" and "to" fields referencing node ids; weight
// defaults to 1 and minlen to 1. Parallel edges are distinguished by the
// optional "name" field when the graph is a multigraph.
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader. Both validate the JSON structure and node references;
// errors carry structured codes from the errors package.
//
// # Export
//
// [WriteJSON] round-trips the logical graph. [WriteLayout] exports the
// computed coordinates: per-node x/y/rank/order plus the bounding box of
// the drawing. [MarshalGraph] produces canonical bytes suitable for
// content hashing; node and edge order follows insertion order, so
// identical construction sequences hash identically.
package graphio
