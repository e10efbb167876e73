package graph

import "slices"

// Options configures a new Graph. The zero value is a plain directed graph
// that rejects parallel edges.
type Options struct {
	// Multigraph allows parallel edges distinguished by EdgeKey.Name.
	Multigraph bool
}

type nodeEntry struct {
	label *Node
	index int
}

// Graph is a directed, optionally-multigraph container keyed by string node
// ids. Nodes and edges iterate in insertion order; every node additionally
// carries a dense integer index (see [Graph.NodeIndex]) so algorithms can
// keep scratch state in flat slices instead of maps.
//
// The zero value is not usable - use [New].
type Graph struct {
	opts   Options
	config Config

	nodes     map[string]*nodeEntry
	nodeOrder []string

	edges     map[EdgeKey]*Edge
	edgeOrder []EdgeKey
	out       map[string][]EdgeKey
	in        map[string][]EdgeKey

	defaultNode func() *Node
	defaultEdge func() *Edge
}

// New creates an empty graph with [DefaultConfig] settings.
func New(opts Options) *Graph {
	return &Graph{
		opts:   opts,
		config: DefaultConfig(),
		nodes:  make(map[string]*nodeEntry),
		edges:  make(map[EdgeKey]*Edge),
		out:    make(map[string][]EdgeKey),
		in:     make(map[string][]EdgeKey),
	}
}

// IsMultigraph reports whether parallel edges are allowed.
func (g *Graph) IsMultigraph() bool { return g.opts.Multigraph }

// Config returns a pointer to the graph-level layout settings. The returned
// pointer refers to the graph's own config, so modifications take effect.
func (g *Graph) Config() *Config { return &g.config }

// SetConfig replaces the graph-level layout settings.
func (g *Graph) SetConfig(c Config) { g.config = c }

// SetDefaultNodeLabel sets the factory used when a node is created without
// an explicit label (by [Graph.SetEdge] or a nil label to [Graph.SetNode]).
func (g *Graph) SetDefaultNodeLabel(fn func() *Node) { g.defaultNode = fn }

// SetDefaultEdgeLabel sets the factory used when an edge is created without
// an explicit label.
func (g *Graph) SetDefaultEdgeLabel(fn func() *Edge) { g.defaultEdge = fn }

func (g *Graph) newNodeLabel() *Node {
	if g.defaultNode != nil {
		return g.defaultNode()
	}
	return &Node{}
}

func (g *Graph) newEdgeLabel() *Edge {
	if g.defaultEdge != nil {
		return g.defaultEdge()
	}
	return &Edge{}
}

// SetNode adds a node or replaces an existing node's label. A nil label
// creates the node with the default label (existing labels are kept).
// The node keeps its original insertion position and index.
func (g *Graph) SetNode(id string, label *Node) *Node {
	if entry, ok := g.nodes[id]; ok {
		if label != nil {
			entry.label = label
		}
		return entry.label
	}
	if label == nil {
		label = g.newNodeLabel()
	}
	g.nodes[id] = &nodeEntry{label: label, index: len(g.nodeOrder)}
	g.nodeOrder = append(g.nodeOrder, id)
	return label
}

// EnsureNode adds the node with a default label if absent and returns its
// label.
func (g *Graph) EnsureNode(id string) *Node { return g.SetNode(id, nil) }

// Node returns the node's label, or nil if the node does not exist.
func (g *Graph) Node(id string) *Node {
	if entry, ok := g.nodes[id]; ok {
		return entry.label
	}
	return nil
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeIndex returns the node's dense insertion index. Indices are stable
// for the life of the graph and cover [0, NodeCount).
func (g *Graph) NodeIndex(id string) (int, bool) {
	entry, ok := g.nodes[id]
	if !ok {
		return 0, false
	}
	return entry.index, true
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodeOrder) }

// Nodes returns all node ids in insertion order. The returned slice is a
// copy and may be modified.
func (g *Graph) Nodes() []string { return slices.Clone(g.nodeOrder) }

// SetEdge adds the edge v->w with the default edge label, creating missing
// endpoints. If the edge already exists its label is returned unchanged.
func (g *Graph) SetEdge(v, w string) *Edge {
	return g.setEdge(EdgeKey{V: v, W: w}, nil)
}

// SetEdgeWithLabel adds or replaces the edge v->w with the given label.
func (g *Graph) SetEdgeWithLabel(v, w string, label *Edge) *Edge {
	return g.setEdge(EdgeKey{V: v, W: w}, label)
}

// SetNamedEdge adds or replaces a named parallel edge. Names other than ""
// require a multigraph.
func (g *Graph) SetNamedEdge(v, w, name string, label *Edge) *Edge {
	if name != "" && !g.opts.Multigraph {
		return nil
	}
	return g.setEdge(EdgeKey{V: v, W: w, Name: name}, label)
}

func (g *Graph) setEdge(key EdgeKey, label *Edge) *Edge {
	if existing, ok := g.edges[key]; ok {
		if label != nil {
			g.edges[key] = label
			return label
		}
		return existing
	}
	g.EnsureNode(key.V)
	g.EnsureNode(key.W)
	if label == nil {
		label = g.newEdgeLabel()
	}
	g.edges[key] = label
	g.edgeOrder = append(g.edgeOrder, key)
	g.out[key.V] = append(g.out[key.V], key)
	g.in[key.W] = append(g.in[key.W], key)
	return label
}

// Edge returns the label of the unnamed edge v->w, or nil.
func (g *Graph) Edge(v, w string) *Edge {
	return g.edges[EdgeKey{V: v, W: w}]
}

// NamedEdge returns the label of the edge identified by key, or nil.
func (g *Graph) NamedEdge(key EdgeKey) *Edge { return g.edges[key] }

// HasEdge reports whether the unnamed edge v->w exists.
func (g *Graph) HasEdge(v, w string) bool {
	_, ok := g.edges[EdgeKey{V: v, W: w}]
	return ok
}

// RemoveEdge removes the unnamed edge v->w if it exists.
func (g *Graph) RemoveEdge(v, w string) { g.RemoveNamedEdge(EdgeKey{V: v, W: w}) }

// RemoveNamedEdge removes the edge identified by key if it exists.
func (g *Graph) RemoveNamedEdge(key EdgeKey) {
	if _, ok := g.edges[key]; !ok {
		return
	}
	delete(g.edges, key)
	g.edgeOrder = deleteKey(g.edgeOrder, key)
	g.out[key.V] = deleteKey(g.out[key.V], key)
	g.in[key.W] = deleteKey(g.in[key.W], key)
}

func deleteKey(keys []EdgeKey, key EdgeKey) []EdgeKey {
	return slices.DeleteFunc(keys, func(k EdgeKey) bool { return k == key })
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edgeOrder) }

// Edges returns all edge keys in insertion order. The returned slice is a
// copy and may be modified.
func (g *Graph) Edges() []EdgeKey { return slices.Clone(g.edgeOrder) }

// OutEdges returns the edges leaving v in insertion order. The returned
// slice is a read-only view; do not modify it.
func (g *Graph) OutEdges(v string) []EdgeKey { return g.out[v] }

// InEdges returns the edges entering w in insertion order. The returned
// slice is a read-only view; do not modify it.
func (g *Graph) InEdges(w string) []EdgeKey { return g.in[w] }

// Successors returns the distinct heads of v's out-edges, in first-seen
// order.
func (g *Graph) Successors(v string) []string {
	return distinctEndpoints(g.out[v], false)
}

// Predecessors returns the distinct tails of v's in-edges, in first-seen
// order.
func (g *Graph) Predecessors(v string) []string {
	return distinctEndpoints(g.in[v], true)
}

func distinctEndpoints(keys []EdgeKey, tail bool) []string {
	if len(keys) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		id := k.W
		if tail {
			id = k.V
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Sources returns nodes with no incoming edges, in insertion order.
func (g *Graph) Sources() []string {
	var out []string
	for _, id := range g.nodeOrder {
		if len(g.in[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Sinks returns nodes with no outgoing edges, in insertion order.
func (g *Graph) Sinks() []string {
	var out []string
	for _, id := range g.nodeOrder {
		if len(g.out[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// SetPath adds unnamed edges connecting consecutive ids.
func (g *Graph) SetPath(ids ...string) {
	for i := 1; i < len(ids); i++ {
		g.SetEdge(ids[i-1], ids[i])
	}
}
