// Package rank assigns integer ranks to the nodes of a directed acyclic
// graph. Ranks grow along edge direction and respect per-edge minimum
// lengths. The default ranker runs a network simplex optimization seeded by
// a longest-path ranking and a tight spanning tree.
package rank

// TreeNode carries the postorder bookkeeping for one spanning tree node.
// Low and Lim are DFS numbers: a node u is a descendant of v exactly when
// v.Low <= u.Lim <= v.Lim. Parent is "" for the root.
type TreeNode struct {
	Low    int
	Lim    int
	Parent string
}

// TreeEdge carries the cut value of one spanning tree edge, the net weight
// of graph edges crossing from the child subtree to the rest of the graph.
type TreeEdge struct {
	CutValue float64
}

// TreeEdgeKey identifies an undirected tree edge. V and W are stored in
// lexicographic order so (a, b) and (b, a) name the same edge.
type TreeEdgeKey struct {
	V, W string
}

func treeKey(v, w string) TreeEdgeKey {
	if w < v {
		v, w = w, v
	}
	return TreeEdgeKey{V: v, W: w}
}

// Tree is an undirected spanning tree (or forest) over a subset of a
// graph's nodes. Nodes, edges and per-node adjacency all iterate in
// insertion order, which the simplex pivot selection depends on.
type Tree struct {
	nodes     map[string]*TreeNode
	nodeOrder []string

	edges     map[TreeEdgeKey]*TreeEdge
	edgeOrder []TreeEdgeKey

	adj map[string][]string
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{
		nodes: make(map[string]*TreeNode),
		edges: make(map[TreeEdgeKey]*TreeEdge),
		adj:   make(map[string][]string),
	}
}

// SetNode adds the node if absent and returns its label.
func (t *Tree) SetNode(id string) *TreeNode {
	if node, ok := t.nodes[id]; ok {
		return node
	}
	node := &TreeNode{}
	t.nodes[id] = node
	t.nodeOrder = append(t.nodeOrder, id)
	return node
}

// Node returns the node's label, or nil if absent.
func (t *Tree) Node(id string) *TreeNode { return t.nodes[id] }

// HasNode reports whether the node exists.
func (t *Tree) HasNode(id string) bool {
	_, ok := t.nodes[id]
	return ok
}

// NodeCount returns the number of nodes.
func (t *Tree) NodeCount() int { return len(t.nodeOrder) }

// Nodes returns all node ids in insertion order. The slice is a read-only
// view.
func (t *Tree) Nodes() []string { return t.nodeOrder }

// SetEdge adds the undirected edge v-w if absent, creating missing
// endpoints, and returns its label.
func (t *Tree) SetEdge(v, w string) *TreeEdge {
	key := treeKey(v, w)
	if edge, ok := t.edges[key]; ok {
		return edge
	}
	t.SetNode(v)
	t.SetNode(w)
	edge := &TreeEdge{}
	t.edges[key] = edge
	t.edgeOrder = append(t.edgeOrder, key)
	t.adj[v] = append(t.adj[v], w)
	t.adj[w] = append(t.adj[w], v)
	return edge
}

// Edge returns the label of the undirected edge v-w, or nil.
func (t *Tree) Edge(v, w string) *TreeEdge { return t.edges[treeKey(v, w)] }

// HasEdge reports whether the undirected edge v-w exists.
func (t *Tree) HasEdge(v, w string) bool {
	_, ok := t.edges[treeKey(v, w)]
	return ok
}

// RemoveEdge removes the undirected edge v-w if it exists. The endpoints
// stay in the tree.
func (t *Tree) RemoveEdge(v, w string) {
	key := treeKey(v, w)
	if _, ok := t.edges[key]; !ok {
		return
	}
	delete(t.edges, key)
	for i, k := range t.edgeOrder {
		if k == key {
			t.edgeOrder = append(t.edgeOrder[:i], t.edgeOrder[i+1:]...)
			break
		}
	}
	t.adj[v] = removeFirst(t.adj[v], w)
	t.adj[w] = removeFirst(t.adj[w], v)
}

func removeFirst(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// EdgeCount returns the number of edges.
func (t *Tree) EdgeCount() int { return len(t.edgeOrder) }

// Edges returns all edge keys in insertion order. The slice is a read-only
// view.
func (t *Tree) Edges() []TreeEdgeKey { return t.edgeOrder }

// Neighbors returns v's adjacent nodes in edge insertion order. The slice
// is a read-only view.
func (t *Tree) Neighbors(v string) []string { return t.adj[v] }
