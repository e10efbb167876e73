package rank

import "github.com/matzehuels/strata/pkg/graph"

// FeasibleTree builds a tight spanning tree over g, adjusting ranks so that
// every tree edge has zero slack. g must already carry a feasible ranking
// (see LongestPath). Disconnected graphs produce a forest: when no edge
// joins the tree to the rest of the graph, an unreached node is adopted as
// a new component root.
func FeasibleTree(g *graph.Graph) *Tree {
	rankByIx := make([]int, g.NodeCount())
	inTreeByIx := make([]bool, g.NodeCount())
	for _, id := range g.Nodes() {
		ix, ok := g.NodeIndex(id)
		if !ok {
			continue
		}
		if node := g.Node(id); node != nil && node.Rank != nil {
			rankByIx[ix] = *node.Rank
		}
	}

	t := NewTree()
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return t
	}
	t.SetNode(nodes[0])
	if ix, ok := g.NodeIndex(nodes[0]); ok {
		inTreeByIx[ix] = true
	}

	size := g.NodeCount()
	for tightTree(t, g, rankByIx, inTreeByIx) < size {
		slack, inV, found := findMinSlackEdge(g, rankByIx, inTreeByIx)
		if !found {
			// No edge crosses the cut: the remainder is a separate
			// component. Seed a new root and keep growing the forest.
			adopted := false
			for _, id := range nodes {
				if t.HasNode(id) {
					continue
				}
				if ix, ok := g.NodeIndex(id); ok {
					inTreeByIx[ix] = true
				}
				t.SetNode(id)
				adopted = true
				break
			}
			if !adopted {
				break
			}
			continue
		}

		delta := slack
		if !inV {
			delta = -slack
		}
		shiftRanks(t, g, rankByIx, delta)
	}

	return t
}

// tightTree grows t along zero-slack edges from every node already in the
// tree and returns the resulting tree size.
func tightTree(t *Tree, g *graph.Graph, rankByIx []int, inTreeByIx []bool) int {
	roots := append([]string(nil), t.Nodes()...)
	for _, root := range roots {
		stack := []string{root}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			grow := func(e graph.EdgeKey) {
				other := e.W
				if v == e.W {
					other = e.V
				}
				if t.HasNode(other) {
					return
				}

				tailIx, ok := g.NodeIndex(e.V)
				if !ok {
					return
				}
				headIx, ok := g.NodeIndex(e.W)
				if !ok {
					return
				}
				if rankByIx[headIx]-rankByIx[tailIx]-edgeMinLen(g, e) != 0 {
					return
				}

				stack = append(stack, other)
				if ix, ok := g.NodeIndex(other); ok {
					inTreeByIx[ix] = true
				}
				t.SetEdge(v, other)
			}

			for _, e := range g.OutEdges(v) {
				grow(e)
			}
			for _, e := range g.InEdges(v) {
				grow(e)
			}
		}
	}
	return t.NodeCount()
}

// findMinSlackEdge scans all edges with exactly one endpoint in the tree
// and returns the smallest slack along with whether the in-tree endpoint is
// the tail. Ties keep the earliest edge in insertion order.
func findMinSlackEdge(g *graph.Graph, rankByIx []int, inTreeByIx []bool) (slack int, inV, found bool) {
	for _, e := range g.Edges() {
		vIx, ok := g.NodeIndex(e.V)
		if !ok {
			continue
		}
		wIx, ok := g.NodeIndex(e.W)
		if !ok {
			continue
		}
		if inTreeByIx[vIx] == inTreeByIx[wIx] {
			continue
		}

		s := rankByIx[wIx] - rankByIx[vIx] - edgeMinLen(g, e)
		if !found || s < slack {
			slack, inV, found = s, inTreeByIx[vIx], true
		}
	}
	return slack, inV, found
}

// shiftRanks moves every tree node's rank by delta, keeping the index
// mirror in sync.
func shiftRanks(t *Tree, g *graph.Graph, rankByIx []int, delta int) {
	for _, v := range t.Nodes() {
		node := g.Node(v)
		if node == nil || node.Rank == nil {
			continue
		}
		*node.Rank += delta
		if ix, ok := g.NodeIndex(v); ok {
			rankByIx[ix] = *node.Rank
		}
	}
}

func edgeMinLen(g *graph.Graph, e graph.EdgeKey) int {
	minlen := 1
	if label := g.NamedEdge(e); label != nil && label.MinLen > minlen {
		minlen = label.MinLen
	}
	return minlen
}
