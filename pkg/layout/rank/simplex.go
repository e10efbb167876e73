package rank

import "github.com/matzehuels/strata/pkg/graph"

// NetworkSimplex assigns optimal ranks to g's nodes: among all rankings
// that respect every edge's minimum length, it finds one minimizing the
// total weighted edge length. It works on a simplified copy (no self loops,
// parallel edges merged) and writes the final ranks back into g.
//
// The pivot loop terminates when no tree edge has a negative cut value.
// A well-formed acyclic input always reaches that state; the iteration cap
// only guards against invariant bugs such as an unnoticed cycle.
func NetworkSimplex(g *graph.Graph) {
	simplified := graph.Simplify(g)
	LongestPath(simplified)
	t := FeasibleTree(simplified)
	initLowLim(t, "")
	initCutValues(t, simplified)

	maxPivots := 4 * (simplified.NodeCount()*simplified.EdgeCount() + 1)
	for pivot := 0; pivot < maxPivots; pivot++ {
		e, ok := leaveEdge(t)
		if !ok {
			break
		}
		f := enterEdge(t, simplified, e)
		exchangeEdges(t, simplified, e, f)
	}

	for _, v := range g.Nodes() {
		node := simplified.Node(v)
		if node == nil || node.Rank == nil {
			continue
		}
		if target := g.Node(v); target != nil {
			target.Rank = graph.Int(*node.Rank)
		}
	}
}

// initLowLim renumbers the tree with low/lim DFS values rooted at root (or
// the first tree node when root is ""). Children are visited in adjacency
// insertion order.
func initLowLim(t *Tree, root string) {
	if root == "" {
		nodes := t.Nodes()
		if len(nodes) == 0 {
			return
		}
		root = nodes[0]
	}

	type frame struct {
		id       string
		parent   string
		expanded bool
	}

	visited := make(map[string]bool, t.NodeCount())
	lowOf := make(map[string]int, t.NodeCount())
	lim := 1
	stack := []frame{{id: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			if node := t.Node(f.id); node != nil {
				node.Low = lowOf[f.id]
				node.Lim = lim
				node.Parent = f.parent
			}
			lim++
			continue
		}
		if visited[f.id] {
			continue
		}
		visited[f.id] = true
		lowOf[f.id] = lim

		stack = append(stack, frame{id: f.id, parent: f.parent, expanded: true})
		neighbors := t.Neighbors(f.id)
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !visited[neighbors[i]] {
				stack = append(stack, frame{id: neighbors[i], parent: f.id})
			}
		}
	}
}

// initCutValues computes the cut value of every tree edge bottom-up, in
// postorder so a child's value is ready before its parent edge needs it.
func initCutValues(t *Tree, g *graph.Graph) {
	order := postorder(t)
	if len(order) > 0 {
		order = order[:len(order)-1] // the root has no parent edge
	}
	for _, v := range order {
		node := t.Node(v)
		if node == nil || node.Parent == "" {
			continue
		}
		if edge := t.Edge(v, node.Parent); edge != nil {
			edge.CutValue = calcCutValue(t, g, v)
		}
	}
}

// postorder walks every tree component from its first-inserted node and
// returns nodes children-first.
func postorder(t *Tree) []string {
	type frame struct {
		id       string
		expanded bool
	}

	visited := make(map[string]bool, t.NodeCount())
	order := make([]string, 0, t.NodeCount())

	for _, root := range t.Nodes() {
		if visited[root] {
			continue
		}
		stack := []frame{{id: root}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.expanded {
				order = append(order, f.id)
				continue
			}
			if visited[f.id] {
				continue
			}
			visited[f.id] = true
			stack = append(stack, frame{id: f.id, expanded: true})
			neighbors := t.Neighbors(f.id)
			for i := len(neighbors) - 1; i >= 0; i-- {
				if !visited[neighbors[i]] {
					stack = append(stack, frame{id: neighbors[i]})
				}
			}
		}
	}
	return order
}

// calcCutValue computes the cut value of the tree edge between child and
// its parent from the child's incident graph edges and the cut values of
// the child's other tree edges.
func calcCutValue(t *Tree, g *graph.Graph, child string) float64 {
	node := t.Node(child)
	if node == nil || node.Parent == "" {
		return 0
	}
	parent := node.Parent

	// childIsTail is true when the underlying graph edge points from the
	// child to the parent.
	childIsTail := true
	graphEdge := g.Edge(child, parent)
	if graphEdge == nil {
		childIsTail = false
		graphEdge = g.Edge(parent, child)
	}
	if graphEdge == nil {
		return 0
	}

	cutValue := graphEdge.Weight

	accumulate := func(e graph.EdgeKey, other string, pointsToHead bool) {
		label := g.NamedEdge(e)
		if label == nil {
			return
		}
		if pointsToHead {
			cutValue += label.Weight
		} else {
			cutValue -= label.Weight
		}
		if otherEdge := t.Edge(child, other); otherEdge != nil {
			if pointsToHead {
				cutValue -= otherEdge.CutValue
			} else {
				cutValue += otherEdge.CutValue
			}
		}
	}

	for _, e := range g.OutEdges(child) {
		if e.W != parent {
			accumulate(e, e.W, childIsTail)
		}
	}
	for _, e := range g.InEdges(child) {
		if e.V != parent {
			accumulate(e, e.V, !childIsTail)
		}
	}

	return cutValue
}

// leaveEdge returns the first tree edge in insertion order with a negative
// cut value, if any.
func leaveEdge(t *Tree) (TreeEdgeKey, bool) {
	for _, key := range t.Edges() {
		if edge := t.Edge(key.V, key.W); edge != nil && edge.CutValue < 0 {
			return key, true
		}
	}
	return TreeEdgeKey{}, false
}

// enterEdge finds the replacement for a leaving tree edge: among all graph
// edges that cross the cut in the opposite direction, the one with minimum
// slack, earliest in insertion order on ties. Removing the leave edge
// splits the tree at its lower-lim endpoint's subtree; candidates connect
// that subtree back to the rest.
func enterEdge(t *Tree, g *graph.Graph, leave TreeEdgeKey) graph.EdgeKey {
	v, w := leave.V, leave.W
	if !g.HasEdge(v, w) {
		v, w = w, v
	}
	fallback := graph.EdgeKey{V: v, W: w}

	vNode, wNode := t.Node(v), t.Node(w)
	if vNode == nil || wNode == nil {
		return fallback
	}
	tailLow, tailLim := vNode.Low, vNode.Lim
	flip := false
	if vNode.Lim > wNode.Lim {
		tailLow, tailLim = wNode.Low, wNode.Lim
		flip = true
	}

	limByIx := make([]int, g.NodeCount())
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
		if tNode := t.Node(id); tNode != nil {
			limByIx[ix] = tNode.Lim
			inTreeByIx[ix] = true
		}
	}

	var (
		best      graph.EdgeKey
		bestSlack int
		found     bool
	)
	for _, e := range g.Edges() {
		vIx, ok := g.NodeIndex(e.V)
		if !ok || !inTreeByIx[vIx] {
			continue
		}
		wIx, ok := g.NodeIndex(e.W)
		if !ok || !inTreeByIx[wIx] {
			continue
		}
		vDesc := tailLow <= limByIx[vIx] && limByIx[vIx] <= tailLim
		wDesc := tailLow <= limByIx[wIx] && limByIx[wIx] <= tailLim
		if flip != vDesc || flip == wDesc {
			continue
		}

		slack := rankByIx[wIx] - rankByIx[vIx] - edgeMinLen(g, e)
		if !found || slack < bestSlack {
			best, bestSlack, found = e, slack, true
		}
	}
	if !found {
		return fallback
	}
	return best
}

// exchangeEdges swaps the leave edge for the enter edge and rebuilds the
// tree bookkeeping and the induced ranking.
func exchangeEdges(t *Tree, g *graph.Graph, leave TreeEdgeKey, enter graph.EdgeKey) {
	t.RemoveEdge(leave.V, leave.W)
	t.SetEdge(enter.V, enter.W)
	initLowLim(t, "")
	initCutValues(t, g)
	updateRanks(t, g)
}

// updateRanks rewrites every node's rank from the tree structure: each
// node sits exactly minlen away from its parent, on the side the
// underlying graph edge dictates.
func updateRanks(t *Tree, g *graph.Graph) {
	root := ""
	for _, v := range t.Nodes() {
		if node := t.Node(v); node != nil && node.Parent == "" {
			root = v
			break
		}
	}
	if root == "" {
		nodes := t.Nodes()
		if len(nodes) == 0 {
			return
		}
		root = nodes[0]
	}

	order := preorder(t, root)
	for _, v := range order[1:] {
		tNode := t.Node(v)
		if tNode == nil || tNode.Parent == "" {
			continue
		}
		parent := tNode.Parent

		var (
			minlen  int
			flipped bool
		)
		if edge := g.Edge(v, parent); edge != nil {
			minlen = edge.MinLen
		} else if edge := g.Edge(parent, v); edge != nil {
			minlen = edge.MinLen
			flipped = true
		} else {
			continue
		}

		parentNode := g.Node(parent)
		if parentNode == nil || parentNode.Rank == nil {
			continue
		}
		rank := *parentNode.Rank - minlen
		if flipped {
			rank = *parentNode.Rank + minlen
		}
		if node := g.Node(v); node != nil {
			node.Rank = graph.Int(rank)
		}
	}
}

// preorder walks the tree from root, parents before children, children in
// adjacency insertion order.
func preorder(t *Tree, root string) []string {
	visited := make(map[string]bool, t.NodeCount())
	order := make([]string, 0, t.NodeCount())
	stack := []string{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		order = append(order, v)
		neighbors := t.Neighbors(v)
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !visited[neighbors[i]] {
				stack = append(stack, neighbors[i])
			}
		}
	}
	return order
}
