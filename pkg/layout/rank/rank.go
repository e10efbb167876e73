package rank

import "github.com/matzehuels/strata/pkg/graph"

// Rank assigns a rank to every node of g according to the configured
// ranker. Supported rankers are "network-simplex" (default), "tight-tree",
// "longest-path" and "none". Unknown values fall back to network simplex.
func Rank(g *graph.Graph) {
	switch g.Config().Ranker {
	case graph.RankerNone:
	case graph.RankerLongestPath:
		LongestPath(g)
	case graph.RankerTightTree:
		LongestPath(g)
		FeasibleTree(g)
	default:
		NetworkSimplex(g)
	}
}

// LongestPath assigns each node the smallest rank consistent with its
// out-edges, with sinks at rank 0 and ranks decreasing upstream. The
// resulting ranking is feasible but generally not tight. The traversal is
// iterative; nodes on a cycle keep whatever rank their finished successors
// allow, so malformed inputs degrade instead of looping.
func LongestPath(g *graph.Graph) {
	type frame struct {
		id       string
		expanded bool
	}

	ranks := make(map[string]int, g.NodeCount())
	var stack []frame
	sources := g.Sources()
	for i := len(sources) - 1; i >= 0; i-- {
		stack = append(stack, frame{id: sources[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := ranks[f.id]; done {
			continue
		}

		if !f.expanded {
			stack = append(stack, frame{id: f.id, expanded: true})
			out := g.OutEdges(f.id)
			for i := len(out) - 1; i >= 0; i-- {
				if _, done := ranks[out[i].W]; !done {
					stack = append(stack, frame{id: out[i].W})
				}
			}
			continue
		}

		rank := 0
		first := true
		for _, e := range g.OutEdges(f.id) {
			wRank, done := ranks[e.W]
			if !done {
				// Successor on a cycle through this node. Skip it.
				continue
			}
			minlen := 1
			if label := g.NamedEdge(e); label != nil {
				minlen = label.MinLen
			}
			if candidate := wRank - minlen; first || candidate < rank {
				rank = candidate
				first = false
			}
		}
		ranks[f.id] = rank
		if node := g.Node(f.id); node != nil {
			node.Rank = graph.Int(rank)
		}
	}
}

// Slack returns the rank surplus of an edge over its minimum length.
// A tight edge has slack zero. Missing nodes or ranks count as zero so
// partially ranked graphs degrade instead of panicking.
func Slack(g *graph.Graph, e graph.EdgeKey) int {
	return rankOf(g, e.W) - rankOf(g, e.V) - minLenOf(g, e)
}

func rankOf(g *graph.Graph, id string) int {
	if node := g.Node(id); node != nil && node.Rank != nil {
		return *node.Rank
	}
	return 0
}

func minLenOf(g *graph.Graph, e graph.EdgeKey) int {
	if label := g.NamedEdge(e); label != nil {
		return label.MinLen
	}
	return 1
}
