package position

import (
	"math"

	"github.com/matzehuels/strata/pkg/graph"
)

// HorizontalCompaction assigns an x coordinate to every node for one
// alignment. Blocks are packed left to right along a block graph whose
// edge weights are the required separations; a second pass pulls each
// block as far right as its successors allow, except for border blocks,
// which stay at their leftmost position.
func HorizontalCompaction(g *graph.Graph, layering [][]string, root, align map[string]string, reverseSep bool) map[string]float64 {
	xs := make(map[string]float64)
	blockG := buildBlockGraph(g, layering, root, reverseSep)
	borderType := graph.BorderRight
	if reverseSep {
		borderType = graph.BorderLeft
	}

	// iterate visits every block in dependency order: a block is pushed
	// back on the stack before its neighbors, and setXS runs when it is
	// popped again after they finished.
	iterate := func(setXS func(string), next func(string) []string) {
		stack := blockG.Nodes()
		visited := make(map[string]bool, len(stack))
		for len(stack) > 0 {
			elem := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[elem] {
				setXS(elem)
				continue
			}
			visited[elem] = true
			stack = append(stack, elem)
			stack = append(stack, next(elem)...)
		}
	}

	// First pass: smallest coordinates.
	iterate(func(elem string) {
		best := 0.0
		for _, e := range blockG.InEdges(elem) {
			if label := blockG.NamedEdge(e); label != nil {
				best = math.Max(best, xs[e.V]+label.Weight)
			}
		}
		xs[elem] = best
	}, blockG.Predecessors)

	// Second pass: greatest coordinates.
	iterate(func(elem string) {
		min := math.Inf(1)
		for _, e := range blockG.OutEdges(elem) {
			if label := blockG.NamedEdge(e); label != nil {
				min = math.Min(min, xs[e.W]-label.Weight)
			}
		}
		node := g.Node(elem)
		if node == nil {
			return
		}
		if !math.IsInf(min, 1) && node.BorderType != borderType {
			xs[elem] = math.Max(xs[elem], min)
		}
	}, blockG.Successors)

	out := make(map[string]float64, len(align))
	for v := range align {
		out[v] = xs[rootOf(root, v)]
	}
	return out
}

func rootOf(root map[string]string, v string) string {
	if r, ok := root[v]; ok {
		return r
	}
	return v
}

// buildBlockGraph links the block roots of layer-adjacent node pairs with
// the maximum separation any pair in the two blocks requires.
func buildBlockGraph(g *graph.Graph, layering [][]string, root map[string]string, reverseSep bool) *graph.Graph {
	blockG := graph.New(graph.Options{})
	for _, layer := range layering {
		u := ""
		first := true
		for _, v := range layer {
			vRoot := rootOf(root, v)
			blockG.EnsureNode(vRoot)

			if !first {
				uRoot := rootOf(root, u)
				prevMax := 0.0
				if existing := blockG.Edge(uRoot, vRoot); existing != nil {
					prevMax = existing.Weight
				}
				blockG.SetEdgeWithLabel(uRoot, vRoot, &graph.Edge{
					Weight: math.Max(sep(g, v, u, reverseSep), prevMax),
				})
			}

			u = v
			first = false
		}
	}
	return blockG
}

// sep returns the minimum horizontal distance between the centers of v and
// its left neighbor w: half widths, half node or edge separation on each
// side, and a shift for off-center edge labels. reverseSep flips the label
// shift for the mirrored alignments.
func sep(g *graph.Graph, v, w string, reverseSep bool) float64 {
	vLabel := g.Node(v)
	if vLabel == nil {
		vLabel = &graph.Node{}
	}
	wLabel := g.Node(w)
	if wLabel == nil {
		wLabel = &graph.Node{}
	}

	sum := vLabel.Width / 2
	delta := 0.0
	switch vLabel.LabelPos {
	case graph.LabelPosLeft:
		delta = -vLabel.Width / 2
	case graph.LabelPosRight:
		delta = vLabel.Width / 2
	}
	if delta != 0 {
		if reverseSep {
			sum += delta
		} else {
			sum -= delta
		}
	}

	cfg := g.Config()
	sum += halfSep(cfg, vLabel)
	sum += halfSep(cfg, wLabel)

	sum += wLabel.Width / 2
	delta = 0
	switch wLabel.LabelPos {
	case graph.LabelPosLeft:
		delta = wLabel.Width / 2
	case graph.LabelPosRight:
		delta = -wLabel.Width / 2
	}
	if delta != 0 {
		if reverseSep {
			sum += delta
		} else {
			sum -= delta
		}
	}

	return sum
}

func halfSep(cfg *graph.Config, node *graph.Node) float64 {
	if node.Dummy != "" {
		return cfg.EdgeSep / 2
	}
	return cfg.NodeSep / 2
}
