// Package position assigns coordinates to the nodes of a ranked and
// ordered graph. Vertical placement stacks ranks with the configured rank
// separation; horizontal placement runs the Brandes and Koepf alignment
// scheme, producing four candidate layouts and balancing them into the
// final x coordinates.
package position

import "github.com/matzehuels/strata/pkg/graph"

// Conflicts records unordered node pairs whose edges must not be aligned
// into the same vertical block.
type Conflicts map[string]map[string]bool

// AddConflict marks the pair (v, w). Order of the arguments is
// insignificant.
func AddConflict(c Conflicts, v, w string) {
	if w < v {
		v, w = w, v
	}
	set, ok := c[v]
	if !ok {
		set = make(map[string]bool)
		c[v] = set
	}
	set[w] = true
}

// HasConflict reports whether the pair (v, w) is marked, in either order.
func HasConflict(c Conflicts, v, w string) bool {
	if w < v {
		v, w = w, v
	}
	return c[v][w]
}

// FindType1Conflicts finds crossings between an inner segment (an edge
// joining two dummies) and a non-inner segment. The inner segment wins
// those crossings, so the non-inner edge is marked and later skipped
// during vertical alignment.
func FindType1Conflicts(g *graph.Graph, layering [][]string) Conflicts {
	conflicts := make(Conflicts)

	for i := 1; i < len(layering); i++ {
		prevLayer := layering[i-1]
		layer := layering[i]

		// k0 and k1 bracket the orders of the inner segments seen so far;
		// predecessors outside that window cross an inner segment.
		k0 := 0
		scanPos := 0
		last := ""
		if len(layer) > 0 {
			last = layer[len(layer)-1]
		}

		for idx, v := range layer {
			w := findOtherInnerSegmentNode(g, v)
			k1 := len(prevLayer)
			if w != "" {
				if node := g.Node(w); node != nil && node.Order != nil {
					k1 = *node.Order
				}
			}

			if w == "" && v != last {
				continue
			}

			for _, scanNode := range layer[scanPos : idx+1] {
				scanDummy := isDummy(g, scanNode)
				for _, u := range g.Predecessors(scanNode) {
					uNode := g.Node(u)
					if uNode == nil {
						continue
					}
					uPos := 0
					if uNode.Order != nil {
						uPos = *uNode.Order
					}
					if (uPos < k0 || k1 < uPos) && !(uNode.Dummy != "" && scanDummy) {
						AddConflict(conflicts, u, scanNode)
					}
				}
			}
			scanPos = idx + 1
			k0 = k1
		}
	}

	return conflicts
}

// FindType2Conflicts finds crossings between two inner segments near
// cluster borders. Border segments win, so the crossing dummy pair is
// marked.
func FindType2Conflicts(g *graph.Graph, layering [][]string) Conflicts {
	conflicts := make(Conflicts)

	scan := func(south []string, southPos, southEnd, prevNorthBorder, nextNorthBorder int) {
		for _, v := range south[southPos:southEnd] {
			if !isDummy(g, v) {
				continue
			}
			for _, u := range g.Predecessors(v) {
				uNode := g.Node(u)
				if uNode == nil || uNode.Dummy == "" {
					continue
				}
				uOrder := 0
				if uNode.Order != nil {
					uOrder = *uNode.Order
				}
				if uOrder < prevNorthBorder || uOrder > nextNorthBorder {
					AddConflict(conflicts, u, v)
				}
			}
		}
	}

	for i := 1; i < len(layering); i++ {
		north := layering[i-1]
		south := layering[i]

		prevNorthPos := -1
		nextNorthPos := -1
		southPos := 0

		for lookahead, v := range south {
			if node := g.Node(v); node != nil && node.Dummy == graph.DummyBorder {
				if preds := g.Predecessors(v); len(preds) > 0 {
					// A predecessor without an order scans with -1 and
					// leaves prevNorthPos untouched.
					nextNorthPos = -1
					if pred := g.Node(preds[0]); pred != nil && pred.Order != nil {
						nextNorthPos = *pred.Order
					}
					scan(south, southPos, lookahead, prevNorthPos, nextNorthPos)
					southPos = lookahead
					if nextNorthPos >= 0 {
						prevNorthPos = nextNorthPos
					}
				}
			}
			scan(south, southPos, len(south), nextNorthPos, len(north))
		}
	}

	return conflicts
}

// findOtherInnerSegmentNode returns the dummy predecessor of v when v is
// itself a dummy, making the edge between them an inner segment.
func findOtherInnerSegmentNode(g *graph.Graph, v string) string {
	if !isDummy(g, v) {
		return ""
	}
	for _, u := range g.Predecessors(v) {
		if isDummy(g, u) {
			return u
		}
	}
	return ""
}

func isDummy(g *graph.Graph, v string) bool {
	node := g.Node(v)
	return node != nil && node.Dummy != ""
}
