package graph

import "sort"

// Simplify returns a copy of g without self-loops and with parallel edges
// merged into single unnamed edges. A merged edge takes the sum of the
// weights and the maximum minlen of its constituents, and sits at the
// position of the first constituent in insertion order. Node labels are
// shared with g, not copied.
func Simplify(g *Graph) *Graph {
	simplified := New(Options{})
	simplified.SetConfig(*g.Config())
	for _, id := range g.Nodes() {
		simplified.SetNode(id, g.Node(id))
	}
	for _, key := range g.Edges() {
		if key.V == key.W {
			continue
		}
		label := g.NamedEdge(key)
		if label == nil {
			continue
		}
		if merged := simplified.Edge(key.V, key.W); merged != nil {
			merged.Weight += label.Weight
			merged.MinLen = max(merged.MinLen, label.MinLen)
			continue
		}
		simplified.SetEdgeWithLabel(key.V, key.W, &Edge{
			Weight: label.Weight,
			MinLen: label.MinLen,
		})
	}
	return simplified
}

// BuildLayerMatrix arranges ranked nodes into layers. Layer r holds the
// nodes with rank r sorted by their order attribute; within equal orders
// insertion order is kept. Nodes without a rank are skipped.
func BuildLayerMatrix(g *Graph) [][]string {
	maxRank := -1
	for _, id := range g.Nodes() {
		node := g.Node(id)
		if node == nil || node.Rank == nil {
			continue
		}
		if *node.Rank > maxRank {
			maxRank = *node.Rank
		}
	}
	if maxRank < 0 {
		return nil
	}
	layers := make([][]string, maxRank+1)
	for _, id := range g.Nodes() {
		node := g.Node(id)
		if node == nil || node.Rank == nil {
			continue
		}
		rank := *node.Rank
		if rank < 0 || rank > maxRank {
			continue
		}
		layers[rank] = append(layers[rank], id)
	}
	for _, layer := range layers {
		sort.SliceStable(layer, func(i, j int) bool {
			return orderOf(g, layer[i]) < orderOf(g, layer[j])
		})
	}
	return layers
}

func orderOf(g *Graph, id string) int {
	if node := g.Node(id); node != nil && node.Order != nil {
		return *node.Order
	}
	return 0
}

// NormalizeRanks shifts all ranks so the smallest becomes zero. Nodes
// without a rank are untouched.
func NormalizeRanks(g *Graph) {
	minRank := 0
	found := false
	for _, id := range g.Nodes() {
		node := g.Node(id)
		if node == nil || node.Rank == nil {
			continue
		}
		if !found || *node.Rank < minRank {
			minRank = *node.Rank
			found = true
		}
	}
	if !found || minRank == 0 {
		return
	}
	for _, id := range g.Nodes() {
		node := g.Node(id)
		if node == nil || node.Rank == nil {
			continue
		}
		*node.Rank -= minRank
	}
}
