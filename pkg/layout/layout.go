// Package layout runs the full layered layout pipeline.
//
// The pipeline assigns a rank (layer) to every node, normalizes ranks to
// start at zero, assigns a within-layer order to nodes that do not carry
// one, and finally computes x/y coordinates. Crossing minimization is
// out of scope: callers that care about edge crossings assign Order
// themselves before calling Apply; nodes without an Order fall back to
// insertion order within their layer.
//
// The pipeline is deterministic. Two graphs built by the same
// construction sequence produce byte-identical coordinates.
package layout

import (
	"context"
	"time"

	"github.com/matzehuels/strata/pkg/graph"
	"github.com/matzehuels/strata/pkg/layout/position"
	"github.com/matzehuels/strata/pkg/layout/rank"
	"github.com/matzehuels/strata/pkg/observability"
)

// Apply runs the layout pipeline on g in place: rank assignment,
// rank normalization, order fallback, and coordinate assignment.
func Apply(ctx context.Context, g *graph.Graph) {
	ranker := g.Config().Ranker
	if ranker == "" {
		ranker = graph.RankerNetworkSimplex
	}

	rankStart := time.Now()
	observability.Layout().OnRankStart(ctx, ranker, g.NodeCount())
	rank.Rank(g)
	graph.NormalizeRanks(g)
	observability.Layout().OnRankComplete(ctx, ranker, g.NodeCount(), time.Since(rankStart))

	assignDefaultOrder(g)

	posStart := time.Now()
	observability.Layout().OnPositionStart(ctx, g.NodeCount())
	position.Position(g)
	observability.Layout().OnPositionComplete(ctx, g.NodeCount(), time.Since(posStart))
}

// assignDefaultOrder gives every ranked node without an Order its
// position within the layer, counting in insertion order. Nodes that
// already carry an Order keep it; fallback nodes are appended after the
// highest assigned order in their layer so explicit orders stay stable.
func assignDefaultOrder(g *graph.Graph) {
	next := make(map[int]int)
	for _, id := range g.Nodes() {
		node := g.Node(id)
		if node == nil || node.Rank == nil || node.Order == nil {
			continue
		}
		r := *node.Rank
		if *node.Order >= next[r] {
			next[r] = *node.Order + 1
		}
	}
	for _, id := range g.Nodes() {
		node := g.Node(id)
		if node == nil || node.Rank == nil || node.Order != nil {
			continue
		}
		r := *node.Rank
		node.Order = graph.Int(next[r])
		next[r]++
	}
}
