package rank

import (
	"testing"

	"github.com/matzehuels/strata/pkg/graph"
)

func newTestGraph() *graph.Graph {
	g := graph.New(graph.Options{Multigraph: true})
	g.SetDefaultEdgeLabel(func() *graph.Edge { return &graph.Edge{Weight: 1, MinLen: 1} })
	return g
}

// gansnerGraph is the example from Gansner et al., "A Technique for Drawing
// Directed Graphs".
func gansnerGraph() *graph.Graph {
	g := graph.New(graph.Options{})
	g.SetDefaultEdgeLabel(func() *graph.Edge { return &graph.Edge{Weight: 1, MinLen: 1} })
	g.SetPath("a", "b", "c", "d", "h")
	g.SetPath("a", "e", "g", "h")
	g.SetPath("a", "f", "g")
	return g
}

func gansnerTree() *Tree {
	t := NewTree()
	for _, pair := range [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "h"},
		{"h", "g"}, {"g", "e"}, {"g", "f"},
	} {
		t.SetEdge(pair[0], pair[1])
	}
	return t
}

func wantRank(t *testing.T, g *graph.Graph, id string, want int) {
	t.Helper()
	node := g.Node(id)
	if node == nil || node.Rank == nil {
		t.Fatalf("node %q has no rank", id)
	}
	if *node.Rank != want {
		t.Errorf("rank(%s) = %d, want %d", id, *node.Rank, want)
	}
}

func TestLongestPathSingleNode(t *testing.T) {
	g := newTestGraph()
	g.SetNode("a", nil)
	LongestPath(g)
	wantRank(t, g, "a", 0)
}

func TestLongestPathChain(t *testing.T) {
	g := newTestGraph()
	g.SetPath("a", "b", "c")
	LongestPath(g)
	graph.NormalizeRanks(g)
	wantRank(t, g, "a", 0)
	wantRank(t, g, "b", 1)
	wantRank(t, g, "c", 2)
}

func TestLongestPathRespectsMinLen(t *testing.T) {
	g := newTestGraph()
	g.SetEdgeWithLabel("a", "b", &graph.Edge{Weight: 1, MinLen: 2})
	LongestPath(g)
	graph.NormalizeRanks(g)
	wantRank(t, g, "a", 0)
	wantRank(t, g, "b", 2)
}

func TestLongestPathPullsNodesTight(t *testing.T) {
	// The short branch of the diamond shares the sink's rank constraint,
	// so b and c both end one rank above d.
	g := newTestGraph()
	g.SetPath("a", "b", "d")
	g.SetPath("a", "c", "d")
	LongestPath(g)
	graph.NormalizeRanks(g)
	wantRank(t, g, "a", 0)
	wantRank(t, g, "b", 1)
	wantRank(t, g, "c", 1)
	wantRank(t, g, "d", 2)
}

func TestLongestPathSurvivesCycle(t *testing.T) {
	g := newTestGraph()
	g.SetPath("a", "b", "c")
	g.SetEdge("c", "b")
	LongestPath(g) // must terminate
}

func TestSlack(t *testing.T) {
	g := newTestGraph()
	g.SetNode("a", &graph.Node{Rank: graph.Int(0)})
	g.SetNode("b", &graph.Node{Rank: graph.Int(3)})
	g.SetEdgeWithLabel("a", "b", &graph.Edge{Weight: 1, MinLen: 2})

	if got := Slack(g, graph.EdgeKey{V: "a", W: "b"}); got != 1 {
		t.Errorf("Slack(a->b) = %d, want 1", got)
	}
}

func TestSlackMissingRankDefaultsToZero(t *testing.T) {
	g := newTestGraph()
	g.SetEdge("a", "b")
	if got := Slack(g, graph.EdgeKey{V: "a", W: "b"}); got != -1 {
		t.Errorf("Slack(a->b) = %d, want -1", got)
	}
}

func TestRankDispatch(t *testing.T) {
	for _, ranker := range []string{
		graph.RankerNetworkSimplex,
		graph.RankerTightTree,
		graph.RankerLongestPath,
		"bogus",
	} {
		g := newTestGraph()
		g.Config().Ranker = ranker
		g.SetPath("a", "b", "d")
		g.SetPath("a", "c", "d")
		Rank(g)
		graph.NormalizeRanks(g)
		wantRank(t, g, "a", 0)
		wantRank(t, g, "d", 2)
	}
}

func TestRankNoneLeavesRanksUnset(t *testing.T) {
	g := newTestGraph()
	g.Config().Ranker = graph.RankerNone
	g.SetEdge("a", "b")
	Rank(g)
	if g.Node("a").Rank != nil {
		t.Error("ranker \"none\" assigned a rank")
	}
}
