package rank

import (
	"reflect"
	"sort"
	"testing"

	"github.com/matzehuels/strata/pkg/graph"
)

func sortedNeighbors(t *Tree, v string) []string {
	out := append([]string(nil), t.Neighbors(v)...)
	sort.Strings(out)
	return out
}

func TestFeasibleTreeTrivialGraph(t *testing.T) {
	g := newTestGraph()
	g.SetNode("a", &graph.Node{Rank: graph.Int(0)})
	g.SetNode("b", &graph.Node{Rank: graph.Int(1)})
	g.SetEdgeWithLabel("a", "b", &graph.Edge{Weight: 1, MinLen: 1})

	tree := FeasibleTree(g)

	if got, want := *g.Node("b").Rank, *g.Node("a").Rank+1; got != want {
		t.Errorf("rank(b) = %d, want %d", got, want)
	}
	if got := tree.Neighbors("a"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Neighbors(a) = %v, want [b]", got)
	}
}

func TestFeasibleTreeShortensSlackByPullingNodeUp(t *testing.T) {
	g := newTestGraph()
	g.SetNode("a", &graph.Node{Rank: graph.Int(0)})
	g.SetNode("b", &graph.Node{Rank: graph.Int(1)})
	g.SetNode("c", &graph.Node{Rank: graph.Int(2)})
	g.SetNode("d", &graph.Node{Rank: graph.Int(2)})
	g.SetEdge("a", "b")
	g.SetEdge("b", "c")
	g.SetEdge("a", "d")

	tree := FeasibleTree(g)

	a := *g.Node("a").Rank
	wantRank(t, g, "b", a+1)
	wantRank(t, g, "c", a+2)
	wantRank(t, g, "d", a+1)

	if got := sortedNeighbors(tree, "a"); !reflect.DeepEqual(got, []string{"b", "d"}) {
		t.Errorf("Neighbors(a) = %v, want [b d]", got)
	}
	if got := sortedNeighbors(tree, "b"); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Neighbors(b) = %v, want [a c]", got)
	}
	if got := tree.Neighbors("c"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Neighbors(c) = %v, want [b]", got)
	}
	if got := tree.Neighbors("d"); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("Neighbors(d) = %v, want [a]", got)
	}
}

func TestFeasibleTreeShortensSlackByPullingNodeDown(t *testing.T) {
	g := newTestGraph()
	g.SetNode("a", &graph.Node{Rank: graph.Int(2)})
	g.SetNode("b", &graph.Node{Rank: graph.Int(0)})
	g.SetNode("c", &graph.Node{Rank: graph.Int(2)})
	g.SetEdge("b", "a")
	g.SetEdge("b", "c")

	tree := FeasibleTree(g)

	b := *g.Node("b").Rank
	wantRank(t, g, "a", b+1)
	wantRank(t, g, "c", b+1)

	if got := sortedNeighbors(tree, "a"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Neighbors(a) = %v, want [b]", got)
	}
	if got := sortedNeighbors(tree, "b"); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Neighbors(b) = %v, want [a c]", got)
	}
	if got := sortedNeighbors(tree, "c"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Neighbors(c) = %v, want [b]", got)
	}
}

func TestFeasibleTreeCoversDisconnectedComponents(t *testing.T) {
	g := newTestGraph()
	g.SetNode("a", &graph.Node{Rank: graph.Int(0)})
	g.SetNode("b", &graph.Node{Rank: graph.Int(1)})
	g.SetNode("c", &graph.Node{Rank: graph.Int(0)})
	g.SetEdge("a", "b")

	tree := FeasibleTree(g)

	if got := tree.NodeCount(); got != 3 {
		t.Errorf("NodeCount() = %d, want 3", got)
	}
	if !tree.HasNode("c") {
		t.Error("isolated node c missing from forest")
	}
}
