package graph

import (
	"reflect"
	"testing"
)

func TestSimplifyDropsSelfLoops(t *testing.T) {
	g := New(Options{Multigraph: true})
	g.SetEdgeWithLabel("a", "a", &Edge{Weight: 1, MinLen: 1})
	g.SetEdgeWithLabel("a", "b", &Edge{Weight: 1, MinLen: 1})

	s := Simplify(g)
	if s.HasEdge("a", "a") {
		t.Error("self loop survived Simplify")
	}
	if !s.HasEdge("a", "b") {
		t.Error("edge a->b missing after Simplify")
	}
}

func TestSimplifyMergesParallelEdges(t *testing.T) {
	g := New(Options{Multigraph: true})
	g.SetNamedEdge("a", "b", "1", &Edge{Weight: 2, MinLen: 1})
	g.SetNamedEdge("a", "b", "2", &Edge{Weight: 3, MinLen: 4})

	s := Simplify(g)
	if got := s.EdgeCount(); got != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", got)
	}
	merged := s.Edge("a", "b")
	if merged.Weight != 5 {
		t.Errorf("merged weight = %v, want 5", merged.Weight)
	}
	if merged.MinLen != 4 {
		t.Errorf("merged minlen = %v, want 4", merged.MinLen)
	}
}

func TestSimplifyKeepsFirstOccurrencePosition(t *testing.T) {
	g := New(Options{Multigraph: true})
	g.SetNamedEdge("a", "b", "1", &Edge{Weight: 1, MinLen: 1})
	g.SetEdgeWithLabel("b", "c", &Edge{Weight: 1, MinLen: 1})
	g.SetNamedEdge("a", "b", "2", &Edge{Weight: 1, MinLen: 1})

	got := Simplify(g).Edges()
	want := []EdgeKey{{V: "a", W: "b"}, {V: "b", W: "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestSimplifySharesNodeLabels(t *testing.T) {
	g := New(Options{})
	g.SetNode("a", &Node{Width: 5})
	s := Simplify(g)
	if g.Node("a") != s.Node("a") {
		t.Error("node labels should be shared, not copied")
	}
}

func TestBuildLayerMatrix(t *testing.T) {
	g := New(Options{})
	g.SetNode("a", &Node{Rank: Int(0), Order: Int(0)})
	g.SetNode("b", &Node{Rank: Int(0), Order: Int(1)})
	g.SetNode("c", &Node{Rank: Int(1), Order: Int(1)})
	g.SetNode("d", &Node{Rank: Int(1), Order: Int(0)})
	g.SetNode("e", &Node{}) // unranked, skipped

	got := BuildLayerMatrix(g)
	want := [][]string{{"a", "b"}, {"d", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildLayerMatrix() = %v, want %v", got, want)
	}
}

func TestBuildLayerMatrixStableOnEqualOrders(t *testing.T) {
	g := New(Options{})
	g.SetNode("b", &Node{Rank: Int(0)})
	g.SetNode("a", &Node{Rank: Int(0)})

	got := BuildLayerMatrix(g)
	want := [][]string{{"b", "a"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildLayerMatrix() = %v, want %v", got, want)
	}
}

func TestBuildLayerMatrixEmpty(t *testing.T) {
	g := New(Options{})
	g.SetNode("a", &Node{})
	if got := BuildLayerMatrix(g); got != nil {
		t.Errorf("BuildLayerMatrix() = %v, want nil", got)
	}
}

func TestNormalizeRanks(t *testing.T) {
	g := New(Options{})
	g.SetNode("a", &Node{Rank: Int(-2)})
	g.SetNode("b", &Node{Rank: Int(0)})
	g.SetNode("c", &Node{Rank: Int(3)})
	g.SetNode("d", &Node{})

	NormalizeRanks(g)

	for id, want := range map[string]int{"a": 0, "b": 2, "c": 5} {
		if got := *g.Node(id).Rank; got != want {
			t.Errorf("rank(%s) = %d, want %d", id, got, want)
		}
	}
	if g.Node("d").Rank != nil {
		t.Error("unranked node picked up a rank")
	}
}

func TestNormalizeRanksAlreadyNormal(t *testing.T) {
	g := New(Options{})
	g.SetNode("a", &Node{Rank: Int(0)})
	g.SetNode("b", &Node{Rank: Int(2)})

	NormalizeRanks(g)

	if got := *g.Node("b").Rank; got != 2 {
		t.Errorf("rank(b) = %d, want 2", got)
	}
}
