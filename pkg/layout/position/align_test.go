package position

import (
	"reflect"
	"testing"

	"github.com/matzehuels/strata/pkg/graph"
)

func wantAlignment(t *testing.T, got Alignment, root, align map[string]string) {
	t.Helper()
	if !reflect.DeepEqual(got.Root, root) {
		t.Errorf("Root = %v, want %v", got.Root, root)
	}
	if !reflect.DeepEqual(got.Align, align) {
		t.Errorf("Align = %v, want %v", got.Align, align)
	}
}

func TestVerticalAlignmentNoAdjacencies(t *testing.T) {
	g := newBKGraph()
	setNodeRankOrder(g, "a", 0, 0)
	setNodeRankOrder(g, "b", 1, 0)
	layering := graph.BuildLayerMatrix(g)

	result := VerticalAlignment(g, layering, make(Conflicts), g.Predecessors)
	wantAlignment(t, result,
		map[string]string{"a": "a", "b": "b"},
		map[string]string{"a": "a", "b": "b"})
}

func TestVerticalAlignmentSoleAdjacency(t *testing.T) {
	g := newBKGraph()
	setNodeRankOrder(g, "a", 0, 0)
	setNodeRankOrder(g, "b", 1, 0)
	g.SetEdge("a", "b")
	layering := graph.BuildLayerMatrix(g)

	result := VerticalAlignment(g, layering, make(Conflicts), g.Predecessors)
	wantAlignment(t, result,
		map[string]string{"a": "a", "b": "a"},
		map[string]string{"a": "b", "b": "a"})
}

func TestVerticalAlignmentPrefersLeftMedian(t *testing.T) {
	g := newBKGraph()
	setNodeRankOrder(g, "a", 0, 0)
	setNodeRankOrder(g, "b", 0, 1)
	setNodeRankOrder(g, "c", 1, 0)
	g.SetEdge("a", "c")
	g.SetEdge("b", "c")
	layering := graph.BuildLayerMatrix(g)

	result := VerticalAlignment(g, layering, make(Conflicts), g.Predecessors)
	wantAlignment(t, result,
		map[string]string{"a": "a", "b": "b", "c": "a"},
		map[string]string{"a": "c", "b": "b", "c": "a"})
}

func TestVerticalAlignmentIndependentOfNames(t *testing.T) {
	// The median choice follows layer order, not node names or insertion
	// order.
	g := newBKGraph()
	setNodeRankOrder(g, "b", 0, 1)
	setNodeRankOrder(g, "c", 1, 0)
	setNodeRankOrder(g, "z", 0, 0)
	g.SetEdge("z", "c")
	g.SetEdge("b", "c")
	layering := graph.BuildLayerMatrix(g)

	result := VerticalAlignment(g, layering, make(Conflicts), g.Predecessors)
	wantAlignment(t, result,
		map[string]string{"z": "z", "b": "b", "c": "z"},
		map[string]string{"z": "c", "b": "b", "c": "z"})
}

func TestVerticalAlignmentFallsBackToRightMedian(t *testing.T) {
	g := newBKGraph()
	setNodeRankOrder(g, "a", 0, 0)
	setNodeRankOrder(g, "b", 0, 1)
	setNodeRankOrder(g, "c", 1, 0)
	g.SetEdge("a", "c")
	g.SetEdge("b", "c")
	layering := graph.BuildLayerMatrix(g)

	conflicts := make(Conflicts)
	AddConflict(conflicts, "a", "c")

	result := VerticalAlignment(g, layering, conflicts, g.Predecessors)
	wantAlignment(t, result,
		map[string]string{"a": "a", "b": "b", "c": "b"},
		map[string]string{"a": "a", "b": "c", "c": "b"})
}

func TestVerticalAlignmentSkipsBothMediansWhenTaken(t *testing.T) {
	g := newBKGraph()
	setNodeRankOrder(g, "a", 0, 0)
	setNodeRankOrder(g, "b", 0, 1)
	setNodeRankOrder(g, "c", 1, 0)
	setNodeRankOrder(g, "d", 1, 1)
	g.SetEdge("a", "d")
	g.SetEdge("b", "c")
	g.SetEdge("b", "d")
	layering := graph.BuildLayerMatrix(g)

	result := VerticalAlignment(g, layering, make(Conflicts), g.Predecessors)
	wantAlignment(t, result,
		map[string]string{"a": "a", "b": "b", "c": "b", "d": "d"},
		map[string]string{"a": "a", "b": "c", "c": "b", "d": "d"})
}

func TestVerticalAlignmentSingleMedianForOddDegree(t *testing.T) {
	g := newBKGraph()
	setNodeRankOrder(g, "a", 0, 0)
	setNodeRankOrder(g, "b", 0, 1)
	setNodeRankOrder(g, "c", 0, 2)
	setNodeRankOrder(g, "d", 1, 0)
	g.SetEdge("a", "d")
	g.SetEdge("b", "d")
	g.SetEdge("c", "d")
	layering := graph.BuildLayerMatrix(g)

	result := VerticalAlignment(g, layering, make(Conflicts), g.Predecessors)
	wantAlignment(t, result,
		map[string]string{"a": "a", "b": "b", "c": "c", "d": "b"},
		map[string]string{"a": "a", "b": "d", "c": "c", "d": "b"})
}

func TestVerticalAlignmentChainsBlocksAcrossLayers(t *testing.T) {
	g := newBKGraph()
	setNodeRankOrder(g, "a", 0, 0)
	setNodeRankOrder(g, "b", 1, 0)
	setNodeRankOrder(g, "c", 1, 1)
	setNodeRankOrder(g, "d", 2, 0)
	g.SetPath("a", "b", "d")
	g.SetPath("a", "c", "d")
	layering := graph.BuildLayerMatrix(g)

	result := VerticalAlignment(g, layering, make(Conflicts), g.Predecessors)
	wantAlignment(t, result,
		map[string]string{"a": "a", "b": "a", "c": "c", "d": "a"},
		map[string]string{"a": "b", "b": "d", "c": "c", "d": "a"})
}
