package position

import (
	"testing"

	"github.com/matzehuels/strata/pkg/graph"
)

func setNodeWith(g *graph.Graph, id string, rank, order int, width float64, dummy, labelpos string) {
	g.SetNode(id, &graph.Node{
		Rank:     graph.Int(rank),
		Order:    graph.Int(order),
		Width:    width,
		Dummy:    dummy,
		LabelPos: labelpos,
	})
}

func identityAlignment(ids ...string) (root, align map[string]string) {
	root = make(map[string]string, len(ids))
	align = make(map[string]string, len(ids))
	for _, id := range ids {
		root[id] = id
		align[id] = id
	}
	return root, align
}

func wantX(t *testing.T, xs map[string]float64, id string, want float64) {
	t.Helper()
	got, ok := xs[id]
	if !ok {
		t.Fatalf("xs[%q] missing", id)
	}
	if got != want {
		t.Errorf("xs[%q] = %v, want %v", id, got, want)
	}
}

func TestHorizontalCompactionSingleNodeAtOrigin(t *testing.T) {
	g := newBKGraph()
	setNodeRankOrder(g, "a", 0, 0)
	root, align := identityAlignment("a")
	layering := graph.BuildLayerMatrix(g)

	xs := HorizontalCompaction(g, layering, root, align, false)
	wantX(t, xs, "a", 0)
}

func TestHorizontalCompactionNodeSep(t *testing.T) {
	g := newBKGraph()
	g.Config().NodeSep = 100
	setNodeWith(g, "a", 0, 0, 100, "", "")
	setNodeWith(g, "b", 0, 1, 200, "", "")
	root, align := identityAlignment("a", "b")
	layering := graph.BuildLayerMatrix(g)

	xs := HorizontalCompaction(g, layering, root, align, false)
	wantX(t, xs, "a", 0)
	wantX(t, xs, "b", 100.0/2+100+200.0/2)
}

func TestHorizontalCompactionEdgeSep(t *testing.T) {
	g := newBKGraph()
	g.Config().EdgeSep = 20
	setNodeWith(g, "a", 0, 0, 100, graph.DummyEdge, "")
	setNodeWith(g, "b", 0, 1, 200, graph.DummyEdge, "")
	root, align := identityAlignment("a", "b")
	layering := graph.BuildLayerMatrix(g)

	xs := HorizontalCompaction(g, layering, root, align, false)
	wantX(t, xs, "a", 0)
	wantX(t, xs, "b", 100.0/2+20+200.0/2)
}

func TestHorizontalCompactionAlignsBlockCenters(t *testing.T) {
	g := newBKGraph()
	setNodeWith(g, "a", 0, 0, 100, "", "")
	setNodeWith(g, "b", 1, 0, 200, "", "")
	root := map[string]string{"a": "a", "b": "a"}
	align := map[string]string{"a": "b", "b": "a"}
	layering := graph.BuildLayerMatrix(g)

	xs := HorizontalCompaction(g, layering, root, align, false)
	wantX(t, xs, "a", 0)
	wantX(t, xs, "b", 0)
}

func TestHorizontalCompactionSeparatesBlocks(t *testing.T) {
	g := newBKGraph()
	g.Config().NodeSep = 75
	setNodeWith(g, "a", 0, 0, 100, "", "")
	setNodeWith(g, "b", 1, 1, 200, "", "")
	setNodeWith(g, "c", 1, 0, 50, "", "")
	root := map[string]string{"a": "a", "b": "a", "c": "c"}
	align := map[string]string{"a": "b", "b": "a", "c": "c"}
	layering := graph.BuildLayerMatrix(g)

	xs := HorizontalCompaction(g, layering, root, align, false)
	wantX(t, xs, "a", 50.0/2+75+200.0/2)
	wantX(t, xs, "b", 50.0/2+75+200.0/2)
	wantX(t, xs, "c", 0)
}

func TestHorizontalCompactionSeparatesClasses(t *testing.T) {
	g := newBKGraph()
	g.Config().NodeSep = 75
	setNodeWith(g, "a", 0, 0, 100, "", "")
	setNodeWith(g, "b", 0, 1, 200, "", "")
	setNodeWith(g, "c", 1, 0, 50, "", "")
	setNodeWith(g, "d", 1, 1, 80, "", "")
	root := map[string]string{"a": "a", "b": "b", "c": "c", "d": "b"}
	align := map[string]string{"a": "a", "b": "d", "c": "c", "d": "b"}
	layering := graph.BuildLayerMatrix(g)

	xs := HorizontalCompaction(g, layering, root, align, false)
	wantX(t, xs, "a", 0)
	wantX(t, xs, "b", 100.0/2+75+200.0/2)
	wantX(t, xs, "c", 100.0/2+75+200.0/2-80.0/2-75-50.0/2)
	wantX(t, xs, "d", 100.0/2+75+200.0/2)
}

func TestHorizontalCompactionShiftsClassesByMaxSep(t *testing.T) {
	g := newBKGraph()
	g.Config().NodeSep = 75
	setNodeWith(g, "a", 0, 0, 50, "", "")
	setNodeWith(g, "b", 0, 1, 150, "", "")
	setNodeWith(g, "c", 1, 0, 60, "", "")
	setNodeWith(g, "d", 1, 1, 70, "", "")
	root := map[string]string{"a": "a", "b": "b", "c": "a", "d": "b"}
	align := map[string]string{"a": "c", "b": "d", "c": "a", "d": "b"}
	layering := graph.BuildLayerMatrix(g)

	xs := HorizontalCompaction(g, layering, root, align, false)
	wantX(t, xs, "a", 0)
	wantX(t, xs, "b", 50.0/2+75+150.0/2)
	wantX(t, xs, "c", 0)
	wantX(t, xs, "d", 50.0/2+75+150.0/2)
}

func TestHorizontalCompactionShiftsClassesByMaxSepLowerLayer(t *testing.T) {
	g := newBKGraph()
	g.Config().NodeSep = 75
	setNodeWith(g, "a", 0, 0, 50, "", "")
	setNodeWith(g, "b", 0, 1, 70, "", "")
	setNodeWith(g, "c", 1, 0, 60, "", "")
	setNodeWith(g, "d", 1, 1, 150, "", "")
	root := map[string]string{"a": "a", "b": "b", "c": "a", "d": "b"}
	align := map[string]string{"a": "c", "b": "d", "c": "a", "d": "b"}
	layering := graph.BuildLayerMatrix(g)

	xs := HorizontalCompaction(g, layering, root, align, false)
	wantX(t, xs, "a", 0)
	wantX(t, xs, "b", 60.0/2+75+150.0/2)
	wantX(t, xs, "c", 0)
	wantX(t, xs, "d", 60.0/2+75+150.0/2)
}

func TestHorizontalCompactionCascadesClassShift(t *testing.T) {
	g := newBKGraph()
	g.Config().NodeSep = 75
	for _, n := range []struct {
		id          string
		rank, order int
	}{
		{"a", 0, 0}, {"b", 0, 1},
		{"c", 1, 0}, {"d", 1, 1}, {"e", 1, 2},
		{"f", 2, 0}, {"g", 2, 1},
	} {
		setNodeWith(g, n.id, n.rank, n.order, 50, "", "")
	}
	root := map[string]string{
		"a": "a", "b": "b", "c": "c", "d": "d", "e": "b", "f": "f", "g": "d",
	}
	align := map[string]string{
		"a": "a", "b": "e", "c": "c", "d": "g", "e": "b", "f": "f", "g": "d",
	}
	layering := graph.BuildLayerMatrix(g)

	xs := HorizontalCompaction(g, layering, root, align, false)
	wantX(t, xs, "a", xs["b"]-50.0/2-75-50.0/2)
	wantX(t, xs, "b", xs["e"])
	wantX(t, xs, "c", xs["f"])
	wantX(t, xs, "d", xs["c"]+50.0/2+75+50.0/2)
	wantX(t, xs, "e", xs["d"]+50.0/2+75+50.0/2)
	wantX(t, xs, "g", xs["f"]+50.0/2+75+50.0/2)
}

func TestHorizontalCompactionLabelPos(t *testing.T) {
	tests := []struct {
		labelpos string
		wantB    func(xs map[string]float64) float64
		wantC    func(xs map[string]float64) float64
	}{
		{
			labelpos: graph.LabelPosLeft,
			wantB:    func(xs map[string]float64) float64 { return xs["a"] + 100.0/2 + 50 + 200 },
			wantC:    func(xs map[string]float64) float64 { return xs["b"] + 0 + 50 + 300.0/2 },
		},
		{
			labelpos: graph.LabelPosCenter,
			wantB:    func(xs map[string]float64) float64 { return xs["a"] + 100.0/2 + 50 + 200.0/2 },
			wantC:    func(xs map[string]float64) float64 { return xs["b"] + 200.0/2 + 50 + 300.0/2 },
		},
		{
			labelpos: graph.LabelPosRight,
			wantB:    func(xs map[string]float64) float64 { return xs["a"] + 100.0/2 + 50 + 0 },
			wantC:    func(xs map[string]float64) float64 { return xs["b"] + 200 + 50 + 300.0/2 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.labelpos, func(t *testing.T) {
			g := newBKGraph()
			g.Config().EdgeSep = 50
			setNodeWith(g, "a", 0, 0, 100, graph.DummyEdge, "")
			setNodeWith(g, "b", 0, 1, 200, graph.DummyEdgeLabel, tt.labelpos)
			setNodeWith(g, "c", 0, 2, 300, graph.DummyEdge, "")
			root, align := identityAlignment("a", "b", "c")
			layering := graph.BuildLayerMatrix(g)

			xs := HorizontalCompaction(g, layering, root, align, false)
			wantX(t, xs, "a", 0)
			wantX(t, xs, "b", tt.wantB(xs))
			wantX(t, xs, "c", tt.wantC(xs))
		})
	}
}
