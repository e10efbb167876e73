package graphio

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/matzehuels/strata/pkg/errors"
	"github.com/matzehuels/strata/pkg/graph"
)

// Layout is the serialization form of a computed layout: per-node
// coordinates plus the bounding box of the drawing.
type Layout struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Nodes  []LayoutNode `json:"nodes"`
	Edges  []LayoutEdge `json:"edges"`
}

// LayoutNode carries the computed position of a single node. X and Y are
// the center of the node box.
type LayoutNode struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Rank   int     `json:"rank"`
	Order  int     `json:"order"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// LayoutEdge records an edge of the laid-out graph.
type LayoutEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Name string `json:"name,omitempty"`
}

// ExportLayout collects the computed coordinates of g into a Layout.
// Nodes without coordinates (layout not run, or ranker "none") are
// skipped. The bounding box spans the outer edges of all node boxes.
func ExportLayout(g *graph.Graph) Layout {
	out := Layout{
		Nodes: make([]LayoutNode, 0, g.NodeCount()),
		Edges: make([]LayoutEdge, 0, g.EdgeCount()),
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)

	for _, id := range g.Nodes() {
		node := g.Node(id)
		if node == nil || node.X == nil || node.Y == nil {
			continue
		}
		ln := LayoutNode{
			ID:     id,
			X:      *node.X,
			Y:      *node.Y,
			Width:  node.Width,
			Height: node.Height,
		}
		if node.Rank != nil {
			ln.Rank = *node.Rank
		}
		if node.Order != nil {
			ln.Order = *node.Order
		}
		out.Nodes = append(out.Nodes, ln)

		minX = math.Min(minX, ln.X-ln.Width/2)
		maxX = math.Max(maxX, ln.X+ln.Width/2)
		minY = math.Min(minY, ln.Y-ln.Height/2)
		maxY = math.Max(maxY, ln.Y+ln.Height/2)
	}

	if len(out.Nodes) > 0 {
		out.Width = maxX - minX
		out.Height = maxY - minY
	}

	for _, key := range g.Edges() {
		out.Edges = append(out.Edges, LayoutEdge{From: key.V, To: key.W, Name: key.Name})
	}

	return out
}

// MarshalLayout produces compact bytes for a layout, suitable for caching.
func MarshalLayout(l Layout) ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return data, nil
}

// UnmarshalLayout decodes a layout from raw JSON bytes.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}
	return l, nil
}

// WriteLayout encodes a layout as indented JSON and writes it to w.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return nil
}

// ExportLayoutJSON writes a layout to a JSON file at path.
func ExportLayoutJSON(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteLayout(l, f)
}
