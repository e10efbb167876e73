package graphio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/strata/pkg/errors"
	"github.com/matzehuels/strata/pkg/graph"
)

type graphDoc struct {
	Config *configDoc `json:"config,omitempty"`
	Nodes  []nodeDoc  `json:"nodes"`
	Edges  []edgeDoc  `json:"edges"`
}

type configDoc struct {
	NodeSep *float64 `json:"nodesep,omitempty"`
	EdgeSep *float64 `json:"edgesep,omitempty"`
	RankSep *float64 `json:"ranksep,omitempty"`
	Ranker  string   `json:"ranker,omitempty"`
	Align   string   `json:"align,omitempty"`
}

type nodeDoc struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

type edgeDoc struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Name   string  `json:"name,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	MinLen int     `json:"minlen,omitempty"`
}

// exportGraph converts a graph to its serialization form in insertion order.
func exportGraph(g *graph.Graph) graphDoc {
	cfg := g.Config()
	out := graphDoc{
		Config: &configDoc{
			NodeSep: &cfg.NodeSep,
			EdgeSep: &cfg.EdgeSep,
			RankSep: &cfg.RankSep,
			Ranker:  cfg.Ranker,
			Align:   cfg.Align,
		},
		Nodes: make([]nodeDoc, 0, g.NodeCount()),
		Edges: make([]edgeDoc, 0, g.EdgeCount()),
	}

	for _, id := range g.Nodes() {
		node := g.Node(id)
		nd := nodeDoc{ID: id}
		if node != nil {
			nd.Width = node.Width
			nd.Height = node.Height
		}
		out.Nodes = append(out.Nodes, nd)
	}
	for _, key := range g.Edges() {
		label := g.NamedEdge(key)
		ed := edgeDoc{From: key.V, To: key.W, Name: key.Name}
		if label != nil {
			ed.Weight = label.Weight
			ed.MinLen = label.MinLen
		}
		out.Edges = append(out.Edges, ed)
	}
	return out
}

// WriteJSON encodes a graph as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exportGraph(g)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
	}
	return nil
}

// ExportJSON writes a graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// MarshalGraph produces canonical compact bytes for a graph, suitable for
// content hashing. Nodes and edges appear in insertion order, so graphs
// built by the same construction sequence marshal identically.
func MarshalGraph(g *graph.Graph) ([]byte, error) {
	data, err := json.Marshal(exportGraph(g))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal graph")
	}
	return data, nil
}
