package graphio

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/strata/pkg/errors"
	"github.com/matzehuels/strata/pkg/graph"
)

// ReadJSON decodes a JSON graph from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays and an
// optional "config" object:
//
//	{
//	  "nodes": [{"id": "a", "width": 100, "height": 40}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - A node id is empty, duplicated, or contains control characters
//   - An edge references an unknown node id
//   - The ranker or align setting is not recognized
//
// Errors carry structured codes from the errors package; use errors.Is to
// check for a specific code.
//
// The returned graph is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data graphDoc
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph")
	}

	g := graph.New(graph.Options{Multigraph: true})

	if c := data.Config; c != nil {
		if err := errors.ValidateRanker(c.Ranker); err != nil {
			return nil, err
		}
		if err := errors.ValidateAlign(c.Align); err != nil {
			return nil, err
		}
		cfg := g.Config()
		if c.NodeSep != nil {
			cfg.NodeSep = *c.NodeSep
		}
		if c.EdgeSep != nil {
			cfg.EdgeSep = *c.EdgeSep
		}
		if c.RankSep != nil {
			cfg.RankSep = *c.RankSep
		}
		if c.Ranker != "" {
			cfg.Ranker = c.Ranker
		}
		cfg.Align = c.Align
	}

	for _, n := range data.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return nil, err
		}
		if g.HasNode(n.ID) {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "duplicate node id %q", n.ID)
		}
		g.SetNode(n.ID, &graph.Node{Width: n.Width, Height: n.Height})
	}

	for _, e := range data.Edges {
		if !g.HasNode(e.From) {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "edge %s->%s: unknown node %q", e.From, e.To, e.From)
		}
		if !g.HasNode(e.To) {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "edge %s->%s: unknown node %q", e.From, e.To, e.To)
		}
		label := &graph.Edge{Weight: e.Weight, MinLen: e.MinLen}
		if label.Weight == 0 {
			label.Weight = 1
		}
		if label.MinLen == 0 {
			label.MinLen = 1
		}
		g.SetNamedEdge(e.From, e.To, e.Name, label)
	}

	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. It returns the same validation errors as [ReadJSON], plus a
// FILE_NOT_FOUND error if the file cannot be opened.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

// UnmarshalGraph decodes a graph from raw JSON bytes.
func UnmarshalGraph(data []byte) (*graph.Graph, error) {
	return ReadJSON(bytes.NewReader(data))
}
