package graph

// Label position constants for nodes that carry an edge label
// (dummy kind "edge-label"). They shift the label's anchor relative to its
// reserved width during horizontal separation.
const (
	LabelPosLeft   = "l"
	LabelPosCenter = "c"
	LabelPosRight  = "r"
)

// Dummy kinds recognized by the layout phases. Any non-empty Dummy value
// marks a node as synthetic; these constants name the kinds the positioner
// distinguishes.
const (
	DummyEdge      = "edge"
	DummyEdgeLabel = "edge-label"
	DummyBorder    = "border"
)

// Border types for cluster boundary dummies. A border node is exempted from
// the compaction pass that would pull it across interior content.
const (
	BorderLeft  = "borderLeft"
	BorderRight = "borderRight"
)

// Ranker names accepted by Config.Ranker. Anything else falls back to
// network simplex.
const (
	RankerNetworkSimplex = "network-simplex"
	RankerTightTree      = "tight-tree"
	RankerLongestPath    = "longest-path"
	RankerNone           = "none"
)

// Node holds the layout attributes of a graph node. The zero value is a
// valid label for a dimensionless node with no assigned rank or position.
//
// Rank, Order, X and Y are pointers so "not yet assigned" is distinguishable
// from zero; the layout phases assign them in place.
type Node struct {
	Width  float64
	Height float64

	Rank  *int
	Order *int
	X     *float64
	Y     *float64

	// Dummy marks synthetic nodes inserted for multi-rank edges or cluster
	// borders. Empty for real nodes.
	Dummy string
	// BorderType is set on cluster border dummies (BorderLeft/BorderRight).
	BorderType string
	// LabelPos anchors an edge label relative to its reserved width.
	LabelPos string
}

// Clone returns a deep copy of the node label.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Rank = cloneInt(n.Rank)
	c.Order = cloneInt(n.Order)
	c.X = cloneFloat(n.X)
	c.Y = cloneFloat(n.Y)
	return &c
}

// Edge holds the layout attributes of a graph edge. MinLen is the minimum
// rank separation between tail and head; Weight scales the cost of edge
// length during ranking.
type Edge struct {
	Weight float64
	MinLen int

	// Width and Height reserve space for an edge label.
	Width  float64
	Height float64
	// LabelPos anchors the edge label ("l", "c", or "r").
	LabelPos string
}

// Clone returns a copy of the edge label.
func (e *Edge) Clone() *Edge {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

// EdgeKey identifies an edge by its endpoints and, in a multigraph, an
// optional name distinguishing parallel edges.
type EdgeKey struct {
	V    string
	W    string
	Name string
}

// Config carries the graph-level layout settings consumed by the rank and
// position phases.
type Config struct {
	// NodeSep is the minimum horizontal separation between real nodes in
	// the same rank.
	NodeSep float64
	// EdgeSep is the minimum horizontal separation involving dummy nodes.
	EdgeSep float64
	// RankSep is the vertical separation between adjacent ranks.
	RankSep float64
	// Align optionally forces one of the four Brandes-Köpf alignments
	// ("ul", "ur", "dl", "dr"). Empty selects the balanced median.
	Align string
	// Ranker selects the rank algorithm: "network-simplex" (default),
	// "tight-tree", "longest-path", or "none".
	Ranker string
}

// DefaultConfig returns the default layout settings.
func DefaultConfig() Config {
	return Config{
		NodeSep: 50,
		EdgeSep: 20,
		RankSep: 50,
		Ranker:  RankerNetworkSimplex,
	}
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Int returns a pointer to v, for concise label construction.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for concise label construction.
func Float(v float64) *float64 { return &v }
