package position

import (
	"math"
	"sort"
	"strings"

	"github.com/matzehuels/strata/pkg/graph"
)

// alignmentKeys is the fixed evaluation order of the four alignment
// variants: up/down sweep crossed with left/right bias. Width ties keep
// the earliest variant in this order.
var alignmentKeys = [4]string{"ul", "ur", "dl", "dr"}

// Position assigns x and y coordinates to every ranked node of g. Rows
// are stacked top to bottom with the configured rank separation; x
// coordinates come from PositionX.
func Position(g *graph.Graph) {
	positionY(g)
	for v, x := range PositionX(g) {
		if node := g.Node(v); node != nil {
			node.X = graph.Float(x)
		}
	}
}

// positionY centers every node vertically within its rank's row. Row
// height is the tallest node of the rank.
func positionY(g *graph.Graph) {
	byRank := make(map[int][]string)
	var ranks []int
	for _, v := range g.Nodes() {
		node := g.Node(v)
		if node == nil || node.Rank == nil {
			continue
		}
		rank := *node.Rank
		if _, ok := byRank[rank]; !ok {
			ranks = append(ranks, rank)
		}
		byRank[rank] = append(byRank[rank], v)
	}
	sort.Ints(ranks)

	prevY := 0.0
	for _, rank := range ranks {
		maxHeight := 0.0
		for _, v := range byRank[rank] {
			maxHeight = math.Max(maxHeight, g.Node(v).Height)
		}
		for _, v := range byRank[rank] {
			g.Node(v).Y = graph.Float(prevY + maxHeight/2)
		}
		prevY += maxHeight + g.Config().RankSep
	}
}

// PositionX computes x coordinates for every ranked and ordered node,
// deriving the layering from the graph's rank and order attributes.
func PositionX(g *graph.Graph) map[string]float64 {
	return PositionXWithLayering(g, graph.BuildLayerMatrix(g))
}

// PositionXWithLayering computes x coordinates for the given layering.
// It runs the four alignment variants, shifts them onto the narrowest
// one and balances each node to the median of its four candidates (or to
// the variant named by the graph's Align setting).
func PositionXWithLayering(g *graph.Graph, layering [][]string) map[string]float64 {
	conflicts := FindType1Conflicts(g, layering)
	for v, ws := range FindType2Conflicts(g, layering) {
		for w := range ws {
			AddConflict(conflicts, v, w)
		}
	}

	xss := make(map[string]map[string]float64, 4)
	for _, vert := range []string{"u", "d"} {
		for _, horiz := range []string{"l", "r"} {
			adjusted := adjustLayering(layering, vert == "d", horiz == "r")

			neighborFn := g.Predecessors
			if vert == "d" {
				neighborFn = g.Successors
			}

			align := VerticalAlignment(g, adjusted, conflicts, neighborFn)
			xs := HorizontalCompaction(g, adjusted, align.Root, align.Align, horiz == "r")
			if horiz == "r" {
				for v := range xs {
					xs[v] = -xs[v]
				}
			}
			xss[vert+horiz] = xs
		}
	}

	smallest := FindSmallestWidthAlignment(g, xss)
	AlignCoordinates(xss, smallest)
	return Balance(xss, g.Config().Align)
}

func adjustLayering(layering [][]string, reverseLayers, reverseInner bool) [][]string {
	out := make([][]string, 0, len(layering))
	for i := range layering {
		layer := layering[i]
		if reverseLayers {
			layer = layering[len(layering)-1-i]
		}
		if reverseInner {
			reversed := make([]string, len(layer))
			for j, v := range layer {
				reversed[len(layer)-1-j] = v
			}
			layer = reversed
		}
		out = append(out, layer)
	}
	return out
}

// FindSmallestWidthAlignment returns the candidate assignment with the
// smallest total width, node widths included. Ties keep the earliest
// variant in ul, ur, dl, dr order.
func FindSmallestWidthAlignment(g *graph.Graph, xss map[string]map[string]float64) map[string]float64 {
	bestWidth := math.Inf(1)
	var best map[string]float64

	for _, key := range alignmentKeys {
		xs, ok := xss[key]
		if !ok {
			continue
		}
		max := math.Inf(-1)
		min := math.Inf(1)
		for v, x := range xs {
			halfWidth := nodeWidth(g, v) / 2
			max = math.Max(max, x+halfWidth)
			min = math.Min(min, x-halfWidth)
		}
		if width := max - min; width < bestWidth {
			bestWidth = width
			best = xs
		}
	}

	return best
}

// AlignCoordinates shifts every candidate assignment so it shares an edge
// with alignTo: left-biased variants match its minimum, right-biased
// variants its maximum.
func AlignCoordinates(xss map[string]map[string]float64, alignTo map[string]float64) {
	alignToMin := minValue(alignTo)
	alignToMax := maxValue(alignTo)

	for _, key := range alignmentKeys {
		xs, ok := xss[key]
		if !ok {
			continue
		}
		delta := alignToMin - minValue(xs)
		if strings.HasSuffix(key, "r") {
			delta = alignToMax - maxValue(xs)
		}
		if delta != 0 {
			for v := range xs {
				xs[v] += delta
			}
		}
	}
}

// Balance merges the four aligned candidates into final coordinates. The
// default is the average of each node's two median candidates; a non-empty
// align setting ("ul", "ur", "dl" or "dr", case insensitive) forces that
// variant instead. An unrecognized align setting falls back to the median.
func Balance(xss map[string]map[string]float64, align string) map[string]float64 {
	ul, ok := xss["ul"]
	if !ok {
		return map[string]float64{}
	}

	forced, hasForced := xss[strings.ToLower(align)]
	out := make(map[string]float64, len(ul))
	for v := range ul {
		if hasForced {
			out[v] = forced[v]
			continue
		}

		vals := make([]float64, 0, 4)
		for _, xs := range xss {
			if x, found := xs[v]; found {
				vals = append(vals, x)
			}
		}
		sort.Float64s(vals)
		if len(vals) >= 4 {
			out[v] = (vals[1] + vals[2]) / 2
		}
	}
	return out
}

func nodeWidth(g *graph.Graph, v string) float64 {
	if node := g.Node(v); node != nil {
		return node.Width
	}
	return 0
}

func minValue(xs map[string]float64) float64 {
	min := math.Inf(1)
	for _, x := range xs {
		min = math.Min(min, x)
	}
	return min
}

func maxValue(xs map[string]float64) float64 {
	max := math.Inf(-1)
	for _, x := range xs {
		max = math.Max(max, x)
	}
	return max
}
