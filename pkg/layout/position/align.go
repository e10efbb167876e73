package position

import (
	"math"
	"sort"

	"github.com/matzehuels/strata/pkg/graph"
)

// Alignment maps every node to the root of its vertical block (Root) and
// to the next node within the block (Align). A node outside any block maps
// to itself in both.
type Alignment struct {
	Root  map[string]string
	Align map[string]string
}

// VerticalAlignment greedily chains nodes into vertical blocks. Each node
// tries to align with the median of its neighbors on the adjacent layer
// (neighborFn picks the direction), skipping neighbors already claimed,
// crossing a previous alignment, or marked as conflicting.
func VerticalAlignment(g *graph.Graph, layering [][]string, conflicts Conflicts, neighborFn func(string) []string) Alignment {
	root := make(map[string]string)
	align := make(map[string]string)
	pos := make(map[string]int)

	for _, layer := range layering {
		for order, v := range layer {
			root[v] = v
			align[v] = v
			pos[v] = order
		}
	}

	posOf := func(w string) int {
		if p, ok := pos[w]; ok {
			return p
		}
		return math.MaxInt
	}

	for _, layer := range layering {
		prevIdx := -1
		for _, v := range layer {
			ws := append([]string(nil), neighborFn(v)...)
			if len(ws) == 0 {
				continue
			}
			sort.SliceStable(ws, func(i, j int) bool {
				return posOf(ws[i]) < posOf(ws[j])
			})

			mp := float64(len(ws)-1) / 2
			i0 := int(math.Floor(mp))
			i1 := int(math.Ceil(mp))
			for _, w := range ws[i0 : i1+1] {
				wPos := posOf(w)
				if align[v] == v && prevIdx < wPos && !HasConflict(conflicts, v, w) {
					align[w] = v
					wRoot, ok := root[w]
					if !ok {
						wRoot = w
					}
					align[v] = wRoot
					root[v] = wRoot
					prevIdx = wPos
				}
			}
		}
	}

	return Alignment{Root: root, Align: align}
}
