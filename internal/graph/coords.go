package graph

// CellGeometry converts (row, column) grid positions into drawing-space
// coordinates. The history layout uses a dense dot grid; the topology layout
// renders each node as a larger labeled block, so its cells are wider.
type CellGeometry struct {
	CellWidth  float64
	CellHeight float64
	MarginX    float64
	MarginY    float64
	HitRadius  float64
}

// HistoryGeometry matches the compact lane spacing of the row-per-commit
// view.
func HistoryGeometry() CellGeometry {
	return CellGeometry{
		CellWidth:  16,
		CellHeight: 26,
		MarginX:    8,
		MarginY:    8,
		HitRadius:  7,
	}
}

// TopologyGeometry leaves room for a labeled block per node.
func TopologyGeometry() CellGeometry {
	return CellGeometry{
		CellWidth:  170,
		CellHeight: 64,
		MarginX:    16,
		MarginY:    16,
		HitRadius:  26,
	}
}

// Position returns the center of the cell at (row, col).
func (g CellGeometry) Position(row, col int) (x, y float64) {
	x = g.MarginX + float64(col)*g.CellWidth + g.CellWidth/2
	y = g.MarginY + float64(row)*g.CellHeight + g.CellHeight/2
	return x, y
}

// positions lays out one NodePosition per commit using the columns computed
// by the lane pass. Row order follows the input order.
func (g CellGeometry) positions(commits []*Commit, columns map[string]int) []NodePosition {
	out := make([]NodePosition, 0, len(commits))
	for row, c := range commits {
		if c == nil {
			continue
		}
		x, y := g.Position(row, columns[c.ID])
		out = append(out, NodePosition{ID: c.ID, X: x, Y: y, HitRadius: g.HitRadius})
	}
	return out
}

// HitTest returns the id of the node whose hit circle contains (x, y),
// breaking ties by smallest squared distance. It reports false when no node
// is in range, including before any layout has run (empty positions).
func HitTest(positions []NodePosition, x, y float64) (string, bool) {
	bestID := ""
	bestDist := 0.0
	found := false
	for _, p := range positions {
		dx := p.X - x
		dy := p.Y - y
		dist := dx*dx + dy*dy
		if dist > p.HitRadius*p.HitRadius {
			continue
		}
		if !found || dist < bestDist {
			found = true
			bestID = p.ID
			bestDist = dist
		}
	}
	return bestID, found
}
