package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/thiagokokada/gitgraph-go/internal/graph"
)

const (
	svgLabelGap   = 14
	svgLabelSpace = 520
	svgLineWidth  = 2

	svgBlockWidth  = 150
	svgBlockHeight = 44
	svgBlockRound  = 6
)

// WriteHistorySVG draws the dense history layout: one dot per commit, lane
// lines to every resolvable parent, summaries to the right of the grid.
// Commits on the current branch get a heavier outline.
func WriteHistorySVG(w io.Writer, commits []*graph.Commit, layout graph.HistoryLayout, onBranch map[string]struct{}, p Palette) {
	geom := graph.HistoryGeometry()
	width := int(geom.MarginX*2+float64(layout.Lanes.MaxColumns)*geom.CellWidth) + svgLabelSpace
	height := int(geom.MarginY*2 + float64(len(commits))*geom.CellHeight)
	byID := positionsByID(layout.Positions)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+p.Background)

	// Edges first so nodes draw on top of them.
	for _, c := range commits {
		if c == nil {
			continue
		}
		from, ok := byID[c.ID]
		if !ok {
			continue
		}
		for _, parent := range c.Parents {
			to, ok := byID[parent]
			if !ok {
				continue
			}
			color := p.Lane(layout.Lanes.Columns[parent])
			canvas.Line(int(from.X), int(from.Y), int(to.X), int(to.Y),
				fmt.Sprintf("stroke:%s;stroke-width:%d;fill:none", color, svgLineWidth))
		}
	}
	labelX := int(geom.MarginX+float64(layout.Lanes.MaxColumns)*geom.CellWidth) + svgLabelGap
	for _, c := range commits {
		if c == nil {
			continue
		}
		pos, ok := byID[c.ID]
		if !ok {
			continue
		}
		col := layout.Lanes.Columns[c.ID]
		drawNode(canvas, c, pos, p, p.Lane(col), onBranch)
		text := shortID(c.ID) + "  " + c.Summary
		if labels := refLabels(c.Refs); labels != "" {
			text += "  " + labels
		}
		canvas.Text(labelX, int(pos.Y)+4, text, "font-family:monospace;font-size:12px;fill:"+p.Text)
	}
	canvas.End()
}

// WriteTopologySVG draws the simplified layout: labeled blocks joined by
// edges, dashed with a skip count when history was elided.
func WriteTopologySVG(w io.Writer, layout graph.TopologyLayout, onBranch map[string]struct{}, p Palette) {
	geom := graph.TopologyGeometry()
	width := int(geom.MarginX*2 + float64(layout.Lanes.MaxColumns)*geom.CellWidth)
	height := int(geom.MarginY*2 + float64(len(layout.Interesting))*geom.CellHeight)
	byID := positionsByID(layout.Positions)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+p.Background)

	for _, edge := range layout.Edges {
		from, okFrom := byID[edge.From]
		to, okTo := byID[edge.To]
		if !okFrom || !okTo {
			continue
		}
		style := fmt.Sprintf("stroke:%s;stroke-width:%d;fill:none", p.Lane(layout.Lanes.Columns[edge.To]), svgLineWidth)
		if edge.Distance > 1 {
			style = fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-dasharray:6,4;fill:none", p.EdgeDim, svgLineWidth)
		}
		canvas.Line(int(from.X), int(from.Y), int(to.X), int(to.Y), style)
		if edge.Distance > 1 {
			midX := int((from.X + to.X) / 2)
			midY := int((from.Y+to.Y)/2) - 4
			canvas.Text(midX, midY, fmt.Sprintf("+%d", edge.Distance-1),
				"font-family:monospace;font-size:11px;fill:"+p.MutedText)
		}
	}
	for _, c := range layout.Interesting {
		pos, ok := byID[c.ID]
		if !ok {
			continue
		}
		col := layout.Lanes.Columns[c.ID]
		drawBlock(canvas, c, pos, p, p.Lane(col), onBranch)
	}
	canvas.End()
}

func drawNode(canvas *svg.SVG, c *graph.Commit, pos graph.NodePosition, p Palette, laneColor string, onBranch map[string]struct{}) {
	fill := p.NodeFill
	if _, ok := c.HeadRef(); ok {
		fill = p.HeadFill
	}
	strokeWidth := 1
	if _, ok := onBranch[c.ID]; ok {
		strokeWidth = 3
	}
	canvas.Circle(int(pos.X), int(pos.Y), int(pos.HitRadius)-2,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", fill, laneColor, strokeWidth))
}

func drawBlock(canvas *svg.SVG, c *graph.Commit, pos graph.NodePosition, p Palette, laneColor string, onBranch map[string]struct{}) {
	x := int(pos.X) - svgBlockWidth/2
	y := int(pos.Y) - svgBlockHeight/2
	fill := p.BlockFill
	if _, ok := c.HeadRef(); ok {
		fill = p.HeadFill
	}
	strokeWidth := 1
	if _, ok := onBranch[c.ID]; ok {
		strokeWidth = 3
	}
	canvas.Roundrect(x, y, svgBlockWidth, svgBlockHeight, svgBlockRound, svgBlockRound,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", fill, laneColor, strokeWidth))
	canvas.Text(x+8, y+18, shortID(c.ID), "font-family:monospace;font-size:12px;fill:"+p.Text)
	if label := blockLabel(c); label != "" {
		canvas.Text(x+8, y+34, label, "font-family:monospace;font-size:11px;fill:"+p.MutedText)
	}
}

// blockLabel picks the most descriptive ref name for a topology block.
func blockLabel(c *graph.Commit) string {
	if len(c.Refs) == 0 {
		return "(root)"
	}
	best := c.Refs[0]
	for _, ref := range c.Refs {
		if ref.Kind == graph.RefKindHead {
			return ref.Name
		}
		if ref.Kind == graph.RefKindBranch && best.Kind != graph.RefKindBranch {
			best = ref
		}
	}
	if best.Kind == graph.RefKindTag {
		return "tag: " + best.Name
	}
	return best.Name
}

func positionsByID(positions []graph.NodePosition) map[string]graph.NodePosition {
	byID := make(map[string]graph.NodePosition, len(positions))
	for _, pos := range positions {
		byID[pos.ID] = pos
	}
	return byID
}
