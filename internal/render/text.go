package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/thiagokokada/gitgraph-go/internal/graph"
)

// WriteHistoryText renders the full history layout one line per commit:
// graph tokens ("*" node, "|" pass-through lane), short hash, date, summary
// and ref labels. Commits on the current branch are marked with "●".
func WriteHistoryText(w io.Writer, commits []*graph.Commit, layout graph.HistoryLayout, onBranch map[string]struct{}) error {
	for row, c := range commits {
		if c == nil {
			continue
		}
		col := layout.Lanes.Columns[c.ID]
		node := "*"
		if _, ok := onBranch[c.ID]; ok {
			node = "●"
		}
		tokens := laneTokens(col, node, rowActive(layout.Lanes, row))
		line := fmt.Sprintf("%s  %s  %s  %s", tokens, shortID(c.ID), c.When.Format("2006-01-02 15:04"), c.Summary)
		if labels := refLabels(c.Refs); labels != "" {
			line += "  " + labels
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteTopologyText renders the simplified layout: only interesting commits,
// with elision counts from the simplified edges.
func WriteTopologyText(w io.Writer, layout graph.TopologyLayout, onBranch map[string]struct{}) error {
	skipped := map[string]int{}
	for _, edge := range layout.Edges {
		if edge.Distance > 1 {
			skipped[edge.From] += edge.Distance - 1
		}
	}
	for row, c := range layout.Interesting {
		col := layout.Lanes.Columns[c.ID]
		node := "*"
		if _, ok := onBranch[c.ID]; ok {
			node = "●"
		}
		tokens := laneTokens(col, node, rowActive(layout.Lanes, row))
		line := fmt.Sprintf("%s  %s", tokens, shortID(c.ID))
		if labels := refLabels(c.Refs); labels != "" {
			line += "  " + labels
		}
		if c.Summary != "" {
			line += "  " + c.Summary
		}
		if n := skipped[c.ID]; n > 0 {
			line += fmt.Sprintf("  (%d skipped)", n)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// laneTokens draws one row of the lane grid. Columns between active lanes
// stay blank so lane positions line up vertically across rows.
func laneTokens(own int, node string, active []int) string {
	width := own + 1
	occupied := map[int]struct{}{}
	for _, col := range active {
		occupied[col] = struct{}{}
		if col+1 > width {
			width = col + 1
		}
	}
	var b strings.Builder
	for col := range width {
		if col > 0 {
			b.WriteString(" ")
		}
		switch {
		case col == own:
			b.WriteString(node)
		default:
			if _, ok := occupied[col]; ok {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
	}
	return b.String()
}

func rowActive(lanes graph.LaneLayout, row int) []int {
	if row < 0 || row >= len(lanes.Active) {
		return nil
	}
	return lanes.Active[row]
}

func refLabels(refs []graph.Ref) string {
	if len(refs) == 0 {
		return ""
	}
	labels := make([]string, 0, len(refs))
	for _, ref := range refs {
		label := ref.Name
		if ref.Kind == graph.RefKindTag {
			label = "tag: " + ref.Name
		}
		labels = append(labels, label)
	}
	return "(" + strings.Join(labels, ", ") + ")"
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
