// Package graph lays out a commit history as a lane graph: every commit gets
// a (row, column) cell such that branch lines flow top to bottom without
// unnecessary crossings. Two policies exist: the history layout keeps every
// commit, the topology layout keeps only interesting commits (refs or roots)
// joined by edges that record how much history they skip.
//
// Layout passes are pure functions of their input: rerunning one on the same
// commits yields identical assignments, and the per-pass working state is
// discarded afterwards. Callers must hand over commits in an order where
// children precede their ancestors; the package never validates this, it
// only guarantees not to crash or loop on malformed input.
package graph

// HistoryLayout is the result of a full layout pass.
type HistoryLayout struct {
	Lanes     LaneLayout
	Positions []NodePosition
}

// TopologyLayout is the result of a simplified layout pass over the
// interesting subset.
type TopologyLayout struct {
	Interesting []*Commit
	Edges       []SimplifiedEdge
	Lanes       LaneLayout
	Positions   []NodePosition
}

// LayoutHistory assigns every commit a lane and a drawing position.
func LayoutHistory(commits []*Commit) HistoryLayout {
	rows := newRowIndex(commits)
	lanes := assignLanes(commits, func(c *Commit) []string {
		return resolvableParents(c.Parents, rows)
	})
	return HistoryLayout{
		Lanes:     lanes,
		Positions: HistoryGeometry().positions(commits, lanes.Columns),
	}
}

// LayoutTopology reduces commits to the interesting subset, bridges the gaps
// with simplified edges, and lays the subset out with the same lane
// allocator as the history pass.
func LayoutTopology(commits []*Commit) TopologyLayout {
	interesting, edges := simplify(commits)
	grouped := edgesByFrom(edges)
	lanes := assignLanes(interesting, func(c *Commit) []string {
		own := grouped[c.ID]
		targets := make([]string, 0, len(own))
		for _, edge := range own {
			targets = append(targets, edge.To)
		}
		return targets
	})
	return TopologyLayout{
		Interesting: interesting,
		Edges:       edges,
		Lanes:       lanes,
		Positions:   TopologyGeometry().positions(interesting, lanes.Columns),
	}
}

// resolvableParents drops parent ids that have no row in the input. A parent
// beyond the loaded history is a boundary: no lane is booked for it.
func resolvableParents(parents []string, rows rowIndex) []string {
	resolved := parents[:0:0]
	for _, p := range parents {
		if _, ok := rows.row(p); ok {
			resolved = append(resolved, p)
		}
	}
	return resolved
}
