package graph

import "testing"

func commit(id string, parents ...string) *Commit {
	return &Commit{ID: id, Parents: parents}
}

func taggedCommit(id string, kind RefKind, name string, parents ...string) *Commit {
	c := commit(id, parents...)
	c.Refs = append(c.Refs, Ref{Name: name, Kind: kind})
	return c
}

func TestAssignLanesLinearHistory(t *testing.T) {
	commits := []*Commit{
		commit("a", "b"),
		commit("b", "c"),
		commit("c"),
	}
	layout := LayoutHistory(commits)
	for _, id := range []string{"a", "b", "c"} {
		if col, ok := layout.Lanes.Columns[id]; !ok || col != 0 {
			t.Fatalf("expected %s in column 0, got %d (present=%v)", id, col, ok)
		}
	}
	if layout.Lanes.MaxColumns != 1 {
		t.Fatalf("expected a single lane, got %d", layout.Lanes.MaxColumns)
	}
}

func TestAssignLanesMergeOpensNewColumn(t *testing.T) {
	// x expects m in column 0; m's second parent starts a fresh lane.
	commits := []*Commit{
		commit("x", "m"),
		commit("m", "p1", "p2"),
		commit("p1"),
		commit("p2"),
	}
	layout := LayoutHistory(commits)
	if col := layout.Lanes.Columns["m"]; col != 0 {
		t.Fatalf("expected merge commit in column 0, got %d", col)
	}
	if col := layout.Lanes.Columns["p1"]; col != 0 {
		t.Fatalf("expected primary parent to continue column 0, got %d", col)
	}
	if col := layout.Lanes.Columns["p2"]; col != 1 {
		t.Fatalf("expected merge source in a new column, got %d", col)
	}
	if layout.Lanes.MaxColumns != 2 {
		t.Fatalf("expected two lanes, got %d", layout.Lanes.MaxColumns)
	}
}

func TestAssignLanesForkReusesFreedColumn(t *testing.T) {
	// Two tips, then the second branch ends; a later tip reuses its column.
	commits := []*Commit{
		commit("a", "c"),
		commit("b", "d"),
		commit("c"),
		commit("d", "e"),
		commit("e"),
	}
	layout := LayoutHistory(commits)
	if col := layout.Lanes.Columns["a"]; col != 0 {
		t.Fatalf("expected first tip in column 0, got %d", col)
	}
	if col := layout.Lanes.Columns["b"]; col != 1 {
		t.Fatalf("expected second tip in column 1, got %d", col)
	}
	// c ends lane 0; d keeps lane 1 flowing into e.
	if col := layout.Lanes.Columns["e"]; col != 1 {
		t.Fatalf("expected e to stay in column 1, got %d", col)
	}
	if layout.Lanes.MaxColumns != 2 {
		t.Fatalf("expected two lanes, got %d", layout.Lanes.MaxColumns)
	}
}

func TestAssignLanesSharedParentDoesNotLeakLanes(t *testing.T) {
	// Both branches book the same parent; when it lands, every stale booking
	// must clear so later tips can reuse the lane.
	commits := []*Commit{
		commit("a", "base"),
		commit("b", "base"),
		commit("base", "root"),
		commit("tip", "root2"),
		commit("root"),
		commit("root2"),
	}
	layout := LayoutHistory(commits)
	if col := layout.Lanes.Columns["base"]; col != 0 {
		t.Fatalf("expected shared parent in column 0, got %d", col)
	}
	if col := layout.Lanes.Columns["tip"]; col != 1 {
		t.Fatalf("expected tip to reuse the freed column 1, got %d", col)
	}
	if layout.Lanes.MaxColumns != 2 {
		t.Fatalf("expected two lanes, got %d", layout.Lanes.MaxColumns)
	}
}

func TestAssignLanesUnknownParentIsBoundary(t *testing.T) {
	commits := []*Commit{
		commit("a", "missing"),
		commit("b"),
	}
	layout := LayoutHistory(commits)
	if col := layout.Lanes.Columns["a"]; col != 0 {
		t.Fatalf("expected a in column 0, got %d", col)
	}
	// The missing parent books no lane, so b starts at column 0 again.
	if col := layout.Lanes.Columns["b"]; col != 0 {
		t.Fatalf("expected b to reuse column 0, got %d", col)
	}
}

func TestAssignLanesDeterministic(t *testing.T) {
	commits := []*Commit{
		commit("m", "a", "b"),
		commit("a", "c"),
		commit("b", "c"),
		commit("c"),
	}
	first := LayoutHistory(commits)
	second := LayoutHistory(commits)
	for id, col := range first.Lanes.Columns {
		if second.Lanes.Columns[id] != col {
			t.Fatalf("expected %s in column %d on rerun, got %d", id, col, second.Lanes.Columns[id])
		}
	}
	if len(first.Positions) != len(second.Positions) {
		t.Fatalf("expected %d positions on rerun, got %d", len(first.Positions), len(second.Positions))
	}
	for i := range first.Positions {
		if first.Positions[i] != second.Positions[i] {
			t.Fatalf("expected position %d to be stable, got %+v vs %+v", i, first.Positions[i], second.Positions[i])
		}
	}
}

func TestAssignLanesEmptyInput(t *testing.T) {
	layout := LayoutHistory(nil)
	if len(layout.Lanes.Columns) != 0 || len(layout.Positions) != 0 {
		t.Fatalf("expected empty layout, got %+v", layout)
	}
}

func TestAssignLanesActiveLanes(t *testing.T) {
	commits := []*Commit{
		commit("m", "p1", "p2"),
		commit("p1", "root"),
		commit("p2", "root"),
		commit("root"),
	}
	layout := LayoutHistory(commits)
	if len(layout.Lanes.Active) != len(commits) {
		t.Fatalf("expected %d active-lane rows, got %d", len(commits), len(layout.Lanes.Active))
	}
	// After the merge row both parent lanes are open.
	if got := layout.Lanes.Active[0]; len(got) != 2 {
		t.Fatalf("expected 2 active lanes after merge row, got %v", got)
	}
	// The root row collapses everything back to its own lane.
	if got := layout.Lanes.Active[3]; len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected only lane 0 at root row, got %v", got)
	}
}
