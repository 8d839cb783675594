package graph

import "testing"

func TestPositionCellCenters(t *testing.T) {
	g := CellGeometry{CellWidth: 10, CellHeight: 20, MarginX: 5, MarginY: 5, HitRadius: 4}
	x, y := g.Position(0, 0)
	if x != 10 || y != 15 {
		t.Fatalf("expected (10, 15), got (%v, %v)", x, y)
	}
	x, y = g.Position(2, 3)
	if x != 40 || y != 55 {
		t.Fatalf("expected (40, 55), got (%v, %v)", x, y)
	}
}

func TestHitTestNearestWins(t *testing.T) {
	positions := []NodePosition{
		{ID: "a", X: 0, Y: 0, HitRadius: 10},
		{ID: "b", X: 8, Y: 0, HitRadius: 10},
	}
	id, ok := HitTest(positions, 6, 0)
	if !ok || id != "b" {
		t.Fatalf("expected nearest node b, got %q (found=%v)", id, ok)
	}
	id, ok = HitTest(positions, 1, 0)
	if !ok || id != "a" {
		t.Fatalf("expected nearest node a, got %q (found=%v)", id, ok)
	}
}

func TestHitTestOutOfRange(t *testing.T) {
	positions := []NodePosition{{ID: "a", X: 0, Y: 0, HitRadius: 5}}
	if id, ok := HitTest(positions, 20, 20); ok {
		t.Fatalf("expected no match far from every node, got %q", id)
	}
	// Exactly on the radius still counts.
	if _, ok := HitTest(positions, 5, 0); !ok {
		t.Fatalf("expected a hit on the radius boundary")
	}
}

func TestHitTestEmptyPositions(t *testing.T) {
	if id, ok := HitTest(nil, 0, 0); ok {
		t.Fatalf("expected no match before any layout pass, got %q", id)
	}
}

func TestLayoutPositionsFollowRowsAndColumns(t *testing.T) {
	commits := []*Commit{
		commit("m", "p1", "p2"),
		commit("p1"),
		commit("p2"),
	}
	layout := LayoutHistory(commits)
	if len(layout.Positions) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(layout.Positions))
	}
	g := HistoryGeometry()
	wantX, wantY := g.Position(2, 1)
	p := layout.Positions[2]
	if p.ID != "p2" || p.X != wantX || p.Y != wantY {
		t.Fatalf("expected p2 at (%v, %v), got %+v", wantX, wantY, p)
	}
	if p.HitRadius != g.HitRadius {
		t.Fatalf("expected hit radius %v, got %v", g.HitRadius, p.HitRadius)
	}
}

func TestTopologyGeometryIsSparser(t *testing.T) {
	h, topo := HistoryGeometry(), TopologyGeometry()
	if topo.CellWidth <= h.CellWidth || topo.CellHeight <= h.CellHeight {
		t.Fatalf("expected topology cells larger than history cells, got %+v vs %+v", topo, h)
	}
}
