package graph

import "testing"

func TestSimplifyLinearChain(t *testing.T) {
	// a carries refs, b is plain, c is a root: the edge skips b.
	commits := []*Commit{
		taggedCommit("a", RefKindHead, "HEAD", "b"),
		commit("b", "c"),
		taggedCommit("c", RefKindTag, "v1"),
	}
	layout := LayoutTopology(commits)
	if len(layout.Interesting) != 2 {
		t.Fatalf("expected 2 interesting commits, got %d", len(layout.Interesting))
	}
	if layout.Interesting[0].ID != "a" || layout.Interesting[1].ID != "c" {
		t.Fatalf("expected interesting set [a c], got [%s %s]", layout.Interesting[0].ID, layout.Interesting[1].ID)
	}
	if len(layout.Edges) != 1 {
		t.Fatalf("expected 1 simplified edge, got %d", len(layout.Edges))
	}
	edge := layout.Edges[0]
	if edge.From != "a" || edge.To != "c" || edge.Distance != 2 {
		t.Fatalf("expected edge a->c distance 2, got %+v", edge)
	}
}

func TestSimplifyDirectParentDistanceOne(t *testing.T) {
	commits := []*Commit{
		taggedCommit("a", RefKindBranch, "main", "b"),
		taggedCommit("b", RefKindTag, "v1"),
	}
	_, edges := simplify(commits)
	if len(edges) != 1 || edges[0].Distance != 1 {
		t.Fatalf("expected one direct edge with distance 1, got %+v", edges)
	}
}

func TestSimplifyEdgeEndpointsAreInteresting(t *testing.T) {
	commits := []*Commit{
		taggedCommit("tip", RefKindBranch, "main", "m"),
		commit("m", "x", "y"),
		commit("x", "base"),
		taggedCommit("y", RefKindBranch, "feature", "base"),
		commit("base", "root"),
		commit("root"),
	}
	interesting, edges := simplify(commits)
	members := map[string]struct{}{}
	for _, c := range interesting {
		members[c.ID] = struct{}{}
	}
	for _, edge := range edges {
		if _, ok := members[edge.From]; !ok {
			t.Fatalf("expected edge source %s to be interesting", edge.From)
		}
		if _, ok := members[edge.To]; !ok {
			t.Fatalf("expected edge target %s to be interesting", edge.To)
		}
	}
}

func TestSimplifyMergeWalksOnlyPrimaryChain(t *testing.T) {
	// tip's parent m is uninteresting; the walk continues through m's
	// primary parent only, so the branch joined at m never gets an edge.
	commits := []*Commit{
		taggedCommit("tip", RefKindBranch, "main", "m"),
		commit("m", "a", "b"),
		commit("a", "root"),
		commit("b", "root"),
		commit("root"),
	}
	_, edges := simplify(commits)
	if len(edges) != 1 {
		t.Fatalf("expected a single edge, got %+v", edges)
	}
	if edges[0].To != "root" || edges[0].Distance != 3 {
		t.Fatalf("expected tip->root distance 3, got %+v", edges[0])
	}
}

func TestSimplifyUnknownParentEmitsNoEdge(t *testing.T) {
	commits := []*Commit{
		taggedCommit("a", RefKindBranch, "main", "gone"),
	}
	interesting, edges := simplify(commits)
	if len(interesting) != 1 {
		t.Fatalf("expected 1 interesting commit, got %d", len(interesting))
	}
	if len(edges) != 0 {
		t.Fatalf("expected no edges past the boundary, got %+v", edges)
	}
}

func TestSimplifyCycleTerminates(t *testing.T) {
	// Malformed history: walking from a loops b->c->b. The guard must end
	// the walk without an edge.
	commits := []*Commit{
		taggedCommit("a", RefKindBranch, "main", "b"),
		commit("b", "c"),
		commit("c", "b"),
	}
	_, edges := simplify(commits)
	if len(edges) != 0 {
		t.Fatalf("expected no edges out of a cycle, got %+v", edges)
	}
}

func TestSimplifyEmptyInput(t *testing.T) {
	layout := LayoutTopology(nil)
	if len(layout.Interesting) != 0 || len(layout.Edges) != 0 || len(layout.Positions) != 0 {
		t.Fatalf("expected empty topology layout, got %+v", layout)
	}
}

func TestLayoutTopologyLanesFollowSimplifiedEdges(t *testing.T) {
	commits := []*Commit{
		taggedCommit("a", RefKindHead, "HEAD", "b"),
		commit("b", "c"),
		taggedCommit("c", RefKindTag, "v1"),
	}
	layout := LayoutTopology(commits)
	if col := layout.Lanes.Columns["a"]; col != 0 {
		t.Fatalf("expected a in column 0, got %d", col)
	}
	if col := layout.Lanes.Columns["c"]; col != 0 {
		t.Fatalf("expected c to continue column 0, got %d", col)
	}
	if _, ok := layout.Lanes.Columns["b"]; ok {
		t.Fatalf("expected elided commit b to have no column")
	}
}
