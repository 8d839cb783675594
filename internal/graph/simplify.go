package graph

// Interesting reports whether a commit survives topology simplification:
// it carries at least one ref or it is a root.
func Interesting(c *Commit) bool {
	if c == nil {
		return false
	}
	return c.HasRefs() || c.IsRoot()
}

// simplify reduces commits to the interesting subset and connects it with
// edges that bridge elided history. For each direct parent of an interesting
// commit the walk follows primary parents until it reaches another
// interesting commit; dead ends (parents missing from the input) and cycles
// end the walk without an edge.
func simplify(commits []*Commit) (interesting []*Commit, edges []SimplifiedEdge) {
	byID := make(map[string]*Commit, len(commits))
	for _, c := range commits {
		if c == nil {
			continue
		}
		if _, ok := byID[c.ID]; !ok {
			byID[c.ID] = c
		}
	}
	for _, c := range commits {
		if !Interesting(c) {
			continue
		}
		interesting = append(interesting, c)
		for _, parent := range c.Parents {
			if edge, ok := walkToInteresting(c.ID, parent, byID); ok {
				edges = append(edges, edge)
			}
		}
	}
	return interesting, edges
}

// walkToInteresting steps down the primary-parent chain starting at parent,
// counting hops, until it finds an interesting commit. The seen set guards
// against malformed cyclic history; a revisit aborts the walk.
func walkToInteresting(from, parent string, byID map[string]*Commit) (SimplifiedEdge, bool) {
	runner := parent
	distance := 1
	seen := map[string]struct{}{}
	for {
		if _, ok := seen[runner]; ok {
			return SimplifiedEdge{}, false
		}
		seen[runner] = struct{}{}
		current, ok := byID[runner]
		if !ok {
			// Beyond the loaded history; stop at the boundary.
			return SimplifiedEdge{}, false
		}
		if Interesting(current) {
			return SimplifiedEdge{From: from, To: runner, Distance: distance}, true
		}
		if len(current.Parents) == 0 {
			return SimplifiedEdge{}, false
		}
		runner = current.Parents[0]
		distance++
	}
}

// edgesByFrom groups simplified edges by their source commit, preserving
// emission order.
func edgesByFrom(edges []SimplifiedEdge) map[string][]SimplifiedEdge {
	grouped := make(map[string][]SimplifiedEdge, len(edges))
	for _, edge := range edges {
		grouped[edge.From] = append(grouped[edge.From], edge)
	}
	return grouped
}
