package graph

// BranchMembership returns the set of commit ids reachable from headID by
// following only primary parents. The set flags "on the current branch"
// styling; it never alters layout. Parents missing from commits end the walk
// (shallow boundary), and a repeated id ends it too (cycle guard — well
// formed history cannot cycle, malformed input must not hang).
func BranchMembership(commits []*Commit, headID string) map[string]struct{} {
	members := map[string]struct{}{}
	if headID == "" {
		return members
	}
	byID := make(map[string]*Commit, len(commits))
	for _, c := range commits {
		if c == nil {
			continue
		}
		if _, ok := byID[c.ID]; !ok {
			byID[c.ID] = c
		}
	}
	current := headID
	for {
		c, ok := byID[current]
		if !ok {
			return members
		}
		if _, ok := members[current]; ok {
			return members
		}
		members[current] = struct{}{}
		if len(c.Parents) == 0 {
			return members
		}
		current = c.Parents[0]
	}
}

// HeadID scans commits for the one carrying the HEAD ref kind.
func HeadID(commits []*Commit) (string, bool) {
	for _, c := range commits {
		if c == nil {
			continue
		}
		if _, ok := c.HeadRef(); ok {
			return c.ID, true
		}
	}
	return "", false
}
