package graph

// rowIndex maps commit ids to their position in the input ordering. A commit
// id that is not in the index has no row: edges to it stop at the boundary.
type rowIndex map[string]int

func newRowIndex(commits []*Commit) rowIndex {
	rows := make(rowIndex, len(commits))
	for i, c := range commits {
		if c == nil {
			continue
		}
		if _, ok := rows[c.ID]; ok {
			// Duplicate ids are undefined input; keep the first row.
			continue
		}
		rows[c.ID] = i
	}
	return rows
}

func (r rowIndex) row(id string) (int, bool) {
	row, ok := r[id]
	return row, ok
}
