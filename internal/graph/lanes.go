package graph

// laneBuilder assigns commits to columns in a single top-to-bottom pass.
// slots is a growable arena of column bookings: each slot is either free ("")
// or holds the id of the commit expected to continue that lane. Callers must
// feed commits in an order where children precede their ancestors; the
// builder does not validate this.
type laneBuilder struct {
	slots []string
}

// LaneLayout is the outcome of one allocation pass.
type LaneLayout struct {
	// Columns maps every processed commit id to its column, starting at 0.
	Columns map[string]int
	// Active records, per input row, the columns occupied immediately after
	// the row was placed (the row's own column included). Renderers use it to
	// draw pass-through lanes without re-running the allocator.
	Active [][]int
	// MaxColumns is the widest the slot arena ever grew.
	MaxColumns int
}

// assignLanes runs the allocator over commits, selecting each commit's
// outgoing edges through parentsOf. For the history layout parentsOf returns
// the raw parent list; for the topology layout it returns the targets of the
// commit's simplified edges.
func assignLanes(commits []*Commit, parentsOf func(*Commit) []string) LaneLayout {
	b := &laneBuilder{}
	layout := LaneLayout{
		Columns: make(map[string]int, len(commits)),
		Active:  make([][]int, 0, len(commits)),
	}
	for _, c := range commits {
		if c == nil {
			layout.Active = append(layout.Active, nil)
			continue
		}
		col := b.place(c.ID, parentsOf(c))
		layout.Columns[c.ID] = col
		layout.Active = append(layout.Active, b.occupied(col))
		if len(b.slots) > layout.MaxColumns {
			layout.MaxColumns = len(b.slots)
		}
	}
	return layout
}

// place assigns id a column and books the lanes its parents will continue in.
func (b *laneBuilder) place(id string, parents []string) int {
	col := b.consume(id)
	if col == -1 {
		col = b.book(id)
		b.slots[col] = ""
	}
	if len(parents) > 0 {
		// The primary parent keeps this lane flowing downward. When the slot
		// is occupied again by the time we get here the booking is silently
		// dropped and the parent is picked up by another lane later.
		if b.slots[col] == "" {
			b.slots[col] = parents[0]
		}
		for _, parent := range parents[1:] {
			if b.columnOf(parent) == -1 {
				b.book(parent)
			}
		}
	}
	return col
}

// consume returns the first column booked for id and clears every slot
// holding id, or returns -1 when id was never expected. Clearing all copies
// matters when several children booked the same parent: the leftover slots
// can never be consumed and would leak lanes for the rest of the pass.
func (b *laneBuilder) consume(id string) int {
	col := -1
	for i, slot := range b.slots {
		if slot != id {
			continue
		}
		if col == -1 {
			col = i
		}
		b.slots[i] = ""
	}
	return col
}

func (b *laneBuilder) columnOf(id string) int {
	for i, slot := range b.slots {
		if slot == id {
			return i
		}
	}
	return -1
}

// book stores id in the first free slot, growing the arena when every lane
// is taken.
func (b *laneBuilder) book(id string) int {
	for i, slot := range b.slots {
		if slot == "" {
			b.slots[i] = id
			return i
		}
	}
	b.slots = append(b.slots, id)
	return len(b.slots) - 1
}

// occupied lists own plus every currently booked column, ascending.
func (b *laneBuilder) occupied(own int) []int {
	cols := make([]int, 0, len(b.slots))
	for i, slot := range b.slots {
		if i == own || slot != "" {
			cols = append(cols, i)
		}
	}
	return cols
}
