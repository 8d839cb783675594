package graph

import "time"

type RefKind uint8

const (
	RefKindHead RefKind = iota
	RefKindBranch
	RefKindRemoteBranch
	RefKindTag
	RefKindOther
)

func (k RefKind) String() string {
	switch k {
	case RefKindHead:
		return "HEAD"
	case RefKindBranch:
		return "branch"
	case RefKindRemoteBranch:
		return "remote"
	case RefKindTag:
		return "tag"
	default:
		return "other"
	}
}

// RefKindFromString maps a kind label to a RefKind. Unknown labels map to
// RefKindOther rather than failing.
func RefKindFromString(raw string) RefKind {
	switch raw {
	case "HEAD":
		return RefKindHead
	case "branch":
		return RefKindBranch
	case "remote":
		return RefKindRemoteBranch
	case "tag":
		return RefKindTag
	default:
		return RefKindOther
	}
}

type Ref struct {
	Name string // short name: main, origin/main, v1
	Kind RefKind
}

// Commit is an already-parsed commit record supplied by the repository
// collaborator. The layout code only reads commits, never mutates them.
// Parent ids may point outside the supplied list (shallow history); such
// parents are treated as absent, not as errors.
type Commit struct {
	ID          string
	Parents     []string // first entry is the primary parent
	Refs        []Ref
	AuthorName  string
	AuthorEmail string
	When        time.Time
	Summary     string
}

// HasRefs reports whether the commit carries at least one ref.
func (c *Commit) HasRefs() bool { return len(c.Refs) > 0 }

// IsRoot reports whether the commit has no parents.
func (c *Commit) IsRoot() bool { return len(c.Parents) == 0 }

// HeadRef returns the name attached to the HEAD ref kind, if any.
func (c *Commit) HeadRef() (Ref, bool) {
	for _, ref := range c.Refs {
		if ref.Kind == RefKindHead {
			return ref, true
		}
	}
	return Ref{}, false
}

// SimplifiedEdge connects two interesting commits across elided history.
// Distance counts primary-parent hops: 1 is a direct parent, anything larger
// means Distance-1 commits were skipped in between.
type SimplifiedEdge struct {
	From     string
	To       string
	Distance int
}

// NodePosition is the drawing-space placement of one displayed commit,
// rebuilt on every layout pass and never persisted.
type NodePosition struct {
	ID        string
	X         float64
	Y         float64
	HitRadius float64
}
