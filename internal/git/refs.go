package git

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/thiagokokada/gitgraph-go/internal/graph"
)

// refsByCommit collects every branch, remote branch and tag keyed by the
// commit hash it points to, plus a synthetic HEAD ref on the checked-out
// commit. Annotated tags are peeled to the commit they ultimately target;
// remote HEAD aliases (origin/HEAD) are skipped.
func (s *Service) refsByCommit(head *plumbing.Reference) (map[string][]graph.Ref, error) {
	byCommit := map[string][]graph.Ref{}
	refs, err := s.repo.References()
	if err != nil {
		return nil, err
	}
	defer refs.Close()
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		kind := graph.RefKindOther
		switch {
		case name.IsBranch():
			kind = graph.RefKindBranch
		case name.IsRemote():
			kind = graph.RefKindRemoteBranch
		case name.IsTag():
			kind = graph.RefKindTag
		}
		short := name.Short()
		if short == "" {
			short = name.String()
		}
		if kind == graph.RefKindRemoteBranch && strings.HasSuffix(short, "/HEAD") {
			return nil
		}
		hash := ref.Hash()
		if kind == graph.RefKindTag {
			if peeled, ok := s.peelTagCommitHash(hash); ok {
				hash = peeled
			}
		}
		key := hash.String()
		byCommit[key] = append(byCommit[key], graph.Ref{Name: short, Kind: kind})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if head != nil && head.Hash() != plumbing.ZeroHash {
		name := "HEAD"
		if head.Name().IsBranch() {
			name = "HEAD -> " + head.Name().Short()
		}
		key := head.Hash().String()
		byCommit[key] = append([]graph.Ref{{Name: name, Kind: graph.RefKindHead}}, byCommit[key]...)
	}
	return byCommit, nil
}

// peelTagCommitHash resolves a tag ref to the commit it points at.
// Lightweight tags reference a commit directly; annotated tags reference a
// tag object, possibly nested.
func (s *Service) peelTagCommitHash(hash plumbing.Hash) (plumbing.Hash, bool) {
	if s == nil || s.repo == nil || hash == plumbing.ZeroHash {
		return plumbing.ZeroHash, false
	}
	if _, err := s.repo.CommitObject(hash); err == nil {
		return hash, true
	}
	cur := hash
	for range 8 {
		tag, err := s.repo.TagObject(cur)
		if err != nil {
			return plumbing.ZeroHash, false
		}
		switch tag.TargetType {
		case plumbing.CommitObject:
			return tag.Target, true
		case plumbing.TagObject:
			cur = tag.Target
		default:
			return plumbing.ZeroHash, false
		}
	}
	return plumbing.ZeroHash, false
}
