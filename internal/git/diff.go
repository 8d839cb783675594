package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

// FileChange is one touched path in a commit or a comparison.
type FileChange struct {
	Path   string
	Status string
}

// CommitChanges lists the files a commit touched relative to its first
// parent. A root commit diffs against the empty tree.
func (s *Service) CommitChanges(oid string) ([]FileChange, error) {
	commit, err := s.commitByOID(oid)
	if err != nil {
		return nil, err
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}
	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("resolve parent: %w", err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, err
		}
	}
	return changeList(parentTree, tree)
}

// Compare lists the files that differ between two commits.
func (s *Service) Compare(oidA, oidB string) ([]FileChange, error) {
	commitA, err := s.commitByOID(oidA)
	if err != nil {
		return nil, err
	}
	commitB, err := s.commitByOID(oidB)
	if err != nil {
		return nil, err
	}
	treeA, err := commitA.Tree()
	if err != nil {
		return nil, err
	}
	treeB, err := commitB.Tree()
	if err != nil {
		return nil, err
	}
	return changeList(treeA, treeB)
}

// CommitPatch renders the unified patch of a commit against its first
// parent, for the highlight pipeline.
func (s *Service) CommitPatch(oid string) (string, error) {
	commit, err := s.commitByOID(oid)
	if err != nil {
		return "", err
	}
	tree, err := commit.Tree()
	if err != nil {
		return "", err
	}
	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return "", fmt.Errorf("resolve parent: %w", err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return "", err
		}
	}
	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return "", fmt.Errorf("diff trees: %w", err)
	}
	patch, err := changes.Patch()
	if err != nil {
		return "", fmt.Errorf("render patch: %w", err)
	}
	return patch.String(), nil
}

func (s *Service) commitByOID(oid string) (*object.Commit, error) {
	hash, err := s.repo.ResolveRevision(plumbing.Revision(oid))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", oid, err)
	}
	commit, err := s.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", oid, err)
	}
	return commit, nil
}

func changeList(from, to *object.Tree) ([]FileChange, error) {
	changes, err := object.DiffTree(from, to)
	if err != nil {
		return nil, fmt.Errorf("diff trees: %w", err)
	}
	out := make([]FileChange, 0, len(changes))
	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return nil, err
		}
		path := change.To.Name
		if path == "" {
			path = change.From.Name
		}
		out = append(out, FileChange{Path: path, Status: changeStatus(action)})
	}
	return out, nil
}

func changeStatus(action merkletrie.Action) string {
	switch action {
	case merkletrie.Insert:
		return "Added"
	case merkletrie.Delete:
		return "Deleted"
	case merkletrie.Modify:
		return "Modified"
	default:
		return action.String()
	}
}
