package git

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pmezard/go-difflib/difflib"
)

// WorktreeDiff renders a unified diff of local uncommitted changes against
// HEAD. Untracked files are not included.
func (s *Service) WorktreeDiff() (string, error) {
	wt, err := s.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return "", fmt.Errorf("worktree status: %w", err)
	}
	headTree, err := s.headTree()
	if err != nil && err != plumbing.ErrReferenceNotFound {
		return "", err
	}
	var paths []string
	for path, st := range status {
		if st.Worktree != gitlib.Unmodified && st.Worktree != gitlib.Untracked {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return "", nil
	}
	var b strings.Builder
	b.WriteString("Local uncommitted changes, not checked in to index\n")
	for _, path := range paths {
		oldContent, err := fileFromTree(headTree, path)
		if err != nil {
			return "", err
		}
		newContent, err := fileFromDisk(s.path, path)
		if err != nil {
			return "", err
		}
		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(oldContent),
			B:        difflib.SplitLines(newContent),
			FromFile: "a/" + path,
			ToFile:   "b/" + path,
			Context:  3,
		})
		if err != nil {
			return "", fmt.Errorf("diff %s: %w", path, err)
		}
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "diff --git a/%s b/%s\n%s", path, path, text)
	}
	return b.String(), nil
}

func (s *Service) headTree() (*object.Tree, error) {
	head, err := s.repo.Head()
	if err != nil {
		return nil, err
	}
	commit, err := s.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}
	return commit.Tree()
}

func fileFromTree(tree *object.Tree, path string) (string, error) {
	if tree == nil {
		return "", nil
	}
	f, err := tree.File(path)
	if err == object.ErrFileNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return f.Contents()
}

func fileFromDisk(root, path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, path))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}
