package git

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/thiagokokada/gitgraph-go/internal/graph"
)

// DefaultLimit caps how many commits a single load walks. Huge histories are
// cut off upstream of the layout code.
const DefaultLimit = 2000

type Service struct {
	repo *gitlib.Repository
	path string
}

func Open(repoPath string) (*Service, error) {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	repo, err := gitlib.PlainOpenWithOptions(abs, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return &Service{repo: repo, path: abs}, nil
}

func (s *Service) RepoPath() string {
	return s.path
}

// Commits walks history from HEAD in committer-time order and returns
// already-parsed commit records with refs attached, ready for layout. An
// unborn HEAD (empty repository) yields an empty list, not an error.
func (s *Service) Commits(limit int) ([]*graph.Commit, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	head, err := s.repo.Head()
	if err != nil {
		if err == plumbing.ErrReferenceNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	refs, err := s.refsByCommit(head)
	if err != nil {
		return nil, err
	}
	iter, err := s.repo.Log(&gitlib.LogOptions{From: head.Hash(), Order: gitlib.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("read commits: %w", err)
	}
	defer iter.Close()

	var commits []*graph.Commit
	for len(commits) < limit {
		commit, err := iter.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("iterate commits: %w", err)
		}
		commits = append(commits, newGraphCommit(commit, refs))
	}
	slog.Debug("commits loaded",
		slog.Int("count", len(commits)),
		slog.String("head", head.Hash().String()),
	)
	return commits, nil
}

func newGraphCommit(c *object.Commit, refs map[string][]graph.Ref) *graph.Commit {
	hash := c.Hash.String()
	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}
	return &graph.Commit{
		ID:          hash,
		Parents:     parents,
		Refs:        refs[hash],
		AuthorName:  c.Author.Name,
		AuthorEmail: c.Author.Email,
		When:        c.Author.When,
		Summary:     summaryLine(c.Message),
	}
}

func summaryLine(message string) string {
	firstLine := strings.SplitN(strings.TrimSpace(message), "\n", 2)[0]
	if len(firstLine) > 80 {
		firstLine = firstLine[:77] + "..."
	}
	return firstLine
}
