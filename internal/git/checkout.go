package git

import (
	"fmt"
	"log/slog"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Checkout switches the worktree to rev. A local branch name checks the
// branch out; anything else (tag, remote branch, commit hash) detaches HEAD
// at the resolved commit.
func (s *Service) Checkout(rev string) error {
	if rev == "" {
		return fmt.Errorf("revision not specified")
	}
	wt, err := s.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	branch := plumbing.NewBranchReferenceName(rev)
	if _, err := s.repo.Reference(branch, true); err == nil {
		if err := wt.Checkout(&gitlib.CheckoutOptions{Branch: branch}); err != nil {
			return fmt.Errorf("checkout branch %s: %w", rev, err)
		}
		slog.Debug("checked out branch", slog.String("branch", rev))
		return nil
	}
	hash, err := s.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return fmt.Errorf("reference not found: %s", rev)
	}
	if err := wt.Checkout(&gitlib.CheckoutOptions{Hash: *hash}); err != nil {
		return fmt.Errorf("checkout %s: %w", rev, err)
	}
	slog.Debug("checked out detached", slog.String("rev", rev), slog.String("hash", hash.String()))
	return nil
}

// Clone clones url into path and returns a Service on the new repository.
func Clone(url, path string) (*Service, error) {
	repo, err := gitlib.PlainClone(path, false, &gitlib.CloneOptions{URL: url})
	if err != nil {
		return nil, fmt.Errorf("clone %s: %w", url, err)
	}
	return &Service{repo: repo, path: path}, nil
}
