package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestShouldIgnoreWatchPath(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"/repo/.git/index.lock", true},
		{"/repo/.git/something.IPC", true},
		{"/repo/.git/HEAD", false},
		{"/repo/.git/refs/heads/main", false},
	}
	for _, tc := range cases {
		if got := shouldIgnoreWatchPath(tc.name); got != tc.want {
			t.Fatalf("expected %v for %s, got %v", tc.want, tc.name, got)
		}
	}
}

func TestWatchPaths(t *testing.T) {
	t.Run("empty root", func(t *testing.T) {
		if got := watchPaths(""); got != nil {
			t.Fatalf("expected no paths, got %v", got)
		}
	})
	t.Run("prefers .git dir", func(t *testing.T) {
		root := t.TempDir()
		gitDir := filepath.Join(root, ".git")
		if err := os.Mkdir(gitDir, 0o755); err != nil {
			t.Fatal(err)
		}
		got := watchPaths(root)
		if len(got) != 1 || got[0] != gitDir {
			t.Fatalf("expected [%s], got %v", gitDir, got)
		}
	})
	t.Run("falls back to root", func(t *testing.T) {
		root := t.TempDir()
		got := watchPaths(root)
		if len(got) != 1 || got[0] != root {
			t.Fatalf("expected [%s], got %v", root, got)
		}
	})
}

func TestWatcherFiresOnChange(t *testing.T) {
	root := t.TempDir()
	fired := make(chan struct{}, 1)
	w, err := New(root, 10*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(root, "HEAD"), []byte("ref: refs/heads/main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not fire after a write")
	}
}
