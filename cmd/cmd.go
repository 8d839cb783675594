package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/thiagokokada/gitgraph-go/internal/buildinfo"
	"github.com/thiagokokada/gitgraph-go/internal/git"
	"github.com/thiagokokada/gitgraph-go/internal/graph"
	"github.com/thiagokokada/gitgraph-go/internal/highlight"
	"github.com/thiagokokada/gitgraph-go/internal/render"
	"github.com/thiagokokada/gitgraph-go/internal/watch"
)

type options struct {
	limit    int
	topology bool
	svgPath  string
	mode     render.ThemePreference
	watch    bool
	diff     string
	compare  string
	checkout string
	clone    string
	local    bool
	syntax   bool
	repoPath string
}

func Run() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	fs := flag.NewFlagSet("gitgraph-go", flag.ContinueOnError)
	limit := fs.Int("limit", git.DefaultLimit, "maximum number of commits to load")
	topology := fs.Bool("topology", false, "render only commits with refs or roots, bridging elided history")
	svgPath := fs.String("svg", "", "write an SVG rendering to the given file instead of text output")
	mode := fs.String("mode", render.ThemeAuto.String(), "color mode: auto, light, or dark")
	watchFlag := fs.Bool("watch", false, "keep running and re-render when the repository changes")
	diff := fs.String("diff", "", "print the changes introduced by the given commit")
	compare := fs.String("compare", "", "print the changes between two commits, given as OID1,OID2")
	checkout := fs.String("checkout", "", "check out the given branch, tag, or commit and exit")
	clone := fs.String("clone", "", "clone the given URL into the path argument first")
	local := fs.Bool("local", false, "print the diff of local uncommitted changes and exit")
	noSyntax := fs.Bool("nosyntax", false, "disable syntax highlighting in diff output")
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	showVersion := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Println(buildinfo.String())
		return nil
	}
	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	repoPath := "."
	remaining := fs.Args()
	if len(remaining) > 0 {
		repoPath = remaining[len(remaining)-1]
	}
	opts := options{
		limit:    *limit,
		topology: *topology,
		svgPath:  *svgPath,
		mode:     render.ThemePreferenceFromString(*mode),
		watch:    *watchFlag,
		diff:     *diff,
		compare:  *compare,
		checkout: *checkout,
		clone:    *clone,
		local:    *local,
		syntax:   !*noSyntax,
		repoPath: repoPath,
	}
	return dispatch(opts)
}

func dispatch(opts options) error {
	var svc *git.Service
	var err error
	if opts.clone != "" {
		svc, err = git.Clone(opts.clone, opts.repoPath)
		if err != nil {
			return err
		}
		fmt.Printf("cloned %s into %s\n", opts.clone, svc.RepoPath())
	} else {
		svc, err = git.Open(opts.repoPath)
		if err != nil {
			return err
		}
	}
	switch {
	case opts.checkout != "":
		return svc.Checkout(opts.checkout)
	case opts.diff != "":
		return showCommit(svc, opts)
	case opts.compare != "":
		return showComparison(svc, opts.compare)
	case opts.local:
		return showLocalChanges(svc, opts)
	}
	if opts.watch {
		return renderLoop(svc, opts)
	}
	return renderOnce(svc, opts)
}

func renderOnce(svc *git.Service, opts options) error {
	commits, err := svc.Commits(opts.limit)
	if err != nil {
		return err
	}
	var onBranch map[string]struct{}
	if headID, ok := graph.HeadID(commits); ok {
		onBranch = graph.BranchMembership(commits, headID)
	}
	if opts.svgPath != "" {
		return writeSVG(commits, onBranch, opts)
	}
	if opts.topology {
		layout := graph.LayoutTopology(commits)
		return render.WriteTopologyText(os.Stdout, layout, onBranch)
	}
	layout := graph.LayoutHistory(commits)
	return render.WriteHistoryText(os.Stdout, commits, layout, onBranch)
}

func writeSVG(commits []*graph.Commit, onBranch map[string]struct{}, opts options) error {
	f, err := os.Create(opts.svgPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.svgPath, err)
	}
	palette := render.PaletteFor(opts.mode)
	if opts.topology {
		render.WriteTopologySVG(f, graph.LayoutTopology(commits), onBranch, palette)
	} else {
		render.WriteHistorySVG(f, commits, graph.LayoutHistory(commits), onBranch, palette)
	}
	return f.Close()
}

// renderLoop renders once, then again after every settled repository change
// until interrupted.
func renderLoop(svc *git.Service, opts options) error {
	if err := renderOnce(svc, opts); err != nil {
		return err
	}
	reload := make(chan struct{}, 1)
	w, err := watch.New(svc.RepoPath(), watch.DefaultDelay, func() {
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Error("watcher close", slog.Any("error", err))
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)
	for {
		select {
		case <-reload:
			slog.Debug("repository changed, re-rendering")
			if err := renderOnce(svc, opts); err != nil {
				slog.Error("re-render failed", slog.Any("error", err))
			}
		case <-interrupt:
			return nil
		}
	}
}

func showCommit(svc *git.Service, opts options) error {
	changes, err := svc.CommitChanges(opts.diff)
	if err != nil {
		return err
	}
	for _, change := range changes {
		fmt.Printf("%-10s %s\n", change.Status, change.Path)
	}
	patch, err := svc.CommitPatch(opts.diff)
	if err != nil {
		return err
	}
	if patch == "" {
		return nil
	}
	fmt.Println()
	dark := render.PaletteFor(opts.mode).Dark
	return highlight.WritePatch(os.Stdout, patch, dark, opts.syntax)
}

func showComparison(svc *git.Service, pair string) error {
	oids := strings.SplitN(pair, ",", 2)
	if len(oids) != 2 || strings.TrimSpace(oids[0]) == "" || strings.TrimSpace(oids[1]) == "" {
		return fmt.Errorf("compare expects OID1,OID2, got %q", pair)
	}
	changes, err := svc.Compare(strings.TrimSpace(oids[0]), strings.TrimSpace(oids[1]))
	if err != nil {
		return err
	}
	for _, change := range changes {
		fmt.Printf("%-10s %s\n", change.Status, change.Path)
	}
	return nil
}

func showLocalChanges(svc *git.Service, opts options) error {
	diff, err := svc.WorktreeDiff()
	if err != nil {
		return err
	}
	if diff == "" {
		fmt.Println("No local changes.")
		return nil
	}
	dark := render.PaletteFor(opts.mode).Dark
	return highlight.WritePatch(os.Stdout, diff, dark, opts.syntax)
}
