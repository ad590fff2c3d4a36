// Command pathfinder solves maze files with the search strategies of
// github.com/katalvlaran/pathfinder/search, or serves them over HTTP.
//
//	pathfinder [-config f] [-strategy s] [-all] [-max n] [-v] maze...
//	pathfinder -serve [-listen addr]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/internal/logging"
	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/search"
	"github.com/katalvlaran/pathfinder/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, ansi.NewAnsiStdout())
	stop()
	os.Exit(code)
}

type flags struct {
	config   string
	strategy string
	all      bool
	max      int
	verbose  bool
	serve    bool
	listen   string
}

func parseFlags(args []string, stderr io.Writer) (flags, []string, error) {
	var f flags
	fs := flag.NewFlagSet("pathfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "YAML configuration file")
	fs.StringVar(&f.strategy, "strategy", "", "search strategy: bfs, dfs, ucs or astar (default from config)")
	fs.BoolVar(&f.all, "all", false, "run every strategy on each maze")
	fs.IntVar(&f.max, "max", -1, "expansion cap, 0 for none (default from config)")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	fs.BoolVar(&f.serve, "serve", false, "start the HTTP API instead of solving files")
	fs.StringVar(&f.listen, "listen", "", "HTTP listen address (default from config)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: pathfinder [flags] maze...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return f, nil, err
	}
	return f, fs.Args(), nil
}

func run(ctx context.Context, args []string, stdout, stderr, progress io.Writer) int {
	f, mazes, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	cfg := config.Default()
	if f.config != "" {
		if cfg, err = config.Read(f.config); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := logging.Setup(stderr, level, cfg.Log.Source)

	if f.strategy != "" {
		cfg.Search.DefaultStrategy = f.strategy
	}
	if f.max >= 0 {
		cfg.Search.MaxExpansions = f.max
	}
	if f.listen != "" {
		cfg.Server.Listen = f.listen
	}
	strategy, err := cfg.Strategy()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if f.serve {
		srv := server.New(server.Options{
			Listen:          cfg.Server.Listen,
			DefaultStrategy: strategy,
			MaxExpansions:   cfg.Search.MaxExpansions,
			Timeout:         30 * time.Second,
			Logger:          logger,
			AccessLog:       true,
		})
		if err = srv.Run(ctx); err != nil {
			logger.Error("server error", "error", err)
			return 1
		}
		return 0
	}

	if len(mazes) == 0 {
		fmt.Fprintln(stderr, "pathfinder: no maze files given")
		return 2
	}
	strategies := []search.Strategy{strategy}
	if f.all {
		strategies = search.Strategies()
	}

	var bar *progressbar.ProgressBar
	if len(mazes) > 1 {
		bar = newBar(progress, len(mazes))
	}
	code := 0
	for _, path := range mazes {
		if err = solveFile(ctx, stdout, path, strategies, cfg.Search.MaxExpansions, logger); err != nil {
			logger.Error("maze failed", "path", path, "error", err)
			code = 1
			if errors.Is(err, context.Canceled) {
				break
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return code
}

func newBar(w io.Writer, n int) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]solving mazes...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func solveFile(ctx context.Context, w io.Writer, path string, strategies []search.Strategy, maxExp int, logger *slog.Logger) error {
	m, err := maze.LoadFile(path)
	if err != nil {
		return err
	}
	for _, s := range strategies {
		res, err := search.Search(m.Grid, s,
			search.WithContext(ctx),
			search.WithMaxExpansions(maxExp),
			search.WithLogger(logger.With("maze", m.Name)),
		)
		if err != nil {
			return err
		}
		report(w, m, s, res)
	}
	return nil
}

func report(w io.Writer, m *maze.Maze, s search.Strategy, res search.Result) {
	st := res.Stats()
	fmt.Fprintf(w, "== %s [%s] ==\n", m.Name, s)
	fmt.Fprint(w, maze.Render(m, res))
	switch v := res.(type) {
	case *search.Solution:
		fmt.Fprintf(w, "found cost=%g moves=%d", v.Cost(), v.Len())
	case *search.NoSolution:
		if v.Truncated() {
			fmt.Fprint(w, "gave up after expansion cap")
		} else {
			fmt.Fprintf(w, "no path; start region has %d cells", len(m.Grid.ComponentOf(m.Grid.Start())))
		}
	}
	fmt.Fprintf(w, " explored=%d expansions=%d generated=%d stale=%d\n\n",
		len(res.Explored()), st.Expansions, st.Generated, st.StaleSkips)
}
