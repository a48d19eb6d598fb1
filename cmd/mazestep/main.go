// Command mazestep drives a maze session headlessly: it generates a maze,
// solves it with the configured solver, and prints ASCII frames and the
// operation counters.
//
// Settings come from MAZE_* environment variables and an optional .env
// file (see package config); flags override both.
//
//	mazestep -rows 15 -cols 25 -seed 7 -solver wallfollower -frames 40
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazestep/config"
	"github.com/katalvlaran/mazestep/frontier"
	"github.com/katalvlaran/mazestep/generator"
	"github.com/katalvlaran/mazestep/gridgraph"
	"github.com/katalvlaran/mazestep/session"
)

var log = logrus.New()

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.WithError(err).Error("mazestep failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mazestep", flag.ContinueOnError)
	envFile := fs.String("env", ".env", "optional env file")
	rows := fs.Int("rows", 0, "grid height (overrides MAZE_ROWS)")
	cols := fs.Int("cols", 0, "grid width (overrides MAZE_COLS)")
	seed := fs.Int64("seed", 0, "generator seed (overrides MAZE_SEED)")
	mode := fs.String("mode", "", `"tree" or "open" (overrides MAZE_MODE)`)
	solver := fs.String("solver", "", `"frontier" or "wallfollower" (overrides MAZE_SOLVER)`)
	frames := fs.Int("frames", 0, "print a frame every n steps; 0 prints only the final frame")
	export := fs.Bool("metrics", false, "print counters in Prometheus text format")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "seed":
			cfg.Seed, cfg.HasSeed = *seed, true
		case "mode":
			cfg.Mode = *mode
		case "solver":
			cfg.Solver = *solver
		}
	})
	log.SetLevel(cfg.LogLevel)

	m, err := session.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	opts := []session.Option{
		session.WithLogger(log),
		session.WithMode(m),
		session.WithMaxFollowIterations(cfg.FollowCap),
	}
	if cfg.HasSeed {
		opts = append(opts, session.WithSeed(cfg.Seed))
	}
	s, err := session.New(cfg.Rows, cfg.Cols, opts...)
	if err != nil {
		return err
	}

	// 1) Generate.
	for n := 1; ; n++ {
		st, err := s.GenerationStep()
		if err != nil {
			return err
		}
		if st == generator.Complete {
			break
		}
		if *frames > 0 && n%*frames == 0 {
			fmt.Fprintf(out, "generation step %d\n%s\n", n, s.Frame())
		}
	}
	fmt.Fprintf(out, "generated %dx%d maze, end %v\n", s.Rows(), s.Cols(), s.End())
	if err = describe(out, s); err != nil {
		return err
	}

	// 2) Solve.
	switch cfg.Solver {
	case config.SolverWallFollower:
		outcome, err := s.SolveWithWallFollower()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "wall follower: %s\n", outcome)
	default:
		var st frontier.Status
		for n := 1; ; n++ {
			if st, err = s.SolverStep(); err != nil {
				return err
			}
			if st != frontier.Progress {
				break
			}
			if *frames > 0 && n%*frames == 0 {
				fmt.Fprintf(out, "solver step %d\n%s\n", n, s.Frame())
			}
		}
		fmt.Fprintf(out, "frontier: %s, visited %d\n", st, len(s.Visited()))
	}

	// 3) Animate whatever the solver produced.
	total := len(s.Animation())
	for n := 1; s.AdvanceCursor(); n++ {
		if *frames > 0 && n%*frames == 0 {
			fmt.Fprintf(out, "reveal %d/%d\n%s\n", s.Cursor(), total, s.Frame())
		}
	}

	fmt.Fprintf(out, "%s\n", s.Frame())
	snap := s.Metrics()
	fmt.Fprintf(out, "path length %d\nsteps %d\nmain writes %d\naux writes %d (push %d, pop %d)\n",
		len(s.Solution()), snap.Steps, snap.MainMemoryWrites, snap.AuxMemoryWrites, snap.Pushes, snap.Pops)

	if *export {
		return writeMetrics(out, s)
	}
	return nil
}

// describe prints connectivity facts about the generated maze.
func describe(out io.Writer, s *session.Session) error {
	gg, err := s.Graph()
	if err != nil {
		return err
	}
	comps, perfect := len(gg.ConnectedComponents()), gg.IsTree()
	d, err := gg.Distance(s.Start(), s.End())
	if errors.Is(err, gridgraph.ErrNoPath) {
		fmt.Fprintf(out, "components %d, perfect %t, end unreachable\n", comps, perfect)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "components %d, perfect %t, distance %d\n", comps, perfect, d)
	return nil
}

func writeMetrics(out io.Writer, s *session.Session) error {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(s.Collector("mazestep")); err != nil {
		return err
	}
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
