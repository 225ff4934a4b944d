// Command voxpath drives the incremental 3-D A* engine from a command script.
//
// Settings come from VOXPATH_* environment variables (optionally loaded from
// a .env file) and may be overridden by flags. Commands are read from -script
// or from stdin; see package internal/script for the language.
//
//	echo -e "search\nshow 0" | voxpath -size 8,6,1 -goal 7,5,0
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/katalvlaran/voxpath/astar"
	"github.com/katalvlaran/voxpath/engine"
	"github.com/katalvlaran/voxpath/internal/config"
	"github.com/katalvlaran/voxpath/internal/script"
	"github.com/katalvlaran/voxpath/voxel"
)

func main() {
	envFile := flag.String("env", "", "path to a .env file (default: ./.env if present)")
	size := flag.String("size", "", "grid extents x,y,z (overrides "+config.EnvSize+")")
	start := flag.String("start", "", "start x,y,z or none (overrides "+config.EnvStart+")")
	goal := flag.String("goal", "", "goal x,y,z or none (overrides "+config.EnvGoal+")")
	cut := flag.Bool("cut", false, "allow diagonal corner cutting (overrides "+config.EnvCornerCut+")")
	scriptPath := flag.String("script", "", "command script to run (default: stdin)")
	strict := flag.Bool("strict", false, "stop at the first failing command")
	verbose := flag.Bool("v", false, "log at debug level")
	flag.Parse()

	var (
		cfg config.Config
		err error
	)
	if *envFile != "" {
		cfg, err = config.Load(*envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := applyFlags(&cfg, *size, *start, *goal); err != nil {
		log.Fatalf("flags: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "cut" {
			cfg.CornerCut = *cut
		}
	})
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	grid, err := voxel.NewGrid(cfg.Size[0], cfg.Size[1], cfg.Size[2], cfg.GridOptions()...)
	if err != nil {
		log.Fatalf("grid: %v", err)
	}
	eng, err := engine.New(grid,
		engine.WithLogger(logger),
		engine.WithSearchOptions(astar.WithStaleHopLimit(cfg.HopLimit)),
	)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	logger.Info("voxpath ready",
		slog.String("session", eng.ID().String()),
		slog.Int("x", cfg.Size[0]), slog.Int("y", cfg.Size[1]), slog.Int("z", cfg.Size[2]),
		slog.Bool("corner_cut", cfg.CornerCut),
	)

	var in io.Reader = os.Stdin
	if *scriptPath != "" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			log.Fatalf("script: %v", err)
		}
		defer f.Close()
		in = f
	}

	var opts []script.Option
	if *strict {
		opts = append(opts, script.WithStrict())
	}
	failed, err := script.New(eng, os.Stdout, opts...).Run(in)
	if err != nil {
		logger.Error("script aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if failed > 0 {
		logger.Warn("script finished with errors", slog.Int("failed", failed))
		os.Exit(2)
	}
}

// applyFlags overrides cfg with every non-empty flag value.
func applyFlags(cfg *config.Config, size, start, goal string) error {
	if size != "" {
		x, y, z, err := config.ParseTriple(size)
		if err != nil {
			return fmt.Errorf("-size: %w", err)
		}
		cfg.Size = [3]int{x, y, z}
	}
	if start != "" {
		c, set, err := config.ParseEndpoint(start)
		if err != nil {
			return fmt.Errorf("-start: %w", err)
		}
		cfg.Start, cfg.HasStart = c, set
	}
	if goal != "" {
		c, set, err := config.ParseEndpoint(goal)
		if err != nil {
			return fmt.Errorf("-goal: %w", err)
		}
		cfg.Goal, cfg.HasGoal = c, set
	}

	return nil
}
