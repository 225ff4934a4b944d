// Package config loads voxpath settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/voxpath/astar"
	"github.com/katalvlaran/voxpath/voxel"
)

// Environment variable names.
const (
	EnvSize      = "VOXPATH_SIZE"
	EnvStart     = "VOXPATH_START"
	EnvGoal      = "VOXPATH_GOAL"
	EnvCornerCut = "VOXPATH_CORNER_CUT"
	EnvHopLimit  = "VOXPATH_HOP_LIMIT"
	EnvLogLevel  = "VOXPATH_LOG_LEVEL"
)

// None is the value that leaves a start or goal unset.
const None = "none"

// ErrBadValue indicates an environment value that cannot be parsed.
var ErrBadValue = errors.New("config: bad value")

// Config holds the settings needed to build a grid and an engine.
type Config struct {
	Size      [3]int      // grid extents x, y, z
	Start     voxel.Coord // start cell, meaningful when HasStart
	HasStart  bool
	Goal      voxel.Coord // goal cell, meaningful when HasGoal
	HasGoal   bool
	CornerCut bool       // allow diagonal corner cutting
	HopLimit  int        // astar stale-hop limit
	LogLevel  slog.Level // minimum level for the CLI logger
}

// Default returns the settings of the classic demo map: 20×15×1 from the
// origin to the far corner, corner cutting off.
func Default() Config {
	return Config{
		Size:     [3]int{20, 15, 1},
		Start:    voxel.C(0, 0, 0),
		HasStart: true,
		Goal:     voxel.C(19, 14, 0),
		HasGoal:  true,
		HopLimit: astar.DefaultStaleHopLimit,
		LogLevel: slog.LevelInfo,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and then builds a Config from it. A missing default
// .env is not an error; a missing named file is.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return Config{}, fmt.Errorf("config: loading %s: %w", strings.Join(envFiles, ", "), err)
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from Default, overriding every variable that lookup
// reports as set.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvSize); ok {
		x, y, z, err := ParseTriple(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrBadValue, EnvSize, err)
		}
		cfg.Size = [3]int{x, y, z}
	}
	if v, ok := lookup(EnvStart); ok {
		c, set, err := ParseEndpoint(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrBadValue, EnvStart, err)
		}
		cfg.Start, cfg.HasStart = c, set
	}
	if v, ok := lookup(EnvGoal); ok {
		c, set, err := ParseEndpoint(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrBadValue, EnvGoal, err)
		}
		cfg.Goal, cfg.HasGoal = c, set
	}
	if v, ok := lookup(EnvCornerCut); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrBadValue, EnvCornerCut, err)
		}
		cfg.CornerCut = b
	}
	if v, ok := lookup(EnvHopLimit); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrBadValue, EnvHopLimit, err)
		}
		if n <= 0 {
			return Config{}, fmt.Errorf("%w: %s must be positive, got %d", ErrBadValue, EnvHopLimit, n)
		}
		cfg.HopLimit = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrBadValue, EnvLogLevel, err)
		}
	}

	return cfg, nil
}

// GridOptions translates the endpoint and corner-cut settings into
// voxel.GridOption values.
func (c Config) GridOptions() []voxel.GridOption {
	opts := []voxel.GridOption{voxel.WithCornerCutting(c.CornerCut)}
	if c.HasStart {
		opts = append(opts, voxel.WithStart(c.Start))
	}
	if c.HasGoal {
		opts = append(opts, voxel.WithGoal(c.Goal))
	}

	return opts
}

// ParseTriple parses "x,y,z" into three integers.
func ParseTriple(s string) (x, y, z int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v [3]int
	for i, p := range parts {
		v[i], err = strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid int '%s': %w", strings.TrimSpace(p), err)
		}
	}

	return v[0], v[1], v[2], nil
}

// ParseEndpoint parses "x,y,z" or "none". set is false for "none".
func ParseEndpoint(s string) (c voxel.Coord, set bool, err error) {
	if strings.EqualFold(strings.TrimSpace(s), None) {
		return voxel.Coord{}, false, nil
	}
	x, y, z, err := ParseTriple(s)
	if err != nil {
		return voxel.Coord{}, false, err
	}

	return voxel.C(x, y, z), true, nil
}
