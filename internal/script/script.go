// Package script interprets a small line-oriented command language that
// drives an engine.Engine. It is the text front-end used by cmd/voxpath and
// by tests that replay scenarios.
//
// One command per line; blank lines and lines starting with '#' are skipped:
//
//	size X Y Z          resize the grid
//	wall X Y Z          toggle a wall
//	start X Y Z|none    set or clear the start
//	goal X Y Z|none     set or clear the goal
//	cut on|off          corner-cutting mode
//	reset [walls]       clear search state (and walls)
//	clear               clear walls, start and goal
//	search              run the search and print the outcome
//	path                print the stored path, one x,y,z per line
//	cells               print every cell as "x,y,z wall closed"
//	show Z              print layer Z as ASCII
//	session             print the engine session id
//
// Coordinates may also be written as a single "x,y,z" argument.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/voxpath/engine"
	"github.com/katalvlaran/voxpath/internal/config"
	"github.com/katalvlaran/voxpath/voxel"
)

// Sentinel errors for script execution.
var (
	// ErrUnknownCommand indicates a command word the interpreter does not know.
	ErrUnknownCommand = errors.New("script: unknown command")

	// ErrBadArgs indicates a known command with malformed arguments.
	ErrBadArgs = errors.New("script: bad arguments")
)

// Layer glyphs printed by the show command.
const (
	GlyphFree   = '.'
	GlyphWall   = '#'
	GlyphClosed = '+'
	GlyphPath   = '*'
	GlyphStart  = 'S'
	GlyphGoal   = 'G'
)

// Interpreter executes commands against one engine and writes their output
// to out.
type Interpreter struct {
	eng    *engine.Engine
	out    io.Writer
	strict bool
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithStrict makes Run stop at the first failing line.
func WithStrict() Option {
	return func(in *Interpreter) { in.strict = true }
}

// New returns an interpreter for eng writing to out.
func New(eng *engine.Engine, out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{eng: eng, out: out}
	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Run executes every line from r. Failing lines are reported on out as
// "line N: error: ..." and skipped, unless the interpreter is strict, in which
// case the first failure is returned. It returns the number of failed lines.
func (in *Interpreter) Run(r io.Reader) (failed int, err error) {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := in.Exec(sc.Text()); err != nil {
			failed++
			if in.strict {
				return failed, fmt.Errorf("line %d: %w", n, err)
			}
			fmt.Fprintf(in.out, "line %d: error: %v\n", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return failed, fmt.Errorf("script: reading input: %w", err)
	}

	return failed, nil
}

// Exec executes a single command line.
func (in *Interpreter) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "size":
		x, y, z, err := triple(args)
		if err != nil {
			return err
		}
		return in.eng.Resize(x, y, z)

	case "wall":
		c, err := coord(args)
		if err != nil {
			return err
		}
		return in.eng.ToggleWall(c)

	case "start", "goal":
		if len(args) == 1 && strings.EqualFold(args[0], config.None) {
			if cmd == "start" {
				in.eng.ClearStart()
			} else {
				in.eng.ClearGoal()
			}
			return nil
		}
		c, err := coord(args)
		if err != nil {
			return err
		}
		if cmd == "start" {
			return in.eng.SetStart(c)
		}
		return in.eng.SetGoal(c)

	case "cut":
		if len(args) != 1 {
			return fmt.Errorf("%w: cut on|off", ErrBadArgs)
		}
		switch strings.ToLower(args[0]) {
		case "on":
			in.eng.SetCornerCutting(true)
		case "off":
			in.eng.SetCornerCutting(false)
		default:
			return fmt.Errorf("%w: cut on|off, got %q", ErrBadArgs, args[0])
		}
		return nil

	case "reset":
		switch {
		case len(args) == 0:
			in.eng.Reset(false)
		case len(args) == 1 && strings.EqualFold(args[0], "walls"):
			in.eng.Reset(true)
		default:
			return fmt.Errorf("%w: reset [walls]", ErrBadArgs)
		}
		return nil

	case "clear":
		in.eng.Clear()
		return nil

	case "search":
		res, err := in.eng.Search()
		if err != nil {
			return err
		}
		if res.Outcome.Found() {
			fmt.Fprintf(in.out, "%s cost=%d expanded=%d\n", res.Outcome, res.Cost, res.Expanded)
		} else {
			fmt.Fprintf(in.out, "%s expanded=%d\n", res.Outcome, res.Expanded)
		}
		return nil

	case "path":
		for _, c := range in.eng.Path() {
			fmt.Fprintln(in.out, c.Coord)
		}
		return nil

	case "cells":
		for _, c := range in.eng.Cells() {
			fmt.Fprintf(in.out, "%s %t %t\n", c.Coord, c.Wall, c.Closed)
		}
		return nil

	case "show":
		if len(args) != 1 {
			return fmt.Errorf("%w: show Z", ErrBadArgs)
		}
		z, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: show Z: %w", ErrBadArgs, err)
		}
		return in.show(z)

	case "session":
		fmt.Fprintln(in.out, in.eng.ID())
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
}

// show prints layer z, highest y first so the picture reads like a map.
func (in *Interpreter) show(z int) error {
	var err error
	in.eng.View(func(g *voxel.Grid) {
		sx, sy, sz := g.Extents()
		if z < 0 || z >= sz {
			err = fmt.Errorf("%w: layer %d outside 0..%d", voxel.ErrOutOfBounds, z, sz-1)
			return
		}
		onPath := make(map[voxel.Coord]bool, g.PathLen())
		for _, c := range g.Path() {
			onPath[c.Coord] = true
		}
		start, hasStart := g.Start()
		goal, hasGoal := g.Goal()

		var b strings.Builder
		for y := sy - 1; y >= 0; y-- {
			for x := 0; x < sx; x++ {
				pos := voxel.C(x, y, z)
				cell, _ := g.CellAt(pos)
				switch {
				case hasStart && pos == start:
					b.WriteByte(GlyphStart)
				case hasGoal && pos == goal:
					b.WriteByte(GlyphGoal)
				case cell.Wall():
					b.WriteByte(GlyphWall)
				case onPath[pos]:
					b.WriteByte(GlyphPath)
				case cell.Closed():
					b.WriteByte(GlyphClosed)
				default:
					b.WriteByte(GlyphFree)
				}
			}
			b.WriteByte('\n')
		}
		_, err = io.WriteString(in.out, b.String())
	})

	return err
}

// triple parses "X Y Z" or "x,y,z".
func triple(args []string) (x, y, z int, err error) {
	switch len(args) {
	case 1:
		x, y, z, err = config.ParseTriple(args[0])
	case 3:
		x, y, z, err = config.ParseTriple(strings.Join(args, ","))
	default:
		err = fmt.Errorf("want X Y Z, got %d arguments", len(args))
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %w", ErrBadArgs, err)
	}

	return x, y, z, nil
}

func coord(args []string) (voxel.Coord, error) {
	x, y, z, err := triple(args)
	if err != nil {
		return voxel.Coord{}, err
	}

	return voxel.C(x, y, z), nil
}
