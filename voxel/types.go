// Package voxel defines core types, step costs, options, and sentinel errors
// for the voxel subpackage of github.com/katalvlaran/voxpath.
package voxel

import (
	"errors"
	"fmt"
)

// Sentinel errors for voxel grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the grid's current extents.
	ErrOutOfBounds = errors.New("voxel: coordinate out of bounds")

	// ErrBadExtent indicates a requested grid extent below 1 on some axis.
	ErrBadExtent = errors.New("voxel: extent must be at least 1 on every axis")
)

// Step costs for the three move classes.
const (
	// StraightCost is the cost of a move along exactly one axis.
	StraightCost = 10

	// Diagonal2DCost is the cost of a move along exactly two axes (10·√2 rounded).
	Diagonal2DCost = 14

	// Diagonal3DCost is the cost of a move along all three axes (10·√3 rounded).
	Diagonal3DCost = 17
)

// Coord addresses one lattice position.
type Coord struct {
	X, Y, Z int
}

// C is shorthand for Coord{X: x, Y: y, Z: z}.
func C(x, y, z int) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// String renders the coordinate as "x,y,z".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

func (c Coord) add(d offset) Coord {
	return Coord{X: c.X + d[0], Y: c.Y + d[1], Z: c.Z + d[2]}
}

// CellInfo is the public, read-only view of a cell used for iteration and
// for stored paths.
type CellInfo struct {
	Coord
	Wall   bool // cell is impassable
	Closed bool // cell was finalized by the last search
}

// Neighbor is one passable cell adjacent to a queried cell, with the cost of
// the step that reaches it.
type Neighbor struct {
	Cell *Cell
	Cost int
}

// GridOption configures a Grid before its cells are allocated.
type GridOption func(*gridConfig)

type gridConfig struct {
	start, goal       Coord
	hasStart, hasGoal bool
	cornerCut         bool
}

// WithStart sets the initial start coordinate.
func WithStart(c Coord) GridOption {
	return func(cfg *gridConfig) {
		cfg.start = c
		cfg.hasStart = true
	}
}

// WithGoal sets the initial goal coordinate. Every cell's heuristic is
// computed against it at allocation time.
func WithGoal(c Coord) GridOption {
	return func(cfg *gridConfig) {
		cfg.goal = c
		cfg.hasGoal = true
	}
}

// WithCornerCutting permits diagonal moves whose framing moves are blocked.
// Default is false.
func WithCornerCutting(allow bool) GridOption {
	return func(cfg *gridConfig) { cfg.cornerCut = allow }
}
