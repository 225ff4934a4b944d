package voxel

import (
	"fmt"
	"iter"
)

// Grid owns a 3-D array of cells, the active start and goal, the
// corner-cutting mode and the last reconstructed path.
type Grid struct {
	cells []Cell

	// backing extents; cells is capX*capY*capZ long
	capX, capY, capZ int
	// usable extents, used for every bounds check and iteration
	sizeX, sizeY, sizeZ int

	start, goal       Coord
	hasStart, hasGoal bool

	cornerCut bool

	path []CellInfo
}

// NewGrid allocates an x×y×z grid of free cells. Heuristics are computed
// against the goal given by WithGoal, or left at zero.
//
// Returns ErrBadExtent if any extent is below 1 and ErrOutOfBounds if the
// start or goal lies outside the grid.
// Complexity: O(x·y·z) time and memory.
func NewGrid(x, y, z int, opts ...GridOption) (*Grid, error) {
	if x < 1 || y < 1 || z < 1 {
		return nil, fmt.Errorf("%w: got %dx%dx%d", ErrBadExtent, x, y, z)
	}
	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{
		sizeX: x, sizeY: y, sizeZ: z,
		capX: x, capY: y, capZ: z,
		cornerCut: cfg.cornerCut,
	}
	if cfg.hasStart && !g.InBounds(cfg.start) {
		return nil, g.boundsErr("start", cfg.start)
	}
	if cfg.hasGoal && !g.InBounds(cfg.goal) {
		return nil, g.boundsErr("goal", cfg.goal)
	}
	g.start, g.hasStart = cfg.start, cfg.hasStart
	g.goal, g.hasGoal = cfg.goal, cfg.hasGoal

	g.cells = make([]Cell, x*y*z)
	for a := 0; a < x; a++ {
		for b := 0; b < y; b++ {
			for c := 0; c < z; c++ {
				pos := Coord{X: a, Y: b, Z: c}
				g.cells[g.index(pos)] = newCell(pos, g.goal, g.hasGoal)
			}
		}
	}

	return g, nil
}

// index maps a coordinate to its slot in the backing slice.
func (g *Grid) index(c Coord) int {
	return (c.X*g.capY+c.Y)*g.capZ + c.Z
}

// cell returns the cell at c without a bounds check.
func (g *Grid) cell(c Coord) *Cell {
	return &g.cells[g.index(c)]
}

// boundsErr wraps ErrOutOfBounds with the offending coordinate.
func (g *Grid) boundsErr(what string, c Coord) error {
	return fmt.Errorf("%w: %s (%s) outside %dx%dx%d", ErrOutOfBounds, what, c, g.sizeX, g.sizeY, g.sizeZ)
}

// InBounds reports whether c lies within the current extents.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.sizeX &&
		c.Y >= 0 && c.Y < g.sizeY &&
		c.Z >= 0 && c.Z < g.sizeZ
}

// Extents returns the current usable size on each axis.
func (g *Grid) Extents() (x, y, z int) {
	return g.sizeX, g.sizeY, g.sizeZ
}

// Capacity returns the size of the backing storage on each axis.
func (g *Grid) Capacity() (x, y, z int) {
	return g.capX, g.capY, g.capZ
}

// Len returns the number of usable cells.
func (g *Grid) Len() int {
	return g.sizeX * g.sizeY * g.sizeZ
}

// CellAt returns the cell at c, or ErrOutOfBounds.
func (g *Grid) CellAt(c Coord) (*Cell, error) {
	if !g.InBounds(c) {
		return nil, g.boundsErr("cell", c)
	}

	return g.cell(c), nil
}

// Cells yields every usable cell in x-major, then y, then z order. The
// sequence is lazy and may be ranged over any number of times; it must not be
// consumed while the grid is being mutated.
func (g *Grid) Cells() iter.Seq[CellInfo] {
	return func(yield func(CellInfo) bool) {
		for x := 0; x < g.sizeX; x++ {
			for y := 0; y < g.sizeY; y++ {
				for z := 0; z < g.sizeZ; z++ {
					if !yield(g.cell(Coord{X: x, Y: y, Z: z}).Info()) {
						return
					}
				}
			}
		}
	}
}

// ToggleWall flips the wall flag of the cell at c.
//
// If a search has already closed the start cell, every distance on the grid
// may now be wrong and the whole grid is reset. Otherwise only the toggled
// cell's search metadata is cleared. The wall flag itself survives both
// resets.
func (g *Grid) ToggleWall(c Coord) error {
	if !g.InBounds(c) {
		return g.boundsErr("wall", c)
	}
	target := g.cell(c)
	target.wall = !target.wall

	if g.hasStart && g.cell(g.start).closed {
		g.Reset(false)
	} else {
		target.init(g.goal, g.hasGoal, false)
	}

	return nil
}

// Start returns the start coordinate, if set.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// Goal returns the goal coordinate, if set.
func (g *Grid) Goal() (Coord, bool) { return g.goal, g.hasGoal }

// SetStart moves the start to c and resets search state. Setting the current
// start again is a no-op.
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return g.boundsErr("start", c)
	}
	if g.hasStart && g.start == c {
		return nil
	}
	g.start, g.hasStart = c, true
	g.Reset(false)

	return nil
}

// ClearStart unsets the start. Search state is kept.
func (g *Grid) ClearStart() {
	g.start, g.hasStart = Coord{}, false
}

// SetGoal moves the goal to c, re-derives every heuristic and resets search
// state. Setting the current goal again is a no-op.
func (g *Grid) SetGoal(c Coord) error {
	if !g.InBounds(c) {
		return g.boundsErr("goal", c)
	}
	if g.hasGoal && g.goal == c {
		return nil
	}
	g.goal, g.hasGoal = c, true
	g.Reset(false)

	return nil
}

// ClearGoal unsets the goal. Heuristics and search state are kept.
func (g *Grid) ClearGoal() {
	g.goal, g.hasGoal = Coord{}, false
}

// CornerCutting reports whether diagonal moves may squeeze past blocked
// framing moves.
func (g *Grid) CornerCutting() bool { return g.cornerCut }

// SetCornerCutting changes the corner-cutting mode. A change alters the
// adjacency, so search state is reset.
func (g *Grid) SetCornerCutting(allow bool) {
	if g.cornerCut == allow {
		return
	}
	g.cornerCut = allow
	g.Reset(false)
}

// Reset clears closed flags, best costs and predecessors on every usable
// cell, re-derives heuristics against the current goal and drops the stored
// path. clearWalls also removes every wall.
// Complexity: O(x·y·z).
func (g *Grid) Reset(clearWalls bool) {
	for x := 0; x < g.sizeX; x++ {
		for y := 0; y < g.sizeY; y++ {
			for z := 0; z < g.sizeZ; z++ {
				g.cell(Coord{X: x, Y: y, Z: z}).init(g.goal, g.hasGoal, clearWalls)
			}
		}
	}
	g.path = nil
}

// Clear removes every wall and unsets start and goal.
func (g *Grid) Clear() {
	g.Reset(true)
	g.ClearGoal()
	g.ClearStart()
}

// Path returns a copy of the last reconstructed path, start first. It is
// empty when no path is known.
func (g *Grid) Path() []CellInfo {
	out := make([]CellInfo, len(g.path))
	copy(out, g.path)

	return out
}

// PathLen returns the number of cells on the stored path.
func (g *Grid) PathLen() int { return len(g.path) }

// SetPath stores p as the current path, replacing any previous one. The
// grid keeps p; callers must not modify it afterwards.
func (g *Grid) SetPath(p []CellInfo) {
	g.path = p
}
