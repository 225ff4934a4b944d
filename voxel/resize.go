package voxel

import "fmt"

// Resize changes the usable extents to x×y×z, shrinking first and then
// growing, each axis independently.
//
// Shrinking truncates the high end of an axis. Backing storage is kept, but
// a cell re-exposed by a later grow starts out exactly like a new cell, so
// walls beyond the shrink boundary are lost. A start or goal that falls
// outside the new extents is unset.
//
// Growing adds free cells whose heuristic is computed against the current
// goal. Search state on the whole grid is reset in either case.
//
// Returns ErrBadExtent, leaving the grid untouched, if any extent is below 1.
// Complexity: O(x·y·z), plus a copy of the usable cells when the backing
// storage must grow.
func (g *Grid) Resize(x, y, z int) error {
	if x < 1 || y < 1 || z < 1 {
		return fmt.Errorf("%w: resize to %dx%dx%d", ErrBadExtent, x, y, z)
	}
	g.shrink(x, y, z)
	g.grow(x, y, z)

	return nil
}

// shrink truncates every axis longer than requested, drops a start or goal
// that no longer fits and resets search state.
func (g *Grid) shrink(x, y, z int) {
	g.sizeX = min(g.sizeX, x)
	g.sizeY = min(g.sizeY, y)
	g.sizeZ = min(g.sizeZ, z)

	if g.hasGoal && !g.InBounds(g.goal) {
		g.ClearGoal()
	}
	if g.hasStart && !g.InBounds(g.start) {
		g.ClearStart()
	}

	g.Reset(false)
}

// grow extends every axis shorter than requested. The reset happens before
// the new cells appear, so old and new cells share a clean search state.
func (g *Grid) grow(x, y, z int) {
	g.Reset(false)
	if x <= g.sizeX && y <= g.sizeY && z <= g.sizeZ {
		return
	}
	g.reserve(x, y, z)

	oldX, oldY, oldZ := g.sizeX, g.sizeY, g.sizeZ
	g.sizeX = max(g.sizeX, x)
	g.sizeY = max(g.sizeY, y)
	g.sizeZ = max(g.sizeZ, z)

	for a := 0; a < g.sizeX; a++ {
		for b := 0; b < g.sizeY; b++ {
			for c := 0; c < g.sizeZ; c++ {
				if a < oldX && b < oldY && c < oldZ {
					continue
				}
				pos := Coord{X: a, Y: b, Z: c}
				*g.cell(pos) = newCell(pos, g.goal, g.hasGoal)
			}
		}
	}
}

// reserve makes the backing storage at least x×y×z, moving the usable cells
// into the new layout. Cells hidden by an earlier shrink are not carried over.
func (g *Grid) reserve(x, y, z int) {
	nx, ny, nz := max(g.capX, x), max(g.capY, y), max(g.capZ, z)
	if nx == g.capX && ny == g.capY && nz == g.capZ {
		return
	}

	cells := make([]Cell, nx*ny*nz)
	for a := 0; a < g.sizeX; a++ {
		for b := 0; b < g.sizeY; b++ {
			for c := 0; c < g.sizeZ; c++ {
				cells[(a*ny+b)*nz+c] = *g.cell(Coord{X: a, Y: b, Z: c})
			}
		}
	}
	g.cells = cells
	g.capX, g.capY, g.capZ = nx, ny, nz
}
