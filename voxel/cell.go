package voxel

// Cell is one lattice position together with the search metadata that
// astar keeps on it between queries.
//
// The predecessor is stored as a coordinate, so a Cell never owns or aliases
// another Cell; lookups go through the owning Grid.
type Cell struct {
	pos Coord

	wall   bool
	closed bool

	heuristic int // h: lower bound of the remaining cost to the goal

	bestCost int  // g: cost of the best known path from start
	hasCost  bool // bestCost is meaningful

	pred    Coord // predecessor on the best known path
	hasPred bool
}

// newCell returns a free cell at pos with its heuristic computed against
// goal, or zero when there is no goal.
func newCell(pos Coord, goal Coord, hasGoal bool) Cell {
	c := Cell{pos: pos}
	c.init(goal, hasGoal, true)

	return c
}

// init clears search metadata. clearWall also drops the wall flag. When a
// goal is given the heuristic is re-derived, otherwise it is left as is.
func (c *Cell) init(goal Coord, hasGoal bool, clearWall bool) {
	c.closed = false
	c.bestCost, c.hasCost = 0, false
	c.pred, c.hasPred = Coord{}, false
	if clearWall {
		c.wall = false
	}
	if hasGoal {
		c.heuristic = Distance(c.pos, goal)
	}
}

// Coord returns the cell's position.
func (c *Cell) Coord() Coord { return c.pos }

// Wall reports whether the cell is impassable.
func (c *Cell) Wall() bool { return c.wall }

// Closed reports whether the cell was finalized by the last search.
func (c *Cell) Closed() bool { return c.closed }

// Heuristic returns h, the lower-bound cost from this cell to the goal.
func (c *Cell) Heuristic() int { return c.heuristic }

// BestCost returns g and whether it has been discovered.
func (c *Cell) BestCost() (int, bool) { return c.bestCost, c.hasCost }

// Predecessor returns the previous cell on the best known path, if any.
func (c *Cell) Predecessor() (Coord, bool) { return c.pred, c.hasPred }

// Priority returns f = g + h. Calling it before g is known is a programming
// error and panics.
func (c *Cell) Priority() int {
	if !c.hasCost {
		panic("voxel: Priority called on cell " + c.pos.String() + " without a best cost")
	}

	return c.bestCost + c.heuristic
}

// Info returns the public view of the cell.
func (c *Cell) Info() CellInfo {
	return CellInfo{Coord: c.pos, Wall: c.wall, Closed: c.closed}
}

// SetOrigin marks the cell as the search origin: g = 0, no predecessor.
func (c *Cell) SetOrigin() {
	c.bestCost, c.hasCost = 0, true
	c.pred, c.hasPred = Coord{}, false
}

// Relax records a better path of cost g arriving from pred.
func (c *Cell) Relax(g int, pred Coord) {
	c.bestCost, c.hasCost = g, true
	c.pred, c.hasPred = pred, true
}

// Close marks the cell's best cost as final for the current search.
func (c *Cell) Close() { c.closed = true }

// Distance is the exact cost of the cheapest unobstructed path between a and
// b: as many 3-D diagonals as possible, then 2-D diagonals, then straight
// steps. It never overestimates and is used as the search heuristic.
func Distance(a, b Coord) int {
	d0, d1, d2 := abs(a.X-b.X), abs(a.Y-b.Y), abs(a.Z-b.Z)
	// sort ascending: d0 <= d1 <= d2
	if d0 > d1 {
		d0, d1 = d1, d0
	}
	if d1 > d2 {
		d1, d2 = d2, d1
	}
	if d0 > d1 {
		d0, d1 = d1, d0
	}

	return Diagonal3DCost*d0 + Diagonal2DCost*(d1-d0) + StraightCost*(d2-d1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
