package voxel

// offset is a unit step on the lattice; each component is -1, 0 or +1.
type offset [3]int

// move is one of the 26 candidate steps out of a cell.
//
// requires holds the bits of the framing moves that must have been accepted
// for this move to be offered when corner cutting is off; bit is the move's
// own bit, set once it has been accepted. 3-D diagonals frame nothing and
// carry a zero bit.
type move struct {
	d        offset
	cost     int
	requires uint32
	bit      uint32
}

// moves lists the candidate steps in the order they are tried: six straights
// (+x, -x, +y, -y, +z, -z), twelve planar diagonals (XY, XZ, YZ planes), then
// eight 3-D diagonals. Every framing move precedes the moves it frames.
var moves = buildMoves()

// signs enumerates the two directions along an axis, positive first.
var signs = [2]int{+1, -1}

// straightBit returns the accepted-bit of the straight move along axis
// (0=x, 1=y, 2=z) in direction s.
func straightBit(axis, s int) uint32 {
	i := axis * 2
	if s < 0 {
		i++
	}

	return 1 << uint(i)
}

// planes are the axis pairs of the three planar diagonal families.
var planes = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

// planarBit returns the accepted-bit of the planar diagonal in plane p with
// direction s1 on its first axis and s2 on its second.
func planarBit(p, s1, s2 int) uint32 {
	i := 6 + p*4
	if s1 < 0 {
		i += 2
	}
	if s2 < 0 {
		i++
	}

	return 1 << uint(i)
}

func buildMoves() []move {
	out := make([]move, 0, 26)

	// 1) Straight moves: ±1 on exactly one axis.
	for axis := 0; axis < 3; axis++ {
		for _, s := range signs {
			var d offset
			d[axis] = s
			out = append(out, move{d: d, cost: StraightCost, bit: straightBit(axis, s)})
		}
	}

	// 2) Planar diagonals, framed by the two straight moves on their axes.
	for p, axes := range planes {
		for _, s1 := range signs {
			for _, s2 := range signs {
				var d offset
				d[axes[0]], d[axes[1]] = s1, s2
				out = append(out, move{
					d:        d,
					cost:     Diagonal2DCost,
					requires: straightBit(axes[0], s1) | straightBit(axes[1], s2),
					bit:      planarBit(p, s1, s2),
				})
			}
		}
	}

	// 3) 3-D diagonals, framed by the three planar diagonals they project to.
	for _, sx := range signs {
		for _, sy := range signs {
			for _, sz := range signs {
				out = append(out, move{
					d:        offset{sx, sy, sz},
					cost:     Diagonal3DCost,
					requires: planarBit(0, sx, sy) | planarBit(1, sx, sz) | planarBit(2, sy, sz),
				})
			}
		}
	}

	return out
}

// Neighbors returns every passable cell one step away from c, paired with the
// step cost: 10 straight, 14 planar diagonal, 17 spatial diagonal.
//
// Out-of-bounds and wall cells are never returned. Unless corner cutting is
// enabled, a planar diagonal is offered only when both straight moves framing
// it were accepted, and a spatial diagonal only when all three framing planar
// diagonals were accepted.
//
// The order is deterministic (see moves) but not sorted by cost.
// Returns ErrOutOfBounds if c is outside the current extents.
// Complexity: O(26).
func (g *Grid) Neighbors(c Coord) ([]Neighbor, error) {
	if !g.InBounds(c) {
		return nil, g.boundsErr("neighbors of", c)
	}

	out := make([]Neighbor, 0, len(moves))
	var accepted uint32
	for _, m := range moves {
		to := c.add(m.d)
		if !g.InBounds(to) {
			continue
		}
		if !g.cornerCut && accepted&m.requires != m.requires {
			continue
		}
		cell := g.cell(to)
		if cell.wall {
			continue
		}
		out = append(out, Neighbor{Cell: cell, Cost: m.cost})
		accepted |= m.bit
	}

	return out, nil
}
