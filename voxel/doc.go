// Package voxel models a rectangular 3-D lattice of cells for incremental
// A* pathfinding.
//
// What:
//
//   - Grid owns a dense x×y×z block of Cells plus an optional start and goal.
//   - Each Cell carries a wall flag and the search metadata astar leaves on it:
//     closed flag, heuristic h, best cost g and a predecessor coordinate.
//   - Neighbors enumerates the 26 lattice moves (6 straight, 12 planar
//     diagonal, 8 spatial diagonal) with corner-cutting prevention.
//   - Resize shrinks and grows the grid in place, keeping backing storage.
//
// Why:
//
//   - Distances survive between queries: a wall toggle before any search
//     resets a single cell, not the grid.
//   - Renderers read the grid through Cells and Path only.
//
// Costs:
//
//	straight 10, planar diagonal 14 (≈10·√2), spatial diagonal 17 (≈10·√3).
//	Distance(a, b) is the exact cost on an open grid and is the heuristic.
//
// Options:
//
//   - WithStart, WithGoal: initial endpoints.
//   - WithCornerCutting: allow diagonals past blocked framing moves.
//
// Errors:
//
//   - ErrOutOfBounds: coordinate outside the current extents.
//   - ErrBadExtent: an extent below 1 on construction or resize.
//
// Concurrency:
//
//	Grid is not safe for concurrent use. Wrap it in engine.Engine, or hold a
//	single lock around every mutation, search and read.
package voxel
