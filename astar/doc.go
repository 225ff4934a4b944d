// Package astar implements incremental A* search on a voxel.Grid.
//
// Overview:
//
//   - Search reads the grid's start and goal, explores cells in order of
//     f = g + h and writes the path back onto the grid.
//   - Search metadata (closed flags, g, predecessors) stays on the cells. A
//     second call without intervening mutation validates the old predecessor
//     chain instead of searching again and reports FoundReused.
//   - The open set is a binary heap keyed by (f, insertion sequence), so among
//     equal f the earliest inserted cell wins and results are deterministic.
//
// Invariants:
//
//   - A closed cell is never improved. The heuristic (voxel.Distance) is
//     consistent for the three integral step costs, so a violation means the
//     grid was mutated behind the searcher's back; Search panics with
//     ErrClosedCellImproved.
//   - Predecessor chains are acyclic. The reuse check and path reconstruction
//     walk at most max(StaleHopLimit, cells) links and panic with
//     ErrCorruptPredecessors otherwise.
//
// Options:
//
//   - WithStaleHopLimit(n): bound for the reuse walk (default 2048).
//   - WithOnClose(fn):      observe cells as they are closed.
//
// Errors (returned):
//
//   - ErrNilGrid:       nil grid.
//   - ErrEndpointUnset: start or goal missing.
//
// Thread safety:
//
//   - Search mutates nearly every cell it touches. Callers must hold the
//     grid's exclusive lock for the whole call (see package engine).
//
// Example:
//
//	g, _ := voxel.NewGrid(4, 3, 1, voxel.WithStart(voxel.C(0, 0, 0)), voxel.WithGoal(voxel.C(2, 2, 0)))
//	res, err := astar.Search(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Outcome, res.Cost) // found fresh 28
package astar
