package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/voxpath/voxel"
)

// Search finds a minimal-cost path from the grid's start to its goal and
// stores it on the grid (voxel.Grid.Path). The grid's cells are updated in
// place and keep their metadata for the next call.
//
// Returns:
//
//   - FoundFresh:  a search ran and found a path.
//   - FoundReused: the start was already finalized by an earlier call and the
//     predecessor chain from goal to start is intact; nothing was explored.
//   - NotFound:    no path exists (also reported, without searching, when the
//     start or goal cell is a wall or when an earlier call already exhausted
//     the reachable space).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. g must have a start and a goal (ErrEndpointUnset).
//
// Search panics with an error wrapping ErrClosedCellImproved or
// ErrCorruptPredecessors when the grid's search metadata violates the
// optimality or acyclicity invariants. These are not recoverable: continuing
// would produce silently wrong paths.
//
// Complexity:
//
//   - Time:  O(V·log V) for V usable cells (26 neighbors per expansion).
//   - Space: O(V) for the open set.
func Search(g *voxel.Grid, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid and endpoints.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	start, ok := g.Start()
	if !ok {
		return Result{}, fmt.Errorf("%w: start is unset", ErrEndpointUnset)
	}
	goal, ok := g.Goal()
	if !ok {
		return Result{}, fmt.Errorf("%w: goal is unset", ErrEndpointUnset)
	}
	startCell, err := g.CellAt(start)
	if err != nil {
		return Result{}, fmt.Errorf("astar: start: %w", err)
	}
	goalCell, err := g.CellAt(goal)
	if err != nil {
		return Result{}, fmt.Errorf("astar: goal: %w", err)
	}

	r := &runner{
		g:         g,
		options:   cfg,
		start:     start,
		goal:      goal,
		startCell: startCell,
		goalCell:  goalCell,
		inOpen:    make(map[voxel.Coord]*openItem),
	}

	// 3) A walled endpoint can never be on a path.
	if startCell.Wall() || goalCell.Wall() {
		g.SetPath(nil)
		return Result{Outcome: NotFound}, nil
	}

	// 4) Reuse an earlier result when the grid has not been invalidated.
	if r.finalized() {
		return r.reuse(), nil
	}

	// 5) Fresh search.
	return r.run(), nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       *voxel.Grid
	options Options

	start, goal         voxel.Coord
	startCell, goalCell *voxel.Cell

	open     openSet
	inOpen   map[voxel.Coord]*openItem
	seq      uint64
	expanded int
}

// finalized reports whether an earlier search already settled the start.
// When start and goal coincide, the goal is popped before the start could be
// closed, so a known cost on that cell counts as well.
func (r *runner) finalized() bool {
	if r.startCell.Closed() {
		return true
	}
	_, hasCost := r.startCell.BestCost()

	return r.start == r.goal && hasCost
}

// hopLimit is the effective bound for predecessor walks.
func (r *runner) hopLimit() int {
	return max(r.options.StaleHopLimit, r.g.Len())
}

// reuse validates the predecessor chain left by an earlier search.
func (r *runner) reuse() Result {
	cost, reached := r.goalCell.BestCost()
	if !reached {
		// The earlier search exhausted the open set without touching the goal.
		return Result{Outcome: NotFound}
	}

	limit := r.hopLimit()
	cur := r.goal
	for hops := 0; cur != r.start; hops++ {
		if hops >= limit {
			panic(fmt.Errorf("%w: no return to start %s within %d hops of goal %s",
				ErrCorruptPredecessors, r.start, limit, r.goal))
		}
		cur = r.predecessor(cur)
	}

	return Result{Outcome: FoundReused, Cost: cost}
}

// predecessor returns the predecessor of c, panicking if the chain breaks off
// or leaves the grid.
func (r *runner) predecessor(c voxel.Coord) voxel.Coord {
	cell, err := r.g.CellAt(c)
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrCorruptPredecessors, err))
	}
	prev, ok := cell.Predecessor()
	if !ok {
		panic(fmt.Errorf("%w: chain ends at %s before reaching start %s",
			ErrCorruptPredecessors, c, r.start))
	}

	return prev
}

// run is the core loop: pop the lowest (priority, seq) cell, stop at the goal,
// otherwise close it and relax its neighbors.
func (r *runner) run() Result {
	// 1) Seed the open set with the start at g = 0.
	r.startCell.SetOrigin()
	heap.Init(&r.open)
	r.upsert(r.startCell)

	for r.open.Len() > 0 {
		// 2) Pop the most promising cell.
		item := heap.Pop(&r.open).(*openItem)
		cur := item.cell
		delete(r.inOpen, cur.Coord())

		// 3) Goal reached: rebuild and store the path.
		if cur.Coord() == r.goal {
			cost, _ := cur.BestCost()
			r.g.SetPath(r.reconstruct())

			return Result{Outcome: FoundFresh, Cost: cost, Expanded: r.expanded}
		}

		// 4) Finalize and expand.
		cur.Close()
		r.expanded++
		r.options.OnClose(cur.Coord())
		r.relax(cur)
	}

	// 5) Open set exhausted.
	r.g.SetPath(nil)

	return Result{Outcome: NotFound, Expanded: r.expanded}
}

// relax offers every neighbor of cur a path through cur.
func (r *runner) relax(cur *voxel.Cell) {
	neighbors, err := r.g.Neighbors(cur.Coord())
	if err != nil {
		// cur came out of the open set, so it was in bounds when pushed.
		panic(fmt.Errorf("astar: expanding %s: %w", cur.Coord(), err))
	}
	base, _ := cur.BestCost()

	for _, nb := range neighbors {
		candidate := base + nb.Cost
		if known, ok := nb.Cell.BestCost(); ok && known <= candidate {
			continue
		}
		if nb.Cell.Closed() {
			known, _ := nb.Cell.BestCost()
			panic(fmt.Errorf("%w: %s has g=%d, reached again at %d via %s",
				ErrClosedCellImproved, nb.Cell.Coord(), known, candidate, cur.Coord()))
		}
		nb.Cell.Relax(candidate, cur.Coord())
		r.upsert(nb.Cell)
	}
}

// upsert inserts cell into the open set or moves it to its new priority. A
// moved cell takes a fresh sequence number and queues behind cells already
// waiting at that priority.
func (r *runner) upsert(cell *voxel.Cell) {
	r.seq++
	if item, ok := r.inOpen[cell.Coord()]; ok {
		item.priority = cell.Priority()
		item.seq = r.seq
		heap.Fix(&r.open, item.index)

		return
	}
	item := &openItem{cell: cell, priority: cell.Priority(), seq: r.seq}
	heap.Push(&r.open, item)
	r.inOpen[cell.Coord()] = item
}

// reconstruct walks predecessors from the goal back to the start and returns
// the path start first.
func (r *runner) reconstruct() []voxel.CellInfo {
	limit := r.hopLimit()
	path := []voxel.CellInfo{r.goalCell.Info()}
	cur := r.goal
	for cur != r.start {
		if len(path) > limit {
			panic(fmt.Errorf("%w: path from goal %s exceeds %d cells",
				ErrCorruptPredecessors, r.goal, limit))
		}
		cur = r.predecessor(cur)
		cell, _ := r.g.CellAt(cur)
		path = append(path, cell.Info())
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
