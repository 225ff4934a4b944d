package astar_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxpath/astar"
	"github.com/katalvlaran/voxpath/voxel"
)

// newGrid builds an x×y×z grid with the given endpoints.
func newGrid(t testing.TB, x, y, z int, start, goal voxel.Coord, opts ...voxel.GridOption) *voxel.Grid {
	t.Helper()
	opts = append([]voxel.GridOption{voxel.WithStart(start), voxel.WithGoal(goal)}, opts...)
	g, err := voxel.NewGrid(x, y, z, opts...)
	require.NoError(t, err)

	return g
}

// walls toggles every coordinate in cs.
func walls(t *testing.T, g *voxel.Grid, cs ...voxel.Coord) {
	t.Helper()
	for _, c := range cs {
		require.NoError(t, g.ToggleWall(c))
	}
}

// coords strips a path down to its coordinates.
func coords(path []voxel.CellInfo) []voxel.Coord {
	out := make([]voxel.Coord, len(path))
	for i, c := range path {
		out[i] = c.Coord
	}

	return out
}

// stepCost returns the cost of a single lattice step from a to b, or -1 if
// they are not adjacent.
func stepCost(a, b voxel.Coord) int {
	axes := 0
	for _, d := range [3]int{b.X - a.X, b.Y - a.Y, b.Z - a.Z} {
		switch d {
		case 0:
		case 1, -1:
			axes++
		default:
			return -1
		}
	}
	switch axes {
	case 1:
		return voxel.StraightCost
	case 2:
		return voxel.Diagonal2DCost
	case 3:
		return voxel.Diagonal3DCost
	}

	return -1
}

// assertValidPath checks endpoints, adjacency, walls and the summed cost.
func assertValidPath(t *testing.T, g *voxel.Grid, wantCost int) {
	t.Helper()
	path := g.Path()
	require.NotEmpty(t, path)
	start, _ := g.Start()
	goal, _ := g.Goal()
	assert.Equal(t, start, path[0].Coord, "path starts at start")
	assert.Equal(t, goal, path[len(path)-1].Coord, "path ends at goal")

	sum := 0
	for i := 1; i < len(path); i++ {
		c := stepCost(path[i-1].Coord, path[i].Coord)
		require.Positive(t, c, "step %s -> %s is not a lattice move", path[i-1].Coord, path[i].Coord)
		assert.False(t, path[i].Wall, "path crosses wall at %s", path[i].Coord)
		sum += c
	}
	assert.Equal(t, wantCost, sum, "summed step costs")
}

// requirePanicsWith runs fn and requires a panic whose value is an error
// matching target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected a panic wrapping %v", target)
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	assert.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
}

func TestSearch_Validation(t *testing.T) {
	_, err := astar.Search(nil)
	assert.ErrorIs(t, err, astar.ErrNilGrid)

	g, err := voxel.NewGrid(2, 2, 1, voxel.WithGoal(voxel.C(1, 1, 0)))
	require.NoError(t, err)
	_, err = astar.Search(g)
	assert.ErrorIs(t, err, astar.ErrEndpointUnset)

	g, err = voxel.NewGrid(2, 2, 1, voxel.WithStart(voxel.C(0, 0, 0)))
	require.NoError(t, err)
	_, err = astar.Search(g)
	assert.ErrorIs(t, err, astar.ErrEndpointUnset)
}

func TestSearch_DiagonalShortcut(t *testing.T) {
	g := newGrid(t, 4, 3, 1, voxel.C(0, 0, 0), voxel.C(2, 2, 0))

	res, err := astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.FoundFresh, res.Outcome)
	assert.Equal(t, 28, res.Cost)
	assert.Equal(t, 2, res.Expanded)

	want := []voxel.Coord{voxel.C(0, 0, 0), voxel.C(1, 1, 0), voxel.C(2, 2, 0)}
	if diff := cmp.Diff(want, coords(g.Path())); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	assertValidPath(t, g, 28)
}

func TestSearch_WallColumnBlocks(t *testing.T) {
	g := newGrid(t, 4, 3, 1, voxel.C(0, 0, 0), voxel.C(2, 2, 0))
	walls(t, g, voxel.C(1, 0, 0), voxel.C(1, 1, 0), voxel.C(1, 2, 0))

	res, err := astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.NotFound, res.Outcome)
	assert.Zero(t, res.Cost)
	assert.Empty(t, g.Path())
	assert.Equal(t, 3, res.Expanded, "the whole x=0 column is explored")

	again, err := astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.Result{Outcome: astar.NotFound}, again, "exhaustion is remembered")
}

func TestSearch_RepeatIsReused(t *testing.T) {
	g := newGrid(t, 6, 5, 2, voxel.C(0, 0, 0), voxel.C(5, 4, 1))
	walls(t, g, voxel.C(2, 1, 0), voxel.C(2, 2, 0), voxel.C(2, 3, 0), voxel.C(2, 2, 1))

	first, err := astar.Search(g)
	require.NoError(t, err)
	require.Equal(t, astar.FoundFresh, first.Outcome)
	path := g.Path()

	second, err := astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.Result{Outcome: astar.FoundReused, Cost: first.Cost}, second)
	if diff := cmp.Diff(path, g.Path()); diff != "" {
		t.Errorf("reused path changed (-before +after):\n%s", diff)
	}
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	g := newGrid(t, 3, 3, 3, voxel.C(1, 1, 1), voxel.C(1, 1, 1))

	res, err := astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.Result{Outcome: astar.FoundFresh}, res)
	assert.Equal(t, []voxel.Coord{voxel.C(1, 1, 1)}, coords(g.Path()))

	res, err = astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.FoundReused, res.Outcome)
	assert.Equal(t, []voxel.Coord{voxel.C(1, 1, 1)}, coords(g.Path()))
}

func TestSearch_CornerCutting(t *testing.T) {
	g := newGrid(t, 2, 2, 1, voxel.C(0, 0, 0), voxel.C(1, 1, 0))
	walls(t, g, voxel.C(1, 0, 0), voxel.C(0, 1, 0))

	res, err := astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.NotFound, res.Outcome)

	g.SetCornerCutting(true)
	res, err = astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.FoundFresh, res.Outcome)
	assert.Equal(t, 14, res.Cost)
	assert.Equal(t, []voxel.Coord{voxel.C(0, 0, 0), voxel.C(1, 1, 0)}, coords(g.Path()))
}

func TestSearch_WalledEndpoint(t *testing.T) {
	g := newGrid(t, 3, 1, 1, voxel.C(0, 0, 0), voxel.C(2, 0, 0))
	walls(t, g, voxel.C(0, 0, 0))

	res, err := astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.Result{Outcome: astar.NotFound}, res)
	assert.Empty(t, g.Path())

	walls(t, g, voxel.C(0, 0, 0), voxel.C(2, 0, 0))
	res, err = astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.Result{Outcome: astar.NotFound}, res, "walled goal")

	walls(t, g, voxel.C(2, 0, 0))
	res, err = astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.FoundFresh, res.Outcome)
	assert.Equal(t, 20, res.Cost)
}

func TestSearch_OpenGridMatchesDistance(t *testing.T) {
	var all []voxel.Coord
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				all = append(all, voxel.C(x, y, z))
			}
		}
	}
	for _, s := range all {
		for _, e := range all {
			t.Run(fmt.Sprintf("%s_to_%s", s, e), func(t *testing.T) {
				g := newGrid(t, 3, 3, 3, s, e)
				res, err := astar.Search(g)
				require.NoError(t, err)
				require.Equal(t, astar.FoundFresh, res.Outcome)
				assert.Equal(t, voxel.Distance(s, e), res.Cost)
				assertValidPath(t, g, res.Cost)
			})
		}
	}
}

func TestSearch_TieBreakIsDeterministic(t *testing.T) {
	g := newGrid(t, 3, 3, 1, voxel.C(0, 0, 0), voxel.C(2, 1, 0))
	var closed []voxel.Coord

	res, err := astar.Search(g, astar.WithOnClose(func(c voxel.Coord) { closed = append(closed, c) }))
	require.NoError(t, err)
	assert.Equal(t, astar.Result{Outcome: astar.FoundFresh, Cost: 24, Expanded: 3}, res)
	assert.Equal(t, []voxel.Coord{voxel.C(0, 0, 0), voxel.C(1, 0, 0), voxel.C(2, 1, 0)}, coords(g.Path()))
	assert.Equal(t, []voxel.Coord{voxel.C(0, 0, 0), voxel.C(1, 0, 0), voxel.C(1, 1, 0)}, closed)
	for _, c := range closed {
		cell, err := g.CellAt(c)
		require.NoError(t, err)
		assert.True(t, cell.Closed())
	}
}

func TestSearch_WallOnPathInvalidates(t *testing.T) {
	g := newGrid(t, 4, 3, 1, voxel.C(0, 0, 0), voxel.C(2, 2, 0))
	res, err := astar.Search(g)
	require.NoError(t, err)
	require.Equal(t, 28, res.Cost)

	walls(t, g, voxel.C(1, 1, 0))
	assert.Empty(t, g.Path(), "toggling a wall after a search resets the grid")

	res, err = astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.FoundFresh, res.Outcome)
	assert.Equal(t, 40, res.Cost)
	assert.NotContains(t, coords(g.Path()), voxel.C(1, 1, 0))
	assertValidPath(t, g, 40)
}

func TestSearch_ResizeRoundTrip(t *testing.T) {
	build := func() *voxel.Grid {
		g := newGrid(t, 5, 5, 2, voxel.C(0, 0, 0), voxel.C(2, 2, 0))
		walls(t, g, voxel.C(1, 0, 0), voxel.C(1, 1, 0))
		return g
	}

	ref := build()
	want, err := astar.Search(ref)
	require.NoError(t, err)
	require.Equal(t, astar.FoundFresh, want.Outcome)

	g := build()
	require.NoError(t, g.Resize(3, 3, 1))
	require.NoError(t, g.Resize(5, 5, 2))
	got, err := astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, want.Outcome, got.Outcome)
	assert.Equal(t, want.Cost, got.Cost)
}

func TestSearch_LongCorridorReuse(t *testing.T) {
	const n = 3000 // longer than DefaultStaleHopLimit
	g := newGrid(t, n, 1, 1, voxel.C(0, 0, 0), voxel.C(n-1, 0, 0))

	res, err := astar.Search(g)
	require.NoError(t, err)
	require.Equal(t, astar.FoundFresh, res.Outcome)
	assert.Equal(t, (n-1)*voxel.StraightCost, res.Cost)
	assert.Len(t, g.Path(), n)

	res, err = astar.Search(g)
	require.NoError(t, err)
	assert.Equal(t, astar.FoundReused, res.Outcome)
}

func TestSearch_CorruptChainPanics(t *testing.T) {
	t.Run("Cycle", func(t *testing.T) {
		g := newGrid(t, 3, 1, 1, voxel.C(0, 0, 0), voxel.C(2, 0, 0))
		_, err := astar.Search(g)
		require.NoError(t, err)

		goal, err := g.CellAt(voxel.C(2, 0, 0))
		require.NoError(t, err)
		goal.Relax(20, voxel.C(2, 0, 0))

		requirePanicsWith(t, astar.ErrCorruptPredecessors, func() {
			_, _ = astar.Search(g, astar.WithStaleHopLimit(5))
		})
	})
	t.Run("BrokenLink", func(t *testing.T) {
		g := newGrid(t, 3, 1, 1, voxel.C(0, 0, 0), voxel.C(2, 0, 0))
		_, err := astar.Search(g)
		require.NoError(t, err)

		mid, err := g.CellAt(voxel.C(1, 0, 0))
		require.NoError(t, err)
		mid.SetOrigin()

		requirePanicsWith(t, astar.ErrCorruptPredecessors, func() {
			_, _ = astar.Search(g)
		})
	})
}

func TestSearch_ClosedCellImprovedPanics(t *testing.T) {
	g := newGrid(t, 3, 1, 1, voxel.C(0, 0, 0), voxel.C(2, 0, 0))
	mid, err := g.CellAt(voxel.C(1, 0, 0))
	require.NoError(t, err)
	mid.Relax(100, voxel.C(0, 0, 0))
	mid.Close()

	requirePanicsWith(t, astar.ErrClosedCellImproved, func() {
		_, _ = astar.Search(g)
	})
}

func TestWithStaleHopLimit_Invalid(t *testing.T) {
	g := newGrid(t, 2, 1, 1, voxel.C(0, 0, 0), voxel.C(1, 0, 0))
	assert.PanicsWithValue(t, astar.ErrBadHopLimit.Error(), func() {
		_, _ = astar.Search(g, astar.WithStaleHopLimit(0))
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "not found", astar.NotFound.String())
	assert.Equal(t, "found fresh", astar.FoundFresh.String())
	assert.Equal(t, "found reused", astar.FoundReused.String())
	assert.Equal(t, "unknown", astar.Outcome(9).String())
	assert.False(t, astar.NotFound.Found())
	assert.True(t, astar.FoundReused.Found())
}
