// Package engine serializes every mutation, search and read of a voxel.Grid
// behind a single mutex, and logs what happens to it.
//
// The core packages (voxel, astar) hold no locks: a search touches nearly
// every cell, so a concurrent wall toggle or resize would break the
// optimality invariant. Engine is the one lock scoped to the grid instance
// that front-ends share.
package engine

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/voxpath/astar"
	"github.com/katalvlaran/voxpath/voxel"
)

// ErrNilGrid indicates that New was called without a grid.
var ErrNilGrid = errors.New("engine: grid is nil")

// Engine is a mutex-guarded session over one grid.
//
// Reads return copies so callers never observe a grid mid-mutation. Use View
// to run arbitrary read code under the lock.
type Engine struct {
	mu   sync.Mutex
	grid *voxel.Grid

	id         uuid.UUID
	log        *slog.Logger
	searchOpts []astar.Option
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. Mutations are logged at Debug,
// search outcomes at Info. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSearchOptions passes options to every astar.Search call.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(e *Engine) { e.searchOpts = append(e.searchOpts, opts...) }
}

// WithSessionID overrides the random session id attached to log records.
func WithSessionID(id uuid.UUID) Option {
	return func(e *Engine) { e.id = id }
}

// New wraps g. The engine takes ownership: g must not be used directly
// afterwards.
func New(g *voxel.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	e := &Engine{
		grid: g,
		id:   uuid.New(),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With(slog.String("component", "engine"), slog.String("session", e.id.String()))

	return e, nil
}

// ID returns the session id.
func (e *Engine) ID() uuid.UUID { return e.id }

// ToggleWall flips the wall at c.
func (e *Engine) ToggleWall(c voxel.Coord) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.grid.ToggleWall(c); err != nil {
		return err
	}
	cell, _ := e.grid.CellAt(c)
	e.log.Debug("wall toggled", slog.String("cell", c.String()), slog.Bool("wall", cell.Wall()))

	return nil
}

// SetStart moves the start to c.
func (e *Engine) SetStart(c voxel.Coord) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.grid.SetStart(c); err != nil {
		return err
	}
	e.log.Debug("start set", slog.String("cell", c.String()))

	return nil
}

// ClearStart unsets the start.
func (e *Engine) ClearStart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.grid.ClearStart()
	e.log.Debug("start cleared")
}

// SetGoal moves the goal to c.
func (e *Engine) SetGoal(c voxel.Coord) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.grid.SetGoal(c); err != nil {
		return err
	}
	e.log.Debug("goal set", slog.String("cell", c.String()))

	return nil
}

// ClearGoal unsets the goal.
func (e *Engine) ClearGoal() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.grid.ClearGoal()
	e.log.Debug("goal cleared")
}

// Resize changes the grid extents.
func (e *Engine) Resize(x, y, z int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.grid.Resize(x, y, z); err != nil {
		return err
	}
	e.log.Debug("resized", slog.Int("x", x), slog.Int("y", y), slog.Int("z", z))

	return nil
}

// Reset clears search state, and walls too if clearWalls is set.
func (e *Engine) Reset(clearWalls bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.grid.Reset(clearWalls)
	e.log.Debug("reset", slog.Bool("walls", clearWalls))
}

// Clear removes all walls and unsets start and goal.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.grid.Clear()
	e.log.Debug("cleared")
}

// SetCornerCutting switches the corner-cutting mode.
func (e *Engine) SetCornerCutting(allow bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.grid.SetCornerCutting(allow)
	e.log.Debug("corner cutting", slog.Bool("allow", allow))
}

// Search runs astar.Search under the lock. Internal-consistency panics from
// astar propagate after the lock is released.
func (e *Engine) Search() (astar.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := astar.Search(e.grid, e.searchOpts...)
	if err != nil {
		e.log.Warn("search rejected", slog.String("error", err.Error()))
		return res, err
	}
	e.log.Info("search",
		slog.String("outcome", res.Outcome.String()),
		slog.Int("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
		slog.Int("path", e.grid.PathLen()),
	)

	return res, nil
}

// Cells returns a snapshot of every usable cell in x, y, z order.
func (e *Engine) Cells() []voxel.CellInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]voxel.CellInfo, 0, e.grid.Len())
	for info := range e.grid.Cells() {
		out = append(out, info)
	}

	return out
}

// Path returns a copy of the stored path.
func (e *Engine) Path() []voxel.CellInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.grid.Path()
}

// Extents returns the usable size on each axis.
func (e *Engine) Extents() (x, y, z int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.grid.Extents()
}

// Start returns the start, if set.
func (e *Engine) Start() (voxel.Coord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.grid.Start()
}

// Goal returns the goal, if set.
func (e *Engine) Goal() (voxel.Coord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.grid.Goal()
}

// CornerCutting reports the corner-cutting mode.
func (e *Engine) CornerCutting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.grid.CornerCutting()
}

// View runs fn with the grid while holding the lock. fn must not retain g or
// call back into the engine.
func (e *Engine) View(fn func(g *voxel.Grid)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn(e.grid)
}
