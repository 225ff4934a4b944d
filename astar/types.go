// Package astar defines outcomes, results, options and sentinel errors for
// A* search over a voxel.Grid.
package astar

import (
	"errors"

	"github.com/katalvlaran/voxpath/voxel"
)

// DefaultStaleHopLimit bounds the predecessor walk that validates a previous
// result. It only guards against a corrupted, cyclic chain; the walk is never
// bounded below the grid's cell count, which no acyclic chain can exceed.
const DefaultStaleHopLimit = 2048

// Sentinel errors returned (usage errors) or panicked with (invariant
// violations) by Search.
var (
	// ErrNilGrid indicates that a nil *voxel.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrEndpointUnset indicates that the grid has no start or no goal.
	ErrEndpointUnset = errors.New("astar: start and goal must both be set")

	// ErrBadHopLimit indicates a stale-hop limit of zero or less.
	ErrBadHopLimit = errors.New("astar: stale hop limit must be positive")

	// ErrClosedCellImproved is the panic value (wrapped) when relaxation finds a
	// cheaper path to a cell already closed. With the integral, consistent
	// heuristic this cannot happen; if it does, results are no longer optimal.
	ErrClosedCellImproved = errors.New("astar: closed cell improved")

	// ErrCorruptPredecessors is the panic value (wrapped) when a predecessor
	// chain breaks off or does not lead back to the start within the hop
	// bound.
	ErrCorruptPredecessors = errors.New("astar: predecessor chain is corrupted")
)

// Outcome is the end state of one Search call.
type Outcome int

const (
	// NotFound means no path connects start and goal.
	NotFound Outcome = iota

	// FoundFresh means a search ran and a new path is stored on the grid.
	FoundFresh

	// FoundReused means the grid already held a valid result from an earlier
	// search, so nothing was explored and the stored path is unchanged.
	FoundReused
)

// String returns a short human-readable name.
func (o Outcome) String() string {
	switch o {
	case FoundFresh:
		return "found fresh"
	case FoundReused:
		return "found reused"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Found reports whether o carries a path.
func (o Outcome) Found() bool {
	return o == FoundFresh || o == FoundReused
}

// Result describes one Search call.
//
// Cost is the g value of the goal when a path exists and 0 otherwise.
// Expanded counts cells closed by this call; it is 0 for reused results.
type Result struct {
	Outcome  Outcome
	Cost     int
	Expanded int
}

// Options configures Search.
//
// StaleHopLimit – bound on the predecessor walk of the reuse check (> 0).
// OnClose       – called with every cell coordinate as it is closed.
type Options struct {
	StaleHopLimit int
	OnClose       func(voxel.Coord)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns StaleHopLimit = DefaultStaleHopLimit and a no-op
// OnClose hook.
func DefaultOptions() Options {
	return Options{
		StaleHopLimit: DefaultStaleHopLimit,
		OnClose:       func(voxel.Coord) {},
	}
}

// WithStaleHopLimit overrides DefaultStaleHopLimit.
// Panics with ErrBadHopLimit if n <= 0.
func WithStaleHopLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadHopLimit.Error())
		}
		o.StaleHopLimit = n
	}
}

// WithOnClose registers a hook that observes each closed cell in order.
func WithOnClose(fn func(voxel.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClose = fn
		}
	}
}
