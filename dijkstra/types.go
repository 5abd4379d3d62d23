// Package dijkstra defines the engine state types and configuration options
// for the incremental Dijkstra stepper.
//
// Options:
//
//	– Source:           ID of the starting vertex (required, must exist in the graph).
//	– Goal:             optional target vertex; drives GoalReached and WithStopAtGoal.
//	– StopAtGoal:       treat the search as done once the goal is finalized.
//	– ReturnPath:       one-shot Dijkstra returns the predecessor map.
//	– MaxDistance:      candidates beyond this cost never enter the frontier.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//	– Logger:           *slog.Logger receiving Debug events for steps and resets.
//	– OnStep / OnReset: hooks handed a copy of the engine state.
//
// Errors (sentinel, reported wrapped in *core.ValidationError):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or goal vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics from the option).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics from the option).
package dijkstra

import (
	"errors"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or goal vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

const (
	// Infinity is the distance of a vertex no path has reached yet.
	Infinity int64 = math.MaxInt64

	// NoPredecessor marks the source and every never-reached vertex.
	NoPredecessor = ""
)

// State is the coarse state of a Stepper.
type State int

const (
	// StateReady means the frontier is non-empty and Step can make progress.
	StateReady State = iota

	// StateDone means the frontier is empty (or the goal was finalized under
	// WithStopAtGoal). Step is a no-op from here until Reset.
	StateDone
)

// String returns "ready" or "done".
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// NodeRecord is the per-vertex bookkeeping of one run.
type NodeRecord struct {
	// Distance is the best known cost from the source (Infinity if unreached).
	Distance int64

	// PreviousDistance is the value Distance held right before its latest update.
	PreviousDistance int64

	// Predecessor is the vertex that produced Distance, or NoPredecessor.
	Predecessor string

	// Finalized is true once Distance is proven optimal; it never flips back
	// until Reset.
	Finalized bool
}

// Reachable reports whether any path has reached the vertex so far.
func (r NodeRecord) Reachable() bool { return r.Distance != Infinity }

// FrontierEntry is one candidate of the open set.
type FrontierEntry struct {
	Node     string
	Distance int64
}

// Relaxation describes one improved tentative distance produced by a step.
type Relaxation struct {
	Node   string // neighbor whose distance improved
	From   string // vertex finalized in this step
	Before int64  // previous distance (may be Infinity)
	After  int64  // new distance
	Queued bool   // true if the neighbor entered the frontier, false if its entry was updated in place
}

// StepResult is what a successful Step reports.
type StepResult struct {
	// Chosen is the vertex finalized by this step.
	Chosen string

	// Relaxed lists neighbors whose distance improved, in edge order.
	Relaxed []Relaxation

	// Snapshot is a deep copy of the engine state after the step.
	Snapshot Snapshot
}

// Options configures the behavior of a Stepper and of the one-shot Dijkstra.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// Goal             – optional goal vertex ID; empty means no goal.
// StopAtGoal       – if true, the stepper is done as soon as Goal is finalized.
// ReturnPath       – if true, Dijkstra returns the predecessor map; otherwise prev is nil.
// MaxDistance      – candidates with cost above this value are not relaxed.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Source           string
	Goal             string
	StopAtGoal       bool
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	Logger           *slog.Logger
	OnStep           func(StepResult)
	OnReset          func(Snapshot)
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithGoal sets the goal vertex used by GoalReached and WithStopAtGoal.
func WithGoal(id string) Option {
	return func(o *Options) {
		o.Goal = id
	}
}

// WithStopAtGoal makes the stepper reach StateDone as soon as the goal is
// finalized, even if the frontier still holds candidates.
func WithStopAtGoal() Option {
	return func(o *Options) {
		o.StopAtGoal = true
	}
}

// WithReturnPath enables generation of the predecessor map in Dijkstra's result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are never queued.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes the engine's Debug events to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithOnStep registers a hook called after every successful Step.
// The hook must not call back into the Stepper.
func WithOnStep(fn func(StepResult)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithOnReset registers a hook called after every Reset with the fresh state.
func WithOnReset(fn func(Snapshot)) Option {
	return func(o *Options) {
		o.OnReset = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex ID.
//
// Defaults:
//   - Goal:             "" (no goal).
//   - StopAtGoal:       false (run until the frontier is empty).
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
//   - Logger:           discards everything.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
