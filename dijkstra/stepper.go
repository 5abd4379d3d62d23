// Package dijkstra implements Dijkstra's shortest-path algorithm as a
// resumable state machine.
//
// A Stepper performs exactly one relaxation round per Step call:
//
//  1. Pop the frontier entry with the smallest distance (earliest insertion wins ties).
//  2. Finalize it: set Finalized, append it to the closed list.
//  3. Relax every outgoing edge towards a non-finalized neighbor, updating the
//     neighbor's frontier entry in place or queueing a new one.
//
// Notes on implementation choices:
//
//   - The frontier is an indexed heap with decrease-key (heap.Fix), not the
//     lazy-duplicate heap of a one-shot run, so a snapshot never shows the
//     same vertex twice.
//   - Per-vertex state lives in slices addressed by the graph's dense index.
//   - The closed set is a sparse set over dense indices; its content order is
//     the finalization order.
package dijkstra

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/rhartert/sparsesets"

	"github.com/ADIZdotcam/dijkstra/core"
)

// Stepper owns the mutable state of one Dijkstra run over an immutable graph.
// It is not safe for concurrent use; create one Stepper per run instead.
type Stepper struct {
	g       *core.Graph
	options Options
	log     *slog.Logger

	source int // dense index of Options.Source
	goal   int // dense index of Options.Goal, -1 if none

	records     []NodeRecord
	closed      *sparsesets.Set
	front       *frontier
	chosen      string
	goalReached bool
	state       State
}

// NewStepper validates the configuration and returns a Stepper in its
// initial state: frontier = {(source, 0)}, nothing closed, every record at
// Infinity except the source.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. g must contain Goal, if one is set (ErrVertexNotFound).
//
// Every failure is a *core.ValidationError; no Stepper is returned with it.
func NewStepper(g *core.Graph, opts ...Option) (*Stepper, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultOptions("").Logger
	}

	if cfg.Source == "" {
		return nil, core.Invalid("source", ErrEmptySource)
	}
	if g == nil {
		return nil, core.Invalid("graph", ErrNilGraph)
	}
	source, ok := g.Index(cfg.Source)
	if !ok {
		return nil, core.Invalid(fmt.Sprintf("source %q", cfg.Source), ErrVertexNotFound)
	}
	goal := -1
	if cfg.Goal != "" {
		if goal, ok = g.Index(cfg.Goal); !ok {
			return nil, core.Invalid(fmt.Sprintf("goal %q", cfg.Goal), ErrVertexNotFound)
		}
	}

	s := &Stepper{
		g:       g,
		options: cfg,
		log:     cfg.Logger,
		source:  source,
		goal:    goal,
		records: make([]NodeRecord, g.Order()),
		closed:  sparsesets.New(g.Order()),
		front:   newFrontier(g.Order()),
	}
	s.init()

	return s, nil
}

// init rebuilds the initial state. The frontier is replaced wholesale.
func (s *Stepper) init() {
	for i := range s.records {
		s.records[i] = NodeRecord{
			Distance:         Infinity,
			PreviousDistance: Infinity,
			Predecessor:      NoPredecessor,
		}
	}
	s.records[s.source].Distance = 0
	s.records[s.source].PreviousDistance = 0

	s.closed.Clear()
	s.front = newFrontier(s.g.Order())
	s.front.upsert(s.source, 0)

	s.chosen = NoPredecessor
	s.goalReached = false
	s.state = StateReady
}

// Reset discards the current run and returns to the initial state.
// Valid from any state; always succeeds.
func (s *Stepper) Reset() {
	s.init()
	s.log.Debug("dijkstra: reset", "source", s.options.Source)

	if s.options.OnReset != nil {
		s.options.OnReset(s.Snapshot())
	}
}

// Step advances the algorithm by one relaxation round.
//
// It returns false, and leaves the state untouched, once the stepper is done;
// calling it again is always safe.
func (s *Stepper) Step() (StepResult, bool) {
	if s.state == StateDone {
		s.log.Debug("dijkstra: step ignored, search is done", "iteration", s.Iteration())
		return StepResult{}, false
	}

	// 1) Select and remove the closest candidate.
	item, ok := s.front.popMin()
	if !ok {
		s.state = StateDone
		return StepResult{}, false
	}
	u := item.node

	// 2) Its distance is final now.
	s.records[u].Finalized = true
	s.closed.Insert(u)
	s.chosen = s.g.Node(u)
	if u == s.goal {
		s.goalReached = true
	}

	s.log.Debug("dijkstra: vertex finalized",
		"iteration", s.Iteration(),
		"vertex", s.chosen,
		"distance", s.records[u].Distance,
		"via", s.records[u].Predecessor,
	)

	// 3) Relax outgoing edges.
	relaxed := s.relax(u)

	// 4) Decide the next state.
	if s.front.len() == 0 || (s.options.StopAtGoal && s.goalReached) {
		s.state = StateDone
		s.log.Debug("dijkstra: search done", "closed", s.Iteration(), "goal_reached", s.goalReached)
	}

	res := StepResult{
		Chosen:   s.chosen,
		Relaxed:  relaxed,
		Snapshot: s.Snapshot(),
	}
	if s.options.OnStep != nil {
		s.options.OnStep(res)
	}

	return res, true
}

// relax examines each edge leaving u and improves the tentative distance of
// non-finalized neighbors. It assumes records[u] is finalized.
func (s *Stepper) relax(u int) []Relaxation {
	var relaxed []Relaxation
	from := s.g.Node(u)
	d := s.records[u].Distance

	s.g.EachOutgoing(from, func(e core.Edge) bool {
		v, _ := s.g.Index(e.To)
		if s.closed.Contains(v) {
			return true
		}

		// Impassable or would overflow.
		if e.Weight >= s.options.InfEdgeThreshold || e.Weight > Infinity-d {
			return true
		}

		candidate := d + e.Weight
		if candidate > s.options.MaxDistance {
			return true
		}

		// Strictly better only; equal costs keep the first predecessor found.
		rec := &s.records[v]
		if candidate >= rec.Distance {
			return true
		}

		rec.PreviousDistance = rec.Distance
		rec.Distance = candidate
		rec.Predecessor = from
		queued := s.front.upsert(v, candidate)

		relaxed = append(relaxed, Relaxation{
			Node:   e.To,
			From:   from,
			Before: rec.PreviousDistance,
			After:  candidate,
			Queued: queued,
		})
		s.log.Debug("dijkstra: relaxed",
			"vertex", e.To,
			"before", rec.PreviousDistance,
			"after", candidate,
			"via", from,
			"queued", queued,
		)

		return true
	})

	return relaxed
}

// Run steps until the stepper is done and returns how many steps it took.
func (s *Stepper) Run() int {
	n := 0
	for {
		if _, ok := s.Step(); !ok {
			return n
		}
		n++
	}
}

// State reports StateReady or StateDone.
func (s *Stepper) State() State { return s.state }

// Done is shorthand for State() == StateDone.
func (s *Stepper) Done() bool { return s.state == StateDone }

// Iteration is the number of vertices finalized so far.
func (s *Stepper) Iteration() int { return len(s.closed.Content()) }

// Chosen returns the vertex finalized by the latest step, or NoPredecessor
// right after construction or Reset.
func (s *Stepper) Chosen() string { return s.chosen }

// GoalReached reports whether the goal (if any) has been finalized.
func (s *Stepper) GoalReached() bool { return s.goalReached }

// Record returns a copy of the record of id.
func (s *Stepper) Record(id string) (NodeRecord, bool) {
	i, ok := s.g.Index(id)
	if !ok {
		return NodeRecord{}, false
	}

	return s.records[i], true
}

// Path yields the vertices of the shortest path from the source to target,
// source first. The walk is performed lazily each time the sequence is
// ranged over, against the state at that moment.
//
// Degenerate results: an unknown target yields nothing; a target that is not
// finalized yet yields only the target itself.
func (s *Stepper) Path(target string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range walkPath(target, s.Record, s.g.Order()) {
			if !yield(id) {
				return
			}
		}
	}
}

// PathCost returns the finalized distance of target, or Infinity and false
// if target is unknown or not finalized.
func (s *Stepper) PathCost(target string) (int64, bool) {
	rec, ok := s.Record(target)
	if !ok || !rec.Finalized {
		return Infinity, false
	}

	return rec.Distance, true
}
