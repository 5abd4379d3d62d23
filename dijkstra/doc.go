// Package dijkstra provides an incremental, inspectable implementation of
// Dijkstra's shortest-path algorithm on graphs with non-negative edge weights.
//
// Overview:
//
//   - A Stepper advances the algorithm one relaxation round per Step call, so a
//     driver (a UI, a CLI, a test) can observe the frontier, the closed list and
//     every vertex's tentative distance between rounds.
//   - After each step the driver reads a Snapshot: a deep copy that can be
//     rendered or compared without touching engine state.
//   - Reset rebuilds the initial state; a Stepper can be rerun any number of
//     times and produces the same sequence every time.
//   - Dijkstra runs a Stepper to completion and returns distance and
//     predecessor maps, for callers that only need the answer.
//
// State machine:
//
//	StateReady ──Step──▶ StateReady   (frontier still non-empty)
//	StateReady ──Step──▶ StateDone    (frontier empty, or goal finalized with WithStopAtGoal)
//	StateDone  ──Step──▶ StateDone    (no-op, reports false)
//	any        ──Reset─▶ StateReady
//
// Determinism:
//
//   - When several frontier entries share the minimum distance, the one that
//     entered the frontier first is chosen. Updating an entry's distance in
//     place keeps its original rank.
//   - Outgoing edges are relaxed in the order they were given to core.NewGraph.
//
// Path reconstruction:
//
//   - Stepper.Path(target) yields source … target lazily (iter.Seq).
//   - If target was never finalized the sequence is just [target]; if target
//     is unknown it is empty. Neither case is an error.
//
// Error handling (sentinel errors, wrapped in *core.ValidationError):
//
//   - ErrEmptySource:    Source was not provided.
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: source or goal not in the graph.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised by panic from the options.
//
// Negative weights cannot reach this package: core.NewGraph rejects them.
//
// Example:
//
//	s, err := dijkstra.NewStepper(g, dijkstra.Source("A"), dijkstra.WithGoal("C"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    res, ok := s.Step()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(res.Chosen, res.Snapshot.Frontier)
//	}
//	for id := range s.Path("C") {
//	    fmt.Print(id, " ")
//	}
//
// Complexity:
//
//   - Step: O(deg(u) log V) with the indexed heap.
//   - Snapshot: O(V log V) (frontier copy is sorted for display).
//   - Space: O(V).
//
// Thread safety:
//
//   - A Stepper is single-threaded. The *core.Graph it reads is immutable and
//     may be shared by any number of Steppers.
package dijkstra
