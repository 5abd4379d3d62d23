package dijkstra

import "slices"

// Snapshot is a deep copy of the engine state, handed to presentation code.
// Mutating a Snapshot never affects the Stepper it came from.
type Snapshot struct {
	// Iteration is the number of finalized vertices.
	Iteration int

	// Chosen is the vertex finalized by the latest step ("" if none yet).
	Chosen string

	// State is the stepper state at capture time.
	State State

	// Source and Goal echo the configuration ("" Goal when unset).
	Source string
	Goal   string

	// Nodes lists every vertex in declaration order.
	Nodes []string

	// Frontier lists the open set in selection order: distance, then insertion rank.
	Frontier []FrontierEntry

	// Closed lists finalized vertices in finalization order.
	Closed []string

	// Records holds the bookkeeping of every vertex.
	Records map[string]NodeRecord
}

// Snapshot captures the current state.
func (s *Stepper) Snapshot() Snapshot {
	snap := Snapshot{
		Iteration: s.Iteration(),
		Chosen:    s.chosen,
		State:     s.state,
		Source:    s.options.Source,
		Goal:      s.options.Goal,
		Nodes:     s.g.Nodes(),
		Records:   make(map[string]NodeRecord, len(s.records)),
	}

	ordered := s.front.ordered()
	snap.Frontier = make([]FrontierEntry, len(ordered))
	for i, it := range ordered {
		snap.Frontier[i] = FrontierEntry{Node: s.g.Node(it.node), Distance: it.dist}
	}

	content := s.closed.Content()
	snap.Closed = make([]string, len(content))
	for i, v := range content {
		snap.Closed[i] = s.g.Node(v)
	}

	for i, rec := range s.records {
		snap.Records[s.g.Node(i)] = rec
	}

	return snap
}

// InFrontier reports whether id currently has a frontier entry.
func (s Snapshot) InFrontier(id string) bool {
	return slices.ContainsFunc(s.Frontier, func(e FrontierEntry) bool { return e.Node == id })
}

// Path returns the shortest path from the source to target as recorded in
// the snapshot, with the same degenerate results as Stepper.Path.
func (s Snapshot) Path(target string) []string {
	return walkPath(target, func(id string) (NodeRecord, bool) {
		rec, ok := s.Records[id]
		return rec, ok
	}, len(s.Records))
}

// walkPath follows predecessor links from target back to a vertex without
// predecessor and returns the chain source-first. limit bounds the walk to
// the number of vertices.
func walkPath(target string, lookup func(string) (NodeRecord, bool), limit int) []string {
	rec, ok := lookup(target)
	if !ok {
		return nil
	}
	if !rec.Finalized {
		return []string{target}
	}

	path := []string{target}
	for cur := rec; cur.Predecessor != NoPredecessor && len(path) <= limit; {
		path = append(path, cur.Predecessor)
		if cur, ok = lookup(cur.Predecessor); !ok {
			break
		}
	}
	slices.Reverse(path)

	return path
}
