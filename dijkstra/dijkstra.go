package dijkstra

import "github.com/ADIZdotcam/dijkstra/core"

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g in one call, by running a Stepper until it is done.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Infinity if unreachable).
//   - prev: predecessor map if WithReturnPath() was given (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == NoPredecessor.
//   - err:  the construction error of NewStepper, if any.
//
// With WithStopAtGoal the run ends early and vertices that were not finalized
// report their tentative distance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	s, err := NewStepper(g, opts...)
	if err != nil {
		return nil, nil, err
	}
	s.Run()

	nodes := g.Nodes()
	dist := make(map[string]int64, len(nodes))
	var prev map[string]string
	if s.options.ReturnPath {
		prev = make(map[string]string, len(nodes))
	}

	for i, id := range nodes {
		dist[id] = s.records[i].Distance
		if prev != nil {
			prev[id] = s.records[i].Predecessor
		}
	}

	return dist, prev, nil
}
