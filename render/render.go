// Package render turns dijkstra.Snapshot values into text for a terminal.
//
// It only reads snapshots; nothing here can reach back into a Stepper.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ADIZdotcam/dijkstra/dijkstra"
	"github.com/ADIZdotcam/dijkstra/scenario"
)

// NodeState is the display category of a vertex.
type NodeState int

const (
	NodeDefault NodeState = iota
	NodeStart
	NodeGoal
	NodeFinalized
	NodeFrontier
)

var nodeStateNames = [...]string{
	NodeDefault:   "default",
	NodeStart:     "start",
	NodeGoal:      "goal",
	NodeFinalized: "finalized",
	NodeFrontier:  "frontier",
}

// String returns the lower-case state name.
func (s NodeState) String() string {
	if s < 0 || int(s) >= len(nodeStateNames) {
		return "unknown"
	}
	return nodeStateNames[s]
}

// Color is the fill colour used by graphical front-ends for the state.
func (s NodeState) Color() string {
	switch s {
	case NodeStart:
		return "green"
	case NodeGoal:
		return "cyan"
	case NodeFinalized:
		return "#ff9999"
	case NodeFrontier:
		return "#90ee90"
	default:
		return "lightblue"
	}
}

// Classify returns the display state of id. Precedence: start, goal,
// finalized, frontier, default.
func Classify(snap dijkstra.Snapshot, id string) NodeState {
	switch {
	case id == snap.Source:
		return NodeStart
	case snap.Goal != "" && id == snap.Goal:
		return NodeGoal
	case snap.Records[id].Finalized:
		return NodeFinalized
	case snap.InFrontier(id):
		return NodeFrontier
	default:
		return NodeDefault
	}
}

// Distance formats a distance, printing Infinity as "∞".
func Distance(d int64) string {
	if d == dijkstra.Infinity {
		return "∞"
	}
	return strconv.FormatInt(d, 10)
}

// QueueLine renders the per-iteration summary:
//
//	Iteration 2: Priority Queue = {B(3), C(9)}; Node Chosen = D
func QueueLine(snap dijkstra.Snapshot) string {
	open := make([]string, len(snap.Frontier))
	for i, e := range snap.Frontier {
		open[i] = fmt.Sprintf("%s(%s)", e.Node, Distance(e.Distance))
	}
	chosen := snap.Chosen
	if chosen == dijkstra.NoPredecessor {
		chosen = "-"
	}

	return fmt.Sprintf("Iteration %d: Priority Queue = {%s}; Node Chosen = %s",
		snap.Iteration, strings.Join(open, ", "), chosen)
}

// PathLine renders a reconstructed path: "Shortest Path: A → D → E → G".
func PathLine(path []string) string {
	return "Shortest Path: " + strings.Join(path, " → ")
}

// Renderer writes snapshots to w.
type Renderer struct {
	w io.Writer
}

// New returns a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Table writes one row per vertex: id, "previous → current" distance,
// predecessor and display state. Finalized rows carry a '*'.
func (r *Renderer) Table(snap dijkstra.Snapshot) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tDISTANCE\tFROM\tSTATE")
	for _, id := range snap.Nodes {
		rec := snap.Records[id]
		from := rec.Predecessor
		if from == dijkstra.NoPredecessor {
			from = "-"
		}
		mark := ""
		if rec.Finalized {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s%s\t%s → %s\t%s\t%s\n",
			id, mark, Distance(rec.PreviousDistance), Distance(rec.Distance), from, Classify(snap, id))
	}

	return tw.Flush()
}

// Snapshot writes the queue line and the table, followed by the shortest
// path once the goal has been finalized.
func (r *Renderer) Snapshot(snap dijkstra.Snapshot) error {
	if _, err := fmt.Fprintln(r.w, QueueLine(snap)); err != nil {
		return err
	}
	if err := r.Table(snap); err != nil {
		return err
	}
	if snap.Goal != "" && snap.Records[snap.Goal].Finalized {
		if _, err := fmt.Fprintln(r.w, PathLine(snap.Path(snap.Goal))); err != nil {
			return err
		}
	}

	return nil
}

// Step writes the relaxations of a step, one per line, then the snapshot.
func (r *Renderer) Step(res dijkstra.StepResult) error {
	for _, rx := range res.Relaxed {
		verb := "updated"
		if rx.Queued {
			verb = "queued"
		}
		if _, err := fmt.Fprintf(r.w, "  %s: %s → %s via %s (%s)\n",
			rx.Node, Distance(rx.Before), Distance(rx.After), rx.From, verb); err != nil {
			return err
		}
	}

	return r.Snapshot(res.Snapshot)
}

// Layout lists every vertex of snap with its canvas position in sc, display
// state and colour. Vertices sc does not place print "-" coordinates.
func (r *Renderer) Layout(sc *scenario.Scenario, snap dijkstra.Snapshot) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tX\tY\tSTATE\tCOLOR")
	for _, id := range snap.Nodes {
		x, y := "-", "-"
		if n, ok := sc.Position(id); ok {
			x, y = strconv.FormatFloat(n.X, 'g', -1, 64), strconv.FormatFloat(n.Y, 'g', -1, 64)
		}
		st := Classify(snap, id)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", id, x, y, st, st.Color())
	}

	return tw.Flush()
}
