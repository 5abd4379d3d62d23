// Package scenario loads the demo graph shown by the stepper: vertices with
// their display coordinates, the edge list, and the start and goal vertices.
//
// Scenarios are written in HCL:
//
//	start = "A"
//	goal  = "C"
//
//	node "A" {
//	  x = 50
//	  y = 100
//	}
//
//	edges = [
//	  ["A", "B", 4],                       # tuple form
//	  { from = "B", to = "C", weight = 3 }, # object form
//	]
//
// Coordinates are presentation data and never reach the engine.
package scenario

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/ADIZdotcam/dijkstra/core"
	"github.com/ADIZdotcam/dijkstra/dijkstra"
	"github.com/ADIZdotcam/dijkstra/internal/ctxlog"
)

//go:embed default.hcl
var defaultSource []byte

// DefaultFilename is the name reported in diagnostics for the embedded scenario.
const DefaultFilename = "default.hcl"

var (
	// ErrBadEdge indicates an `edges` element that is neither a
	// [from, to, weight] tuple nor a {from, to, weight} object.
	ErrBadEdge = errors.New("scenario: malformed edge")

	// ErrNoNodes indicates a scenario without any node block.
	ErrNoNodes = errors.New("scenario: no nodes declared")
)

// Node is a vertex with its display position.
type Node struct {
	ID string
	X  float64
	Y  float64
}

// Scenario is a decoded, validated scenario file.
type Scenario struct {
	Name  string
	Start string
	Goal  string
	Nodes []Node
	Edges []core.Edge
}

// hclScenarioFile represents the top-level structure of a scenario file for decoding.
type hclScenarioFile struct {
	Start string     `hcl:"start"`
	Goal  string     `hcl:"goal,optional"`
	Nodes []*hclNode `hcl:"node,block"`
	Edges cty.Value  `hcl:"edges"`
}

type hclNode struct {
	ID string  `hcl:"id,label"`
	X  float64 `hcl:"x,optional"`
	Y  float64 `hcl:"y,optional"`
}

// Default returns the embedded eight-vertex demo scenario.
func Default() *Scenario {
	sc, err := Parse(defaultSource, DefaultFilename)
	if err != nil {
		panic(fmt.Sprintf("scenario: embedded default is invalid: %v", err))
	}

	return sc
}

// Load parses and validates the scenario file at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, diags)
	}

	sc, err := decode(file.Body, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scenario loaded", "path", path, "nodes", len(sc.Nodes), "edges", len(sc.Edges))

	return sc, nil
}

// Parse decodes and validates a scenario from src. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", filename, diags)
	}

	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*Scenario, error) {
	var parsed hclScenarioFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario file %s: %w", filename, diags)
	}

	sc := &Scenario{
		Name:  filename,
		Start: parsed.Start,
		Goal:  parsed.Goal,
		Nodes: make([]Node, 0, len(parsed.Nodes)),
	}
	for _, n := range parsed.Nodes {
		sc.Nodes = append(sc.Nodes, Node{ID: n.ID, X: n.X, Y: n.Y})
	}
	if len(sc.Nodes) == 0 {
		return nil, fmt.Errorf("scenario %s: %w", filename, ErrNoNodes)
	}

	edges, err := decodeEdges(parsed.Edges)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", filename, err)
	}
	sc.Edges = edges

	if err = sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", filename, err)
	}

	return sc, nil
}

// decodeEdges turns the `edges` attribute into core edges. Each element is
// either a [from, to, weight] tuple or a {from, to, weight} object.
func decodeEdges(v cty.Value) ([]core.Edge, error) {
	if v.IsNull() {
		return nil, nil
	}
	if ty := v.Type(); !v.IsWhollyKnown() || !(ty.IsTupleType() || ty.IsListType()) {
		return nil, fmt.Errorf("%w: edges must be a list", ErrBadEdge)
	}

	edges := make([]core.Edge, 0, v.LengthInt())
	for idx, elem := range v.AsValueSlice() {
		from, to, weight, err := edgeParts(elem)
		if err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %v", ErrBadEdge, idx, err)
		}

		var e core.Edge
		if err = gocty.FromCtyValue(from, &e.From); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] from: %v", ErrBadEdge, idx, err)
		}
		if err = gocty.FromCtyValue(to, &e.To); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] to: %v", ErrBadEdge, idx, err)
		}
		if err = gocty.FromCtyValue(weight, &e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] weight: %v", ErrBadEdge, idx, err)
		}
		edges = append(edges, e)
	}

	return edges, nil
}

func edgeParts(elem cty.Value) (from, to, weight cty.Value, err error) {
	ty := elem.Type()
	switch {
	case elem.IsNull():
		return cty.NilVal, cty.NilVal, cty.NilVal, errors.New("null edge")
	case ty.IsObjectType():
		for _, attr := range []string{"from", "to", "weight"} {
			if !ty.HasAttribute(attr) {
				return cty.NilVal, cty.NilVal, cty.NilVal, fmt.Errorf("missing %q", attr)
			}
		}
		return elem.GetAttr("from"), elem.GetAttr("to"), elem.GetAttr("weight"), nil
	case elem.CanIterateElements() && !ty.IsMapType():
		if elem.LengthInt() != 3 {
			return cty.NilVal, cty.NilVal, cty.NilVal, fmt.Errorf("want 3 elements, got %d", elem.LengthInt())
		}
		parts := elem.AsValueSlice()
		return parts[0], parts[1], parts[2], nil
	default:
		return cty.NilVal, cty.NilVal, cty.NilVal, fmt.Errorf("unexpected %s", ty.FriendlyName())
	}
}

// Validate checks the scenario against the rules of core.NewGraph and makes
// sure start and goal name declared vertices.
func (sc *Scenario) Validate() error {
	g, err := sc.Graph()
	if err != nil {
		return err
	}
	if sc.Start == "" {
		return core.Invalid("start", dijkstra.ErrEmptySource)
	}
	if !g.HasVertex(sc.Start) {
		return core.Invalid(fmt.Sprintf("start %q", sc.Start), dijkstra.ErrVertexNotFound)
	}
	if sc.Goal != "" && !g.HasVertex(sc.Goal) {
		return core.Invalid(fmt.Sprintf("goal %q", sc.Goal), dijkstra.ErrVertexNotFound)
	}

	return nil
}

// NodeIDs returns vertex IDs in declaration order.
func (sc *Scenario) NodeIDs() []string {
	ids := make([]string, len(sc.Nodes))
	for i, n := range sc.Nodes {
		ids[i] = n.ID
	}

	return ids
}

// Position returns the display node for id.
func (sc *Scenario) Position(id string) (Node, bool) {
	for _, n := range sc.Nodes {
		if n.ID == id {
			return n, true
		}
	}

	return Node{}, false
}

// Graph builds the immutable engine graph.
func (sc *Scenario) Graph() (*core.Graph, error) {
	return core.NewGraph(sc.NodeIDs(), sc.Edges)
}

// Stepper builds a Stepper for the scenario's start and goal; extra options
// are applied after Source and WithGoal.
func (sc *Scenario) Stepper(opts ...dijkstra.Option) (*dijkstra.Stepper, error) {
	g, err := sc.Graph()
	if err != nil {
		return nil, err
	}
	base := []dijkstra.Option{dijkstra.Source(sc.Start)}
	if sc.Goal != "" {
		base = append(base, dijkstra.WithGoal(sc.Goal))
	}

	return dijkstra.NewStepper(g, append(base, opts...)...)
}
