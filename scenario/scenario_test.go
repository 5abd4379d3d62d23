package scenario_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ADIZdotcam/dijkstra/core"
	"github.com/ADIZdotcam/dijkstra/dijkstra"
	"github.com/ADIZdotcam/dijkstra/scenario"
)

func TestDefault(t *testing.T) {
	sc := scenario.Default()

	require.Equal(t, "A", sc.Start)
	require.Equal(t, "G", sc.Goal)
	require.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"}, sc.NodeIDs())
	require.Len(t, sc.Edges, 11)
	require.Equal(t, core.Edge{From: "H", To: "G", Weight: 5}, sc.Edges[10])

	pos, ok := sc.Position("F")
	require.True(t, ok)
	require.Equal(t, scenario.Node{ID: "F", X: 450, Y: 200}, pos)
	_, ok = sc.Position("Z")
	require.False(t, ok)
}

func TestDefault_ShortestPathToGoal(t *testing.T) {
	sc := scenario.Default()
	s, err := sc.Stepper()
	require.NoError(t, err)

	s.Run()
	require.True(t, s.GoalReached())
	require.Equal(t, []string{"A", "D", "E", "G"}, slices.Collect(s.Path(sc.Goal)))
	cost, ok := s.PathCost(sc.Goal)
	require.True(t, ok)
	require.Equal(t, int64(7), cost)
	require.Equal(t, []string{"A", "D", "B", "E", "C", "G", "H", "F"}, s.Snapshot().Closed)
}

func TestParse_ObjectAndTupleEdges(t *testing.T) {
	src := []byte(`
start = "S"

node "S" {}
node "T" {
  x = 1.5
}

edges = [
  ["S", "T", 2],
  { from = "T", to = "S", weight = 0 },
]
`)
	sc, err := scenario.Parse(src, "inline.hcl")
	require.NoError(t, err)

	want := &scenario.Scenario{
		Name:  "inline.hcl",
		Start: "S",
		Nodes: []scenario.Node{{ID: "S"}, {ID: "T", X: 1.5}},
		Edges: []core.Edge{
			{From: "S", To: "T", Weight: 2},
			{From: "T", To: "S", Weight: 0},
		},
	}
	if diff := cmp.Diff(want, sc); diff != "" {
		t.Errorf("Parse(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		is   error
	}{
		{
			name: "syntax",
			src:  `start = `,
		},
		{
			name: "missing start",
			src:  "node \"A\" {}\nedges = []\n",
		},
		{
			name: "no nodes",
			src:  "start = \"A\"\nedges = []\n",
			is:   scenario.ErrNoNodes,
		},
		{
			name: "short tuple",
			src:  "start = \"A\"\nnode \"A\" {}\nedges = [[\"A\", \"A\"]]\n",
			is:   scenario.ErrBadEdge,
		},
		{
			name: "fractional weight",
			src:  "start = \"A\"\nnode \"A\" {}\nedges = [[\"A\", \"A\", 1.5]]\n",
			is:   scenario.ErrBadEdge,
		},
		{
			name: "object missing weight",
			src:  "start = \"A\"\nnode \"A\" {}\nedges = [{ from = \"A\", to = \"A\" }]\n",
			is:   scenario.ErrBadEdge,
		},
		{
			name: "edges not a list",
			src:  "start = \"A\"\nnode \"A\" {}\nedges = \"A\"\n",
			is:   scenario.ErrBadEdge,
		},
		{
			name: "edges as object",
			src:  "start = \"A\"\nnode \"A\" {}\nnode \"B\" {}\nedges = { x = [\"A\", \"B\", 1] }\n",
			is:   scenario.ErrBadEdge,
		},
		{
			name: "negative weight",
			src:  "start = \"A\"\nnode \"A\" {}\nnode \"B\" {}\nedges = [[\"A\", \"B\", -1]]\n",
			is:   core.ErrNegativeWeight,
		},
		{
			name: "undeclared endpoint",
			src:  "start = \"A\"\nnode \"A\" {}\nedges = [[\"A\", \"B\", 1]]\n",
			is:   core.ErrVertexNotFound,
		},
		{
			name: "unknown start",
			src:  "start = \"X\"\nnode \"A\" {}\nedges = []\n",
			is:   dijkstra.ErrVertexNotFound,
		},
		{
			name: "unknown goal",
			src:  "start = \"A\"\ngoal = \"X\"\nnode \"A\" {}\nedges = []\n",
			is:   dijkstra.ErrVertexNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := scenario.Parse([]byte(tc.src), "bad.hcl")
			require.Nil(t, sc)
			require.Error(t, err)
			require.Contains(t, err.Error(), "bad.hcl")
			if tc.is != nil {
				require.True(t, errors.Is(err, tc.is), "want %v, got %v", tc.is, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "line.hcl")
	src := "start = \"A\"\ngoal = \"B\"\nnode \"A\" {}\nnode \"B\" {}\nedges = [[\"A\", \"B\", 3]]\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	sc, err := scenario.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, path, sc.Name)
	require.Equal(t, "B", sc.Goal)

	_, err = scenario.Load(context.Background(), filepath.Join(dir, "missing.hcl"))
	require.Error(t, err)
}

func TestStepper_ForwardsOptions(t *testing.T) {
	sc := scenario.Default()
	s, err := sc.Stepper(dijkstra.WithStopAtGoal())
	require.NoError(t, err)

	s.Run()
	require.True(t, s.Done())
	require.NotEmpty(t, s.Snapshot().Frontier, "H and F are still open when G is finalized")
}
