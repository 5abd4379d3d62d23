package driver

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ADIZdotcam/dijkstra/dijkstra"
	"github.com/ADIZdotcam/dijkstra/internal/ctxlog"
	"github.com/ADIZdotcam/dijkstra/scenario"
)

func newDriver(t *testing.T, cfg Config) (*Driver, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	d, err := New(context.Background(), scenario.Default(), cfg, &out)
	require.NoError(t, err)

	return d, &out
}

func TestRun_InteractiveSession(t *testing.T) {
	d, out := newDriver(t, Config{})

	in := strings.NewReader("n\np\nbogus\nrun\nnext\npath\nreset\nq\nn\n")
	require.NoError(t, d.Run(context.Background(), in))

	got := out.String()
	require.Contains(t, got, "NODE  X    Y    STATE")
	require.Contains(t, got, "Iteration 0: Priority Queue = {A(0)}; Node Chosen = -\n")
	require.Contains(t, got, "Iteration 1: Priority Queue = {D(2), B(4)}; Node Chosen = A\n")
	require.Contains(t, got, "G is not finalized yet.\n")
	require.Contains(t, got, `Unknown command "bogus"`)
	require.Contains(t, got, "Search finished after 7 step(s).\n")
	require.Contains(t, got, "Search is done; use 'r' to start over.\n")
	require.Contains(t, got, "Shortest Path: A → D → E → G (cost 7)\n")
	require.Contains(t, got, "Reset.\n")

	// "q" ends the session before the trailing "n" is read.
	require.Equal(t, dijkstra.StateReady, d.Stepper().State())
	require.Equal(t, 0, d.Stepper().Iteration())
	require.Equal(t, 2, strings.Count(got, "Iteration 0: Priority Queue"))
}

func TestRun_EOFEndsSession(t *testing.T) {
	d, _ := newDriver(t, Config{})

	require.NoError(t, d.Run(context.Background(), strings.NewReader("\n\n")))
	require.Equal(t, 2, d.Stepper().Iteration())
}

func TestRun_Auto(t *testing.T) {
	d, out := newDriver(t, Config{Auto: true})

	require.NoError(t, d.Run(context.Background(), strings.NewReader("")))
	require.True(t, d.Stepper().Done())
	require.Contains(t, out.String(), "Search finished after 8 step(s).\n")
	require.Contains(t, out.String(), "Shortest Path: A → D → E → G (cost 7)\n")
	require.NotContains(t, out.String(), "> ")
}

func TestRun_AutoStopAtGoal(t *testing.T) {
	d, out := newDriver(t, Config{Auto: true, StopAtGoal: true})

	require.NoError(t, d.Run(context.Background(), strings.NewReader("")))
	require.Contains(t, out.String(), "Search finished after 6 step(s).\n")
	require.Equal(t, []string{"A", "D", "B", "E", "C", "G"}, d.Stepper().Snapshot().Closed)
}

func TestRun_Overrides(t *testing.T) {
	d, out := newDriver(t, Config{Goal: "F", Auto: true})

	require.NoError(t, d.Run(context.Background(), strings.NewReader("")))
	require.Contains(t, out.String(), "Shortest Path: A → B → C → F (cost 13)\n")
}

func TestRun_UnreachableGoal(t *testing.T) {
	d, out := newDriver(t, Config{Start: "G", Goal: "A", Auto: true})

	require.NoError(t, d.Run(context.Background(), strings.NewReader("")))
	require.Contains(t, out.String(), "Search finished after 1 step(s).\n")
	require.Contains(t, out.String(), "A is unreachable from G.\n")
}

func TestRun_ContextCanceled(t *testing.T) {
	d, _ := newDriver(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, strings.NewReader("n\n"))
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, 0, d.Stepper().Iteration())
}

func TestNew_RejectsUnknownOverride(t *testing.T) {
	var out bytes.Buffer
	_, err := New(context.Background(), scenario.Default(), Config{Start: "Z"}, &out)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = New(context.Background(), scenario.Default(), Config{Goal: "Z"}, &out)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestNew_DoesNotMutateScenario(t *testing.T) {
	sc := scenario.Default()
	var out bytes.Buffer
	_, err := New(context.Background(), sc, Config{Start: "B", Goal: "F"}, &out)
	require.NoError(t, err)
	require.Equal(t, "A", sc.Start)
	require.Equal(t, "G", sc.Goal)
}

func TestRun_LogsThroughContextLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	var out bytes.Buffer
	d, err := New(ctx, scenario.Default(), Config{}, &out)
	require.NoError(t, err)
	require.NoError(t, d.Run(ctx, strings.NewReader("n\n")))

	require.Contains(t, logs.String(), "msg=\"Stepper ready\"")
	require.Contains(t, logs.String(), "msg=\"Command received\" command=n")
	require.Contains(t, logs.String(), "msg=\"dijkstra: vertex finalized\"")
}
