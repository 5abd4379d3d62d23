// Package driver runs an interactive stepper session: it reads commands,
// advances a dijkstra.Stepper and renders every state change.
package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ADIZdotcam/dijkstra/dijkstra"
	"github.com/ADIZdotcam/dijkstra/internal/ctxlog"
	"github.com/ADIZdotcam/dijkstra/render"
	"github.com/ADIZdotcam/dijkstra/scenario"
)

// Config selects what a Driver searches and how.
type Config struct {
	// Start and Goal override the scenario's own values when non-empty.
	Start string
	Goal  string
	// StopAtGoal ends the search once the goal is finalized.
	StopAtGoal bool
	// Auto makes Run step to completion instead of reading commands.
	Auto bool
}

// Driver owns one stepper and prints to a single writer. Rendering happens
// in the stepper's hooks, so every Step and Reset is shown exactly once.
type Driver struct {
	sc      *scenario.Scenario
	cfg     Config
	stepper *dijkstra.Stepper
	out     io.Writer
	r       *render.Renderer

	// first write error raised inside a hook
	err error
}

// New builds a Driver for sc. The logger is taken from ctx.
func New(ctx context.Context, sc *scenario.Scenario, cfg Config, out io.Writer) (*Driver, error) {
	logger := ctxlog.FromContext(ctx)

	target := *sc
	if cfg.Start != "" {
		target.Start = cfg.Start
	}
	if cfg.Goal != "" {
		target.Goal = cfg.Goal
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	d := &Driver{sc: &target, cfg: cfg, out: out, r: render.New(out)}

	opts := []dijkstra.Option{
		dijkstra.WithLogger(logger),
		dijkstra.WithOnStep(d.onStep),
		dijkstra.WithOnReset(d.onReset),
	}
	if cfg.StopAtGoal {
		opts = append(opts, dijkstra.WithStopAtGoal())
	}
	s, err := target.Stepper(opts...)
	if err != nil {
		return nil, err
	}
	d.stepper = s
	logger.Info("Stepper ready", "scenario", sc.Name, "start", target.Start, "goal", target.Goal)

	return d, nil
}

// Stepper exposes the underlying stepper.
func (d *Driver) Stepper() *dijkstra.Stepper { return d.stepper }

func (d *Driver) onStep(res dijkstra.StepResult) {
	d.keep(d.r.Step(res))
}

func (d *Driver) onReset(snap dijkstra.Snapshot) {
	d.printf("Reset.\n")
	d.keep(d.r.Snapshot(snap))
}

func (d *Driver) keep(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Driver) printf(format string, args ...any) {
	_, err := fmt.Fprintf(d.out, format, args...)
	d.keep(err)
}

// Run prints the initial state and then either steps to completion (Auto)
// or executes one command per input line until quit or EOF.
func (d *Driver) Run(ctx context.Context, in io.Reader) error {
	logger := ctxlog.FromContext(ctx)

	d.keep(d.r.Layout(d.sc, d.stepper.Snapshot()))
	d.keep(d.r.Snapshot(d.stepper.Snapshot()))
	if d.err != nil {
		return d.err
	}

	if d.cfg.Auto {
		d.runToEnd()
		d.printPath()
		return d.err
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.printf("> ")
		if !scanner.Scan() {
			d.printf("\n")
			if err := scanner.Err(); err != nil {
				return err
			}
			return d.err
		}

		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		logger.Debug("Command received", "command", cmd)
		switch cmd {
		case "", "n", "next":
			if _, ok := d.stepper.Step(); !ok {
				d.printf("Search is done; use 'r' to start over.\n")
			}
		case "r", "reset":
			d.stepper.Reset()
		case "run":
			d.runToEnd()
		case "p", "path":
			d.printPath()
		case "q", "quit", "exit":
			return d.err
		default:
			d.printf("Unknown command %q. Commands: n, r, run, p, q.\n", cmd)
		}
		if d.err != nil {
			return d.err
		}
	}
}

func (d *Driver) runToEnd() {
	n := d.stepper.Run()
	d.printf("Search finished after %d step(s).\n", n)
}

func (d *Driver) printPath() {
	goal := d.sc.Goal
	switch {
	case goal == "":
		d.printf("No goal set.\n")
	case !d.stepper.GoalReached():
		rec, _ := d.stepper.Record(goal)
		if d.stepper.Done() && !rec.Reachable() {
			d.printf("%s is unreachable from %s.\n", goal, d.sc.Start)
			return
		}
		d.printf("%s is not finalized yet.\n", goal)
	default:
		cost, _ := d.stepper.PathCost(goal)
		d.printf("%s (cost %s)\n", render.PathLine(slices.Collect(d.stepper.Path(goal))), render.Distance(cost))
	}
}
