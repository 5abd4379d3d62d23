package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ADIZdotcam/dijkstra/internal/cli"
	"github.com/ADIZdotcam/dijkstra/internal/ctxlog"
	"github.com/ADIZdotcam/dijkstra/internal/driver"
	"github.com/ADIZdotcam/dijkstra/scenario"
)

// main is the entrypoint for the dijkstra-stepper application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, in io.Reader, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ctx = ctxlog.WithLogger(ctx, cli.NewLogger(cfg, logW))

	sc := scenario.Default()
	if cfg.ScenarioPath != "" {
		if sc, err = scenario.Load(ctx, cfg.ScenarioPath); err != nil {
			return err
		}
	}

	d, err := driver.New(ctx, sc, driver.Config{
		Start:      cfg.Start,
		Goal:       cfg.Goal,
		StopAtGoal: cfg.StopAtGoal,
		Auto:       cfg.Auto,
	}, outW)
	if err != nil {
		return err
	}

	return d.Run(ctx, in)
}
