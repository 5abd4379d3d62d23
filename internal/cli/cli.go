package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds the settings of one stepper session.
type Config struct {
	// ScenarioPath is the HCL scenario to load; empty selects the built-in demo.
	ScenarioPath string
	// Start and Goal override the scenario's start and goal when non-empty.
	Start string
	Goal  string
	// Auto steps to completion without waiting for commands.
	Auto bool
	// StopAtGoal ends the search once the goal is finalized.
	StopAtGoal bool
	LogLevel   string
	LogFormat  string
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("dijkstra-stepper", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
dijkstra-stepper - walk through Dijkstra's algorithm one vertex at a time.

Usage:
  dijkstra-stepper [options] [SCENARIO_PATH]

Arguments:
  SCENARIO_PATH
    Path to an .hcl scenario file. The built-in demo graph is used when omitted.

Commands (read from stdin):
  n, next, <enter>   finalize the next vertex
  r, reset           start over
  run                step until the search is done
  p, path            print the path to the goal
  q, quit            exit

Options:
`)
		flagSet.PrintDefaults()
	}

	scenarioFlag := flagSet.String("scenario", "", "Path to the scenario file.")
	startFlag := flagSet.String("start", "", "Start vertex; overrides the scenario.")
	goalFlag := flagSet.String("goal", "", "Goal vertex; overrides the scenario.")
	autoFlag := flagSet.Bool("auto", false, "Run to completion without waiting for commands.")
	stopFlag := flagSet.Bool("stop-at-goal", false, "Stop the search once the goal is finalized.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *scenarioFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "too many arguments: expected at most one scenario path"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config := &Config{
		ScenarioPath: path,
		Start:        *startFlag,
		Goal:         *goalFlag,
		Auto:         *autoFlag,
		StopAtGoal:   *stopFlag,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
	}
	slog.Debug("CLI parser finished successfully.", "config", config)

	return config, false, nil
}

// NewLogger creates a logger for the configured level and format. It does
// not set the global logger.
func NewLogger(cfg *Config, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
