package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		want       *Config
		shouldExit bool
		exitCode   int
	}{
		{
			name: "defaults",
			args: nil,
			want: &Config{LogLevel: "warn", LogFormat: "text"},
		},
		{
			name: "positional scenario",
			args: []string{"grid.hcl"},
			want: &Config{ScenarioPath: "grid.hcl", LogLevel: "warn", LogFormat: "text"},
		},
		{
			name: "flag wins over positional",
			args: []string{"-scenario", "a.hcl", "b.hcl"},
			want: &Config{ScenarioPath: "a.hcl", LogLevel: "warn", LogFormat: "text"},
		},
		{
			name: "all flags",
			args: []string{"-start", "B", "-goal", "F", "-auto", "-stop-at-goal", "-log-level", "DEBUG", "-log-format", "json"},
			want: &Config{Start: "B", Goal: "F", Auto: true, StopAtGoal: true, LogLevel: "debug", LogFormat: "json"},
		},
		{
			name:       "help",
			args:       []string{"-h"},
			shouldExit: true,
		},
		{
			name:     "unknown flag",
			args:     []string{"-nope"},
			exitCode: 2,
		},
		{
			name:     "bad log level",
			args:     []string{"-log-level", "loud"},
			exitCode: 2,
		},
		{
			name:     "bad log format",
			args:     []string{"-log-format", "xml"},
			exitCode: 2,
		},
		{
			name:     "two positionals",
			args:     []string{"a.hcl", "b.hcl"},
			exitCode: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, shouldExit, err := Parse(tc.args, &out)

			if tc.exitCode != 0 {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
				require.Equal(t, tc.exitCode, exitErr.Code)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.shouldExit, shouldExit)
			if tc.shouldExit {
				require.Contains(t, out.String(), "Usage:")
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{LogLevel: "info", LogFormat: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("shown", "vertex", "A")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
	require.Contains(t, buf.String(), `"vertex":"A"`)
}

func TestNewLogger_DefaultsToWarnText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
}
