package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunnerRunsStepsInOrder(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")

	steps := []Step{
		{Name: "first", Argv: []string{"sh", "-c", "touch " + first}},
		{Name: "second", Argv: []string{"sh", "-c", "touch " + second}},
	}

	if err := NewRunner(testLogger()).Run(context.Background(), steps); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	for _, marker := range []string{first, second} {
		if _, err := os.Stat(marker); err != nil {
			t.Errorf("step marker %s missing: %v", marker, err)
		}
	}
}

func TestRunnerStopsAtFirstFailure(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	marker := filepath.Join(dir, "never")

	steps := []Step{
		{Name: "migrate", Argv: []string{"sh", "-c", "exit 3"}},
		{Name: "collectstatic", Argv: []string{"sh", "-c", "touch " + marker}},
	}

	err := NewRunner(testLogger()).Run(context.Background(), steps)

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("Run() error = %v, want *StepError", err)
	}
	if stepErr.Step != "migrate" {
		t.Errorf("failed step = %q, want %q", stepErr.Step, "migrate")
	}
	if stepErr.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", stepErr.ExitCode)
	}
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Error("later step ran after a failure")
	}
}

func TestRunnerCommandNotFound(t *testing.T) {
	steps := []Step{
		{Name: "migrate", Argv: []string{"definitely-not-a-real-binary-4f2a"}},
	}

	err := NewRunner(testLogger()).Run(context.Background(), steps)

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("Run() error = %v, want *StepError", err)
	}
	if stepErr.ExitCode != 127 {
		t.Errorf("exit code = %d, want 127", stepErr.ExitCode)
	}
}

func TestExitCode(t *testing.T) {
	stepErr := &StepError{Step: "migrate", ExitCode: 3, Err: errors.New("boom")}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"step error", stepErr, 3},
		{"wrapped step error", fmt.Errorf("pipeline: %w", stepErr), 3},
		{"plain error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
