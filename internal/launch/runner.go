package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// Exit codes for steps that never ran, matching shell conventions.
const (
	exitCommandNotFound = 127
	exitCannotExecute   = 126
	exitFailureFallback = 1
)

// StepError reports a failed pipeline step together with the exit code the
// launcher process should terminate with.
type StepError struct {
	Step     string
	ExitCode int
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed with exit code %d: %v", e.Step, e.ExitCode, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// ExitCode maps a pipeline error to the launcher's process exit code. The
// first failing step's exit code is propagated verbatim.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.ExitCode
	}
	return exitFailureFallback
}

// Runner executes steps strictly in order, stopping at the first failure.
// There is deliberately no retry or partial-success handling: a half-migrated
// or half-collected state must never proceed to serving traffic.
type Runner struct {
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run executes each step with inherited environment and stdio. The returned
// error is a *StepError carrying the child's exit code; 127 when the command
// could not be found.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		r.logger.Info("running step",
			slog.String("step", step.Name),
			slog.String("command", step.String()),
		)

		cmd := exec.CommandContext(ctx, step.Argv[0], step.Argv[1:]...)
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr
		cmd.Env = os.Environ()

		if err := cmd.Run(); err != nil {
			code := exitCommandNotFound
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			}
			r.logger.Error("step failed",
				slog.String("step", step.Name),
				slog.Int("exit_code", code),
			)
			return &StepError{Step: step.Name, ExitCode: code, Err: err}
		}

		r.logger.Info("step complete", slog.String("step", step.Name))
	}
	return nil
}
