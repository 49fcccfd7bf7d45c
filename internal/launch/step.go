// Package launch sequences the startup pipeline: run the Django management
// commands that must succeed before traffic is served, then replace the
// launcher process with gunicorn.
package launch

import (
	"fmt"
	"strconv"

	"github.com/majicmall/entrypoint/internal/config"
)

// Step is one external command in the startup pipeline. Argv[0] is the
// program; steps run with inherited stdio and environment.
type Step struct {
	Name string
	Argv []string
}

func (s Step) String() string {
	out := s.Argv[0]
	for _, a := range s.Argv[1:] {
		out += " " + a
	}
	return out
}

// MigrateStep applies pending schema migrations. --noinput keeps the
// migration runner from prompting inside a container.
func MigrateStep(cfg *config.Environment) Step {
	return Step{
		Name: "migrate",
		Argv: []string{cfg.PythonBin, cfg.ManagePy, "migrate", "--noinput"},
	}
}

// CollectStaticStep gathers static assets into the serving directory.
func CollectStaticStep(cfg *config.Environment) Step {
	return Step{
		Name: "collectstatic",
		Argv: []string{cfg.PythonBin, cfg.ManagePy, "collectstatic", "--noinput"},
	}
}

// SetupSteps returns the pre-serve steps in execution order, honoring the
// SKIP_* toggles.
func SetupSteps(cfg *config.Environment) []Step {
	var steps []Step
	if !cfg.SkipMigrate {
		steps = append(steps, MigrateStep(cfg))
	}
	if !cfg.SkipCollectStatic {
		steps = append(steps, CollectStaticStep(cfg))
	}
	return steps
}

// ServerCommand builds the gunicorn argv for the final handoff. The server
// binds all interfaces on the configured port and writes access and error
// logs to stdout/stderr so the container runtime captures them.
func ServerCommand(cfg *config.Environment) []string {
	argv := []string{
		cfg.GunicornBin,
		cfg.WSGIApp,
		"--bind", fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		"--log-level", cfg.LogLevel,
		"--access-logfile", "-",
		"--error-logfile", "-",
	}
	if cfg.GunicornWorkers > 0 {
		argv = append(argv, "--workers", strconv.Itoa(cfg.GunicornWorkers))
	}
	return argv
}
