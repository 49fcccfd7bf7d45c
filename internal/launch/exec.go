package launch

import (
	"os"
	"os/exec"
	"syscall"
)

// execve is swappable for tests; syscall.Exec never returns on success.
var execve = syscall.Exec

// Handoff replaces the current process image with the server command. On
// success it does not return: the server takes over the launcher's pid, so
// no supervisory process remains and the server handles its own signals.
func Handoff(argv []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return &StepError{Step: "serve", ExitCode: exitCommandNotFound, Err: err}
	}
	if err := execve(path, argv, os.Environ()); err != nil {
		return &StepError{Step: "serve", ExitCode: exitCannotExecute, Err: err}
	}
	return nil
}
