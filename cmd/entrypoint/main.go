package main

import (
	"os"

	"github.com/majicmall/entrypoint/internal/cli"
)

// Deployment launcher for the majicmall Django application. On success this
// process is replaced by gunicorn and main never returns; on failure the
// first failing setup step's exit code becomes the container's exit code.
func main() {
	os.Exit(cli.Execute())
}
