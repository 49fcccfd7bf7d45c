package cli

import (
	"fmt"
	"strings"

	"github.com/majicmall/entrypoint/internal/launch"
	"github.com/spf13/cobra"
)

// planCmd shows what the pipeline would do without touching the database or
// the filesystem. Useful when debugging a deployment's environment.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the startup commands without running them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg.WaitForDB {
			fmt.Fprintf(out, "wait-db\tping %s (timeout %s)\n", redactDatabaseURL(cfg.DatabaseURL), cfg.DBWaitTimeout)
		}
		for _, step := range launch.SetupSteps(cfg) {
			fmt.Fprintf(out, "%s\t%s\n", step.Name, step.String())
		}
		fmt.Fprintf(out, "serve\t%s\n", strings.Join(launch.ServerCommand(cfg), " "))
		return nil
	},
}
