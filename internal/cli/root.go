package cli

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/majicmall/entrypoint/internal/config"
	"github.com/majicmall/entrypoint/internal/launch"
	"github.com/majicmall/entrypoint/internal/logger"
	"github.com/majicmall/entrypoint/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Environment
	appLogger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:               "entrypoint",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "Container entrypoint for the majicmall web application",
	Long: `Runs the pre-serve pipeline (database migrations, static asset
collection) and then replaces itself with the gunicorn WSGI server.

Behavior is driven entirely by environment variables; run the env subcommand
to see the resolved values. The container image registers this command, with
no arguments, as its default CMD.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Printf("failed to load configuration: %v", err.Error())
			return err
		}

		appLogger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.DebugEnabled())

		// Tag every line so interleaved platform logs can be correlated
		// to a single container start.
		appLogger = appLogger.With(slog.String("run_id", uuid.NewString()))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

// Execute runs the CLI and returns the process exit code. A failed pipeline
// step's exit code is propagated verbatim.
func Execute() int {
	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := rootCmd.Execute(); err != nil {
		if appLogger != nil {
			appLogger.Error("startup failed", slog.String("error", err.Error()))
		}
		return launch.ExitCode(err)
	}
	return 0
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(envCmd)
}
