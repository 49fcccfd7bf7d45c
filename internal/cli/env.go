package cli

import (
	"fmt"
	"net/url"

	"github.com/majicmall/entrypoint/internal/config"
	"github.com/spf13/cobra"
)

// envCmd prints the resolved configuration. Secrets are redacted; the
// placeholder key is shown as-is since surfacing it is the point.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		secret := "[redacted]"
		if cfg.DjangoSecretKey == config.PlaceholderSecretKey {
			secret = config.PlaceholderSecretKey
		}

		fmt.Fprintf(out, "DJANGO_SECRET_KEY=%s\n", secret)
		fmt.Fprintf(out, "DJANGO_DEBUG=%s\n", cfg.DjangoDebug)
		fmt.Fprintf(out, "PORT=%d\n", cfg.Port)
		fmt.Fprintf(out, "PYTHON_BIN=%s\n", cfg.PythonBin)
		fmt.Fprintf(out, "MANAGE_PY=%s\n", cfg.ManagePy)
		fmt.Fprintf(out, "GUNICORN_BIN=%s\n", cfg.GunicornBin)
		fmt.Fprintf(out, "WSGI_APP=%s\n", cfg.WSGIApp)
		fmt.Fprintf(out, "GUNICORN_WORKERS=%d\n", cfg.GunicornWorkers)
		fmt.Fprintf(out, "LOG_LEVEL=%s\n", cfg.LogLevel)
		fmt.Fprintf(out, "SKIP_MIGRATE=%t\n", cfg.SkipMigrate)
		fmt.Fprintf(out, "SKIP_COLLECTSTATIC=%t\n", cfg.SkipCollectStatic)
		fmt.Fprintf(out, "WAIT_FOR_DB=%t\n", cfg.WaitForDB)
		fmt.Fprintf(out, "DATABASE_URL=%s\n", redactDatabaseURL(cfg.DatabaseURL))
		fmt.Fprintf(out, "DB_WAIT_TIMEOUT=%s\n", cfg.DBWaitTimeout)
		fmt.Fprintf(out, "DB_WAIT_INTERVAL=%s\n", cfg.DBWaitInterval)
		return nil
	},
}

// redactDatabaseURL strips credentials from a connection URL for logging.
func redactDatabaseURL(databaseURL string) string {
	if databaseURL == "" {
		return ""
	}
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	return u.Redacted()
}
