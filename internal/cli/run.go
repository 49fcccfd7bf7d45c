package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/majicmall/entrypoint/internal/config"
	"github.com/majicmall/entrypoint/internal/database"
	"github.com/majicmall/entrypoint/internal/launch"
)

// run executes the full startup pipeline. It only returns on failure; on
// success the process image has been replaced by gunicorn.
func run(ctx context.Context) error {
	appLogger.Info("starting majicmall",
		slog.Int("port", cfg.Port),
		slog.String("wsgi_app", cfg.WSGIApp),
		slog.Bool("debug", cfg.DebugEnabled()),
	)

	if cfg.DjangoSecretKey == config.PlaceholderSecretKey {
		appLogger.Warn("DJANGO_SECRET_KEY is unset, serving with the placeholder value")
	}

	if cfg.WaitForDB {
		waitCtx, cancel := context.WithTimeout(ctx, cfg.DBWaitTimeout)
		defer cancel()
		if err := database.WaitReady(waitCtx, appLogger, cfg.DatabaseURL, cfg.DBWaitInterval); err != nil {
			return err
		}
	}

	runner := launch.NewRunner(appLogger)
	if err := runner.Run(ctx, launch.SetupSteps(cfg)); err != nil {
		return err
	}

	argv := launch.ServerCommand(cfg)
	appLogger.Info("handing off to gunicorn", slog.String("command", strings.Join(argv, " ")))
	return launch.Handoff(argv)
}
