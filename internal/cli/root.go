package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/panampa98/portfolio/internal/config"
	"github.com/panampa98/portfolio/middlewares"
	"github.com/panampa98/portfolio/pkg/logger"
)

// App holds what every command needs once configuration is loaded.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	envFiles []string
	// newLogger is replaced in tests.
	newLogger func(cfg *config.Config) *slog.Logger
}

// NewRootCmd creates the "portfolio" command with serve, build and check.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{newLogger: defaultLogger})
}

func newRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve, export and check the bilingual portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(app.envFiles...)
			if err != nil {
				return err
			}
			app.Config = cfg
			app.Logger = app.newLogger(cfg)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Flush()
		},
	}
	root.PersistentFlags().StringSliceVar(&app.envFiles, "env-file", nil, "load variables from these .env files (default ./.env when present)")

	root.AddCommand(
		newServeCmd(app),
		newBuildCmd(app),
		newCheckCmd(app),
	)
	return root
}

func defaultLogger(cfg *config.Config) *slog.Logger {
	return logger.NewWithSentry(cfg.Log, cfg.Sentry, middlewares.RequestIDExtractor())
}

// writerLogger sends logs to w, used by tests.
func writerLogger(w io.Writer) func(*config.Config) *slog.Logger {
	return func(cfg *config.Config) *slog.Logger {
		return logger.NewWithWriter(w, cfg.Log, middlewares.RequestIDExtractor())
	}
}
