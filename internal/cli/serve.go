package cli

import (
	"io/fs"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/panampa98/portfolio/internal/handlers"
	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/internal/web"
	"github.com/panampa98/portfolio/middlewares"
	"github.com/panampa98/portfolio/pkg/cookie"
	"github.com/panampa98/portfolio/pkg/redis"
	"github.com/panampa98/portfolio/ui"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the localized site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				app.Config.Address = addr
			}
			ctx := cmd.Context()

			rt, err := wire(ctx, app.Config, app.Logger)
			if err != nil {
				return err
			}

			h, err := newHandler(rt, app)
			if err != nil {
				rt.Close(ctx)
				return err
			}

			return h.Run(app.Config.Address,
				web.Logger(app.Logger),
				web.WithContext(ctx),
				web.ShutdownTimeout(app.Config.ShutdownTimeout),
				web.ShutdownHook(rt.Close),
			)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides ADDRESS)")
	return cmd
}

// newHandler assembles the HTTP application.
func newHandler(rt *runtime, app *App) (*web.App, error) {
	cfg := app.Config

	assets, err := fs.Sub(ui.Static(), "assets")
	if err != nil {
		return nil, err
	}

	pref := cookie.New(cfg.Cookie.Name,
		cookie.WithSecret(cfg.Cookie.Secret),
		cookie.WithSecure(cfg.Cookie.Secure),
	)
	resolver := portfolio.NewResolver(rt.langs, portfolio.WithNegotiation(cfg.Site.Negotiate))

	checks := []web.HealthOption{
		web.WithReadinessCheck("content", rt.site.Ready),
	}
	if rt.redis != nil {
		checks = append(checks, web.WithReadinessCheck("redis", redis.Healthcheck(rt.redis)))
	}

	return web.New(
		web.WithLogger(app.Logger),
		web.WithHTTPMiddleware(
			middleware.RealIP,
			middleware.Compress(5, "text/html", "text/css", "application/json", "image/svg+xml"),
		),
		web.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Language(resolver, rt.catalog, middlewares.WithLanguageCookie(pref)),
			middlewares.RequestLog(),
			middlewares.Recover(),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		web.WithStaticFiles("/assets/", assets, "86400"),
		web.WithErrorHandler(handlers.ErrorHandler()),
		web.WithHealthChecks(checks...),
		web.WithHandlers(handlers.NewPageHandler(rt.site, pref)),
	), nil
}
