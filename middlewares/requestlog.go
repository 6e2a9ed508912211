package middlewares

import (
	"log/slog"
	"time"

	"github.com/panampa98/portfolio/internal/web"
)

// RequestLog logs one record per request with the status the handler chose.
// Server errors log at error level, client errors at warn, the rest at info.
func RequestLog() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			start := time.Now()
			err := next(c)

			status := c.ResponseWriter().Status()
			if !c.Written() && err != nil {
				status = 500
				if he := web.AsHTTPError(err); he != nil {
					status = he.Code
				}
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Int64("bytes", c.ResponseWriter().Size()),
				slog.Duration("duration", time.Since(start)),
			}
			if lang := c.Language(); lang != "" {
				attrs = append(attrs, slog.String("lang", lang))
			}

			switch {
			case status >= 500:
				c.LogError("request", attrs...)
			case status >= 400:
				c.LogWarn("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}
			return err
		}
	}
}
