// Package logger builds the structured slog logger used by the portfolio server and CLI.
//
// Records are written as JSON (or text) to stdout. Context extractors add
// request-scoped attributes, such as the request id, on every call:
//
//	log := logger.New(logger.Config{Level: "debug"}, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "page localized", slog.String("lang", "es"))
//
// When a Sentry DSN is configured, NewWithSentry fans records out to Sentry as
// well: errors become issues and warnings are kept as breadcrumbs-style logs.
// Missing or broken Sentry configuration degrades to stdout only.
package logger
