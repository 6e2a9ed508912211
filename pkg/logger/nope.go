package logger

import "log/slog"

// NewNope returns a logger that discards everything. Used as the default in
// constructors and tests.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
