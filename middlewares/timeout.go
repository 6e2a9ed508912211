package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/panampa98/portfolio/internal/web"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout puts a deadline on the request context. Language loads and other
// context-aware work stop when it expires; the resulting error is reported
// as a *TimeoutError.
func Timeout(timeout time.Duration) web.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetContext(ctx)

			err := next(c)
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return errors.Join(&TimeoutError{Duration: timeout}, err)
			}
			return err
		}
	}
}
