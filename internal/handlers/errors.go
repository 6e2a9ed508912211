package handlers

import (
	"errors"
	"net/http"

	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/internal/views"
	"github.com/panampa98/portfolio/internal/web"
	"github.com/panampa98/portfolio/middlewares"
	"github.com/panampa98/portfolio/pkg/i18n"
)

// Interface string keys of the error page.
const (
	KeyErrorTitle       = "error.title"
	KeyErrorNotFound    = "error.not_found"
	KeyErrorUnavailable = "error.unavailable"
	KeyErrorGeneric     = "error.generic"
	KeyErrorBack        = "error.back"
	KeyErrorRequestID   = "error.request_id"
)

// ErrorHandler renders errors as a localized page. htmx requests receive
// only the message fragment.
func ErrorHandler() web.ErrorHandler {
	return func(c web.Context, err error) error {
		status := StatusCode(err)
		if status >= http.StatusInternalServerError {
			c.LogError("request failed", "status", status, "error", err)
		} else {
			c.LogDebug("request rejected", "status", status, "error", err)
		}

		lang := c.Language()
		data := views.ErrorData{
			Lang:     lang,
			Status:   status,
			Title:    c.T(KeyErrorTitle),
			Message:  errorMessage(c, status),
			Back:     c.T(KeyErrorBack),
			BackHref: "/",
		}
		if lang != "" {
			data.BackHref = portfolio.WithLang("/", portfolio.Code(lang))
		}
		if id := middlewares.GetRequestID(c); id != "" {
			data.RequestID = c.T(KeyErrorRequestID, i18n.M{"id": id})
		}

		if c.IsHTMX() {
			return c.Render(status, views.ErrorFragment(data))
		}
		return c.Render(status, views.ErrorPage(data))
	}
}

// StatusCode maps err to an HTTP status: the HTTPError code, 503 for
// timeouts and failed document loads, 500 otherwise.
func StatusCode(err error) int {
	if he := web.AsHTTPError(err); he != nil {
		return he.Code
	}
	if _, ok := middlewares.AsTimeoutError(err); ok {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, portfolio.ErrLoad) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func errorMessage(c web.Context, status int) string {
	switch {
	case status == http.StatusNotFound:
		return c.T(KeyErrorNotFound)
	case status == http.StatusServiceUnavailable:
		return c.T(KeyErrorUnavailable)
	case status >= http.StatusInternalServerError:
		return c.T(KeyErrorGeneric)
	default:
		return http.StatusText(status)
	}
}
