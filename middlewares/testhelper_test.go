package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/panampa98/portfolio/internal/web"
	"github.com/panampa98/portfolio/pkg/logger"
)

type routes func(r web.Router)

func (f routes) Routes(r web.Router) { f(r) }

// serve runs req through an app with the given middleware and a single
// GET / handler.
func serve(t *testing.T, req *http.Request, h web.HandlerFunc, opts ...web.Option) *httptest.ResponseRecorder {
	t.Helper()

	opts = append(opts, web.WithHandlers(routes(func(r web.Router) {
		r.GET("/", h)
	})))
	w := httptest.NewRecorder()
	web.New(opts...).ServeHTTP(w, req)
	return w
}

// bufferLogger returns a text logger writing into buf with request ids.
func bufferLogger(buf *bytes.Buffer, extractors ...logger.ContextExtractor) *slog.Logger {
	return logger.NewWithWriter(buf, logger.Config{Level: "debug", Format: "text"}, extractors...)
}
