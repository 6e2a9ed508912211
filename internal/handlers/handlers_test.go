package handlers_test

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panampa98/portfolio/internal/handlers"
	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/internal/site"
	"github.com/panampa98/portfolio/internal/web"
	"github.com/panampa98/portfolio/middlewares"
	"github.com/panampa98/portfolio/pkg/cookie"
	"github.com/panampa98/portfolio/pkg/i18n"
	"github.com/panampa98/portfolio/ui"
)

func newApp(t *testing.T, src portfolio.Source) *web.App {
	t.Helper()

	home, detail, err := ui.Templates()
	require.NoError(t, err)
	catalog, err := i18n.New(i18n.WithDir(ui.Translations()))
	require.NoError(t, err)

	langs := portfolio.DefaultLanguages()
	s := site.New(home, detail, portfolio.NewLoader(src, langs), catalog, site.WithAssets(ui.Static()))
	pref := cookie.New("lang")

	return web.New(
		web.WithMiddleware(
			middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "req-1" })),
			middlewares.Language(portfolio.NewResolver(langs), catalog, middlewares.WithLanguageCookie(pref)),
		),
		web.WithErrorHandler(handlers.ErrorHandler()),
		web.WithHandlers(handlers.NewPageHandler(s, pref)),
	)
}

func uiApp(t *testing.T) *web.App {
	t.Helper()
	return newApp(t, portfolio.NewFSSource(ui.Static()))
}

func do(app *web.App, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func langCookie(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "lang" {
			return c.Value
		}
	}
	t.Fatal("lang cookie not set")
	return ""
}

func TestHome(t *testing.T) {
	t.Parallel()

	app := uiApp(t)

	tests := []struct {
		name   string
		target string
		cookie string
		want   string
	}{
		{name: "default", target: "/", want: "en"},
		{name: "query", target: "/?lang=es", want: "es"},
		{name: "index path", target: "/index.html?lang=es", want: "es"},
		{name: "cookie", target: "/", cookie: "es", want: "es"},
		{name: "query beats cookie", target: "/?lang=en", cookie: "es", want: "en"},
		{name: "unsupported query", target: "/?lang=fr", cookie: "es", want: "es"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			w := do(app, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), fmt.Sprintf(`<html lang="%s">`, tt.want))
			assert.Contains(t, w.Body.String(), fmt.Sprintf(`id="%s-btn" class="language-button active-language"`, tt.want))
			assert.Equal(t, tt.want, langCookie(t, w))
			assert.Contains(t, w.Header().Get("Content-Location"), "lang="+tt.want)
			assert.Contains(t, w.Header().Values("Vary"), "Cookie, Accept-Language")
			assert.Empty(t, w.Header().Get("HX-Replace-Url"))
		})
	}
}

func TestHomeContentLocation(t *testing.T) {
	t.Parallel()

	w := do(uiApp(t), httptest.NewRequest(http.MethodGet, "/?utm=x&lang=fr", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/?utm=x&lang=en", w.Header().Get("Content-Location"))
	assert.Contains(t, w.Body.String(), `href="/?utm=x&amp;lang=es"`)
}

func TestHomeHead(t *testing.T) {
	t.Parallel()

	w := do(uiApp(t), httptest.NewRequest(http.MethodHead, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHomeHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/projects/etl-pipeline/?lang=es", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Current-URL", "https://devpold.dev/projects/etl-pipeline/?utm=1")
	w := do(uiApp(t), req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/projects/etl-pipeline/?utm=1&lang=es", w.Header().Get("HX-Replace-Url"))
	assert.Contains(t, w.Body.String(), `href="/projects/etl-pipeline/?utm=1&amp;lang=en"`)
}

func TestProject(t *testing.T) {
	t.Parallel()

	app := uiApp(t)

	t.Run("detail", func(t *testing.T) {
		t.Parallel()

		for _, target := range []string{"/projects/etl-pipeline/?lang=es", "/projects/etl-pipeline/index.html?lang=es"} {
			w := do(app, httptest.NewRequest(http.MethodGet, target, nil))
			require.Equal(t, http.StatusOK, w.Code, target)
			assert.Contains(t, w.Body.String(), "<title>DevPold - Pipeline ETL operativo</title>")
			assert.Contains(t, w.Body.String(), `data-project-slug="etl-pipeline"`)
		}
	})

	t.Run("trailing slash redirect", func(t *testing.T) {
		t.Parallel()

		w := do(app, httptest.NewRequest(http.MethodGet, "/projects/etl-pipeline?lang=es", nil))
		assert.Equal(t, http.StatusMovedPermanently, w.Code)
		assert.Equal(t, "/projects/etl-pipeline/?lang=es", w.Header().Get("Location"))
	})

	t.Run("unknown slug", func(t *testing.T) {
		t.Parallel()

		w := do(app, httptest.NewRequest(http.MethodGet, "/projects/nope/", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Project not found")
		assert.Equal(t, "en", langCookie(t, w))
	})
}

func TestFallbackLanguage(t *testing.T) {
	t.Parallel()

	data, err := fs.ReadFile(ui.Static(), "assets/i18n/en.json")
	require.NoError(t, err)
	app := newApp(t, portfolio.NewFSSource(fstest.MapFS{"assets/i18n/en.json": {Data: data}}))

	w := do(app, httptest.NewRequest(http.MethodGet, "/?lang=es", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<html lang="en">`)
	assert.Equal(t, "en", langCookie(t, w))
	assert.Equal(t, "/?lang=en", w.Header().Get("Content-Location"))
}

func TestContentUnavailable(t *testing.T) {
	t.Parallel()

	app := newApp(t, portfolio.NewFSSource(fstest.MapFS{}))

	w := do(app, httptest.NewRequest(http.MethodGet, "/?lang=es", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<html lang="es">`)
	assert.Contains(t, body, "El contenido no está disponible")
	assert.Contains(t, body, "ID de solicitud: req-1")
	assert.Contains(t, body, `href="/?lang=es"`)
	assert.Empty(t, w.Result().Cookies())
}

func TestNotFoundRoute(t *testing.T) {
	t.Parallel()

	w := do(uiApp(t), httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "The page you are looking for does not exist.")

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	req.Header.Set("HX-Request", "true")
	w = do(uiApp(t), req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<html")
	assert.Contains(t, w.Body.String(), `data-status="404"`)
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNotFound, handlers.StatusCode(web.ErrNotFound("x")))
	assert.Equal(t, http.StatusServiceUnavailable, handlers.StatusCode(&middlewares.TimeoutError{}))
	assert.Equal(t, http.StatusServiceUnavailable, handlers.StatusCode(fmt.Errorf("x: %w", &portfolio.LoadError{Err: errors.New("gone")})))
	assert.Equal(t, http.StatusInternalServerError, handlers.StatusCode(errors.New("boom")))
}
