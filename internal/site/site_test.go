package site_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panampa98/portfolio/internal/page"
	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/internal/render"
	"github.com/panampa98/portfolio/internal/site"
	"github.com/panampa98/portfolio/pkg/i18n"
	"github.com/panampa98/portfolio/ui"
)

func newSite(t *testing.T, src portfolio.Source) *site.Site {
	t.Helper()

	home, detail, err := ui.Templates()
	require.NoError(t, err)
	catalog, err := i18n.New(i18n.WithDir(ui.Translations()))
	require.NoError(t, err)

	loader := portfolio.NewLoader(src, portfolio.DefaultLanguages())
	return site.New(home, detail, loader, catalog, site.WithAssets(ui.Static()))
}

func uiSite(t *testing.T) *site.Site {
	t.Helper()
	return newSite(t, portfolio.NewFSSource(ui.Static()))
}

// onlyEnglish serves the English document and nothing else.
func onlyEnglish(t *testing.T) portfolio.Source {
	t.Helper()
	data, err := fs.ReadFile(ui.Static(), "assets/i18n/en.json")
	require.NoError(t, err)
	return portfolio.NewFSSource(fstest.MapFS{"assets/i18n/en.json": {Data: data}})
}

func text(t *testing.T, p *page.Page, id string) string {
	t.Helper()
	n, ok := p.ByID(id)
	require.True(t, ok, "missing #%s", id)
	return strings.TrimSpace(page.TextContent(n))
}

func attr(t *testing.T, p *page.Page, id, key string) string {
	t.Helper()
	n, ok := p.ByID(id)
	require.True(t, ok, "missing #%s", id)
	v, _ := page.GetAttr(n, key)
	return v
}

func TestLocalizeHome(t *testing.T) {
	t.Parallel()

	s := uiSite(t)
	current, _ := url.Parse("/?lang=fr&utm=x")

	res, err := s.Localize(context.Background(), site.Request{Kind: site.Home, Lang: "es", URL: current})
	require.NoError(t, err)

	assert.Equal(t, portfolio.Spanish, res.Lang)
	assert.False(t, res.FellBack())
	assert.False(t, res.NotFound())
	assert.Equal(t, "index.html", res.Path)

	p := res.Page
	assert.Equal(t, "es", p.Lang())
	assert.Equal(t, "Sobre mí", text(t, p, "about-title"))
	assert.Equal(t, "Idioma", text(t, p, "language-label"))
	for _, n := range p.Labeled("navProjects") {
		assert.Equal(t, "Proyectos", page.TextContent(n))
	}

	grid, _ := p.ByID("projects-grid")
	cards := 0
	for c := grid.FirstChild; c != nil; c = c.NextSibling {
		cards++
	}
	assert.Equal(t, 3, cards)

	body, err := p.Bytes()
	require.NoError(t, err)
	out := string(body)
	assert.Contains(t, out, `href="projects/sales-forecasting/index.html?lang=es"`)
	assert.Contains(t, out, "Problema")
	assert.Contains(t, out, `href="?lang=es#projects"`)

	assert.Contains(t, attr(t, p, "es-btn", "class"), render.ClassActiveLanguage)
	assert.Equal(t, "true", attr(t, p, "es-btn", "aria-pressed"))
	assert.Equal(t, "false", attr(t, p, "en-btn", "aria-pressed"))
	assert.Equal(t, "/?lang=en&utm=x", attr(t, p, "en-btn", "href"))
}

func TestLocalizeUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	res, err := uiSite(t).Localize(context.Background(), site.Request{Lang: "fr"})
	require.NoError(t, err)
	assert.Equal(t, portfolio.English, res.Lang)
	assert.Equal(t, portfolio.English, res.Requested)
	assert.Equal(t, "About me", text(t, res.Page, "about-title"))
}

func TestLocalizeFallback(t *testing.T) {
	t.Parallel()

	s := newSite(t, onlyEnglish(t))
	state := &portfolio.State{}

	res, err := s.Localize(context.Background(), site.Request{Lang: "es", State: state})
	require.NoError(t, err)
	assert.Equal(t, portfolio.English, res.Lang)
	assert.Equal(t, portfolio.Spanish, res.Requested)
	assert.True(t, res.FellBack())
	assert.Equal(t, "en", res.Page.Lang())
	assert.Contains(t, attr(t, res.Page, "en-btn", "class"), render.ClassActiveLanguage)

	lang, doc := state.Current()
	assert.Equal(t, portfolio.English, lang)
	assert.Same(t, res.Document, doc)
}

func TestLocalizeLoadFailure(t *testing.T) {
	t.Parallel()

	s := newSite(t, portfolio.NewFSSource(fstest.MapFS{}))

	_, err := s.Localize(context.Background(), site.Request{Lang: "es"})
	require.Error(t, err)
	assert.ErrorIs(t, err, portfolio.ErrLoad)
	le, ok := portfolio.AsLoadError(err)
	require.True(t, ok)
	assert.Equal(t, portfolio.English, le.Lang)
}

func TestLocalizeSuperseded(t *testing.T) {
	t.Parallel()

	state := &portfolio.State{}
	src := portfolio.SourceFunc(func(ctx context.Context, name string) (io.ReadCloser, error) {
		state.Begin()
		f, err := ui.Static().Open(name)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
	s := newSite(t, src)

	_, err := s.Localize(context.Background(), site.Request{Lang: "en", State: state})
	require.ErrorIs(t, err, site.ErrSuperseded)

	_, doc := state.Current()
	assert.Nil(t, doc)
}

func TestLocalizeProject(t *testing.T) {
	t.Parallel()

	s := uiSite(t)

	t.Run("known slug", func(t *testing.T) {
		t.Parallel()

		res, err := s.Localize(context.Background(), site.Request{Kind: site.Project, Slug: "sales-forecasting", Lang: "en"})
		require.NoError(t, err)
		assert.True(t, res.Detail.Found)
		assert.False(t, res.NotFound())
		assert.Equal(t, "projects/sales-forecasting/index.html", res.Path)

		p := res.Page
		assert.Equal(t, "sales-forecasting", p.Slug())
		assert.Equal(t, "DevPold - Sales Forecasting", p.Title())
		assert.Equal(t, "Sales Forecasting", text(t, p, "project-title"))
		assert.Equal(t, "Weekly demand forecasts cut stockouts by 18% across 40 stores.", text(t, p, "project-summary"))
		assert.Equal(t, "Project details", text(t, p, "project-details-heading"))

		body, err := p.Bytes()
		require.NoError(t, err)
		assert.Contains(t, string(body), `href="../../index.html?lang=en#projects"`)
		assert.Contains(t, string(body), "<li>Airflow</li>")
	})

	t.Run("summary when impact is empty", func(t *testing.T) {
		t.Parallel()

		res, err := s.Localize(context.Background(), site.Request{Kind: site.Project, Slug: "churn-dashboard", Lang: "es"})
		require.NoError(t, err)
		assert.Equal(t, "Puntaje de riesgo de fuga y un tablero para el equipo de retención.", text(t, res.Page, "project-summary"))
	})

	t.Run("unknown slug", func(t *testing.T) {
		t.Parallel()

		res, err := s.Localize(context.Background(), site.Request{Kind: site.Project, Slug: "nope", Lang: "es"})
		require.NoError(t, err)
		assert.True(t, res.NotFound())
		assert.Equal(t, "Proyecto no encontrado", text(t, res.Page, "project-title"))
		assert.Equal(t, "DevPold", res.Page.Title())
	})
}

func TestLocalizeImageFallbacks(t *testing.T) {
	t.Parallel()

	res, err := uiSite(t).Localize(context.Background(), site.Request{Lang: "en"})
	require.NoError(t, err)

	bySrc := map[string]string{}
	for _, img := range res.Page.FallbackImages() {
		alt, _ := page.GetAttr(img, "alt")
		src, _ := page.GetAttr(img, "src")
		bySrc[alt] = src
		assert.True(t, page.HasClass(img, render.ClassLoaded), alt)
	}
	assert.Equal(t, "assets/icons/python.svg", bySrc["Python"])
	assert.Equal(t, "assets/icons/default.svg", bySrc["Airflow"])
}

func TestLocalizeSwitchHref(t *testing.T) {
	t.Parallel()

	res, err := uiSite(t).Localize(context.Background(), site.Request{
		Lang:       "en",
		SwitchHref: func(c portfolio.Code) string { return "/" + c.String() + "/" },
	})
	require.NoError(t, err)
	assert.Equal(t, "/es/", attr(t, res.Page, "es-btn", "href"))
}

func TestReady(t *testing.T) {
	t.Parallel()

	require.NoError(t, uiSite(t).Ready(context.Background()))

	err := newSite(t, portfolio.NewFSSource(fstest.MapFS{})).Ready(context.Background())
	assert.True(t, errors.Is(err, portfolio.ErrLoad))
}
