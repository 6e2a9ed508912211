package page_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"

	"github.com/panampa98/portfolio/internal/page"
)

const doc = `<!DOCTYPE html>
<html lang="en">
<head><title>DevPold</title></head>
<body data-project-slug="etl">
  <h1 id="about-title">About</h1>
  <h1 id="about-title">Duplicate</h1>
  <a data-nav-link="index.html#about" data-i18n="navAbout">About</a>
  <button id="en-btn" class="language-button active-language">EN</button>
  <button id="es-btn" class="language-button">ES</button>
  <a data-lang-switch="es">ES</a>
  <img class="stack-icon" src="assets/icons/go.svg" data-fallback="assets/icons/default.svg">
  <img src="assets/me.png">
</body>
</html>`

func parse(t *testing.T, src string) *page.Template {
	t.Helper()
	tpl, err := page.Parse("index.html", strings.NewReader(src))
	require.NoError(t, err)
	return tpl
}

func TestInstantiateIndex(t *testing.T) {
	t.Parallel()

	p := parse(t, doc).Instantiate()

	n, ok := p.ByID("about-title")
	require.True(t, ok)
	assert.Equal(t, "About", page.TextContent(n), "first id wins")

	_, ok = p.ByID("missing")
	assert.False(t, ok)

	assert.Len(t, p.Labeled("navAbout"), 1)
	assert.Len(t, p.NavLinks(), 1)
	assert.Len(t, p.LanguageButtons(), 2)
	assert.Len(t, p.LanguageSwitches(), 1)
	assert.Len(t, p.FallbackImages(), 1)
	assert.Equal(t, "etl", p.Slug())
	assert.Equal(t, "DevPold", p.Title())
	assert.Equal(t, "en", p.Lang())
}

func TestInstancesAreIndependent(t *testing.T) {
	t.Parallel()

	tpl := parse(t, doc)
	a := tpl.Instantiate()
	b := tpl.Instantiate()

	a.SetTitle("changed")
	a.SetLang("es")
	n, _ := a.ByID("about-title")
	page.SetText(n, "Sobre mí")

	assert.Equal(t, "DevPold", b.Title())
	assert.Equal(t, "en", b.Lang())
	m, _ := b.ByID("about-title")
	assert.Equal(t, "About", page.TextContent(m))
}

func TestSetTitleCreatesElement(t *testing.T) {
	t.Parallel()

	p := parse(t, `<html><head></head><body></body></html>`).Instantiate()
	assert.Empty(t, p.Title())
	assert.Empty(t, p.Slug())

	p.SetTitle("DevPold - ETL")
	assert.Equal(t, "DevPold - ETL", p.Title())

	out, err := p.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), "<title>DevPold - ETL</title>")
}

func TestNodeHelpers(t *testing.T) {
	t.Parallel()

	n := page.Elem(atom.Li, page.Class("a", "b"))
	page.AddClass(n, "c")
	page.AddClass(n, "a")
	v, _ := page.GetAttr(n, "class")
	assert.Equal(t, "a b c", v)

	page.RemoveClass(n, "b")
	assert.False(t, page.HasClass(n, "b"))
	assert.True(t, page.HasClass(n, "c"))

	page.SetAttr(n, "data-tech", "Go")
	page.SetAttr(n, "data-tech", "SQL")
	v, ok := page.GetAttr(n, "data-tech")
	assert.True(t, ok)
	assert.Equal(t, "SQL", v)

	page.RemoveAttr(n, "data-tech")
	_, ok = page.GetAttr(n, "data-tech")
	assert.False(t, ok)

	page.Append(n, page.Text("one"), nil, page.Text("two"))
	assert.Equal(t, "onetwo", page.TextContent(n))

	page.SetText(n, "<b>x</b>")
	assert.Equal(t, "<b>x</b>", page.TextContent(n))
}

func TestRenderEscapesText(t *testing.T) {
	t.Parallel()

	p := parse(t, doc).Instantiate()
	n, _ := p.ByID("about-title")
	page.SetText(n, `<script>alert("x")</script>`)

	out, err := p.Bytes()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.Contains(t, string(out), "&lt;script&gt;")
}
