package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panampa98/portfolio/pkg/i18n"
)

func newCatalog(t *testing.T, opts ...i18n.Option) *i18n.Catalog {
	t.Helper()

	base := []i18n.Option{
		i18n.WithTranslations("en", "ui", map[string]any{
			"project": map[string]any{
				"problem":   "Problem",
				"not_found": "Project not found",
			},
			"greeting": "Hello, {{name}}!",
		}),
		i18n.WithTranslations("es", "ui", map[string]any{
			"project": map[string]any{"problem": "Problema"},
		}),
	}
	c, err := i18n.New(append(base, opts...)...)
	require.NoError(t, err)
	return c
}

func TestCatalogT(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)

	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{"exact", "es", "project.problem", "Problema"},
		{"default language", "en", "project.problem", "Problem"},
		{"falls back to default", "es", "project.not_found", "Project not found"},
		{"unknown language", "fr", "project.problem", "Problem"},
		{"missing key", "es", "nope", "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.T(tt.lang, "ui", tt.key))
		})
	}

	t.Run("placeholders", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello, Ana!", c.T("en", "ui", "greeting", i18n.M{"name": "Ana"}))
		assert.Equal(t, "Hello, {{name}}!", c.T("en", "ui", "greeting"))
	})

	t.Run("has does not fall back", func(t *testing.T) {
		t.Parallel()
		assert.True(t, c.Has("es", "ui", "project.problem"))
		assert.False(t, c.Has("es", "ui", "project.not_found"))
	})
}

func TestMissingKeyHandler(t *testing.T) {
	t.Parallel()

	var missing []string
	c := newCatalog(t, i18n.WithMissingKeyHandler(func(lang, ns, key string) {
		missing = append(missing, lang+":"+ns+":"+key)
	}))

	c.T("es", "ui", "project.problem")
	c.T("es", "ui", "gone")
	assert.Equal(t, []string{"es:ui:gone"}, missing)
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	_, err := i18n.New(i18n.WithDefaultLanguage(""))
	require.ErrorIs(t, err, i18n.ErrEmptyLanguage)

	_, err = i18n.New(i18n.WithTranslations("en", "", nil))
	require.ErrorIs(t, err, i18n.ErrEmptyNamespace)
}

func TestWithDir(t *testing.T) {
	t.Parallel()

	t.Run("json and yaml", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/ui.json":  {Data: []byte(`{"error":{"title":"Something went wrong"}}`)},
			"es/ui.yaml":  {Data: []byte("error:\n  title: Algo salió mal\n")},
			"README.md":   {Data: []byte("ignored")},
			"es/notes.md": {Data: []byte("ignored")},
		}
		c, err := i18n.New(i18n.WithDir(fsys))
		require.NoError(t, err)

		assert.Equal(t, "Something went wrong", c.T("en", "ui", "error.title"))
		assert.Equal(t, "Algo salió mal", c.T("es", "ui", "error.title"))
	})

	t.Run("file outside language directory", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithDir(fstest.MapFS{"ui.json": {Data: []byte(`{}`)}}))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})

	t.Run("broken file", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(i18n.WithDir(fstest.MapFS{"en/ui.json": {Data: []byte(`{`)}}))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)

	tr := i18n.NewTranslator(c, "es", "ui")
	assert.Equal(t, "es", tr.Language())
	assert.Equal(t, "Problema", tr.T("project.problem"))

	assert.Equal(t, "en", i18n.NewTranslator(c, "", "ui").Language())
	assert.Panics(t, func() { i18n.NewTranslator(nil, "en", "ui") })
}

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "es"}
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"es-MX,es;q=0.9", "es", true},
		{"en-US,en;q=0.9", "en", true},
		{"fr-FR,es;q=0.5", "es", true},
		{"de", "", false},
		{"", "", false},
		{"???", "", false},
	}
	for _, tt := range tests {
		got, ok := i18n.MatchAcceptLanguage(tt.header, supported)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}
