package portfolio_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panampa98/portfolio/internal/portfolio"
)

func TestLanguages(t *testing.T) {
	t.Parallel()

	langs := portfolio.DefaultLanguages()
	assert.Equal(t, portfolio.English, langs.Default())
	assert.Equal(t, []string{"en", "es"}, langs.Strings())

	c, ok := langs.Lookup("es")
	assert.True(t, ok)
	assert.Equal(t, portfolio.Spanish, c)

	for _, in := range []string{" es", "ES", "En"} {
		_, ok := langs.Lookup(in)
		assert.False(t, ok, in)
	}

	for _, in := range []string{"", "fr", "english", "e", "es-MX", "ES", " es "} {
		assert.Equal(t, portfolio.English, langs.Normalize(in), in)
	}

	custom, err := portfolio.NewLanguages("ES", "en", "es", "", "pt")
	require.NoError(t, err)
	assert.Equal(t, []string{"es", "en", "pt"}, custom.Strings())

	_, err = portfolio.NewLanguages(" ")
	require.ErrorIs(t, err, portfolio.ErrInvalidLanguages)
}

func TestResolver(t *testing.T) {
	t.Parallel()

	q := func(lang string) url.Values { return url.Values{"lang": {lang}} }

	tests := []struct {
		name      string
		in        portfolio.ResolveInput
		negotiate bool
		want      portfolio.Code
		origin    portfolio.Origin
	}{
		{"nothing", portfolio.ResolveInput{}, false, "en", portfolio.OriginDefault},
		{"query wins over stored", portfolio.ResolveInput{Query: q("es"), Stored: "en"}, false, "es", portfolio.OriginQuery},
		{"stored used without query", portfolio.ResolveInput{Stored: "es"}, false, "es", portfolio.OriginStored},
		{"invalid query falls to stored", portfolio.ResolveInput{Query: q("fr"), Stored: "es"}, false, "es", portfolio.OriginStored},
		{"unsupported everywhere", portfolio.ResolveInput{Query: q("fr"), Stored: "de"}, false, "en", portfolio.OriginDefault},
		{"header ignored by default", portfolio.ResolveInput{AcceptLanguage: "es-ES"}, false, "en", portfolio.OriginDefault},
		{"header used when enabled", portfolio.ResolveInput{AcceptLanguage: "es-ES,es;q=0.9"}, true, "es", portfolio.OriginHeader},
		{"stored beats header", portfolio.ResolveInput{Stored: "en", AcceptLanguage: "es"}, true, "en", portfolio.OriginStored},
		{"uppercase query is unsupported", portfolio.ResolveInput{Query: q("ES")}, false, "en", portfolio.OriginDefault},
		{"padded query is unsupported", portfolio.ResolveInput{Query: q(" es")}, false, "en", portfolio.OriginDefault},
		{"uppercase stored is unsupported", portfolio.ResolveInput{Stored: "ES"}, false, "en", portfolio.OriginDefault},
		{"uppercase query falls to stored", portfolio.ResolveInput{Query: q("ES"), Stored: "es"}, false, "es", portfolio.OriginStored},
		{"unmatched header", portfolio.ResolveInput{AcceptLanguage: "ja"}, true, "en", portfolio.OriginDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := portfolio.NewResolver(portfolio.DefaultLanguages(), portfolio.WithNegotiation(tt.negotiate))
			got, origin := r.ResolveOrigin(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.origin, origin)
			assert.Equal(t, tt.want, r.Resolve(tt.in))
		})
	}
}

func TestInput(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/index.html?lang=es", nil)
	req.Header.Set("Accept-Language", "en-US")

	in := portfolio.Input(req, "en")
	assert.Equal(t, "es", in.Query.Get("lang"))
	assert.Equal(t, "en", in.Stored)
	assert.Equal(t, "en-US", in.AcceptLanguage)
}
