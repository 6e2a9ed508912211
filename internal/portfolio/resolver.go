package portfolio

import (
	"net/http"
	"net/url"

	"github.com/panampa98/portfolio/pkg/i18n"
)

// Origin tells where a resolved language came from.
type Origin string

const (
	OriginQuery   Origin = "query"
	OriginStored  Origin = "stored"
	OriginHeader  Origin = "accept-language"
	OriginDefault Origin = "default"
)

// ResolveInput carries the candidate values for one page view.
type ResolveInput struct {
	Query          url.Values
	Stored         string
	AcceptLanguage string
}

// Resolver picks the language for a page view.
type Resolver struct {
	langs     Languages
	negotiate bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithNegotiation enables Accept-Language matching between the stored
// preference and the default.
func WithNegotiation(enabled bool) ResolverOption {
	return func(r *Resolver) { r.negotiate = enabled }
}

// NewResolver creates a Resolver over langs.
func NewResolver(langs Languages, opts ...ResolverOption) *Resolver {
	r := &Resolver{langs: langs}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Languages returns the supported set.
func (r *Resolver) Languages() Languages { return r.langs }

// Resolve returns a supported code, never failing. Priority: lang query
// parameter, stored preference, Accept-Language (when enabled), default.
// Unsupported values at any step are skipped.
func (r *Resolver) Resolve(in ResolveInput) Code {
	c, _ := r.ResolveOrigin(in)
	return c
}

// ResolveOrigin is Resolve that also reports which input won.
func (r *Resolver) ResolveOrigin(in ResolveInput) (Code, Origin) {
	if c, ok := r.langs.Lookup(in.Query.Get(LangParam)); ok {
		return c, OriginQuery
	}
	if c, ok := r.langs.Lookup(in.Stored); ok {
		return c, OriginStored
	}
	if r.negotiate {
		if m, ok := i18n.MatchAcceptLanguage(in.AcceptLanguage, r.langs.Strings()); ok {
			if c, ok := r.langs.Lookup(m); ok {
				return c, OriginHeader
			}
		}
	}
	return r.langs.Default(), OriginDefault
}

// Input builds ResolveInput from a request and an already read stored value.
func Input(req *http.Request, stored string) ResolveInput {
	return ResolveInput{
		Query:          req.URL.Query(),
		Stored:         stored,
		AcceptLanguage: req.Header.Get("Accept-Language"),
	}
}
