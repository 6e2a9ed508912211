package middlewares

import (
	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/internal/web"
	"github.com/panampa98/portfolio/pkg/cookie"
	"github.com/panampa98/portfolio/pkg/i18n"
)

type languageOriginKey struct{}

// LanguageConfig configures the Language middleware.
type LanguageConfig struct {
	Namespace string
	Cookie    *cookie.Manager
}

// LanguageOption configures LanguageConfig.
type LanguageOption func(*LanguageConfig)

// WithLanguageNamespace sets the translator namespace. Default "ui".
func WithLanguageNamespace(ns string) LanguageOption {
	return func(cfg *LanguageConfig) {
		if ns != "" {
			cfg.Namespace = ns
		}
	}
}

// WithLanguageCookie reads the stored preference from m.
func WithLanguageCookie(m *cookie.Manager) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.Cookie = m
	}
}

// Language resolves the active language for the request and stores the
// code, its origin and a UI translator in the context.
// Responses vary on the cookie and Accept-Language.
func Language(resolver *portfolio.Resolver, catalog *i18n.Catalog, opts ...LanguageOption) web.Middleware {
	cfg := &LanguageConfig{Namespace: "ui"}
	for _, opt := range opts {
		opt(cfg)
	}

	var stored web.ExtractorSource = func(web.Context) (string, bool) { return "", false }
	if cfg.Cookie != nil {
		stored = web.FromCookie(cfg.Cookie)
	}

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			pref, _ := stored(c)
			lang, origin := resolver.ResolveOrigin(portfolio.Input(c.Request(), pref))

			c.Set(web.LanguageKey{}, lang.String())
			c.Set(languageOriginKey{}, origin)
			c.Set(web.TranslatorKey{}, i18n.NewTranslator(catalog, lang.String(), cfg.Namespace))
			c.Response().Header().Add("Vary", "Cookie, Accept-Language")

			return next(c)
		}
	}
}

// GetLanguage returns the resolved code, or "" without the middleware.
func GetLanguage(c web.Context) portfolio.Code {
	return portfolio.Code(c.Language())
}

// GetLanguageOrigin reports which input decided the language.
func GetLanguageOrigin(c web.Context) portfolio.Origin {
	return web.ContextValue[portfolio.Origin](c, languageOriginKey{})
}

// GetTranslator returns the UI translator, or nil without the middleware.
func GetTranslator(c web.Context) *i18n.Translator {
	return web.ContextValue[*i18n.Translator](c, web.TranslatorKey{})
}
