// Package i18n holds the interface strings that are not part of a language
// document: card block labels, placeholders and error pages.
//
// Strings live in {lang}/{namespace}.json or .yaml files and are flattened to
// dotted keys on load. Lookups fall back to the default language, then to the
// key itself:
//
//	catalog, err := i18n.New(i18n.WithDefaultLanguage("en"), i18n.WithDir(fsys))
//	tr := i18n.NewTranslator(catalog, "es", "ui")
//	tr.T("project.not_found") // "Proyecto no encontrado"
//
// MatchAcceptLanguage negotiates a supported language with golang.org/x/text/language.
package i18n
