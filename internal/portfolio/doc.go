// Package portfolio models the site content and the language selection rules:
// supported languages, language documents and their loading with fallback to
// the default language, preference resolution and language-aware links.
package portfolio
