// Package site localizes portfolio pages.
//
// A Site combines the parsed page templates, the language document loader
// and the interface string catalog. Localize produces one fully rendered page
// for a language; Export writes the whole site as static per-language trees;
// Check validates the language documents.
package site
