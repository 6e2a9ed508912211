// Package render applies a language document to a page: label text, the
// project card grid, the project detail section, navigation and language
// selector state, and image fallbacks.
//
// Every function fully replaces what it owns, so applying the same document
// twice yields the same markup.
package render
