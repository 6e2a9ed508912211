// Package page is the server-side document model for the site's HTML pages.
//
// A Template is parsed once with golang.org/x/net/html. Each request works on
// its own Page from Template.Instantiate, whose lookup tables for ids,
// data-i18n labels, navigation links, language buttons and fallback images
// are built in a single pass at instantiation.
package page
