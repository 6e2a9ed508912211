// Package slug builds and validates URL-safe identifiers.
//
// Make folds Latin diacritics to ASCII, lowercases and joins the remaining
// letters and digits with a separator:
//
//	slug.Make("Café & Restaurant")           // "cafe-restaurant"
//	slug.Make("ETL Pipeline", slug.MaxLength(3)) // "etl"
//
// Valid reports whether a string is already in that form, which is how
// project slugs are checked before they become page paths.
package slug
