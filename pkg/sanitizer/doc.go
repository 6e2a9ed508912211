// Package sanitizer removes markup from externally loaded content before it
// is placed into rendered pages.
package sanitizer
