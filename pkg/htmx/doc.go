// Package htmx contains the small set of htmx request and response helpers
// the site needs: detecting htmx requests, rewriting the browser URL in place
// with HX-Replace-Url, and redirects that work for both htmx and plain requests.
package htmx
