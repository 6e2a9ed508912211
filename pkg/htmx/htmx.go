package htmx

import (
	"net/http"
	"net/url"
)

// IsHTMX returns true if the request originated from htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsBoosted reports whether the request came from an hx-boost link.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// CurrentURL returns the browser location htmx reported, if any.
func CurrentURL(r *http.Request) (*url.URL, bool) {
	raw := r.Header.Get(HeaderHXCurrentURL)
	if raw == "" {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}

// ReplaceURL asks htmx to rewrite the address bar in place without adding a
// history entry. Must be called before the header is written.
func ReplaceURL(w http.ResponseWriter, target string) {
	w.Header().Set(HeaderHXReplaceURL, target)
}
