package htmx

import "net/http"

// Redirect sends HX-Redirect with 200 for htmx requests and a regular
// redirect otherwise.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	RedirectWithStatus(w, r, target, http.StatusSeeOther)
}

// RedirectWithStatus is Redirect with an explicit status for non-htmx requests.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, target string, status int) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, status)
}
