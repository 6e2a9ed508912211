package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// RedirectPage renders a document that sends the browser to href, for hosts
// that serve static files without redirect rules.
func RedirectPage(href string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		u := templ.EscapeString(string(templ.URL(href)))
		_, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8">`+
			`<meta http-equiv="refresh" content="0; url=`+u+`">`+
			`<link rel="canonical" href="`+u+`"></head>`+
			`<body><a href="`+u+`">`+templ.EscapeString(href)+`</a></body></html>`)
		return err
	})
}
