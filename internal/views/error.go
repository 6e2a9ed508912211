// Package views holds server-rendered components that are not page templates.
package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorData is the content of an error page.
type ErrorData struct {
	Lang      string
	Status    int
	Title     string
	Message   string
	Back      string
	BackHref  string
	RequestID string
}

// ErrorPage renders a standalone error document. htmx requests get only the
// <main> fragment via ErrorFragment.
func ErrorPage(d ErrorData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := d.Lang
		if lang == "" {
			lang = "en"
		}
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="`+templ.EscapeString(lang)+`"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(d.Title)+`</title>`+
			`<link rel="stylesheet" href="/assets/css/site.css"></head><body>`); err != nil {
			return err
		}
		if err := ErrorFragment(d).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// ErrorFragment renders the error message block.
func ErrorFragment(d ErrorData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		href := d.BackHref
		if href == "" {
			href = "/"
		}
		out := `<main class="error-page" data-status="` + strconv.Itoa(d.Status) + `">` +
			`<h1>` + templ.EscapeString(d.Title) + `</h1>` +
			`<p>` + templ.EscapeString(d.Message) + `</p>`
		if d.RequestID != "" {
			out += `<p class="request-id">` + templ.EscapeString(d.RequestID) + `</p>`
		}
		if d.Back != "" {
			out += `<a href="` + templ.EscapeString(string(templ.URL(href))) + `">` + templ.EscapeString(d.Back) + `</a>`
		}
		out += `</main>`
		_, err := io.WriteString(w, out)
		return err
	})
}
