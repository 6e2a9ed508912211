package views_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panampa98/portfolio/internal/views"
)

func TestErrorPage(t *testing.T) {
	t.Parallel()

	t.Run("full document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := views.ErrorPage(views.ErrorData{
			Lang:      "es",
			Status:    503,
			Title:     "Algo salió mal",
			Message:   "<script>x</script>",
			Back:      "Volver al inicio",
			BackHref:  "/?lang=es",
			RequestID: "ID de solicitud: abc",
		}).Render(context.Background(), &buf)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, `<html lang="es">`)
		assert.Contains(t, out, `<title>Algo salió mal</title>`)
		assert.Contains(t, out, `data-status="503"`)
		assert.Contains(t, out, "&lt;script&gt;x&lt;/script&gt;")
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, `href="/?lang=es"`)
		assert.Contains(t, out, "ID de solicitud: abc")
	})

	t.Run("fragment defaults", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, views.ErrorFragment(views.ErrorData{Status: 404, Title: "Not found"}).Render(context.Background(), &buf))

		out := buf.String()
		assert.Contains(t, out, `<main class="error-page" data-status="404">`)
		assert.NotContains(t, out, "<html")
		assert.NotContains(t, out, "request-id")
		assert.NotContains(t, out, "<a ")
	})

	t.Run("unsafe back link", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, views.ErrorFragment(views.ErrorData{Back: "Back", BackHref: "javascript:alert(1)"}).Render(context.Background(), &buf))
		assert.NotContains(t, buf.String(), "javascript:")
	})
}
