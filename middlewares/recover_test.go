package middlewares_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/panampa98/portfolio/internal/web"
	"github.com/panampa98/portfolio/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	capture := func(got *error) web.Option {
		return web.WithErrorHandler(func(c web.Context, err error) error {
			*got = err
			return c.String(http.StatusInternalServerError, "recovered")
		})
	}

	t.Run("converts panic to PanicError", func(t *testing.T) {
		t.Parallel()

		var got error
		w := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), func(c web.Context) error {
			panic("boom")
		}, web.WithMiddleware(middlewares.Recover()), capture(&got))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, "recovered", w.Body.String())

		pe, ok := middlewares.AsPanicError(got)
		require.True(t, ok)
		require.Equal(t, "boom", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Equal(t, "panic: boom", pe.Error())
	})

	t.Run("stack disabled", func(t *testing.T) {
		t.Parallel()

		var got error
		serve(t, httptest.NewRequest(http.MethodGet, "/", nil), func(c web.Context) error {
			panic(errors.New("bad"))
		}, web.WithMiddleware(middlewares.Recover(middlewares.WithRecoverDisablePrintStack())), capture(&got))

		pe, ok := middlewares.AsPanicError(got)
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})

	t.Run("stack size limit", func(t *testing.T) {
		t.Parallel()

		var got error
		serve(t, httptest.NewRequest(http.MethodGet, "/", nil), func(c web.Context) error {
			panic(fmt.Sprintf("code %d", 7))
		}, web.WithMiddleware(middlewares.Recover(middlewares.WithRecoverStackSize(64))), capture(&got))

		pe, ok := middlewares.AsPanicError(got)
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("passes through without panic", func(t *testing.T) {
		t.Parallel()

		w := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), func(c web.Context) error {
			return c.String(http.StatusOK, "fine")
		}, web.WithMiddleware(middlewares.Recover()))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "fine", w.Body.String())
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	_, ok := middlewares.AsPanicError(errors.New("x"))
	require.False(t, ok)

	te, ok := middlewares.AsTimeoutError(fmt.Errorf("wrap: %w", &middlewares.TimeoutError{Duration: 2e9}))
	require.True(t, ok)
	require.Equal(t, "request timeout after 2s", te.Error())
}
