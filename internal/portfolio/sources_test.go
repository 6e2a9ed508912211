package portfolio_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/pkg/cache"
	"github.com/panampa98/portfolio/pkg/storage"
)

func TestHTTPSource(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/site/assets/i18n/en.json":
			_, _ = io.WriteString(w, enDoc)
		case "/site/assets/i18n/es.json":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	src := portfolio.NewHTTPSource(srv.URL+"/site/", srv.Client())
	ctx := context.Background()

	rc, err := src.Open(ctx, "assets/i18n/en.json")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.JSONEq(t, enDoc, string(data))

	_, err = src.Open(ctx, "assets/i18n/es.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")

	_, err = src.Open(ctx, "assets/i18n/pt.json")
	require.ErrorIs(t, err, portfolio.ErrResourceNotFound)
}

type fakeBucket map[string]string

func (b fakeBucket) Get(_ context.Context, name string) (io.ReadCloser, error) {
	body, ok := b[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, name)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func TestBucketSource(t *testing.T) {
	t.Parallel()

	src := portfolio.NewBucketSource(fakeBucket{"assets/i18n/es.json": esDoc})
	ld := portfolio.NewLoader(src, portfolio.DefaultLanguages())

	doc, err := ld.Load(context.Background(), detail, "es")
	require.NoError(t, err)
	assert.Equal(t, "Sobre mí", doc.Label(portfolio.LabelAboutTitle))

	_, err = src.Open(context.Background(), "assets/i18n/en.json")
	require.ErrorIs(t, err, portfolio.ErrResourceNotFound)
}

func TestCachedSource(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	next := portfolio.SourceFunc(func(_ context.Context, name string) (io.ReadCloser, error) {
		calls.Add(1)
		if name == "assets/i18n/es.json" {
			return nil, errors.New("unavailable")
		}
		return io.NopCloser(strings.NewReader(enDoc)), nil
	})

	mem := cache.NewMemory[[]byte]()
	t.Cleanup(func() { _ = mem.Close() })
	src := portfolio.NewCachedSource(next, mem, time.Minute)
	ctx := context.Background()

	for range 3 {
		rc, err := src.Open(ctx, "assets/i18n/en.json")
		require.NoError(t, err)
		_ = rc.Close()
	}
	assert.Equal(t, int32(1), calls.Load())

	_, err := src.Open(ctx, "assets/i18n/es.json")
	require.Error(t, err)
	_, err = src.Open(ctx, "assets/i18n/es.json")
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load(), "failures are not cached")

	require.NoError(t, src.Invalidate(ctx, "assets/i18n/en.json"))
	_, err = src.Open(ctx, "assets/i18n/en.json")
	require.NoError(t, err)
	assert.Equal(t, int32(4), calls.Load())
}
