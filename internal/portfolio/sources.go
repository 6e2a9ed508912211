package portfolio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/panampa98/portfolio/pkg/cache"
	"github.com/panampa98/portfolio/pkg/storage"
)

// FSSource reads documents from a file system such as the embedded site assets.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource returns a Source over fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, err
	}
	return f, nil
}

// HTTPSource fetches documents from a remote site, e.g. a CDN.
type HTTPSource struct {
	client  *http.Client
	baseURL string
}

// NewHTTPSource fetches {baseURL}/{name}. A nil client gets a 10 second timeout.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSource{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+name, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %d", name, resp.StatusCode)
	}
	return resp.Body, nil
}

// ObjectGetter is the part of storage.Bucket used to read documents.
type ObjectGetter interface {
	Get(ctx context.Context, name string) (io.ReadCloser, error)
}

var _ ObjectGetter = (*storage.Bucket)(nil)

// BucketSource reads documents from object storage.
type BucketSource struct {
	bucket ObjectGetter
}

// NewBucketSource returns a Source over an S3-compatible bucket.
func NewBucketSource(b ObjectGetter) *BucketSource {
	return &BucketSource{bucket: b}
}

func (s *BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.bucket.Get(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, err
	}
	return rc, nil
}

// CachedSource keeps raw document bytes in a cache. Without it every load
// goes to the underlying source.
type CachedSource struct {
	next   Source
	loader *cache.Loader[[]byte]
}

// NewCachedSource wraps next with c; entries live for ttl.
func NewCachedSource(next Source, c cache.Cache[[]byte], ttl time.Duration) *CachedSource {
	return &CachedSource{next: next, loader: cache.NewLoader(c, ttl)}
}

func (s *CachedSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	data, err := s.loader.Load(ctx, name, func(ctx context.Context) ([]byte, error) {
		rc, err := s.next.Open(ctx, name)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	})
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Invalidate drops the cached copy of name.
func (s *CachedSource) Invalidate(ctx context.Context, name string) error {
	return s.loader.Invalidate(ctx, name)
}
