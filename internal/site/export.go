package site

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/internal/views"
	"github.com/panampa98/portfolio/pkg/storage"
)

// Target receives exported files by slash-separated name.
type Target interface {
	Write(ctx context.Context, name string, data []byte) error
}

// DirTarget writes files below a local directory.
type DirTarget string

func (d DirTarget) Write(_ context.Context, name string, data []byte) error {
	full := filepath.Join(string(d), filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

// BucketTarget uploads files to object storage under an optional prefix.
type BucketTarget struct {
	Bucket *storage.Bucket
	Prefix string
}

func (b BucketTarget) Write(ctx context.Context, name string, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	_, err := b.Bucket.Put(ctx, path.Join(b.Prefix, name), bytes.NewReader(data), int64(len(data)), storage.ContentType(name))
	return err
}

// ExportOptions configures Export.
type ExportOptions struct {
	// Languages to export; empty means every supported language.
	Languages []portfolio.Code
	// Assets is copied into every language tree. Nil skips assets.
	Assets fs.FS
	// Concurrency bounds parallel page renders; zero uses GOMAXPROCS.
	Concurrency int
}

// ExportResult lists what Export wrote.
type ExportResult struct {
	Files     []string
	Fallbacks []string
}

// Export renders every page of every language into target as a complete
// static tree per language: {lang}/index.html, {lang}/projects/{slug}/index.html
// and {lang}/<assets>. Language switches link to the sibling trees. A root
// index.html redirects to the default language, or to the first exported
// one when the default is not exported. The first page whose
// document cannot be loaded in any language aborts the export.
func (s *Site) Export(ctx context.Context, target Target, opts ExportOptions) (*ExportResult, error) {
	langs := opts.Languages
	if len(langs) == 0 {
		langs = s.loader.Languages().Codes()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	slugs, err := s.Slugs(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	var (
		mu  sync.Mutex
		res = &ExportResult{}
	)
	record := func(name string, fellBack bool) {
		mu.Lock()
		defer mu.Unlock()
		res.Files = append(res.Files, name)
		if fellBack {
			res.Fallbacks = append(res.Fallbacks, name)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, lang := range langs {
		reqs := []Request{{Kind: Home, Lang: lang}}
		for _, sl := range slugs {
			reqs = append(reqs, Request{Kind: Project, Slug: sl, Lang: lang})
		}

		for _, req := range reqs {
			g.Go(func() error {
				req.SwitchHref = siblingHref(req.Path())
				out, err := s.Localize(gctx, req)
				if err != nil {
					return fmt.Errorf("export %s/%s: %w", lang, req.Path(), err)
				}
				data, err := out.Page.Bytes()
				if err != nil {
					return fmt.Errorf("export %s/%s: %w", lang, req.Path(), err)
				}
				name := path.Join(string(lang), req.Path())
				if err := target.Write(gctx, name, data); err != nil {
					return fmt.Errorf("export %s: %w", name, err)
				}
				if out.FellBack() {
					s.logger.WarnContext(gctx, "exported page in fallback language",
						slog.String("path", name),
						slog.String("lang", out.Lang.String()),
					)
				}
				record(name, out.FellBack())
				return nil
			})
		}

		if opts.Assets != nil {
			g.Go(func() error {
				return copyAssets(gctx, opts.Assets, target, string(lang), func(name string) { record(name, false) })
			})
		}
	}

	g.Go(func() error {
		def := s.loader.Languages().Default()
		if !slices.Contains(langs, def) {
			def = langs[0]
		}
		var buf bytes.Buffer
		if err := views.RedirectPage(string(def)+"/index.html").Render(gctx, &buf); err != nil {
			return fmt.Errorf("export index.html: %w", err)
		}
		if err := target.Write(gctx, "index.html", buf.Bytes()); err != nil {
			return fmt.Errorf("export index.html: %w", err)
		}
		record("index.html", false)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "site exported",
		slog.Int("files", len(res.Files)),
		slog.Int("fallbacks", len(res.Fallbacks)),
	)
	return res, nil
}

// siblingHref links a page of one language tree to the same page in another.
func siblingHref(pagePath string) func(portfolio.Code) string {
	up := strings.Repeat("../", strings.Count(pagePath, "/")+1)
	return func(code portfolio.Code) string {
		return up + string(code) + "/" + pagePath
	}
}

func copyAssets(ctx context.Context, assets fs.FS, target Target, prefix string, done func(string)) error {
	return fs.WalkDir(assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return ctx.Err()
		}
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return err
		}
		out := path.Join(prefix, name)
		if err := target.Write(ctx, out, data); err != nil {
			return fmt.Errorf("export %s: %w", out, err)
		}
		done(out)
		return nil
	})
}
