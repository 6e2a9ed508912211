package portfolio

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/panampa98/portfolio/pkg/logger"
)

// Document base directories relative to a page.
const (
	TopLevelBase = "assets/i18n"
	DetailBase   = "../../../assets/i18n"
)

// Source opens a language document by its site-relative path.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, name string) (io.ReadCloser, error)

func (f SourceFunc) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return f(ctx, name)
}

// PageRef identifies the page a document is loaded for.
type PageRef struct {
	// Path is the site-relative page path, e.g. "index.html" or
	// "projects/etl/index.html".
	Path string
	// Slug is set on project detail pages.
	Slug string
}

// BasePath returns the document directory as written relative to the page.
func BasePath(page PageRef) string {
	if page.Slug != "" {
		return DetailBase
	}
	return TopLevelBase
}

// ResourcePath resolves {base}/{lang}{ext} against the page location the way
// a browser resolves a relative URL, returning a site-relative path.
// Leading ".." segments stop at the site root.
func ResourcePath(page PageRef, lang Code, ext string) string {
	pageURL := &url.URL{Path: "/" + strings.TrimPrefix(page.Path, "/")}
	ref := &url.URL{Path: BasePath(page) + "/" + string(lang) + ext}
	return strings.TrimPrefix(pageURL.ResolveReference(ref).Path, "/")
}

// Loader fetches and decodes language documents.
type Loader struct {
	source   Source
	langs    Languages
	logger   *slog.Logger
	ext      string
	sanitize bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger used for load events.
func WithLoaderLogger(l *slog.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithExtension selects the document file extension (".json" by default).
func WithExtension(ext string) LoaderOption {
	return func(ld *Loader) {
		if ext != "" {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			ld.ext = ext
		}
	}
}

// WithSanitize strips markup from loaded strings.
func WithSanitize(enabled bool) LoaderOption {
	return func(ld *Loader) { ld.sanitize = enabled }
}

// NewLoader creates a Loader reading from src.
func NewLoader(src Source, langs Languages, opts ...LoaderOption) *Loader {
	ld := &Loader{
		source:   src,
		langs:    langs,
		logger:   logger.NewNope(),
		ext:      ".json",
		sanitize: true,
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Languages returns the supported set.
func (ld *Loader) Languages() Languages { return ld.langs }

// Load fetches the document for lang. Every failure is a *LoadError.
func (ld *Loader) Load(ctx context.Context, page PageRef, lang Code) (*Document, error) {
	name := ResourcePath(page, lang, ld.ext)
	fail := func(err error) error {
		return &LoadError{Lang: lang, Path: name, Err: err}
	}

	rc, err := ld.source.Open(ctx, name)
	if err != nil {
		return nil, fail(err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fail(err)
	}

	doc, err := DecodeDocument(name, data)
	if err != nil {
		return nil, fail(err)
	}
	if ld.sanitize {
		doc.Sanitize()
	}
	return doc, nil
}

// LoadWithFallback loads lang, normalized to a supported code. On failure it
// retries once with the default language and returns the language actually
// loaded. When the default fails too, or was the one requested, the error is
// returned.
func (ld *Loader) LoadWithFallback(ctx context.Context, page PageRef, lang Code) (Code, *Document, error) {
	lang = ld.langs.Normalize(string(lang))

	doc, err := ld.Load(ctx, page, lang)
	if err == nil {
		return lang, doc, nil
	}

	def := ld.langs.Default()
	if lang == def {
		ld.logger.ErrorContext(ctx, "language document unavailable",
			slog.String("lang", string(lang)),
			slog.String("error", err.Error()),
		)
		return "", nil, err
	}

	ld.logger.WarnContext(ctx, "falling back to default language",
		slog.String("lang", string(lang)),
		slog.String("fallback", string(def)),
		slog.String("error", err.Error()),
	)

	doc, ferr := ld.Load(ctx, page, def)
	if ferr != nil {
		ld.logger.ErrorContext(ctx, "default language document unavailable",
			slog.String("lang", string(def)),
			slog.String("error", ferr.Error()),
		)
		return "", nil, ferr
	}
	return def, doc, nil
}
