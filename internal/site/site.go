package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"

	"github.com/panampa98/portfolio/internal/page"
	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/internal/render"
	"github.com/panampa98/portfolio/pkg/i18n"
	"github.com/panampa98/portfolio/pkg/logger"
)

// DefaultName is the site name used in detail page titles.
const DefaultName = "DevPold"

// UINamespace is the catalog namespace of interface strings.
const UINamespace = "ui"

// ErrSuperseded is returned when a newer load committed to the same State first.
var ErrSuperseded = errors.New("site: superseded by a newer language load")

// Kind selects the page template.
type Kind int

const (
	Home Kind = iota
	Project
)

// Request describes one page view to localize.
type Request struct {
	Kind Kind
	// Slug is the project slug for Project pages.
	Slug string
	// Lang is the resolved language; unsupported codes fall back to the default.
	Lang portfolio.Code
	// URL is the address the page is shown at. Language switches link to it
	// with their language. Nil leaves switches untouched unless SwitchHref is set.
	URL *url.URL
	// SwitchHref overrides the language switch link, e.g. for static export.
	SwitchHref func(portfolio.Code) string
	// State is the rendering context to commit to. Nil uses a fresh one.
	State *portfolio.State
}

// Path returns the site-relative page path.
func (r Request) Path() string {
	if r.Kind == Project {
		return render.ProjectHref(r.Slug)
	}
	return "index.html"
}

// Result is a localized page.
type Result struct {
	Page *page.Page
	// Lang is the language actually rendered.
	Lang portfolio.Code
	// Requested is the language asked for, after normalization.
	Requested portfolio.Code
	Document  *portfolio.Document
	Detail    render.DetailResult
	Path      string
}

// FellBack reports whether the default language replaced the requested one.
func (r *Result) FellBack() bool { return r.Lang != r.Requested }

// NotFound reports a project page whose slug matched no project.
func (r *Result) NotFound() bool { return r.Detail.Active && !r.Detail.Found }

// Site holds everything shared between page views. It is safe for
// concurrent use; every Localize call works on its own page instance.
type Site struct {
	name    string
	home    *page.Template
	detail  *page.Template
	loader  *portfolio.Loader
	catalog *i18n.Catalog
	assets  fs.FS
	logger  *slog.Logger
}

// Option configures a Site.
type Option func(*Site)

// WithName sets the site name.
func WithName(name string) Option {
	return func(s *Site) {
		if name != "" {
			s.name = name
		}
	}
}

// WithAssets sets the site-rooted filesystem used for image fallbacks.
func WithAssets(assets fs.FS) Option {
	return func(s *Site) {
		s.assets = assets
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Site) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Site rendering home and detail with documents from loader
// and interface strings from catalog.
func New(home, detail *page.Template, loader *portfolio.Loader, catalog *i18n.Catalog, opts ...Option) *Site {
	s := &Site{
		name:    DefaultName,
		home:    home,
		detail:  detail,
		loader:  loader,
		catalog: catalog,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the site name.
func (s *Site) Name() string { return s.name }

// Languages returns the supported set.
func (s *Site) Languages() portfolio.Languages { return s.loader.Languages() }

// Catalog returns the interface string catalog.
func (s *Site) Catalog() *i18n.Catalog { return s.catalog }

// Translator returns interface strings for lang.
func (s *Site) Translator(lang portfolio.Code) *i18n.Translator {
	return i18n.NewTranslator(s.catalog, lang.String(), UINamespace)
}

// Localize loads the document for req.Lang (falling back to the default
// language once) and applies it to a fresh page: labels, project cards,
// project details, navigation, language selector, <html lang> and image
// fallbacks. The error is a *portfolio.LoadError when no document could be
// loaded.
func (s *Site) Localize(ctx context.Context, req Request) (*Result, error) {
	tmpl := s.home
	if req.Kind == Project {
		tmpl = s.detail
	}
	p := tmpl.Instantiate()
	if req.Kind == Project {
		p.SetSlug(req.Slug)
	}

	state := req.State
	if state == nil {
		state = &portfolio.State{}
	}
	token := state.Begin()

	ref := portfolio.PageRef{Path: req.Path(), Slug: req.Slug}
	requested := s.loader.Languages().Normalize(req.Lang.String())
	lang, doc, err := s.loader.LoadWithFallback(ctx, ref, requested)
	if err != nil {
		return nil, fmt.Errorf("localize %s: %w", ref.Path, err)
	}
	if !state.Commit(token, lang, doc) {
		return nil, ErrSuperseded
	}

	res := &Result{
		Page:      p,
		Lang:      lang,
		Requested: requested,
		Document:  doc,
		Path:      ref.Path,
	}
	s.apply(res, req)

	s.logger.DebugContext(ctx, "page localized",
		slog.String("path", res.Path),
		slog.String("lang", lang.String()),
		slog.Bool("fallback", res.FellBack()),
	)
	return res, nil
}

func (s *Site) apply(res *Result, req Request) {
	tr := s.Translator(res.Lang)

	render.ApplyLabels(res.Page, res.Document)
	render.RenderProjects(res.Page, res.Document, res.Lang, tr)
	res.Detail = render.RenderProjectDetails(res.Page, res.Document, tr, s.name)

	render.Synchronize(res.Page, res.Lang, req.URL)
	if req.SwitchHref != nil {
		render.UpdateLanguageSwitchesFunc(res.Page, req.SwitchHref)
	}

	if s.assets != nil {
		render.ApplyImageFallbacks(res.Page, res.Path, s.assets)
	}
}

// Ready loads the default language document for the home page.
func (s *Site) Ready(ctx context.Context) error {
	_, err := s.loader.Load(ctx, portfolio.PageRef{Path: "index.html"}, s.loader.Languages().Default())
	return err
}
