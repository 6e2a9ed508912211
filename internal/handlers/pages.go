package handlers

import (
	"net/http"
	"net/url"

	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/internal/site"
	"github.com/panampa98/portfolio/internal/web"
	"github.com/panampa98/portfolio/middlewares"
	"github.com/panampa98/portfolio/pkg/cookie"
	"github.com/panampa98/portfolio/pkg/htmx"
)

// ErrCodeContentUnavailable marks responses where no language document could be loaded.
const ErrCodeContentUnavailable = "content_unavailable"

// PageHandler serves the localized home and project pages.
type PageHandler struct {
	site   *site.Site
	cookie *cookie.Manager
}

// NewPageHandler creates a PageHandler. A nil cookie manager disables
// persisting the language preference.
func NewPageHandler(s *site.Site, pref *cookie.Manager) *PageHandler {
	return &PageHandler{site: s, cookie: pref}
}

// Routes implements web.Handler.
func (h *PageHandler) Routes(r web.Router) {
	r.GET("/", h.home)
	r.GET("/index.html", h.home)
	r.Route("/projects", func(r web.Router) {
		r.GET("/{slug}", h.projectRedirect)
		r.GET("/{slug}/", h.project)
		r.GET("/{slug}/index.html", h.project)
	})
}

func (h *PageHandler) home(c web.Context) error {
	return h.serve(c, site.Request{Kind: site.Home})
}

func (h *PageHandler) project(c web.Context) error {
	return h.serve(c, site.Request{Kind: site.Project, Slug: c.Param("slug")})
}

// projectRedirect adds the trailing slash so relative asset links resolve.
func (h *PageHandler) projectRedirect(c web.Context) error {
	target := "/projects/" + url.PathEscape(c.Param("slug")) + "/"
	if q := c.Request().URL.RawQuery; q != "" {
		target += "?" + q
	}
	return c.Redirect(http.StatusMovedPermanently, target)
}

func (h *PageHandler) serve(c web.Context, req site.Request) error {
	req.Lang = middlewares.GetLanguage(c)
	req.URL = currentURL(c)

	res, err := h.site.Localize(c.Context(), req)
	if err != nil {
		return c.Error(http.StatusServiceUnavailable, "language content unavailable",
			web.WithError(err),
			web.WithErrorCode(ErrCodeContentUnavailable),
		)
	}
	if res.FellBack() {
		c.LogWarn("served fallback language",
			"requested", res.Requested.String(),
			"lang", res.Lang.String(),
			"path", res.Path,
		)
	}

	h.persist(c, res.Lang, req.URL)

	body, err := res.Page.Bytes()
	if err != nil {
		return err
	}

	status := http.StatusOK
	if res.NotFound() {
		status = http.StatusNotFound
	}
	return c.HTML(status, body)
}

// persist stores the rendered language and points the address bar at it.
func (h *PageHandler) persist(c web.Context, lang portfolio.Code, current *url.URL) {
	if h.cookie != nil {
		h.cookie.Set(c.Response(), lang.String())
	}
	c.SetHeader("Content-Location", portfolio.ReplaceLang(c.Request().URL, lang))
	if c.IsHTMX() {
		htmx.ReplaceURL(c.Response(), portfolio.ReplaceLang(current, lang))
	}
}

// currentURL is the site-relative address the user sees: the htmx-reported
// location for htmx requests, otherwise the request URL.
func currentURL(c web.Context) *url.URL {
	if c.IsHTMX() {
		if u, ok := htmx.CurrentURL(c.Request()); ok {
			return &url.URL{Path: u.Path, RawQuery: u.RawQuery}
		}
	}
	u := c.Request().URL
	return &url.URL{Path: u.Path, RawQuery: u.RawQuery}
}
