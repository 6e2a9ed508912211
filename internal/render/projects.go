package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/panampa98/portfolio/internal/page"
	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/pkg/i18n"
)

// Translator supplies interface strings that are not part of the language document.
type Translator interface {
	T(key string, placeholders ...i18n.M) string
}

// Interface string keys.
const (
	KeyProblem         = "project.problem"
	KeyImpact          = "project.impact"
	KeyProjectNotFound = "project.not_found"
)

// Element ids used by project rendering.
const (
	IDProjectsGrid      = "projects-grid"
	IDProjectTitle      = "project-title"
	IDProjectSummary    = "project-summary"
	IDProjectHighlights = "project-highlights"
	IDProjectTags       = "project-tags"
)

// ProjectHref is the detail page link of slug, relative to the site root.
func ProjectHref(slug string) string {
	return "projects/" + slug + "/index.html"
}

// RenderProjects replaces the content of the project grid with one card per
// project, in document order. Pages without a grid are left unchanged.
func RenderProjects(p *page.Page, doc *portfolio.Document, lang portfolio.Code, tr Translator) {
	grid, ok := p.ByID(IDProjectsGrid)
	if !ok {
		return
	}

	cards := make([]*html.Node, 0, len(doc.Projects))
	for i := range doc.Projects {
		cards = append(cards, projectCard(&doc.Projects[i], lang, tr))
	}
	page.ReplaceChildren(grid, cards...)
}

func projectCard(pr *portfolio.Project, lang portfolio.Code, tr Translator) *html.Node {
	header := page.Append(page.Elem(atom.Div, page.Class("project-card__header")),
		page.Append(page.Elem(atom.H3), page.Text(pr.Title)),
	)
	if pr.Domain != "" {
		page.Append(header, page.Append(page.Elem(atom.Span, page.Class("project-domain")), page.Text(pr.Domain)))
	}

	link := page.Append(
		page.Elem(atom.A, page.Class("project-card__link"), page.A("href", portfolio.WithLang(ProjectHref(pr.Slug), lang))),
		header,
		cardBlock("project-card__problem", tr.T(KeyProblem), pr.Problem),
		cardBlock("project-card__impact", tr.T(KeyImpact), pr.Impact),
	)
	if len(pr.Tags) > 0 {
		tags := page.Elem(atom.Ul, page.Class("project-tags"))
		for _, tag := range pr.Tags {
			page.Append(tags, page.Append(page.Elem(atom.Li, page.A("data-tech", tag)), page.Text(tag)))
		}
		page.Append(link, tags)
	}

	return page.Append(page.Elem(atom.Article, page.Class("project-card")), link)
}

func cardBlock(class, label, text string) *html.Node {
	return page.Append(page.Elem(atom.Div, page.Class(class)),
		page.Append(page.Elem(atom.Span, page.Class("label")), page.Text(label)),
		page.Append(page.Elem(atom.P), page.Text(text)),
	)
}

// DetailResult reports what RenderProjectDetails did.
type DetailResult struct {
	Project *portfolio.Project
	Slug    string
	// Active is false on pages without a project slug marker.
	Active bool
	Found  bool
}

// RenderProjectDetails fills the detail page for the slug marked on p.
// Unknown slugs show the not-found placeholder in the title and leave the
// rest of the page untouched.
func RenderProjectDetails(p *page.Page, doc *portfolio.Document, tr Translator, siteName string) DetailResult {
	slug := p.Slug()
	if slug == "" {
		return DetailResult{}
	}
	res := DetailResult{Slug: slug, Active: true}

	pr, ok := doc.Find(slug)
	if !ok {
		if n, ok := p.ByID(IDProjectTitle); ok {
			page.SetText(n, tr.T(KeyProjectNotFound))
		}
		return res
	}
	res.Project, res.Found = pr, true

	if n, ok := p.ByID(IDProjectTitle); ok {
		page.SetText(n, pr.Title)
	}
	if n, ok := p.ByID(IDProjectSummary); ok {
		page.SetText(n, pr.DetailSummary())
	}
	if n, ok := p.ByID(IDProjectHighlights); ok {
		page.ReplaceChildren(n, listItems(pr.Highlights)...)
	}
	if n, ok := p.ByID(IDProjectTags); ok {
		page.ReplaceChildren(n, listItems(pr.Tags)...)
	}
	p.SetTitle(siteName + " - " + pr.Title)

	return res
}

func listItems(items []string) []*html.Node {
	out := make([]*html.Node, 0, len(items))
	for _, it := range items {
		out = append(out, page.Append(page.Elem(atom.Li), page.Text(it)))
	}
	return out
}
