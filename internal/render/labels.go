package render

import (
	"github.com/panampa98/portfolio/internal/page"
	"github.com/panampa98/portfolio/internal/portfolio"
)

// idLabels binds element ids to label keys.
var idLabels = []struct {
	id  string
	key portfolio.LabelKey
}{
	{"language-label", portfolio.LabelLanguage},
	{"about-title", portfolio.LabelAboutTitle},
	{"about-description", portfolio.LabelAboutDescription},
	{"projects-title", portfolio.LabelProjectsTitle},
	{"projects-subtitle", portfolio.LabelProjectsSubtitle},
	{"contact-title", portfolio.LabelContactTitle},
	{"contact-description", portfolio.LabelContactDescription},
	{"project-details-heading", portfolio.LabelProjectDetails},
}

// markedLabels are applied to every element with a matching data-i18n attribute.
var markedLabels = []portfolio.LabelKey{
	portfolio.LabelNavAbout,
	portfolio.LabelNavProjects,
	portfolio.LabelNavStack,
	portfolio.LabelNavContact,
	portfolio.LabelStackTitle,
	portfolio.LabelStackSubtitle,
	portfolio.LabelBackToHome,
	portfolio.LabelHighlights,
}

// ApplyLabels sets the text of every label target present on p.
// Keys missing from doc produce empty text.
func ApplyLabels(p *page.Page, doc *portfolio.Document) {
	for _, l := range idLabels {
		if n, ok := p.ByID(l.id); ok {
			page.SetText(n, doc.Label(l.key))
		}
	}
	for _, key := range markedLabels {
		for _, n := range p.Labeled(string(key)) {
			page.SetText(n, doc.Label(key))
		}
	}
}
