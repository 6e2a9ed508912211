package portfolio

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/panampa98/portfolio/pkg/sanitizer"
)

// LabelKey names a piece of page text in a language document.
type LabelKey string

const (
	LabelLanguage           LabelKey = "languageLabel"
	LabelAboutTitle         LabelKey = "aboutTitle"
	LabelAboutDescription   LabelKey = "aboutDescription"
	LabelProjectsTitle      LabelKey = "projectsTitle"
	LabelProjectsSubtitle   LabelKey = "projectsSubtitle"
	LabelContactTitle       LabelKey = "contactTitle"
	LabelContactDescription LabelKey = "contactDescription"
	LabelProjectDetails     LabelKey = "projectDetailsTitle"
	LabelNavAbout           LabelKey = "navAbout"
	LabelNavProjects        LabelKey = "navProjects"
	LabelNavStack           LabelKey = "navStack"
	LabelNavContact         LabelKey = "navContact"
	LabelStackTitle         LabelKey = "stackTitle"
	LabelStackSubtitle      LabelKey = "stackSubtitle"
	LabelBackToHome         LabelKey = "backToHome"
	LabelHighlights         LabelKey = "highlightsLabel"
)

// LabelKeys lists every key a complete document defines.
var LabelKeys = []LabelKey{
	LabelLanguage, LabelAboutTitle, LabelAboutDescription,
	LabelProjectsTitle, LabelProjectsSubtitle,
	LabelContactTitle, LabelContactDescription, LabelProjectDetails,
	LabelNavAbout, LabelNavProjects, LabelNavStack, LabelNavContact,
	LabelStackTitle, LabelStackSubtitle, LabelBackToHome, LabelHighlights,
}

// Document is the content of one language: page labels and projects.
type Document struct {
	Labels   map[LabelKey]string `json:"labels" yaml:"labels"`
	Projects []Project           `json:"projects" yaml:"projects"`
}

// Project is one portfolio entry.
type Project struct {
	Slug       string   `json:"slug" yaml:"slug"`
	Title      string   `json:"title" yaml:"title"`
	Domain     string   `json:"domain,omitempty" yaml:"domain,omitempty"`
	Problem    string   `json:"problem,omitempty" yaml:"problem,omitempty"`
	Impact     string   `json:"impact,omitempty" yaml:"impact,omitempty"`
	Summary    string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Label returns the text for key; missing keys yield "".
func (d *Document) Label(key LabelKey) string {
	if d == nil {
		return ""
	}
	return d.Labels[key]
}

// MissingLabels returns the keys of LabelKeys the document does not define.
func (d *Document) MissingLabels() []LabelKey {
	var missing []LabelKey
	for _, k := range LabelKeys {
		if _, ok := d.Labels[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Find returns the first project with slug.
func (d *Document) Find(slug string) (*Project, bool) {
	if d == nil || slug == "" {
		return nil, false
	}
	for i := range d.Projects {
		if d.Projects[i].Slug == slug {
			return &d.Projects[i], true
		}
	}
	return nil, false
}

// DetailSummary is the impact statement, or the summary when impact is empty.
func (p *Project) DetailSummary() string {
	if p.Impact != "" {
		return p.Impact
	}
	return p.Summary
}

// DecodeDocument parses data as YAML for .yaml/.yml names and JSON otherwise.
func DecodeDocument(name string, data []byte) (*Document, error) {
	var doc Document
	var err error
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if doc.Labels == nil {
		doc.Labels = map[LabelKey]string{}
	}
	return &doc, nil
}

// Sanitize strips markup from the project card fields, which content authors
// may write as HTML. Labels, summaries and highlights are plain text and
// are kept verbatim.
func (d *Document) Sanitize() *Document {
	for i := range d.Projects {
		p := &d.Projects[i]
		p.Title = sanitizer.PlainText(p.Title)
		p.Domain = sanitizer.PlainText(p.Domain)
		p.Problem = sanitizer.PlainText(p.Problem)
		p.Impact = sanitizer.PlainText(p.Impact)
		p.Tags = sanitizer.PlainTexts(p.Tags)
	}
	return d
}
