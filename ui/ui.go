// Package ui embeds the page templates, static assets and interface strings.
package ui

import (
	"embed"
	"io/fs"

	"github.com/panampa98/portfolio/internal/page"
)

//go:embed templates static translations
var files embed.FS

// Template names.
const (
	HomeTemplate    = "templates/index.html"
	ProjectTemplate = "templates/project.html"
)

// Templates parses the home and project detail templates.
func Templates() (home, detail *page.Template, err error) {
	return ParseTemplates(files)
}

// ParseTemplates parses HomeTemplate and ProjectTemplate from fsys.
func ParseTemplates(fsys fs.FS) (home, detail *page.Template, err error) {
	data, err := fs.ReadFile(fsys, HomeTemplate)
	if err != nil {
		return nil, nil, err
	}
	if home, err = page.ParseBytes(HomeTemplate, data); err != nil {
		return nil, nil, err
	}

	data, err = fs.ReadFile(fsys, ProjectTemplate)
	if err != nil {
		return nil, nil, err
	}
	if detail, err = page.ParseBytes(ProjectTemplate, data); err != nil {
		return nil, nil, err
	}
	return home, detail, nil
}

// Static is the site-rooted asset tree: assets/css, assets/icons and the
// language documents under assets/i18n.
func Static() fs.FS {
	return sub("static")
}

// Translations holds interface strings as {lang}/ui.json.
func Translations() fs.FS {
	return sub("translations")
}

func sub(dir string) fs.FS {
	fsys, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return fsys
}
