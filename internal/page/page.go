package page

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Marker attributes and classes recognized in page templates.
const (
	AttrLabel      = "data-i18n"
	AttrNavLink    = "data-nav-link"
	AttrLangSwitch = "data-lang-switch"
	AttrFallback   = "data-fallback"
	AttrSlug       = "data-project-slug"

	ClassLanguageButton = "language-button"
)

// Template is a parsed HTML page shared between requests. It is never mutated.
type Template struct {
	root *html.Node
	name string
}

// Parse reads a complete HTML document.
func Parse(name string, r io.Reader) (*Template, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, name, err)
	}
	return &Template{root: root, name: name}, nil
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(name string, data []byte) (*Template, error) {
	return Parse(name, bytes.NewReader(data))
}

// Name returns the template name.
func (t *Template) Name() string { return t.name }

// Instantiate returns an independent, indexed copy of the template.
func (t *Template) Instantiate() *Page {
	p := &Page{
		root:   clone(t.root),
		byID:   make(map[string]*html.Node),
		labels: make(map[string][]*html.Node),
	}
	p.index(p.root)
	return p
}

// Page is a mutable page instance. Its element index is built once, when the
// page is instantiated; nodes added later are not indexed.
type Page struct {
	root   *html.Node
	html   *html.Node
	head   *html.Node
	body   *html.Node
	title  *html.Node
	byID   map[string]*html.Node
	labels map[string][]*html.Node

	navLinks     []*html.Node
	langButtons  []*html.Node
	langSwitches []*html.Node
	images       []*html.Node
}

func (p *Page) index(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Html:
			p.html = n
		case atom.Head:
			p.head = n
		case atom.Body:
			p.body = n
		case atom.Title:
			if p.title == nil {
				p.title = n
			}
		}

		for _, a := range n.Attr {
			switch a.Key {
			case "id":
				if _, dup := p.byID[a.Val]; !dup {
					p.byID[a.Val] = n
				}
			case AttrLabel:
				p.labels[a.Val] = append(p.labels[a.Val], n)
			case AttrNavLink:
				p.navLinks = append(p.navLinks, n)
			case AttrLangSwitch:
				p.langSwitches = append(p.langSwitches, n)
			case AttrFallback:
				if n.DataAtom == atom.Img {
					p.images = append(p.images, n)
				}
			}
		}
		if HasClass(n, ClassLanguageButton) {
			p.langButtons = append(p.langButtons, n)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.index(c)
	}
}

// ByID returns the first element with id.
func (p *Page) ByID(id string) (*html.Node, bool) {
	n, ok := p.byID[id]
	return n, ok
}

// Labeled returns the elements whose data-i18n equals key.
func (p *Page) Labeled(key string) []*html.Node { return p.labels[key] }

// NavLinks returns elements carrying data-nav-link.
func (p *Page) NavLinks() []*html.Node { return p.navLinks }

// LanguageButtons returns elements with the language-button class.
func (p *Page) LanguageButtons() []*html.Node { return p.langButtons }

// LanguageSwitches returns elements carrying data-lang-switch.
func (p *Page) LanguageSwitches() []*html.Node { return p.langSwitches }

// FallbackImages returns img elements carrying data-fallback.
func (p *Page) FallbackImages() []*html.Node { return p.images }

// Slug returns the body's data-project-slug marker, empty on listing pages.
func (p *Page) Slug() string {
	if p.body == nil {
		return ""
	}
	v, _ := GetAttr(p.body, AttrSlug)
	return v
}

// SetSlug marks the page as the detail page of slug.
func (p *Page) SetSlug(slug string) {
	if p.body != nil {
		SetAttr(p.body, AttrSlug, slug)
	}
}

// Title returns the document title text.
func (p *Page) Title() string {
	if p.title == nil {
		return ""
	}
	return TextContent(p.title)
}

// SetTitle replaces the document title, creating <title> in <head> when absent.
func (p *Page) SetTitle(s string) {
	if p.title == nil {
		if p.head == nil {
			return
		}
		p.title = Elem(atom.Title)
		p.head.AppendChild(p.title)
	}
	SetText(p.title, s)
}

// Lang returns the <html lang> attribute.
func (p *Page) Lang() string {
	if p.html == nil {
		return ""
	}
	v, _ := GetAttr(p.html, "lang")
	return v
}

// SetLang sets the <html lang> attribute.
func (p *Page) SetLang(code string) {
	if p.html != nil {
		SetAttr(p.html, "lang", code)
	}
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	return html.Render(w, p.root)
}

// Bytes renders the page into memory.
func (p *Page) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
