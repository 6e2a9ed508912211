package render

import (
	"net/url"
	"strconv"

	"github.com/panampa98/portfolio/internal/page"
	"github.com/panampa98/portfolio/internal/portfolio"
)

// ClassActiveLanguage marks the selected language button.
const ClassActiveLanguage = "active-language"

// Synchronize points navigation at lang, marks the active language button,
// turns language switch controls into links for current and sets <html lang>.
// current may be nil when the page has no request URL, as in static exports.
func Synchronize(p *page.Page, lang portfolio.Code, current *url.URL) {
	UpdateNavLinks(p, lang)
	UpdateLanguageButtons(p, lang)
	if current != nil {
		UpdateLanguageSwitches(p, current)
	}
	p.SetLang(string(lang))
}

// UpdateNavLinks sets href = WithLang(data-nav-link, lang) on every nav link.
func UpdateNavLinks(p *page.Page, lang portfolio.Code) {
	for _, n := range p.NavLinks() {
		base, _ := page.GetAttr(n, page.AttrNavLink)
		page.SetAttr(n, "href", portfolio.WithLang(base, lang))
	}
}

// UpdateLanguageButtons deactivates every language button, then activates #{lang}-btn.
func UpdateLanguageButtons(p *page.Page, lang portfolio.Code) {
	for _, n := range p.LanguageButtons() {
		page.RemoveClass(n, ClassActiveLanguage)
		page.SetAttr(n, "aria-pressed", strconv.FormatBool(false))
	}
	if n, ok := p.ByID(string(lang) + "-btn"); ok {
		page.AddClass(n, ClassActiveLanguage)
		page.SetAttr(n, "aria-pressed", strconv.FormatBool(true))
	}
}

// UpdateLanguageSwitches links each data-lang-switch control to the current
// URL with its language.
func UpdateLanguageSwitches(p *page.Page, current *url.URL) {
	UpdateLanguageSwitchesFunc(p, func(code portfolio.Code) string {
		return portfolio.ReplaceLang(current, code)
	})
}

// UpdateLanguageSwitchesFunc sets each data-lang-switch href to href(code).
func UpdateLanguageSwitchesFunc(p *page.Page, href func(portfolio.Code) string) {
	for _, n := range p.LanguageSwitches() {
		code, _ := page.GetAttr(n, page.AttrLangSwitch)
		page.SetAttr(n, "href", href(portfolio.Code(code)))
	}
}
