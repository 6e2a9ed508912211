package portfolio

import (
	"net/url"
	"strings"
)

// LangParam is the query parameter carrying the language.
const LangParam = "lang"

// WithLang appends lang=<code> to href, keeping any fragment at the end.
// The href is otherwise left untouched, so an existing lang parameter is not
// replaced; use ReplaceLang for that.
//
//	WithLang("projects/x/index.html#sec", "es")  // projects/x/index.html?lang=es#sec
//	WithLang("projects/x/index.html?a=1", "es")  // projects/x/index.html?a=1&lang=es
func WithLang(href string, lang Code) string {
	base, fragment, hasFragment := strings.Cut(href, "#")

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	out := base + sep + LangParam + "=" + url.QueryEscape(string(lang))
	if hasFragment {
		out += "#" + fragment
	}
	return out
}

// ReplaceLang returns u with its lang parameter set to lang, preserving the
// path, fragment and the other parameters in their original order and
// encoding. The first lang pair is replaced in place, later ones dropped;
// without one, lang is appended. u is not modified.
func ReplaceLang(u *url.URL, lang Code) string {
	pair := LangParam + "=" + url.QueryEscape(string(lang))

	var (
		out      []string
		replaced bool
	)
	for _, part := range strings.Split(u.RawQuery, "&") {
		if part == "" {
			continue
		}
		key, _, _ := strings.Cut(part, "=")
		if k, err := url.QueryUnescape(key); err == nil && k == LangParam {
			if !replaced {
				out = append(out, pair)
				replaced = true
			}
			continue
		}
		out = append(out, part)
	}
	if !replaced {
		out = append(out, pair)
	}

	cp := *u
	cp.RawQuery = strings.Join(out, "&")
	cp.ForceQuery = false
	return cp.String()
}
