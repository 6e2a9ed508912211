package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var strict = sync.OnceValue(bluemonday.StrictPolicy)

// PlainText strips every HTML element from s and returns unescaped text,
// ready to be inserted as a text node. Strings without '<' carry no markup
// and are returned unchanged, entities included.
func PlainText(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	return html.UnescapeString(strict().Sanitize(s))
}

// PlainTexts applies PlainText to each element in place and returns ss.
func PlainTexts(ss []string) []string {
	for i, s := range ss {
		ss[i] = PlainText(s)
	}
	return ss
}
