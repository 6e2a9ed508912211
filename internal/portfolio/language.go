package portfolio

import (
	"fmt"
	"slices"
	"strings"
)

// Code is a supported language code such as "en".
type Code string

func (c Code) String() string { return string(c) }

// Built-in language set.
const (
	English Code = "en"
	Spanish Code = "es"
)

// Languages is the ordered set of supported codes. The default comes first.
type Languages struct {
	codes []Code
}

// DefaultLanguages returns {en, es} with en as default.
func DefaultLanguages() Languages {
	return Languages{codes: []Code{English, Spanish}}
}

// NewLanguages builds a set from def and others. Codes are lowercased and
// deduplicated; def must be non-empty.
func NewLanguages(def string, others ...string) (Languages, error) {
	d := normalizeCode(def)
	if d == "" {
		return Languages{}, fmt.Errorf("%w: empty default language", ErrInvalidLanguages)
	}

	codes := []Code{Code(d)}
	for _, o := range others {
		c := Code(normalizeCode(o))
		if c == "" || slices.Contains(codes, c) {
			continue
		}
		codes = append(codes, c)
	}
	return Languages{codes: codes}, nil
}

// Default returns the fallback language.
func (l Languages) Default() Code {
	if len(l.codes) == 0 {
		return English
	}
	return l.codes[0]
}

// Codes returns the supported codes, default first.
func (l Languages) Codes() []Code {
	return slices.Clone(l.codes)
}

// Strings returns the supported codes as strings.
func (l Languages) Strings() []string {
	out := make([]string, len(l.codes))
	for i, c := range l.codes {
		out[i] = string(c)
	}
	return out
}

// Lookup reports whether s is exactly one of the supported codes.
func (l Languages) Lookup(s string) (Code, bool) {
	c := Code(s)
	if c == "" || !slices.Contains(l.codes, c) {
		return "", false
	}
	return c, true
}

// Normalize maps s to itself when supported and to the default otherwise.
func (l Languages) Normalize(s string) Code {
	if c, ok := l.Lookup(s); ok {
		return c
	}
	return l.Default()
}

func normalizeCode(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
