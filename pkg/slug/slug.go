package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSeparator joins words.
const DefaultSeparator = "-"

type config struct {
	maxLength int
	separator string
}

// Option configures Make.
type Option func(*config)

// MaxLength limits the slug to n runes, cutting at a word boundary when possible.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words.
func Separator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// special letters that do not decompose.
var replacer = strings.NewReplacer(
	"ß", "ss", "ø", "o", "Ø", "o", "æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe", "đ", "d", "Đ", "d", "ł", "l", "Ł", "l",
)

// Make converts s to a lowercase slug.
func Make(s string, opts ...Option) string {
	cfg := config{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}

	folded := fold(replacer.Replace(s))

	var b strings.Builder
	pending := false
	for _, r := range folded {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pending && b.Len() > 0 {
				b.WriteString(cfg.separator)
			}
			pending = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pending = true
	}

	out := b.String()
	if cfg.maxLength > 0 {
		out = truncate(out, cfg.maxLength, cfg.separator)
	}
	return out
}

// Valid reports whether s is a non-empty slug that Make leaves unchanged.
func Valid(s string) bool {
	return s != "" && Make(s) == s
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func truncate(s string, n int, sep string) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	cut := string(r[:n])
	if i := strings.LastIndex(cut, sep); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSuffix(cut, sep)
}
