package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// DefaultLang is used when no default language is configured.
const DefaultLang = "en"

// M holds placeholder values for {{name}} substitution.
type M map[string]any

// Catalog holds UI strings keyed by language, namespace and dotted key.
// It is immutable after New and safe for concurrent use.
type Catalog struct {
	// "lang:namespace:key.path" -> text
	entries     map[string]string
	onMissing   func(lang, namespace, key string)
	defaultLang string
}

// Option configures a Catalog during construction.
type Option func(*Catalog) error

// New builds a Catalog from the given options.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		entries:     make(map[string]string),
		defaultLang: DefaultLang,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("i18n: apply option: %w", err)
		}
	}
	return c, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.defaultLang = lang
		return nil
	}
}

// WithTranslations adds a nested map of strings for lang and namespace.
func WithTranslations(lang, namespace string, data map[string]any) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		c.add(lang, namespace, data)
		return nil
	}
}

// WithMissingKeyHandler is called for keys absent in both the requested and
// the default language.
func WithMissingKeyHandler(fn func(lang, namespace, key string)) Option {
	return func(c *Catalog) error {
		c.onMissing = fn
		return nil
	}
}

// T returns the text for key in lang, falling back to the default language
// and then to the key itself.
func (c *Catalog) T(lang, namespace, key string, placeholders ...M) string {
	if text, ok := c.entries[entryKey(lang, namespace, key)]; ok {
		return replace(text, placeholders)
	}
	if lang != c.defaultLang {
		if text, ok := c.entries[entryKey(c.defaultLang, namespace, key)]; ok {
			return replace(text, placeholders)
		}
	}
	if c.onMissing != nil {
		c.onMissing(lang, namespace, key)
	}
	return key
}

// Has reports whether lang defines key without falling back.
func (c *Catalog) Has(lang, namespace, key string) bool {
	_, ok := c.entries[entryKey(lang, namespace, key)]
	return ok
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

func (c *Catalog) add(lang, namespace string, data map[string]any) {
	for key, text := range flatten(data, "") {
		c.entries[entryKey(lang, namespace, key)] = text
	}
}

func entryKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flatten(data map[string]any, prefix string) map[string]string {
	out := make(map[string]string, len(data))
	for key, value := range data {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[key] = v
		case map[string]any:
			maps.Copy(out, flatten(v, key))
		default:
			out[key] = fmt.Sprint(v)
		}
	}
	return out
}

// replace substitutes {{name}} placeholders; unknown placeholders stay as is.
func replace(text string, placeholders []M) string {
	if len(placeholders) == 0 || !strings.Contains(text, "{{") {
		return text
	}
	for _, p := range placeholders {
		for name, value := range p {
			text = strings.ReplaceAll(text, "{{"+name+"}}", fmt.Sprint(value))
		}
	}
	return text
}
