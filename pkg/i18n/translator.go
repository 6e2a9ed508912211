package i18n

// Translator binds a Catalog to one language and namespace.
type Translator struct {
	catalog   *Catalog
	language  string
	namespace string
}

// NewTranslator returns a Translator. An empty language selects the catalog default.
func NewTranslator(c *Catalog, language, namespace string) *Translator {
	if c == nil {
		panic("i18n: catalog is not provided")
	}
	if language == "" {
		language = c.DefaultLanguage()
	}
	return &Translator{catalog: c, language: language, namespace: namespace}
}

// T translates key.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.catalog.T(t.language, t.namespace, key, placeholders...)
}

// Language returns the bound language.
func (t *Translator) Language() string {
	return t.language
}
