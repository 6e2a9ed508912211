package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header before parsing.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage returns the supported language that best matches an
// Accept-Language header. ok is false when the header is empty, invalid or
// only matches with no confidence.
func MatchAcceptLanguage(header string, supported []string) (string, bool) {
	if header == "" || len(supported) == 0 {
		return "", false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return "", false
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, language.Make(s))
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return "", false
	}
	return supported[idx], true
}
