package translation

import (
	"strings"

	"golang.org/x/text/language"
)

// supportedLanguages maps ISO 639-1 codes to display names for the pairs
// the service will attempt. Unsupported targets still translate, but with
// reduced confidence.
var supportedLanguages = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
}

// normalizeLang canonicalizes a language tag to its ISO 639-1 base code,
// so "EN", "en-US" and "en" all select the same phrase tables. Unparseable
// tags come back lowercased as given.
func normalizeLang(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	return base.String()
}

var spanishMarkers = []string{
	"el", "la", "los", "las", "un", "una", "es", "está", "son",
	"que", "de", "en", "por", "para", "con", "mi", "hola", "gracias",
}

var frenchMarkers = []string{
	"le", "la", "les", "un", "une", "est", "sont", "que", "de",
	"en", "pour", "avec", "mon", "ma", "bonjour", "merci",
}

// detectLanguage scores whitespace tokens against small marker word
// lists. English is the fallback when nothing scores.
func detectLanguage(text string) string {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return "en"
	}

	var esScore, frScore int
	for _, token := range tokens {
		token = strings.Trim(token, ".,!?;:\"'")
		if containsToken(spanishMarkers, token) {
			esScore++
		}
		if containsToken(frenchMarkers, token) {
			frScore++
		}
	}

	switch {
	case esScore > frScore && esScore > 0:
		return "es"
	case frScore > esScore && frScore > 0:
		return "fr"
	default:
		return "en"
	}
}

func containsToken(list []string, token string) bool {
	for _, item := range list {
		if item == token {
			return true
		}
	}
	return false
}
