package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	testCases := []struct {
		text string
		want string
	}{
		{"hola gracias por la ayuda", "es"},
		{"bonjour merci pour le rapport", "fr"},
		{"show me my attendance", "en"},
		{"", "en"},
		{"12345", "en"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, detectLanguage(tc.text), "text: %q", tc.text)
	}
}

func TestNormalizeLang(t *testing.T) {
	assert.Equal(t, "en", normalizeLang("EN"))
	assert.Equal(t, "en", normalizeLang("en-US"))
	assert.Equal(t, "es", normalizeLang("es"))
	assert.Equal(t, "xx", normalizeLang("XX"))
}

func TestApplyGlossaryOrdering(t *testing.T) {
	out := applyGlossary("sick leave and leave", "es")
	assert.Equal(t, "licencia por enfermedad and permiso", out)
}

func TestApplyGlossaryEnglishTarget(t *testing.T) {
	assert.Equal(t, "sick leave", applyGlossary("sick leave", "en"))
}
