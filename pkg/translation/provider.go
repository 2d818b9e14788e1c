package translation

import (
	"context"
	"strings"
)

const (
	ProviderMock   = "mock"
	ProviderRemote = "remote"
	ProviderOpenAI = "openai"
)

// Provider performs the actual translation between two languages.
type Provider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

var _ Provider = &MockProvider{}

// MockProvider translates via a fixed phrase table. Unknown phrases pass
// through unchanged.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

type languagePair struct {
	source string
	target string
}

var phraseTables = map[languagePair]map[string]string{
	{"en", "es"}: {
		"show me my attendance": "muéstrame mi asistencia",
		"clock in":              "fichar entrada",
		"clock out":             "fichar salida",
		"request leave":         "solicitar permiso",
		"view payroll":          "ver nómina",
		"employee":              "empleado",
		"department":            "departamento",
		"manager":               "gerente",
	},
	{"en", "fr"}: {
		"show me my attendance": "montrez-moi ma présence",
		"clock in":              "pointer à l'arrivée",
		"clock out":             "pointer au départ",
		"request leave":         "demander un congé",
		"view payroll":          "voir la paie",
		"employee":              "employé",
		"department":            "département",
		"manager":               "directeur",
	},
	{"es", "en"}: {
		"muéstrame mi asistencia": "show me my attendance",
		"fichar entrada":          "clock in",
		"fichar salida":           "clock out",
		"solicitar permiso":       "request leave",
		"empleado":                "employee",
	},
	{"fr", "en"}: {
		"montrez-moi ma présence": "show me my attendance",
		"pointer à l'arrivée":     "clock in",
		"pointer au départ":       "clock out",
		"demander un congé":       "request leave",
		"employé":                 "employee",
	},
}

func (p *MockProvider) Translate(
	_ context.Context,
	text, sourceLang, targetLang string,
) (string, error) {
	table, ok := phraseTables[languagePair{sourceLang, targetLang}]
	if !ok {
		return text, nil
	}

	lowered := strings.ToLower(text)
	if translated, ok := table[lowered]; ok {
		return translated, nil
	}

	// Partial match: substitute any known phrase inside the text.
	for sourcePhrase, targetPhrase := range table {
		if strings.Contains(lowered, sourcePhrase) {
			return strings.ReplaceAll(lowered, sourcePhrase, targetPhrase), nil
		}
	}

	return text, nil
}
