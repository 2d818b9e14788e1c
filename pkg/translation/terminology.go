package translation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// glossaryEntry pins the translation of an HR term so provider output stays
// consistent with the rest of the product copy.
type glossaryEntry struct {
	term         string
	translations map[string]string
}

// hrGlossary is ordered longest-phrase-first so "sick leave" rewrites
// before the bare "leave" entry can touch it.
var hrGlossary = []glossaryEntry{
	{
		term: "sick leave",
		translations: map[string]string{
			"es": "licencia por enfermedad",
			"fr": "congé maladie",
			"de": "Krankheitsurlaub",
			"it": "congedo per malattia",
			"pt": "licença médica",
		},
	},
	{
		term: "attendance",
		translations: map[string]string{
			"es": "asistencia",
			"fr": "présence",
			"de": "Anwesenheit",
			"it": "presenza",
			"pt": "presença",
		},
	},
	{
		term: "payroll",
		translations: map[string]string{
			"es": "nómina",
			"fr": "paie",
			"de": "Gehaltsabrechnung",
			"it": "busta paga",
			"pt": "folha de pagamento",
		},
	},
	{
		term: "overtime",
		translations: map[string]string{
			"es": "horas extras",
			"fr": "heures supplémentaires",
			"de": "Überstunden",
			"it": "straordinario",
			"pt": "horas extras",
		},
	},
	{
		term: "leave",
		translations: map[string]string{
			"es": "permiso",
			"fr": "congé",
			"de": "Urlaub",
			"it": "congedo",
			"pt": "licença",
		},
	},
	{
		term: "salary",
		translations: map[string]string{
			"es": "salario",
			"fr": "salaire",
			"de": "Gehalt",
			"it": "stipendio",
			"pt": "salário",
		},
	},
	{
		term: "employee",
		translations: map[string]string{
			"es": "empleado",
			"fr": "employé",
			"de": "Mitarbeiter",
			"it": "dipendente",
			"pt": "funcionário",
		},
	},
	{
		term: "manager",
		translations: map[string]string{
			"es": "gerente",
			"fr": "responsable",
			"de": "Vorgesetzter",
			"it": "responsabile",
			"pt": "gerente",
		},
	},
}

var glossaryTitleCaser = cases.Title(language.English)

// applyGlossary rewrites known English HR terms in already translated text
// for supported target languages. Each term is replaced in lowercase,
// Title Case and UPPERCASE forms.
func applyGlossary(text, targetLang string) string {
	if targetLang == "en" {
		return text
	}
	for _, entry := range hrGlossary {
		replacement, ok := entry.translations[targetLang]
		if !ok {
			continue
		}
		text = strings.ReplaceAll(text, entry.term, replacement)
		text = strings.ReplaceAll(text, glossaryTitleCaser.String(entry.term), replacement)
		text = strings.ReplaceAll(text, strings.ToUpper(entry.term), replacement)
	}
	return text
}
