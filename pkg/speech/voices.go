package speech

// supportedLanguages are the languages the speech pipeline accepts.
var supportedLanguages = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"ru": "Russian",
	"ar": "Arabic",
	"hi": "Hindi",
}

var voiceCatalog = map[string]map[string]string{
	"en": {
		"en-US-male-1":   "English (US) - Male",
		"en-US-female-1": "English (US) - Female",
		"en-GB-male-1":   "English (UK) - Male",
		"en-GB-female-1": "English (UK) - Female",
	},
	"es": {
		"es-ES-male-1":   "Spanish (Spain) - Male",
		"es-ES-female-1": "Spanish (Spain) - Female",
		"es-MX-male-1":   "Spanish (Mexico) - Male",
		"es-MX-female-1": "Spanish (Mexico) - Female",
	},
	"fr": {
		"fr-FR-male-1":   "French (France) - Male",
		"fr-FR-female-1": "French (France) - Female",
	},
}

var defaultVoices = map[string]string{"default": "Default Voice"}
