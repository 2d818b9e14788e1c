package models

type TranslationRequest struct {
	Text       string `json:"text"        validate:"required"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang" validate:"required"`
}

type TranslationResponse struct {
	Success        bool    `json:"success"`
	OriginalText   string  `json:"original_text"`
	TranslatedText string  `json:"translated_text"`
	SourceLanguage string  `json:"source_language"`
	TargetLanguage string  `json:"target_language"`
	Confidence     float64 `json:"confidence,omitempty"`
}

type BatchTranslationRequest struct {
	Texts      []string `json:"texts"       validate:"required,min=1"`
	SourceLang string   `json:"source_lang"`
	TargetLang string   `json:"target_lang" validate:"required"`
}

type BatchTranslationResponse struct {
	Success        bool     `json:"success"`
	Translations   []string `json:"translations"`
	SourceLanguage string   `json:"source_language"`
	TargetLanguage string   `json:"target_language"`
}

type TranslationStats struct {
	CacheSize          int         `json:"cache_size"`
	SupportedLanguages int         `json:"supported_languages"`
	GlossaryTerms      int         `json:"glossary_terms"`
	MostCommonPairs    [][2]string `json:"most_common_pairs"`
}
