package server

import (
	"net/http"

	"github.com/robohr/ai-service/pkg/models"
	"github.com/robohr/ai-service/pkg/server/handlertools"
)

// TranslateHandler translates a single text between two languages.
// A missing source_lang triggers language detection.
func TranslateHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.TranslationRequest
		if err := handlertools.DecodeJSON(r, &request); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		response, err := appState.Translation.TranslateWithConfidence(
			r.Context(), request.Text, request.SourceLang, request.TargetLang,
		)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := handlertools.EncodeJSON(w, response); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func BatchTranslateHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.BatchTranslationRequest
		if err := handlertools.DecodeJSON(r, &request); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		translations, err := appState.Translation.BatchTranslate(
			r.Context(), request.Texts, request.SourceLang, request.TargetLang,
		)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		response := models.BatchTranslationResponse{
			Success:        true,
			Translations:   translations,
			SourceLanguage: request.SourceLang,
			TargetLanguage: request.TargetLang,
		}
		if err := handlertools.EncodeJSON(w, response); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func TranslationLanguagesHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if err := handlertools.EncodeJSON(w, appState.Translation.Languages()); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func TranslationStatsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := appState.Translation.Stats(r.Context())
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
		if err := handlertools.EncodeJSON(w, stats); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// ClearTranslationCacheHandler drops all cached translations and
// reports the number of entries removed.
func ClearTranslationCacheHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := appState.Translation.ClearCache(r.Context())
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
		response := map[string]interface{}{
			"success":         true,
			"entries_removed": removed,
		}
		if err := handlertools.EncodeJSON(w, response); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
