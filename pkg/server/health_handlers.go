package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/robohr/ai-service/config"
	"github.com/robohr/ai-service/pkg/models"
	"github.com/robohr/ai-service/pkg/nlp"
	"github.com/robohr/ai-service/pkg/server/handlertools"
)

// ServiceInfoHandler describes the service and its top level endpoints.
func ServiceInfoHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response := models.ServiceInfoResponse{
			Service:   "hrai",
			Version:   config.VersionString,
			Status:    "running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Endpoints: map[string]string{
				"health":         "/api/v1/health",
				"capabilities":   "/api/v1/capabilities",
				"nlp_command":    "/api/v1/nlp/command",
				"speech_to_text": "/api/v1/speech-to-text",
				"text_to_speech": "/api/v1/text-to-speech",
				"translate":      "/api/v1/translate",
				"history":        "/api/v1/history",
			},
		}
		if err := handlertools.EncodeJSON(w, response); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// HealthHandler reports per service health. Status degrades when any
// component reports unhealthy.
func HealthHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		services := map[string]string{
			"nlp":         healthLabel(appState.NLP.Healthy()),
			"speech":      healthLabel(appState.Speech.Healthy()),
			"translation": healthLabel(appState.Translation.Healthy()),
		}

		status := "healthy"
		for _, state := range services {
			if state != "healthy" {
				status = "degraded"
				break
			}
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Services:  services,
			Version:   config.VersionString,
			Uptime:    time.Since(startTime).Seconds(),
		}
		if err := handlertools.EncodeJSON(w, response); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// CapabilitiesHandler lists the languages, commands and formats the
// service supports.
func CapabilitiesHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		languages := make([]string, 0, len(appState.Translation.Languages()))
		for code := range appState.Translation.Languages() {
			languages = append(languages, code)
		}
		sort.Strings(languages)

		response := models.CapabilitiesResponse{
			SupportedLanguages: languages,
			Commands: []string{
				nlp.ActionViewAttendance,
				nlp.ActionClockIn,
				nlp.ActionClockOut,
				nlp.ActionRequestLeave,
				nlp.ActionViewLeave,
				nlp.ActionViewPayroll,
				nlp.ActionCreateEmployee,
				nlp.ActionSearchEmployees,
				nlp.ActionViewEmployees,
				nlp.ActionGenerateReport,
			},
			SpeechFormats: []string{"wav", "mp3", "ogg", "flac"},
			Features: []string{
				"nlp_command",
				"speech_to_text",
				"text_to_speech",
				"translation",
				"language_detection",
				"command_history",
			},
			Models: map[string]string{
				"nlp":         "pattern-intent",
				"speech":      appState.Config.Speech.Provider,
				"translation": appState.Config.Translation.Provider,
			},
			Version: config.VersionString,
		}
		if err := handlertools.EncodeJSON(w, response); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func healthLabel(healthy bool) string {
	if healthy {
		return "healthy"
	}
	return "unhealthy"
}
