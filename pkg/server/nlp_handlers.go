package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/robohr/ai-service/pkg/models"
	"github.com/robohr/ai-service/pkg/server/handlertools"
)

// PostCommandHandler interprets a natural language HR command and
// returns the action plan. Non English commands are translated to
// English before interpretation and the reply message is translated
// back. The processed command is recorded in the history store.
func PostCommandHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.CommandRequest
		if err := handlertools.DecodeJSON(r, &request); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if request.Lang == "" {
			request.Lang = "en"
		}

		start := time.Now()

		commandText := request.Text
		if request.Lang != "en" {
			translated, err := appState.Translation.Translate(
				r.Context(), request.Text, request.Lang, "en",
			)
			if err != nil {
				handlertools.RenderError(w, err, http.StatusInternalServerError)
				return
			}
			commandText = translated
		}

		result, err := appState.NLP.Process(
			r.Context(), commandText, request.Lang, request.EmployeeID,
		)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		if request.Lang != "en" && result.Message != "" {
			message, err := appState.Translation.Translate(
				r.Context(), result.Message, "en", request.Lang,
			)
			if err == nil {
				result.Message = message
			}
		}
		elapsed := time.Since(start)

		recordCommand(appState, &request, result, elapsed)

		response := models.CommandResponse{
			Success:       true,
			Action:        result.Action,
			Parameters:    result.Parameters,
			Message:       result.Message,
			Confidence:    result.Confidence,
			OriginalText:  request.Text,
			ProcessedText: commandText,
			Language:      request.Lang,
			Suggestions:   result.Suggestions,
		}
		if err := handlertools.EncodeJSON(w, response); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// recordCommand writes the processed command to the history store.
// History failures are logged and never fail the request.
func recordCommand(
	appState *models.AppState,
	request *models.CommandRequest,
	result *models.CommandResult,
	elapsed time.Duration,
) {
	if appState.History == nil {
		return
	}
	record := &models.CommandRecord{
		UUID:         uuid.New(),
		CreatedAt:    time.Now().UTC(),
		EmployeeID:   request.EmployeeID,
		CommandText:  request.Text,
		Action:       result.Action,
		Success:      true,
		ResponseTime: elapsed.Milliseconds(),
		Language:     request.Lang,
	}
	if err := appState.History.Put(context.Background(), record); err != nil {
		log.Warnf("failed to record command history: %v", err)
	}
}
