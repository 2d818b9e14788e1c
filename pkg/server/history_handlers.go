package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/robohr/ai-service/pkg/models"
	"github.com/robohr/ai-service/pkg/server/handlertools"
)

const defaultHistoryLimit = 50

// ListHistoryHandler returns the most recent command records, newest
// first. The limit query parameter caps the page size.
func ListHistoryHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := handlertools.IntFromQuery[int](r, "limit")
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if limit <= 0 {
			limit = defaultHistoryLimit
		}

		records, err := appState.History.List(r.Context(), limit)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := handlertools.EncodeJSON(w, records); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func GetHistoryHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordUUID := handlertools.UUIDFromURL(r, w, "recordUUID")
		if recordUUID == uuid.Nil {
			return
		}

		record, err := appState.History.Get(r.Context(), recordUUID)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := handlertools.EncodeJSON(w, record); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
