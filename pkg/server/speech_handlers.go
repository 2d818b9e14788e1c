package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/robohr/ai-service/pkg/models"
	"github.com/robohr/ai-service/pkg/server/handlertools"
)

const audioFileField = "audio_file"

// TranscribeHandler accepts a multipart audio upload and returns its
// transcript. The upload goes in the audio_file form field.
func TranscribeHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxSize := appState.Config.Speech.MaxFileSize
		if maxSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxSize+1024)
		}

		file, header, err := r.FormFile(audioFileField)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				handlertools.RenderError(w, err, http.StatusRequestEntityTooLarge)
				return
			}
			handlertools.RenderError(
				w,
				models.NewBadRequestError("audio_file form field is required"),
				http.StatusBadRequest,
			)
			return
		}
		defer file.Close()

		audio, err := io.ReadAll(file)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		if _, err := appState.Speech.ValidateAudio(audio, header.Filename); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		language := r.FormValue("language")
		transcript, err := appState.Speech.Transcribe(r.Context(), audio, language)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		response := models.TranscriptResponse{
			Success:    true,
			Transcript: transcript.Text,
			Language:   transcript.Language,
			Confidence: transcript.Confidence,
		}
		if err := handlertools.EncodeJSON(w, response); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// SynthesizeHandler converts text to speech and returns the URL of the
// generated audio file.
func SynthesizeHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.SynthesisRequest
		if err := handlertools.DecodeJSON(r, &request); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		response, err := appState.Speech.Synthesize(r.Context(), &request)
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

func SpeechLanguagesHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if err := handlertools.EncodeJSON(w, appState.Speech.Languages()); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func SpeechVoicesHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := chi.URLParam(r, "lang")
		if err := handlertools.EncodeJSON(w, appState.Speech.Voices(lang)); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

func SpeechStatsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		stats, err := appState.Speech.Stats()
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

// AudioFileHandler serves generated audio files from the audio
// directory. Filenames with path separators or a leading dot are
// rejected.
func AudioFileHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")
		if filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
			handlertools.RenderError(
				w,
				models.NewBadRequestError("invalid audio filename"),
				http.StatusBadRequest,
			)
			return
		}

		path := filepath.Join(appState.Config.Speech.AudioDir, filename)
		if _, err := os.Stat(path); err != nil {
			handlertools.RenderError(
				w,
				models.NewNotFoundError(fmt.Sprintf("audio file %s", filename)),
				http.StatusNotFound,
			)
			return
		}
		http.ServeFile(w, r, path)
	}
}
