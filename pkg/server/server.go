package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-playground/validator/v10"

	"github.com/robohr/ai-service/internal"
	"github.com/robohr/ai-service/pkg/auth"
	"github.com/robohr/ai-service/pkg/models"
)

var log = internal.GetLogger()

var validate = validator.New()

const ReadHeaderTimeout = 5 * time.Second

var startTime = time.Now()

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr: fmt.Sprintf(
			"%s:%d",
			appState.Config.Server.Host,
			appState.Config.Server.Port,
		),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))

	if appState.Config.Auth.Required {
		log.Info("JWT authentication required")
		router.Use(auth.JWTVerifier(appState.Config))
		router.Use(jwtauth.Authenticator)
	}

	router.Get("/", ServiceInfoHandler(appState))
	router.Get("/audio/{filename}", AudioFileHandler(appState))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", HealthHandler(appState))
		r.Get("/capabilities", CapabilitiesHandler(appState))

		// Command interpretation routes
		r.Post("/nlp/command", PostCommandHandler(appState))

		// Speech routes
		r.Post("/speech-to-text", TranscribeHandler(appState))
		r.Post("/text-to-speech", SynthesizeHandler(appState))
		r.Route("/speech", func(r chi.Router) {
			r.Get("/languages", SpeechLanguagesHandler(appState))
			r.Get("/voices/{lang}", SpeechVoicesHandler(appState))
			r.Get("/stats", SpeechStatsHandler(appState))
		})

		// Translation routes
		r.Route("/translate", func(r chi.Router) {
			r.Post("/", TranslateHandler(appState))
			r.Post("/batch", BatchTranslateHandler(appState))
			r.Get("/languages", TranslationLanguagesHandler(appState))
			r.Get("/stats", TranslationStatsHandler(appState))
			r.Delete("/cache", ClearTranslationCacheHandler(appState))
		})

		// Command history routes
		r.Route("/history", func(r chi.Router) {
			r.Get("/", ListHistoryHandler(appState))
			r.Get("/{recordUUID}", GetHistoryHandler(appState))
		})
	})

	return router
}
