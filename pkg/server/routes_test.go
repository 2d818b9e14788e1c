package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robohr/ai-service/config"
	"github.com/robohr/ai-service/pkg/cache"
	"github.com/robohr/ai-service/pkg/models"
	"github.com/robohr/ai-service/pkg/nlp"
	"github.com/robohr/ai-service/pkg/speech"
	"github.com/robohr/ai-service/pkg/store"
	"github.com/robohr/ai-service/pkg/translation"
)

func newTestAppState(t *testing.T) *models.AppState {
	t.Helper()

	cfg := &config.Config{
		NLP: config.NLPConfig{
			CacheEnabled: false,
		},
		Speech: config.SpeechConfig{
			Provider:    speech.ProviderMock,
			AudioDir:    t.TempDir(),
			MaxFileSize: 10 * 1024 * 1024,
		},
		Translation: config.TranslationConfig{
			Provider:  translation.ProviderMock,
			MaxLength: 5000,
		},
	}

	c := cache.NewMemoryCache()

	speechProcessor, err := speech.NewProcessor(cfg)
	require.NoError(t, err)

	translationService, err := translation.NewService(cfg, c)
	require.NoError(t, err)

	return &models.AppState{
		NLP:         nlp.NewProcessor(cfg, c),
		Speech:      speechProcessor,
		Translation: translationService,
		History:     store.NewMemoryStore(100),
		Config:      cfg,
	}
}

func TestAuthMiddleware(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("auth required", func(t *testing.T) {
		appState := newTestAppState(t)
		appState.Config.Auth = config.AuthConfig{
			Secret:   "test-secret",
			Required: true,
		}

		router := setupRouter(appState)
		router.Handle("/protected", testHandler)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		res := httptest.NewRecorder()

		router.ServeHTTP(res, req)
		require.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("auth not required", func(t *testing.T) {
		appState := newTestAppState(t)

		router := setupRouter(appState)
		router.Handle("/protected", testHandler)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		res := httptest.NewRecorder()

		router.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)
	})
}

func TestHeartbeat(t *testing.T) {
	appState := newTestAppState(t)
	router := setupRouter(appState)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
}

func TestSendVersion(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	handler := SendVersion(nextHandler)

	req, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get(versionHeader) != config.VersionString {
		t.Errorf("handler returned wrong version header: got %v want %v",
			rr.Header().Get(versionHeader), config.VersionString)
	}
}
