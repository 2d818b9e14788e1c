package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robohr/ai-service/pkg/models"
)

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestPostCommandHandler(t *testing.T) {
	appState := newTestAppState(t)
	router := setupRouter(appState)

	employeeID := int64(7)
	res := postJSON(t, router, "/api/v1/nlp/command", models.CommandRequest{
		Text:       "Show me my attendance",
		EmployeeID: &employeeID,
	})
	require.Equal(t, http.StatusOK, res.Code)

	var response models.CommandResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "view_attendance", response.Action)
	assert.Equal(t, "Show me my attendance", response.OriginalText)
	// The processed text is echoed back untouched.
	assert.Equal(t, "Show me my attendance", response.ProcessedText)
	assert.Equal(t, "en", response.Language)
	assert.Greater(t, response.Confidence, 0.0)
}

func TestPostCommandHandlerSpanish(t *testing.T) {
	appState := newTestAppState(t)
	router := setupRouter(appState)

	res := postJSON(t, router, "/api/v1/nlp/command", models.CommandRequest{
		Text: "fichar entrada",
		Lang: "es",
	})
	require.Equal(t, http.StatusOK, res.Code)

	var response models.CommandResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
	assert.Equal(t, "clock_in", response.Action)
	assert.Equal(t, "fichar entrada", response.OriginalText)
	assert.Equal(t, "clock in", response.ProcessedText)
	assert.Equal(t, "es", response.Language)
}

func TestPostCommandHandlerMissingText(t *testing.T) {
	appState := newTestAppState(t)
	router := setupRouter(appState)

	res := postJSON(t, router, "/api/v1/nlp/command", models.CommandRequest{})
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestPostCommandHandlerInvalidJSON(t *testing.T) {
	appState := newTestAppState(t)
	router := setupRouter(appState)

	req := httptest.NewRequest(
		http.MethodPost, "/api/v1/nlp/command", bytes.NewReader([]byte("{not json")),
	)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestPostCommandRecordsHistory(t *testing.T) {
	appState := newTestAppState(t)
	router := setupRouter(appState)

	res := postJSON(t, router, "/api/v1/nlp/command", models.CommandRequest{
		Text: "clock in",
	})
	require.Equal(t, http.StatusOK, res.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	listRes := httptest.NewRecorder()
	router.ServeHTTP(listRes, req)
	require.Equal(t, http.StatusOK, listRes.Code)

	var records []models.CommandRecord
	require.NoError(t, json.Unmarshal(listRes.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "clock in", records[0].CommandText)
	assert.Equal(t, "clock_in", records[0].Action)

	getReq := httptest.NewRequest(
		http.MethodGet, "/api/v1/history/"+records[0].UUID.String(), nil,
	)
	getRes := httptest.NewRecorder()
	router.ServeHTTP(getRes, getReq)
	require.Equal(t, http.StatusOK, getRes.Code)

	var record models.CommandRecord
	require.NoError(t, json.Unmarshal(getRes.Body.Bytes(), &record))
	assert.Equal(t, records[0].UUID, record.UUID)
}

func TestGetHistoryInvalidUUID(t *testing.T) {
	appState := newTestAppState(t)
	router := setupRouter(appState)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/not-a-uuid", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestGetHistoryNotFound(t *testing.T) {
	appState := newTestAppState(t)
	router := setupRouter(appState)

	req := httptest.NewRequest(
		http.MethodGet,
		"/api/v1/history/00000000-0000-0000-0000-000000000001",
		nil,
	)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusNotFound, res.Code)
}
