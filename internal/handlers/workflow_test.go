package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookpub/internal/models"
	"bookpub/internal/storage"
	"bookpub/internal/workflow"
)

func newTestRegistry() *workflow.Registry {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return workflow.NewRegistry(storage.NewMemoryWorkflowStore(), workflow.WithLogger(logger))
}

func postStart(t *testing.T, h *WorkflowHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/workflow/start", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Start(e.NewContext(req, rec)))
	return rec
}

func getStatus(t *testing.T, h *WorkflowHandler, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/workflow/status/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(id)
	require.NoError(t, h.Status(c))
	return rec
}

func TestStartAppliesDefaults(t *testing.T) {
	registry := newTestRegistry()
	h := NewWorkflowHandler(registry)

	rec := postStart(t, h, `{"search_query": "Alice in Wonderland"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "started", resp.Status)
	assert.Equal(t, "Workflow initiated successfully", resp.Message)

	w, err := registry.Get(t.Context(), resp.SessionID)
	require.NoError(t, err)
	assert.Nil(t, w.SourceURL)
	require.NotNil(t, w.SearchQuery)
	assert.Equal(t, "Alice in Wonderland", *w.SearchQuery)
	assert.Equal(t, models.EnhancementCreativeRewrite, w.EnhancementType)
	assert.Equal(t, models.AudienceGeneral, w.TargetAudience)
	assert.True(t, w.IncludeAudio)
	assert.False(t, w.RequireHumanApproval)
}

func TestStartKeepsExplicitFalse(t *testing.T) {
	registry := newTestRegistry()
	h := NewWorkflowHandler(registry)

	rec := postStart(t, h, `{"search_query": "Hamlet", "include_audio": false, "require_human_approval": true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	w, err := registry.Get(t.Context(), resp.SessionID)
	require.NoError(t, err)
	assert.False(t, w.IncludeAudio)
	assert.True(t, w.RequireHumanApproval)
}

func TestStartStoresSourceFieldsVerbatim(t *testing.T) {
	registry := newTestRegistry()
	h := NewWorkflowHandler(registry)

	rec := postStart(t, h, `{"source_url": "", "search_query": "  Hamlet  "}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	w, err := registry.Get(t.Context(), resp.SessionID)
	require.NoError(t, err)
	require.NotNil(t, w.SourceURL)
	assert.Equal(t, "", *w.SourceURL)
	require.NotNil(t, w.SearchQuery)
	assert.Equal(t, "  Hamlet  ", *w.SearchQuery)
}

func TestStartRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"source_url":`},
		{"unknown enhancement", `{"source_url": "https://example.org", "enhancement_type": "poetry"}`},
		{"unknown audience", `{"source_url": "https://example.org", "target_audience": "aliens"}`},
		{"wrong type", `{"include_audio": "yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := newTestRegistry()
			rec := postStart(t, NewWorkflowHandler(registry), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)

			count, err := registry.Count(t.Context())
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestStatusAdvancesProgress(t *testing.T) {
	h := NewWorkflowHandler(newTestRegistry())

	rec := postStart(t, h, `{"source_url": "https://example.org/text", "enhancement_type": "creative_rewrite"}`)
	var resp models.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = getStatus(t, h, resp.SessionID)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, resp.SessionID, body["session_id"])
	assert.Equal(t, "processing", body["status"])
	assert.Equal(t, "scraping", body["stage"])
	assert.EqualValues(t, 25, body["progress"])
	assert.Equal(t, "https://example.org/text", body["source_url"])
	assert.Nil(t, body["search_query"])
	for _, key := range []string{"enhancement_type", "target_audience", "include_audio", "created_at", "updated_at"} {
		assert.Contains(t, body, key)
	}
}

func TestStatusUnknownSession(t *testing.T) {
	h := NewWorkflowHandler(newTestRegistry())

	rec := getStatus(t, h, "00000000-0000-4000-8000-000000000000")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "workflow not found"}`, rec.Body.String())
}

func TestStats(t *testing.T) {
	h := NewWorkflowHandler(newTestRegistry())
	postStart(t, h, `{"source_url": "https://example.org/a"}`)
	postStart(t, h, `{"source_url": "https://example.org/b"}`)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/workflow/stats", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Stats(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"processing": 2, "completed": 0}`, rec.Body.String())
}
