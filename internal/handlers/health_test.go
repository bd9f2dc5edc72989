package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookpub/internal/models"
	"bookpub/internal/version"
)

func TestHealthReportsWorkflowCount(t *testing.T) {
	registry := newTestRegistry()
	wh := NewWorkflowHandler(registry)
	postStart(t, wh, `{"source_url": "https://example.org/a"}`)

	fixed := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	h := NewHealthHandler(registry)
	h.now = func() time.Time { return fixed }

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Check(e.NewContext(req, rec)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, models.ServiceName, resp.Service)
	assert.Equal(t, version.Version, resp.Version)
	assert.True(t, fixed.Equal(resp.Timestamp))
	assert.EqualValues(t, 1, resp.ActiveWorkflows)
}

func TestDashboardRendersHTML(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, Dashboard(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "Automated Book Publisher")
	assert.Contains(t, rec.Body.String(), "/api/workflow/start")
	assert.Contains(t, rec.Body.String(), `href="/docs"`)
}

func TestDashboardOptionsFollowEnums(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, Dashboard(e.NewContext(req, rec)))

	body := rec.Body.String()
	for _, value := range append(slices.Clone(models.EnhancementTypes), models.TargetAudiences...) {
		assert.Contains(t, body, `<option value="`+value+`"`, value)
	}
	assert.Contains(t, body, `<option value="`+models.EnhancementCreativeRewrite+`" selected>`)
	assert.Contains(t, body, `<option value="`+models.AudienceGeneral+`" selected>`)
	assert.Equal(t, 2, strings.Count(body, " selected>"))
}

func TestDocsListsEndpoints(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, Docs(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	for _, ep := range APIEndpoints {
		assert.Contains(t, rec.Body.String(), "<code>"+ep.Path+"</code>", ep.Path)
	}
}
