package handlers

import (
	"net/http"

	"bookpub/web/components"

	"github.com/labstack/echo/v4"
)

// APIEndpoints はドキュメントページに載せるエンドポイント一覧
var APIEndpoints = []components.Endpoint{
	{Method: http.MethodGet, Path: "/", Description: "Dashboard for starting and tracking workflows"},
	{Method: http.MethodGet, Path: "/docs", Description: "This page"},
	{Method: http.MethodGet, Path: "/health", Description: "Service status, version and number of stored workflows"},
	{Method: http.MethodPost, Path: "/api/workflow/start", Description: "Start a workflow. Body: source_url, search_query, enhancement_type, target_audience, include_audio, require_human_approval"},
	{Method: http.MethodGet, Path: "/api/workflow/status/:session_id", Description: "Advance the workflow by one step and return it. 404 for unknown sessions"},
	{Method: http.MethodGet, Path: "/api/workflow/stats", Description: "Workflow counts per status"},
}

// Docs はAPIドキュメントを表示
func Docs(c echo.Context) error {
	return render(c, components.APIDocs(APIEndpoints))
}
