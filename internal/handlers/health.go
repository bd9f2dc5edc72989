package handlers

import (
	"net/http"
	"time"

	"bookpub/internal/models"
	"bookpub/internal/version"
	"bookpub/internal/workflow"

	"github.com/labstack/echo/v4"
)

// HealthHandler はヘルスチェックのハンドラー
type HealthHandler struct {
	registry *workflow.Registry
	now      func() time.Time
}

// NewHealthHandler は新しいHealthHandlerを作成
func NewHealthHandler(registry *workflow.Registry) *HealthHandler {
	return &HealthHandler{registry: registry, now: time.Now}
}

// Check はサービスの稼働状況と保持しているワークフロー数を返す
func (h *HealthHandler) Check(c echo.Context) error {
	count, err := h.registry.Count(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:          "healthy",
		Service:         models.ServiceName,
		Version:         version.Version,
		Timestamp:       h.now(),
		ActiveWorkflows: count,
	})
}
