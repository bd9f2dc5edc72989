package handlers

import (
	"errors"
	"net/http"

	"bookpub/internal/models"
	"bookpub/internal/workflow"

	"github.com/labstack/echo/v4"
)

// WorkflowHandler はワークフローAPIのハンドラー
type WorkflowHandler struct {
	registry *workflow.Registry
}

// NewWorkflowHandler は新しいWorkflowHandlerを作成
func NewWorkflowHandler(registry *workflow.Registry) *WorkflowHandler {
	return &WorkflowHandler{registry: registry}
}

// Start はワークフローを開始
func (h *WorkflowHandler) Start(c echo.Context) error {
	ctx := c.Request().Context()

	req := models.NewWorkflowRequest()
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	w, err := h.registry.Start(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, models.StartResponse{
		SessionID: w.SessionID,
		Status:    models.StartResponseStatus,
		Message:   "Workflow initiated successfully",
	})
}

// Status はワークフローの進捗を1段階進めて返す
func (h *WorkflowHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("session_id")

	w, err := h.registry.Poll(ctx, id)
	if errors.Is(err, workflow.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "workflow not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, w)
}

// Stats はステータスごとのワークフロー数を取得
func (h *WorkflowHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.registry.CountByStatus(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, stats)
}
