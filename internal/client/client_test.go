package client_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookpub/internal/client"
	"bookpub/internal/models"
	"bookpub/internal/server"
	"bookpub/internal/storage"
	"bookpub/internal/workflow"
)

func newClient(t *testing.T) *client.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := workflow.NewRegistry(storage.NewMemoryWorkflowStore(), workflow.WithLogger(logger))
	ts := httptest.NewServer(server.New(registry, logger, server.Options{}))
	t.Cleanup(ts.Close)
	return client.New(ts.URL+"/", ts.Client())
}

func TestClientLifecycle(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	req := models.NewWorkflowRequest()
	query := "Shakespeare Hamlet"
	req.SearchQuery = &query
	req.EnhancementType = models.EnhancementContentSummarization

	started, err := c.Start(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "started", started.Status)

	w, err := c.Status(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 25, w.Progress)
	assert.Equal(t, models.EnhancementContentSummarization, w.EnhancementType)
	require.NotNil(t, w.SearchQuery)
	assert.Equal(t, query, *w.SearchQuery)
	assert.Nil(t, w.SourceURL)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats[models.WorkflowStatusProcessing])

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.EqualValues(t, 1, health.ActiveWorkflows)
}

func TestClientNotFound(t *testing.T) {
	c := newClient(t)

	_, err := c.Status(context.Background(), "does-not-exist")
	assert.True(t, errors.Is(err, client.ErrNotFound))
}

func TestClientAPIError(t *testing.T) {
	c := newClient(t)

	req := models.NewWorkflowRequest()
	req.TargetAudience = "aliens"
	_, err := c.Start(context.Background(), req)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "target_audience")
}
