package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookpub/internal/models"
)

// ErrNotFound はサーバーがワークフローを見つけられなかった場合のエラー
var ErrNotFound = errors.New("workflow not found")

// APIError は2xx以外のレスポンス
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client は書籍出版APIのクライアント
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New は新しいクライアントを作成
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Start はワークフローを開始
func (c *Client) Start(ctx context.Context, req models.WorkflowRequest) (*models.StartResponse, error) {
	var resp models.StartResponse
	if err := c.do(ctx, http.MethodPost, "/api/workflow/start", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status はワークフローの状態を取得する。呼び出すたびに進捗が進む。
func (c *Client) Status(ctx context.Context, sessionID string) (*models.Workflow, error) {
	var w models.Workflow
	path := "/api/workflow/status/" + url.PathEscape(sessionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Stats はステータスごとのワークフロー数を取得
func (c *Client) Stats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64)
	if err := c.do(ctx, http.MethodGet, "/api/workflow/stats", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Health はヘルスチェックを実行
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var resp models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}
