package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bookpub/internal/models"
	"bookpub/internal/storage"
)

// ErrNotFound はセッションIDに該当するワークフローがない場合のエラー
var ErrNotFound = errors.New("workflow not found")

// Registry はWorkflowStoreに保持したワークフローを作成・進行させる
type Registry struct {
	store  storage.WorkflowStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option はRegistryの設定
type Option func(*Registry)

// WithClock は現在時刻の取得元を差し替える
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithLogger はライフサイクルのログ出力先を設定
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry は新しいRegistryを作成
func NewRegistry(store storage.WorkflowStore, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		logger: slog.Default(),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start はリクエストから処理中のワークフローを作成
func (r *Registry) Start(ctx context.Context, req models.WorkflowRequest) (*models.Workflow, error) {
	now := r.now()
	w := &models.Workflow{
		SessionID:            r.newID(),
		Status:               models.WorkflowStatusProcessing,
		Stage:                models.StageScraping,
		Progress:             models.ProgressInitial,
		SourceURL:            req.SourceURL,
		SearchQuery:          req.SearchQuery,
		EnhancementType:      req.EnhancementType,
		TargetAudience:       req.TargetAudience,
		IncludeAudio:         req.IncludeAudio,
		RequireHumanApproval: req.RequireHumanApproval,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := r.store.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("create workflow: %w", err)
	}

	r.logger.Info("workflow started",
		slog.String("session_id", w.SessionID),
		slog.String("enhancement_type", w.EnhancementType),
		slog.String("target_audience", w.TargetAudience),
		slog.Bool("include_audio", w.IncludeAudio),
	)
	return w, nil
}

// Get はワークフローを進めずに取得
func (r *Registry) Get(ctx context.Context, sessionID string) (*models.Workflow, error) {
	w, err := r.store.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get workflow: %w", err)
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return w, nil
}

// Poll はワークフローを1段階進めて返す
func (r *Registry) Poll(ctx context.Context, sessionID string) (*models.Workflow, error) {
	var changed bool
	w, err := r.store.Update(ctx, sessionID, func(w *models.Workflow) error {
		changed = Advance(w, r.now())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("poll workflow: %w", err)
	}
	if w == nil {
		return nil, ErrNotFound
	}

	switch {
	case changed && w.IsCompleted():
		r.logger.Info("workflow completed", slog.String("session_id", w.SessionID))
	case changed:
		r.logger.Debug("workflow progressed",
			slog.String("session_id", w.SessionID),
			slog.String("stage", w.Stage),
			slog.Int("progress", w.Progress),
		)
	}
	return w, nil
}

// Count は保持しているワークフロー数を返す
func (r *Registry) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}

// CountByStatus はステータスごとのワークフロー数を返す（全ステータスを含む）
func (r *Registry) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := r.store.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats := map[string]int64{
		models.WorkflowStatusProcessing: 0,
		models.WorkflowStatusCompleted:  0,
	}
	for status, n := range counts {
		stats[status] = n
	}
	return stats, nil
}
