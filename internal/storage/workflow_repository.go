package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"bookpub/internal/models"
)

const workflowsTable = "workflows"

var workflowColumns = []string{
	"session_id",
	"status",
	"stage",
	"progress",
	"source_url",
	"search_query",
	"enhancement_type",
	"target_audience",
	"include_audio",
	"require_human_approval",
	"created_at",
	"updated_at",
}

// WorkflowRepository はSQLite上のワークフローのデータアクセス層
type WorkflowRepository struct {
	db *DB
}

var _ WorkflowStore = (*WorkflowRepository)(nil)

// NewWorkflowRepository は新しいWorkflowRepositoryを作成
func NewWorkflowRepository(db *DB) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

// Create は新しいワークフローを作成
func (r *WorkflowRepository) Create(ctx context.Context, w *models.Workflow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create: %w", err)
	}
	defer tx.Rollback()

	existing, err := getWorkflow(ctx, tx, w.SessionID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicate
	}

	query, args, err := sq.Insert(workflowsTable).
		Columns(workflowColumns...).
		Values(
			w.SessionID,
			w.Status,
			w.Stage,
			w.Progress,
			nullString(w.SourceURL),
			nullString(w.SearchQuery),
			w.EnhancementType,
			w.TargetAudience,
			w.IncludeAudio,
			w.RequireHumanApproval,
			formatTime(w.CreatedAt),
			formatTime(w.UpdatedAt),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert workflow: %w", err)
	}

	return tx.Commit()
}

// GetByID はIDでワークフローを取得
func (r *WorkflowRepository) GetByID(ctx context.Context, id string) (*models.Workflow, error) {
	return getWorkflow(ctx, r.db, id)
}

// Update はトランザクション内でワークフローを書き換える
func (r *WorkflowRepository) Update(ctx context.Context, id string, fn UpdateFunc) (*models.Workflow, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	w, err := getWorkflow(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}

	if err := fn(w); err != nil {
		return nil, err
	}

	// session_id, 依頼内容, created_at は変更しない
	query, args, err := sq.Update(workflowsTable).
		SetMap(map[string]interface{}{
			"status":     w.Status,
			"stage":      w.Stage,
			"progress":   w.Progress,
			"updated_at": formatTime(w.UpdatedAt),
		}).
		Where(sq.Eq{"session_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update workflow: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return w, nil
}

// Count はワークフロー数を返す
func (r *WorkflowRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").From(workflowsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count workflows: %w", err)
	}
	return count, nil
}

// CountByStatus はステータスごとのワークフロー数を返す
func (r *WorkflowRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	query, args, err := sq.Select("status", "COUNT(*)").
		From(workflowsTable).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by status: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return counts, nil
}

// Close はデータベース接続を閉じる
func (r *WorkflowRepository) Close() error {
	return r.db.Close()
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getWorkflow(ctx context.Context, q queryRower, id string) (*models.Workflow, error) {
	query, args, err := sq.Select(workflowColumns...).
		From(workflowsTable).
		Where(sq.Eq{"session_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var (
		w                    models.Workflow
		sourceURL            sql.NullString
		searchQuery          sql.NullString
		createdAt, updatedAt string
	)
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&w.SessionID,
		&w.Status,
		&w.Stage,
		&w.Progress,
		&sourceURL,
		&searchQuery,
		&w.EnhancementType,
		&w.TargetAudience,
		&w.IncludeAudio,
		&w.RequireHumanApproval,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get workflow: %w", err)
	}

	if sourceURL.Valid {
		w.SourceURL = &sourceURL.String
	}
	if searchQuery.Valid {
		w.SearchQuery = &searchQuery.String
	}
	if w.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if w.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
