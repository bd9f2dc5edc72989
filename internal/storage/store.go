package storage

import (
	"context"
	"errors"
	"fmt"

	"bookpub/internal/models"
)

// ErrDuplicate は同じセッションIDが既に存在する場合のエラー
var ErrDuplicate = errors.New("workflow already exists")

// UpdateFunc は取得したワークフローをその場で書き換える
type UpdateFunc func(w *models.Workflow) error

// WorkflowStore はワークフローの保存先
//
// GetByID と Update は該当するレコードがない場合 nil, nil を返す。
// Update は読み取りから書き込みまでを他の呼び出しと直列化する。
type WorkflowStore interface {
	Create(ctx context.Context, w *models.Workflow) error
	GetByID(ctx context.Context, id string) (*models.Workflow, error)
	Update(ctx context.Context, id string, fn UpdateFunc) (*models.Workflow, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	Close() error
}

// ストアの種類
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// NewStore は指定された種類のストアを作成
func NewStore(backend string) (WorkflowStore, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemoryWorkflowStore(), nil
	case BackendSQLite:
		db, err := OpenMemory()
		if err != nil {
			return nil, err
		}
		return NewWorkflowRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q", backend)
	}
}
