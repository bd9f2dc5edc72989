package storage

import (
	"context"
	"sync"

	"bookpub/internal/models"
)

// MemoryWorkflowStore はマップに保持するストア
type MemoryWorkflowStore struct {
	mu        sync.Mutex
	workflows map[string]models.Workflow
}

// NewMemoryWorkflowStore は空のMemoryWorkflowStoreを作成
func NewMemoryWorkflowStore() *MemoryWorkflowStore {
	return &MemoryWorkflowStore{workflows: make(map[string]models.Workflow)}
}

// Create は新しいワークフローを保存
func (s *MemoryWorkflowStore) Create(_ context.Context, w *models.Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workflows[w.SessionID]; ok {
		return ErrDuplicate
	}
	s.workflows[w.SessionID] = *w.Clone()
	return nil
}

// GetByID はIDでワークフローを取得
func (s *MemoryWorkflowStore) GetByID(_ context.Context, id string) (*models.Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workflows[id]
	if !ok {
		return nil, nil
	}
	return w.Clone(), nil
}

// Update はロックを保持したままワークフローを書き換える
func (s *MemoryWorkflowStore) Update(_ context.Context, id string, fn UpdateFunc) (*models.Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.workflows[id]
	if !ok {
		return nil, nil
	}
	w := current.Clone()
	if err := fn(w); err != nil {
		return nil, err
	}
	s.workflows[id] = *w.Clone()
	return w, nil
}

// Count は保持しているワークフロー数を返す
func (s *MemoryWorkflowStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.workflows)), nil
}

// CountByStatus はステータスごとのワークフロー数を返す
func (s *MemoryWorkflowStore) CountByStatus(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int64)
	for _, w := range s.workflows {
		counts[w.Status]++
	}
	return counts, nil
}

// Close は何もしない
func (s *MemoryWorkflowStore) Close() error {
	return nil
}
