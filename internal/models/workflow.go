package models

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Workflow は書籍出版ワークフローのセッション
type Workflow struct {
	SessionID            string    `json:"session_id"`
	Status               string    `json:"status"`
	Stage                string    `json:"stage"`
	Progress             int       `json:"progress"`
	SourceURL            *string   `json:"source_url"`
	SearchQuery          *string   `json:"search_query"`
	EnhancementType      string    `json:"enhancement_type"`
	TargetAudience       string    `json:"target_audience"`
	IncludeAudio         bool      `json:"include_audio"`
	RequireHumanApproval bool      `json:"require_human_approval"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// IsCompleted は終端状態かどうかを返す
func (w *Workflow) IsCompleted() bool {
	return w.Status == WorkflowStatusCompleted
}

// Clone はポインタフィールドを含めて複製する
func (w *Workflow) Clone() *Workflow {
	c := *w
	if w.SourceURL != nil {
		v := *w.SourceURL
		c.SourceURL = &v
	}
	if w.SearchQuery != nil {
		v := *w.SearchQuery
		c.SearchQuery = &v
	}
	return &c
}

// ワークフローステータス
const (
	WorkflowStatusProcessing = "processing"
	WorkflowStatusCompleted  = "completed"
)

// ワークフローステージ
const (
	StageScraping    = "scraping"
	StagePublication = "publication"
)

// 進捗の定数
const (
	ProgressInitial   = 10
	ProgressStep      = 15
	ProgressThreshold = 90
	ProgressComplete  = 100
)

// 加工スタイル
const (
	EnhancementCreativeRewrite      = "creative_rewrite"
	EnhancementAcademicStyle        = "academic_style"
	EnhancementNarrativeStyle       = "narrative_style"
	EnhancementChapterExpansion     = "chapter_expansion"
	EnhancementContentSummarization = "content_summarization"
)

// 対象読者
const (
	AudienceGeneral      = "general"
	AudienceAcademic     = "academic"
	AudienceChildren     = "children"
	AudienceProfessional = "professional"
)

// EnhancementTypes は受け付ける加工スタイルの一覧
var EnhancementTypes = []string{
	EnhancementCreativeRewrite,
	EnhancementAcademicStyle,
	EnhancementNarrativeStyle,
	EnhancementChapterExpansion,
	EnhancementContentSummarization,
}

// TargetAudiences は受け付ける対象読者の一覧
var TargetAudiences = []string{
	AudienceGeneral,
	AudienceAcademic,
	AudienceChildren,
	AudienceProfessional,
}

// ErrInvalidRequest はリクエスト内容が不正な場合のエラー
var ErrInvalidRequest = errors.New("invalid request")

// WorkflowRequest はワークフロー開始リクエスト
type WorkflowRequest struct {
	SourceURL            *string `json:"source_url"`
	SearchQuery          *string `json:"search_query"`
	EnhancementType      string  `json:"enhancement_type"`
	TargetAudience       string  `json:"target_audience"`
	IncludeAudio         bool    `json:"include_audio"`
	RequireHumanApproval bool    `json:"require_human_approval"`
}

// NewWorkflowRequest はデフォルト値を設定したリクエストを作成
func NewWorkflowRequest() WorkflowRequest {
	return WorkflowRequest{
		EnhancementType: EnhancementCreativeRewrite,
		TargetAudience:  AudienceGeneral,
		IncludeAudio:    true,
	}
}

// Validate は列挙値を検証する
func (r *WorkflowRequest) Validate() error {
	if !slices.Contains(EnhancementTypes, r.EnhancementType) {
		return fmt.Errorf("%w: unknown enhancement_type %q", ErrInvalidRequest, r.EnhancementType)
	}
	if !slices.Contains(TargetAudiences, r.TargetAudience) {
		return fmt.Errorf("%w: unknown target_audience %q", ErrInvalidRequest, r.TargetAudience)
	}
	return nil
}
