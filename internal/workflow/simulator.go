package workflow

import (
	"time"

	"bookpub/internal/models"
)

// Advance は処理中のワークフローを1段階進め、変更があったかを返す
// 完了済みのワークフローは変更しない
func Advance(w *models.Workflow, now time.Time) bool {
	if w.IsCompleted() {
		return false
	}

	w.Progress = min(w.Progress+models.ProgressStep, models.ProgressThreshold)
	w.UpdatedAt = now

	if w.Progress >= models.ProgressThreshold {
		w.Status = models.WorkflowStatusCompleted
		w.Stage = models.StagePublication
		w.Progress = models.ProgressComplete
	}
	return true
}
