package components

import "bookpub/internal/models"

var enhancementLabels = map[string]string{
	models.EnhancementCreativeRewrite:      "Creative rewrite",
	models.EnhancementAcademicStyle:        "Academic style",
	models.EnhancementNarrativeStyle:       "Narrative style",
	models.EnhancementChapterExpansion:     "Chapter expansion",
	models.EnhancementContentSummarization: "Content summarization",
}

var audienceLabels = map[string]string{
	models.AudienceGeneral:      "General public",
	models.AudienceAcademic:     "Academic",
	models.AudienceChildren:     "Children / young adult",
	models.AudienceProfessional: "Professional",
}

// enhancementLabel は加工スタイルの表示名。未登録なら値をそのまま返す
func enhancementLabel(value string) string {
	if label, ok := enhancementLabels[value]; ok {
		return label
	}
	return value
}

// audienceLabel は対象読者の表示名
func audienceLabel(value string) string {
	if label, ok := audienceLabels[value]; ok {
		return label
	}
	return value
}

// Endpoint はAPIドキュメントに載せるエンドポイント
type Endpoint struct {
	Method      string
	Path        string
	Description string
}
