package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"bookpub/internal/models"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderWorkflow(w *models.Workflow) string {
	rows := [][]string{
		{"Session", w.SessionID},
		{"Status", w.Status},
		{"Stage", w.Stage},
		{"Progress", strconv.Itoa(w.Progress) + "%"},
		{"Source URL", optional(w.SourceURL)},
		{"Search query", optional(w.SearchQuery)},
		{"Enhancement", w.EnhancementType},
		{"Audience", w.TargetAudience},
		{"Audio", strconv.FormatBool(w.IncludeAudio)},
		{"Approval", strconv.FormatBool(w.RequireHumanApproval)},
		{"Created", w.CreatedAt.Local().Format(time.DateTime)},
		{"Updated", w.UpdatedAt.Local().Format(time.DateTime)},
	}
	return renderTable([]string{"Field", "Value"}, rows)
}

const barWidth = 20

func progressLine(w *models.Workflow) string {
	filled := min(max(w.Progress*barWidth/100, 0), barWidth)
	bar := strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled)
	return fmt.Sprintf("[%s] %3d%%  %-10s %s", bar, w.Progress, w.Status, w.Stage)
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
