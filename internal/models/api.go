package models

import "time"

// StartResponse はワークフロー開始レスポンス
type StartResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// StartResponseStatus は開始レスポンスのステータス
const StartResponseStatus = "started"

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status          string    `json:"status"`
	Service         string    `json:"service"`
	Version         string    `json:"version"`
	Timestamp       time.Time `json:"timestamp"`
	ActiveWorkflows int64     `json:"active_workflows"`
}

// ServiceName はヘルスチェックで返すサービス名
const ServiceName = "book-publisher"
