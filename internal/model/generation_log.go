// internal/model/generation_log.go
package model

import "time"

// GenerationLog is one audit row per plan request. It records request
// metadata only; generated plans themselves are never stored.
type GenerationLog struct {
	ID           int       `db:"id" json:"id"`
	RequestID    string    `db:"request_id" json:"request_id"`
	BusinessName string    `db:"business_name" json:"business_name"`
	Industry     string    `db:"industry" json:"industry"`
	Outcome      string    `db:"outcome" json:"outcome"` // fallback_no_key, fallback_model_error, success, recovered, raw_surfaced
	Model        string    `db:"model" json:"model"`
	DurationMs   int64     `db:"duration_ms" json:"duration_ms"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
