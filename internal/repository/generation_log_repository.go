// internal/repository/generation_log_repository.go
package repository

import (
	"database/sql"

	"github.com/unclebandit/leadplan-backend/internal/model"
)

// GenerationLogRepositoryInterface defines methods used by service
type GenerationLogRepositoryInterface interface {
	Insert(entry *model.GenerationLog) error
}

// GenerationLogRepository is the concrete implementation
type GenerationLogRepository struct {
	DB *sql.DB
}

// Insert writes one audit row per plan request
func (r *GenerationLogRepository) Insert(entry *model.GenerationLog) error {
	query := `
        INSERT INTO generation_logs (request_id, business_name, industry, outcome, model, duration_ms, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id
    `
	return r.DB.QueryRow(
		query,
		entry.RequestID,
		entry.BusinessName,
		entry.Industry,
		entry.Outcome,
		entry.Model,
		entry.DurationMs,
	).Scan(&entry.ID)
}
