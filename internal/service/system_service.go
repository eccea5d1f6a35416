package service

import (
	"database/sql"

	"github.com/tradetracker/stats-backend/internal/database"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks connectivity to the transaction store.
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}
