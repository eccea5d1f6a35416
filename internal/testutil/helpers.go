package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/tradetracker/stats-backend/internal/repository"
	"github.com/tradetracker/stats-backend/internal/service"
)

// MakeID returns a fresh UUID string for seeding test rows.
func MakeID() string {
	return uuid.New().String()
}

// NewTestStatsService builds a StatsService backed by the given database.
func NewTestStatsService(t *testing.T, db *sql.DB) *service.StatsService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewStatsService(transactionRepo)
}

// NewTestSystemService builds a SystemService backed by the given database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}
