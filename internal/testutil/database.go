package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The schema mirrors the transactions table written by the trade-logger
// application. The database is cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Every new pool connection to :memory: is a separate empty database,
	// so the pool must stay on a single connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		t.Fatalf("Failed to set pragma: %v", err)
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates the transactions table for testing.
// Schema is synchronized with the store written by the trade-logger
// application; this service itself never creates or alters tables.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS transactions (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_name VARCHAR(100),
			item_type VARCHAR(20) NOT NULL,
			item_name VARCHAR(255) NOT NULL,
			transaction_type VARCHAR(10) NOT NULL,
			price FLOAT,
			quantity INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS ix_transactions_item_type ON transactions(item_type);
		CREATE INDEX IF NOT EXISTS ix_transactions_user_name ON transactions(user_name);
		CREATE INDEX IF NOT EXISTS ix_transactions_created_at ON transactions(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase removes all transactions, allowing the same database to
// be reused across subtests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.Exec("DELETE FROM transactions"); err != nil {
		t.Fatalf("Failed to clean transactions table: %v", err)
	}
}

// CountRows returns the number of rows in the transactions table.
func CountRows(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count transactions: %v", err)
	}

	return count
}
