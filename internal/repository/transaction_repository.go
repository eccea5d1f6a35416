package repository

import (
	"database/sql"
	"fmt"

	"github.com/tradetracker/stats-backend/internal/model"
)

// TransactionRepository provides read access to the transactions table
// written by the trade-logger application.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetAll retrieves every recorded transaction, ordered by creation time.
//
// Nullable columns are scanned through sql.Null* types: a NULL user_name
// becomes the empty string (the stats layer substitutes the Unknown
// placeholder), and NULL price or quantity become 0. A row that fails to
// scan or a malformed created_at value is an error, not a silently
// skipped record.
func (r *TransactionRepository) GetAll() ([]model.Transaction, error) {
	query := `
		SELECT id, user_name, item_type, item_name, transaction_type, price, quantity, created_at
		FROM transactions
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {

		var t model.Transaction
		var userName, createdAtStr sql.NullString
		var price sql.NullFloat64
		var quantity sql.NullInt64

		err := rows.Scan(
			&t.ID,
			&userName,
			&t.ItemType,
			&t.ItemName,
			&t.TransactionType,
			&price,
			&quantity,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transactions table results: %w", err)
		}

		if userName.Valid {
			t.UserName = userName.String
		}
		t.Price = price.Float64
		t.Quantity = quantity.Int64

		if createdAtStr.Valid {
			t.CreatedAt, err = ParseTime(createdAtStr.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse created_at: %w", err)
			}
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions table: %w", err)
	}

	return transactions, nil
}
