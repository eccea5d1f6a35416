package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/tradetracker/stats-backend/internal/model"
)

// TransactionBuilder provides a fluent interface for seeding test transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction().Build(t, db)
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    WithUser("SmoothOperator").
//	    Riven("Vermisplicer Critacan").
//	    Sell(450).
//	    Build(t, db)
type TransactionBuilder struct {
	ID              string
	UserName        sql.NullString
	ItemType        string
	ItemName        string
	TransactionType string
	Price           float64
	Quantity        int64
	CreatedAt       time.Time
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:              MakeID(),
		UserName:        sql.NullString{String: "TestTrader", Valid: true},
		ItemType:        "item",
		ItemName:        "Orokin Catalyst",
		TransactionType: model.TypeSell,
		Price:           10,
		Quantity:        1,
		CreatedAt:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithUser sets the trade partner name.
func (b *TransactionBuilder) WithUser(name string) *TransactionBuilder {
	b.UserName = sql.NullString{String: name, Valid: true}
	return b
}

// WithoutUser stores a NULL trade partner name.
func (b *TransactionBuilder) WithoutUser() *TransactionBuilder {
	b.UserName = sql.NullString{}
	return b
}

// WithItem sets the item type and name.
func (b *TransactionBuilder) WithItem(itemType, itemName string) *TransactionBuilder {
	b.ItemType = itemType
	b.ItemName = itemName
	return b
}

// Riven marks the transaction as a riven trade with the given name.
func (b *TransactionBuilder) Riven(itemName string) *TransactionBuilder {
	return b.WithItem(model.ItemTypeRiven, itemName)
}

// Sell makes the transaction a sale at the given price.
func (b *TransactionBuilder) Sell(price float64) *TransactionBuilder {
	b.TransactionType = model.TypeSell
	b.Price = price
	return b
}

// Buy makes the transaction a purchase at the given price.
func (b *TransactionBuilder) Buy(price float64) *TransactionBuilder {
	b.TransactionType = model.TypeBuy
	b.Price = price
	return b
}

// WithTransactionType sets a raw transaction type value.
func (b *TransactionBuilder) WithTransactionType(transactionType string) *TransactionBuilder {
	b.TransactionType = transactionType
	return b
}

// WithQuantity sets the number of units traded.
func (b *TransactionBuilder) WithQuantity(quantity int64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithCreatedAt sets the transaction timestamp.
func (b *TransactionBuilder) WithCreatedAt(createdAt time.Time) *TransactionBuilder {
	b.CreatedAt = createdAt
	return b
}

// Build inserts the transaction and returns the resulting record as the
// repository would surface it (NULL user name becomes the empty string).
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO transactions (id, user_name, item_type, item_name, transaction_type, price, quantity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID,
		b.UserName,
		b.ItemType,
		b.ItemName,
		b.TransactionType,
		b.Price,
		b.Quantity,
		b.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		t.Fatalf("Failed to insert test transaction: %v", err)
	}

	return model.Transaction{
		ID:              b.ID,
		UserName:        b.UserName.String,
		ItemType:        b.ItemType,
		ItemName:        b.ItemName,
		TransactionType: b.TransactionType,
		Price:           b.Price,
		Quantity:        b.Quantity,
		CreatedAt:       b.CreatedAt,
	}
}
