package model

import "time"

// Transaction type values as recorded by the trade-logger application.
// Rows with any other value are counted as trades but contribute nothing
// to revenue or expense.
const (
	TypeSell = "sell"
	TypeBuy  = "buy"
)

// ItemTypeRiven marks rolled riven mods, the only category with its own
// report. Every other item_type value is a plain tradable item.
const ItemTypeRiven = "riven"

// UnknownUser is the grouping key used for transactions recorded without
// a trade partner name.
const UnknownUser = "Unknown"

// Transaction represents one recorded trade from the transaction store.
// Records are immutable once fetched; the stats layer never modifies them.
type Transaction struct {
	ID              string    `json:"id"`
	UserName        string    `json:"userName"`
	ItemType        string    `json:"itemType"`
	ItemName        string    `json:"itemName"`
	TransactionType string    `json:"transactionType"`
	Price           float64   `json:"price"`
	Quantity        int64     `json:"quantity"`
	CreatedAt       time.Time `json:"createdAt"`
}
