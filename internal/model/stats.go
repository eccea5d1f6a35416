package model

// UserStats represents the aggregate trade outcome for a single trade
// partner, as served by GET /stats/users.
type UserStats struct {
	User           string  `json:"user"`
	Revenue        float64 `json:"revenue"`
	Expense        float64 `json:"expense"`
	Profit         float64 `json:"profit"`
	ProfitMargin   float64 `json:"profitMargin"`
	NumberOfTrades int     `json:"numberOfTrades"`
	Purchases      int64   `json:"purchases"`
	Sales          int64   `json:"sales"`
}

// RivenStats represents the aggregate trade outcome for a single riven,
// as served by GET /stats/rivens.
type RivenStats struct {
	Item           string  `json:"item"`
	Revenue        float64 `json:"revenue"`
	Expense        float64 `json:"expense"`
	Profit         float64 `json:"profit"`
	ProfitMargin   float64 `json:"profitMargin"`
	NumberOfTrades int     `json:"numberOfTrades"`
	Purchases      int64   `json:"purchases"`
	Sales          int64   `json:"sales"`
}
