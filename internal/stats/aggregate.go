// Package stats implements the aggregation of flat transaction records
// into per-group trade statistics. It is a pure in-memory transform with
// no knowledge of where records come from or how results are served.
package stats

import (
	"sort"

	"github.com/tradetracker/stats-backend/internal/model"
)

// Group holds the accumulated outcome for one grouping key (a trade
// partner name or an item name).
type Group struct {
	Key            string
	Revenue        float64
	Expense        float64
	Profit         float64
	ProfitMargin   float64
	NumberOfTrades int
	Purchases      int64
	Sales          int64
}

// KeyFunc maps a transaction to the group it belongs to. It must return
// a non-empty key for every record; callers substitute a placeholder for
// missing names before the record reaches the aggregator.
type KeyFunc func(model.Transaction) string

// FilterFunc decides whether a transaction participates in a report.
type FilterFunc func(model.Transaction) bool

// Aggregate groups the given transactions by keyOf, accumulates revenue,
// expense and volume counters per group in a single pass, and returns
// the groups sorted by profit descending.
//
// A nil include filter accepts every record. Sell transactions add their
// price to revenue and their quantity to sales; buy transactions add to
// expense and purchases; any other transaction type only increments the
// group's trade count. Profit is revenue minus expense, and profit margin
// is profit over revenue, defined as exactly 0 when revenue is 0.
//
// Ties on profit are broken by key ascending so output is stable across
// runs despite map iteration order.
func Aggregate(records []model.Transaction, keyOf KeyFunc, include FilterFunc) []Group {
	groups := make(map[string]*Group)

	for _, record := range records {
		if include != nil && !include(record) {
			continue
		}

		key := keyOf(record)
		group, ok := groups[key]
		if !ok {
			group = &Group{Key: key}
			groups[key] = group
		}

		group.NumberOfTrades++

		switch record.TransactionType {
		case model.TypeSell:
			group.Revenue += record.Price
			group.Sales += record.Quantity
		case model.TypeBuy:
			group.Expense += record.Price
			group.Purchases += record.Quantity
		}
	}

	result := make([]Group, 0, len(groups))
	for _, group := range groups {
		group.Profit = group.Revenue - group.Expense
		if group.Revenue != 0 {
			group.ProfitMargin = group.Profit / group.Revenue
		}
		result = append(result, *group)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Profit != result[j].Profit {
			return result[i].Profit > result[j].Profit
		}
		return result[i].Key < result[j].Key
	})

	return result
}
