package service

import (
	"fmt"

	"github.com/tradetracker/stats-backend/internal/model"
	"github.com/tradetracker/stats-backend/internal/repository"
	"github.com/tradetracker/stats-backend/internal/stats"
)

// StatsService computes the aggregate trade reports served by the API.
// Every report is built fresh from the current state of the transaction
// store; nothing is cached between requests.
type StatsService struct {
	transactionRepo *repository.TransactionRepository
}

// NewStatsService creates a new StatsService with the provided repository dependency.
func NewStatsService(transactionRepo *repository.TransactionRepository) *StatsService {
	return &StatsService{
		transactionRepo: transactionRepo,
	}
}

// UserStats builds the per-trade-partner report across all transactions.
// Transactions recorded without a partner name are grouped together under
// the Unknown placeholder. Results are sorted by profit descending.
func (s *StatsService) UserStats() ([]model.UserStats, error) {
	transactions, err := s.transactionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	groups := stats.Aggregate(transactions, userKey, nil)

	result := make([]model.UserStats, 0, len(groups))
	for _, g := range groups {
		result = append(result, model.UserStats{
			User:           g.Key,
			Revenue:        g.Revenue,
			Expense:        g.Expense,
			Profit:         g.Profit,
			ProfitMargin:   g.ProfitMargin,
			NumberOfTrades: g.NumberOfTrades,
			Purchases:      g.Purchases,
			Sales:          g.Sales,
		})
	}

	return result, nil
}

// RivenStats builds the per-item report restricted to riven transactions.
// Plain items sharing a name with a riven are excluded by the category
// filter before grouping. Results are sorted by profit descending.
func (s *StatsService) RivenStats() ([]model.RivenStats, error) {
	transactions, err := s.transactionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	groups := stats.Aggregate(transactions, itemKey, isRiven)

	result := make([]model.RivenStats, 0, len(groups))
	for _, g := range groups {
		result = append(result, model.RivenStats{
			Item:           g.Key,
			Revenue:        g.Revenue,
			Expense:        g.Expense,
			Profit:         g.Profit,
			ProfitMargin:   g.ProfitMargin,
			NumberOfTrades: g.NumberOfTrades,
			Purchases:      g.Purchases,
			Sales:          g.Sales,
		})
	}

	return result, nil
}

func userKey(t model.Transaction) string {
	if t.UserName == "" {
		return model.UnknownUser
	}
	return t.UserName
}

func itemKey(t model.Transaction) string {
	return t.ItemName
}

func isRiven(t model.Transaction) bool {
	return t.ItemType == model.ItemTypeRiven
}
