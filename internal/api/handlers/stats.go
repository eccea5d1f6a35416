package handlers

import (
	"net/http"

	"github.com/tradetracker/stats-backend/internal/api/response"
	"github.com/tradetracker/stats-backend/internal/apperrors"
	"github.com/tradetracker/stats-backend/internal/service"
)

// StatsHandler handles HTTP requests for the aggregate trade reports.
// It is the HTTP layer adapter over the StatsService; all grouping and
// metric computation happens below it.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new StatsHandler with the provided service dependency.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// UserStats handles GET requests for the per-trade-partner report.
//
// Endpoint: GET /stats/users
// Response: 200 OK with array of UserStats, sorted by profit descending
// Error: 500 Internal Server Error if fetching or aggregation fails
func (h *StatsHandler) UserStats(w http.ResponseWriter, _ *http.Request) {
	userStats, err := h.statsService.UserStats()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveUserStats.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, userStats)
}

// RivenStats handles GET requests for the per-riven report. Only
// transactions in the riven category participate.
//
// Endpoint: GET /stats/rivens
// Response: 200 OK with array of RivenStats, sorted by profit descending
// Error: 500 Internal Server Error if fetching or aggregation fails
func (h *StatsHandler) RivenStats(w http.ResponseWriter, _ *http.Request) {
	rivenStats, err := h.statsService.RivenStats()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveRivenStats.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rivenStats)
}
