package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tradetracker/stats-backend/internal/api/handlers"
	custommiddleware "github.com/tradetracker/stats-backend/internal/api/middleware"
	"github.com/tradetracker/stats-backend/internal/config"
	"github.com/tradetracker/stats-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, statsService *service.StatsService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	systemHandler := handlers.NewSystemHandler(systemService)
	r.Get("/health", systemHandler.Health)

	r.Route("/stats", func(r chi.Router) {
		statsHandler := handlers.NewStatsHandler(statsService)
		r.Get("/users", statsHandler.UserStats)
		r.Get("/rivens", statsHandler.RivenStats)
	})

	return r
}
