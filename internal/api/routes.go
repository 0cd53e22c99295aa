package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zapponejosh/liturgical-day/internal/config"
)

// SetupRoutes configures all HTTP routes and middleware.
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Order matters: recovery wraps everything, request id precedes logging
	r.Use(middleware.RealIP)
	r.Use(ChainMiddleware(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Endpoint not found")
	})

	r.Get("/health", handlers.HealthCheck)
	r.Get("/liturgical-day", handlers.GetLiturgicalDay)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg, logger))

		r.Get("/liturgical-day", handlers.GetTodayLiturgicalDay)
		r.Get("/liturgical-day/range", handlers.GetRangeLiturgicalDays)
		r.Get("/liturgical-day/{date}", handlers.GetDateLiturgicalDay)
		r.Get("/anchors/{year}", handlers.GetAnchors)
		r.Get("/calendar/{year}.ics", handlers.GetCalendarFeed)
	})

	return r
}
