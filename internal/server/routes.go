package server

import (
	"log/slog"
	"net/http"

	"airline-warehouse/internal/analytics"
	analyticsHandlers "airline-warehouse/internal/analytics/handlers"
	authHandlers "airline-warehouse/internal/auth/handlers"
	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/middleware"
	serverHandlers "airline-warehouse/internal/server/handlers"
	"airline-warehouse/internal/shared/cookies"
	"airline-warehouse/internal/shared/database"
)

type Routes struct {
	db               *database.DB
	analyticsService *analytics.Service
	defaults         generator.Config
	jar              *cookies.Jar
	logger           *slog.Logger
}

// NewRoutes wires the HTTP surface. db may be nil when the server runs
// without a warehouse database.
func NewRoutes(db *database.DB, analyticsService *analytics.Service, defaults generator.Config, jar *cookies.Jar, logger *slog.Logger) *Routes {
	return &Routes{
		db:               db,
		analyticsService: analyticsService,
		defaults:         defaults,
		jar:              jar,
		logger:           logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := r.logger.With("component", "routes", "operation", "setup")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.analyticsService)
	analyticsHandler := analyticsHandlers.NewAnalyticsHandler(r.analyticsService, r.defaults)
	sessionHandler := authHandlers.NewSessionHandler(r.jar)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.HandleFunc("/api/dashboard", analyticsHandler.GetDashboard)
	mux.HandleFunc("/api/segments", analyticsHandler.GetSegment)
	mux.HandleFunc("/api/flights", analyticsHandler.GetFlights)
	mux.HandleFunc("/api/revenue", analyticsHandler.GetRevenue)
	mux.HandleFunc("/api/tables", analyticsHandler.GetTables)
	mux.HandleFunc("/api/tables/{name}", analyticsHandler.GetTable)
	mux.HandleFunc("/api/datasets/current", analyticsHandler.GetDataset)

	// Admin-only endpoints (authenticated + admin role)
	mux.Handle("/api/datasets", middleware.RequireAdmin(http.HandlerFunc(analyticsHandler.CreateDataset)))

	// Session endpoints
	mux.HandleFunc("/auth/session", sessionHandler.Login)
	mux.HandleFunc("/auth/logout", sessionHandler.Logout)

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/dashboard", "/api/segments", "/api/flights", "/api/revenue", "/api/tables", "/api/datasets/current"},
		"admin_endpoints", []string{"/api/datasets"},
		"auth_endpoints", []string{"/auth/session", "/auth/logout"},
	)

	return mux
}
