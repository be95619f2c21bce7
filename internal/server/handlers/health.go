package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"airline-warehouse/internal/analytics"
	"airline-warehouse/internal/shared/database"
	"airline-warehouse/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	RunID     string `json:"run_id,omitempty"`
}

type HealthHandler struct {
	db        *database.DB
	analytics *analytics.Service
}

// NewHealthHandler reports server liveness. db is optional; without one the
// database is reported as disabled.
func NewHealthHandler(db *database.DB, service *analytics.Service) *HealthHandler {
	return &HealthHandler{db: db, analytics: service}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	dbStatus := "disabled"
	if h.db != nil {
		dbStatus = "connected"
		if err := h.db.PingContext(r.Context()); err != nil {
			dbStatus = "disconnected"
			logger.Warn("Database ping failed", "error", err)
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  dbStatus,
	}
	if info, err := h.analytics.Info(); err == nil {
		resp.RunID = info.RunID
	} else {
		resp.Status = "starting"
	}

	response.Success(w, http.StatusOK, resp)
}
