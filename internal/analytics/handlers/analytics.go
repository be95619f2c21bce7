package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"airline-warehouse/internal/analytics"
	"airline-warehouse/internal/generator"
	appconfig "airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/errors"
	"airline-warehouse/internal/shared/response"
)

type AnalyticsHandler struct {
	service  *analytics.Service
	defaults generator.Config
}

// NewAnalyticsHandler serves reports from service. defaults seeds the
// configuration of regeneration requests.
func NewAnalyticsHandler(service *analytics.Service, defaults generator.Config) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, defaults: defaults}
}

func (h *AnalyticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_dashboard")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, dashboard)
}

func (h *AnalyticsHandler) GetSegment(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_segment")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	segment, err := h.service.Segment(r.URL.Query().Get("q"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, segment)
}

func (h *AnalyticsHandler) GetFlights(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_flights")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	query := r.URL.Query()
	filter := analytics.FlightFilter{
		Airline: query.Get("airline"),
		Status:  query.Get("status"),
	}
	if raw := query.Get("cancelled"); raw != "" {
		cancelled, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid cancelled flag", err))
			return
		}
		filter.CancelledOnly = cancelled
	}

	report, err := h.service.Flights(filter)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, report)
}

func (h *AnalyticsHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_revenue")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	revenue, err := h.service.Revenue(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, revenue)
}

func (h *AnalyticsHandler) GetTables(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_tables")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	tables, err := h.service.Tables()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, tables)
}

func (h *AnalyticsHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_table")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	name := r.PathValue("name")
	if name == "" {
		response.Error(w, r, logger, errors.Validation("table name is required"))
		return
	}

	limit := analytics.DefaultTableRows
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid limit format", err))
			return
		}
		limit = parsed
	}

	page, err := h.service.Table(name, limit)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, page)
}

func (h *AnalyticsHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_dataset")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	info, err := h.service.Info()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, info)
}

// DatasetRequest overlays the server's generator defaults. Omitted fields
// keep their default.
type DatasetRequest struct {
	Flights           *int    `json:"flights"`
	Customers         *int    `json:"customers"`
	StartDate         *string `json:"start_date"`
	EndDate           *string `json:"end_date"`
	Routes            *int    `json:"routes"`
	BookingsPerFlight *int    `json:"bookings_per_flight"`
	Seed              *int64  `json:"seed"`
}

func (req DatasetRequest) apply(cfg generator.Config) (generator.Config, error) {
	if req.Flights != nil {
		cfg.Flights = *req.Flights
	}
	if req.Customers != nil {
		cfg.Customers = *req.Customers
	}
	if req.Routes != nil {
		cfg.Routes = *req.Routes
	}
	if req.BookingsPerFlight != nil {
		cfg.BookingsPerFlight = *req.BookingsPerFlight
	}
	if req.Seed != nil {
		cfg.Seed = req.Seed
	}
	if req.StartDate != nil {
		start, err := time.Parse(appconfig.DateLayout, *req.StartDate)
		if err != nil {
			return cfg, errors.WrapValidation("invalid start_date format", err)
		}
		cfg.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(appconfig.DateLayout, *req.EndDate)
		if err != nil {
			return cfg, errors.WrapValidation("invalid end_date format", err)
		}
		cfg.EndDate = end
	}
	return cfg, nil
}

func (h *AnalyticsHandler) CreateDataset(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "create_dataset")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req DatasetRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}

	cfg, err := req.apply(h.defaults)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	info, err := h.service.Regenerate(r.Context(), cfg)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, info)
}
