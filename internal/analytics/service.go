// Package analytics answers dashboard questions about the dataset currently
// held in memory: executive summary, customer segments, flight performance,
// revenue and a raw table explorer.
package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/errors"
	"airline-warehouse/internal/warehouse"
)

type Service struct {
	mu      sync.RWMutex
	dataset *generator.Dataset
	tables  []warehouse.Table

	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewService(cache Cache, ttl time.Duration, logger *slog.Logger) *Service {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Service{
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "analytics_service"),
	}
}

// DatasetInfo identifies the dataset being served.
type DatasetInfo struct {
	RunID     string         `json:"run_id"`
	Seed      int64          `json:"seed"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	RowCounts map[string]int `json:"row_counts"`
}

// Replace swaps in a new dataset. Cached summaries are keyed by run id, so
// entries for the old dataset are simply never read again.
func (s *Service) Replace(ds *generator.Dataset) DatasetInfo {
	tables := warehouse.Tables(ds)

	s.mu.Lock()
	s.dataset = ds
	s.tables = tables
	s.mu.Unlock()

	info := datasetInfo(ds, tables)
	s.logger.Info("Dataset loaded",
		"operation", "replace",
		"run_id", info.RunID,
		"seed", info.Seed,
		"flights", len(ds.Flights),
		"bookings", len(ds.Bookings))
	return info
}

// Regenerate runs the engine with cfg and serves the result. On failure the
// current dataset stays in place.
func (s *Service) Regenerate(ctx context.Context, cfg generator.Config) (*DatasetInfo, error) {
	logger := s.logger.With("operation", "regenerate")
	logger.Info("Regenerating dataset")

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapInternal("regeneration cancelled", err)
	}

	ds, err := generator.Generate(cfg, s.logger)
	if err != nil {
		logger.Warn("Regeneration failed", "error", err)
		return nil, err
	}

	info := s.Replace(ds)
	return &info, nil
}

// Info describes the current dataset.
func (s *Service) Info() (*DatasetInfo, error) {
	ds, tables, err := s.current()
	if err != nil {
		return nil, err
	}
	info := datasetInfo(ds, tables)
	return &info, nil
}

func (s *Service) current() (*generator.Dataset, []warehouse.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return nil, nil, errors.NotFoundf("no dataset loaded")
	}
	return s.dataset, s.tables, nil
}

func datasetInfo(ds *generator.Dataset, tables []warehouse.Table) DatasetInfo {
	counts := make(map[string]int, len(tables))
	for _, t := range tables {
		counts[t.Name] = len(t.Rows)
	}
	return DatasetInfo{
		RunID:     ds.RunID.String(),
		Seed:      ds.Seed,
		StartDate: ds.Config.StartDate.Format(config.DateLayout),
		EndDate:   ds.Config.EndDate.Format(config.DateLayout),
		RowCounts: counts,
	}
}

func cacheKey(ds *generator.Dataset, name string) string {
	return ds.RunID.String() + ":" + name
}
