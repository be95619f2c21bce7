// Package generator builds a synthetic airline star schema: calendar and
// reference dimensions, then flight, booking and passenger journey facts in
// dependency order. All randomness flows from one seeded source so a seed
// reproduces a run exactly.
package generator

import (
	"log/slog"

	"airline-warehouse/internal/catalog"
	"airline-warehouse/internal/shared/errors"

	"github.com/google/uuid"
)

// Generate validates cfg, then produces and checks a complete dataset. A
// configuration problem is returned before any record is generated.
func Generate(cfg Config, logger *slog.Logger) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	c := NewContext(cfg.Seed, logger)
	log := c.logger.With("operation", "generate")

	// The run id covers the config as well as the seed, so two runs that
	// share a seed but differ in volume never share an id.
	seedSpace, err := uuid.NewRandomFromReader(c.rng)
	if err != nil {
		return nil, errors.WrapInternal("failed to derive run id", err)
	}
	runID := uuid.NewSHA1(seedSpace, cfg.fingerprint())

	log.Info("Starting generation run",
		"run_id", runID,
		"seed", c.Seed,
		"flights", cfg.Flights,
		"customers", cfg.Customers,
		"routes", cfg.Routes,
		"days", cfg.Days())

	ds := &Dataset{RunID: runID, Seed: c.Seed, Config: cfg}
	ds.Config.Seed = &ds.Seed

	ds.Dates = generateDates(cfg)
	ds.Times = generateTimes()
	ds.Airports = generateAirports(c, catalog.Airports())
	ds.Aircraft = generateAircraft(c, catalog.Aircraft())
	if ds.Airlines, err = generateAirlines(c, catalog.Airlines(), ds.Airports); err != nil {
		return nil, err
	}
	ds.Customers = generateCustomers(c, cfg.Customers, ds.Airlines, cfg.EndDate)
	if ds.Routes, err = generateRoutes(c, cfg.Routes, ds.Airports); err != nil {
		return nil, err
	}
	log.Debug("Dimensions generated",
		"dates", len(ds.Dates),
		"times", len(ds.Times),
		"airports", len(ds.Airports),
		"aircraft", len(ds.Aircraft),
		"airlines", len(ds.Airlines))

	if ds.Flights, err = generateFlights(c, cfg, ds.Routes, ds.Airlines, ds.Aircraft); err != nil {
		return nil, err
	}
	ds.Bookings = generateBookings(c, cfg, ds.Flights, ds.Customers, ds.Airlines, ds.Aircraft)
	ds.Journeys = generateJourneys(c, ds.Bookings, ds.Flights, ds.Customers, ds.Aircraft)

	if err := Validate(ds); err != nil {
		log.Error("Generated dataset failed consistency checks", "error", err)
		return nil, err
	}

	log.Info("Generation run complete",
		"run_id", runID,
		"flights", len(ds.Flights),
		"bookings", len(ds.Bookings),
		"journeys", len(ds.Journeys))

	return ds, nil
}
