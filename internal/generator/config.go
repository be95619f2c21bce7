package generator

import (
	"fmt"
	"time"

	"airline-warehouse/internal/catalog"
	"airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/errors"
)

// Config is everything the engine needs for one run. It is indifferent to
// where the values came from.
type Config struct {
	Flights           int
	Customers         int
	StartDate         time.Time
	EndDate           time.Time
	Routes            int
	BookingsPerFlight int
	Seed              *int64
}

func ConfigFrom(cfg config.GeneratorConfig) Config {
	return Config{
		Flights:           cfg.Flights,
		Customers:         cfg.Customers,
		StartDate:         cfg.StartDate,
		EndDate:           cfg.EndDate,
		Routes:            cfg.Routes,
		BookingsPerFlight: cfg.BookingsPerFlight,
		Seed:              cfg.Seed,
	}
}

// Validate reports the first configuration error as a validation AppError.
func (c Config) Validate() error {
	if c.Flights <= 0 {
		return errors.Validationf("flights must be a positive integer, got %d", c.Flights)
	}
	if c.Customers <= 0 {
		return errors.Validationf("passengers must be a positive integer, got %d", c.Customers)
	}
	if c.Routes <= 0 {
		return errors.Validationf("routes must be a positive integer, got %d", c.Routes)
	}
	if c.BookingsPerFlight <= 0 {
		return errors.Validationf("bookings per flight must be a positive integer, got %d", c.BookingsPerFlight)
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return errors.Validation("start and end dates are required")
	}
	if c.EndDate.Before(c.StartDate) {
		return errors.Validationf("end date %s is before start date %s",
			c.EndDate.Format(config.DateLayout), c.StartDate.Format(config.DateLayout))
	}

	n := len(catalog.Airports())
	if maxRoutes := n * (n - 1); c.Routes > maxRoutes {
		return errors.Validationf("routes %d exceeds the %d directional airport pairs available", c.Routes, maxRoutes)
	}

	return nil
}

// normalized strips any clock component so the window always starts at
// midnight of the start date and ends at the close of the end date.
func (c Config) normalized() Config {
	c.StartDate = truncateDay(c.StartDate)
	c.EndDate = truncateDay(c.EndDate)
	return c
}

// fingerprint is a canonical encoding of the volume and window settings.
// The seed is left out; it already drives the random source.
func (c Config) fingerprint() []byte {
	n := c.normalized()
	return fmt.Appendf(nil, "flights=%d;customers=%d;start=%s;end=%s;routes=%d;bookings_per_flight=%d",
		n.Flights, n.Customers,
		n.StartDate.Format(time.DateOnly), n.EndDate.Format(time.DateOnly),
		n.Routes, n.BookingsPerFlight)
}

// Days is the number of calendar days in the window, inclusive.
func (c Config) Days() int {
	n := c.normalized()
	return int(n.EndDate.Sub(n.StartDate).Hours()/24) + 1
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
