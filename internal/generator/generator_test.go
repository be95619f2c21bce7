package generator

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"airline-warehouse/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func januaryConfig(seed int64) Config {
	return Config{
		Flights:           100,
		Customers:         50,
		StartDate:         day(2024, 1, 1),
		EndDate:           day(2024, 1, 31),
		Routes:            200,
		BookingsPerFlight: 3,
		Seed:              &seed,
	}
}

func TestGenerateJanuaryScenario(t *testing.T) {
	ds, err := Generate(januaryConfig(42), quietLogger)
	require.NoError(t, err)

	assert.Len(t, ds.Flights, 100)
	assert.Len(t, ds.Customers, 50)
	assert.Len(t, ds.Dates, 31)
	assert.Len(t, ds.Times, 96)
	assert.GreaterOrEqual(t, len(ds.Bookings), 100)
	assert.Len(t, ds.Routes, 200)
	assert.Equal(t, int64(42), ds.Seed)

	customers := map[int]bool{}
	for _, c := range ds.Customers {
		assert.False(t, customers[c.CustomerID])
		customers[c.CustomerID] = true
	}

	booked := map[int]bool{}
	for _, b := range ds.Bookings {
		booked[b.FlightID] = true
	}
	assert.Len(t, booked, 100)
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	first, err := Generate(januaryConfig(7), quietLogger)
	require.NoError(t, err)
	second, err := Generate(januaryConfig(7), quietLogger)
	require.NoError(t, err)

	assert.Equal(t, first.RunID, second.RunID)
	assert.Equal(t, first.Flights, second.Flights)
	assert.Equal(t, first.Bookings, second.Bookings)
	assert.Equal(t, first.Journeys, second.Journeys)
	assert.Equal(t, first.Customers, second.Customers)

	other, err := Generate(januaryConfig(8), quietLogger)
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, other.RunID)
}

func TestRunIDCoversConfig(t *testing.T) {
	base, err := Generate(januaryConfig(42), quietLogger)
	require.NoError(t, err)

	cfg := januaryConfig(42)
	cfg.Flights = 300
	more, err := Generate(cfg, quietLogger)
	require.NoError(t, err)
	assert.NotEqual(t, base.RunID, more.RunID)

	cfg = januaryConfig(42)
	cfg.EndDate = day(2024, 1, 30)
	shorter, err := Generate(cfg, quietLogger)
	require.NoError(t, err)
	assert.NotEqual(t, base.RunID, shorter.RunID)
}

func TestGenerateWithoutSeedRecordsDrawnSeed(t *testing.T) {
	cfg := januaryConfig(0)
	cfg.Seed = nil

	ds, err := Generate(cfg, quietLogger)
	require.NoError(t, err)
	require.NotNil(t, ds.Config.Seed)
	assert.Equal(t, ds.Seed, *ds.Config.Seed)
}

func TestGenerateRejectsBadConfiguration(t *testing.T) {
	cases := map[string]func(*Config){
		"zero flights":     func(c *Config) { c.Flights = 0 },
		"negative flights": func(c *Config) { c.Flights = -5 },
		"zero passengers":  func(c *Config) { c.Customers = 0 },
		"end before start": func(c *Config) { c.EndDate = day(2023, 12, 31) },
		"missing dates":    func(c *Config) { c.StartDate = time.Time{} },
		"too many routes":  func(c *Config) { c.Routes = 1_000_000 },
		"zero routes":      func(c *Config) { c.Routes = 0 },
		"zero per flight":  func(c *Config) { c.BookingsPerFlight = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := januaryConfig(1)
			mutate(&cfg)

			ds, err := Generate(cfg, quietLogger)
			require.Error(t, err)
			assert.Nil(t, ds)
			assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
		})
	}
}

func TestGenerateSingleDayWindow(t *testing.T) {
	cfg := januaryConfig(5)
	cfg.EndDate = cfg.StartDate

	ds, err := Generate(cfg, quietLogger)
	require.NoError(t, err)
	require.Len(t, ds.Dates, 1)

	for _, f := range ds.Flights {
		assert.Equal(t, 20240101, f.ScheduledDepartureDateID)
		assert.Equal(t, 20240101, f.ScheduledArrivalDateID)
		if f.ActualArrivalDateID != nil {
			assert.Equal(t, 20240101, *f.ActualArrivalDateID)
		}
	}
	for _, b := range ds.Bookings {
		assert.Equal(t, 0, b.DaysBeforeDeparture)
	}
}

func TestNoRouteFitsWindow(t *testing.T) {
	c := testContext(1)
	cfg := Config{Flights: 1, StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 1)}
	routes := []Route{{RouteID: 1, TypicalDurationMinutes: 24 * 60}}

	_, err := newFlightPlanner(c, cfg, routes, nil, nil)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
}

func TestFlightInvariants(t *testing.T) {
	ds, err := Generate(januaryConfig(99), quietLogger)
	require.NoError(t, err)

	for _, f := range ds.Flights {
		assert.Equal(t, f.EconomySeatsSold+f.BusinessSeatsSold+f.FirstSeatsSold, f.TotalPassengers)
		assert.InDelta(t, float64(f.TotalPassengers)/float64(f.TotalSeats)*100, f.LoadFactor, 0.006)
		assert.GreaterOrEqual(t, f.LoadFactor, 0.0)
		assert.LessOrEqual(t, f.LoadFactor, 100.0)

		switch f.Status {
		case StatusCancelled:
			assert.Zero(t, f.TotalPassengers)
			assert.Zero(t, f.TotalRevenue)
			assert.Nil(t, f.ActualDeparture)
			assert.Nil(t, f.ActualArrival)
			assert.NotNil(t, f.CancellationReason)
		case StatusDiverted:
			assert.NotNil(t, f.ActualDeparture)
			assert.Nil(t, f.ActualArrival)
		case StatusOnTime:
			assert.LessOrEqual(t, f.ArrivalDelayMinutes, onTimeThreshold)
		case StatusDelayed:
			assert.Greater(t, f.ArrivalDelayMinutes, onTimeThreshold)
			assert.LessOrEqual(t, f.ArrivalDelayMinutes, maxDelayMinutes)
		}
		if f.ActualArrival != nil {
			assert.False(t, f.ActualArrival.Before(*f.ActualDeparture))
		}
	}
}

func TestBookingAndJourneyInvariants(t *testing.T) {
	ds, err := Generate(januaryConfig(123), quietLogger)
	require.NoError(t, err)

	flights := map[int]Flight{}
	for _, f := range ds.Flights {
		flights[f.FlightID] = f
	}
	bookings := map[int]Booking{}
	for _, b := range ds.Bookings {
		bookings[b.BookingID] = b
		assert.Equal(t, b.BaseFare+b.Taxes+b.Fees, b.TotalAmount)
		assert.GreaterOrEqual(t, b.DaysBeforeDeparture, 0)
		if flights[b.FlightID].IsCancelled {
			assert.Equal(t, BookingCancelled, b.Status)
		}
	}

	perFlight := map[int]int{}
	for _, j := range ds.Journeys {
		b := bookings[j.BookingID]
		assert.Equal(t, b.CabinClass, j.CabinClass)
		assert.True(t, b.Status.Seated())
		assert.GreaterOrEqual(t, j.SatisfactionRating, 1)
		assert.LessOrEqual(t, j.SatisfactionRating, 5)
		perFlight[j.FlightID]++
	}
	for id, n := range perFlight {
		assert.LessOrEqual(t, n, flights[id].TotalPassengers)
	}
}

func TestValidateCatchesTampering(t *testing.T) {
	cases := map[string]func(*Dataset){
		"passenger total": func(ds *Dataset) { ds.Flights[0].TotalPassengers++ },
		"booking total":   func(ds *Dataset) { ds.Bookings[0].TotalAmount++ },
		"route type":      func(ds *Dataset) { ds.Routes[0].RouteType = "Ultra-haul" },
		"dangling flight": func(ds *Dataset) { ds.Bookings[0].FlightID = 999_999 },
		"duplicate ref":   func(ds *Dataset) { ds.Bookings[1].BookingReference = ds.Bookings[0].BookingReference },
		"journey cabin": func(ds *Dataset) {
			if ds.Journeys[0].CabinClass == CabinEconomy {
				ds.Journeys[0].CabinClass = CabinFirst
			} else {
				ds.Journeys[0].CabinClass = CabinEconomy
			}
		},
	}

	for name, tamper := range cases {
		t.Run(name, func(t *testing.T) {
			ds, err := Generate(januaryConfig(31), quietLogger)
			require.NoError(t, err)
			require.NoError(t, Validate(ds))

			tamper(ds)

			err = Validate(ds)
			require.Error(t, err)
			assert.Equal(t, errors.ErrorTypeInternal, errors.GetType(err))
		})
	}
}

func TestLoadFactor(t *testing.T) {
	assert.Equal(t, 0.0, LoadFactor(0, 0))
	assert.Equal(t, 75.0, LoadFactor(3, 4))
	assert.Equal(t, 33.33, LoadFactor(1, 3))
}
