package analytics

import (
	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/errors"
)

const flightRowLimit = 100

// FlightFilter narrows the flight report. Empty fields match everything.
type FlightFilter struct {
	Airline       string
	Status        string
	CancelledOnly bool
}

type FlightMetrics struct {
	Flights       int     `json:"flights"`
	AvgDelay      float64 `json:"avg_delay_minutes"`
	AvgLoadFactor float64 `json:"avg_load_factor"`
	AvgRevenue    float64 `json:"avg_revenue"`
}

type FlightRow struct {
	FlightID              int     `json:"flight_id"`
	FlightNumber          string  `json:"flight_number"`
	Status                string  `json:"flight_status"`
	TotalPassengers       int     `json:"total_passengers"`
	LoadFactor            float64 `json:"load_factor"`
	DepartureDelayMinutes int     `json:"departure_delay_minutes"`
	ArrivalDelayMinutes   int     `json:"arrival_delay_minutes"`
	TotalRevenue          float64 `json:"total_revenue"`
}

type FlightReport struct {
	Filter  map[string]any `json:"filter"`
	Metrics FlightMetrics  `json:"metrics"`
	Flights []FlightRow    `json:"flights"`
}

var flightStatuses = map[string]generator.FlightStatus{
	string(generator.StatusOnTime):    generator.StatusOnTime,
	string(generator.StatusDelayed):   generator.StatusDelayed,
	string(generator.StatusCancelled): generator.StatusCancelled,
	string(generator.StatusDiverted):  generator.StatusDiverted,
}

// Flights reports delay, load and revenue for the flights matching f. The
// airline is matched by name or code.
func (s *Service) Flights(f FlightFilter) (*FlightReport, error) {
	ds, _, err := s.current()
	if err != nil {
		return nil, err
	}

	airlineID := 0
	if f.Airline != "" {
		for i := range ds.Airlines {
			a := &ds.Airlines[i]
			if a.Name == f.Airline || a.AirlineCode == f.Airline {
				airlineID = a.AirlineID
				break
			}
		}
		if airlineID == 0 {
			return nil, errors.NotFoundf("airline not found: %s", f.Airline)
		}
	}

	var status generator.FlightStatus
	if f.Status != "" {
		st, ok := flightStatuses[f.Status]
		if !ok {
			return nil, errors.Validationf("unknown flight status %q", f.Status)
		}
		status = st
	}

	report := &FlightReport{
		Filter: map[string]any{
			"airline":        f.Airline,
			"status":         f.Status,
			"cancelled_only": f.CancelledOnly,
		},
		Flights: []FlightRow{},
	}

	var delay, load float64
	var revenue generator.Money
	for i := range ds.Flights {
		fl := &ds.Flights[i]
		if airlineID != 0 && fl.AirlineID != airlineID {
			continue
		}
		if status != "" && fl.Status != status {
			continue
		}
		if f.CancelledOnly && !fl.IsCancelled {
			continue
		}

		report.Metrics.Flights++
		delay += float64(fl.ArrivalDelayMinutes)
		load += fl.LoadFactor
		revenue += fl.TotalRevenue

		if len(report.Flights) < flightRowLimit {
			report.Flights = append(report.Flights, FlightRow{
				FlightID:              fl.FlightID,
				FlightNumber:          fl.FlightNumber,
				Status:                string(fl.Status),
				TotalPassengers:       fl.TotalPassengers,
				LoadFactor:            fl.LoadFactor,
				DepartureDelayMinutes: fl.DepartureDelayMinutes,
				ArrivalDelayMinutes:   fl.ArrivalDelayMinutes,
				TotalRevenue:          fl.TotalRevenue.Dollars(),
			})
		}
	}

	n := report.Metrics.Flights
	report.Metrics.AvgDelay = round(average(delay, n), 1)
	report.Metrics.AvgLoadFactor = round(average(load, n), 1)
	report.Metrics.AvgRevenue = round(average(revenue.Dollars(), n), 2)

	s.logger.Debug("Flight report built", "operation", "flights", "matched", n)
	return report, nil
}
