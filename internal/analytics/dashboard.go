package analytics

import (
	"context"

	"airline-warehouse/internal/generator"
)

type RoutePassengers struct {
	RouteCode  string `json:"route_code"`
	Passengers int    `json:"passengers"`
}

type Dashboard struct {
	RunID               string            `json:"run_id"`
	TotalFlights        int               `json:"total_flights"`
	OnTimePercent       float64           `json:"on_time_percent"`
	AvgLoadFactor       float64           `json:"avg_load_factor"`
	Cancellations       int               `json:"cancellations"`
	TotalBookings       int               `json:"total_bookings"`
	Revenue             float64           `json:"revenue"`
	AvgBookingValue     float64           `json:"avg_booking_value"`
	UniqueCustomers     int               `json:"unique_customers"`
	StatusDistribution  []Count           `json:"status_distribution"`
	LoyaltyDistribution []Count           `json:"loyalty_distribution"`
	TopRoutes           []RoutePassengers `json:"top_routes"`
}

const topRouteCount = 10

// Dashboard summarises the whole dataset. Revenue counts Completed bookings
// only.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	ds, _, err := s.current()
	if err != nil {
		return nil, err
	}
	d := cached(ctx, s, cacheKey(ds, "dashboard"), func() Dashboard {
		return buildDashboard(ds)
	})
	return &d, nil
}

func buildDashboard(ds *generator.Dataset) Dashboard {
	d := Dashboard{
		RunID:         ds.RunID.String(),
		TotalFlights:  len(ds.Flights),
		TotalBookings: len(ds.Bookings),
	}

	statuses := newCounter()
	routeCodes := make(map[int]string, len(ds.Routes))
	for _, r := range ds.Routes {
		routeCodes[r.RouteID] = r.RouteCode
	}
	passengers := newCounter()

	onTime := 0
	loadSum := 0.0
	for i := range ds.Flights {
		f := &ds.Flights[i]
		statuses.add(string(f.Status), 1)
		if f.Status == generator.StatusOnTime {
			onTime++
		}
		if f.IsCancelled {
			d.Cancellations++
		}
		loadSum += f.LoadFactor
		passengers.add(routeCodes[f.RouteID], f.TotalPassengers)
	}
	d.OnTimePercent = ratio(onTime, len(ds.Flights))
	d.AvgLoadFactor = round(average(loadSum, len(ds.Flights)), 1)
	d.StatusDistribution = statuses.top(0)

	var revenue generator.Money
	completed := 0
	customers := make(map[int]struct{})
	for i := range ds.Bookings {
		b := &ds.Bookings[i]
		customers[b.CustomerID] = struct{}{}
		if b.Status == generator.BookingCompleted {
			revenue += b.TotalAmount
			completed++
		}
	}
	d.Revenue = revenue.Dollars()
	d.AvgBookingValue = round(average(revenue.Dollars(), completed), 2)
	d.UniqueCustomers = len(customers)

	tiers := newCounter()
	for i := range ds.Customers {
		tiers.add(string(ds.Customers[i].LoyaltyTier), 1)
	}
	d.LoyaltyDistribution = tiers.top(0)

	for _, c := range passengers.top(topRouteCount) {
		d.TopRoutes = append(d.TopRoutes, RoutePassengers{RouteCode: c.Label, Passengers: c.Count})
	}
	return d
}
