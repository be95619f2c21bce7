// Package warehouse turns a generated dataset into star-schema tables and
// writes them out: CSV or Parquet files with a manifest, or a bulk COPY into
// Postgres.
package warehouse

import (
	"airline-warehouse/internal/generator"
)

type ColumnType int

const (
	TypeInt ColumnType = iota
	TypeFloat
	TypeString
	TypeBool
	TypeDate
	TypeTimestamp
	TypeMoney
)

type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// Table is one entity kind in export order. Row values are int, float64,
// string, bool, time.Time, generator.Money or nil for a NULL.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// TableNames lists every table in dependency order.
var TableNames = []string{
	"dim_date",
	"dim_time",
	"dim_airport",
	"dim_aircraft",
	"dim_airline",
	"dim_customer",
	"dim_route",
	"fact_flight",
	"fact_booking",
	"fact_passenger_journey",
}

func col(name string, t ColumnType) Column { return Column{Name: name, Type: t} }

func nullable(name string, t ColumnType) Column { return Column{Name: name, Type: t, Nullable: true} }

func orNull[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

// Tables converts ds into its ten tables, dimensions first.
func Tables(ds *generator.Dataset) []Table {
	return []Table{
		dateTable(ds.Dates),
		timeTable(ds.Times),
		airportTable(ds.Airports),
		aircraftTable(ds.Aircraft),
		airlineTable(ds.Airlines),
		customerTable(ds.Customers),
		routeTable(ds.Routes),
		flightTable(ds.Flights),
		bookingTable(ds.Bookings),
		journeyTable(ds.Journeys),
	}
}

func dateTable(rows []generator.Date) Table {
	t := Table{Name: "dim_date", Columns: []Column{
		col("date_id", TypeInt),
		col("full_date", TypeDate),
		col("year", TypeInt),
		col("quarter", TypeInt),
		col("month", TypeInt),
		col("month_name", TypeString),
		col("day", TypeInt),
		col("day_of_week", TypeInt),
		col("day_name", TypeString),
		col("week_of_year", TypeInt),
		col("is_weekend", TypeBool),
		col("is_holiday", TypeBool),
		nullable("holiday_name", TypeString),
		col("season", TypeString),
	}}
	for _, d := range rows {
		t.Rows = append(t.Rows, []any{
			d.DateID, d.FullDate, d.Year, d.Quarter, d.Month, d.MonthName, d.Day,
			d.DayOfWeek, d.DayName, d.WeekOfYear, d.IsWeekend, d.IsHoliday,
			orNull(d.HolidayName), d.Season,
		})
	}
	return t
}

func timeTable(rows []generator.Time) Table {
	t := Table{Name: "dim_time", Columns: []Column{
		col("time_id", TypeInt),
		col("time_label", TypeString),
		col("hour", TypeInt),
		col("minute", TypeInt),
		col("period_of_day", TypeString),
		col("is_business_hours", TypeBool),
		col("is_peak_hour", TypeBool),
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.TimeID, r.TimeLabel, r.Hour, r.Minute, r.PeriodOfDay, r.IsBusinessHours, r.IsPeakHour,
		})
	}
	return t
}

func airportTable(rows []generator.Airport) Table {
	t := Table{Name: "dim_airport", Columns: []Column{
		col("airport_id", TypeInt),
		col("iata_code", TypeString),
		col("airport_name", TypeString),
		col("city", TypeString),
		col("country", TypeString),
		col("latitude", TypeFloat),
		col("longitude", TypeFloat),
		col("timezone", TypeString),
		col("hub_type", TypeString),
		col("num_terminals", TypeInt),
		col("rating", TypeFloat),
	}}
	for _, a := range rows {
		t.Rows = append(t.Rows, []any{
			a.AirportID, a.IATACode, a.Name, a.City, a.Country, a.Latitude, a.Longitude,
			a.Timezone, a.HubType, a.NumTerminals, a.Rating,
		})
	}
	return t
}

func aircraftTable(rows []generator.Aircraft) Table {
	t := Table{Name: "dim_aircraft", Columns: []Column{
		col("aircraft_id", TypeInt),
		col("aircraft_code", TypeString),
		col("manufacturer", TypeString),
		col("model", TypeString),
		col("category", TypeString),
		col("economy_seats", TypeInt),
		col("business_seats", TypeInt),
		col("first_seats", TypeInt),
		col("total_seats", TypeInt),
		col("range_km", TypeInt),
		col("cruise_speed_kmh", TypeInt),
		col("average_age_years", TypeFloat),
	}}
	for _, a := range rows {
		t.Rows = append(t.Rows, []any{
			a.AircraftID, a.AircraftCode, a.Manufacturer, a.Model, a.Category,
			a.EconomySeats, a.BusinessSeats, a.FirstSeats, a.TotalSeats,
			a.RangeKm, a.CruiseSpeedKmh, a.AverageAgeYears,
		})
	}
	return t
}

func airlineTable(rows []generator.Airline) Table {
	t := Table{Name: "dim_airline", Columns: []Column{
		col("airline_id", TypeInt),
		col("airline_code", TypeString),
		col("airline_name", TypeString),
		col("country", TypeString),
		nullable("alliance", TypeString),
		col("home_hub_airport_id", TypeInt),
		col("is_low_cost", TypeBool),
		col("fleet_size", TypeInt),
		col("rating", TypeFloat),
		col("founded_year", TypeInt),
	}}
	for _, a := range rows {
		t.Rows = append(t.Rows, []any{
			a.AirlineID, a.AirlineCode, a.Name, a.Country, orNull(a.Alliance),
			a.HomeHubAirportID, a.IsLowCost, a.FleetSize, a.Rating, a.FoundedYear,
		})
	}
	return t
}

func customerTable(rows []generator.Customer) Table {
	t := Table{Name: "dim_customer", Columns: []Column{
		col("customer_id", TypeInt),
		col("customer_code", TypeString),
		col("first_name", TypeString),
		col("last_name", TypeString),
		col("email", TypeString),
		col("phone", TypeString),
		col("date_of_birth", TypeDate),
		col("gender", TypeString),
		col("country", TypeString),
		col("city", TypeString),
		col("loyalty_tier", TypeString),
		col("loyalty_points", TypeInt),
		col("total_flights", TypeInt),
		nullable("preferred_airline_id", TypeInt),
		col("preferred_class", TypeString),
		col("registration_date", TypeDate),
		col("is_active", TypeBool),
	}}
	for _, c := range rows {
		t.Rows = append(t.Rows, []any{
			c.CustomerID, c.CustomerCode, c.FirstName, c.LastName, c.Email, c.Phone,
			c.DateOfBirth, c.Gender, c.Country, c.City, string(c.LoyaltyTier),
			c.LoyaltyPoints, c.TotalFlights, orNull(c.PreferredAirlineID),
			string(c.PreferredClass), c.RegistrationDate, c.IsActive,
		})
	}
	return t
}

func routeTable(rows []generator.Route) Table {
	t := Table{Name: "dim_route", Columns: []Column{
		col("route_id", TypeInt),
		col("route_code", TypeString),
		col("origin_airport_id", TypeInt),
		col("destination_airport_id", TypeInt),
		col("distance_km", TypeFloat),
		col("route_type", TypeString),
		col("typical_duration_minutes", TypeInt),
		col("is_international", TypeBool),
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.RouteID, r.RouteCode, r.OriginAirportID, r.DestinationAirportID,
			r.DistanceKm, string(r.RouteType), r.TypicalDurationMinutes, r.IsInternational,
		})
	}
	return t
}

func flightTable(rows []generator.Flight) Table {
	t := Table{Name: "fact_flight", Columns: []Column{
		col("flight_id", TypeInt),
		col("flight_number", TypeString),
		col("airline_id", TypeInt),
		col("aircraft_id", TypeInt),
		col("route_id", TypeInt),
		col("origin_airport_id", TypeInt),
		col("destination_airport_id", TypeInt),
		col("scheduled_departure", TypeTimestamp),
		col("scheduled_arrival", TypeTimestamp),
		col("scheduled_departure_date_id", TypeInt),
		col("scheduled_departure_time_id", TypeInt),
		col("scheduled_arrival_date_id", TypeInt),
		col("scheduled_arrival_time_id", TypeInt),
		nullable("actual_departure", TypeTimestamp),
		nullable("actual_arrival", TypeTimestamp),
		nullable("actual_departure_date_id", TypeInt),
		nullable("actual_departure_time_id", TypeInt),
		nullable("actual_arrival_date_id", TypeInt),
		nullable("actual_arrival_time_id", TypeInt),
		col("flight_status", TypeString),
		col("departure_delay_minutes", TypeInt),
		col("arrival_delay_minutes", TypeInt),
		nullable("delay_reason", TypeString),
		col("is_cancelled", TypeBool),
		col("is_diverted", TypeBool),
		nullable("cancellation_reason", TypeString),
		col("economy_seats_sold", TypeInt),
		col("business_seats_sold", TypeInt),
		col("first_seats_sold", TypeInt),
		col("total_passengers", TypeInt),
		col("total_seats", TypeInt),
		col("load_factor", TypeFloat),
		col("distance_km", TypeFloat),
		col("flight_duration_minutes", TypeInt),
		col("total_revenue", TypeMoney),
	}}
	for _, f := range rows {
		t.Rows = append(t.Rows, []any{
			f.FlightID, f.FlightNumber, f.AirlineID, f.AircraftID, f.RouteID,
			f.OriginAirportID, f.DestinationAirportID,
			f.ScheduledDeparture, f.ScheduledArrival,
			f.ScheduledDepartureDateID, f.ScheduledDepartureTimeID,
			f.ScheduledArrivalDateID, f.ScheduledArrivalTimeID,
			orNull(f.ActualDeparture), orNull(f.ActualArrival),
			orNull(f.ActualDepartureDateID), orNull(f.ActualDepartureTimeID),
			orNull(f.ActualArrivalDateID), orNull(f.ActualArrivalTimeID),
			string(f.Status), f.DepartureDelayMinutes, f.ArrivalDelayMinutes,
			orNull(f.DelayReason), f.IsCancelled, f.IsDiverted, orNull(f.CancellationReason),
			f.EconomySeatsSold, f.BusinessSeatsSold, f.FirstSeatsSold,
			f.TotalPassengers, f.TotalSeats, f.LoadFactor, f.DistanceKm,
			f.FlightDurationMinutes, f.TotalRevenue,
		})
	}
	return t
}

func bookingTable(rows []generator.Booking) Table {
	t := Table{Name: "fact_booking", Columns: []Column{
		col("booking_id", TypeInt),
		col("booking_reference", TypeString),
		col("customer_id", TypeInt),
		col("flight_id", TypeInt),
		col("airline_id", TypeInt),
		col("booking_date_id", TypeInt),
		col("booking_time_id", TypeInt),
		col("booking_channel", TypeString),
		col("cabin_class", TypeString),
		col("num_passengers", TypeInt),
		col("base_fare", TypeMoney),
		col("taxes", TypeMoney),
		col("fees", TypeMoney),
		col("total_amount", TypeMoney),
		col("currency", TypeString),
		col("days_before_departure", TypeInt),
		col("booking_status", TypeString),
		col("payment_method", TypeString),
		col("is_refundable", TypeBool),
	}}
	for _, b := range rows {
		t.Rows = append(t.Rows, []any{
			b.BookingID, b.BookingReference, b.CustomerID, b.FlightID, b.AirlineID,
			b.BookingDateID, b.BookingTimeID, b.BookingChannel, string(b.CabinClass),
			b.NumPassengers, b.BaseFare, b.Taxes, b.Fees, b.TotalAmount, b.Currency,
			b.DaysBeforeDeparture, string(b.Status), b.PaymentMethod, b.IsRefundable,
		})
	}
	return t
}

func journeyTable(rows []generator.Journey) Table {
	t := Table{Name: "fact_passenger_journey", Columns: []Column{
		col("journey_id", TypeInt),
		col("booking_id", TypeInt),
		col("customer_id", TypeInt),
		col("flight_id", TypeInt),
		col("passenger_sequence", TypeInt),
		col("seat_number", TypeString),
		col("cabin_class", TypeString),
		col("fare_paid", TypeMoney),
		col("check_in_method", TypeString),
		col("checked_bags", TypeInt),
		col("satisfaction_rating", TypeInt),
		col("has_complaint", TypeBool),
		nullable("complaint_category", TypeString),
		col("miles_earned", TypeInt),
	}}
	for _, j := range rows {
		t.Rows = append(t.Rows, []any{
			j.JourneyID, j.BookingID, j.CustomerID, j.FlightID, j.PassengerSequence,
			j.SeatNumber, string(j.CabinClass), j.FarePaid, j.CheckInMethod,
			j.CheckedBags, j.SatisfactionRating, j.HasComplaint,
			orNull(j.ComplaintCategory), j.MilesEarned,
		})
	}
	return t
}
