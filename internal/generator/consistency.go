package generator

import (
	"math"
	"strconv"
	"time"

	"airline-warehouse/internal/shared/errors"
)

const loadFactorTolerance = 0.005 + 1e-9

type keySet map[int]bool

func keysOf[T any](rows []T, key func(*T) int) (keySet, int, bool) {
	set := make(keySet, len(rows))
	for i := range rows {
		k := key(&rows[i])
		if set[k] {
			return nil, k, false
		}
		set[k] = true
	}
	return set, 0, true
}

type codeSet map[string]bool

func (s codeSet) add(code string) bool {
	if s[code] {
		return false
	}
	s[code] = true
	return true
}

// Validate checks every dataset invariant: referential integrity, derived
// fields against their definitions, code uniqueness, and time ordering. Any
// failure is a defect in the generator and is reported as an internal error.
func Validate(ds *Dataset) error {
	dates, dup, ok := keysOf(ds.Dates, func(d *Date) int { return d.DateID })
	if !ok {
		return errors.Internalf("duplicate date_id %d", dup)
	}
	times, dup, ok := keysOf(ds.Times, func(t *Time) int { return t.TimeID })
	if !ok {
		return errors.Internalf("duplicate time_id %d", dup)
	}
	airports, dup, ok := keysOf(ds.Airports, func(a *Airport) int { return a.AirportID })
	if !ok {
		return errors.Internalf("duplicate airport_id %d", dup)
	}
	aircraft, dup, ok := keysOf(ds.Aircraft, func(a *Aircraft) int { return a.AircraftID })
	if !ok {
		return errors.Internalf("duplicate aircraft_id %d", dup)
	}
	airlines, dup, ok := keysOf(ds.Airlines, func(a *Airline) int { return a.AirlineID })
	if !ok {
		return errors.Internalf("duplicate airline_id %d", dup)
	}
	customers, dup, ok := keysOf(ds.Customers, func(c *Customer) int { return c.CustomerID })
	if !ok {
		return errors.Internalf("duplicate customer_id %d", dup)
	}
	routes, dup, ok := keysOf(ds.Routes, func(r *Route) int { return r.RouteID })
	if !ok {
		return errors.Internalf("duplicate route_id %d", dup)
	}

	if err := validateDimensions(ds, airports, airlines); err != nil {
		return err
	}

	aircraftByID := make(map[int]*Aircraft, len(ds.Aircraft))
	for i := range ds.Aircraft {
		aircraftByID[ds.Aircraft[i].AircraftID] = &ds.Aircraft[i]
	}
	routesByID := make(map[int]*Route, len(ds.Routes))
	for i := range ds.Routes {
		routesByID[ds.Routes[i].RouteID] = &ds.Routes[i]
	}
	lowCost := make(map[int]bool, len(ds.Airlines))
	for _, a := range ds.Airlines {
		lowCost[a.AirlineID] = a.IsLowCost
	}

	flightsByID := make(map[int]*Flight, len(ds.Flights))
	flightNumbers := codeSet{}
	for i := range ds.Flights {
		f := &ds.Flights[i]
		if flightsByID[f.FlightID] != nil {
			return errors.Internalf("duplicate flight_id %d", f.FlightID)
		}
		flightsByID[f.FlightID] = f
		if !flightNumbers.add(f.FlightNumber) {
			return errors.Internalf("duplicate flight number %s", f.FlightNumber)
		}
		if !airlines[f.AirlineID] || !aircraft[f.AircraftID] || !routes[f.RouteID] ||
			!airports[f.OriginAirportID] || !airports[f.DestinationAirportID] {
			return errors.Internalf("flight %d references a missing dimension row", f.FlightID)
		}
		if err := validateFlight(f, routesByID[f.RouteID], aircraftByID[f.AircraftID], lowCost[f.AirlineID], dates, times); err != nil {
			return err
		}
	}

	seated := make(map[int]int, len(ds.Flights))
	bookingsByID := make(map[int]*Booking, len(ds.Bookings))
	refs := codeSet{}
	for i := range ds.Bookings {
		b := &ds.Bookings[i]
		if bookingsByID[b.BookingID] != nil {
			return errors.Internalf("duplicate booking_id %d", b.BookingID)
		}
		bookingsByID[b.BookingID] = b
		if !refs.add(b.BookingReference) {
			return errors.Internalf("duplicate booking reference %s", b.BookingReference)
		}
		f := flightsByID[b.FlightID]
		if f == nil || !customers[b.CustomerID] || !airlines[b.AirlineID] ||
			!dates[b.BookingDateID] || !times[b.BookingTimeID] {
			return errors.Internalf("booking %d references a missing row", b.BookingID)
		}
		if err := validateBooking(b, f); err != nil {
			return err
		}
		if b.Status.Seated() {
			seated[f.FlightID] += b.NumPassengers
			if seated[f.FlightID] > f.TotalPassengers {
				return errors.Internalf("flight %d has more seated booking passengers than seats sold", f.FlightID)
			}
		}
	}

	journeysPerFlight := make(map[int]int, len(ds.Flights))
	journeysPerBooking := make(map[int]int, len(ds.Bookings))
	faresPerBooking := make(map[int]Money, len(ds.Bookings))
	seats := codeSet{}
	journeyIDs := keySet{}
	for i := range ds.Journeys {
		j := &ds.Journeys[i]
		if journeyIDs[j.JourneyID] {
			return errors.Internalf("duplicate journey_id %d", j.JourneyID)
		}
		journeyIDs[j.JourneyID] = true
		b := bookingsByID[j.BookingID]
		f := flightsByID[j.FlightID]
		if b == nil || f == nil || !customers[j.CustomerID] {
			return errors.Internalf("journey %d references a missing row", j.JourneyID)
		}
		if b.FlightID != j.FlightID {
			return errors.Internalf("journey %d flight %d differs from booking flight %d", j.JourneyID, j.FlightID, b.FlightID)
		}
		if !b.Status.Seated() {
			return errors.Internalf("journey %d belongs to %s booking %d", j.JourneyID, b.Status, b.BookingID)
		}
		if j.CabinClass != b.CabinClass {
			return errors.Internalf("journey %d cabin %s differs from booking cabin %s", j.JourneyID, j.CabinClass, b.CabinClass)
		}
		if j.SatisfactionRating < 1 || j.SatisfactionRating > 5 {
			return errors.Internalf("journey %d satisfaction %d outside [1,5]", j.JourneyID, j.SatisfactionRating)
		}
		if j.HasComplaint != (j.ComplaintCategory != nil) {
			return errors.Internalf("journey %d complaint flag disagrees with category", j.JourneyID)
		}
		if !seats.add(seatKey(j.FlightID, j.SeatNumber)) {
			return errors.Internalf("seat %s assigned twice on flight %d", j.SeatNumber, j.FlightID)
		}
		journeysPerFlight[j.FlightID]++
		journeysPerBooking[j.BookingID]++
		faresPerBooking[j.BookingID] += j.FarePaid
		if journeysPerFlight[j.FlightID] > f.TotalPassengers {
			return errors.Internalf("flight %d has more journeys than passengers", f.FlightID)
		}
	}

	for i := range ds.Bookings {
		b := &ds.Bookings[i]
		if !b.Status.Seated() {
			continue
		}
		if journeysPerBooking[b.BookingID] != b.NumPassengers {
			return errors.Internalf("booking %d has %d journeys for %d passengers", b.BookingID, journeysPerBooking[b.BookingID], b.NumPassengers)
		}
		if faresPerBooking[b.BookingID] != b.TotalAmount {
			return errors.Internalf("booking %d fare shares %s do not sum to %s", b.BookingID, faresPerBooking[b.BookingID], b.TotalAmount)
		}
	}

	return nil
}

func seatKey(flightID int, seat string) string {
	return strconv.Itoa(flightID) + "/" + seat
}

func validateDimensions(ds *Dataset, airports, airlines keySet) error {
	for _, a := range ds.Aircraft {
		if a.TotalSeats != a.EconomySeats+a.BusinessSeats+a.FirstSeats {
			return errors.Internalf("aircraft %s total seats %d is not the cabin sum", a.AircraftCode, a.TotalSeats)
		}
	}
	for _, a := range ds.Airports {
		if a.Rating < 1 || a.Rating > 5 {
			return errors.Internalf("airport %s rating %.1f outside [1,5]", a.IATACode, a.Rating)
		}
	}

	airlineCodes := codeSet{}
	for _, a := range ds.Airlines {
		if !airlineCodes.add(a.AirlineCode) {
			return errors.Internalf("duplicate airline code %s", a.AirlineCode)
		}
		if !airports[a.HomeHubAirportID] {
			return errors.Internalf("airline %s home hub %d is not an airport", a.AirlineCode, a.HomeHubAirportID)
		}
		if a.Rating < 1 || a.Rating > 5 {
			return errors.Internalf("airline %s rating %.1f outside [1,5]", a.AirlineCode, a.Rating)
		}
	}

	customerCodes := codeSet{}
	emails := codeSet{}
	for _, c := range ds.Customers {
		if !customerCodes.add(c.CustomerCode) {
			return errors.Internalf("duplicate customer code %s", c.CustomerCode)
		}
		if !emails.add(c.Email) {
			return errors.Internalf("duplicate customer email %s", c.Email)
		}
		if lo, hi := TierPointRange(c.LoyaltyTier); c.LoyaltyPoints < lo || c.LoyaltyPoints > hi {
			return errors.Internalf("customer %s has %d points for tier %s", c.CustomerCode, c.LoyaltyPoints, c.LoyaltyTier)
		}
		if c.PreferredAirlineID != nil && !airlines[*c.PreferredAirlineID] {
			return errors.Internalf("customer %s prefers missing airline %d", c.CustomerCode, *c.PreferredAirlineID)
		}
	}

	routeCodes := codeSet{}
	for _, r := range ds.Routes {
		if !routeCodes.add(r.RouteCode) {
			return errors.Internalf("duplicate route code %s", r.RouteCode)
		}
		if r.OriginAirportID == r.DestinationAirportID {
			return errors.Internalf("route %s starts and ends at the same airport", r.RouteCode)
		}
		if !airports[r.OriginAirportID] || !airports[r.DestinationAirportID] {
			return errors.Internalf("route %s references a missing airport", r.RouteCode)
		}
		if r.RouteType != ClassifyRoute(r.DistanceKm) {
			return errors.Internalf("route %s type %s does not match %.1f km", r.RouteCode, r.RouteType, r.DistanceKm)
		}
		if r.TypicalDurationMinutes != TypicalDuration(r.DistanceKm) {
			return errors.Internalf("route %s duration %d does not match %.1f km", r.RouteCode, r.TypicalDurationMinutes, r.DistanceKm)
		}
	}
	return nil
}

func validateFlight(f *Flight, r *Route, a *Aircraft, lowCost bool, dates, times keySet) error {
	if f.OriginAirportID != r.OriginAirportID || f.DestinationAirportID != r.DestinationAirportID || f.DistanceKm != r.DistanceKm {
		return errors.Internalf("flight %d disagrees with route %s", f.FlightID, r.RouteCode)
	}
	if f.TotalSeats != a.TotalSeats {
		return errors.Internalf("flight %d total seats %d differ from aircraft %s", f.FlightID, f.TotalSeats, a.AircraftCode)
	}
	for _, cabin := range Cabins {
		if sold := f.SeatsSold(cabin); sold < 0 || sold > a.Seats(cabin) {
			return errors.Internalf("flight %d sold %d %s seats of %d", f.FlightID, sold, cabin, a.Seats(cabin))
		}
	}
	if f.TotalPassengers != f.EconomySeatsSold+f.BusinessSeatsSold+f.FirstSeatsSold {
		return errors.Internalf("flight %d total passengers %d is not the cabin sum", f.FlightID, f.TotalPassengers)
	}
	if f.LoadFactor < 0 || f.LoadFactor > 100 {
		return errors.Internalf("flight %d load factor %.2f outside [0,100]", f.FlightID, f.LoadFactor)
	}
	if f.TotalSeats > 0 {
		exact := float64(f.TotalPassengers) / float64(f.TotalSeats) * 100
		if math.Abs(f.LoadFactor-exact) > loadFactorTolerance {
			return errors.Internalf("flight %d load factor %.2f, expected %.4f", f.FlightID, f.LoadFactor, exact)
		}
	}
	if f.TotalRevenue != FlightRevenue(f, lowCost) {
		return errors.Internalf("flight %d revenue %s is not derived from seats sold", f.FlightID, f.TotalRevenue)
	}

	if !f.ScheduledArrival.Equal(f.ScheduledDeparture.Add(time.Duration(r.TypicalDurationMinutes) * time.Minute)) {
		return errors.Internalf("flight %d scheduled arrival is not departure plus block time", f.FlightID)
	}
	for _, id := range []int{f.ScheduledDepartureDateID, f.ScheduledArrivalDateID} {
		if !dates[id] {
			return errors.Internalf("flight %d references missing date %d", f.FlightID, id)
		}
	}
	for _, id := range []int{f.ScheduledDepartureTimeID, f.ScheduledArrivalTimeID} {
		if !times[id] {
			return errors.Internalf("flight %d references missing time %d", f.FlightID, id)
		}
	}
	for _, id := range []*int{f.ActualDepartureDateID, f.ActualArrivalDateID} {
		if id != nil && !dates[*id] {
			return errors.Internalf("flight %d references missing date %d", f.FlightID, *id)
		}
	}
	for _, id := range []*int{f.ActualDepartureTimeID, f.ActualArrivalTimeID} {
		if id != nil && !times[*id] {
			return errors.Internalf("flight %d references missing time %d", f.FlightID, *id)
		}
	}

	switch f.Status {
	case StatusCancelled:
		if !f.IsCancelled || f.TotalPassengers != 0 || f.TotalRevenue != 0 || f.ActualDeparture != nil || f.ActualArrival != nil {
			return errors.Internalf("cancelled flight %d carries passengers, revenue or actual times", f.FlightID)
		}
		if f.CancellationReason == nil {
			return errors.Internalf("cancelled flight %d has no reason", f.FlightID)
		}
	case StatusDiverted:
		if !f.IsDiverted || f.ActualDeparture == nil || f.ActualArrival != nil {
			return errors.Internalf("diverted flight %d has inconsistent actual times", f.FlightID)
		}
	case StatusOnTime, StatusDelayed:
		if f.IsCancelled || f.IsDiverted || f.ActualDeparture == nil || f.ActualArrival == nil {
			return errors.Internalf("flight %d is %s without actual times", f.FlightID, f.Status)
		}
		late := f.ArrivalDelayMinutes > onTimeThreshold
		if (f.Status == StatusDelayed) != late {
			return errors.Internalf("flight %d status %s disagrees with %d minute arrival delay", f.FlightID, f.Status, f.ArrivalDelayMinutes)
		}
		if f.ActualArrival.Before(*f.ActualDeparture) {
			return errors.Internalf("flight %d lands before it departs", f.FlightID)
		}
	default:
		return errors.Internalf("flight %d has unknown status %q", f.FlightID, f.Status)
	}
	if f.Status != StatusCancelled && f.IsCancelled {
		return errors.Internalf("flight %d flagged cancelled with status %s", f.FlightID, f.Status)
	}
	if f.DepartureDelayMinutes < 0 || f.DepartureDelayMinutes > maxDelayMinutes ||
		f.ArrivalDelayMinutes < 0 || f.ArrivalDelayMinutes > maxDelayMinutes {
		return errors.Internalf("flight %d delay outside [0,%d]", f.FlightID, maxDelayMinutes)
	}
	if f.ActualDeparture != nil && f.ActualDeparture.Before(f.ScheduledDeparture) {
		return errors.Internalf("flight %d departs before schedule", f.FlightID)
	}
	return nil
}

func validateBooking(b *Booking, f *Flight) error {
	if b.TotalAmount != b.BaseFare+b.Taxes+b.Fees {
		return errors.Internalf("booking %s total %s is not base+taxes+fees", b.BookingReference, b.TotalAmount)
	}
	if b.BaseFare < 0 || b.Taxes < 0 || b.Fees < 0 {
		return errors.Internalf("booking %s has a negative amount", b.BookingReference)
	}
	if b.DaysBeforeDeparture < 0 {
		return errors.Internalf("booking %s is %d days before departure", b.BookingReference, b.DaysBeforeDeparture)
	}
	if b.AirlineID != f.AirlineID {
		return errors.Internalf("booking %s airline differs from flight %d", b.BookingReference, f.FlightID)
	}
	if b.NumPassengers < 1 {
		return errors.Internalf("booking %s has no passengers", b.BookingReference)
	}
	if f.IsCancelled && b.Status != BookingCancelled {
		return errors.Internalf("booking %s is %s on cancelled flight %d", b.BookingReference, b.Status, f.FlightID)
	}
	if b.BookedAt.After(f.ScheduledDeparture) {
		return errors.Internalf("booking %s was made after departure", b.BookingReference)
	}
	bookedDay := truncateDay(b.BookedAt)
	if days := int(truncateDay(f.ScheduledDeparture).Sub(bookedDay).Hours() / 24); days != b.DaysBeforeDeparture {
		return errors.Internalf("booking %s days before departure %d, dates say %d", b.BookingReference, b.DaysBeforeDeparture, days)
	}
	return nil
}
