package generator

import (
	"fmt"
	"math"
)

var checkInWeights = []weighted[string]{
	{"Online", 45},
	{"Mobile App", 30},
	{"Kiosk", 15},
	{"Counter", 10},
}

var checkedBagWeights = []weighted[int]{
	{0, 35},
	{1, 45},
	{2, 15},
	{3, 5},
}

var satisfactionByStatus = map[FlightStatus][]weighted[int]{
	StatusOnTime:   {{1, 3}, {2, 7}, {3, 20}, {4, 40}, {5, 30}},
	StatusDelayed:  {{1, 12}, {2, 20}, {3, 33}, {4, 25}, {5, 10}},
	StatusDiverted: {{1, 25}, {2, 30}, {3, 25}, {4, 15}, {5, 5}},
}

var complaintCategories = []string{"Delay", "Baggage", "Seating", "Food", "Staff", "Cleanliness", "Entertainment"}

const (
	premiumSeatLetters = "ACDF"
	economySeatLetters = "ABCDEF"
)

func complaintRate(rating int) float64 {
	switch {
	case rating <= 2:
		return 0.45
	case rating == 3:
		return 0.10
	default:
		return 0.02
	}
}

// seatMap numbers seats cabin by cabin: First rows first, Business after,
// Economy after that. Rows never overlap because each cabin hands out at
// most its configured seat count.
type seatMap struct {
	firstRow [3]int
	next     [3]int
}

func newSeatMap(a *Aircraft) *seatMap {
	firstRows := ceilDiv(a.FirstSeats, len(premiumSeatLetters))
	businessRows := ceilDiv(a.BusinessSeats, len(premiumSeatLetters))
	return &seatMap{firstRow: [3]int{1, 1 + firstRows, 1 + firstRows + businessRows}}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (m *seatMap) assign(cabin CabinClass) string {
	i := cabinIndex(cabin)
	letters := premiumSeatLetters
	if cabin == CabinEconomy {
		letters = economySeatLetters
	}
	k := m.next[i]
	m.next[i]++
	return fmt.Sprintf("%d%c", m.firstRow[i]+k/len(letters), letters[k%len(letters)])
}

// generateJourneys expands seated bookings into one row per passenger, in
// booking order. Fare shares sum to the booking total exactly.
func generateJourneys(c *Context, bookings []Booking, flights []Flight, customers []Customer, aircraft []Aircraft) []Journey {
	flightsByID := make(map[int]*Flight, len(flights))
	for i := range flights {
		flightsByID[flights[i].FlightID] = &flights[i]
	}
	aircraftByID := make(map[int]*Aircraft, len(aircraft))
	for i := range aircraft {
		aircraftByID[aircraft[i].AircraftID] = &aircraft[i]
	}
	seatMaps := make(map[int]*seatMap)

	var journeys []Journey
	for i := range bookings {
		b := &bookings[i]
		if !b.Status.Seated() {
			continue
		}
		f := flightsByID[b.FlightID]
		seats, ok := seatMaps[f.FlightID]
		if !ok {
			seats = newSeatMap(aircraftByID[f.AircraftID])
			seatMaps[f.FlightID] = seats
		}

		shares := b.TotalAmount.Split(b.NumPassengers)
		for seq := 1; seq <= b.NumPassengers; seq++ {
			customerID := b.CustomerID
			if seq > 1 {
				customerID = companion(c, customers, b.CustomerID)
			}

			rating := pick(c, satisfactionByStatus[f.Status])
			j := Journey{
				JourneyID:          c.ids.Next(KindJourney),
				BookingID:          b.BookingID,
				CustomerID:         customerID,
				FlightID:           f.FlightID,
				PassengerSequence:  seq,
				SeatNumber:         seats.assign(b.CabinClass),
				CabinClass:         b.CabinClass,
				FarePaid:           shares[seq-1],
				CheckInMethod:      pick(c, checkInWeights),
				CheckedBags:        pick(c, checkedBagWeights),
				SatisfactionRating: rating,
				MilesEarned:        int(math.Round(f.DistanceKm * cabinMilesMultiplier[b.CabinClass])),
			}
			if c.chance(complaintRate(rating)) {
				j.HasComplaint = true
				category := choice(c, complaintCategories)
				if f.Status != StatusOnTime && c.chance(0.5) {
					category = "Delay"
				}
				j.ComplaintCategory = ptr(category)
			}
			journeys = append(journeys, j)
		}
	}
	return journeys
}

// companion picks a travelling companion other than the booker when the
// customer base allows it.
func companion(c *Context, customers []Customer, booker int) int {
	i := c.rng.Intn(len(customers))
	if customers[i].CustomerID == booker && len(customers) > 1 {
		i = (i + 1) % len(customers)
	}
	return customers[i].CustomerID
}
