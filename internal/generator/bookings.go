package generator

import (
	"time"
)

var bookingStatusWeights = []weighted[BookingStatus]{
	{BookingCompleted, 60},
	{BookingConfirmed, 20},
	{BookingCancelled, 10},
	{BookingPending, 5},
	{BookingNoShow, 5},
}

var bookingChannelWeights = []weighted[string]{
	{"Website", 40},
	{"Mobile App", 30},
	{"Travel Agent", 15},
	{"Call Center", 10},
	{"Airport Counter", 5},
}

var paymentMethodWeights = []weighted[string]{
	{"Credit Card", 55},
	{"Debit Card", 20},
	{"PayPal", 12},
	{"Points", 8},
	{"Bank Transfer", 5},
}

var partySizeWeights = []weighted[int]{
	{1, 55},
	{2, 25},
	{3, 12},
	{4, 8},
}

type dayRange struct{ lo, hi int }

// Advance purchase skews toward one to two months out.
var bookingWindowWeights = []weighted[dayRange]{
	{dayRange{0, 7}, 15},
	{dayRange{8, 14}, 15},
	{dayRange{15, 30}, 25},
	{dayRange{31, 60}, 25},
	{dayRange{61, 180}, 20},
}

const (
	preferredCabinRate    = 0.6
	economyRefundableRate = 0.2
	demandWindowDays      = 60
	demandPremium         = 0.6
	bookingCurrency       = "USD"
)

func cabinIndex(c CabinClass) int {
	switch c {
	case CabinFirst:
		return 0
	case CabinBusiness:
		return 1
	default:
		return 2
	}
}

// seatInventory tracks sold seats not yet claimed by a seated booking.
type seatInventory struct {
	remaining [][3]int
	open      []int
	openPos   []int
}

func newSeatInventory(flights []Flight) *seatInventory {
	inv := &seatInventory{
		remaining: make([][3]int, len(flights)),
		openPos:   make([]int, len(flights)),
	}
	for i := range flights {
		inv.openPos[i] = -1
		for _, cabin := range Cabins {
			inv.remaining[i][cabinIndex(cabin)] = flights[i].SeatsSold(cabin)
		}
		if inv.total(i) > 0 {
			inv.openPos[i] = len(inv.open)
			inv.open = append(inv.open, i)
		}
	}
	return inv
}

func (inv *seatInventory) total(flight int) int {
	r := inv.remaining[flight]
	return r[0] + r[1] + r[2]
}

func (inv *seatInventory) left(flight int, cabin CabinClass) int {
	return inv.remaining[flight][cabinIndex(cabin)]
}

func (inv *seatInventory) claim(flight int, cabin CabinClass, seats int) {
	inv.remaining[flight][cabinIndex(cabin)] -= seats
	if inv.total(flight) > 0 {
		return
	}
	pos := inv.openPos[flight]
	if pos < 0 {
		return
	}
	last := inv.open[len(inv.open)-1]
	inv.open[pos] = last
	inv.openPos[last] = pos
	inv.open = inv.open[:len(inv.open)-1]
	inv.openPos[flight] = -1
}

type bookingBuilder struct {
	c         *Context
	start     time.Time
	flights   []Flight
	customers []Customer
	airlines  map[int]*Airline
	aircraft  map[int]*Aircraft
	seats     *seatInventory
}

func (b *bookingBuilder) seatedCabin(flight int, customer *Customer) (CabinClass, bool) {
	if b.seats.left(flight, customer.PreferredClass) > 0 && b.c.chance(preferredCabinRate) {
		return customer.PreferredClass, true
	}
	table := make([]weighted[CabinClass], 0, len(Cabins))
	for _, cabin := range Cabins {
		if left := b.seats.left(flight, cabin); left > 0 {
			table = append(table, weighted[CabinClass]{cabin, left})
		}
	}
	if len(table) == 0 {
		return "", false
	}
	return pick(b.c, table), true
}

func (b *bookingBuilder) unseatedCabin(a *Aircraft) CabinClass {
	table := make([]weighted[CabinClass], 0, len(Cabins))
	for _, cabin := range Cabins {
		if seats := a.Seats(cabin); seats > 0 {
			table = append(table, weighted[CabinClass]{cabin, seats})
		}
	}
	return pick(b.c, table)
}

// bookingTime picks a purchase moment that falls on a dim_date day and is
// never after the scheduled departure.
func (b *bookingBuilder) bookingTime(departure time.Time) (time.Time, int) {
	window := pick(b.c, bookingWindowWeights)
	days := b.c.between(window.lo, window.hi)

	depDay := truncateDay(departure)
	if maxDays := int(depDay.Sub(b.start).Hours() / 24); days > maxDays {
		days = maxDays
	}

	lastSlot := 24*60/slotMinutes - 1
	if days == 0 {
		lastSlot = (departure.Hour()*60 + departure.Minute()) / slotMinutes
	}
	slot := b.c.rng.Intn(lastSlot + 1)
	return depDay.AddDate(0, 0, -days).Add(time.Duration(slot*slotMinutes) * time.Minute), days
}

func demandFactor(days int) float64 {
	return 1 + demandPremium*float64(max(0, demandWindowDays-days))/demandWindowDays
}

func (b *bookingBuilder) build(flight int) Booking {
	c := b.c
	f := &b.flights[flight]
	customer := &b.customers[c.rng.Intn(len(b.customers))]
	aircraft := b.aircraft[f.AircraftID]
	airline := b.airlines[f.AirlineID]

	status := BookingCancelled
	if !f.IsCancelled {
		status = pick(c, bookingStatusWeights)
	}

	var cabin CabinClass
	passengers := pick(c, partySizeWeights)
	if status.Seated() {
		var ok bool
		if cabin, ok = b.seatedCabin(flight, customer); ok {
			passengers = min(passengers, b.seats.left(flight, cabin))
			b.seats.claim(flight, cabin, passengers)
		} else {
			status = BookingCancelled
		}
	}
	if !status.Seated() {
		cabin = b.unseatedCabin(aircraft)
		passengers = min(passengers, aircraft.Seats(cabin))
	}

	bookedAt, days := b.bookingTime(f.ScheduledDeparture)
	fare := BaseFareDollars(f.DistanceKm, cabin, airline.IsLowCost) * demandFactor(days) * c.uniform(0.9, 1.1)
	base := FromDollars(fare * float64(passengers))
	taxes, fees, total := PriceBooking(base)

	return Booking{
		BookingID:           c.ids.Next(KindBooking),
		BookingReference:    c.ids.BookingReference(),
		CustomerID:          customer.CustomerID,
		FlightID:            f.FlightID,
		AirlineID:           f.AirlineID,
		BookingDateID:       DateID(bookedAt),
		BookingTimeID:       TimeID(bookedAt),
		BookedAt:            bookedAt,
		BookingChannel:      pick(c, bookingChannelWeights),
		CabinClass:          cabin,
		NumPassengers:       passengers,
		BaseFare:            base,
		Taxes:               taxes,
		Fees:                fees,
		TotalAmount:         total,
		Currency:            bookingCurrency,
		DaysBeforeDeparture: days,
		Status:              status,
		PaymentMethod:       pick(c, paymentMethodWeights),
		IsRefundable:        cabin != CabinEconomy || c.chance(economyRefundableRate),
	}
}

// generateBookings gives every flight one booking, then keeps booking
// flights that still have unclaimed sold seats until the target is reached.
func generateBookings(c *Context, cfg Config, flights []Flight, customers []Customer, airlines []Airline, aircraft []Aircraft) []Booking {
	b := &bookingBuilder{
		c:         c,
		start:     cfg.StartDate,
		flights:   flights,
		customers: customers,
		airlines:  make(map[int]*Airline, len(airlines)),
		aircraft:  make(map[int]*Aircraft, len(aircraft)),
		seats:     newSeatInventory(flights),
	}
	for i := range airlines {
		b.airlines[airlines[i].AirlineID] = &airlines[i]
	}
	for i := range aircraft {
		b.aircraft[aircraft[i].AircraftID] = &aircraft[i]
	}

	target := cfg.Flights * cfg.BookingsPerFlight
	bookings := make([]Booking, 0, target)
	for i := range flights {
		bookings = append(bookings, b.build(i))
	}

	for len(bookings) < target {
		if len(b.seats.open) == 0 {
			c.logger.Warn("Sold seats exhausted before booking target",
				"operation", "generate_bookings",
				"target", target,
				"generated", len(bookings))
			break
		}
		flight := b.seats.open[c.rng.Intn(len(b.seats.open))]
		bookings = append(bookings, b.build(flight))
	}

	return bookings
}
