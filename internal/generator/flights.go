package generator

import (
	"math"
	"time"

	"airline-warehouse/internal/shared/errors"
)

const (
	maxDelayMinutes  = 360
	onTimeThreshold  = 15
	minutesPerDay    = 24 * 60
	meanDelayExcess  = 45.0
	divertedMaxDelay = 60
	loadTargetMin    = 0.60
	loadTargetMax    = 0.95
)

var flightStatusWeights = []weighted[FlightStatus]{
	{StatusOnTime, 72},
	{StatusDelayed, 20},
	{StatusCancelled, 5},
	{StatusDiverted, 3},
}

var delayReasons = []string{"Weather", "Air Traffic Control", "Late Aircraft", "Crew", "Mechanical", "Security"}

var cancellationReasons = []string{"Weather", "Mechanical", "Crew Shortage", "Air Traffic Control", "Operational"}

var diversionReasons = []string{"Weather", "Medical Emergency", "Mechanical", "Security"}

// flightWindow is the run's calendar in minutes from the start date.
type flightWindow struct {
	start time.Time
	// last is the final minute that still falls on a dim_date day.
	last int
}

func newFlightWindow(cfg Config) flightWindow {
	return flightWindow{start: cfg.StartDate, last: cfg.Days()*minutesPerDay - 1}
}

func (w flightWindow) at(minute int) time.Time {
	return w.start.Add(time.Duration(minute) * time.Minute)
}

// departureSlots returns how many 15-minute departure slots a route can use
// and whether those slots also leave room for the maximum delay.
func (w flightWindow) departureSlots(duration int) (slots int, headroom bool) {
	if latest := w.last - duration - maxDelayMinutes; latest >= 0 {
		return latest/slotMinutes + 1, true
	}
	if latest := w.last - duration; latest >= 0 {
		return latest/slotMinutes + 1, false
	}
	return 0, false
}

type flightPlanner struct {
	c        *Context
	window   flightWindow
	routes   []*Route
	airlines []Airline
	aircraft []Aircraft
}

func newFlightPlanner(c *Context, cfg Config, routes []Route, airlines []Airline, aircraft []Aircraft) (*flightPlanner, error) {
	window := newFlightWindow(cfg)

	usable := make([]*Route, 0, len(routes))
	for i := range routes {
		if slots, _ := window.departureSlots(routes[i].TypicalDurationMinutes); slots > 0 {
			usable = append(usable, &routes[i])
		}
	}
	if len(usable) == 0 {
		return nil, errors.Validationf("no generated route fits a %d-day window; widen the date range or add routes", cfg.Days())
	}

	return &flightPlanner{
		c:        c,
		window:   window,
		routes:   usable,
		airlines: airlines,
		aircraft: aircraft,
	}, nil
}

// pickAircraft chooses among types that can fly the distance, falling back
// to the longest-range type.
func (p *flightPlanner) pickAircraft(distanceKm float64) *Aircraft {
	capable := make([]*Aircraft, 0, len(p.aircraft))
	longest := &p.aircraft[0]
	for i := range p.aircraft {
		a := &p.aircraft[i]
		if float64(a.RangeKm) >= distanceKm {
			capable = append(capable, a)
		}
		if a.RangeKm > longest.RangeKm {
			longest = a
		}
	}
	if len(capable) == 0 {
		return longest
	}
	return choice(p.c, capable)
}

type delayProfile struct {
	status    FlightStatus
	departure int
	arrival   int
	reason    *string
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func (p *flightPlanner) sampleDelay() delayProfile {
	c := p.c
	status := pick(c, flightStatusWeights)
	switch status {
	case StatusDelayed:
		dep := min(onTimeThreshold+1+int(math.Round(c.rng.ExpFloat64()*meanDelayExcess)), maxDelayMinutes)
		arr := clamp(dep+c.between(-5, 10), onTimeThreshold+1, maxDelayMinutes)
		return delayProfile{status: status, departure: dep, arrival: arr, reason: ptr(choice(c, delayReasons))}
	case StatusCancelled:
		return delayProfile{status: status, reason: ptr(choice(c, cancellationReasons))}
	case StatusDiverted:
		return delayProfile{status: status, departure: c.between(0, divertedMaxDelay), reason: ptr(choice(c, diversionReasons))}
	default:
		dep := c.between(0, onTimeThreshold)
		return delayProfile{status: status, departure: dep, arrival: clamp(dep+c.between(-5, 5), 0, onTimeThreshold)}
	}
}

// capTo keeps actual times inside the window when a route had no headroom.
// A delayed flight whose arrival delay falls to the on-time threshold is
// reclassified as on time.
func (d delayProfile) capTo(limit int) delayProfile {
	d.departure = min(d.departure, limit)
	d.arrival = min(d.arrival, limit)
	if d.status == StatusDelayed && d.arrival <= onTimeThreshold {
		d.status = StatusOnTime
		d.reason = nil
	}
	return d
}

func (p *flightPlanner) plan(f *Flight, airlinesByID map[int]*Airline) {
	c := p.c
	route := choice(c, p.routes)
	airline := choice(c, p.airlines)
	aircraft := p.pickAircraft(route.DistanceKm)

	duration := route.TypicalDurationMinutes
	slots, headroom := p.window.departureSlots(duration)
	depMinute := c.rng.Intn(slots) * slotMinutes
	arrMinute := depMinute + duration

	delay := p.sampleDelay()
	if !headroom {
		delay = delay.capTo(p.window.last - arrMinute)
	}

	schedDep := p.window.at(depMinute)
	schedArr := p.window.at(arrMinute)

	*f = Flight{
		FlightID:                 c.ids.Next(KindFlight),
		FlightNumber:             c.ids.FlightNumber(airline.AirlineCode),
		AirlineID:                airline.AirlineID,
		AircraftID:               aircraft.AircraftID,
		RouteID:                  route.RouteID,
		OriginAirportID:          route.OriginAirportID,
		DestinationAirportID:     route.DestinationAirportID,
		ScheduledDeparture:       schedDep,
		ScheduledArrival:         schedArr,
		ScheduledDepartureDateID: DateID(schedDep),
		ScheduledDepartureTimeID: TimeID(schedDep),
		ScheduledArrivalDateID:   DateID(schedArr),
		ScheduledArrivalTimeID:   TimeID(schedArr),
		Status:                   delay.status,
		DistanceKm:               route.DistanceKm,
		FlightDurationMinutes:    duration,
		TotalSeats:               aircraft.TotalSeats,
	}

	switch delay.status {
	case StatusCancelled:
		f.IsCancelled = true
		f.CancellationReason = delay.reason
	case StatusDiverted:
		f.IsDiverted = true
		f.DelayReason = delay.reason
		f.DepartureDelayMinutes = delay.departure
		f.setActualDeparture(schedDep.Add(time.Duration(delay.departure) * time.Minute))
	default:
		f.DelayReason = delay.reason
		f.DepartureDelayMinutes = delay.departure
		f.ArrivalDelayMinutes = delay.arrival
		actualDep := schedDep.Add(time.Duration(delay.departure) * time.Minute)
		actualArr := schedArr.Add(time.Duration(delay.arrival) * time.Minute)
		f.setActualDeparture(actualDep)
		f.setActualArrival(actualArr)
		f.FlightDurationMinutes = int(actualArr.Sub(actualDep).Minutes())
	}

	if !f.IsCancelled {
		p.sellSeats(f, aircraft)
	}
	f.TotalPassengers = f.EconomySeatsSold + f.BusinessSeatsSold + f.FirstSeatsSold
	f.LoadFactor = LoadFactor(f.TotalPassengers, f.TotalSeats)
	f.TotalRevenue = FlightRevenue(f, airlinesByID[f.AirlineID].IsLowCost)
}

func (f *Flight) setActualDeparture(t time.Time) {
	f.ActualDeparture = ptr(t)
	f.ActualDepartureDateID = ptr(DateID(t))
	f.ActualDepartureTimeID = ptr(TimeID(t))
}

func (f *Flight) setActualArrival(t time.Time) {
	f.ActualArrival = ptr(t)
	f.ActualArrivalDateID = ptr(DateID(t))
	f.ActualArrivalTimeID = ptr(TimeID(t))
}

// sellSeats samples per-cabin occupancy around a shared load target. The
// counts are the only sampled quantities; every total derives from them.
func (p *flightPlanner) sellSeats(f *Flight, a *Aircraft) {
	c := p.c
	target := c.uniform(loadTargetMin, loadTargetMax)
	f.EconomySeatsSold = seatsAt(a.EconomySeats, target+c.uniform(-0.05, 0.05))
	f.BusinessSeatsSold = seatsAt(a.BusinessSeats, target*c.uniform(0.7, 1.05))
	f.FirstSeatsSold = seatsAt(a.FirstSeats, target*c.uniform(0.5, 1.0))
}

func seatsAt(capacity int, factor float64) int {
	return clamp(int(math.Round(float64(capacity)*factor)), 0, capacity)
}

// LoadFactor is passengers over seats as a percentage with two decimals.
func LoadFactor(passengers, seats int) float64 {
	if seats == 0 {
		return 0
	}
	return round2(float64(passengers) / float64(seats) * 100)
}

func generateFlights(c *Context, cfg Config, routes []Route, airlines []Airline, aircraft []Aircraft) ([]Flight, error) {
	planner, err := newFlightPlanner(c, cfg, routes, airlines, aircraft)
	if err != nil {
		return nil, err
	}

	airlinesByID := make(map[int]*Airline, len(airlines))
	for i := range airlines {
		airlinesByID[airlines[i].AirlineID] = &airlines[i]
	}

	flights := make([]Flight, cfg.Flights)
	for i := range flights {
		planner.plan(&flights[i], airlinesByID)
	}
	return flights, nil
}
