package generator

import (
	"time"

	"github.com/google/uuid"
)

type CabinClass string

const (
	CabinEconomy  CabinClass = "Economy"
	CabinBusiness CabinClass = "Business"
	CabinFirst    CabinClass = "First"
)

// Cabins lists the cabin classes from the front of the aircraft back.
var Cabins = []CabinClass{CabinFirst, CabinBusiness, CabinEconomy}

type LoyaltyTier string

const (
	TierNone     LoyaltyTier = "None"
	TierSilver   LoyaltyTier = "Silver"
	TierGold     LoyaltyTier = "Gold"
	TierPlatinum LoyaltyTier = "Platinum"
	TierDiamond  LoyaltyTier = "Diamond"
)

type RouteType string

const (
	RouteShortHaul  RouteType = "Short-haul"
	RouteMediumHaul RouteType = "Medium-haul"
	RouteLongHaul   RouteType = "Long-haul"
)

type FlightStatus string

const (
	StatusOnTime    FlightStatus = "On-Time"
	StatusDelayed   FlightStatus = "Delayed"
	StatusCancelled FlightStatus = "Cancelled"
	StatusDiverted  FlightStatus = "Diverted"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingPending   BookingStatus = "Pending"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
	BookingNoShow    BookingStatus = "No-Show"
)

// Seated reports whether a booking occupies seats on its flight.
func (s BookingStatus) Seated() bool {
	return s == BookingCompleted || s == BookingConfirmed
}

type Date struct {
	DateID      int
	FullDate    time.Time
	Year        int
	Quarter     int
	Month       int
	MonthName   string
	Day         int
	DayOfWeek   int
	DayName     string
	WeekOfYear  int
	IsWeekend   bool
	IsHoliday   bool
	HolidayName *string
	Season      string
}

type Time struct {
	TimeID          int
	TimeLabel       string
	Hour            int
	Minute          int
	PeriodOfDay     string
	IsBusinessHours bool
	IsPeakHour      bool
}

type Airport struct {
	AirportID    int
	IATACode     string
	Name         string
	City         string
	Country      string
	Latitude     float64
	Longitude    float64
	Timezone     string
	HubType      string
	NumTerminals int
	Rating       float64
}

type Aircraft struct {
	AircraftID      int
	AircraftCode    string
	Manufacturer    string
	Model           string
	Category        string
	EconomySeats    int
	BusinessSeats   int
	FirstSeats      int
	TotalSeats      int
	RangeKm         int
	CruiseSpeedKmh  int
	AverageAgeYears float64
}

// Seats returns the configured seat count for a cabin.
func (a *Aircraft) Seats(c CabinClass) int {
	switch c {
	case CabinFirst:
		return a.FirstSeats
	case CabinBusiness:
		return a.BusinessSeats
	default:
		return a.EconomySeats
	}
}

type Airline struct {
	AirlineID        int
	AirlineCode      string
	Name             string
	Country          string
	Alliance         *string
	HomeHubAirportID int
	IsLowCost        bool
	FleetSize        int
	Rating           float64
	FoundedYear      int
}

type Customer struct {
	CustomerID         int
	CustomerCode       string
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	DateOfBirth        time.Time
	Gender             string
	Country            string
	City               string
	LoyaltyTier        LoyaltyTier
	LoyaltyPoints      int
	TotalFlights       int
	PreferredAirlineID *int
	PreferredClass     CabinClass
	RegistrationDate   time.Time
	IsActive           bool
}

type Route struct {
	RouteID                int
	RouteCode              string
	OriginAirportID        int
	DestinationAirportID   int
	DistanceKm             float64
	RouteType              RouteType
	TypicalDurationMinutes int
	IsInternational        bool
}

type Flight struct {
	FlightID                 int
	FlightNumber             string
	AirlineID                int
	AircraftID               int
	RouteID                  int
	OriginAirportID          int
	DestinationAirportID     int
	ScheduledDeparture       time.Time
	ScheduledArrival         time.Time
	ScheduledDepartureDateID int
	ScheduledDepartureTimeID int
	ScheduledArrivalDateID   int
	ScheduledArrivalTimeID   int
	ActualDeparture          *time.Time
	ActualArrival            *time.Time
	ActualDepartureDateID    *int
	ActualDepartureTimeID    *int
	ActualArrivalDateID      *int
	ActualArrivalTimeID      *int
	Status                   FlightStatus
	DepartureDelayMinutes    int
	ArrivalDelayMinutes      int
	DelayReason              *string
	IsCancelled              bool
	IsDiverted               bool
	CancellationReason       *string
	EconomySeatsSold         int
	BusinessSeatsSold        int
	FirstSeatsSold           int
	TotalPassengers          int
	TotalSeats               int
	LoadFactor               float64
	DistanceKm               float64
	FlightDurationMinutes    int
	TotalRevenue             Money
}

// SeatsSold returns the sold seat count for a cabin.
func (f *Flight) SeatsSold(c CabinClass) int {
	switch c {
	case CabinFirst:
		return f.FirstSeatsSold
	case CabinBusiness:
		return f.BusinessSeatsSold
	default:
		return f.EconomySeatsSold
	}
}

type Booking struct {
	BookingID           int
	BookingReference    string
	CustomerID          int
	FlightID            int
	AirlineID           int
	BookingDateID       int
	BookingTimeID       int
	BookedAt            time.Time
	BookingChannel      string
	CabinClass          CabinClass
	NumPassengers       int
	BaseFare            Money
	Taxes               Money
	Fees                Money
	TotalAmount         Money
	Currency            string
	DaysBeforeDeparture int
	Status              BookingStatus
	PaymentMethod       string
	IsRefundable        bool
}

type Journey struct {
	JourneyID          int
	BookingID          int
	CustomerID         int
	FlightID           int
	PassengerSequence  int
	SeatNumber         string
	CabinClass         CabinClass
	FarePaid           Money
	CheckInMethod      string
	CheckedBags        int
	SatisfactionRating int
	HasComplaint       bool
	ComplaintCategory  *string
	MilesEarned        int
}

// Dataset is the complete output of one run, dimensions first and facts in
// dependency order.
type Dataset struct {
	RunID  uuid.UUID
	Seed   int64
	Config Config

	Dates     []Date
	Times     []Time
	Airports  []Airport
	Aircraft  []Aircraft
	Airlines  []Airline
	Customers []Customer
	Routes    []Route
	Flights   []Flight
	Bookings  []Booking
	Journeys  []Journey
}

func ptr[T any](v T) *T {
	return &v
}
