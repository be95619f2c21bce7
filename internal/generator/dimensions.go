package generator

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"airline-warehouse/internal/catalog"
	"airline-warehouse/internal/shared/errors"
)

var terminalsByHub = map[catalog.HubType][2]int{
	catalog.HubTypeMajor:    {3, 6},
	catalog.HubTypeHub:      {2, 4},
	catalog.HubTypeRegional: {1, 2},
	catalog.HubTypeOther:    {1, 2},
}

var ratingByHub = map[catalog.HubType][2]float64{
	catalog.HubTypeMajor:    {3.8, 5.0},
	catalog.HubTypeHub:      {3.2, 4.8},
	catalog.HubTypeRegional: {2.5, 4.5},
	catalog.HubTypeOther:    {2.0, 4.5},
}

var fleetByHub = map[catalog.HubType][2]int{
	catalog.HubTypeMajor:    {200, 900},
	catalog.HubTypeHub:      {80, 400},
	catalog.HubTypeRegional: {20, 150},
	catalog.HubTypeOther:    {20, 100},
}

func generateAirports(c *Context, entries []catalog.Airport) []Airport {
	out := make([]Airport, 0, len(entries))
	for _, a := range entries {
		terminals := terminalsByHub[a.HubType]
		rating := ratingByHub[a.HubType]
		out = append(out, Airport{
			AirportID:    c.ids.Next(KindAirport),
			IATACode:     a.IATA,
			Name:         a.Name,
			City:         a.City,
			Country:      a.Country,
			Latitude:     a.Latitude,
			Longitude:    a.Longitude,
			Timezone:     a.Timezone,
			HubType:      string(a.HubType),
			NumTerminals: c.between(terminals[0], terminals[1]),
			Rating:       round1(c.uniform(rating[0], rating[1])),
		})
	}
	return out
}

func generateAircraft(c *Context, types []catalog.AircraftType) []Aircraft {
	out := make([]Aircraft, 0, len(types))
	for _, t := range types {
		out = append(out, Aircraft{
			AircraftID:      c.ids.Next(KindAircraft),
			AircraftCode:    t.Code,
			Manufacturer:    t.Manufacturer,
			Model:           t.Model,
			Category:        string(t.Category),
			EconomySeats:    t.EconomySeats,
			BusinessSeats:   t.BusinessSeats,
			FirstSeats:      t.FirstSeats,
			TotalSeats:      t.Capacity(),
			RangeKm:         t.RangeKm,
			CruiseSpeedKmh:  t.CruiseKmh,
			AverageAgeYears: round1(c.uniform(1.0, 25.0)),
		})
	}
	return out
}

func generateAirlines(c *Context, entries []catalog.Airline, airports []Airport) ([]Airline, error) {
	byCode := make(map[string]*Airport, len(airports))
	for i := range airports {
		byCode[airports[i].IATACode] = &airports[i]
	}

	out := make([]Airline, 0, len(entries))
	for _, a := range entries {
		hub, ok := byCode[a.HubIATA]
		if !ok {
			return nil, errors.Internalf("airline %s hub %s has no airport row", a.Code, a.HubIATA)
		}

		fleet := fleetByHub[catalog.HubType(hub.HubType)]
		rating := c.uniform(3.0, 5.0)
		if a.LowCost {
			rating = c.uniform(2.5, 4.0)
		}

		row := Airline{
			AirlineID:        c.ids.Next(KindAirline),
			AirlineCode:      a.Code,
			Name:             a.Name,
			Country:          a.Country,
			HomeHubAirportID: hub.AirportID,
			IsLowCost:        a.LowCost,
			FleetSize:        c.between(fleet[0], fleet[1]),
			Rating:           round1(rating),
			FoundedYear:      a.FoundedYear,
		}
		if a.Alliance != catalog.AllianceNone {
			row.Alliance = ptr(string(a.Alliance))
		}
		out = append(out, row)
	}
	return out, nil
}

type tierProfile struct {
	points  [2]int
	flights [2]int
}

// Tier weights are fixed so every run has the same distribution shape.
var tierWeights = []weighted[LoyaltyTier]{
	{TierNone, 40},
	{TierSilver, 30},
	{TierGold, 17},
	{TierPlatinum, 9},
	{TierDiamond, 4},
}

var tierProfiles = map[LoyaltyTier]tierProfile{
	TierNone:     {points: [2]int{0, 999}, flights: [2]int{0, 5}},
	TierSilver:   {points: [2]int{1000, 24999}, flights: [2]int{6, 20}},
	TierGold:     {points: [2]int{25000, 49999}, flights: [2]int{21, 50}},
	TierPlatinum: {points: [2]int{50000, 99999}, flights: [2]int{51, 100}},
	TierDiamond:  {points: [2]int{100000, 250000}, flights: [2]int{101, 300}},
}

var preferredClassWeights = []weighted[CabinClass]{
	{CabinEconomy, 70},
	{CabinBusiness, 22},
	{CabinFirst, 8},
}

var genderWeights = []weighted[string]{
	{"Male", 48},
	{"Female", 48},
	{"Other", 4},
}

const preferredAirlineNullRate = 0.3

// TierPointRange reports the loyalty points a tier allows.
func TierPointRange(t LoyaltyTier) (int, int) {
	p := tierProfiles[t]
	return p.points[0], p.points[1]
}

func generateCustomers(c *Context, n int, airlines []Airline, windowEnd time.Time) []Customer {
	firstNames := catalog.FirstNames()
	lastNames := catalog.LastNames()
	locations := catalog.CustomerLocations()
	domains := catalog.EmailDomains()
	earliestRegistration := time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)

	out := make([]Customer, 0, n)
	for i := 0; i < n; i++ {
		id := c.ids.Next(KindCustomer)
		first := choice(c, firstNames)
		last := choice(c, lastNames)
		loc := choice(c, locations)
		tier := pick(c, tierWeights)
		profile := tierProfiles[tier]

		dob := windowEnd.AddDate(-c.between(18, 85), 0, -c.rng.Intn(365))
		adult := dob.AddDate(18, 0, 0)
		if adult.Before(earliestRegistration) {
			adult = earliestRegistration
		}
		registered := adult
		if span := int(windowEnd.Sub(adult).Hours() / 24); span > 0 {
			registered = adult.AddDate(0, 0, c.rng.Intn(span+1))
		}

		row := Customer{
			CustomerID:       id,
			CustomerCode:     CustomerCode(id),
			FirstName:        first,
			LastName:         last,
			Email:            fmt.Sprintf("%s.%s%d@%s", emailLocal(first), emailLocal(last), id, choice(c, domains)),
			Phone:            fmt.Sprintf("+%d-%03d-%03d-%04d", c.between(1, 99), c.between(200, 999), c.between(200, 999), c.rng.Intn(10000)),
			DateOfBirth:      dob,
			Gender:           pick(c, genderWeights),
			Country:          loc.Country,
			City:             loc.City,
			LoyaltyTier:      tier,
			LoyaltyPoints:    c.between(profile.points[0], profile.points[1]),
			TotalFlights:     c.between(profile.flights[0], profile.flights[1]),
			PreferredClass:   pick(c, preferredClassWeights),
			RegistrationDate: registered,
			IsActive:         c.chance(0.85),
		}
		if !c.chance(preferredAirlineNullRate) {
			row.PreferredAirlineID = ptr(choice(c, airlines).AirlineID)
		}
		out = append(out, row)
	}
	return out
}

func emailLocal(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, name)
}

const earthRadiusKm = 6371.0

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// ClassifyRoute derives the route type from distance alone.
func ClassifyRoute(distanceKm float64) RouteType {
	switch {
	case distanceKm < 500:
		return RouteShortHaul
	case distanceKm <= 3000:
		return RouteMediumHaul
	default:
		return RouteLongHaul
	}
}

// TypicalDuration is block time for a distance: 30 minutes of taxi and climb
// plus cruise at 800 km/h, rounded to the nearest 5 minutes.
func TypicalDuration(distanceKm float64) int {
	minutes := 30 + distanceKm/800*60
	return int(math.Round(minutes/5)) * 5
}

// generateRoutes samples n distinct ordered airport pairs uniformly with a
// partial Fisher-Yates shuffle over every directional pair.
func generateRoutes(c *Context, n int, airports []Airport) ([]Route, error) {
	pairs := make([][2]int, 0, len(airports)*(len(airports)-1))
	for i := range airports {
		for j := range airports {
			if i != j {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	if n > len(pairs) {
		return nil, errors.Validationf("routes %d exceeds the %d directional airport pairs available", n, len(pairs))
	}

	out := make([]Route, 0, n)
	for k := 0; k < n; k++ {
		j := k + c.rng.Intn(len(pairs)-k)
		pairs[k], pairs[j] = pairs[j], pairs[k]

		origin := &airports[pairs[k][0]]
		dest := &airports[pairs[k][1]]
		code, err := c.ids.RouteCode(origin.IATACode, dest.IATACode)
		if err != nil {
			return nil, err
		}

		distance := round1(HaversineKm(origin.Latitude, origin.Longitude, dest.Latitude, dest.Longitude))
		out = append(out, Route{
			RouteID:                c.ids.Next(KindRoute),
			RouteCode:              code,
			OriginAirportID:        origin.AirportID,
			DestinationAirportID:   dest.AirportID,
			DistanceKm:             distance,
			RouteType:              ClassifyRoute(distance),
			TypicalDurationMinutes: TypicalDuration(distance),
			IsInternational:        origin.Country != dest.Country,
		})
	}
	return out, nil
}
