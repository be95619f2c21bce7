// Package catalog holds the hand-curated reference data that seeds every
// generation run: airports, airlines, aircraft types and customer name pools.
package catalog

import (
	"fmt"

	"airline-warehouse/internal/shared/errors"
)

const (
	MinAirports = 45
	MinAirlines = 27
	MinAircraft = 19
)

// Validate checks the catalog invariants: minimum sizes, code uniqueness
// within each list, and that every airline hub is a catalog airport.
func Validate() error {
	if len(airports) < MinAirports {
		return errors.Internalf("catalog has %d airports, need at least %d", len(airports), MinAirports)
	}
	if len(airlines) < MinAirlines {
		return errors.Internalf("catalog has %d airlines, need at least %d", len(airlines), MinAirlines)
	}
	if len(aircraftTypes) < MinAircraft {
		return errors.Internalf("catalog has %d aircraft types, need at least %d", len(aircraftTypes), MinAircraft)
	}

	iata := make(map[string]bool, len(airports))
	for _, a := range airports {
		if len(a.IATA) != 3 {
			return errors.Internalf("airport code %q is not 3 letters", a.IATA)
		}
		if iata[a.IATA] {
			return errors.Internalf("duplicate airport code %s", a.IATA)
		}
		iata[a.IATA] = true
	}

	codes := make(map[string]bool, len(airlines))
	for _, a := range airlines {
		if len(a.Code) != 2 {
			return errors.Internalf("airline code %q is not 2 characters", a.Code)
		}
		if codes[a.Code] {
			return errors.Internalf("duplicate airline code %s", a.Code)
		}
		codes[a.Code] = true
		if !iata[a.HubIATA] {
			return errors.Internalf("airline %s hub %s is not a catalog airport", a.Code, a.HubIATA)
		}
	}

	types := make(map[string]bool, len(aircraftTypes))
	for _, a := range aircraftTypes {
		if types[a.Code] {
			return errors.Internalf("duplicate aircraft code %s", a.Code)
		}
		types[a.Code] = true
		if a.Capacity() <= 0 || a.RangeKm <= 0 {
			return errors.Internalf("aircraft %s has no capacity or range", a.Code)
		}
	}

	return nil
}

// AirportIndex maps IATA codes to their position in Airports().
func AirportIndex() map[string]int {
	idx := make(map[string]int, len(airports))
	for i, a := range airports {
		idx[a.IATA] = i
	}
	return idx
}

func (a Airport) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.IATA, a.City, a.Country)
}
