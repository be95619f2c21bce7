package generator

import (
	"fmt"
	"math/rand"

	"airline-warehouse/internal/shared/errors"
)

// Kind names an entity family that owns its own surrogate key sequence.
type Kind string

const (
	KindAirport  Kind = "airport"
	KindAircraft Kind = "aircraft"
	KindAirline  Kind = "airline"
	KindCustomer Kind = "customer"
	KindRoute    Kind = "route"
	KindFlight   Kind = "flight"
	KindBooking  Kind = "booking"
	KindJourney  Kind = "journey"
)

const (
	bookingRefAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	bookingRefLength   = 6
	firstFlightNumber  = 100
)

// Allocator hands out surrogate keys and business codes for one run.
type Allocator struct {
	rng         *rand.Rand
	keys        map[Kind]int
	flightSeq   map[string]int
	bookingRefs map[string]bool
	routeCodes  map[string]bool
}

func NewAllocator(rng *rand.Rand) *Allocator {
	return &Allocator{
		rng:         rng,
		keys:        make(map[Kind]int),
		flightSeq:   make(map[string]int),
		bookingRefs: make(map[string]bool),
		routeCodes:  make(map[string]bool),
	}
}

// Next returns the next surrogate key for kind, starting at 1.
func (a *Allocator) Next(kind Kind) int {
	a.keys[kind]++
	return a.keys[kind]
}

func CustomerCode(seq int) string {
	return fmt.Sprintf("CUST%06d", seq)
}

// FlightNumber returns the next number in the carrier's own sequence.
func (a *Allocator) FlightNumber(airlineCode string) string {
	seq, ok := a.flightSeq[airlineCode]
	if !ok {
		seq = firstFlightNumber
	}
	a.flightSeq[airlineCode] = seq + 1
	return fmt.Sprintf("%s%d", airlineCode, seq)
}

// BookingReference draws random references until it finds an unused one.
func (a *Allocator) BookingReference() string {
	buf := make([]byte, bookingRefLength)
	for {
		for i := range buf {
			buf[i] = bookingRefAlphabet[a.rng.Intn(len(bookingRefAlphabet))]
		}
		ref := string(buf)
		if !a.bookingRefs[ref] {
			a.bookingRefs[ref] = true
			return ref
		}
	}
}

// RouteCode issues ORIGIN-DEST. Routes are directional, so JFK-LHR and
// LHR-JFK are distinct, but the same ordered pair can only be issued once.
func (a *Allocator) RouteCode(origin, dest string) (string, error) {
	if origin == dest {
		return "", errors.Internalf("route %s has the same origin and destination", origin)
	}
	code := origin + "-" + dest
	if a.routeCodes[code] {
		return "", errors.Internalf("route code %s already issued", code)
	}
	a.routeCodes[code] = true
	return code, nil
}
