package generator

import (
	"math/rand"
	"strings"
	"testing"

	"airline-warehouse/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorKeysArePerKind(t *testing.T) {
	a := NewAllocator(rand.New(rand.NewSource(1)))

	assert.Equal(t, 1, a.Next(KindFlight))
	assert.Equal(t, 2, a.Next(KindFlight))
	assert.Equal(t, 1, a.Next(KindBooking))
	assert.Equal(t, 3, a.Next(KindFlight))
}

func TestFlightNumbersArePerCarrier(t *testing.T) {
	a := NewAllocator(rand.New(rand.NewSource(1)))

	assert.Equal(t, "AA100", a.FlightNumber("AA"))
	assert.Equal(t, "AA101", a.FlightNumber("AA"))
	assert.Equal(t, "BA100", a.FlightNumber("BA"))
	assert.Equal(t, "AA102", a.FlightNumber("AA"))
}

func TestCustomerCode(t *testing.T) {
	assert.Equal(t, "CUST000001", CustomerCode(1))
	assert.Equal(t, "CUST123456", CustomerCode(123456))
}

func TestBookingReferencesAreUnique(t *testing.T) {
	a := NewAllocator(rand.New(rand.NewSource(7)))
	seen := make(map[string]bool)

	for i := 0; i < 5000; i++ {
		ref := a.BookingReference()
		require.Len(t, ref, bookingRefLength)
		for _, r := range ref {
			require.True(t, strings.ContainsRune(bookingRefAlphabet, r), ref)
		}
		require.False(t, seen[ref], ref)
		seen[ref] = true
	}
}

func TestRouteCodesAreDirectional(t *testing.T) {
	a := NewAllocator(rand.New(rand.NewSource(1)))

	code, err := a.RouteCode("JFK", "LHR")
	require.NoError(t, err)
	assert.Equal(t, "JFK-LHR", code)

	code, err = a.RouteCode("LHR", "JFK")
	require.NoError(t, err)
	assert.Equal(t, "LHR-JFK", code)

	_, err = a.RouteCode("JFK", "LHR")
	assert.True(t, errors.Is(err, errors.ErrorTypeInternal))

	_, err = a.RouteCode("SIN", "SIN")
	assert.Error(t, err)
}
