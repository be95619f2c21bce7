package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsValid(t *testing.T) {
	require.NoError(t, Validate())

	assert.GreaterOrEqual(t, len(Airports()), MinAirports)
	assert.GreaterOrEqual(t, len(Airlines()), MinAirlines)
	assert.GreaterOrEqual(t, len(Aircraft()), MinAircraft)
}

func TestCatalogReturnsCopies(t *testing.T) {
	a := Airports()
	a[0].IATA = "XXX"
	assert.NotEqual(t, "XXX", Airports()[0].IATA)

	names := FirstNames()
	names[0] = "Nobody"
	assert.NotEqual(t, "Nobody", FirstNames()[0])
}

func TestCatalogAttributeDiversity(t *testing.T) {
	hubTypes := map[HubType]bool{}
	for _, a := range Airports() {
		hubTypes[a.HubType] = true
	}
	assert.Len(t, hubTypes, 4)

	alliances := map[Alliance]bool{}
	lowCost := 0
	for _, a := range Airlines() {
		alliances[a.Alliance] = true
		if a.LowCost {
			lowCost++
		}
	}
	assert.Len(t, alliances, 4)
	assert.Positive(t, lowCost)

	categories := map[AircraftCategory]bool{}
	for _, a := range Aircraft() {
		categories[a.Category] = true
		assert.Equal(t, a.EconomySeats+a.BusinessSeats+a.FirstSeats, a.Capacity())
	}
	assert.Len(t, categories, 3)
}

func TestAirportIndex(t *testing.T) {
	idx := AirportIndex()
	all := Airports()
	for _, airline := range Airlines() {
		i, ok := idx[airline.HubIATA]
		require.True(t, ok, airline.Code)
		assert.Equal(t, airline.HubIATA, all[i].IATA)
	}
}
