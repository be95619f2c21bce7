package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "12.05", Money(1205).String())
	assert.Equal(t, "-0.50", Money(-50).String())
	assert.Equal(t, Money(1999), FromDollars(19.99))
}

func TestMoneyPercentRoundsHalfUp(t *testing.T) {
	assert.Equal(t, Money(12), Money(100).Percent(12))
	assert.Equal(t, Money(1), Money(10).Percent(5))
	assert.Equal(t, Money(0), Money(9).Percent(5))
}

func TestMoneySplitKeepsEveryCent(t *testing.T) {
	shares := Money(1001).Split(3)
	assert.Equal(t, []Money{335, 333, 333}, shares)

	var sum Money
	for _, s := range shares {
		sum += s
	}
	assert.Equal(t, Money(1001), sum)
	assert.Nil(t, Money(5).Split(0))
}

func TestPriceBooking(t *testing.T) {
	taxes, fees, total := PriceBooking(Money(25_099))

	assert.Equal(t, Money(3012), taxes)
	assert.Equal(t, Money(1255), fees)
	assert.Equal(t, Money(25_099)+taxes+fees, total)
}

func TestBaseFare(t *testing.T) {
	economy := BaseFare(1000, CabinEconomy, false)
	assert.Equal(t, Money(16_000), economy)
	assert.Equal(t, Money(48_000), BaseFare(1000, CabinBusiness, false))
	assert.Equal(t, Money(88_000), BaseFare(1000, CabinFirst, false))
	assert.Equal(t, Money(12_000), BaseFare(1000, CabinEconomy, true))
}
