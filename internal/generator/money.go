package generator

import (
	"fmt"
	"math"
)

// Money is an amount in integer cents.
type Money int64

// FromDollars rounds a dollar amount to the nearest cent.
func FromDollars(d float64) Money {
	return Money(math.Round(d * 100))
}

// Percent returns pct percent of m, rounded half up to the cent.
func (m Money) Percent(pct int64) Money {
	return Money((int64(m)*pct + 50) / 100)
}

func (m Money) Dollars() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Split divides m into n shares that sum to m exactly. The remainder cents
// go to the first share.
func (m Money) Split(n int) []Money {
	if n <= 0 {
		return nil
	}
	shares := make([]Money, n)
	each := m / Money(n)
	for i := range shares {
		shares[i] = each
	}
	shares[0] += m - each*Money(n)
	return shares
}
