package generator

var cabinFareMultiplier = map[CabinClass]float64{
	CabinEconomy:  1.0,
	CabinBusiness: 3.0,
	CabinFirst:    5.5,
}

var cabinMilesMultiplier = map[CabinClass]float64{
	CabinEconomy:  1.0,
	CabinBusiness: 1.5,
	CabinFirst:    2.0,
}

const lowCostDiscount = 0.75

// BaseFareDollars is the one-way per-seat fare before demand adjustment.
func BaseFareDollars(distanceKm float64, cabin CabinClass, lowCost bool) float64 {
	fare := (50 + 0.11*distanceKm) * cabinFareMultiplier[cabin]
	if lowCost {
		fare *= lowCostDiscount
	}
	return fare
}

// BaseFare is BaseFareDollars rounded to the cent.
func BaseFare(distanceKm float64, cabin CabinClass, lowCost bool) Money {
	return FromDollars(BaseFareDollars(distanceKm, cabin, lowCost))
}

// FlightRevenue is the sum over cabins of seats sold times the cabin fare.
func FlightRevenue(f *Flight, lowCost bool) Money {
	var total Money
	for _, cabin := range Cabins {
		total += Money(f.SeatsSold(cabin)) * BaseFare(f.DistanceKm, cabin, lowCost)
	}
	return total
}

const (
	taxPercent = 12
	feePercent = 5
)

// PriceBooking derives taxes, fees and total from the base fare.
func PriceBooking(base Money) (taxes, fees, total Money) {
	taxes = base.Percent(taxPercent)
	fees = base.Percent(feePercent)
	return taxes, fees, base + taxes + fees
}
