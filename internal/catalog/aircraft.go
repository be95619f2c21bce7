package catalog

type AircraftCategory string

const (
	CategoryRegional   AircraftCategory = "Regional"
	CategoryNarrowBody AircraftCategory = "Narrow-body"
	CategoryWideBody   AircraftCategory = "Wide-body"
)

// AircraftType describes a seat configuration. Capacity is never stored;
// it is always the sum of the cabin seat counts.
type AircraftType struct {
	Code          string
	Manufacturer  string
	Model         string
	Category      AircraftCategory
	EconomySeats  int
	BusinessSeats int
	FirstSeats    int
	RangeKm       int
	CruiseKmh     int
}

func (a AircraftType) Capacity() int {
	return a.EconomySeats + a.BusinessSeats + a.FirstSeats
}

var aircraftTypes = []AircraftType{
	{"A220", "Airbus", "A220-300", CategoryNarrowBody, 120, 12, 0, 6300, 829},
	{"A319", "Airbus", "A319neo", CategoryNarrowBody, 120, 12, 0, 6850, 828},
	{"A320", "Airbus", "A320neo", CategoryNarrowBody, 150, 24, 0, 6300, 833},
	{"A321", "Airbus", "A321neo", CategoryNarrowBody, 180, 20, 0, 7400, 833},
	{"A21X", "Airbus", "A321XLR", CategoryNarrowBody, 170, 14, 0, 8700, 833},
	{"A332", "Airbus", "A330-200", CategoryWideBody, 210, 36, 0, 13450, 871},
	{"A339", "Airbus", "A330-900neo", CategoryWideBody, 250, 30, 0, 13300, 871},
	{"A359", "Airbus", "A350-900", CategoryWideBody, 253, 40, 8, 15000, 903},
	{"A35K", "Airbus", "A350-1000", CategoryWideBody, 295, 46, 8, 16100, 903},
	{"A388", "Airbus", "A380-800", CategoryWideBody, 399, 76, 14, 15200, 903},
	{"B737", "Boeing", "737-800", CategoryNarrowBody, 150, 16, 0, 5400, 842},
	{"B38M", "Boeing", "737 MAX 8", CategoryNarrowBody, 162, 16, 0, 6570, 839},
	{"B39M", "Boeing", "737 MAX 9", CategoryNarrowBody, 173, 20, 0, 6570, 839},
	{"B752", "Boeing", "757-200", CategoryNarrowBody, 160, 16, 0, 7250, 850},
	{"B763", "Boeing", "767-300ER", CategoryWideBody, 190, 30, 0, 11090, 851},
	{"B772", "Boeing", "777-200ER", CategoryWideBody, 260, 40, 8, 13080, 892},
	{"B77W", "Boeing", "777-300ER", CategoryWideBody, 306, 42, 8, 13650, 892},
	{"B788", "Boeing", "787-8 Dreamliner", CategoryWideBody, 210, 28, 0, 13530, 903},
	{"B789", "Boeing", "787-9 Dreamliner", CategoryWideBody, 236, 48, 6, 14010, 903},
	{"B78X", "Boeing", "787-10 Dreamliner", CategoryWideBody, 282, 44, 0, 11910, 903},
	{"E175", "Embraer", "E175", CategoryRegional, 64, 12, 0, 3700, 829},
	{"E195", "Embraer", "E195-E2", CategoryRegional, 120, 12, 0, 4800, 833},
	{"CRJ9", "Bombardier", "CRJ900", CategoryRegional, 64, 12, 0, 2950, 871},
	{"AT76", "ATR", "ATR 72-600", CategoryRegional, 70, 0, 0, 1500, 510},
	{"DH8D", "De Havilland", "Dash 8-400", CategoryRegional, 78, 0, 0, 2000, 667},
}

// Aircraft returns a fresh copy of the aircraft type catalog.
func Aircraft() []AircraftType {
	out := make([]AircraftType, len(aircraftTypes))
	copy(out, aircraftTypes)
	return out
}
