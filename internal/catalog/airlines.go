package catalog

type Alliance string

const (
	AllianceNone     Alliance = ""
	AllianceOneworld Alliance = "Oneworld"
	AllianceStar     Alliance = "Star Alliance"
	AllianceSkyTeam  Alliance = "SkyTeam"
)

type Airline struct {
	Code        string
	Name        string
	Country     string
	Alliance    Alliance
	HubIATA     string
	LowCost     bool
	FoundedYear int
}

var airlines = []Airline{
	{"AA", "American Airlines", "USA", AllianceOneworld, "DFW", false, 1926},
	{"DL", "Delta Air Lines", "USA", AllianceSkyTeam, "ATL", false, 1924},
	{"UA", "United Airlines", "USA", AllianceStar, "ORD", false, 1926},
	{"AS", "Alaska Airlines", "USA", AllianceOneworld, "SEA", false, 1932},
	{"B6", "JetBlue Airways", "USA", AllianceNone, "JFK", true, 1998},
	{"WN", "Southwest Airlines", "USA", AllianceNone, "DEN", true, 1967},
	{"AC", "Air Canada", "Canada", AllianceStar, "YYZ", false, 1937},
	{"AM", "Aeromexico", "Mexico", AllianceSkyTeam, "MEX", false, 1934},
	{"LA", "LATAM Airlines", "Chile", AllianceNone, "SCL", false, 1929},
	{"AV", "Avianca", "Colombia", AllianceStar, "BOG", false, 1919},
	{"BA", "British Airways", "United Kingdom", AllianceOneworld, "LHR", false, 1974},
	{"U2", "easyJet", "United Kingdom", AllianceNone, "LGW", true, 1995},
	{"FR", "Ryanair", "Ireland", AllianceNone, "DUB", true, 1984},
	{"AF", "Air France", "France", AllianceSkyTeam, "CDG", false, 1933},
	{"LH", "Lufthansa", "Germany", AllianceStar, "FRA", false, 1953},
	{"KL", "KLM Royal Dutch Airlines", "Netherlands", AllianceSkyTeam, "AMS", false, 1919},
	{"IB", "Iberia", "Spain", AllianceOneworld, "MAD", false, 1927},
	{"VY", "Vueling", "Spain", AllianceNone, "BCN", true, 2004},
	{"LX", "Swiss International Air Lines", "Switzerland", AllianceStar, "ZRH", false, 2002},
	{"TK", "Turkish Airlines", "Turkey", AllianceStar, "IST", false, 1933},
	{"QR", "Qatar Airways", "Qatar", AllianceOneworld, "DOH", false, 1993},
	{"EK", "Emirates", "United Arab Emirates", AllianceNone, "DXB", false, 1985},
	{"EY", "Etihad Airways", "United Arab Emirates", AllianceNone, "AUH", false, 2003},
	{"ET", "Ethiopian Airlines", "Ethiopia", AllianceStar, "ADD", false, 1945},
	{"AI", "Air India", "India", AllianceStar, "DEL", false, 1932},
	{"SQ", "Singapore Airlines", "Singapore", AllianceStar, "SIN", false, 1947},
	{"CX", "Cathay Pacific", "China", AllianceOneworld, "HKG", false, 1946},
	{"NH", "All Nippon Airways", "Japan", AllianceStar, "HND", false, 1952},
	{"KE", "Korean Air", "South Korea", AllianceSkyTeam, "ICN", false, 1969},
	{"QF", "Qantas", "Australia", AllianceOneworld, "SYD", false, 1920},
	{"AK", "AirAsia", "Malaysia", AllianceNone, "KUL", true, 2001},
}

// Airlines returns a fresh copy of the airline catalog.
func Airlines() []Airline {
	out := make([]Airline, len(airlines))
	copy(out, airlines)
	return out
}
