package catalog

type HubType string

const (
	HubTypeMajor    HubType = "Major Hub"
	HubTypeHub      HubType = "Hub"
	HubTypeRegional HubType = "Regional"
	HubTypeOther    HubType = "Other"
)

type Airport struct {
	IATA      string
	Name      string
	City      string
	Country   string
	Latitude  float64
	Longitude float64
	Timezone  string
	HubType   HubType
}

var airports = []Airport{
	{"ATL", "Hartsfield-Jackson Atlanta International", "Atlanta", "USA", 33.6407, -84.4277, "America/New_York", HubTypeMajor},
	{"LAX", "Los Angeles International", "Los Angeles", "USA", 33.9416, -118.4085, "America/Los_Angeles", HubTypeMajor},
	{"ORD", "O'Hare International", "Chicago", "USA", 41.9742, -87.9073, "America/Chicago", HubTypeMajor},
	{"DFW", "Dallas/Fort Worth International", "Dallas", "USA", 32.8998, -97.0403, "America/Chicago", HubTypeMajor},
	{"DEN", "Denver International", "Denver", "USA", 39.8561, -104.6737, "America/Denver", HubTypeHub},
	{"JFK", "John F. Kennedy International", "New York", "USA", 40.6413, -73.7781, "America/New_York", HubTypeMajor},
	{"SFO", "San Francisco International", "San Francisco", "USA", 37.6213, -122.3790, "America/Los_Angeles", HubTypeHub},
	{"SEA", "Seattle-Tacoma International", "Seattle", "USA", 47.4502, -122.3088, "America/Los_Angeles", HubTypeHub},
	{"MIA", "Miami International", "Miami", "USA", 25.7959, -80.2870, "America/New_York", HubTypeHub},
	{"BOS", "Logan International", "Boston", "USA", 42.3656, -71.0096, "America/New_York", HubTypeHub},
	{"PDX", "Portland International", "Portland", "USA", 45.5898, -122.5951, "America/Los_Angeles", HubTypeRegional},
	{"AUS", "Austin-Bergstrom International", "Austin", "USA", 30.1975, -97.6664, "America/Chicago", HubTypeRegional},
	{"YYZ", "Toronto Pearson International", "Toronto", "Canada", 43.6777, -79.6248, "America/Toronto", HubTypeMajor},
	{"YVR", "Vancouver International", "Vancouver", "Canada", 49.1967, -123.1815, "America/Vancouver", HubTypeHub},
	{"MEX", "Mexico City International", "Mexico City", "Mexico", 19.4361, -99.0719, "America/Mexico_City", HubTypeMajor},
	{"CUN", "Cancun International", "Cancun", "Mexico", 21.0365, -86.8771, "America/Cancun", HubTypeRegional},
	{"GRU", "Sao Paulo/Guarulhos International", "Sao Paulo", "Brazil", -23.4356, -46.4731, "America/Sao_Paulo", HubTypeMajor},
	{"BOG", "El Dorado International", "Bogota", "Colombia", 4.7016, -74.1469, "America/Bogota", HubTypeHub},
	{"SCL", "Arturo Merino Benitez International", "Santiago", "Chile", -33.3930, -70.7858, "America/Santiago", HubTypeHub},
	{"LHR", "Heathrow", "London", "United Kingdom", 51.4700, -0.4543, "Europe/London", HubTypeMajor},
	{"LGW", "Gatwick", "London", "United Kingdom", 51.1537, -0.1821, "Europe/London", HubTypeHub},
	{"MAN", "Manchester", "Manchester", "United Kingdom", 53.3537, -2.2750, "Europe/London", HubTypeRegional},
	{"DUB", "Dublin", "Dublin", "Ireland", 53.4264, -6.2499, "Europe/Dublin", HubTypeHub},
	{"CDG", "Charles de Gaulle", "Paris", "France", 49.0097, 2.5479, "Europe/Paris", HubTypeMajor},
	{"NCE", "Nice Cote d'Azur", "Nice", "France", 43.6584, 7.2159, "Europe/Paris", HubTypeRegional},
	{"FRA", "Frankfurt am Main", "Frankfurt", "Germany", 50.0379, 8.5622, "Europe/Berlin", HubTypeMajor},
	{"MUC", "Munich", "Munich", "Germany", 48.3537, 11.7750, "Europe/Berlin", HubTypeHub},
	{"AMS", "Amsterdam Schiphol", "Amsterdam", "Netherlands", 52.3105, 4.7683, "Europe/Amsterdam", HubTypeMajor},
	{"MAD", "Adolfo Suarez Madrid-Barajas", "Madrid", "Spain", 40.4983, -3.5676, "Europe/Madrid", HubTypeMajor},
	{"BCN", "Josep Tarradellas Barcelona-El Prat", "Barcelona", "Spain", 41.2974, 2.0833, "Europe/Madrid", HubTypeHub},
	{"FCO", "Leonardo da Vinci-Fiumicino", "Rome", "Italy", 41.8003, 12.2389, "Europe/Rome", HubTypeHub},
	{"ZRH", "Zurich", "Zurich", "Switzerland", 47.4582, 8.5555, "Europe/Zurich", HubTypeHub},
	{"IST", "Istanbul", "Istanbul", "Turkey", 41.2753, 28.7519, "Europe/Istanbul", HubTypeMajor},
	{"CPH", "Copenhagen Kastrup", "Copenhagen", "Denmark", 55.6180, 12.6508, "Europe/Copenhagen", HubTypeHub},
	{"DOH", "Hamad International", "Doha", "Qatar", 25.2731, 51.6081, "Asia/Qatar", HubTypeMajor},
	{"DXB", "Dubai International", "Dubai", "United Arab Emirates", 25.2532, 55.3657, "Asia/Dubai", HubTypeMajor},
	{"AUH", "Zayed International", "Abu Dhabi", "United Arab Emirates", 24.4330, 54.6511, "Asia/Dubai", HubTypeHub},
	{"JNB", "O. R. Tambo International", "Johannesburg", "South Africa", -26.1367, 28.2411, "Africa/Johannesburg", HubTypeHub},
	{"CAI", "Cairo International", "Cairo", "Egypt", 30.1219, 31.4056, "Africa/Cairo", HubTypeHub},
	{"ADD", "Addis Ababa Bole International", "Addis Ababa", "Ethiopia", 8.9779, 38.7993, "Africa/Addis_Ababa", HubTypeHub},
	{"DEL", "Indira Gandhi International", "Delhi", "India", 28.5562, 77.1000, "Asia/Kolkata", HubTypeMajor},
	{"BOM", "Chhatrapati Shivaji Maharaj International", "Mumbai", "India", 19.0896, 72.8656, "Asia/Kolkata", HubTypeHub},
	{"SIN", "Singapore Changi", "Singapore", "Singapore", 1.3644, 103.9915, "Asia/Singapore", HubTypeMajor},
	{"BKK", "Suvarnabhumi", "Bangkok", "Thailand", 13.6900, 100.7501, "Asia/Bangkok", HubTypeHub},
	{"KUL", "Kuala Lumpur International", "Kuala Lumpur", "Malaysia", 2.7456, 101.7099, "Asia/Kuala_Lumpur", HubTypeHub},
	{"HKG", "Hong Kong International", "Hong Kong", "China", 22.3080, 113.9185, "Asia/Hong_Kong", HubTypeMajor},
	{"PEK", "Beijing Capital International", "Beijing", "China", 40.0799, 116.6031, "Asia/Shanghai", HubTypeMajor},
	{"PVG", "Shanghai Pudong International", "Shanghai", "China", 31.1443, 121.8083, "Asia/Shanghai", HubTypeHub},
	{"HND", "Tokyo Haneda", "Tokyo", "Japan", 35.5494, 139.7798, "Asia/Tokyo", HubTypeMajor},
	{"KIX", "Kansai International", "Osaka", "Japan", 34.4320, 135.2304, "Asia/Tokyo", HubTypeRegional},
	{"ICN", "Incheon International", "Seoul", "South Korea", 37.4602, 126.4407, "Asia/Seoul", HubTypeMajor},
	{"SYD", "Sydney Kingsford Smith", "Sydney", "Australia", -33.9399, 151.1753, "Australia/Sydney", HubTypeMajor},
	{"MEL", "Melbourne", "Melbourne", "Australia", -37.6690, 144.8410, "Australia/Melbourne", HubTypeHub},
	{"AKL", "Auckland", "Auckland", "New Zealand", -37.0082, 174.7850, "Pacific/Auckland", HubTypeHub},
	{"HNL", "Daniel K. Inouye International", "Honolulu", "USA", 21.3187, -157.9225, "Pacific/Honolulu", HubTypeOther},
	{"KEF", "Keflavik International", "Reykjavik", "Iceland", 63.9850, -22.6056, "Atlantic/Reykjavik", HubTypeOther},
}

// Airports returns a fresh copy of the airport catalog.
func Airports() []Airport {
	out := make([]Airport, len(airports))
	copy(out, airports)
	return out
}
