package catalog

// Location is a customer home city.
type Location struct {
	Country string
	City    string
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Carlos", "Maria", "Luis", "Ana", "Pierre", "Camille",
	"Hans", "Anna", "Marco", "Giulia", "Ahmed", "Fatima", "Raj", "Priya",
	"Wei", "Mei", "Hiroshi", "Yuki", "Min-jun", "Seo-yeon", "Liam", "Olivia",
	"Noah", "Emma", "Mateo", "Sofia", "Lucas", "Isabella", "Oliver", "Amelia",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Taylor",
	"Thomas", "Moore", "Martin", "Lee", "Thompson", "White", "Harris", "Clark",
	"Dubois", "Bernard", "Muller", "Schmidt", "Rossi", "Russo", "Khan", "Ali",
	"Patel", "Sharma", "Wang", "Li", "Zhang", "Sato", "Suzuki", "Kim",
	"Park", "Silva", "Santos", "Murphy", "O'Brien", "Jensen", "Nielsen", "Cohen",
}

var customerLocations = []Location{
	{"USA", "New York"}, {"USA", "Los Angeles"}, {"USA", "Chicago"}, {"USA", "Houston"},
	{"USA", "Atlanta"}, {"USA", "Seattle"}, {"USA", "Miami"}, {"USA", "Boston"},
	{"Canada", "Toronto"}, {"Canada", "Vancouver"}, {"Canada", "Montreal"},
	{"Mexico", "Mexico City"}, {"Mexico", "Guadalajara"},
	{"Brazil", "Sao Paulo"}, {"Brazil", "Rio de Janeiro"}, {"Colombia", "Bogota"}, {"Chile", "Santiago"},
	{"United Kingdom", "London"}, {"United Kingdom", "Manchester"}, {"Ireland", "Dublin"},
	{"France", "Paris"}, {"France", "Lyon"}, {"Germany", "Berlin"}, {"Germany", "Munich"},
	{"Netherlands", "Amsterdam"}, {"Spain", "Madrid"}, {"Spain", "Barcelona"}, {"Italy", "Rome"},
	{"Italy", "Milan"}, {"Switzerland", "Zurich"}, {"Turkey", "Istanbul"}, {"Denmark", "Copenhagen"},
	{"United Arab Emirates", "Dubai"}, {"Qatar", "Doha"}, {"South Africa", "Johannesburg"},
	{"Egypt", "Cairo"}, {"India", "Delhi"}, {"India", "Mumbai"}, {"India", "Bangalore"},
	{"Singapore", "Singapore"}, {"Thailand", "Bangkok"}, {"China", "Beijing"}, {"China", "Shanghai"},
	{"Japan", "Tokyo"}, {"Japan", "Osaka"}, {"South Korea", "Seoul"},
	{"Australia", "Sydney"}, {"Australia", "Melbourne"}, {"New Zealand", "Auckland"},
}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "icloud.com", "proton.me", "mail.com"}

func FirstNames() []string { return append([]string(nil), firstNames...) }

func LastNames() []string { return append([]string(nil), lastNames...) }

func CustomerLocations() []Location { return append([]Location(nil), customerLocations...) }

func EmailDomains() []string { return append([]string(nil), emailDomains...) }
