package analytics

import (
	"fmt"
	"strings"
	"time"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/errors"
)

const (
	segmentPreviewRows = 50
	topCountryCount    = 10
	frequentQuantile   = 0.75
	spendQuantile      = 0.75
)

type SegmentMetrics struct {
	Customers        int     `json:"customers"`
	AvgFlights       float64 `json:"avg_flights"`
	AvgLoyaltyPoints float64 `json:"avg_loyalty_points"`
	ActivePercent    float64 `json:"active_percent"`
}

type SegmentCustomer struct {
	CustomerCode  string `json:"customer_code"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Country       string `json:"country"`
	LoyaltyTier   string `json:"loyalty_tier"`
	TotalFlights  int    `json:"total_flights"`
	LoyaltyPoints int    `json:"loyalty_points"`
	IsActive      bool   `json:"is_active"`
}

type Segment struct {
	Query            string            `json:"query"`
	Conditions       []string          `json:"conditions"`
	Metrics          SegmentMetrics    `json:"metrics"`
	TierDistribution []Count           `json:"tier_distribution"`
	TopCountries     []Count           `json:"top_countries"`
	Preview          []SegmentCustomer `json:"preview"`
}

var segmentTiers = []generator.LoyaltyTier{
	generator.TierDiamond,
	generator.TierPlatinum,
	generator.TierGold,
	generator.TierSilver,
	generator.TierNone,
}

// Segment filters customers with a plain-English query such as "frequent
// gold flyers from Japan". Each recognised keyword narrows the segment
// further; a query with no keywords returns every customer.
func (s *Service) Segment(query string) (*Segment, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Validation("query is required")
	}
	ds, _, err := s.current()
	if err != nil {
		return nil, err
	}

	logger := s.logger.With("operation", "segment")
	seg := buildSegment(ds, query)
	logger.Debug("Segment built", "conditions", len(seg.Conditions), "customers", seg.Metrics.Customers)
	return seg, nil
}

func buildSegment(ds *generator.Dataset, query string) *Segment {
	q := strings.ToLower(query)
	customers := make([]*generator.Customer, len(ds.Customers))
	for i := range ds.Customers {
		customers[i] = &ds.Customers[i]
	}

	var conditions []string
	narrow := func(label string, keep func(c *generator.Customer) bool) {
		kept := customers[:0:0]
		for _, c := range customers {
			if keep(c) {
				kept = append(kept, c)
			}
		}
		customers = kept
		conditions = append(conditions, label)
	}

	for _, tier := range segmentTiers {
		if strings.Contains(q, strings.ToLower(string(tier))) {
			narrow("Loyalty tier: "+string(tier), func(c *generator.Customer) bool {
				return c.LoyaltyTier == tier
			})
			break
		}
	}

	if containsAny(q, "from", "in", "country") {
		for _, country := range countriesOf(customers) {
			if strings.Contains(q, strings.ToLower(country)) {
				narrow("Country: "+country, func(c *generator.Customer) bool {
					return strings.EqualFold(c.Country, country)
				})
				break
			}
		}
	}

	if containsAny(q, "frequent", "high", "many") {
		flights := make([]float64, len(customers))
		for i, c := range customers {
			flights[i] = float64(c.TotalFlights)
		}
		threshold := quantile(flights, frequentQuantile)
		narrow(fmt.Sprintf("Frequent flyers (>=%d flights)", int(threshold)), func(c *generator.Customer) bool {
			return float64(c.TotalFlights) >= threshold
		})
	}

	if containsAny(q, "inactive", "churned") {
		narrow("Status: Inactive", func(c *generator.Customer) bool { return !c.IsActive })
	}
	if strings.Contains(q, "active") && !strings.Contains(q, "inactive") {
		narrow("Status: Active", func(c *generator.Customer) bool { return c.IsActive })
	}

	switch {
	case strings.Contains(q, "economy"):
		narrow("Preferred class: Economy", prefersCabin(generator.CabinEconomy))
	case strings.Contains(q, "business"):
		narrow("Preferred class: Business", prefersCabin(generator.CabinBusiness))
	case strings.Contains(q, "first"):
		narrow("Preferred class: First", prefersCabin(generator.CabinFirst))
	case strings.Contains(q, "premium"):
		narrow("Preferred class: Premium", prefersCabin(generator.CabinBusiness, generator.CabinFirst))
	}

	asOf := ds.Config.EndDate
	if containsAny(q, "young", "millennial") {
		narrow("Age: 25-40", func(c *generator.Customer) bool {
			age := ageOn(c.DateOfBirth, asOf)
			return age >= 25 && age <= 40
		})
	}
	if strings.Contains(q, "senior") {
		narrow("Age: 65+", func(c *generator.Customer) bool {
			return ageOn(c.DateOfBirth, asOf) >= 65
		})
	}

	if strings.Contains(q, "spend") {
		spenders := topSpenders(ds.Bookings)
		narrow("High spenders (top 25%)", func(c *generator.Customer) bool {
			_, ok := spenders[c.CustomerID]
			return ok
		})
	}

	if len(conditions) == 0 {
		conditions = append(conditions, "All customers (no filters applied)")
	}

	return summarizeSegment(query, conditions, customers)
}

func summarizeSegment(query string, conditions []string, customers []*generator.Customer) *Segment {
	seg := &Segment{
		Query:      query,
		Conditions: conditions,
		Preview:    []SegmentCustomer{},
	}

	tiers := newCounter()
	countries := newCounter()
	flights, points, active := 0, 0, 0
	for i, c := range customers {
		flights += c.TotalFlights
		points += c.LoyaltyPoints
		if c.IsActive {
			active++
		}
		tiers.add(string(c.LoyaltyTier), 1)
		countries.add(c.Country, 1)

		if i < segmentPreviewRows {
			seg.Preview = append(seg.Preview, SegmentCustomer{
				CustomerCode:  c.CustomerCode,
				FirstName:     c.FirstName,
				LastName:      c.LastName,
				Email:         c.Email,
				Country:       c.Country,
				LoyaltyTier:   string(c.LoyaltyTier),
				TotalFlights:  c.TotalFlights,
				LoyaltyPoints: c.LoyaltyPoints,
				IsActive:      c.IsActive,
			})
		}
	}

	seg.Metrics = SegmentMetrics{
		Customers:        len(customers),
		AvgFlights:       round(average(float64(flights), len(customers)), 1),
		AvgLoyaltyPoints: round(average(float64(points), len(customers)), 0),
		ActivePercent:    ratio(active, len(customers)),
	}
	seg.TierDistribution = tiers.top(0)
	seg.TopCountries = countries.top(topCountryCount)
	return seg
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// countriesOf lists distinct countries in first-seen order.
func countriesOf(customers []*generator.Customer) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range customers {
		if _, ok := seen[c.Country]; ok {
			continue
		}
		seen[c.Country] = struct{}{}
		out = append(out, c.Country)
	}
	return out
}

func prefersCabin(cabins ...generator.CabinClass) func(c *generator.Customer) bool {
	return func(c *generator.Customer) bool {
		for _, cabin := range cabins {
			if c.PreferredClass == cabin {
				return true
			}
		}
		return false
	}
}

// ageOn returns completed years of age at t.
func ageOn(birth, t time.Time) int {
	age := t.Year() - birth.Year()
	if t.Month() < birth.Month() || (t.Month() == birth.Month() && t.Day() < birth.Day()) {
		age--
	}
	return age
}

// topSpenders returns customers whose Completed spend reaches the 75th
// percentile of all customers with Completed bookings.
func topSpenders(bookings []generator.Booking) map[int]struct{} {
	spend := make(map[int]generator.Money)
	var order []int
	for i := range bookings {
		b := &bookings[i]
		if b.Status != generator.BookingCompleted {
			continue
		}
		if _, ok := spend[b.CustomerID]; !ok {
			order = append(order, b.CustomerID)
		}
		spend[b.CustomerID] += b.TotalAmount
	}

	values := make([]float64, len(order))
	for i, id := range order {
		values[i] = float64(spend[id])
	}
	threshold := quantile(values, spendQuantile)

	out := make(map[int]struct{})
	for _, id := range order {
		if float64(spend[id]) >= threshold {
			out[id] = struct{}{}
		}
	}
	return out
}
