package analytics

import (
	"context"

	"airline-warehouse/internal/generator"
)

type WindowBucket struct {
	Label        string  `json:"label"`
	Bookings     int     `json:"bookings"`
	AvgFare      float64 `json:"avg_fare"`
	TotalRevenue float64 `json:"total_revenue"`
}

type Revenue struct {
	RunID            string         `json:"run_id"`
	TotalRevenue     float64        `json:"total_revenue"`
	AvgBookingValue  float64        `json:"avg_booking_value"`
	ConversionRate   float64        `json:"conversion_rate"`
	AvgBookingWindow float64        `json:"avg_booking_window_days"`
	ByCabin          []Amount       `json:"by_cabin"`
	ByChannel        []Amount       `json:"by_channel"`
	BookingWindows   []WindowBucket `json:"booking_windows"`
}

// bookingWindows are upper-inclusive day bounds; the last bucket is open.
var bookingWindows = []struct {
	label string
	upTo  int
}{
	{"0-7 days", 7},
	{"7-14 days", 14},
	{"14-30 days", 30},
	{"30-60 days", 60},
	{"60+ days", -1},
}

func windowIndex(days int) int {
	for i, w := range bookingWindows {
		if w.upTo < 0 || days <= w.upTo {
			return i
		}
	}
	return len(bookingWindows) - 1
}

// Revenue breaks down Completed booking revenue. Conversion is Completed
// bookings over all bookings.
func (s *Service) Revenue(ctx context.Context) (*Revenue, error) {
	ds, _, err := s.current()
	if err != nil {
		return nil, err
	}
	r := cached(ctx, s, cacheKey(ds, "revenue"), func() Revenue {
		return buildRevenue(ds)
	})
	return &r, nil
}

func buildRevenue(ds *generator.Dataset) Revenue {
	r := Revenue{RunID: ds.RunID.String()}

	byCabin := make(map[string]generator.Money)
	byChannel := make(map[string]generator.Money)
	var cabinOrder, channelOrder []string
	buckets := make([]struct {
		count int
		sum   generator.Money
	}, len(bookingWindows))

	var total generator.Money
	completed, days := 0, 0
	for i := range ds.Bookings {
		b := &ds.Bookings[i]
		if b.Status != generator.BookingCompleted {
			continue
		}
		completed++
		total += b.TotalAmount
		days += b.DaysBeforeDeparture

		cabin := string(b.CabinClass)
		if _, ok := byCabin[cabin]; !ok {
			cabinOrder = append(cabinOrder, cabin)
		}
		byCabin[cabin] += b.TotalAmount

		if _, ok := byChannel[b.BookingChannel]; !ok {
			channelOrder = append(channelOrder, b.BookingChannel)
		}
		byChannel[b.BookingChannel] += b.TotalAmount

		w := windowIndex(b.DaysBeforeDeparture)
		buckets[w].count++
		buckets[w].sum += b.TotalAmount
	}

	r.TotalRevenue = total.Dollars()
	r.AvgBookingValue = round(average(total.Dollars(), completed), 2)
	r.ConversionRate = ratio(completed, len(ds.Bookings))
	r.AvgBookingWindow = round(average(float64(days), completed), 0)
	r.ByCabin = amountsDesc(cabinOrder, byCabin)
	r.ByChannel = amountsDesc(channelOrder, byChannel)

	for i, w := range bookingWindows {
		r.BookingWindows = append(r.BookingWindows, WindowBucket{
			Label:        w.label,
			Bookings:     buckets[i].count,
			AvgFare:      round(average(buckets[i].sum.Dollars(), buckets[i].count), 2),
			TotalRevenue: buckets[i].sum.Dollars(),
		})
	}
	return r
}

func amountsDesc(order []string, sums map[string]generator.Money) []Amount {
	c := newCounter()
	for _, label := range order {
		c.add(label, int(sums[label]))
	}
	out := []Amount{}
	for _, entry := range c.top(0) {
		out = append(out, Amount{Label: entry.Label, Amount: generator.Money(entry.Count).Dollars()})
	}
	return out
}
