package generator

import (
	"fmt"
	"time"
)

const slotMinutes = 15

type monthDay struct {
	month time.Month
	day   int
}

var holidays = map[monthDay]string{
	{time.January, 1}:   "New Year's Day",
	{time.February, 14}: "Valentine's Day",
	{time.July, 4}:      "Independence Day",
	{time.October, 31}:  "Halloween",
	{time.December, 24}: "Christmas Eve",
	{time.December, 25}: "Christmas Day",
	{time.December, 31}: "New Year's Eve",
}

// DateID encodes a calendar day as YYYYMMDD.
func DateID(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// TimeID encodes the 15-minute slot containing t as HHMM.
func TimeID(t time.Time) int {
	return t.Hour()*100 + (t.Minute()/slotMinutes)*slotMinutes
}

func season(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "Winter"
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Summer"
	default:
		return "Fall"
	}
}

// generateDates emits one row per calendar day in the window. No randomness.
func generateDates(cfg Config) []Date {
	dates := make([]Date, 0, cfg.Days())
	for d := cfg.StartDate; !d.After(cfg.EndDate); d = d.AddDate(0, 0, 1) {
		weekday := int(d.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		_, week := d.ISOWeek()

		row := Date{
			DateID:     DateID(d),
			FullDate:   d,
			Year:       d.Year(),
			Quarter:    (int(d.Month())-1)/3 + 1,
			Month:      int(d.Month()),
			MonthName:  d.Month().String(),
			Day:        d.Day(),
			DayOfWeek:  weekday,
			DayName:    d.Weekday().String(),
			WeekOfYear: week,
			IsWeekend:  weekday >= 6,
			Season:     season(d.Month()),
		}
		if name, ok := holidays[monthDay{d.Month(), d.Day()}]; ok {
			row.IsHoliday = true
			row.HolidayName = ptr(name)
		}
		dates = append(dates, row)
	}
	return dates
}

func periodOfDay(hour int) string {
	switch {
	case hour < 6:
		return "Night"
	case hour < 12:
		return "Morning"
	case hour < 17:
		return "Afternoon"
	case hour < 21:
		return "Evening"
	default:
		return "Night"
	}
}

// generateTimes emits the 96 quarter-hour slots of a day. No randomness.
func generateTimes() []Time {
	times := make([]Time, 0, 24*60/slotMinutes)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += slotMinutes {
			times = append(times, Time{
				TimeID:          hour*100 + minute,
				TimeLabel:       fmt.Sprintf("%02d:%02d", hour, minute),
				Hour:            hour,
				Minute:          minute,
				PeriodOfDay:     periodOfDay(hour),
				IsBusinessHours: hour >= 9 && hour < 17,
				IsPeakHour:      (hour >= 6 && hour < 9) || (hour >= 16 && hour < 19),
			})
		}
	}
	return times
}
