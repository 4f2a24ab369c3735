package domain

import (
	"sort"
	"strings"
	"time"
)

// Stats is a pure sum-reduction over a trip collection. Merging partial
// Stats in any order yields the same totals, so per-day, per-driver and
// per-period rollups all reconcile.
type Stats struct {
	TripCount    int     `json:"tripCount"`
	Revenue      float64 `json:"revenue"` // price + basket
	Wage         float64 `json:"wage"`
	Fuel         float64 `json:"fuel"`
	Maintenance  float64 `json:"maintenance"`
	BasketShare  float64 `json:"basketShare"`
	StaffAdvance float64 `json:"staffAdvance"`
	Profit       float64 `json:"profit"`
}

func (s *Stats) add(t Trip) {
	s.TripCount++
	s.Revenue += t.Price + t.Basket
	s.Wage += t.Wage
	s.Fuel += t.Fuel
	s.Maintenance += t.Maintenance
	s.BasketShare += t.BasketShare
	s.StaffAdvance += t.StaffShare
	s.Profit += t.Profit
}

// Merge combines two partial aggregates.
func (s Stats) Merge(o Stats) Stats {
	s.TripCount += o.TripCount
	s.Revenue += o.Revenue
	s.Wage += o.Wage
	s.Fuel += o.Fuel
	s.Maintenance += o.Maintenance
	s.BasketShare += o.BasketShare
	s.StaffAdvance += o.StaffAdvance
	s.Profit += o.Profit
	return s
}

// RemainingPay applies the pay formula to this aggregate: wages plus basket
// share plus the trip-presence-gated housing allowance, minus advances and
// any externally supplied deductions.
func (s Stats) RemainingPay(otherDeductions float64) float64 {
	return RemainingPay(s.Wage, s.BasketShare, s.StaffAdvance, otherDeductions, s.TripCount)
}

// Aggregate reduces an arbitrary (possibly empty) trip collection.
func Aggregate(trips []Trip) Stats {
	var s Stats
	for _, t := range trips {
		s.add(t)
	}
	return s
}

// FilterMonth keeps trips dated inside a calendar month.
func FilterMonth(trips []Trip, month time.Month, year int) []Trip {
	out := []Trip{}
	for _, t := range trips {
		if InMonth(t.Date, month, year) {
			out = append(out, t)
		}
	}
	return out
}

// FilterPeriod keeps trips dated inside the 20th-19th pay period.
func FilterPeriod(trips []Trip, month time.Month, year int) []Trip {
	out := []Trip{}
	for _, t := range trips {
		if InPeriod(t.Date, month, year) {
			out = append(out, t)
		}
	}
	return out
}

// FilterDriver keeps trips for one driver. Comparison trims whitespace but
// stays case-sensitive: a typo is a different driver.
func FilterDriver(trips []Trip, name string) []Trip {
	want := strings.TrimSpace(name)
	out := []Trip{}
	for _, t := range trips {
		if strings.TrimSpace(t.DriverName) == want {
			out = append(out, t)
		}
	}
	return out
}

// DriverSummary is one driver's aggregate within a period.
type DriverSummary struct {
	DriverName string  `json:"driverName"`
	Stats      Stats   `json:"stats"`
	NetPay     float64 `json:"netPay"`
}

// ByDriver groups trips by trimmed driver name and aggregates each group,
// sorted by name for stable output. Unnamed trips group under "".
func ByDriver(trips []Trip) []DriverSummary {
	groups := map[string][]Trip{}
	for _, t := range trips {
		key := strings.TrimSpace(t.DriverName)
		groups[key] = append(groups[key], t)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]DriverSummary, 0, len(names))
	for _, name := range names {
		s := Aggregate(groups[name])
		out = append(out, DriverSummary{
			DriverName: name,
			Stats:      s,
			NetPay:     s.RemainingPay(0),
		})
	}
	return out
}

// DayRow is one calendar day of the monthly table. Days without trips carry
// an all-zero Stats, never a gap.
type DayRow struct {
	Date    string `json:"date"`
	Drivers string `json:"drivers"` // comma-joined when several trips share the day
	Routes  string `json:"routes"`
	Stats   Stats  `json:"stats"`
}

// DailyBreakdown rolls the pay period up day by day, one row per calendar
// date in the window.
func DailyBreakdown(trips []Trip, month time.Month, year int) []DayRow {
	byDate := map[string][]Trip{}
	for _, t := range trips {
		byDate[t.Date] = append(byDate[t.Date], t)
	}

	dates := DatesInPeriod(month, year)
	out := make([]DayRow, 0, len(dates))
	for _, date := range dates {
		day := byDate[date]
		row := DayRow{Date: date, Stats: Aggregate(day)}

		drivers := make([]string, 0, len(day))
		routes := make([]string, 0, len(day))
		for _, t := range day {
			if n := strings.TrimSpace(t.DriverName); n != "" {
				drivers = append(drivers, n)
			}
			if r := strings.TrimSpace(t.Route); r != "" {
				routes = append(routes, r)
			}
		}
		row.Drivers = strings.Join(drivers, ", ")
		row.Routes = strings.Join(routes, ", ")
		out = append(out, row)
	}
	return out
}
