package domain

import "time"

const layoutDate = "2006-01-02"

// HousingAllowance is the flat monthly allowance paid to any driver with at
// least one trip in the pay period.
const HousingAllowance = 1000.0

// Today returns the current local calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().In(time.Local).Format(layoutDate)
}

// PeriodBounds returns the pay-period window for a given (month, year):
// the 20th of the previous month through the 19th of the given month,
// both inclusive. time.Date normalizes month-1 across year boundaries.
func PeriodBounds(month time.Month, year int) (start, end time.Time) {
	start = time.Date(year, month-1, 20, 0, 0, 0, 0, time.Local)
	end = time.Date(year, month, 19, 0, 0, 0, 0, time.Local)
	return start, end
}

// PeriodFor maps a calendar date to the pay period it belongs to. Days 1-19
// close the period named after their own month; days 20+ open the period
// named after the next month.
func PeriodFor(t time.Time) (time.Month, int) {
	if t.Day() >= 20 {
		t = time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.Local)
	}
	return t.Month(), t.Year()
}

// CurrentPeriod returns the pay period containing today.
func CurrentPeriod() (time.Month, int) {
	return PeriodFor(time.Now().In(time.Local))
}

// ParseDate parses a canonical YYYY-MM-DD string in the local timezone.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(layoutDate, s, time.Local)
	return t, err == nil
}

// InPeriod reports whether a canonical date string falls inside the
// pay-period window for (month, year).
func InPeriod(date string, month time.Month, year int) bool {
	t, ok := ParseDate(date)
	if !ok {
		return false
	}
	start, end := PeriodBounds(month, year)
	return !t.Before(start) && !t.After(end)
}

// InMonth reports whether a canonical date string falls inside the calendar
// month (month, year).
func InMonth(date string, month time.Month, year int) bool {
	t, ok := ParseDate(date)
	if !ok {
		return false
	}
	return t.Month() == month && t.Year() == year
}

// DatesInPeriod lists every calendar date of the pay period as canonical
// strings, in ascending order. The monthly table renders each of them
// unconditionally, trips or not.
func DatesInPeriod(month time.Month, year int) []string {
	start, end := PeriodBounds(month, year)
	out := make([]string, 0, 31)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(layoutDate))
	}
	return out
}

// PeriodLabel renders the window for display, e.g. "2024-02-20 - 2024-03-19".
func PeriodLabel(month time.Month, year int) string {
	start, end := PeriodBounds(month, year)
	return start.Format(layoutDate) + " - " + end.Format(layoutDate)
}
