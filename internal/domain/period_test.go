package domain

import (
	"testing"
	"time"
)

func TestPeriodBounds(t *testing.T) {
	start, end := PeriodBounds(time.March, 2024)
	if got := start.Format("2006-01-02"); got != "2024-02-20" {
		t.Fatalf("start = %s, want 2024-02-20", got)
	}
	if got := end.Format("2006-01-02"); got != "2024-03-19" {
		t.Fatalf("end = %s, want 2024-03-19", got)
	}
}

func TestPeriodBoundsJanuaryWrapsYear(t *testing.T) {
	start, end := PeriodBounds(time.January, 2024)
	if got := start.Format("2006-01-02"); got != "2023-12-20" {
		t.Fatalf("start = %s, want 2023-12-20", got)
	}
	if got := end.Format("2006-01-02"); got != "2024-01-19" {
		t.Fatalf("end = %s, want 2024-01-19", got)
	}
}

func TestInPeriodBoundaries(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2024-02-19", false}, // day before the window opens
		{"2024-02-20", true},  // first day
		{"2024-03-01", true},
		{"2024-03-19", true},  // last day
		{"2024-03-20", false}, // belongs to the April period
		{"garbage", false},
	}
	for _, c := range cases {
		if got := InPeriod(c.date, time.March, 2024); got != c.want {
			t.Errorf("InPeriod(%q, March, 2024) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestPeriodFor(t *testing.T) {
	cases := []struct {
		date      string
		wantMonth time.Month
		wantYear  int
	}{
		{"2024-03-19", time.March, 2024},
		{"2024-03-20", time.April, 2024},
		{"2024-12-20", time.January, 2025},
		{"2024-01-05", time.January, 2024},
	}
	for _, c := range cases {
		d, ok := ParseDate(c.date)
		if !ok {
			t.Fatalf("parse %q failed", c.date)
		}
		m, y := PeriodFor(d)
		if m != c.wantMonth || y != c.wantYear {
			t.Errorf("PeriodFor(%s) = (%v, %d), want (%v, %d)", c.date, m, y, c.wantMonth, c.wantYear)
		}
	}
}

func TestEveryDateMapsBackIntoItsPeriod(t *testing.T) {
	for _, date := range DatesInPeriod(time.March, 2024) {
		d, ok := ParseDate(date)
		if !ok {
			t.Fatalf("parse %q failed", date)
		}
		if m, y := PeriodFor(d); m != time.March || y != 2024 {
			t.Errorf("%s maps to (%v, %d)", date, m, y)
		}
	}
}

func TestDatesInPeriodCoversWholeWindow(t *testing.T) {
	dates := DatesInPeriod(time.March, 2024)
	if len(dates) != 29 { // Feb 20 - Mar 19, 2024 is a leap year
		t.Fatalf("got %d dates, want 29", len(dates))
	}
	if dates[0] != "2024-02-20" || dates[len(dates)-1] != "2024-03-19" {
		t.Fatalf("window = %s .. %s", dates[0], dates[len(dates)-1])
	}
}

func TestInMonth(t *testing.T) {
	if !InMonth("2024-03-01", time.March, 2024) {
		t.Fatal("2024-03-01 should be in March 2024")
	}
	if InMonth("2024-02-29", time.March, 2024) {
		t.Fatal("2024-02-29 should not be in March 2024")
	}
}

func TestPeriodLabel(t *testing.T) {
	if got := PeriodLabel(time.March, 2024); got != "2024-02-20 - 2024-03-19" {
		t.Fatalf("label = %q", got)
	}
}
