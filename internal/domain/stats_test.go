package domain

import (
	"math/rand"
	"testing"
	"time"
)

func sampleTrips() []Trip {
	return []Trip{
		{ID: 1, Date: "2024-02-20", DriverName: "Somchai", Route: "BKK-CNX", Price: 5000, Fuel: 600, Wage: 1200, Maintenance: 300, Basket: 600, BasketShare: 400, StaffShare: 200, Profit: 3100},
		{ID: 2, Date: "2024-03-01", DriverName: "Anan", Route: "BKK-HDY", Price: 7000, Fuel: 900, Wage: 1500, Basket: 1000, BasketShare: 700, Profit: 4900},
		{ID: 3, Date: "2024-03-01", DriverName: "Somchai", Route: "BKK-CNX", Price: 5000, Fuel: 550, Wage: 1200, StaffShare: 100, Profit: 3250},
		{ID: 4, Date: "2024-03-19", DriverName: "Anan", Route: "BKK-HDY", Price: 7000, Fuel: 850, Wage: 1500, Profit: 4650},
		{ID: 5, Date: "2024-03-25", DriverName: "Somchai", Route: "BKK-CNX", Price: 5000, Fuel: 600, Wage: 1200, Profit: 3200}, // next period
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	trips := sampleTrips()
	want := Aggregate(trips)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]Trip, len(trips))
		copy(shuffled, trips)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if got := Aggregate(shuffled); got != want {
			t.Fatalf("shuffle %d changed totals: %+v vs %+v", i, got, want)
		}
	}
}

func TestAggregatePartitionAdditive(t *testing.T) {
	trips := sampleTrips()
	whole := Aggregate(trips)

	var merged Stats
	for _, day := range []string{"2024-02-20", "2024-03-01", "2024-03-19", "2024-03-25"} {
		var dayTrips []Trip
		for _, tr := range trips {
			if tr.Date == day {
				dayTrips = append(dayTrips, tr)
			}
		}
		merged = merged.Merge(Aggregate(dayTrips))
	}
	if merged != whole {
		t.Fatalf("per-day merge %+v != whole %+v", merged, whole)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil); got != (Stats{}) {
		t.Fatalf("empty aggregate = %+v, want zero", got)
	}
}

func TestFilterPeriodAndMonthDisagree(t *testing.T) {
	trips := sampleTrips()
	period := FilterPeriod(trips, time.March, 2024)
	if len(period) != 4 { // Feb 20 trip in, Mar 25 trip out
		t.Fatalf("period trips = %d, want 4", len(period))
	}
	month := FilterMonth(trips, time.March, 2024)
	if len(month) != 4 { // Mar 25 in, Feb 20 out
		t.Fatalf("month trips = %d, want 4", len(month))
	}
}

func TestFilterDriverTrimsButKeepsCase(t *testing.T) {
	trips := []Trip{
		{DriverName: " Somchai "},
		{DriverName: "somchai"},
		{DriverName: "Somchai"},
	}
	if got := len(FilterDriver(trips, "Somchai")); got != 2 {
		t.Fatalf("matched %d trips, want 2", got)
	}
}

func TestByDriverSortedWithNetPay(t *testing.T) {
	sums := ByDriver(FilterPeriod(sampleTrips(), time.March, 2024))
	if len(sums) != 2 {
		t.Fatalf("got %d drivers, want 2", len(sums))
	}
	if sums[0].DriverName != "Anan" || sums[1].DriverName != "Somchai" {
		t.Fatalf("order = %s, %s", sums[0].DriverName, sums[1].DriverName)
	}
	somchai := sums[1]
	// wage 2400 + basket share 400 + housing 1000 - advances 300
	if somchai.NetPay != 3500 {
		t.Fatalf("net pay = %v, want 3500", somchai.NetPay)
	}
}

func TestDailyBreakdownHasEveryDate(t *testing.T) {
	rows := DailyBreakdown(FilterPeriod(sampleTrips(), time.March, 2024), time.March, 2024)
	if len(rows) != 29 {
		t.Fatalf("rows = %d, want 29", len(rows))
	}

	var total Stats
	byDate := map[string]DayRow{}
	for _, row := range rows {
		byDate[row.Date] = row
		total = total.Merge(row.Stats)
	}

	if got := byDate["2024-03-01"]; got.Stats.TripCount != 2 || got.Drivers != "Anan, Somchai" && got.Drivers != "Somchai, Anan" {
		t.Fatalf("2024-03-01 row = %+v", got)
	}
	if got := byDate["2024-03-05"]; got.Stats != (Stats{}) || got.Drivers != "" {
		t.Fatalf("empty day carries data: %+v", got)
	}
	if whole := Aggregate(FilterPeriod(sampleTrips(), time.March, 2024)); total != whole {
		t.Fatalf("daily totals %+v != period aggregate %+v", total, whole)
	}
}
