package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/c51838777-max/santakrit/internal/domain"
	"github.com/c51838777-max/santakrit/internal/store"
	"github.com/c51838777-max/santakrit/internal/utils"
)

// PayrollService answers every summary question: calendar month, pay
// period, per-day table, per-driver rollups and the salary slip itself.
type PayrollService struct {
	Store *store.Adapter
}

// SlipView is the fully derived salary slip. It is built from its inputs
// alone, so slips are deterministic and unit-testable.
type SlipView struct {
	DriverName       string  `json:"driverName"`
	Period           string  `json:"period"`
	TripCount        int     `json:"tripCount"`
	TotalWage        float64 `json:"totalWage"`
	TotalBasketShare float64 `json:"totalBasketShare"`
	HousingAllowance float64 `json:"housingAllowance"`
	GrossTotal       float64 `json:"grossTotal"`
	TotalAdvance     float64 `json:"totalAdvance"`
	OtherDeductions  float64 `json:"otherDeductions"`
	NetPayable       float64 `json:"netPayable"`
}

// DriverStats backs the driver home cards: pay-period earnings, trip count
// and fuel spend for one driver.
type DriverStats struct {
	DriverName string  `json:"driverName"`
	Period     string  `json:"period"`
	TripCount  int     `json:"tripCount"`
	Earnings   float64 `json:"earnings"` // wage + basket share
	Fuel       float64 `json:"fuel"`
}

// BuildSlip derives a salary slip from trips already filtered to one driver
// and one period. Pure: no fetching, no mutation.
func BuildSlip(driverName string, trips []domain.Trip, periodLabel string, otherDeductions float64) SlipView {
	s := domain.Aggregate(trips)

	housing := 0.0
	if s.TripCount > 0 {
		housing = domain.HousingAllowance
	}
	gross := s.Wage + s.BasketShare + housing

	return SlipView{
		DriverName:       driverName,
		Period:           periodLabel,
		TripCount:        s.TripCount,
		TotalWage:        s.Wage,
		TotalBasketShare: s.BasketShare,
		HousingAllowance: housing,
		GrossTotal:       gross,
		TotalAdvance:     s.StaffAdvance,
		OtherDeductions:  otherDeductions,
		NetPayable:       gross - s.StaffAdvance - otherDeductions,
	}
}

// Slip assembles the slip for one driver and pay period.
func (s PayrollService) Slip(driverName string, month time.Month, year int, otherDeductions float64) SlipView {
	trips := domain.FilterDriver(domain.FilterPeriod(s.Store.Trips(), month, year), driverName)
	return BuildSlip(driverName, trips, domain.PeriodLabel(month, year), otherDeductions)
}

// MonthSummary aggregates a calendar month.
func (s PayrollService) MonthSummary(month time.Month, year int) domain.Stats {
	return domain.Aggregate(domain.FilterMonth(s.Store.Trips(), month, year))
}

// PeriodSummary aggregates a 20th-19th pay period.
func (s PayrollService) PeriodSummary(month time.Month, year int) domain.Stats {
	return domain.Aggregate(domain.FilterPeriod(s.Store.Trips(), month, year))
}

// DailyBreakdown is the monthly table: one row per calendar day of the
// period, empty days included.
func (s PayrollService) DailyBreakdown(month time.Month, year int) []domain.DayRow {
	return domain.DailyBreakdown(domain.FilterPeriod(s.Store.Trips(), month, year), month, year)
}

// DriverSummaries aggregates the period per distinct driver name.
func (s PayrollService) DriverSummaries(month time.Month, year int) []domain.DriverSummary {
	return domain.ByDriver(domain.FilterPeriod(s.Store.Trips(), month, year))
}

// StatsFor computes the personal stats card for one driver in a period.
func (s PayrollService) StatsFor(driverName string, month time.Month, year int) DriverStats {
	trips := domain.FilterDriver(domain.FilterPeriod(s.Store.Trips(), month, year), driverName)
	agg := domain.Aggregate(trips)
	return DriverStats{
		DriverName: driverName,
		Period:     domain.PeriodLabel(month, year),
		TripCount:  agg.TripCount,
		Earnings:   agg.Wage + agg.BasketShare,
		Fuel:       agg.Fuel,
	}
}

// TripsFor lists one driver's trips, newest first (collection order).
func (s PayrollService) TripsFor(driverName string) []domain.Trip {
	return domain.FilterDriver(s.Store.Trips(), driverName)
}

// ExportPeriodCSV streams the daily breakdown as CSV, matching the monthly
// table columns plus a totals row.
func (s PayrollService) ExportPeriodCSV(w io.Writer, month time.Month, year int) error {
	rows := s.DailyBreakdown(month, year)

	cw := csv.NewWriter(w)
	header := []string{"date", "drivers", "routes", "trips", "revenue", "fuel", "wage", "maintenance", "basket_share", "advance", "profit"}
	if err := cw.Write(header); err != nil {
		return err
	}

	var total domain.Stats
	for _, row := range rows {
		total = total.Merge(row.Stats)
		rec := []string{
			row.Date,
			row.Drivers,
			row.Routes,
			strconv.Itoa(row.Stats.TripCount),
			utils.FormatMoney(row.Stats.Revenue),
			utils.FormatMoney(row.Stats.Fuel),
			utils.FormatMoney(row.Stats.Wage),
			utils.FormatMoney(row.Stats.Maintenance),
			utils.FormatMoney(row.Stats.BasketShare),
			utils.FormatMoney(row.Stats.StaffAdvance),
			utils.FormatMoney(row.Stats.Profit),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	totalRec := []string{
		"total", "", "",
		strconv.Itoa(total.TripCount),
		utils.FormatMoney(total.Revenue),
		utils.FormatMoney(total.Fuel),
		utils.FormatMoney(total.Wage),
		utils.FormatMoney(total.Maintenance),
		utils.FormatMoney(total.BasketShare),
		utils.FormatMoney(total.StaffAdvance),
		utils.FormatMoney(total.Profit),
	}
	if err := cw.Write(totalRec); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
