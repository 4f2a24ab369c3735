package domain

import (
	"strconv"
	"strings"
	"time"
)

// Raw is an untyped record as returned by the remote store or the local
// cache. Column names vary between deployments, so nothing outside this file
// should read a Raw directly.
type Raw map[string]any

// Priority-ordered source keys per canonical field. First present, non-empty
// key wins. Keeping these declarative makes the drift mapping auditable.
var (
	driverNameKeys  = []string{"driver_name", "driverName", "driver", "staff", "name"}
	basketShareKeys = []string{"basketShare", "basket_share", "staff_share"}
	staffShareKeys  = []string{"staffShare", "advance", "staff_advance"}
	basketCountKeys = []string{"basket_count", "basketCount"}
)

// Normalize converts a raw record of unknown shape into a canonical Trip.
// It never fails: malformed or missing fields degrade to safe defaults
// (zero for numbers, today's local date for the date).
func Normalize(raw Raw) Trip {
	t := Trip{
		ID:          pickInt64(raw, "id"),
		Date:        normalizeDate(raw["date"]),
		DriverName:  pickString(raw, driverNameKeys...),
		Route:       pickString(raw, "route"),
		Price:       pickFloat(raw, "price"),
		Fuel:        pickFloat(raw, "fuel"),
		Wage:        pickFloat(raw, "wage"),
		Maintenance: pickFloat(raw, "maintenance"),
		BasketCount: pickInt(raw, basketCountKeys...),
		Basket:      pickFloat(raw, "basket"),
		BasketShare: pickFloat(raw, basketShareKeys...),
		StaffShare:  pickFloat(raw, staffShareKeys...),
		Profit:      pickFloat(raw, "profit"),

		FuelBillURL:        pickString(raw, "fuel_bill_url", "fuelBillUrl"),
		MaintenanceBillURL: pickString(raw, "maintenance_bill_url", "maintenanceBillUrl"),
		BasketBillURL:      pickString(raw, "basket_bill_url", "basketBillUrl"),
	}
	return t
}

// NormalizePreset resolves a raw route_presets row into a RoutePreset.
func NormalizePreset(raw Raw) RoutePreset {
	return RoutePreset{
		Route: pickString(raw, "route_name", "route", "name"),
		Price: pickFloat(raw, "price"),
		Wage:  pickFloat(raw, "wage"),
	}
}

func pickString(raw Raw, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s := strings.TrimSpace(asString(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

func pickFloat(raw Raw, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			if f, ok := asFloat(v); ok {
				return f
			}
		}
	}
	return 0
}

func pickInt(raw Raw, keys ...string) int {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			if f, ok := asFloat(v); ok {
				return int(f)
			}
		}
	}
	return 0
}

func pickInt64(raw Raw, keys ...string) int64 {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			if f, ok := asFloat(v); ok {
				return int64(f)
			}
		}
	}
	return 0
}

// asString accepts the value types the MySQL driver and encoding/json
// produce for text columns.
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case time.Time:
		return s.In(time.Local).Format(layoutDate)
	default:
		return ""
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// normalizeDate reduces any date value to a local YYYY-MM-DD string. A
// datetime string keeps only its date portion; a time.Time is reformatted
// from local calendar fields so a UTC offset can never roll the day over.
func normalizeDate(v any) string {
	switch d := v.(type) {
	case time.Time:
		return d.In(time.Local).Format(layoutDate)
	case string:
		return dateOnly(d)
	case []byte:
		return dateOnly(string(d))
	default:
		return Today()
	}
}

func dateOnly(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i > 0 {
		s = s[:i]
	}
	if _, err := time.ParseInLocation(layoutDate, s, time.Local); err != nil {
		return Today()
	}
	return s
}
