package store

import (
	"testing"

	"github.com/c51838777-max/santakrit/internal/domain"
)

func TestCacheRoundTrip(t *testing.T) {
	cache := NewCache(t.TempDir())

	trips := []domain.Trip{
		{ID: 1, Date: "2024-03-05", DriverName: "Somchai", Route: "BKK-CNX", Price: 5000, Profit: 3100},
		{ID: 2, Date: "2024-03-06", DriverName: "Anan", Route: "BKK-HDY", Price: 7000, Profit: 4900},
	}
	if err := cache.SaveTrips(trips); err != nil {
		t.Fatalf("save trips: %v", err)
	}
	loaded, err := cache.LoadTrips()
	if err != nil {
		t.Fatalf("load trips: %v", err)
	}
	if len(loaded) != 2 || loaded[0] != trips[0] || loaded[1] != trips[1] {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}

	presets := map[string]domain.RoutePreset{
		"BKK-CNX": {Route: "BKK-CNX", Price: 5000, Wage: 1200},
	}
	if err := cache.SavePresets(presets); err != nil {
		t.Fatalf("save presets: %v", err)
	}
	loadedPresets, err := cache.LoadPresets()
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}
	if loadedPresets["BKK-CNX"] != presets["BKK-CNX"] {
		t.Fatalf("preset round trip mismatch: %+v", loadedPresets)
	}
}

func TestCacheLoadMissingFilesReturnsEmpty(t *testing.T) {
	cache := NewCache(t.TempDir())
	trips, err := cache.LoadTrips()
	if err == nil {
		t.Fatal("expected error for missing trips slot")
	}
	if trips == nil || len(trips) != 0 {
		t.Fatalf("trips = %#v, want empty slice", trips)
	}
	presets, err := cache.LoadPresets()
	if err == nil {
		t.Fatal("expected error for missing presets slot")
	}
	if presets == nil || len(presets) != 0 {
		t.Fatalf("presets = %#v, want empty map", presets)
	}
}
