package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/c51838777-max/santakrit/internal/domain"
)

const (
	tripsSlot   = "trips.json"
	presetsSlot = "route_presets.json"
)

// Cache is the local persistent fallback: two named slots under one
// directory, holding the serialized trip collection and the route preset
// map. Only the adapter writes here, and always the full snapshot.
type Cache struct {
	Dir string
}

func NewCache(dir string) *Cache {
	return &Cache{Dir: dir}
}

func (c *Cache) LoadTrips() ([]domain.Trip, error) {
	var out []domain.Trip
	if err := c.load(tripsSlot, &out); err != nil {
		return []domain.Trip{}, err
	}
	if out == nil {
		out = []domain.Trip{}
	}
	return out, nil
}

func (c *Cache) SaveTrips(trips []domain.Trip) error {
	return c.save(tripsSlot, trips)
}

func (c *Cache) LoadPresets() (map[string]domain.RoutePreset, error) {
	var out map[string]domain.RoutePreset
	if err := c.load(presetsSlot, &out); err != nil {
		return map[string]domain.RoutePreset{}, err
	}
	if out == nil {
		out = map[string]domain.RoutePreset{}
	}
	return out, nil
}

func (c *Cache) SavePresets(presets map[string]domain.RoutePreset) error {
	return c.save(presetsSlot, presets)
}

func (c *Cache) load(slot string, dst any) error {
	data, err := os.ReadFile(filepath.Join(c.Dir, slot))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func (c *Cache) save(slot string, v any) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.Dir, slot), data, 0o644)
}
