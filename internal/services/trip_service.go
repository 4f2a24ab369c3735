package services

import (
	"github.com/c51838777-max/santakrit/internal/domain"
	"github.com/c51838777-max/santakrit/internal/store"
	"github.com/c51838777-max/santakrit/internal/utils"
)

// TripService owns the submission flow: preset defaults, derived
// financials, then the persistence adapter.
type TripService struct {
	Store     *store.Adapter
	RequestID string
}

// Create validates a submission, applies route preset defaults for missing
// price/wage, derives basket bonus and profit, and persists. A persistence
// rejection is returned as-is so the handler can surface it; the driver has
// to retry.
func (s TripService) Create(in domain.TripInput) (domain.Trip, error) {
	if err := s.prepare(&in); err != nil {
		return domain.Trip{}, err
	}

	trip := domain.BuildTrip(in)
	stored, err := s.Store.InsertTrip(trip)
	if err != nil {
		return domain.Trip{}, err
	}

	utils.LogEvent(s.RequestID, "trips", "create", "driver="+stored.DriverName+" route="+stored.Route)
	return stored, nil
}

// Update is a full-field replace that always recomputes the derived fields.
// A client-sent profit is never trusted.
func (s TripService) Update(id int64, in domain.TripInput) (domain.Trip, error) {
	if id <= 0 {
		return domain.Trip{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	if err := s.prepare(&in); err != nil {
		return domain.Trip{}, err
	}

	trip := domain.BuildTrip(in)
	updated, err := s.Store.UpdateTrip(id, trip)
	if err != nil {
		return domain.Trip{}, err
	}

	utils.LogEvent(s.RequestID, "trips", "update", "driver="+updated.DriverName+" route="+updated.Route)
	return updated, nil
}

func (s TripService) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	s.Store.DeleteTrip(id)
	utils.LogEvent(s.RequestID, "trips", "delete", "")
	return nil
}

func (s TripService) List() []domain.Trip {
	return s.Store.Trips()
}

func (s TripService) Presets() map[string]domain.RoutePreset {
	return s.Store.Presets()
}

func (s TripService) DeletePreset(route string) error {
	route = utils.TrimOrEmpty(route)
	if route == "" {
		return domain.ValidationError{Field: "route", Msg: "required"}
	}
	s.Store.DeletePreset(route)
	utils.LogEvent(s.RequestID, "presets", "delete", "route="+route)
	return nil
}

// prepare trims the identifying fields and copies preset defaults into
// missing price/wage. Presets only matter at entry time; the trip keeps the
// copied values with no back reference.
func (s TripService) prepare(in *domain.TripInput) error {
	in.DriverName = utils.TrimOrEmpty(in.DriverName)
	in.Route = utils.TrimOrEmpty(in.Route)
	if in.Route == "" {
		return domain.ValidationError{Field: "route", Msg: "required"}
	}
	if in.DriverName == "" {
		return domain.ValidationError{Field: "driverName", Msg: "required"}
	}

	if preset, ok := s.Store.Presets()[in.Route]; ok {
		if in.Price == nil {
			p := preset.Price
			in.Price = &p
		}
		if in.Wage == nil {
			w := preset.Wage
			in.Wage = &w
		}
	}
	return nil
}
