package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/c51838777-max/santakrit/internal/domain"
	"github.com/c51838777-max/santakrit/internal/utils"
)

// Mode is the adapter's startup decision. The probe runs once; after that
// the adapter stays in its lane until the next restart.
type Mode string

const (
	ModeUninitialized Mode = "uninitialized"
	ModeProbing       Mode = "probing"
	ModeRemote        Mode = "remote"
	ModeLocal         Mode = "local"
)

// Adapter is the single owner of the in-memory trip collection and the
// local cache. Reads hand out copies; every refresh builds the new
// collection fully before swapping it in, so consumers never observe a
// partial fetch.
type Adapter struct {
	mu      sync.RWMutex
	mode    Mode
	remote  *RemoteStore
	cache   *Cache
	trips   []domain.Trip
	presets map[string]domain.RoutePreset

	lastFingerprint string
	stopWatch       chan struct{}
	watchOnce       sync.Once
}

// Open probes the remote store and settles on a mode. A probe failure is
// not an error: the adapter loads the last snapshot from the local cache
// and serves local-only until the next restart re-probes.
func Open(remote *RemoteStore, cache *Cache) *Adapter {
	a := &Adapter{
		mode:    ModeProbing,
		remote:  remote,
		cache:   cache,
		trips:   []domain.Trip{},
		presets: map[string]domain.RoutePreset{},
	}

	if err := remote.Probe(); err != nil {
		utils.LogEvent("", "store", "probe_failed", fmt.Sprintf("falling back to local cache: %v", err))
		a.mode = ModeLocal
		if trips, err := cache.LoadTrips(); err == nil {
			a.trips = trips
		}
		if presets, err := cache.LoadPresets(); err == nil {
			a.presets = presets
		}
		return a
	}

	a.mode = ModeRemote
	if err := a.Refresh(); err != nil {
		utils.LogEvent("", "store", "initial_fetch_failed", err.Error())
	}
	return a
}

func (a *Adapter) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

// Trips returns a copy of the current collection, newest date first.
func (a *Adapter) Trips() []domain.Trip {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]domain.Trip, len(a.trips))
	copy(out, a.trips)
	return out
}

// Presets returns a copy of the route preset map keyed by route name.
func (a *Adapter) Presets() map[string]domain.RoutePreset {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[string]domain.RoutePreset, len(a.presets))
	for k, v := range a.presets {
		out[k] = v
	}
	return out
}

// Refresh re-fetches everything from the remote store and atomically
// replaces the in-memory collection. The remote store is authoritative, so
// a verbatim replace cannot regress an optimistic insert: by the time the
// notification fires, the row exists remotely too.
func (a *Adapter) Refresh() error {
	if a.Mode() != ModeRemote {
		return nil
	}

	rawTrips, err := a.remote.FetchTrips()
	if err != nil {
		return err
	}
	rawPresets, err := a.remote.FetchPresets()
	if err != nil {
		// Presets are secondary; keep serving the old map.
		utils.LogEvent("", "store", "preset_fetch_failed", err.Error())
		rawPresets = nil
	}

	trips := make([]domain.Trip, 0, len(rawTrips))
	for _, raw := range rawTrips {
		trips = append(trips, domain.Normalize(raw))
	}

	a.mu.Lock()
	a.trips = trips
	if rawPresets != nil {
		presets := make(map[string]domain.RoutePreset, len(rawPresets))
		for _, raw := range rawPresets {
			p := domain.NormalizePreset(raw)
			if p.Route != "" {
				presets[p.Route] = p
			}
		}
		a.presets = presets
	}
	a.mu.Unlock()

	a.snapshot()
	return nil
}

// Watch polls the remote store for changes and re-fetches when the
// fingerprint moves. This stands in for the push channel the hosted store
// would offer; subscribers get the same contract (no payload, just
// "something changed, re-fetch").
func (a *Adapter) Watch(interval time.Duration) {
	if a.Mode() != ModeRemote || interval <= 0 {
		return
	}
	a.watchOnce.Do(func() {
		a.stopWatch = make(chan struct{})
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-a.stopWatch:
					return
				case <-ticker.C:
					fp, err := a.remote.Fingerprint()
					if err != nil {
						utils.LogEvent("", "store", "watch_fingerprint_failed", err.Error())
						continue
					}
					a.mu.Lock()
					changed := fp != a.lastFingerprint
					a.lastFingerprint = fp
					a.mu.Unlock()
					if changed {
						if err := a.Refresh(); err != nil {
							utils.LogEvent("", "store", "watch_refresh_failed", err.Error())
						}
					}
				}
			}
		}()
	})
}

func (a *Adapter) Close() {
	if a.stopWatch != nil {
		close(a.stopWatch)
		a.stopWatch = nil
	}
}

// InsertTrip persists a canonical trip. Remote mode walks the shape
// fallback and surfaces a hard failure when every shape is rejected; the
// in-memory collection is only touched on success, and what gets inserted
// is the normalized confirmed row, not the local payload. Local mode
// assigns a timestamp id and appends directly.
func (a *Adapter) InsertTrip(t domain.Trip) (domain.Trip, error) {
	if a.Mode() == ModeRemote {
		raw, err := a.remote.InsertTrip(t)
		if err != nil {
			return domain.Trip{}, err
		}
		stored := domain.Normalize(raw)
		a.mu.Lock()
		a.trips = append([]domain.Trip{stored}, a.trips...)
		a.mu.Unlock()
		a.snapshot()
		return stored, nil
	}

	t.ID = time.Now().UnixMilli()
	a.mu.Lock()
	a.trips = append([]domain.Trip{t}, a.trips...)
	a.mu.Unlock()
	a.snapshot()
	return t, nil
}

// UpdateTrip is a full-field replace. The in-memory mutation is
// unconditional; a remote rejection is logged and tolerated, accepting
// possible divergence until the next successful refresh. Creation blocks
// the user's workflow, edits do not.
func (a *Adapter) UpdateTrip(id int64, t domain.Trip) (domain.Trip, error) {
	t.ID = id

	a.mu.RLock()
	found := false
	for _, cur := range a.trips {
		if cur.ID == id {
			found = true
			break
		}
	}
	a.mu.RUnlock()
	if !found {
		return domain.Trip{}, domain.NotFoundError{Resource: "trip"}
	}

	if a.Mode() == ModeRemote {
		if err := a.remote.UpdateTrip(id, t); err != nil {
			utils.LogEvent("", "store", "remote_update_failed", fmt.Sprintf("id=%d err=%v", id, err))
		}
	}

	a.mu.Lock()
	for i := range a.trips {
		if a.trips[i].ID == id {
			a.trips[i] = t
			break
		}
	}
	a.mu.Unlock()
	a.snapshot()
	return t, nil
}

// DeleteTrip removes a trip optimistically: the remote outcome does not
// gate the in-memory removal.
func (a *Adapter) DeleteTrip(id int64) {
	if a.Mode() == ModeRemote {
		if err := a.remote.DeleteTrip(id); err != nil {
			utils.LogEvent("", "store", "remote_delete_failed", fmt.Sprintf("id=%d err=%v", id, err))
		}
	}

	a.mu.Lock()
	kept := a.trips[:0]
	for _, t := range a.trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	a.trips = kept
	a.mu.Unlock()
	a.snapshot()
}

// DeletePreset removes a route preset remotely (best effort) and from
// memory unconditionally.
func (a *Adapter) DeletePreset(route string) {
	route = strings.TrimSpace(route)
	if a.Mode() == ModeRemote {
		if err := a.remote.DeletePreset(route); err != nil {
			utils.LogEvent("", "store", "remote_preset_delete_failed", fmt.Sprintf("route=%s err=%v", route, err))
		}
	}

	a.mu.Lock()
	delete(a.presets, route)
	a.mu.Unlock()
	a.snapshot()
}

// snapshot writes the current collections to the local cache so a later
// offline start serves stale-but-consistent data instead of empty state.
func (a *Adapter) snapshot() {
	if a.cache == nil {
		return
	}
	a.mu.RLock()
	trips := make([]domain.Trip, len(a.trips))
	copy(trips, a.trips)
	presets := make(map[string]domain.RoutePreset, len(a.presets))
	for k, v := range a.presets {
		presets[k] = v
	}
	a.mu.RUnlock()

	if err := a.cache.SaveTrips(trips); err != nil {
		utils.LogEvent("", "store", "cache_save_failed", err.Error())
	}
	if err := a.cache.SavePresets(presets); err != nil {
		utils.LogEvent("", "store", "cache_save_failed", err.Error())
	}
}
