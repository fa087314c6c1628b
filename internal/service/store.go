// Package service contains the trip planner's state and business logic.
// TripStore is the single authority for the saved trip list; Planner,
// TripDetail and LocationSearch are the screen-level state containers that
// read and write through it. No storage details live here: the store depends
// on repo.SlotRepo, not on any backend.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/observe"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/repo"
)

// DefaultSlotKey names the slot the trip list is persisted under.
const DefaultSlotKey = "savedTrips"

// TripStore holds the authoritative in-memory trip list and mirrors every
// change to one persisted slot. Each mutation re-serializes the whole list;
// there is no partial persistence.
//
// All mutations go through one writer lock, so the store is safe to share
// between the planner, any number of TripDetails and the HTTP layer.
type TripStore struct {
	slot  repo.SlotRepo
	key   string
	log   *slog.Logger
	trips *observe.Value[[]domain.Trip]
}

// StoreOption configures a TripStore.
type StoreOption func(*TripStore)

// WithSlotKey overrides DefaultSlotKey.
func WithSlotKey(key string) StoreOption {
	return func(s *TripStore) { s.key = key }
}

// WithStoreLogger sets the logger used for absorbed persistence failures.
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(s *TripStore) { s.log = l }
}

// NewTripStore constructs a TripStore and loads whatever the slot holds.
func NewTripStore(ctx context.Context, slot repo.SlotRepo, opts ...StoreOption) *TripStore {
	s := &TripStore{
		slot:  slot,
		key:   DefaultSlotKey,
		log:   slog.Default(),
		trips: observe.NewValue([]domain.Trip{}, domain.CloneTrips),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load(ctx)
	return s
}

// Load replaces the in-memory list with the persisted one and returns it.
// A missing, unreadable or malformed slot yields an empty list; the failure is
// logged, never returned. Duplicate trip ids in the blob keep their first
// occurrence.
func (s *TripStore) Load(ctx context.Context) []domain.Trip {
	var loaded []domain.Trip
	s.trips.Update(func([]domain.Trip) ([]domain.Trip, bool) {
		loaded = s.read(ctx)
		return loaded, true
	})
	return domain.CloneTrips(loaded)
}

func (s *TripStore) read(ctx context.Context) []domain.Trip {
	data, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "no saved trips yet", "slot", s.key)
		} else {
			s.log.WarnContext(ctx, "failed to read saved trips", "slot", s.key, "error", err)
		}
		return []domain.Trip{}
	}

	var trips []domain.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		s.log.WarnContext(ctx, "discarding malformed saved trips", "slot", s.key, "error", err)
		return []domain.Trip{}
	}

	seen := make(map[uuid.UUID]bool, len(trips))
	out := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if seen[t.ID] {
			s.log.WarnContext(ctx, "dropping duplicate saved trip", "slot", s.key, "trip_id", t.ID)
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

// Save serializes the whole in-memory list and overwrites the slot.
// Failures are logged and swallowed: callers cannot tell a failed save from a
// successful one.
func (s *TripStore) Save(ctx context.Context) {
	s.trips.Update(func(cur []domain.Trip) ([]domain.Trip, bool) {
		s.persist(ctx, cur)
		return cur, false
	})
}

// persist must be called from inside an Update so writes land in order.
func (s *TripStore) persist(ctx context.Context, trips []domain.Trip) {
	data, err := json.Marshal(trips)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to encode trips", "slot", s.key, "error", err)
		return
	}
	if err := s.slot.Put(ctx, s.key, data); err != nil {
		s.log.ErrorContext(ctx, "failed to save trips", "slot", s.key, "error", err)
	}
}

// mutate applies fn to the list and, when fn reports a change, persists the
// result before publishing it.
func (s *TripStore) mutate(ctx context.Context, fn func(trips []domain.Trip) ([]domain.Trip, bool)) bool {
	return s.trips.Update(func(cur []domain.Trip) ([]domain.Trip, bool) {
		next, changed := fn(cur)
		if !changed {
			return cur, false
		}
		s.persist(ctx, next)
		return next, true
	})
}

// Trips returns a copy of the current list, most recent first.
func (s *TripStore) Trips() []domain.Trip {
	return s.trips.Get()
}

// Get returns the trip with the given id.
// Returns domain.ErrNotFound if the store does not hold it.
func (s *TripStore) Get(id uuid.UUID) (domain.Trip, error) {
	for _, t := range s.trips.Get() {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("service.TripStore.Get: %w", domain.ErrNotFound)
}

// Insert puts trip at the front of the list and saves.
// Returns domain.ErrConflict if a trip with the same id already exists.
func (s *TripStore) Insert(ctx context.Context, trip domain.Trip) error {
	conflict := false
	s.mutate(ctx, func(trips []domain.Trip) ([]domain.Trip, bool) {
		if indexOfTrip(trips, trip.ID) >= 0 {
			conflict = true
			return trips, false
		}
		return append([]domain.Trip{trip.Clone()}, trips...), true
	})
	if conflict {
		return fmt.Errorf("service.TripStore.Insert: trip %s: %w", trip.ID, domain.ErrConflict)
	}
	return nil
}

// Update replaces the trip with the same id in place and saves.
// It never inserts: an unknown id leaves the store untouched and returns false.
func (s *TripStore) Update(ctx context.Context, trip domain.Trip) bool {
	return s.mutate(ctx, func(trips []domain.Trip) ([]domain.Trip, bool) {
		i := indexOfTrip(trips, trip.ID)
		if i < 0 {
			return trips, false
		}
		trips[i] = trip.Clone()
		return trips, true
	})
}

// Remove deletes the trip with the given id and saves.
// Returns false when no such trip exists.
func (s *TripStore) Remove(ctx context.Context, id uuid.UUID) bool {
	return s.mutate(ctx, func(trips []domain.Trip) ([]domain.Trip, bool) {
		i := indexOfTrip(trips, id)
		if i < 0 {
			return trips, false
		}
		return append(trips[:i], trips[i+1:]...), true
	})
}

// Subscribe registers fn to receive the full list after every change.
// fn must not mutate the store.
func (s *TripStore) Subscribe(fn func([]domain.Trip)) (unsubscribe func()) {
	return s.trips.Subscribe(fn)
}

// Logger returns the store's logger so the state containers built on top of
// it log to the same place.
func (s *TripStore) Logger() *slog.Logger {
	return s.log
}

func indexOfTrip(trips []domain.Trip, id uuid.UUID) int {
	for i, t := range trips {
		if t.ID == id {
			return i
		}
	}
	return -1
}
