package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/observe"
)

// TripDetail owns one trip's editable itinerary. Every change is written
// through to the TripStore before the call returns, so the held trip and the
// stored trip never disagree.
type TripDetail struct {
	store *TripStore
	log   *slog.Logger
	trip  *observe.Value[domain.Trip]
}

// NewTripDetail opens trip for editing. Absent itinerary lists start empty.
func NewTripDetail(store *TripStore, trip domain.Trip) *TripDetail {
	if trip.Flights == nil {
		trip.Flights = []domain.Flight{}
	}
	if trip.Hotels == nil {
		trip.Hotels = []domain.Hotel{}
	}
	if trip.Activities == nil {
		trip.Activities = []domain.Activity{}
	}
	return &TripDetail{
		store: store,
		log:   store.Logger(),
		trip:  observe.NewValue(trip, domain.Trip.Clone),
	}
}

// Trip returns a copy of the trip as currently held.
func (d *TripDetail) Trip() domain.Trip {
	return d.trip.Get()
}

// Subscribe registers fn to receive the trip after every change.
func (d *TripDetail) Subscribe(fn func(domain.Trip)) (unsubscribe func()) {
	return d.trip.Subscribe(fn)
}

// TotalPrice sums the prices of every flight, hotel and activity.
func (d *TripDetail) TotalPrice() float64 {
	t := d.trip.Get()
	var total float64
	for _, f := range t.Flights {
		total += f.Price
	}
	for _, h := range t.Hotels {
		total += h.Price
	}
	for _, a := range t.Activities {
		total += a.Price
	}
	return total
}

// edit applies fn to a copy of the trip and writes the result through to the
// store. If the store no longer holds the trip the edit is dropped and
// domain.ErrNotFound is returned.
func (d *TripDetail) edit(ctx context.Context, op string, fn func(*domain.Trip) error) error {
	var err error
	d.trip.Update(func(t domain.Trip) (domain.Trip, bool) {
		if err = fn(&t); err != nil {
			return t, false
		}
		if !d.store.Update(ctx, t) {
			err = domain.ErrNotFound
			return t, false
		}
		return t, true
	})
	if err != nil {
		return fmt.Errorf("service.TripDetail.%s: %w", op, err)
	}
	d.log.DebugContext(ctx, "itinerary updated", "op", op, "trip_id", d.trip.Get().ID)
	return nil
}

// AddFlight validates f and appends it. A nil id is replaced with a new one;
// an id already in the list returns domain.ErrConflict.
func (d *TripDetail) AddFlight(ctx context.Context, f domain.Flight) error {
	return d.edit(ctx, "AddFlight", func(t *domain.Trip) error {
		flight, err := domain.NewFlight(f)
		if err != nil {
			return err
		}
		if slices.ContainsFunc(t.Flights, func(x domain.Flight) bool { return x.ID == flight.ID }) {
			return fmt.Errorf("%w: flight %s already on trip", domain.ErrConflict, flight.ID)
		}
		t.Flights = append(t.Flights, flight)
		return nil
	})
}

// AddHotel validates h and appends it. See AddFlight for id handling.
func (d *TripDetail) AddHotel(ctx context.Context, h domain.Hotel) error {
	return d.edit(ctx, "AddHotel", func(t *domain.Trip) error {
		hotel, err := domain.NewHotel(h)
		if err != nil {
			return err
		}
		if slices.ContainsFunc(t.Hotels, func(x domain.Hotel) bool { return x.ID == hotel.ID }) {
			return fmt.Errorf("%w: hotel %s already on trip", domain.ErrConflict, hotel.ID)
		}
		t.Hotels = append(t.Hotels, hotel)
		return nil
	})
}

// AddActivity validates a and appends it. See AddFlight for id handling.
func (d *TripDetail) AddActivity(ctx context.Context, a domain.Activity) error {
	return d.edit(ctx, "AddActivity", func(t *domain.Trip) error {
		activity, err := domain.NewActivity(a)
		if err != nil {
			return err
		}
		if slices.ContainsFunc(t.Activities, func(x domain.Activity) bool { return x.ID == activity.ID }) {
			return fmt.Errorf("%w: activity %s already on trip", domain.ErrConflict, activity.ID)
		}
		t.Activities = append(t.Activities, activity)
		return nil
	})
}

// RemoveFlights removes the flights at the given positions. Positions refer
// to the list as it is when the call starts; repeats are ignored. Any position
// out of range rejects the whole call with domain.ErrValidation.
func (d *TripDetail) RemoveFlights(ctx context.Context, positions ...int) error {
	return d.edit(ctx, "RemoveFlights", func(t *domain.Trip) (err error) {
		t.Flights, err = removeAt(t.Flights, positions)
		return err
	})
}

// RemoveHotels removes the hotels at the given positions. See RemoveFlights.
func (d *TripDetail) RemoveHotels(ctx context.Context, positions ...int) error {
	return d.edit(ctx, "RemoveHotels", func(t *domain.Trip) (err error) {
		t.Hotels, err = removeAt(t.Hotels, positions)
		return err
	})
}

// RemoveActivities removes the activities at the given positions. See RemoveFlights.
func (d *TripDetail) RemoveActivities(ctx context.Context, positions ...int) error {
	return d.edit(ctx, "RemoveActivities", func(t *domain.Trip) (err error) {
		t.Activities, err = removeAt(t.Activities, positions)
		return err
	})
}

// DeleteTrip removes the trip from the store. It reports whether a trip was
// actually removed; false means the store no longer had it.
func (d *TripDetail) DeleteTrip(ctx context.Context) bool {
	id := d.trip.Get().ID
	removed := d.store.Remove(ctx, id)
	if removed {
		d.log.InfoContext(ctx, "trip deleted", "trip_id", id)
	}
	return removed
}

// FlightIndex, HotelIndex and ActivityIndex resolve an entity id to its
// current position, or -1. Resolve immediately before removing.
func (d *TripDetail) FlightIndex(id uuid.UUID) int {
	return slices.IndexFunc(d.trip.Get().Flights, func(f domain.Flight) bool { return f.ID == id })
}

func (d *TripDetail) HotelIndex(id uuid.UUID) int {
	return slices.IndexFunc(d.trip.Get().Hotels, func(h domain.Hotel) bool { return h.ID == id })
}

func (d *TripDetail) ActivityIndex(id uuid.UUID) int {
	return slices.IndexFunc(d.trip.Get().Activities, func(a domain.Activity) bool { return a.ID == id })
}

// removeAt returns items without the given positions, preserving order.
func removeAt[T any](items []T, positions []int) ([]T, error) {
	drop := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(items) {
			return items, fmt.Errorf("%w: position %d out of range", domain.ErrValidation, p)
		}
		drop[p] = true
	}
	out := make([]T, 0, len(items)-len(drop))
	for i, it := range items {
		if !drop[i] {
			out = append(out, it)
		}
	}
	return out, nil
}
