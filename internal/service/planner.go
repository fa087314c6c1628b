package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/observe"
)

// PlanningState is everything the create-trip screen shows.
type PlanningState struct {
	SelectedLocation *domain.Location
	DateRange        domain.DateRange

	// Transient form fields.
	Name        string
	TravelStyle domain.TravelStyle
	Description string

	LocationPickerVisible bool
	DatePickerVisible     bool

	// NewlyCreated is the last trip CreateDetailedTrip produced, kept for
	// hand-off to the trip detail screen until ClearNewlyCreated.
	NewlyCreated *domain.Trip

	// Trips is the visible trip list, most recent first.
	Trips []domain.Trip
}

func (s PlanningState) clone() PlanningState {
	out := s
	if s.SelectedLocation != nil {
		loc := *s.SelectedLocation
		out.SelectedLocation = &loc
	}
	out.DateRange = cloneRange(s.DateRange)
	if s.NewlyCreated != nil {
		t := s.NewlyCreated.Clone()
		out.NewlyCreated = &t
	}
	out.Trips = domain.CloneTrips(s.Trips)
	return out
}

func cloneRange(r domain.DateRange) domain.DateRange {
	var out domain.DateRange
	if r.Start != nil {
		st := *r.Start
		out.Start = &st
	}
	if r.End != nil {
		en := *r.End
		out.End = &en
	}
	return out
}

// Planner owns the trip-creation workflow and the visible trip list.
type Planner struct {
	store *TripStore
	log   *slog.Logger
	state *observe.Value[PlanningState]
}

// NewPlanner constructs a Planner whose trip list starts as the store's.
func NewPlanner(store *TripStore) *Planner {
	return &Planner{
		store: store,
		log:   store.Logger(),
		state: observe.NewValue(PlanningState{
			TravelStyle: domain.TravelStyleSolo,
			Trips:       store.Trips(),
		}, PlanningState.clone),
	}
}

// State returns a copy of the current planning state.
func (p *Planner) State() PlanningState {
	return p.state.Get()
}

// Subscribe registers fn to receive the state after every change.
// fn must not call back into the Planner's mutating methods.
func (p *Planner) Subscribe(fn func(PlanningState)) (unsubscribe func()) {
	return p.state.Subscribe(fn)
}

// set applies a form edit that always counts as a change.
func (p *Planner) set(fn func(*PlanningState)) {
	p.state.Update(func(st PlanningState) (PlanningState, bool) {
		fn(&st)
		return st, true
	})
}

// SelectLocation records the chosen destination and closes the location picker.
func (p *Planner) SelectLocation(loc domain.Location) {
	p.set(func(st *PlanningState) {
		st.SelectedLocation = &loc
		st.LocationPickerVisible = false
	})
}

// SetDateRange replaces the range being built. Ordering is checked at
// creation time, not here.
func (p *Planner) SetDateRange(r domain.DateRange) {
	r = cloneRange(r)
	p.set(func(st *PlanningState) { st.DateRange = r })
}

// SelectDate applies one calendar tap to the range being built:
//   - nothing picked yet: the day becomes the start;
//   - only a start: a day on or after it becomes the end, an earlier day
//     restarts the range there;
//   - a full range: the day starts a new range.
func (p *Planner) SelectDate(t time.Time) {
	day := domain.Day(t)
	p.set(func(st *PlanningState) {
		r := st.DateRange
		switch {
		case r.Start != nil && r.End == nil && !day.Before(*r.Start):
			st.DateRange.End = &day
		default:
			st.DateRange = domain.DateRange{Start: &day}
		}
	})
}

// SetName, SetTravelStyle and SetDescription edit the form fields.
func (p *Planner) SetName(name string) {
	p.set(func(st *PlanningState) { st.Name = name })
}

func (p *Planner) SetTravelStyle(style domain.TravelStyle) {
	p.set(func(st *PlanningState) { st.TravelStyle = style })
}

func (p *Planner) SetDescription(description string) {
	p.set(func(st *PlanningState) { st.Description = description })
}

// SetLocationPickerVisible and SetDatePickerVisible gate the two pickers.
func (p *Planner) SetLocationPickerVisible(visible bool) {
	p.set(func(st *PlanningState) { st.LocationPickerVisible = visible })
}

func (p *Planner) SetDatePickerVisible(visible bool) {
	p.set(func(st *PlanningState) { st.DatePickerVisible = visible })
}

// CreateDetailedTrip turns the current selections into a new trip, puts it at
// the front of the list, saves it and resets the form.
//
// Without a selected location and a complete date range nothing happens and
// an error wrapping domain.ErrPrecondition says what is missing. A range
// ending before it starts returns domain.ErrValidation, also without changes.
func (p *Planner) CreateDetailedTrip(ctx context.Context, name string, style domain.TravelStyle, description string) (domain.Trip, error) {
	var (
		created domain.Trip
		err     error
	)
	p.state.Update(func(st PlanningState) (PlanningState, bool) {
		switch {
		case st.SelectedLocation == nil:
			err = fmt.Errorf("service.Planner.CreateDetailedTrip: %w: no destination selected", domain.ErrPrecondition)
			return st, false
		case !st.DateRange.Complete():
			err = fmt.Errorf("service.Planner.CreateDetailedTrip: %w: date range incomplete", domain.ErrPrecondition)
			return st, false
		}
		if verr := st.DateRange.Validate(); verr != nil {
			err = fmt.Errorf("service.Planner.CreateDetailedTrip: %w", verr)
			return st, false
		}

		loc := *st.SelectedLocation
		end := *st.DateRange.End
		created = domain.Trip{
			ID:          uuid.New(),
			Name:        name,
			Destination: loc.DisplayName(),
			Date:        *st.DateRange.Start,
			EndDate:     &end,
			Details:     description,
			Price:       0,
			Images:      []string{},
			Location:    &loc,
			TravelStyle: domain.ParseTravelStyle(string(style)),
			Flights:     []domain.Flight{},
			Hotels:      []domain.Hotel{},
			Activities:  []domain.Activity{},
		}
		if ierr := p.store.Insert(ctx, created); ierr != nil {
			err = fmt.Errorf("service.Planner.CreateDetailedTrip: %w", ierr)
			return st, false
		}

		p.log.InfoContext(ctx, "trip created", "trip_id", created.ID, "destination", created.Destination)

		newly := created.Clone()
		return PlanningState{
			TravelStyle:  domain.TravelStyleSolo,
			NewlyCreated: &newly,
			Trips:        append([]domain.Trip{created.Clone()}, st.Trips...),
		}, true
	})
	if err != nil {
		return domain.Trip{}, err
	}
	return created, nil
}

// ClearNewlyCreated forgets the hand-off trip once the detail screen has it.
func (p *Planner) ClearNewlyCreated() {
	p.state.Update(func(st PlanningState) (PlanningState, bool) {
		if st.NewlyCreated == nil {
			return st, false
		}
		st.NewlyCreated = nil
		return st, true
	})
}

// SyncTrips copies the store's in-memory list into the planning state without
// touching durable storage. Call it after the store is changed through
// another path, e.g. a TripDetail edit.
func (p *Planner) SyncTrips() {
	trips := p.store.Trips()
	p.set(func(st *PlanningState) { st.Trips = trips })
}

// FetchTrips reloads the trip list from durable storage and returns it.
func (p *Planner) FetchTrips(ctx context.Context) []domain.Trip {
	trips := p.store.Load(ctx)
	p.set(func(st *PlanningState) { st.Trips = trips })
	return domain.CloneTrips(trips)
}
