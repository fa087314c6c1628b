// Package domain contains the core data types for the trip planner.
// It depends only on uuid and is imported by every other internal package
// (repo, service, handler).
package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Trip is the root planning aggregate; flights, hotels and activities belong
// to a trip. Identity is ID alone.
//
// The JSON field names are the persisted layout of the saved-trips slot and
// must not change.
type Trip struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Destination string      `json:"destination"`
	Date        time.Time   `json:"date"`
	EndDate     *time.Time  `json:"endDate"` // nil for open-ended trips
	Details     string      `json:"details"`
	Price       float64     `json:"price"`
	Images      []string    `json:"images"`
	Location    *Location   `json:"location"`
	TravelStyle TravelStyle `json:"travelStyle"`
	Flights     []Flight    `json:"flights"`
	Hotels      []Hotel     `json:"hotels"`
	Activities  []Activity  `json:"activities"`
}

// Equal reports whether t and other are the same trip.
func (t Trip) Equal(other Trip) bool {
	return t.ID == other.ID
}

// Nights is the number of nights between the start and end days.
// Open-ended trips report 0.
func (t Trip) Nights() int {
	if t.EndDate == nil {
		return 0
	}
	return int(Day(*t.EndDate).Sub(Day(t.Date)).Hours() / 24)
}

// Clone returns a deep copy so callers can never alias store-owned slices.
func (t Trip) Clone() Trip {
	out := t
	if t.EndDate != nil {
		ed := *t.EndDate
		out.EndDate = &ed
	}
	if t.Location != nil {
		loc := *t.Location
		out.Location = &loc
	}
	out.Images = slices.Clone(t.Images)
	out.Flights = slices.Clone(t.Flights)
	if t.Hotels != nil {
		out.Hotels = make([]Hotel, len(t.Hotels))
		for i, h := range t.Hotels {
			h.Images = slices.Clone(h.Images)
			out.Hotels[i] = h
		}
	}
	if t.Activities != nil {
		out.Activities = make([]Activity, len(t.Activities))
		for i, a := range t.Activities {
			a.Images = slices.Clone(a.Images)
			out.Activities[i] = a
		}
	}
	return out
}

// CloneTrips deep-copies a list of trips, preserving nil.
func CloneTrips(trips []Trip) []Trip {
	if trips == nil {
		return nil
	}
	out := make([]Trip, len(trips))
	for i, t := range trips {
		out[i] = t.Clone()
	}
	return out
}
