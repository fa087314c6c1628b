package domain

import "time"

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per itinerary entry, with trip
// fields repeated for every entry on that trip. Trips with no entries yield
// one row with an empty Kind and zero values for all entry fields.
type ExportRow struct {
	// Trip fields, repeated for every entry on the trip.
	TripID          string
	TripName        string
	TripDestination string
	TripStartDate   string // "2006-01-02" formatted date
	TripEndDate     string // empty string when nil
	TravelStyle     TravelStyle

	// Entry fields. Kind is "flight", "hotel" or "activity".
	Kind     string
	EntryID  string
	Title    string
	StartsAt *time.Time
	EndsAt   *time.Time
	Price    float64
}
