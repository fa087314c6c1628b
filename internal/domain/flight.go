package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Flight is one leg booked as part of a trip.
type Flight struct {
	ID           uuid.UUID `json:"id"`
	Airline      string    `json:"airline"`
	FlightNumber string    `json:"flightNumber"`
	Departure    time.Time `json:"departure"`
	Arrival      time.Time `json:"arrival"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Price        float64   `json:"price"`
}

// NewFlight validates f and returns it with an ID assigned when none was set.
// Construction is all-or-nothing: on error the zero Flight is returned.
func NewFlight(f Flight) (Flight, error) {
	if err := f.Validate(); err != nil {
		return Flight{}, err
	}
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return f, nil
}

// Validate enforces the rules for a bookable flight.
//   - Airline, flight number, origin and destination are required.
//   - Arrival must be after departure.
//   - Price must not be negative.
func (f Flight) Validate() error {
	if err := requireText(
		"airline", f.Airline,
		"flight number", f.FlightNumber,
		"origin", f.Origin,
		"destination", f.Destination,
	); err != nil {
		return err
	}
	if f.Departure.IsZero() || f.Arrival.IsZero() {
		return validationf("departure and arrival are required")
	}
	if !f.Arrival.After(f.Departure) {
		return validationf("arrival must be after departure")
	}
	if f.Price < 0 {
		return validationf("price must not be negative")
	}
	return nil
}

// Duration is the time spent between departure and arrival.
func (f Flight) Duration() time.Duration {
	return f.Arrival.Sub(f.Departure)
}

// FormattedDuration renders Duration as hours and minutes, e.g. "1h 45m".
func (f Flight) FormattedDuration() string {
	return FormatDuration(f.Duration())
}

// FormatDuration renders d as "<h>h <m>m", truncating seconds.
func FormatDuration(d time.Duration) string {
	total := int(d / time.Minute)
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}
