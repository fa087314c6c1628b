package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is something scheduled during a trip, e.g. a tour or a show.
// Day is free text such as "Day 1 (Activity 1)".
type Activity struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	Duration    string    `json:"duration"`
	TimeSlot    time.Time `json:"timeSlot"`
	Day         string    `json:"day"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images"`
}

// NewActivity validates a and returns it with an ID assigned when none was set.
func NewActivity(a Activity) (Activity, error) {
	if err := a.Validate(); err != nil {
		return Activity{}, err
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Images == nil {
		a.Images = []string{}
	}
	return a, nil
}

// Validate enforces the rules for a schedulable activity.
//   - Name, location and duration are required.
//   - Rating and price must be positive; review count must not be negative.
func (a Activity) Validate() error {
	if err := requireText("name", a.Name, "location", a.Location, "duration", a.Duration); err != nil {
		return err
	}
	if a.Rating <= 0 || a.Rating > MaxRating {
		return validationf("rating must be greater than 0 and at most %d", MaxRating)
	}
	if a.ReviewCount < 0 {
		return validationf("review count must not be negative")
	}
	if a.TimeSlot.IsZero() {
		return validationf("time slot is required")
	}
	if a.Price <= 0 {
		return validationf("price must be positive")
	}
	return nil
}
