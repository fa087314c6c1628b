package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxRating is the top of the rating scale shown in the UI.
const MaxRating = 10

// Hotel is a stay booked as part of a trip.
type Hotel struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	RoomType    string    `json:"roomType"`
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images"`
}

// NewHotel validates h and returns it with an ID assigned when none was set.
func NewHotel(h Hotel) (Hotel, error) {
	if err := h.Validate(); err != nil {
		return Hotel{}, err
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Images == nil {
		h.Images = []string{}
	}
	return h, nil
}

// Validate enforces the rules for a bookable stay.
//   - Name, address and room type are required.
//   - Rating is within 0..MaxRating and review count is not negative.
//   - Check-out must be after check-in.
//   - Price must be positive.
func (h Hotel) Validate() error {
	if err := requireText("name", h.Name, "address", h.Address, "room type", h.RoomType); err != nil {
		return err
	}
	if h.Rating < 0 || h.Rating > MaxRating {
		return validationf("rating must be between 0 and %d", MaxRating)
	}
	if h.ReviewCount < 0 {
		return validationf("review count must not be negative")
	}
	if h.CheckIn.IsZero() || h.CheckOut.IsZero() {
		return validationf("check-in and check-out are required")
	}
	if !h.CheckOut.After(h.CheckIn) {
		return validationf("check-out must be after check-in")
	}
	if h.Price <= 0 {
		return validationf("price must be positive")
	}
	return nil
}

// Nights is the number of whole nights between check-in and check-out.
func (h Hotel) Nights() int {
	return int(Day(h.CheckOut).Sub(Day(h.CheckIn)).Hours() / 24)
}
