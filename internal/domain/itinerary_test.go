package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

var day = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func flightFixture() domain.Flight {
	return domain.Flight{
		Airline:      "Air Peace",
		FlightNumber: "P4 7121",
		Departure:    day.Add(10 * time.Hour),
		Arrival:      day.Add(11*time.Hour + 45*time.Minute),
		Origin:       "LOS",
		Destination:  "ABV",
		Price:        120000,
	}
}

func hotelFixture() domain.Hotel {
	return domain.Hotel{
		Name:        "Riviera Resort",
		Address:     "18 Kenneth Agbakuru Street, Lekki",
		Rating:      8.5,
		ReviewCount: 436,
		RoomType:    "King size room",
		CheckIn:     day.Add(14 * time.Hour),
		CheckOut:    day.AddDate(0, 0, 3).Add(11 * time.Hour),
		Price:       230000,
	}
}

func activityFixture() domain.Activity {
	return domain.Activity{
		Name:        "The Museum of Modern Art",
		Description: "Works from Van Gogh to Warhol",
		Location:    "Melbourne, Australia",
		Rating:      8.5,
		ReviewCount: 436,
		Duration:    "1 hour",
		TimeSlot:    day.Add(10 * time.Hour),
		Day:         "Day 1 (Activity 1)",
		Price:       123450,
	}
}

func TestFlight_FormattedDuration(t *testing.T) {
	assert.Equal(t, "1h 45m", flightFixture().FormattedDuration())
	assert.Equal(t, 105*time.Minute, flightFixture().Duration())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h 45m", domain.FormatDuration(45*time.Minute))
	assert.Equal(t, "13h 0m", domain.FormatDuration(13*time.Hour+30*time.Second))
}

func TestNewFlight_AssignsID(t *testing.T) {
	f, err := domain.NewFlight(flightFixture())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, f.ID)

	keep := flightFixture()
	keep.ID = uuid.New()
	f, err = domain.NewFlight(keep)
	require.NoError(t, err)
	assert.Equal(t, keep.ID, f.ID)
}

func TestNewFlight_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Flight)
	}{
		{"missing airline", func(f *domain.Flight) { f.Airline = " " }},
		{"missing origin", func(f *domain.Flight) { f.Origin = "" }},
		{"arrival before departure", func(f *domain.Flight) { f.Arrival = f.Departure.Add(-time.Minute) }},
		{"arrival equals departure", func(f *domain.Flight) { f.Arrival = f.Departure }},
		{"negative price", func(f *domain.Flight) { f.Price = -1 }},
		{"zero departure", func(f *domain.Flight) { f.Departure = time.Time{} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := flightFixture()
			tc.mutate(&f)
			got, err := domain.NewFlight(f)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, domain.Flight{}, got)
		})
	}
}

func TestNewFlight_FreeFlightAllowed(t *testing.T) {
	f := flightFixture()
	f.Price = 0
	_, err := domain.NewFlight(f)
	assert.NoError(t, err)
}

func TestNewHotel_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Hotel)
	}{
		{"missing name", func(h *domain.Hotel) { h.Name = "" }},
		{"rating above scale", func(h *domain.Hotel) { h.Rating = 11 }},
		{"negative reviews", func(h *domain.Hotel) { h.ReviewCount = -1 }},
		{"check-out before check-in", func(h *domain.Hotel) { h.CheckOut = h.CheckIn.Add(-time.Hour) }},
		{"check-out equals check-in", func(h *domain.Hotel) { h.CheckOut = h.CheckIn }},
		{"zero price", func(h *domain.Hotel) { h.Price = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := hotelFixture()
			tc.mutate(&h)
			_, err := domain.NewHotel(h)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewHotel_Valid(t *testing.T) {
	h, err := domain.NewHotel(hotelFixture())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, h.ID)
	assert.NotNil(t, h.Images)
	assert.Equal(t, 3, h.Nights())
}

func TestNewActivity_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Activity)
	}{
		{"missing name", func(a *domain.Activity) { a.Name = "" }},
		{"zero rating", func(a *domain.Activity) { a.Rating = 0 }},
		{"negative reviews", func(a *domain.Activity) { a.ReviewCount = -3 }},
		{"zero price", func(a *domain.Activity) { a.Price = 0 }},
		{"no time slot", func(a *domain.Activity) { a.TimeSlot = time.Time{} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := activityFixture()
			tc.mutate(&a)
			_, err := domain.NewActivity(a)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewActivity_Valid(t *testing.T) {
	a, err := domain.NewActivity(activityFixture())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, "Day 1 (Activity 1)", a.Day)
}
