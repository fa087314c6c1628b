package service_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/repo"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/service"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// mockSlot is a testify mock of repo.SlotRepo for failure paths.
type mockSlot struct {
	mock.Mock
}

func (m *mockSlot) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockSlot) Put(ctx context.Context, key string, data []byte) error {
	return m.Called(ctx, key, data).Error(0)
}

func (m *mockSlot) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// newStore returns a store over a fresh in-memory slot.
func newStore(t *testing.T) (*service.TripStore, repo.SlotRepo) {
	t.Helper()
	slot := repo.NewMemorySlotRepo()
	return service.NewTripStore(context.Background(), slot, service.WithStoreLogger(quietLogger)), slot
}

// persisted decodes whatever the slot currently holds.
func persisted(t *testing.T, slot repo.SlotRepo) []domain.Trip {
	t.Helper()
	data, err := slot.Get(context.Background(), service.DefaultSlotKey)
	require.NoError(t, err)
	var trips []domain.Trip
	require.NoError(t, json.Unmarshal(data, &trips))
	return trips
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tripFixture(name string) domain.Trip {
	end := day(2026, 3, 5)
	return domain.Trip{
		ID:          uuid.New(),
		Name:        name,
		Destination: "Paris, France",
		Date:        day(2026, 3, 1),
		EndDate:     &end,
		Images:      []string{},
		TravelStyle: domain.TravelStyleSolo,
		Flights:     []domain.Flight{},
		Hotels:      []domain.Hotel{},
		Activities:  []domain.Activity{},
	}
}

func flightFixture() domain.Flight {
	dep := time.Date(2026, 3, 1, 8, 35, 0, 0, time.UTC)
	return domain.Flight{
		Airline:      "American Airlines",
		FlightNumber: "AA-829",
		Departure:    dep,
		Arrival:      dep.Add(105 * time.Minute),
		Origin:       "LOS",
		Destination:  "CDG",
		Price:        123450,
	}
}

func hotelFixture() domain.Hotel {
	return domain.Hotel{
		Name:        "Riviera Resort, Lekki",
		Address:     "18, Kenneth Agbakuru Street, Off Access Bank Admiralty Way",
		Rating:      8.5,
		ReviewCount: 436,
		RoomType:    "King size room",
		CheckIn:     day(2026, 3, 1),
		CheckOut:    day(2026, 3, 4),
		Price:       123450,
	}
}

func activityFixture() domain.Activity {
	return domain.Activity{
		Name:        "The Museum of Modern Art",
		Description: "Works from Van Gogh to Warhol and beyond",
		Location:    "Melbourne, Australia",
		Rating:      8.5,
		ReviewCount: 436,
		Duration:    "1 hour",
		TimeSlot:    time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		Day:         "Day 1 (Activity 1)",
		Price:       123450,
	}
}
