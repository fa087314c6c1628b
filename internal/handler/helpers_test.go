package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/directory"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/handler"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/repo"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/service"
)

// fakeRemote is a test double for handler.RemoteTrips.
// Set only the function fields the test needs.
type fakeRemote struct {
	create func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	list   func(ctx context.Context) ([]domain.Trip, error)
}

func (f *fakeRemote) CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return f.create(ctx, trip)
}

func (f *fakeRemote) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	return f.list(ctx)
}

// compile-time check: fakeRemote must satisfy handler.RemoteTrips.
var _ handler.RemoteTrips = (*fakeRemote)(nil)

type testEnv struct {
	http    http.Handler
	store   *service.TripStore
	planner *service.Planner
	search  *service.LocationSearch
}

// newTestEnv wires real services over an in-memory slot, exactly as main.go
// does with the memory backend.
func newTestEnv(t *testing.T, remote handler.RemoteTrips) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := service.NewTripStore(context.Background(), repo.NewMemorySlotRepo(), service.WithStoreLogger(logger))
	planner := service.NewPlanner(store)
	dir := directory.NewMock()
	search := service.NewLocationSearch(dir, service.WithDebounce(20*time.Millisecond), service.WithSearchLogger(logger))
	t.Cleanup(search.Close)

	srv := handler.NewServer(handler.Deps{
		Store:     store,
		Planner:   planner,
		Search:    search,
		Directory: dir,
		Remote:    remote,
		OpenAPI:   []byte("openapi: 3.0.3\n"),
		Logger:    logger,
	})
	return &testEnv{http: srv.Routes(), store: store, planner: planner, search: search}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.http.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type tripBody struct {
	domain.Trip
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
}

// createTrip drives the planning endpoints to produce one saved trip.
func (e *testEnv) createTrip(t *testing.T, name string) tripBody {
	t.Helper()
	require.Equal(t, http.StatusOK, e.do(t, http.MethodPut, "/planning/location", map[string]string{"locationId": "lagos"}).Code)
	require.Equal(t, http.StatusOK, e.do(t, http.MethodPut, "/planning/dates", map[string]string{"start": "2026-04-01", "end": "2026-04-04"}).Code)
	rec := e.do(t, http.MethodPost, "/planning/trips", map[string]string{"name": name, "travelStyle": "family"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[tripBody](t, rec)
}

func flightJSON() map[string]any {
	return map[string]any{
		"airline":      "American Airlines",
		"flightNumber": "AA-829",
		"departure":    "2026-04-01T08:35:00Z",
		"arrival":      "2026-04-01T10:20:00Z",
		"origin":       "LOS",
		"destination":  "CDG",
		"price":        123450,
	}
}

func hotelJSON() map[string]any {
	return map[string]any{
		"name":        "Riviera Resort, Lekki",
		"address":     "18, Kenneth Agbakuru Street",
		"rating":      8.5,
		"reviewCount": 436,
		"roomType":    "King size room",
		"checkIn":     "2026-04-01T14:00:00Z",
		"checkOut":    "2026-04-04T11:00:00Z",
		"price":       50000,
	}
}

func activityJSON() map[string]any {
	return map[string]any{
		"name":        "The Museum of Modern Art",
		"location":    "Melbourne, Australia",
		"rating":      8.5,
		"reviewCount": 436,
		"duration":    "1 hour",
		"timeSlot":    "2026-04-02T10:30:00Z",
		"day":         "Day 1 (Activity 1)",
		"price":       10000,
	}
}
