package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

type planningBody struct {
	SelectedLocation      *domain.Location `json:"selectedLocation"`
	StartDate             *string          `json:"startDate"`
	EndDate               *string          `json:"endDate"`
	Name                  string           `json:"name"`
	TravelStyle           string           `json:"travelStyle"`
	Description           string           `json:"description"`
	LocationPickerVisible bool             `json:"locationPickerVisible"`
	DatePickerVisible     bool             `json:"datePickerVisible"`
	NewlyCreated          *domain.Trip     `json:"newlyCreated"`
	Trips                 []domain.Trip    `json:"trips"`
}

func TestGetPlanning_Initial(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/planning", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[planningBody](t, rec)
	assert.Nil(t, got.SelectedLocation)
	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.EndDate)
	assert.Nil(t, got.NewlyCreated)
	assert.Empty(t, got.Trips)
	assert.False(t, got.LocationPickerVisible)
	assert.False(t, got.DatePickerVisible)
}

func TestSelectLocation(t *testing.T) {
	env := newTestEnv(t, nil)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, "/planning/pickers", map[string]bool{"location": true}).Code)

	rec := env.do(t, http.MethodPut, "/planning/location", map[string]string{"locationId": "paris"})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[planningBody](t, rec)
	require.NotNil(t, got.SelectedLocation)
	assert.Equal(t, "paris", got.SelectedLocation.ID)
	assert.False(t, got.LocationPickerVisible, "picking a location closes the picker")

	rec = env.do(t, http.MethodPut, "/planning/location", map[string]string{"locationId": "atlantis"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode[errorBody](t, rec).Error.Code)
}

func TestSelectDate_Taps(t *testing.T) {
	env := newTestEnv(t, nil)
	tap := func(date string) planningBody {
		rec := env.do(t, http.MethodPost, "/planning/select-date", map[string]string{"date": date})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		return decode[planningBody](t, rec)
	}

	got := tap("2026-05-10")
	require.NotNil(t, got.StartDate)
	assert.Equal(t, "2026-05-10", *got.StartDate)
	assert.Nil(t, got.EndDate)

	got = tap("2026-05-14")
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2026-05-14", *got.EndDate)

	got = tap("2026-05-01")
	assert.Equal(t, "2026-05-01", *got.StartDate)
	assert.Nil(t, got.EndDate, "a full range restarts on the next tap")

	rec := env.do(t, http.MethodPost, "/planning/select-date", map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateForm_PartialFields(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPut, "/planning/form", map[string]string{"name": "Lisbon", "travelStyle": "COUPLE"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodPut, "/planning/form", map[string]string{"description": "long weekend"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[planningBody](t, rec)
	assert.Equal(t, "Lisbon", got.Name)
	assert.Equal(t, "couple", got.TravelStyle)
	assert.Equal(t, "long weekend", got.Description)
}

func TestCreatePlannedTrip(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/planning/trips", map[string]string{"name": "too early"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "precondition_failed", decode[errorBody](t, rec).Error.Code)
	assert.Empty(t, env.store.Trips())

	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, "/planning/location", map[string]string{"locationId": "lagos"}).Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, "/planning/dates", map[string]string{"start": "2026-04-04", "end": "2026-04-01"}).Code)
	rec = env.do(t, http.MethodPost, "/planning/trips", map[string]string{"name": "backwards"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decode[errorBody](t, rec).Error.Code)

	created := env.createTrip(t, "Bahamas Family Trip")
	assert.Equal(t, "lagos", created.Location.ID)
	assert.Equal(t, 3, created.Nights)

	rec = env.do(t, http.MethodGet, "/planning", nil)
	got := decode[planningBody](t, rec)
	require.NotNil(t, got.NewlyCreated)
	assert.Equal(t, created.ID, got.NewlyCreated.ID)
	require.Len(t, got.Trips, 1)
	assert.Nil(t, got.SelectedLocation, "form is reset after creation")

	rec = env.do(t, http.MethodGet, "/trips/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreatePlannedTrip_LocationHeader(t *testing.T) {
	env := newTestEnv(t, nil)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, "/planning/location", map[string]string{"locationId": "accra"}).Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, "/planning/dates", map[string]string{"start": "2026-06-01", "end": "2026-06-02"}).Code)

	rec := env.do(t, http.MethodPost, "/planning/trips", map[string]string{"name": "Accra"})
	require.Equal(t, http.StatusCreated, rec.Code)
	got := decode[tripBody](t, rec)
	assert.Equal(t, "/trips/"+got.ID.String(), rec.Header().Get("Location"))
	assert.Equal(t, domain.TravelStyleSolo, got.TravelStyle)
}

func TestClearNewlyCreated(t *testing.T) {
	env := newTestEnv(t, nil)
	env.createTrip(t, "fresh")
	require.NotNil(t, env.planner.State().NewlyCreated)

	rec := env.do(t, http.MethodDelete, "/planning/newly-created", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, env.planner.State().NewlyCreated)
}
