package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItineraryEntries(t *testing.T) {
	env := newTestEnv(t, nil)
	trip := env.createTrip(t, "itinerary")
	base := "/trips/" + trip.ID.String()

	rec := env.do(t, http.MethodPost, base+"/flights", flightJSON())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = env.do(t, http.MethodPost, base+"/hotels", hotelJSON())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = env.do(t, http.MethodPost, base+"/activities", activityJSON())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	got := decode[tripBody](t, rec)
	require.Len(t, got.Flights, 1)
	require.Len(t, got.Hotels, 1)
	require.Len(t, got.Activities, 1)
	assert.NotEqual(t, uuid.Nil, got.Flights[0].ID)
	assert.Equal(t, "1h 45m", got.Flights[0].FormattedDuration())
	assert.InDelta(t, 123450+50000+10000, got.TotalPrice, 0.001)

	// Written through to the store.
	stored, err := env.store.Get(trip.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Flights, 1)
	assert.Len(t, stored.Hotels, 1)
	assert.Len(t, stored.Activities, 1)
	assert.Len(t, env.planner.State().Trips[0].Flights, 1)
}

func TestAddItinerary_Rejections(t *testing.T) {
	env := newTestEnv(t, nil)
	trip := env.createTrip(t, "strict")
	base := "/trips/" + trip.ID.String()

	t.Run("arrival before departure", func(t *testing.T) {
		f := flightJSON()
		f["arrival"] = "2026-04-01T07:00:00Z"
		rec := env.do(t, http.MethodPost, base+"/flights", f)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		h := hotelJSON()
		h["rating"] = 11
		rec := env.do(t, http.MethodPost, base+"/hotels", h)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("blank room type", func(t *testing.T) {
		h := hotelJSON()
		h["roomType"] = ""
		rec := env.do(t, http.MethodPost, base+"/hotels", h)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decode[errorBody](t, rec)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, "roomType: failed required", body.Error.Message)
	})

	t.Run("duplicate id", func(t *testing.T) {
		a := activityJSON()
		a["id"] = uuid.NewString()
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, base+"/activities", a).Code)
		rec := env.do(t, http.MethodPost, base+"/activities", a)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "conflict", decode[errorBody](t, rec).Error.Code)
	})

	t.Run("unknown trip", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/trips/"+uuid.NewString()+"/flights", flightJSON())
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRemoveByPositions(t *testing.T) {
	env := newTestEnv(t, nil)
	trip := env.createTrip(t, "trim")
	base := "/trips/" + trip.ID.String()

	for _, number := range []string{"AA-1", "AA-2", "AA-3"} {
		f := flightJSON()
		f["flightNumber"] = number
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, base+"/flights", f).Code)
	}

	rec := env.do(t, http.MethodDelete, base+"/flights?positions=0,2", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[tripBody](t, rec)
	require.Len(t, got.Flights, 1)
	assert.Equal(t, "AA-2", got.Flights[0].FlightNumber)

	rec = env.do(t, http.MethodDelete, base+"/flights?positions=5", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.do(t, http.MethodDelete, base+"/flights", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodDelete, base+"/hotels?positions=x", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveByEntryID(t *testing.T) {
	env := newTestEnv(t, nil)
	trip := env.createTrip(t, "by id")
	base := "/trips/" + trip.ID.String()

	rec := env.do(t, http.MethodPost, base+"/hotels", hotelJSON())
	require.Equal(t, http.StatusCreated, rec.Code)
	hotelID := decode[tripBody](t, rec).Hotels[0].ID

	rec = env.do(t, http.MethodDelete, base+"/hotels/"+hotelID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[tripBody](t, rec).Hotels)

	rec = env.do(t, http.MethodDelete, base+"/hotels/"+hotelID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, base+"/activities/nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
