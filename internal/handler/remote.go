package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

func (s *Server) remoteConfigured(w http.ResponseWriter) bool {
	if s.remote == nil {
		writeError(w, http.StatusServiceUnavailable, "remote_unavailable", "remote trip API is not configured")
		return false
	}
	return true
}

// ListRemoteTrips handles GET /remote/trips. Failures of the remote API are 502.
func (s *Server) ListRemoteTrips(w http.ResponseWriter, r *http.Request) {
	if !s.remoteConfigured(w) {
		return
	}
	trips, err := s.remote.ListTrips(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// CreateRemoteTrip handles POST /remote/trips. The body uses the stored trip
// layout; a missing id is generated. The local store is not touched.
func (s *Server) CreateRemoteTrip(w http.ResponseWriter, r *http.Request) {
	if !s.remoteConfigured(w) {
		return
	}
	var trip domain.Trip
	if !s.decodeJSON(w, r, &trip) {
		return
	}
	if trip.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "name is required")
		return
	}
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	if trip.TravelStyle == "" {
		trip.TravelStyle = domain.TravelStyleSolo
	}

	created, err := s.remote.CreateTrip(r.Context(), trip)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
