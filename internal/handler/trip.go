package handler

import (
	"net/http"
	"strconv"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// tripResponse is a trip as stored plus its derived figures.
type tripResponse struct {
	domain.Trip
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type tripListResponse struct {
	Data       []domain.Trip `json:"data"`
	Pagination pagination    `json:"pagination"`
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100).
// Trips are listed most recent first.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	page, ok := intQuery(w, r, "page")
	if !ok {
		return
	}
	limit, ok := intQuery(w, r, "limit")
	if !ok {
		return
	}
	params := domain.NewPaginationParams(page, limit)

	trips := s.store.Trips()
	lo, hi := params.Bounds(len(trips))
	writeJSON(w, http.StatusOK, tripListResponse{
		Data:       trips[lo:hi],
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: len(trips)},
	})
}

// RefreshTrips handles POST /trips/refresh: reload the list from storage.
func (s *Server) RefreshTrips(w http.ResponseWriter, r *http.Request) {
	trips := s.planner.FetchTrips(r.Context())
	s.forgetAllDetails()
	writeJSON(w, http.StatusOK, tripListResponse{
		Data:       trips,
		Pagination: pagination{Page: 1, Limit: len(trips), Total: len(trips)},
	})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}
	d, err := s.detail(id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detailResponse(d))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}
	d, err := s.detail(id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	removed := d.DeleteTrip(r.Context())
	s.forgetDetail(id)
	if !removed {
		writeError(w, http.StatusNotFound, "not_found", "trip not found")
		return
	}
	s.planner.SyncTrips()
	w.WriteHeader(http.StatusNoContent)
}

func detailResponse(d interface {
	Trip() domain.Trip
	TotalPrice() float64
}) tripResponse {
	t := d.Trip()
	return tripResponse{Trip: t, Nights: t.Nights(), TotalPrice: d.TotalPrice()}
}

// intQuery parses an optional integer query parameter, writing a 400 when it
// is present but not a number.
func intQuery(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", name+" must be an integer")
		return nil, false
	}
	return &n, true
}
