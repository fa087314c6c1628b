package handler

import (
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/service"
)

type planningResponse struct {
	SelectedLocation      *domain.Location    `json:"selectedLocation"`
	StartDate             *openapi_types.Date `json:"startDate"`
	EndDate               *openapi_types.Date `json:"endDate"`
	Name                  string              `json:"name"`
	TravelStyle           domain.TravelStyle  `json:"travelStyle"`
	Description           string              `json:"description"`
	LocationPickerVisible bool                `json:"locationPickerVisible"`
	DatePickerVisible     bool                `json:"datePickerVisible"`
	NewlyCreated          *domain.Trip        `json:"newlyCreated"`
	Trips                 []domain.Trip       `json:"trips"`
}

func toPlanningResponse(st service.PlanningState) planningResponse {
	return planningResponse{
		SelectedLocation:      st.SelectedLocation,
		StartDate:             toDate(st.DateRange.Start),
		EndDate:               toDate(st.DateRange.End),
		Name:                  st.Name,
		TravelStyle:           st.TravelStyle,
		Description:           st.Description,
		LocationPickerVisible: st.LocationPickerVisible,
		DatePickerVisible:     st.DatePickerVisible,
		NewlyCreated:          st.NewlyCreated,
		Trips:                 st.Trips,
	}
}

func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: domain.Day(*t)}
}

func fromDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := domain.Day(d.Time)
	return &t
}

// GetPlanning handles GET /planning.
func (s *Server) GetPlanning(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toPlanningResponse(s.planner.State()))
}

type selectLocationRequest struct {
	LocationID string `json:"locationId" validate:"required"`
}

// SelectLocation handles PUT /planning/location.
func (s *Server) SelectLocation(w http.ResponseWriter, r *http.Request) {
	var req selectLocationRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	loc, err := s.dir.Lookup(r.Context(), req.LocationID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.planner.SelectLocation(loc)
	writeJSON(w, http.StatusOK, toPlanningResponse(s.planner.State()))
}

type dateRangeRequest struct {
	Start *openapi_types.Date `json:"start"`
	End   *openapi_types.Date `json:"end"`
}

// SetDates handles PUT /planning/dates. Either end may be null; ordering is
// only checked when the trip is created.
func (s *Server) SetDates(w http.ResponseWriter, r *http.Request) {
	var req dateRangeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.planner.SetDateRange(domain.DateRange{Start: fromDate(req.Start), End: fromDate(req.End)})
	writeJSON(w, http.StatusOK, toPlanningResponse(s.planner.State()))
}

type selectDateRequest struct {
	Date *openapi_types.Date `json:"date" validate:"required"`
}

// SelectDate handles POST /planning/select-date: one calendar tap.
func (s *Server) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req selectDateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.planner.SelectDate(req.Date.Time)
	writeJSON(w, http.StatusOK, toPlanningResponse(s.planner.State()))
}

type formRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	TravelStyle *string `json:"travelStyle"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateForm handles PUT /planning/form. Absent fields are left as they are.
func (s *Server) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var req formRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Name != nil {
		s.planner.SetName(*req.Name)
	}
	if req.TravelStyle != nil {
		s.planner.SetTravelStyle(domain.ParseTravelStyle(*req.TravelStyle))
	}
	if req.Description != nil {
		s.planner.SetDescription(*req.Description)
	}
	writeJSON(w, http.StatusOK, toPlanningResponse(s.planner.State()))
}

type pickersRequest struct {
	Location *bool `json:"location"`
	Dates    *bool `json:"dates"`
}

// SetPickers handles PUT /planning/pickers.
func (s *Server) SetPickers(w http.ResponseWriter, r *http.Request) {
	var req pickersRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Location != nil {
		s.planner.SetLocationPickerVisible(*req.Location)
	}
	if req.Dates != nil {
		s.planner.SetDatePickerVisible(*req.Dates)
	}
	writeJSON(w, http.StatusOK, toPlanningResponse(s.planner.State()))
}

type createTripRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	TravelStyle string `json:"travelStyle"`
	Description string `json:"description" validate:"max=1000"`
}

// CreatePlannedTrip handles POST /planning/trips. It needs a selected
// location and a complete date range; otherwise 422 precondition_failed.
func (s *Server) CreatePlannedTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	trip, err := s.planner.CreateDetailedTrip(r.Context(), req.Name, domain.TravelStyle(req.TravelStyle), req.Description)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Location", "/trips/"+trip.ID.String())
	writeJSON(w, http.StatusCreated, tripResponse{Trip: trip, Nights: trip.Nights()})
}

// ClearNewlyCreated handles DELETE /planning/newly-created.
func (s *Server) ClearNewlyCreated(w http.ResponseWriter, _ *http.Request) {
	s.planner.ClearNewlyCreated()
	w.WriteHeader(http.StatusNoContent)
}
