package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/service"
)

type flightRequest struct {
	ID           *uuid.UUID `json:"id"`
	Airline      string     `json:"airline" validate:"required,max=100"`
	FlightNumber string     `json:"flightNumber" validate:"required,max=20"`
	Departure    time.Time  `json:"departure" validate:"required"`
	Arrival      time.Time  `json:"arrival" validate:"required,gtfield=Departure"`
	Origin       string     `json:"origin" validate:"required"`
	Destination  string     `json:"destination" validate:"required"`
	Price        float64    `json:"price" validate:"gte=0"`
}

func (req flightRequest) toDomain() domain.Flight {
	return domain.Flight{
		ID:           optionalID(req.ID),
		Airline:      req.Airline,
		FlightNumber: req.FlightNumber,
		Departure:    req.Departure,
		Arrival:      req.Arrival,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Price:        req.Price,
	}
}

type hotelRequest struct {
	ID          *uuid.UUID `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Address     string     `json:"address" validate:"required"`
	Rating      float64    `json:"rating" validate:"gte=0,lte=10"`
	ReviewCount int        `json:"reviewCount" validate:"gte=0"`
	RoomType    string     `json:"roomType" validate:"required"`
	CheckIn     time.Time  `json:"checkIn" validate:"required"`
	CheckOut    time.Time  `json:"checkOut" validate:"required,gtfield=CheckIn"`
	Price       float64    `json:"price" validate:"gt=0"`
	Images      []string   `json:"images" validate:"omitempty,dive,required"`
}

func (req hotelRequest) toDomain() domain.Hotel {
	return domain.Hotel{
		ID:          optionalID(req.ID),
		Name:        req.Name,
		Address:     req.Address,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
		RoomType:    req.RoomType,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Price:       req.Price,
		Images:      req.Images,
	}
}

type activityRequest struct {
	ID          *uuid.UUID `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Location    string     `json:"location" validate:"required"`
	Rating      float64    `json:"rating" validate:"gt=0,lte=10"`
	ReviewCount int        `json:"reviewCount" validate:"gte=0"`
	Duration    string     `json:"duration" validate:"required"`
	TimeSlot    time.Time  `json:"timeSlot" validate:"required"`
	Day         string     `json:"day"`
	Price       float64    `json:"price" validate:"gt=0"`
	Images      []string   `json:"images" validate:"omitempty,dive,required"`
}

func (req activityRequest) toDomain() domain.Activity {
	return domain.Activity{
		ID:          optionalID(req.ID),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
		Duration:    req.Duration,
		TimeSlot:    req.TimeSlot,
		Day:         req.Day,
		Price:       req.Price,
		Images:      req.Images,
	}
}

func optionalID(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

// editTrip resolves the trip, applies op and answers with the updated trip.
func (s *Server) editTrip(w http.ResponseWriter, r *http.Request, status int, op func(ctx context.Context, d *service.TripDetail) error) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}
	d, err := s.detail(id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := op(r.Context(), d); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.planner.SyncTrips()
	writeJSON(w, status, detailResponse(d))
}

// AddFlight handles POST /trips/{tripID}/flights.
func (s *Server) AddFlight(w http.ResponseWriter, r *http.Request) {
	var req flightRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.editTrip(w, r, http.StatusCreated, func(ctx context.Context, d *service.TripDetail) error {
		return d.AddFlight(ctx, req.toDomain())
	})
}

// AddHotel handles POST /trips/{tripID}/hotels.
func (s *Server) AddHotel(w http.ResponseWriter, r *http.Request) {
	var req hotelRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.editTrip(w, r, http.StatusCreated, func(ctx context.Context, d *service.TripDetail) error {
		return d.AddHotel(ctx, req.toDomain())
	})
}

// AddActivity handles POST /trips/{tripID}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.editTrip(w, r, http.StatusCreated, func(ctx context.Context, d *service.TripDetail) error {
		return d.AddActivity(ctx, req.toDomain())
	})
}

// RemoveFlights handles DELETE /trips/{tripID}/flights?positions=0,2.
func (s *Server) RemoveFlights(w http.ResponseWriter, r *http.Request) {
	s.removePositions(w, r, (*service.TripDetail).RemoveFlights)
}

// RemoveHotels handles DELETE /trips/{tripID}/hotels?positions=0,2.
func (s *Server) RemoveHotels(w http.ResponseWriter, r *http.Request) {
	s.removePositions(w, r, (*service.TripDetail).RemoveHotels)
}

// RemoveActivities handles DELETE /trips/{tripID}/activities?positions=0,2.
func (s *Server) RemoveActivities(w http.ResponseWriter, r *http.Request) {
	s.removePositions(w, r, (*service.TripDetail).RemoveActivities)
}

// RemoveFlight handles DELETE /trips/{tripID}/flights/{entryID}.
func (s *Server) RemoveFlight(w http.ResponseWriter, r *http.Request) {
	s.removeEntry(w, r, (*service.TripDetail).FlightIndex, (*service.TripDetail).RemoveFlights)
}

// RemoveHotel handles DELETE /trips/{tripID}/hotels/{entryID}.
func (s *Server) RemoveHotel(w http.ResponseWriter, r *http.Request) {
	s.removeEntry(w, r, (*service.TripDetail).HotelIndex, (*service.TripDetail).RemoveHotels)
}

// RemoveActivity handles DELETE /trips/{tripID}/activities/{entryID}.
func (s *Server) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	s.removeEntry(w, r, (*service.TripDetail).ActivityIndex, (*service.TripDetail).RemoveActivities)
}

type removeFunc func(d *service.TripDetail, ctx context.Context, positions ...int) error

func (s *Server) removePositions(w http.ResponseWriter, r *http.Request, remove removeFunc) {
	positions, err := parsePositions(r.URL.Query().Get("positions"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	s.editTrip(w, r, http.StatusOK, func(ctx context.Context, d *service.TripDetail) error {
		return remove(d, ctx, positions...)
	})
}

func (s *Server) removeEntry(w http.ResponseWriter, r *http.Request, index func(*service.TripDetail, uuid.UUID) int, remove removeFunc) {
	entryID, ok := uuidParam(w, r, "entryID")
	if !ok {
		return
	}
	s.editTrip(w, r, http.StatusOK, func(ctx context.Context, d *service.TripDetail) error {
		i := index(d, entryID)
		if i < 0 {
			return domain.ErrNotFound
		}
		return remove(d, ctx, i)
	})
}

// parsePositions reads a comma-separated list of list positions.
func parsePositions(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errPositionsRequired
	}
	var out []int
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errPositionsInvalid
		}
		out = append(out, n)
	}
	return out, nil
}

var (
	errPositionsRequired = requestError("positions query parameter is required")
	errPositionsInvalid  = requestError("positions must be comma-separated integers")
)

type requestError string

func (e requestError) Error() string { return string(e) }
