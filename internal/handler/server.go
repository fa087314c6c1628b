// Package handler implements the HTTP surface of the trip planner on chi.
// All handlers are methods on Server and are split into files by resource
// (trip.go, itinerary.go, planning.go, location.go, remote.go, export.go).
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/directory"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/service"
)

// RemoteTrips is the hosted trip API. Defining it here lets tests substitute
// a fake for *remote.Client.
type RemoteTrips interface {
	CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	ListTrips(ctx context.Context) ([]domain.Trip, error)
}

// Deps are the collaborators a Server is built from. Remote may be nil, in
// which case the /remote endpoints answer 503.
type Deps struct {
	Store     *service.TripStore
	Planner   *service.Planner
	Search    *service.LocationSearch
	Directory directory.Directory
	Export    *service.ExportService
	Remote    RemoteTrips
	OpenAPI   []byte
	Logger    *slog.Logger
}

// Server holds the state containers behind the API.
type Server struct {
	store    *service.TripStore
	planner  *service.Planner
	search   *service.LocationSearch
	dir      directory.Directory
	export   *service.ExportService
	remote   RemoteTrips
	openAPI  []byte
	log      *slog.Logger
	validate *validator.Validate

	// One TripDetail per open trip so concurrent edits to the same trip share
	// its writer lock.
	mu      sync.Mutex
	details map[uuid.UUID]*service.TripDetail
}

// NewServer constructs the Server with all its dependencies.
func NewServer(deps Deps) *Server {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	export := deps.Export
	if export == nil {
		export = service.NewExportService(deps.Store)
	}
	return &Server{
		store:    deps.Store,
		planner:  deps.Planner,
		search:   deps.Search,
		dir:      deps.Directory,
		export:   export,
		remote:   deps.Remote,
		openAPI:  deps.OpenAPI,
		log:      log,
		validate: newValidator(),
		details:  make(map[uuid.UUID]*service.TripDetail),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names, not Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Routes returns the API router. Cross-cutting middleware is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/refresh", s.RefreshTrips)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Delete("/", s.DeleteTrip)

			r.Post("/flights", s.AddFlight)
			r.Delete("/flights", s.RemoveFlights)
			r.Delete("/flights/{entryID}", s.RemoveFlight)

			r.Post("/hotels", s.AddHotel)
			r.Delete("/hotels", s.RemoveHotels)
			r.Delete("/hotels/{entryID}", s.RemoveHotel)

			r.Post("/activities", s.AddActivity)
			r.Delete("/activities", s.RemoveActivities)
			r.Delete("/activities/{entryID}", s.RemoveActivity)
		})
	})

	r.Route("/planning", func(r chi.Router) {
		r.Get("/", s.GetPlanning)
		r.Put("/location", s.SelectLocation)
		r.Put("/dates", s.SetDates)
		r.Post("/select-date", s.SelectDate)
		r.Put("/form", s.UpdateForm)
		r.Put("/pickers", s.SetPickers)
		r.Post("/trips", s.CreatePlannedTrip)
		r.Delete("/newly-created", s.ClearNewlyCreated)
	})

	r.Route("/locations", func(r chi.Router) {
		r.Get("/", s.ListLocations)
		r.Get("/search", s.GetSearch)
		r.Post("/search", s.StartSearch)
		r.Delete("/search/cache", s.ClearSearchCache)
	})

	r.Route("/remote/trips", func(r chi.Router) {
		r.Get("/", s.ListRemoteTrips)
		r.Post("/", s.CreateRemoteTrip)
	})

	r.Get("/export", s.GetExport)

	return r
}

// detail returns the shared TripDetail for id, or domain.ErrNotFound when the
// store no longer holds the trip.
func (s *Server) detail(id uuid.UUID) (*service.TripDetail, error) {
	trip, err := s.store.Get(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		delete(s.details, id)
		return nil, err
	}
	d, ok := s.details[id]
	if !ok {
		d = service.NewTripDetail(s.store, trip)
		s.details[id] = d
	}
	return d, nil
}

func (s *Server) forgetDetail(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.details, id)
}

func (s *Server) forgetAllDetails() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.details)
}

// tripIDParam parses the {tripID} URL parameter, writing a 400 on failure.
func tripIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return uuidParam(w, r, "tripID")
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
