package handler

import (
	"net/http"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/directory"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/service"
)

type searchResponse struct {
	Query     string            `json:"query"`
	Results   []domain.Location `json:"results"`
	IsLoading bool              `json:"isLoading"`
	Error     *errorDetail      `json:"error"`
}

func toSearchResponse(st service.SearchState) searchResponse {
	out := searchResponse{Query: st.Query, Results: st.Results, IsLoading: st.Loading}
	if st.Err != nil {
		e := directory.Classify(st.Err)
		out.Error = &errorDetail{Code: e.Code(), Message: e.Error()}
	}
	return out
}

// ListLocations handles GET /locations: the whole directory.
func (s *Server) ListLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.dir.All())
}

type searchRequest struct {
	Query string `json:"query"`
}

// StartSearch handles POST /locations/search. The search itself may still be
// debouncing when this returns; poll GET /locations/search for the outcome.
// The response is 200 when the state is already final and 202 while loading.
func (s *Server) StartSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	s.search.Search(req.Query)

	st := s.search.State()
	status := http.StatusOK
	if st.Loading {
		status = http.StatusAccepted
	}
	writeJSON(w, status, toSearchResponse(st))
}

// GetSearch handles GET /locations/search.
func (s *Server) GetSearch(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toSearchResponse(s.search.State()))
}

// ClearSearchCache handles DELETE /locations/search/cache.
func (s *Server) ClearSearchCache(w http.ResponseWriter, r *http.Request) {
	if err := s.search.ClearCache(r.Context()); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
