package handler

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
	Trips  int    `json:"trips"`
}

// GetHealth handles GET /healthz.
// It returns 200 with {"status":"ok"} and the number of saved trips.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Trips: len(s.store.Trips())})
}

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	if len(s.openAPI) == 0 {
		writeError(w, http.StatusNotFound, "not_found", "no API description bundled")
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(s.openAPI)
}
