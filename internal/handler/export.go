package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// csvHeaders is the first row of every CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_destination", "trip_start_date", "trip_end_date", "travel_style",
	"kind", "entry_id", "title", "starts_at", "ends_at", "price",
}

type exportRow struct {
	TripID          string              `json:"tripId"`
	TripName        string              `json:"tripName"`
	TripDestination string              `json:"tripDestination"`
	TripStartDate   openapi_types.Date  `json:"tripStartDate"`
	TripEndDate     *openapi_types.Date `json:"tripEndDate,omitempty"`
	TravelStyle     domain.TravelStyle  `json:"travelStyle"`
	Kind            string              `json:"kind,omitempty"`
	EntryID         string              `json:"entryId,omitempty"`
	Title           string              `json:"title,omitempty"`
	StartsAt        *time.Time          `json:"startsAt,omitempty"`
	EndsAt          *time.Time          `json:"endsAt,omitempty"`
	Price           *float64            `json:"price,omitempty"`
}

// GetExport handles GET /export.
// It returns one row per itinerary entry across all trips, and one row for
// each trip without entries. Use ?format=csv for CSV; the default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		out := make([]exportRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, toExportRow(row))
		}
		writeJSON(w, http.StatusOK, out)
	case "csv":
		body := buildCSV(rows)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	default:
		writeError(w, http.StatusBadRequest, "bad_request", "format must be json or csv")
	}
}

func buildCSV(rows []domain.ExportRow) []byte {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write(toCSVRecord(row))
	}
	cw.Flush()
	return buf.Bytes()
}

// toExportRow maps a domain row to its JSON shape. Entry fields of a trip
// without entries are omitted.
func toExportRow(r domain.ExportRow) exportRow {
	out := exportRow{
		TripID:          r.TripID,
		TripName:        r.TripName,
		TripDestination: r.TripDestination,
		TripStartDate:   mustParseDate(r.TripStartDate),
		TravelStyle:     r.TravelStyle,
		Kind:            r.Kind,
		EntryID:         r.EntryID,
		Title:           r.Title,
		StartsAt:        r.StartsAt,
		EndsAt:          r.EndsAt,
	}
	if r.TripEndDate != "" {
		d := mustParseDate(r.TripEndDate)
		out.TripEndDate = &d
	}
	if r.Kind != "" {
		p := r.Price
		out.Price = &p
	}
	return out
}

func toCSVRecord(r domain.ExportRow) []string {
	price := ""
	if r.Kind != "" {
		price = strconv.FormatFloat(r.Price, 'f', 2, 64)
	}
	return []string{
		r.TripID,
		r.TripName,
		r.TripDestination,
		r.TripStartDate,
		r.TripEndDate,
		string(r.TravelStyle),
		r.Kind,
		r.EntryID,
		r.Title,
		formatOptionalTime(r.StartsAt),
		formatOptionalTime(r.EndsAt),
		price,
	}
}

// mustParseDate parses a "2006-01-02" string produced by the export service.
// Panics on malformed input.
func mustParseDate(s string) openapi_types.Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic("handler: malformed export date: " + s)
	}
	return openapi_types.Date{Time: t}
}

// formatOptionalTime returns t in RFC 3339, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
