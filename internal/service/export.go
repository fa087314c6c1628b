package service

import (
	"context"
	"time"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

const exportDateLayout = "2006-01-02"

// ExportService flattens the saved trips into export rows.
type ExportService struct {
	store *TripStore
}

// NewExportService constructs an ExportService reading from store.
func NewExportService(store *TripStore) *ExportService {
	return &ExportService{store: store}
}

// Export returns one ExportRow per flight, hotel and activity across all
// trips, in list order: flights first, then hotels, then activities.
// Trips with an empty itinerary contribute one row with empty entry fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []domain.ExportRow
	for _, t := range s.store.Trips() {
		base := domain.ExportRow{
			TripID:          t.ID.String(),
			TripName:        t.Name,
			TripDestination: t.Destination,
			TripStartDate:   t.Date.Format(exportDateLayout),
			TravelStyle:     t.TravelStyle,
		}
		if t.EndDate != nil {
			base.TripEndDate = t.EndDate.Format(exportDateLayout)
		}

		n := len(rows)
		for _, f := range t.Flights {
			row := base
			row.Kind = "flight"
			row.EntryID = f.ID.String()
			row.Title = f.Airline + " " + f.FlightNumber
			row.StartsAt, row.EndsAt = timePtr(f.Departure), timePtr(f.Arrival)
			row.Price = f.Price
			rows = append(rows, row)
		}
		for _, h := range t.Hotels {
			row := base
			row.Kind = "hotel"
			row.EntryID = h.ID.String()
			row.Title = h.Name
			row.StartsAt, row.EndsAt = timePtr(h.CheckIn), timePtr(h.CheckOut)
			row.Price = h.Price
			rows = append(rows, row)
		}
		for _, a := range t.Activities {
			row := base
			row.Kind = "activity"
			row.EntryID = a.ID.String()
			row.Title = a.Name
			row.StartsAt = timePtr(a.TimeSlot)
			row.Price = a.Price
			rows = append(rows, row)
		}
		if len(rows) == n {
			rows = append(rows, base)
		}
	}
	if rows == nil {
		rows = []domain.ExportRow{}
	}
	return rows, nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
