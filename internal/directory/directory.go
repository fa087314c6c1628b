// Package directory is the source of searchable locations: a fixed in-memory
// list standing in for a geocoding backend, and a rate-limited wrapper.
package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// Directory answers location queries.
type Directory interface {
	// All returns every location, in display order.
	All() []domain.Location

	// Search returns the locations matching query.
	// Failures are reported as Error values.
	Search(ctx context.Context, query string) ([]domain.Location, error)

	// Lookup returns the location with the given id, or domain.ErrNotFound.
	Lookup(ctx context.Context, id string) (domain.Location, error)
}

// Static is a Directory over a fixed list of locations.
type Static struct {
	locations []domain.Location
}

// NewStatic returns a Static directory over locations.
func NewStatic(locations []domain.Location) *Static {
	return &Static{locations: cloneLocations(locations)}
}

// NewMock returns the built-in directory of popular destinations.
func NewMock() *Static {
	return NewStatic(mockLocations)
}

func (d *Static) All() []domain.Location {
	return cloneLocations(d.locations)
}

// Search matches query case-insensitively as a substring of each location's
// name, country and subtitle. A blank query is ErrInvalidQuery and no match at
// all is ErrNoResults.
func (d *Static) Search(ctx context.Context, query string) ([]domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrInvalidQuery
	}

	var out []domain.Location
	for _, loc := range d.locations {
		if matches(loc, q) {
			out = append(out, cloneLocation(loc))
		}
	}
	if len(out) == 0 {
		return nil, ErrNoResults
	}
	return out, nil
}

func (d *Static) Lookup(_ context.Context, id string) (domain.Location, error) {
	for _, loc := range d.locations {
		if loc.ID == id {
			return cloneLocation(loc), nil
		}
	}
	return domain.Location{}, fmt.Errorf("directory.Static.Lookup: location %q: %w", id, domain.ErrNotFound)
}

func matches(loc domain.Location, q string) bool {
	if strings.Contains(strings.ToLower(loc.Name), q) || strings.Contains(strings.ToLower(loc.Country), q) {
		return true
	}
	return loc.Subtitle != nil && strings.Contains(strings.ToLower(*loc.Subtitle), q)
}

func cloneLocation(l domain.Location) domain.Location {
	if l.Subtitle != nil {
		s := *l.Subtitle
		l.Subtitle = &s
	}
	return l
}

func cloneLocations(in []domain.Location) []domain.Location {
	if in == nil {
		return nil
	}
	out := make([]domain.Location, len(in))
	for i, l := range in {
		out[i] = cloneLocation(l)
	}
	return out
}

// CloneLocations deep-copies a result list, preserving nil.
func CloneLocations(in []domain.Location) []domain.Location {
	return cloneLocations(in)
}

func subtitle(s string) *string { return &s }

var mockLocations = []domain.Location{
	{ID: "lagos", Name: "Lagos", Country: "Nigeria", Flag: "🇳🇬", Subtitle: subtitle("Lagos State")},
	{ID: "abuja", Name: "Abuja", Country: "Nigeria", Flag: "🇳🇬", Subtitle: subtitle("Federal Capital Territory")},
	{ID: "accra", Name: "Accra", Country: "Ghana", Flag: "🇬🇭", Subtitle: subtitle("Greater Accra")},
	{ID: "nairobi", Name: "Nairobi", Country: "Kenya", Flag: "🇰🇪"},
	{ID: "cape-town", Name: "Cape Town", Country: "South Africa", Flag: "🇿🇦", Subtitle: subtitle("Western Cape")},
	{ID: "paris", Name: "Paris", Country: "France", Flag: "🇫🇷", Subtitle: subtitle("Île-de-France")},
	{ID: "london", Name: "London", Country: "United Kingdom", Flag: "🇬🇧", Subtitle: subtitle("England")},
	{ID: "dubai", Name: "Dubai", Country: "United Arab Emirates", Flag: "🇦🇪"},
	{ID: "new-york", Name: "New York", Country: "United States", Flag: "🇺🇸", Subtitle: subtitle("New York State")},
	{ID: "melbourne", Name: "Melbourne", Country: "Australia", Flag: "🇦🇺", Subtitle: subtitle("Victoria")},
}
