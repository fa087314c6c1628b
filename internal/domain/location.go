package domain

// Location is a destination the traveller can pick in the location search.
// Two Locations with the same ID are the same place regardless of the other
// fields.
type Location struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Country  string  `json:"country"`
	Flag     string  `json:"flag"`
	Subtitle *string `json:"subtitle,omitempty"`
}

// Equal reports whether l and other identify the same place.
func (l Location) Equal(other Location) bool {
	return l.ID == other.ID
}

// DisplayName is the destination text stored on a trip: "Name, Country".
func (l Location) DisplayName() string {
	return l.Name + ", " + l.Country
}
