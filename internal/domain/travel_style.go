package domain

import (
	"encoding/json"
	"strings"
)

// TravelStyle describes who is travelling.
type TravelStyle string

const (
	TravelStyleSolo   TravelStyle = "solo"
	TravelStyleCouple TravelStyle = "couple"
	TravelStyleFamily TravelStyle = "family"
	TravelStyleGroup  TravelStyle = "group"
)

// TravelStyles lists every style in display order.
var TravelStyles = []TravelStyle{TravelStyleSolo, TravelStyleCouple, TravelStyleFamily, TravelStyleGroup}

// ParseTravelStyle maps a serialized tag to a TravelStyle.
// Anything it does not recognise becomes TravelStyleSolo; it never fails.
func ParseTravelStyle(s string) TravelStyle {
	switch TravelStyle(strings.ToLower(strings.TrimSpace(s))) {
	case TravelStyleCouple:
		return TravelStyleCouple
	case TravelStyleFamily:
		return TravelStyleFamily
	case TravelStyleGroup:
		return TravelStyleGroup
	default:
		return TravelStyleSolo
	}
}

// UnmarshalJSON decodes leniently: unknown strings and non-string JSON values
// both decode to TravelStyleSolo.
func (s *TravelStyle) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		*s = TravelStyleSolo
		return nil
	}
	*s = ParseTravelStyle(raw)
	return nil
}
