package domain

import "time"

// DateRange is the pair of days picked in the calendar. Either end may be
// unset. Ordering is not enforced here; see Validate.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Complete reports whether both ends are set.
func (r DateRange) Complete() bool {
	return r.Start != nil && r.End != nil
}

// Validate rejects a complete range whose end falls before its start.
// A same-day range is valid.
func (r DateRange) Validate() error {
	if r.Complete() && r.End.Before(*r.Start) {
		return validationf("end date must not be before start date")
	}
	return nil
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
