package domain

import "time"

// DateFormat is the calendar date layout used for trip dates.
const DateFormat = "2006-01-02"

// Trip is a user-authored journey to a country, optionally anchored to
// one of the user's locations. A user cannot have two trips with the
// same name. Dates are calendar dates in ISO form (yyyy-mm-dd); the end
// date never precedes the start date.
type Trip struct {
	ID         int64  `json:"trip_id"`
	Name       string `json:"name"`
	UserID     int64  `json:"user_id"`
	CountryID  int64  `json:"country_id"`
	LocationID *int64 `json:"location_id,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// ParseDate parses a yyyy-mm-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
