package domain

// Location is a user-authored place of interest within a country.
// A user cannot register two locations with the same name.
type Location struct {
	ID        int64  `json:"location_id"`
	Name      string `json:"name"`
	UserID    int64  `json:"user_id"`
	CountryID int64  `json:"country_id"`
	ImageURL  string `json:"image_url,omitempty"`
}
