package domain

// UserCountry links a user to a country they have visited or want to
// visit. Pure many-to-many association keyed by the pair; no payload.
type UserCountry struct {
	UserID    int64 `json:"user_id"`
	CountryID int64 `json:"country_id"`
}
