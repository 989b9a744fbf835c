package domain

import "time"

// User represents a registered traveler account.
// Username and email are unique across the system; username comparison
// is case-insensitive. CreatedAt is assigned at creation and immutable.
type User struct {
	ID         int64     `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"` // stored lowercased
	ProfileURL string    `json:"profile_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
