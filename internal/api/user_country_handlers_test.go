package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCountryEndpoints_Lifecycle(t *testing.T) {
	ts := setupTestServer(t)

	userID := ts.createUser(t, "alice", "alice@example.com")
	fra := ts.createCountry(t, "FRA", "France")
	jpn := ts.createCountry(t, "JPN", "Japan")

	// Link both countries.
	for _, countryID := range []int64{fra, jpn} {
		resp := ts.api.Post("/user-countries", map[string]any{
			"user_id":    userID,
			"country_id": countryID,
		})
		require.Equal(t, http.StatusCreated, resp.Code, "body: %s", resp.Body.String())
	}

	// A duplicate pair is a conflict, not a silent no-op.
	assertErrorCode(t, ts.api.Post("/user-countries", map[string]any{
		"user_id":    userID,
		"country_id": fra,
	}), http.StatusConflict, "CONFLICT")

	// Read by composite key.
	resp := ts.api.Get(fmt.Sprintf("/user-countries/%d/%d", userID, fra))
	require.Equal(t, http.StatusOK, resp.Code)
	var link UserCountryResponse
	decodeBody(t, resp, &link)
	assert.Equal(t, userID, link.UserID)
	assert.Equal(t, fra, link.CountryID)

	// Global list.
	resp = ts.api.Get("/user-countries")
	require.Equal(t, http.StatusOK, resp.Code)
	var links ListUserCountryLinksResponse
	decodeBody(t, resp, &links)
	assert.Len(t, links.Links, 2)

	// Per-user list returns country details, ordered by name.
	resp = ts.api.Get(fmt.Sprintf("/user-countries/%d", userID))
	require.Equal(t, http.StatusOK, resp.Code)
	var countries ListCountriesResponse
	decodeBody(t, resp, &countries)
	require.Len(t, countries.Countries, 2)
	assert.Equal(t, "France", countries.Countries[0].Name)

	// Delete by composite key.
	resp = ts.api.Delete(fmt.Sprintf("/user-countries/%d/%d", userID, fra))
	require.Equal(t, http.StatusNoContent, resp.Code)

	assertErrorCode(t, ts.api.Get(fmt.Sprintf("/user-countries/%d/%d", userID, fra)),
		http.StatusNotFound, "NOT_FOUND")
	assertErrorCode(t, ts.api.Delete(fmt.Sprintf("/user-countries/%d/%d", userID, fra)),
		http.StatusNotFound, "NOT_FOUND")
}

func TestUserCountryEndpoints_MissingUserVsNoLinks(t *testing.T) {
	ts := setupTestServer(t)

	userID := ts.createUser(t, "alice", "alice@example.com")

	// Existing user with no links: empty list.
	resp := ts.api.Get(fmt.Sprintf("/user-countries/%d", userID))
	require.Equal(t, http.StatusOK, resp.Code)
	var countries ListCountriesResponse
	decodeBody(t, resp, &countries)
	assert.Empty(t, countries.Countries)

	// Missing user: not found.
	assertErrorCode(t, ts.api.Get("/user-countries/999"), http.StatusNotFound, "NOT_FOUND")
}

func TestUserCountryEndpoints_InvalidReference(t *testing.T) {
	ts := setupTestServer(t)

	countryID := ts.createCountry(t, "FRA", "France")

	assertErrorCode(t, ts.api.Post("/user-countries", map[string]any{
		"user_id":    999,
		"country_id": countryID,
	}), http.StatusBadRequest, "INVALID_REFERENCE")
}
