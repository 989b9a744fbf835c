package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationEndpoints_CRUD(t *testing.T) {
	ts := setupTestServer(t)

	userID := ts.createUser(t, "alice", "alice@example.com")
	countryID := ts.createCountry(t, "FRA", "France")

	resp := ts.api.Post("/locations", map[string]any{
		"name":       "Louvre",
		"user_id":    userID,
		"country_id": countryID,
	})
	require.Equal(t, http.StatusCreated, resp.Code, "body: %s", resp.Body.String())

	var created LocationResponse
	decodeBody(t, resp, &created)
	assert.Equal(t, "Louvre", created.Name)

	resp = ts.api.Get(fmt.Sprintf("/locations/%d", created.ID))
	require.Equal(t, http.StatusOK, resp.Code)
	var got LocationResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, created, got)

	resp = ts.api.Put(fmt.Sprintf("/locations/%d", created.ID), map[string]any{
		"name":       "Musée du Louvre",
		"user_id":    userID,
		"country_id": countryID,
	})
	require.Equal(t, http.StatusOK, resp.Code, "body: %s", resp.Body.String())
	decodeBody(t, resp, &got)
	assert.Equal(t, "Musée du Louvre", got.Name)

	resp = ts.api.Delete(fmt.Sprintf("/locations/%d", created.ID))
	require.Equal(t, http.StatusNoContent, resp.Code)
	assertErrorCode(t, ts.api.Get(fmt.Sprintf("/locations/%d", created.ID)), http.StatusNotFound, "NOT_FOUND")
}

func TestLocationEndpoints_InvalidReference(t *testing.T) {
	ts := setupTestServer(t)

	countryID := ts.createCountry(t, "FRA", "France")

	// A missing referenced row is a 400, not a conflict or a 500.
	assertErrorCode(t, ts.api.Post("/locations", map[string]any{
		"name":       "Louvre",
		"user_id":    999,
		"country_id": countryID,
	}), http.StatusBadRequest, "INVALID_REFERENCE")
}

func TestLocationEndpoints_Conflict(t *testing.T) {
	ts := setupTestServer(t)

	alice := ts.createUser(t, "alice", "alice@example.com")
	bob := ts.createUser(t, "bob", "bob@example.com")
	countryID := ts.createCountry(t, "FRA", "France")

	resp := ts.api.Post("/locations", map[string]any{
		"name": "Louvre", "user_id": alice, "country_id": countryID})
	require.Equal(t, http.StatusCreated, resp.Code)

	assertErrorCode(t, ts.api.Post("/locations", map[string]any{
		"name": "Louvre", "user_id": alice, "country_id": countryID,
	}), http.StatusConflict, "CONFLICT")

	// Same name under another user is fine.
	resp = ts.api.Post("/locations", map[string]any{
		"name": "Louvre", "user_id": bob, "country_id": countryID})
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestLocationEndpoints_ListAndScope(t *testing.T) {
	ts := setupTestServer(t)

	alice := ts.createUser(t, "alice", "alice@example.com")
	bob := ts.createUser(t, "bob", "bob@example.com")
	fra := ts.createCountry(t, "FRA", "France")
	jpn := ts.createCountry(t, "JPN", "Japan")

	for _, loc := range []map[string]any{
		{"name": "Louvre", "user_id": alice, "country_id": fra},
		{"name": "Fushimi Inari", "user_id": alice, "country_id": jpn},
		{"name": "Eiffel Tower", "user_id": bob, "country_id": fra},
	} {
		resp := ts.api.Post("/locations", loc)
		require.Equal(t, http.StatusCreated, resp.Code, "body: %s", resp.Body.String())
	}

	// Query-parameter filters combine.
	resp := ts.api.Get(fmt.Sprintf("/locations?user_id=%d&country_id=%d", alice, jpn))
	require.Equal(t, http.StatusOK, resp.Code)
	var list ListLocationsResponse
	decodeBody(t, resp, &list)
	require.Len(t, list.Locations, 1)
	assert.Equal(t, "Fushimi Inari", list.Locations[0].Name)

	// A filter naming an unknown user is an empty list.
	resp = ts.api.Get("/locations?user_id=999")
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &list)
	assert.Empty(t, list.Locations)

	// The scoped route returns the user's locations...
	resp = ts.api.Get(fmt.Sprintf("/locations/user/%d", alice))
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &list)
	assert.Len(t, list.Locations, 2)

	// ...but requires the user to exist.
	assertErrorCode(t, ts.api.Get("/locations/user/999"), http.StatusNotFound, "NOT_FOUND")
}

func TestLocationEndpoints_UserDeleteCascades(t *testing.T) {
	ts := setupTestServer(t)

	userID := ts.createUser(t, "alice", "alice@example.com")
	countryID := ts.createCountry(t, "FRA", "France")

	resp := ts.api.Post("/locations", map[string]any{
		"name": "Louvre", "user_id": userID, "country_id": countryID})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created LocationResponse
	decodeBody(t, resp, &created)

	resp = ts.api.Delete(fmt.Sprintf("/users/%d", userID))
	require.Equal(t, http.StatusNoContent, resp.Code)

	assertErrorCode(t, ts.api.Get(fmt.Sprintf("/locations/%d", created.ID)), http.StatusNotFound, "NOT_FOUND")
}
