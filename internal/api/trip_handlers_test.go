package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripEndpoints_CRUD(t *testing.T) {
	ts := setupTestServer(t)

	userID := ts.createUser(t, "alice", "alice@example.com")
	countryID := ts.createCountry(t, "FRA", "France")

	resp := ts.api.Post("/trips", map[string]any{
		"name":       "Summer Vacation",
		"user_id":    userID,
		"country_id": countryID,
		"start_date": "2024-07-01",
		"end_date":   "2024-07-15",
		"notes":      "Two weeks in Paris",
	})
	require.Equal(t, http.StatusCreated, resp.Code, "body: %s", resp.Body.String())

	var created TripResponse
	decodeBody(t, resp, &created)
	assert.Equal(t, "2024-07-01", created.StartDate)
	assert.Nil(t, created.LocationID)

	resp = ts.api.Get(fmt.Sprintf("/trips/%d", created.ID))
	require.Equal(t, http.StatusOK, resp.Code)
	var got TripResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, created, got)

	resp = ts.api.Put(fmt.Sprintf("/trips/%d", created.ID), map[string]any{
		"name":       "Summer Vacation",
		"user_id":    userID,
		"country_id": countryID,
		"start_date": "2024-07-01",
		"end_date":   "2024-08-01",
	})
	require.Equal(t, http.StatusOK, resp.Code, "body: %s", resp.Body.String())
	got = TripResponse{}
	decodeBody(t, resp, &got)
	assert.Equal(t, "2024-08-01", got.EndDate)
	// Full replacement drops the notes.
	assert.Empty(t, got.Notes)

	resp = ts.api.Delete(fmt.Sprintf("/trips/%d", created.ID))
	require.Equal(t, http.StatusNoContent, resp.Code)
	assertErrorCode(t, ts.api.Get(fmt.Sprintf("/trips/%d", created.ID)), http.StatusNotFound, "NOT_FOUND")
}

func TestTripEndpoints_WithLocation(t *testing.T) {
	ts := setupTestServer(t)

	userID := ts.createUser(t, "alice", "alice@example.com")
	countryID := ts.createCountry(t, "FRA", "France")

	resp := ts.api.Post("/locations", map[string]any{
		"name": "Louvre", "user_id": userID, "country_id": countryID})
	require.Equal(t, http.StatusCreated, resp.Code)
	var loc LocationResponse
	decodeBody(t, resp, &loc)

	resp = ts.api.Post("/trips", map[string]any{
		"name":        "Summer",
		"user_id":     userID,
		"country_id":  countryID,
		"location_id": loc.ID,
	})
	require.Equal(t, http.StatusCreated, resp.Code, "body: %s", resp.Body.String())
	var created TripResponse
	decodeBody(t, resp, &created)
	require.NotNil(t, created.LocationID)
	assert.Equal(t, loc.ID, *created.LocationID)

	// An unknown location is a 400 naming the reference.
	assertErrorCode(t, ts.api.Post("/trips", map[string]any{
		"name":        "Winter",
		"user_id":     userID,
		"country_id":  countryID,
		"location_id": 999,
	}), http.StatusBadRequest, "INVALID_REFERENCE")
}

func TestTripEndpoints_DateValidation(t *testing.T) {
	ts := setupTestServer(t)

	userID := ts.createUser(t, "alice", "alice@example.com")
	countryID := ts.createCountry(t, "FRA", "France")

	assertErrorCode(t, ts.api.Post("/trips", map[string]any{
		"name":       "Backwards",
		"user_id":    userID,
		"country_id": countryID,
		"start_date": "2024-07-15",
		"end_date":   "2024-07-01",
	}), http.StatusBadRequest, "VALIDATION")

	assertErrorCode(t, ts.api.Post("/trips", map[string]any{
		"name":       "Malformed",
		"user_id":    userID,
		"country_id": countryID,
		"start_date": "July 1st",
	}), http.StatusBadRequest, "VALIDATION")
}

func TestTripEndpoints_ListAndScope(t *testing.T) {
	ts := setupTestServer(t)

	alice := ts.createUser(t, "alice", "alice@example.com")
	bob := ts.createUser(t, "bob", "bob@example.com")
	countryID := ts.createCountry(t, "FRA", "France")

	for _, trip := range []map[string]any{
		{"name": "Winter", "user_id": alice, "country_id": countryID, "start_date": "2024-12-01"},
		{"name": "Spring", "user_id": alice, "country_id": countryID, "start_date": "2024-03-10"},
		{"name": "Summer", "user_id": bob, "country_id": countryID, "start_date": "2024-07-01"},
	} {
		resp := ts.api.Post("/trips", trip)
		require.Equal(t, http.StatusCreated, resp.Code, "body: %s", resp.Body.String())
	}

	// Ordered by start date.
	resp := ts.api.Get("/trips")
	require.Equal(t, http.StatusOK, resp.Code)
	var list ListTripsResponse
	decodeBody(t, resp, &list)
	require.Len(t, list.Trips, 3)
	assert.Equal(t, "Spring", list.Trips[0].Name)

	resp = ts.api.Get(fmt.Sprintf("/trips?user_id=%d", alice))
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &list)
	assert.Len(t, list.Trips, 2)

	resp = ts.api.Get(fmt.Sprintf("/trips/user/%d", bob))
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &list)
	assert.Len(t, list.Trips, 1)

	assertErrorCode(t, ts.api.Get("/trips/user/999"), http.StatusNotFound, "NOT_FOUND")
}

func TestTripEndpoints_DuplicateName(t *testing.T) {
	ts := setupTestServer(t)

	userID := ts.createUser(t, "alice", "alice@example.com")
	countryID := ts.createCountry(t, "FRA", "France")

	resp := ts.api.Post("/trips", map[string]any{
		"name": "Summer", "user_id": userID, "country_id": countryID})
	require.Equal(t, http.StatusCreated, resp.Code)

	assertErrorCode(t, ts.api.Post("/trips", map[string]any{
		"name": "Summer", "user_id": userID, "country_id": countryID,
	}), http.StatusConflict, "CONFLICT")
}
