package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tripatlas/tripatlas-server/internal/errors"
)

func TestTripService_CreateTrip(t *testing.T) {
	st := newTestStore(t)
	svc := NewTripService(st, testLogger())
	ctx := context.Background()

	user := seedUser(t, st, "alice", "alice@example.com")
	country := seedCountry(t, st, "FRA", "France")

	created, err := svc.CreateTrip(ctx, TripRequest{
		Name:      "Summer Vacation",
		UserID:    user.ID,
		CountryID: country.ID,
		StartDate: "2024-07-01",
		EndDate:   "2024-07-15",
		Notes:     "Two weeks in Paris",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "2024-07-01", created.StartDate)
	assert.Nil(t, created.LocationID)
}

func TestTripService_CreateTrip_DateRules(t *testing.T) {
	st := newTestStore(t)
	svc := NewTripService(st, testLogger())
	ctx := context.Background()

	user := seedUser(t, st, "alice", "alice@example.com")
	country := seedCountry(t, st, "FRA", "France")

	// End before start is rejected, not silently accepted.
	_, err := svc.CreateTrip(ctx, TripRequest{
		Name: "Backwards", UserID: user.ID, CountryID: country.ID,
		StartDate: "2024-07-15", EndDate: "2024-07-01"})
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation), "got %v", err)

	// Malformed dates never reach the store.
	_, err = svc.CreateTrip(ctx, TripRequest{
		Name: "Malformed", UserID: user.ID, CountryID: country.ID,
		StartDate: "07/01/2024"})
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation), "got %v", err)

	// A single-day trip is fine.
	_, err = svc.CreateTrip(ctx, TripRequest{
		Name: "Day Trip", UserID: user.ID, CountryID: country.ID,
		StartDate: "2024-07-01", EndDate: "2024-07-01"})
	assert.NoError(t, err)
}

func TestTripService_CreateTrip_References(t *testing.T) {
	st := newTestStore(t)
	svc := NewTripService(st, testLogger())
	ctx := context.Background()

	user := seedUser(t, st, "alice", "alice@example.com")
	country := seedCountry(t, st, "FRA", "France")

	_, err := svc.CreateTrip(ctx, TripRequest{
		Name: "Summer", UserID: user.ID, CountryID: 999})
	require.True(t, apperrors.Is(err, apperrors.ErrInvalidReference), "got %v", err)
	assert.Contains(t, err.Error(), "country 999")

	missing := int64(999)
	_, err = svc.CreateTrip(ctx, TripRequest{
		Name: "Summer", UserID: user.ID, CountryID: country.ID, LocationID: &missing})
	require.True(t, apperrors.Is(err, apperrors.ErrInvalidReference), "got %v", err)
	assert.Contains(t, err.Error(), "location 999")
}

func TestTripService_CreateTrip_Duplicate(t *testing.T) {
	st := newTestStore(t)
	svc := NewTripService(st, testLogger())
	ctx := context.Background()

	user := seedUser(t, st, "alice", "alice@example.com")
	country := seedCountry(t, st, "FRA", "France")

	_, err := svc.CreateTrip(ctx, TripRequest{
		Name: "Summer", UserID: user.ID, CountryID: country.ID})
	require.NoError(t, err)

	_, err = svc.CreateTrip(ctx, TripRequest{
		Name: "Summer", UserID: user.ID, CountryID: country.ID})
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict), "got %v", err)
}

func TestTripService_ListTripsForUser(t *testing.T) {
	st := newTestStore(t)
	svc := NewTripService(st, testLogger())
	ctx := context.Background()

	user := seedUser(t, st, "alice", "alice@example.com")
	country := seedCountry(t, st, "FRA", "France")

	_, err := svc.CreateTrip(ctx, TripRequest{
		Name: "Summer", UserID: user.ID, CountryID: country.ID})
	require.NoError(t, err)

	trips, err := svc.ListTripsForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, trips, 1)

	_, err = svc.ListTripsForUser(ctx, 999)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound), "got %v", err)
}

func TestTripService_UpdateTrip(t *testing.T) {
	st := newTestStore(t)
	svc := NewTripService(st, testLogger())
	ctx := context.Background()

	user := seedUser(t, st, "alice", "alice@example.com")
	country := seedCountry(t, st, "FRA", "France")

	created, err := svc.CreateTrip(ctx, TripRequest{
		Name: "Summer", UserID: user.ID, CountryID: country.ID,
		StartDate: "2024-07-01", EndDate: "2024-07-15"})
	require.NoError(t, err)

	updated, err := svc.UpdateTrip(ctx, created.ID, TripRequest{
		Name: "Summer", UserID: user.ID, CountryID: country.ID,
		StartDate: "2024-07-01", EndDate: "2024-08-01"})
	require.NoError(t, err)
	assert.Equal(t, "2024-08-01", updated.EndDate)

	// The same date rule applies on update.
	_, err = svc.UpdateTrip(ctx, created.ID, TripRequest{
		Name: "Summer", UserID: user.ID, CountryID: country.ID,
		StartDate: "2024-08-01", EndDate: "2024-07-01"})
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation), "got %v", err)

	_, err = svc.UpdateTrip(ctx, 999, TripRequest{
		Name: "Ghost", UserID: user.ID, CountryID: country.ID})
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound), "got %v", err)
}
