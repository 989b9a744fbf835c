// Package store defines the persistence contract for the TripAtlas server.
//
// Every operation is a pure function call returning either a result
// record or a tagged domain error (internal/errors), independent of any
// transport encoding. Implementations must uphold the schema's
// uniqueness and foreign-key constraints and translate constraint
// violations before they cross this boundary.
package store

import (
	"context"

	"github.com/tripatlas/tripatlas-server/internal/domain"
)

// LocationFilter narrows a location listing by foreign-key equality.
// Nil fields are not applied.
type LocationFilter struct {
	UserID    *int64
	CountryID *int64
}

// TripFilter narrows a trip listing by foreign-key equality.
type TripFilter struct {
	UserID *int64
}

// Store is the persistence interface for all travel entities.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error

	// Countries
	CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error)
	GetCountry(ctx context.Context, id int64) (*domain.Country, error)
	GetCountryByCode(ctx context.Context, code string) (*domain.Country, error)
	GetCountryByName(ctx context.Context, name string) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]*domain.Country, error)
	UpdateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error)
	DeleteCountry(ctx context.Context, id int64) error

	// Locations
	CreateLocation(ctx context.Context, location *domain.Location) (*domain.Location, error)
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
	GetLocationByName(ctx context.Context, userID int64, name string) (*domain.Location, error)
	ListLocations(ctx context.Context, filter LocationFilter) ([]*domain.Location, error)
	UpdateLocation(ctx context.Context, location *domain.Location) (*domain.Location, error)
	DeleteLocation(ctx context.Context, id int64) error

	// Trips
	CreateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	GetTrip(ctx context.Context, id int64) (*domain.Trip, error)
	GetTripByName(ctx context.Context, userID int64, name string) (*domain.Trip, error)
	ListTrips(ctx context.Context, filter TripFilter) ([]*domain.Trip, error)
	UpdateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error

	// User-country links
	CreateUserCountry(ctx context.Context, link *domain.UserCountry) (*domain.UserCountry, error)
	GetUserCountry(ctx context.Context, userID, countryID int64) (*domain.UserCountry, error)
	ListUserCountries(ctx context.Context) ([]*domain.UserCountry, error)
	ListCountriesForUser(ctx context.Context, userID int64) ([]*domain.Country, error)
	DeleteUserCountry(ctx context.Context, userID, countryID int64) error

	Close() error
}
