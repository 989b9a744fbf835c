package service

import (
	"context"
	"log/slog"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	apperrors "github.com/tripatlas/tripatlas-server/internal/errors"
	"github.com/tripatlas/tripatlas-server/internal/store"
	"github.com/tripatlas/tripatlas-server/internal/validation"
)

// UserCountryService orchestrates the user-country association.
type UserCountryService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewUserCountryService creates a new user-country link service.
func NewUserCountryService(store store.Store, logger *slog.Logger) *UserCountryService {
	return &UserCountryService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// UserCountryRequest carries the key pair for creating a link.
type UserCountryRequest struct {
	UserID    int64 `json:"user_id" validate:"required,gt=0"`
	CountryID int64 `json:"country_id" validate:"required,gt=0"`
}

// CreateLink associates a user with a country. A duplicate pair is a
// conflict, not a silent no-op.
func (s *UserCountryService) CreateLink(ctx context.Context, req UserCountryRequest) (*domain.UserCountry, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.store.GetUser(ctx, req.UserID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidReferencef("user %d does not exist", req.UserID)
		}
		return nil, err
	}
	if _, err := s.store.GetCountry(ctx, req.CountryID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidReferencef("country %d does not exist", req.CountryID)
		}
		return nil, err
	}

	_, err := s.store.GetUserCountry(ctx, req.UserID, req.CountryID)
	switch {
	case err == nil:
		return nil, apperrors.Conflictf("user %d is already linked to country %d", req.UserID, req.CountryID)
	case !apperrors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	created, err := s.store.CreateUserCountry(ctx, &domain.UserCountry{
		UserID:    req.UserID,
		CountryID: req.CountryID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user-country link created", "user_id", created.UserID, "country_id", created.CountryID)
	return created, nil
}

// GetLink returns a single link by its composite key.
func (s *UserCountryService) GetLink(ctx context.Context, userID, countryID int64) (*domain.UserCountry, error) {
	return s.store.GetUserCountry(ctx, userID, countryID)
}

// ListLinks returns every user-country association.
func (s *UserCountryService) ListLinks(ctx context.Context) ([]*domain.UserCountry, error) {
	return s.store.ListUserCountries(ctx)
}

// ListCountriesForUser returns the countries linked to the given user.
// A nonexistent user is a not-found outcome, distinct from an existing
// user with no links, which yields an empty list.
func (s *UserCountryService) ListCountriesForUser(ctx context.Context, userID int64) ([]*domain.Country, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListCountriesForUser(ctx, userID)
}

// DeleteLink removes an association by its composite key.
func (s *UserCountryService) DeleteLink(ctx context.Context, userID, countryID int64) error {
	if err := s.store.DeleteUserCountry(ctx, userID, countryID); err != nil {
		return err
	}
	s.logger.Info("user-country link deleted", "user_id", userID, "country_id", countryID)
	return nil
}
