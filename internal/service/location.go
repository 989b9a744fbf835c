package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	apperrors "github.com/tripatlas/tripatlas-server/internal/errors"
	"github.com/tripatlas/tripatlas-server/internal/store"
	"github.com/tripatlas/tripatlas-server/internal/validation"
)

// LocationService orchestrates operations on user-authored locations.
type LocationService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewLocationService creates a new location service.
func NewLocationService(store store.Store, logger *slog.Logger) *LocationService {
	return &LocationService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// LocationRequest carries the writable location fields for create and update.
type LocationRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	UserID    int64  `json:"user_id" validate:"required,gt=0"`
	CountryID int64  `json:"country_id" validate:"required,gt=0"`
	ImageURL  string `json:"image_url" validate:"omitempty,url,max=2048"`
}

func (r *LocationRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

// CreateLocation adds a location for a user.
func (s *LocationService) CreateLocation(ctx context.Context, req LocationRequest) (*domain.Location, error) {
	req.normalize()
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.UserID, req.CountryID); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req, 0); err != nil {
		return nil, err
	}

	created, err := s.store.CreateLocation(ctx, &domain.Location{
		Name:      req.Name,
		UserID:    req.UserID,
		CountryID: req.CountryID,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("location created", "id", created.ID, "name", created.Name, "user_id", created.UserID)
	return created, nil
}

// GetLocation returns a single location by id.
func (s *LocationService) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	return s.store.GetLocation(ctx, id)
}

// ListLocations returns locations matching the filter, ordered by name.
// An empty result is not an error.
func (s *LocationService) ListLocations(ctx context.Context, filter store.LocationFilter) ([]*domain.Location, error) {
	return s.store.ListLocations(ctx, filter)
}

// ListLocationsForUser returns all locations owned by the given user.
// Unlike the query-parameter filter, the user itself must exist.
func (s *LocationService) ListLocationsForUser(ctx context.Context, userID int64) ([]*domain.Location, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListLocations(ctx, store.LocationFilter{UserID: &userID})
}

// UpdateLocation replaces the mutable fields of an existing location.
func (s *LocationService) UpdateLocation(ctx context.Context, id int64, req LocationRequest) (*domain.Location, error) {
	if _, err := s.store.GetLocation(ctx, id); err != nil {
		return nil, err
	}

	req.normalize()
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.UserID, req.CountryID); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req, id); err != nil {
		return nil, err
	}

	return s.store.UpdateLocation(ctx, &domain.Location{
		ID:        id,
		Name:      req.Name,
		UserID:    req.UserID,
		CountryID: req.CountryID,
		ImageURL:  req.ImageURL,
	})
}

// DeleteLocation removes a location. Trips pointing at it keep existing
// with their location reference cleared.
func (s *LocationService) DeleteLocation(ctx context.Context, id int64) error {
	if err := s.store.DeleteLocation(ctx, id); err != nil {
		return err
	}
	s.logger.Info("location deleted", "id", id)
	return nil
}

// checkReferences verifies the referenced user and country exist,
// naming the missing id. The store's foreign keys close the gap if a
// referenced row vanishes between this check and the insert.
func (s *LocationService) checkReferences(ctx context.Context, userID, countryID int64) error {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return apperrors.InvalidReferencef("user %d does not exist", userID)
		}
		return err
	}
	if _, err := s.store.GetCountry(ctx, countryID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return apperrors.InvalidReferencef("country %d does not exist", countryID)
		}
		return err
	}
	return nil
}

// checkUniqueness reports a conflict when the user already has a
// location with the requested name.
func (s *LocationService) checkUniqueness(ctx context.Context, req LocationRequest, excludeID int64) error {
	existing, err := s.store.GetLocationByName(ctx, req.UserID, req.Name)
	switch {
	case err == nil && existing.ID != excludeID:
		return apperrors.Conflictf("location %q already exists for user %d", req.Name, req.UserID)
	case err != nil && !apperrors.Is(err, apperrors.ErrNotFound):
		return err
	}
	return nil
}
