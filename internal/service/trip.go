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

// TripService orchestrates operations on user-authored trips.
type TripService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewTripService creates a new trip service.
func NewTripService(store store.Store, logger *slog.Logger) *TripService {
	return &TripService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// TripRequest carries the writable trip fields for create and update.
type TripRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=255"`
	UserID     int64  `json:"user_id" validate:"required,gt=0"`
	CountryID  int64  `json:"country_id" validate:"required,gt=0"`
	LocationID *int64 `json:"location_id" validate:"omitempty,gt=0"`
	StartDate  string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Notes      string `json:"notes" validate:"omitempty,max=2000"`
}

func (r *TripRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.Notes = strings.TrimSpace(r.Notes)
}

func (r *TripRequest) validate(v *validation.Validator) error {
	if err := v.Validate(r); err != nil {
		return err
	}
	if r.StartDate != "" && r.EndDate != "" {
		start, err := domain.ParseDate(r.StartDate)
		if err != nil {
			return apperrors.ValidationWithDetails("validation failed", map[string]string{
				"start_date": "must be a date in yyyy-mm-dd form",
			})
		}
		end, err := domain.ParseDate(r.EndDate)
		if err != nil {
			return apperrors.ValidationWithDetails("validation failed", map[string]string{
				"end_date": "must be a date in yyyy-mm-dd form",
			})
		}
		if end.Before(start) {
			return apperrors.ValidationWithDetails("validation failed", map[string]string{
				"end_date": "must not precede start_date",
			})
		}
	}
	return nil
}

// CreateTrip adds a trip for a user.
func (s *TripService) CreateTrip(ctx context.Context, req TripRequest) (*domain.Trip, error) {
	req.normalize()
	if err := req.validate(s.validator); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req, 0); err != nil {
		return nil, err
	}

	created, err := s.store.CreateTrip(ctx, &domain.Trip{
		Name:       req.Name,
		UserID:     req.UserID,
		CountryID:  req.CountryID,
		LocationID: req.LocationID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("trip created", "id", created.ID, "name", created.Name, "user_id", created.UserID)
	return created, nil
}

// GetTrip returns a single trip by id.
func (s *TripService) GetTrip(ctx context.Context, id int64) (*domain.Trip, error) {
	return s.store.GetTrip(ctx, id)
}

// ListTrips returns trips matching the filter, ordered by start date.
// An empty result is not an error.
func (s *TripService) ListTrips(ctx context.Context, filter store.TripFilter) ([]*domain.Trip, error) {
	return s.store.ListTrips(ctx, filter)
}

// ListTripsForUser returns all trips owned by the given user. Unlike the
// query-parameter filter, the user itself must exist.
func (s *TripService) ListTripsForUser(ctx context.Context, userID int64) ([]*domain.Trip, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListTrips(ctx, store.TripFilter{UserID: &userID})
}

// UpdateTrip replaces the mutable fields of an existing trip.
func (s *TripService) UpdateTrip(ctx context.Context, id int64, req TripRequest) (*domain.Trip, error) {
	if _, err := s.store.GetTrip(ctx, id); err != nil {
		return nil, err
	}

	req.normalize()
	if err := req.validate(s.validator); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req, id); err != nil {
		return nil, err
	}

	return s.store.UpdateTrip(ctx, &domain.Trip{
		ID:         id,
		Name:       req.Name,
		UserID:     req.UserID,
		CountryID:  req.CountryID,
		LocationID: req.LocationID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Notes:      req.Notes,
	})
}

// DeleteTrip removes a trip.
func (s *TripService) DeleteTrip(ctx context.Context, id int64) error {
	if err := s.store.DeleteTrip(ctx, id); err != nil {
		return err
	}
	s.logger.Info("trip deleted", "id", id)
	return nil
}

// checkReferences verifies the referenced user, country, and optional
// location exist, naming the missing id. The store's foreign keys close
// the gap if a referenced row vanishes between this check and the insert.
func (s *TripService) checkReferences(ctx context.Context, req TripRequest) error {
	if _, err := s.store.GetUser(ctx, req.UserID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return apperrors.InvalidReferencef("user %d does not exist", req.UserID)
		}
		return err
	}
	if _, err := s.store.GetCountry(ctx, req.CountryID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return apperrors.InvalidReferencef("country %d does not exist", req.CountryID)
		}
		return err
	}
	if req.LocationID != nil {
		if _, err := s.store.GetLocation(ctx, *req.LocationID); err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				return apperrors.InvalidReferencef("location %d does not exist", *req.LocationID)
			}
			return err
		}
	}
	return nil
}

// checkUniqueness reports a conflict when the user already has a trip
// with the requested name.
func (s *TripService) checkUniqueness(ctx context.Context, req TripRequest, excludeID int64) error {
	existing, err := s.store.GetTripByName(ctx, req.UserID, req.Name)
	switch {
	case err == nil && existing.ID != excludeID:
		return apperrors.Conflictf("trip %q already exists for user %d", req.Name, req.UserID)
	case err != nil && !apperrors.Is(err, apperrors.ErrNotFound):
		return err
	}
	return nil
}
