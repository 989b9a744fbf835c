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

// UserService orchestrates user account operations.
type UserService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewUserService creates a new user service.
func NewUserService(store store.Store, logger *slog.Logger) *UserService {
	return &UserService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// UserRequest carries the writable user fields for create and update.
type UserRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Email      string `json:"email" validate:"required,email,max=254"`
	ProfileURL string `json:"profile_url" validate:"omitempty,url,max=2048"`
}

func (r *UserRequest) normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.ProfileURL = strings.TrimSpace(r.ProfileURL)
}

// CreateUser registers a new user account.
func (s *UserService) CreateUser(ctx context.Context, req UserRequest) (*domain.User, error) {
	req.normalize()
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req, 0); err != nil {
		return nil, err
	}

	created, err := s.store.CreateUser(ctx, &domain.User{
		Username:   req.Username,
		Email:      req.Email,
		ProfileURL: req.ProfileURL,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "id", created.ID, "username", created.Username)
	return created, nil
}

// GetUser returns a single user by id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.store.GetUser(ctx, id)
}

// ListUsers returns all users ordered by username.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.store.ListUsers(ctx)
}

// UpdateUser replaces the mutable fields of an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req UserRequest) (*domain.User, error) {
	if _, err := s.store.GetUser(ctx, id); err != nil {
		return nil, err
	}

	req.normalize()
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req, id); err != nil {
		return nil, err
	}

	return s.store.UpdateUser(ctx, &domain.User{
		ID:         id,
		Username:   req.Username,
		Email:      req.Email,
		ProfileURL: req.ProfileURL,
	})
}

// DeleteUser removes a user; dependent locations, trips, and country
// links go with it.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "id", id)
	return nil
}

// checkUniqueness reports a conflict when another user already holds the
// requested username or email. excludeID skips the row being updated; the
// store's unique indexes remain the authoritative guard against races.
func (s *UserService) checkUniqueness(ctx context.Context, req UserRequest, excludeID int64) error {
	existing, err := s.store.GetUserByUsername(ctx, req.Username)
	switch {
	case err == nil && existing.ID != excludeID:
		return apperrors.Conflictf("username %q is already taken", req.Username)
	case err != nil && !apperrors.Is(err, apperrors.ErrNotFound):
		return err
	}

	existing, err = s.store.GetUserByEmail(ctx, req.Email)
	switch {
	case err == nil && existing.ID != excludeID:
		return apperrors.Conflictf("email %q is already registered", req.Email)
	case err != nil && !apperrors.Is(err, apperrors.ErrNotFound):
		return err
	}

	return nil
}
