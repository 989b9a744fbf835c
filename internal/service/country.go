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

// CountryService orchestrates country reference data operations.
type CountryService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewCountryService creates a new country service.
func NewCountryService(store store.Store, logger *slog.Logger) *CountryService {
	return &CountryService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// CountryRequest carries the writable country fields for create and update.
type CountryRequest struct {
	Code      string `json:"code" validate:"required,len=3,alpha"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	FlagURL   string `json:"flag_url" validate:"omitempty,url,max=2048"`
	Currency  string `json:"currency" validate:"omitempty,max=50"`
	Continent string `json:"continent"`
	Capital   string `json:"capital" validate:"omitempty,max=100"`
}

func (r *CountryRequest) normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
	r.FlagURL = strings.TrimSpace(r.FlagURL)
	r.Currency = strings.TrimSpace(r.Currency)
	r.Continent = strings.TrimSpace(r.Continent)
	r.Capital = strings.TrimSpace(r.Capital)
}

func (r *CountryRequest) validate(v *validation.Validator) error {
	if err := v.Validate(r); err != nil {
		return err
	}
	// Continent is a closed enumeration, checked here so the allowed
	// values live in one place (domain.Continents).
	if !domain.ValidContinent(r.Continent) {
		return apperrors.ValidationWithDetails("validation failed", map[string]string{
			"continent": "must be one of: " + strings.Join(domain.Continents, ", "),
		})
	}
	return nil
}

// CreateCountry adds a country to the shared reference list.
func (s *CountryService) CreateCountry(ctx context.Context, req CountryRequest) (*domain.Country, error) {
	req.normalize()
	if err := req.validate(s.validator); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req, 0); err != nil {
		return nil, err
	}

	created, err := s.store.CreateCountry(ctx, &domain.Country{
		Code:      req.Code,
		Name:      req.Name,
		FlagURL:   req.FlagURL,
		Currency:  req.Currency,
		Continent: req.Continent,
		Capital:   req.Capital,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("country created", "id", created.ID, "code", created.Code)
	return created, nil
}

// GetCountry returns a single country by id.
func (s *CountryService) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	return s.store.GetCountry(ctx, id)
}

// ListCountries returns all countries ordered by name.
func (s *CountryService) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	return s.store.ListCountries(ctx)
}

// UpdateCountry replaces the mutable fields of an existing country.
func (s *CountryService) UpdateCountry(ctx context.Context, id int64, req CountryRequest) (*domain.Country, error) {
	if _, err := s.store.GetCountry(ctx, id); err != nil {
		return nil, err
	}

	req.normalize()
	if err := req.validate(s.validator); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req, id); err != nil {
		return nil, err
	}

	return s.store.UpdateCountry(ctx, &domain.Country{
		ID:        id,
		Code:      req.Code,
		Name:      req.Name,
		FlagURL:   req.FlagURL,
		Currency:  req.Currency,
		Continent: req.Continent,
		Capital:   req.Capital,
	})
}

// DeleteCountry removes a country; locations, trips, and user links
// referencing it are cascaded by the store.
func (s *CountryService) DeleteCountry(ctx context.Context, id int64) error {
	if err := s.store.DeleteCountry(ctx, id); err != nil {
		return err
	}
	s.logger.Info("country deleted", "id", id)
	return nil
}

// checkUniqueness reports a conflict when another country already holds
// the requested code or name.
func (s *CountryService) checkUniqueness(ctx context.Context, req CountryRequest, excludeID int64) error {
	existing, err := s.store.GetCountryByCode(ctx, req.Code)
	switch {
	case err == nil && existing.ID != excludeID:
		return apperrors.Conflictf("country code %q already exists", req.Code)
	case err != nil && !apperrors.Is(err, apperrors.ErrNotFound):
		return err
	}

	existing, err = s.store.GetCountryByName(ctx, req.Name)
	switch {
	case err == nil && existing.ID != excludeID:
		return apperrors.Conflictf("country name %q already exists", req.Name)
	case err != nil && !apperrors.Is(err, apperrors.ErrNotFound):
		return err
	}

	return nil
}
