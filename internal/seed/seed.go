// Package seed loads the bundled country reference data into the store.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	apperrors "github.com/tripatlas/tripatlas-server/internal/errors"
	"github.com/tripatlas/tripatlas-server/internal/store"
)

//go:embed countries.json
var countriesJSON []byte

// Countries returns the bundled country reference list.
func Countries() ([]domain.Country, error) {
	var countries []domain.Country
	if err := json.Unmarshal(countriesJSON, &countries); err != nil {
		return nil, fmt.Errorf("decode bundled countries: %w", err)
	}
	return countries, nil
}

// Apply inserts the bundled countries, skipping any already present
// (matched by code). Safe to run repeatedly; returns the number of
// countries inserted.
func Apply(ctx context.Context, s store.Store, logger *slog.Logger) (int, error) {
	countries, err := Countries()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for i := range countries {
		c := countries[i]

		_, err := s.GetCountryByCode(ctx, c.Code)
		if err == nil {
			continue
		}
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			return inserted, err
		}

		if _, err := s.CreateCountry(ctx, &c); err != nil {
			// A concurrent seeder may have won the race; that's fine.
			if apperrors.Is(err, apperrors.ErrConflict) {
				continue
			}
			return inserted, err
		}
		inserted++
	}

	logger.Info("country seed applied", "inserted", inserted, "bundled", len(countries))
	return inserted, nil
}
