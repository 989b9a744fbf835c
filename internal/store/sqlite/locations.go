package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	apperrors "github.com/tripatlas/tripatlas-server/internal/errors"
	"github.com/tripatlas/tripatlas-server/internal/store"
)

// locationColumns must match the scan order in scanLocation.
const locationColumns = `id, name, user_id, country_id, image_url`

func scanLocation(scanner interface{ Scan(dest ...any) error }) (*domain.Location, error) {
	var l domain.Location

	var imageURL sql.NullString

	err := scanner.Scan(
		&l.ID,
		&l.Name,
		&l.UserID,
		&l.CountryID,
		&imageURL,
	)
	if err != nil {
		return nil, err
	}

	l.ImageURL = imageURL.String

	return &l, nil
}

// CreateLocation inserts a new location and returns the created row
// with its assigned id. A duplicate (user, name) pair is a conflict; a
// missing user or country is an invalid reference.
func (s *Store) CreateLocation(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	var created *domain.Location
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO locations (name, user_id, country_id, image_url)
			VALUES (?, ?, ?, ?)`,
			location.Name,
			location.UserID,
			location.CountryID,
			nullString(location.ImageURL),
		)
		if err != nil {
			return translateError(err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return translateError(err)
		}

		row := tx.QueryRowContext(ctx,
			`SELECT `+locationColumns+` FROM locations WHERE id = ?`, id)
		created, err = scanLocation(row)
		if err != nil {
			return translateError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetLocation retrieves a location by ID.
func (s *Store) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = ?`, id)

	l, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return l, nil
}

// GetLocationByName retrieves a location by its owning user and name.
func (s *Store) GetLocationByName(ctx context.Context, userID int64, name string) (*domain.Location, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE user_id = ? AND name = ?`,
		userID, name)

	l, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return l, nil
}

// ListLocations returns locations matching the filter, ordered by name.
// An empty result is a normal outcome.
func (s *Store) ListLocations(ctx context.Context, filter store.LocationFilter) ([]*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations`

	var conditions []string
	var args []any
	if filter.UserID != nil {
		conditions = append(conditions, "user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.CountryID != nil {
		conditions = append(conditions, "country_id = ?")
		args = append(args, *filter.CountryID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name COLLATE NOCASE ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, translateError(err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return locations, nil
}

// UpdateLocation performs a full replacement of the mutable fields and
// returns the updated row.
func (s *Store) UpdateLocation(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	var updated *domain.Location
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE locations SET name = ?, user_id = ?, country_id = ?, image_url = ?
			WHERE id = ?`,
			location.Name,
			location.UserID,
			location.CountryID,
			nullString(location.ImageURL),
			location.ID,
		)
		if err != nil {
			return translateError(err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return translateError(err)
		}
		if n == 0 {
			return apperrors.ErrNotFound
		}

		row := tx.QueryRowContext(ctx,
			`SELECT `+locationColumns+` FROM locations WHERE id = ?`, location.ID)
		updated, err = scanLocation(row)
		if err != nil {
			return translateError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteLocation deletes a location by ID. Trips referencing it keep
// existing with their location cleared (ON DELETE SET NULL).
func (s *Store) DeleteLocation(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return translateError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return translateError(err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
