package sqlite

import (
	"context"
	"database/sql"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	apperrors "github.com/tripatlas/tripatlas-server/internal/errors"
	"github.com/tripatlas/tripatlas-server/internal/store"
)

// tripColumns must match the scan order in scanTrip.
const tripColumns = `id, name, user_id, country_id, location_id, start_date, end_date, notes`

func scanTrip(scanner interface{ Scan(dest ...any) error }) (*domain.Trip, error) {
	var t domain.Trip

	var (
		locationID sql.NullInt64
		startDate  sql.NullString
		endDate    sql.NullString
		notes      sql.NullString
	)

	err := scanner.Scan(
		&t.ID,
		&t.Name,
		&t.UserID,
		&t.CountryID,
		&locationID,
		&startDate,
		&endDate,
		&notes,
	)
	if err != nil {
		return nil, err
	}

	if locationID.Valid {
		t.LocationID = &locationID.Int64
	}
	t.StartDate = startDate.String
	t.EndDate = endDate.String
	t.Notes = notes.String

	return &t, nil
}

// CreateTrip inserts a new trip and returns the created row with its
// assigned id. A duplicate (user, name) pair is a conflict; a missing
// user, country, or location is an invalid reference.
func (s *Store) CreateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	var created *domain.Trip
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO trips (name, user_id, country_id, location_id, start_date, end_date, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			trip.Name,
			trip.UserID,
			trip.CountryID,
			nullInt64Ptr(trip.LocationID),
			nullString(trip.StartDate),
			nullString(trip.EndDate),
			nullString(trip.Notes),
		)
		if err != nil {
			return translateError(err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return translateError(err)
		}

		row := tx.QueryRowContext(ctx,
			`SELECT `+tripColumns+` FROM trips WHERE id = ?`, id)
		created, err = scanTrip(row)
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

// GetTrip retrieves a trip by ID.
func (s *Store) GetTrip(ctx context.Context, id int64) (*domain.Trip, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE id = ?`, id)

	t, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return t, nil
}

// GetTripByName retrieves a trip by its owning user and name.
func (s *Store) GetTripByName(ctx context.Context, userID int64, name string) (*domain.Trip, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE user_id = ? AND name = ?`,
		userID, name)

	t, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return t, nil
}

// ListTrips returns trips matching the filter, ordered by start date
// then name so listings are reproducible.
func (s *Store) ListTrips(ctx context.Context, filter store.TripFilter) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips`

	var args []any
	if filter.UserID != nil {
		query += " WHERE user_id = ?"
		args = append(args, *filter.UserID)
	}
	query += " ORDER BY start_date ASC, name COLLATE NOCASE ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, translateError(err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return trips, nil
}

// UpdateTrip performs a full replacement of the mutable fields and
// returns the updated row.
func (s *Store) UpdateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	var updated *domain.Trip
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE trips SET
				name = ?, user_id = ?, country_id = ?, location_id = ?,
				start_date = ?, end_date = ?, notes = ?
			WHERE id = ?`,
			trip.Name,
			trip.UserID,
			trip.CountryID,
			nullInt64Ptr(trip.LocationID),
			nullString(trip.StartDate),
			nullString(trip.EndDate),
			nullString(trip.Notes),
			trip.ID,
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
			`SELECT `+tripColumns+` FROM trips WHERE id = ?`, trip.ID)
		updated, err = scanTrip(row)
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

// DeleteTrip deletes a trip by ID.
func (s *Store) DeleteTrip(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
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
