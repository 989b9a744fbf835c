package sqlite

import (
	"context"
	"database/sql"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	apperrors "github.com/tripatlas/tripatlas-server/internal/errors"
)

// CreateUserCountry inserts a user-country link. A duplicate pair is a
// conflict, not a silent no-op; a missing user or country is an invalid
// reference.
func (s *Store) CreateUserCountry(ctx context.Context, link *domain.UserCountry) (*domain.UserCountry, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_countries (user_id, country_id) VALUES (?, ?)`,
		link.UserID, link.CountryID)
	if err != nil {
		return nil, translateError(err)
	}
	return &domain.UserCountry{UserID: link.UserID, CountryID: link.CountryID}, nil
}

// GetUserCountry retrieves a link by its composite key.
func (s *Store) GetUserCountry(ctx context.Context, userID, countryID int64) (*domain.UserCountry, error) {
	var link domain.UserCountry
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, country_id FROM user_countries
		WHERE user_id = ? AND country_id = ?`,
		userID, countryID).Scan(&link.UserID, &link.CountryID)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &link, nil
}

// ListUserCountries returns all links ordered by (user_id, country_id).
func (s *Store) ListUserCountries(ctx context.Context) ([]*domain.UserCountry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, country_id FROM user_countries
		ORDER BY user_id ASC, country_id ASC`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var links []*domain.UserCountry
	for rows.Next() {
		var link domain.UserCountry
		if err := rows.Scan(&link.UserID, &link.CountryID); err != nil {
			return nil, translateError(err)
		}
		links = append(links, &link)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return links, nil
}

// ListCountriesForUser returns the countries linked to a user, ordered
// by name. Owner existence is the caller's concern; an owner with no
// links yields an empty list.
func (s *Store) ListCountriesForUser(ctx context.Context, userID int64) ([]*domain.Country, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+prefixedCountryColumns+`
		FROM countries c
		JOIN user_countries uc ON uc.country_id = c.id
		WHERE uc.user_id = ?
		ORDER BY c.name COLLATE NOCASE ASC`, userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var countries []*domain.Country
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, translateError(err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return countries, nil
}

// prefixedCountryColumns qualifies countryColumns for joined queries.
const prefixedCountryColumns = `c.id, c.code, c.name, c.flag_url, c.currency, c.continent, c.capital`

// DeleteUserCountry deletes a link by its composite key.
// Returns not found if no such link exists.
func (s *Store) DeleteUserCountry(ctx context.Context, userID, countryID int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM user_countries WHERE user_id = ? AND country_id = ?`,
		userID, countryID)
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
