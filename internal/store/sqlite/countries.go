package sqlite

import (
	"context"
	"database/sql"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	apperrors "github.com/tripatlas/tripatlas-server/internal/errors"
)

// countryColumns must match the scan order in scanCountry.
const countryColumns = `id, code, name, flag_url, currency, continent, capital`

func scanCountry(scanner interface{ Scan(dest ...any) error }) (*domain.Country, error) {
	var c domain.Country

	var flagURL, currency, continent, capital sql.NullString

	err := scanner.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&flagURL,
		&currency,
		&continent,
		&capital,
	)
	if err != nil {
		return nil, err
	}

	c.FlagURL = flagURL.String
	c.Currency = currency.String
	c.Continent = continent.String
	c.Capital = capital.String

	return &c, nil
}

// CreateCountry inserts a new country and returns the created row with
// its assigned id. Returns a conflict error if the code or name is
// already taken.
func (s *Store) CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	var created *domain.Country
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO countries (code, name, flag_url, currency, continent, capital)
			VALUES (?, ?, ?, ?, ?, ?)`,
			country.Code,
			country.Name,
			nullString(country.FlagURL),
			nullString(country.Currency),
			nullString(country.Continent),
			nullString(country.Capital),
		)
		if err != nil {
			return translateError(err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return translateError(err)
		}

		row := tx.QueryRowContext(ctx,
			`SELECT `+countryColumns+` FROM countries WHERE id = ?`, id)
		created, err = scanCountry(row)
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

// GetCountry retrieves a country by ID.
func (s *Store) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+countryColumns+` FROM countries WHERE id = ?`, id)

	c, err := scanCountry(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

// GetCountryByCode retrieves a country by its 3-letter code.
func (s *Store) GetCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+countryColumns+` FROM countries WHERE code = ?`, code)

	c, err := scanCountry(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

// GetCountryByName retrieves a country by name, case-insensitively per
// the column collation.
func (s *Store) GetCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+countryColumns+` FROM countries WHERE name = ?`, name)

	c, err := scanCountry(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

// ListCountries returns all countries ordered by name.
func (s *Store) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+countryColumns+` FROM countries ORDER BY name COLLATE NOCASE ASC`)
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

// UpdateCountry performs a full replacement of the mutable fields and
// returns the updated row.
func (s *Store) UpdateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	var updated *domain.Country
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE countries SET
				code = ?, name = ?, flag_url = ?, currency = ?, continent = ?, capital = ?
			WHERE id = ?`,
			country.Code,
			country.Name,
			nullString(country.FlagURL),
			nullString(country.Currency),
			nullString(country.Continent),
			nullString(country.Capital),
			country.ID,
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
			`SELECT `+countryColumns+` FROM countries WHERE id = ?`, country.ID)
		updated, err = scanCountry(row)
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

// DeleteCountry deletes a country by ID. Dependent locations, trips,
// and user-country links are removed by the schema's cascade rules.
func (s *Store) DeleteCountry(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM countries WHERE id = ?`, id)
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
