package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	apperrors "github.com/tripatlas/tripatlas-server/internal/errors"
)

// userColumns is the ordered list of columns selected in user queries.
// Must match the scan order in scanUser.
const userColumns = `id, username, email, profile_url, created_at`

// scanUser scans a sql.Row (or sql.Rows via its Scan method) into a domain.User.
func scanUser(scanner interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var u domain.User

	var (
		profileURL sql.NullString
		createdAt  string
	)

	err := scanner.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&profileURL,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if profileURL.Valid {
		u.ProfileURL = profileURL.String
	}

	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// CreateUser inserts a new user and returns the created row with its
// assigned id. Insert and re-read run in one transaction.
// Returns a conflict error if the username or email is already taken.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	var created *domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO users (username, email, profile_url, created_at)
			VALUES (?, ?, ?, ?)`,
			user.Username,
			user.Email,
			nullString(user.ProfileURL),
			formatTime(time.Now()),
		)
		if err != nil {
			return translateError(err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return translateError(err)
		}

		row := tx.QueryRowContext(ctx,
			`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
		created, err = scanUser(row)
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

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return u, nil
}

// GetUserByUsername retrieves a user by username. The lookup is
// case-insensitive per the column collation.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email. Emails are stored
// lowercased; callers pass the normalized form.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return u, nil
}

// ListUsers returns all users ordered by username.
func (s *Store) ListUsers(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY username COLLATE NOCASE ASC`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translateError(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

// UpdateUser performs a full replacement of the mutable fields
// (username, email, profile_url; created_at is immutable) and returns
// the updated row. Returns not found if the user does not exist.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	var updated *domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE users SET username = ?, email = ?, profile_url = ?
			WHERE id = ?`,
			user.Username,
			user.Email,
			nullString(user.ProfileURL),
			user.ID,
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
			`SELECT `+userColumns+` FROM users WHERE id = ?`, user.ID)
		updated, err = scanUser(row)
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

// DeleteUser deletes a user by ID. Dependent locations, trips, and
// user-country links are removed by the schema's cascade rules.
// Returns not found if the user does not exist.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
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
