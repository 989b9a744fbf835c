package sqlite

import (
	"errors"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	apperrors "github.com/tripatlas/tripatlas-server/internal/errors"
)

// translateError maps driver-level constraint failures onto domain
// errors by SQLite result code, so callers never depend on error
// message wording. Uniqueness (including composite primary keys)
// becomes a conflict; a foreign-key failure becomes an invalid
// reference — the same outcome a pre-check would have produced, which
// closes the check-then-act race. Anything else is surfaced as an
// internal storage failure.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return apperrors.ErrConflict.WithCause(err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return apperrors.ErrInvalidReference.WithCause(err)
		}
		if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return apperrors.ErrConflict.WithCause(err)
		}
	}

	return apperrors.ErrInternal.WithCause(err)
}
