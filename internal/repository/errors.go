package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrDuplicate reports a unique-constraint violation from the store
	// (username or email already taken).
	ErrDuplicate = errors.New("record already exists")

	// ErrNotFound reports an empty result where one row was expected.
	ErrNotFound = errors.New("record not found")
)

// ConstraintError carries a domain validation raised by a stored function
// (RAISE EXCEPTION). The message is written to be user-safe by the store.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

// mapError translates driver errors into the repository error set.
// 23505 is unique_violation, P0001 is raise_exception.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrDuplicate
		case "P0001":
			return &ConstraintError{Message: pqErr.Message}
		}
	}

	return err
}
