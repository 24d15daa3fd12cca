package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorNil(t *testing.T) {
	assert.NoError(t, mapError(nil))
}

func TestMapErrorNoRows(t *testing.T) {
	assert.ErrorIs(t, mapError(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapError(fmt.Errorf("get: %w", sql.ErrNoRows)), ErrNotFound)
}

func TestMapErrorUniqueViolation(t *testing.T) {
	err := mapError(&pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "users_username_key"`})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMapErrorRaiseException(t *testing.T) {
	err := mapError(&pq.Error{Code: "P0001", Message: "Invalid role: Superuser"})

	var constraintErr *ConstraintError
	require.True(t, errors.As(err, &constraintErr))
	assert.Equal(t, "Invalid role: Superuser", constraintErr.Message)
}

func TestMapErrorPassthrough(t *testing.T) {
	original := errors.New("connection refused")
	assert.Equal(t, original, mapError(original))
}
