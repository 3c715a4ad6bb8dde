package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "price"})

	mapped := ToDomainError(original)
	assert.Equal(t, "VALIDATION_FAILED", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, "price", mapped.Details["field"])
}

func TestToDomainErrorWrapsNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorHidesDriverDetail(t *testing.T) {
	mapped := ToDomainError(errors.New("pq: connection refused on 10.0.0.5"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, "internal server error", mapped.Message)
	assert.NotContains(t, mapped.Message, "10.0.0.5")
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestNotFoundMessage(t *testing.T) {
	err := NewNotFound("ticket")
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ticket not found", domainErr.Message)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := NewInternalError(cause)
	assert.True(t, errors.Is(err, cause))
}
