package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/places-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Place not found", true, nil)
	assert.Same(t, original, HandleError(original))
	assert.Same(t, original, HandleError(fmt.Errorf("get place: %w", original)))
}

func TestHandleErrorHidesDatabaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not null violation", &pgconn.PgError{Code: "23502", Message: `null value in column "name"`, TableName: "places", ColumnName: "name"}},
		{"unique violation", &pgconn.PgError{Code: "23505", Message: "duplicate key", ConstraintName: "places_name_key"}},
		{"foreign key violation", &pgconn.PgError{Code: "23503", Message: "violates foreign key"}},
		{"check violation", &pgconn.PgError{Code: "23514", Message: "violates check constraint"}},
		{"wrapped pg error", fmt.Errorf("insert place: %w", &pgconn.PgError{Code: "57014", Message: "canceling statement"})},
		{"no rows", pgx.ErrNoRows},
		{"canceled", context.Canceled},
		{"generic", errors.New("dial tcp 10.0.0.1:5432: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := HandleError(tt.err)
			require.NotNil(t, httpErr)
			assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
			assert.Equal(t, "INTERNAL_SERVER_ERROR", httpErr.Code)
			assert.Empty(t, httpErr.Errors)
		})
	}
}

func TestDescribe(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "places",
		ConstraintName: "places_name_key",
	}

	sqlErr := Describe(fmt.Errorf("create place: %w", pgErr))
	require.NotNil(t, sqlErr)
	assert.Equal(t, UniqueViolation, sqlErr.Code)
	assert.Equal(t, "23505", sqlErr.DatabaseCode)
	assert.Equal(t, "places", sqlErr.TableName)
	assert.Equal(t, "places_name_key", sqlErr.ConstraintName)
	assert.Equal(t, "ERROR 23505: duplicate key value violates unique constraint", sqlErr.Error())
	assert.ErrorIs(t, sqlErr, pgErr)

	assert.Nil(t, Describe(errors.New("boom")))
	assert.Nil(t, Describe(pgx.ErrNoRows))
	assert.Nil(t, Describe(nil))
}

func TestMapCode(t *testing.T) {
	tests := []struct {
		state string
		want  Code
	}{
		{"23502", NotNullViolation},
		{"23503", ForeignKeyViolation},
		{"23505", UniqueViolation},
		{"23514", CheckViolation},
		{"22P02", InvalidTextRep},
		{"22003", NumericOutOfRange},
		{"42P01", UndefinedTable},
		{"57014", QueryCanceled},
		{"08000", ConnectionFailure},
		{"08006", ConnectionFailure},
		{"42601", Other},
		{"08", Other},
		{"", Other},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapCode(tt.state), tt.state)
	}
}
