package sqlerr

import (
	"errors"

	"github.com/deppfellow/places-api/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
)

// ConvertPgError converts a raw Postgres error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       src.Severity,
		DatabaseCode:   src.Code,
		Message:        src.Message,
		TableName:      src.TableName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Describe returns the normalized form of the first *pgconn.PgError in
// err's chain, or nil when err did not come from Postgres.
func Describe(err error) *Error {
	var pgerr *pgconn.PgError
	if !errors.As(err, &pgerr) {
		return nil
	}
	return ConvertPgError(pgerr)
}

// HandleError converts err into the error rendered to the client.
// An *errs.HTTPError passes through; anything else, Postgres errors
// included, becomes a generic 500.
func HandleError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return errs.NewInternalServerError()
}
