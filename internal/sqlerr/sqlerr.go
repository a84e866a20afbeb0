// Package sqlerr keeps database driver errors away from clients.
//
// Driver errors always render as a generic 500. The SQLSTATE is kept as
// a driver-independent Code so the error log still says what went wrong.
package sqlerr

import "fmt"

// Code is a driver-independent category of SQL error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	InvalidTextRep      Code = "invalid_text_representation"
	NumericOutOfRange   Code = "numeric_value_out_of_range"
	UndefinedTable      Code = "undefined_table"
	ConnectionFailure   Code = "connection_failure"
	QueryCanceled       Code = "query_canceled"
)

// Error is a normalized database error.
type Error struct {
	Code           Code
	Severity       string
	DatabaseCode   string
	Message        string
	TableName      string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// sqlStateCodes maps Postgres SQLSTATE values onto Code.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
var sqlStateCodes = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"22P02": InvalidTextRep,
	"22003": NumericOutOfRange,
	"42P01": UndefinedTable,
	"57014": QueryCanceled,
}

// MapCode converts a SQLSTATE into a Code. The whole class 08
// (connection exception) maps to ConnectionFailure.
func MapCode(sqlState string) Code {
	if code, ok := sqlStateCodes[sqlState]; ok {
		return code
	}
	if len(sqlState) == 5 && sqlState[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}
