// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields) defined in struct tags and extracts
// validation errors into a format the client can understand.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/deppfellow/places-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error that runs validator.Struct(req)
type Validatable interface {
	Validate() error
}

const invalidBodyMessage = "Invalid request body"

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. path params are bound through Echo's DefaultBinder
//  2. a non-empty body must be exactly one JSON value
//  3. payload.Validate() applies validation rules
//
// Every failure comes back as a 400 *errs.HTTPError with a fixed message,
// so malformed bodies never reach a store and parser internals never reach
// the client.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := bind(c, payload); err != nil {
		return err
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

func bind(c echo.Context, payload any) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindPathParams(c, payload); err != nil {
		return errs.NewBadRequestError(pathParamMessage(c), false, nil, nil, nil)
	}

	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return errs.NewBadRequestError("Content-Type must be application/json", false, nil, nil, nil)
	}

	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(payload); err != nil {
		return errs.NewBadRequestError(invalidBodyMessage, false, nil, nil, nil)
	}
	// a second value, or anything but whitespace, after the first one
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return errs.NewBadRequestError(invalidBodyMessage, false, nil, nil, nil)
	}

	return nil
}

// pathParamMessage names the offending parameter when the route has one.
func pathParamMessage(c echo.Context) string {
	if names := c.ParamNames(); len(names) == 1 {
		return fmt.Sprintf("invalid value for %s", names[0])
	}
	return "Invalid path parameter"
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Neither kind: surface the message as a single form-level error.
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
