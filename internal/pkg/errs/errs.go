/*
Package errs provides custom error types and application-level error code constants.

This file defines CustomError, the error value every store transition and
handler hands outward. It carries a business code, the user-facing message the
UI renders verbatim, and the HTTP status the facade answers with, so one value
serves both the envelope and the logs.
*/
package errs

import (
	"fmt"
	"net/http"
	"strings"

	"bloxclone/internal/pkg/logx"
)

// CustomError is the error structure used throughout the application. It
// implements the standard error interface on top of the business code
// taxonomy in error_codes.go.
type CustomError struct {
	// Code is the business error code (see error_codes.go).
	Code int

	// Message is the user-facing description. Templates in error_map.go may
	// carry printf placeholders filled by NewError details.
	Message string

	// Status is the HTTP status the facade responds with. Zero means 200:
	// most business failures still travel as a successful HTTP exchange.
	Status int
}

// Error implements the standard Go error interface. It returns a formatted
// error string containing the error code, HTTP status, and message.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError builds a *CustomError from a predefined error code. The optional
// details fill printf placeholders in the message template (the ban reason in
// "Account Banned: %s", for example). An unknown code falls back to
// ErrUnknown rather than panicking.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &CustomError{
			Code:    unknownErr.Code,
			Message: unknownErr.Message,
			Status:  unknownErr.Status,
		}
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusOK
	}

	if code == ErrUnknown && len(details) > 0 {
		if originalErr, ok := details[0].(error); ok {
			logx.Error(
				originalErr,
				"Handling ErrUnknown with underlying error",
			)
		}
	} else if len(details) > 0 {
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn(
				"Details provided for error, but message template has no formatting placeholders. Details ignored.",
			)
		}
	}

	return &customErr
}
