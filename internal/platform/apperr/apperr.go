// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error values that cross the service boundary.

Services and stores return [*AppError]; [respond.Error] is the only place one
becomes an HTTP response. Anything else that reaches a handler is reported as
INTERNAL_ERROR.

Codes and statuses:

  - VALIDATION_ERROR  400  malformed input, rejected before any store call
  - UNAUTHORIZED      401  missing or wrong credentials
  - NOT_FOUND         404  no row for the given id or slug
  - CONFLICT          409  unique constraint violation
  - TOO_MANY_REQUESTS 429  per-IP rate limit exceeded
  - SCHEMA_VALIDATION 500  the store refused the document; message is echoed
  - INTERNAL_ERROR    500  anything else; the cause is logged, never sent
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError carries a machine-readable code, a client-safe message and the
// HTTP status it maps to.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Details    []FieldError `json:"details,omitempty"`

	// Cause is logged server-side and never serialized.
	Cause error `json:"-"`
}

// FieldError names one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

func newError(code string, status int, message string, details []FieldError) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// # Client Errors (4xx)

// ValidationError reports malformed input, with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return newError("VALIDATION_ERROR", http.StatusBadRequest, msg, details)
}

func Unauthorized(msg string) *AppError {
	return newError("UNAUTHORIZED", http.StatusUnauthorized, msg, nil)
}

// NotFound reports a missing resource, e.g. NotFound("Project") is
// "Project not found".
func NotFound(resource string) *AppError {
	return newError("NOT_FOUND", http.StatusNotFound, resource+" not found", nil)
}

func Conflict(msg string) *AppError {
	return newError("CONFLICT", http.StatusConflict, msg, nil)
}

func TooManyRequests(msg string) *AppError {
	return newError("TOO_MANY_REQUESTS", http.StatusTooManyRequests, msg, nil)
}

// # Server Errors (5xx)

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	internal := newError("INTERNAL_ERROR", http.StatusInternalServerError, "An unexpected error occurred", nil)
	internal.Cause = cause
	return internal
}

// SchemaViolation reports a document refused at the persistence boundary.
// Unlike [Internal], the message and details reach the caller.
func SchemaViolation(msg string, details ...FieldError) *AppError {
	return newError("SCHEMA_VALIDATION", http.StatusInternalServerError, msg, details)
}

// # Helpers

// IsAppError reports whether err's chain contains an [*AppError].
func IsAppError(err error) bool {
	return As(err) != nil
}

// As returns the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
