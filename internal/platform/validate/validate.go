// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate collects field-level failures and reports them as one
// [apperr.AppError].
//
// A [Validator] is built per operation and is not safe for concurrent use:
//
//	v := &validate.Validator{}
//	v.Required("name", in.Name).MaxLen("name", in.Name, 200)
//	if err := v.Err(); err != nil {
//		return err
//	}
package validate

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/folio/internal/platform/apperr"
)

// ErrInvalidJSON is returned when a request body is not valid JSON.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator accumulates [apperr.FieldError] values. The zero value is ready to use.
type Validator struct {
	failures []apperr.FieldError
}

// Required fails on blank values.
func (v *Validator) Required(field, value string) *Validator {
	return v.check(strings.TrimSpace(value) != "", field, "This field is required")
}

// MaxLen counts runes, not bytes.
func (v *Validator) MaxLen(field, value string, limit int) *Validator {
	return v.check(utf8.RuneCountInString(value) <= limit, field, fmt.Sprintf("Maximum %d characters", limit))
}

func (v *Validator) Match(field, value string, pattern *regexp.Regexp, message string) *Validator {
	return v.check(pattern.MatchString(value), field, message)
}

func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	return v.check(slices.Contains(allowed, value), field, "Must be one of: "+strings.Join(allowed, ", "))
}

// Err returns VALIDATION_ERROR carrying every failure, or nil.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.failures...)
}

// Errors lets callers wrap the failures in a different error code.
func (v *Validator) Errors() []apperr.FieldError {
	return v.failures
}

func (v *Validator) HasErrors() bool {
	return len(v.failures) > 0
}

func (v *Validator) check(ok bool, field, message string) *Validator {
	if !ok {
		v.failures = append(v.failures, apperr.FieldError{Field: field, Message: message})
	}
	return v
}
