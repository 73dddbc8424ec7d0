// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/apperr"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		wantCode   string
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperr.ValidationError("bad"), "VALIDATION_ERROR", http.StatusBadRequest, "bad"},
		{"unauthorized", apperr.Unauthorized("Unauthorized"), "UNAUTHORIZED", http.StatusUnauthorized, "Unauthorized"},
		{"not_found", apperr.NotFound("Project"), "NOT_FOUND", http.StatusNotFound, "Project not found"},
		{"conflict", apperr.Conflict("dup"), "CONFLICT", http.StatusConflict, "dup"},
		{"rate_limited", apperr.TooManyRequests("slow down"), "TOO_MANY_REQUESTS", http.StatusTooManyRequests, "slow down"},
		{"schema", apperr.SchemaViolation("project validation failed"), "SCHEMA_VALIDATION", http.StatusInternalServerError, "project validation failed"},
		{"internal", apperr.Internal(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestAs_TraversesWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := fmt.Errorf("store: %w", apperr.Internal(cause))

	appErr := apperr.As(wrapped)
	require.NotNil(t, appErr)
	assert.ErrorIs(t, appErr, cause)
	assert.True(t, apperr.IsAppError(wrapped))

	assert.Nil(t, apperr.As(cause))
	assert.False(t, apperr.IsAppError(cause))
}
