// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/respond"
)

func TestOK_And_Message(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Created(recorder, map[string]string{"slug": "folio"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"slug":"folio"}}`, recorder.Body.String())

	recorder = httptest.NewRecorder()
	respond.Message(recorder, "Project deleted successfully")
	assert.JSONEq(t, `{"data":{"message":"Project deleted successfully"}}`, recorder.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			"validation_details",
			apperr.ValidationError("Validation failed", apperr.FieldError{Field: "title", Message: "This field is required"}),
			http.StatusBadRequest,
			`{"error":"Validation failed","code":"VALIDATION_ERROR","details":[{"field":"title","message":"This field is required"}]}`,
		},
		{
			"wrapped_not_found",
			fmt.Errorf("lookup: %w", apperr.NotFound("Project")),
			http.StatusNotFound,
			`{"error":"Project not found","code":"NOT_FOUND"}`,
		},
		{
			"plain_error_hidden",
			errors.New("dial tcp: refused"),
			http.StatusInternalServerError,
			`{"error":"An unexpected error occurred","code":"INTERNAL_ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}
