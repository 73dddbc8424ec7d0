// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// stubVerifier accepts exactly one token value.
type stubVerifier struct {
	valid  string
	claims *sec.AuthClaims
}

func (v stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != v.valid {
		return nil, errors.New("invalid")
	}
	return v.claims, nil
}

/*
TestRequireAdmin covers the bearer and session paths of the admin guard.
*/
func TestRequireAdmin(t *testing.T) {
	creds := sec.Credentials{Secret: "top-secret"}
	verifier := stubVerifier{valid: "good-session", claims: &sec.AuthClaims{Role: sec.RoleAdmin}}

	handler := middleware.Authenticate(verifier)(
		middleware.RequireAdmin(creds)(
			http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(http.StatusOK)
			}),
		),
	)

	tests := []struct {
		name       string
		authHeader string
		cookie     string
		wantStatus int
	}{
		{"no_credentials", "", "", http.StatusUnauthorized},
		{"matching_bearer", "Bearer top-secret", "", http.StatusOK},
		{"wrong_bearer", "Bearer nope", "", http.StatusUnauthorized},
		{"wrong_scheme", "Basic top-secret", "", http.StatusUnauthorized},
		{"valid_session", "", "good-session", http.StatusOK},
		{"invalid_session", "", "forged", http.StatusUnauthorized},
		{"wrong_bearer_beats_session", "Bearer nope", "good-session", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
			if tt.authHeader != "" {
				request.Header.Set(constants.HeaderAuthorization, tt.authHeader)
			}
			if tt.cookie != "" {
				request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: tt.cookie})
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
