// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// TokenVerifier is satisfied by [sec.TokenService].
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// SecretMatcher compares a presented bearer value with the configured secret.
type SecretMatcher interface {
	MatchesSecret(candidate string) bool
}

// Authenticate restores the dashboard session from the session cookie.
//
// # Flow
//  1. Look for the [constants.SessionCookieName] cookie.
//  2. If absent or invalid, the request proceeds as anonymous.
//  3. If valid, inject [*sec.AuthClaims] into the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				ctxutil.Logger(request.Context()).Debug("session_cookie_rejected")
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithSession(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests that present neither the shared bearer secret
// nor an admin session.
//
// # Flow
//  1. If an Authorization header is present it must be "Bearer <secret>";
//     a mismatch is rejected even when a session cookie exists.
//  2. Otherwise an admin session (see [Authenticate]) is required.
//  3. Anything else aborts with HTTP 401 before the handler runs.
func RequireAdmin(matcher SecretMatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if authHeader := request.Header.Get(constants.HeaderAuthorization); authHeader != "" {
				token, found := strings.CutPrefix(authHeader, "Bearer ")
				if !found || !matcher.MatchesSecret(token) {
					respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
					return
				}
				next.ServeHTTP(writer, request)
				return
			}

			if !ctxutil.Session(request.Context()).IsAdmin() {
				respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
