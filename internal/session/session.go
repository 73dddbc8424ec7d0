// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session issues and clears the dashboard session cookie.

There is a single admin identity. Sign-in checks a password against the
configured bcrypt hash and sets an HS256 session token in an HttpOnly cookie;
[middleware.Authenticate] restores the session from that cookie on later
requests. Sign-out reissues the cookie already expired.
*/
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	GenerateToken(role string, timeToLive time.Duration) (string, error)
}

// Session is a freshly issued dashboard session.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

type Service struct {
	passwordHash string
	issuer       TokenIssuer
	logger       *slog.Logger
}

// NewService builds the sign-in service. An empty passwordHash disables sign-in.
func NewService(passwordHash string, issuer TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		passwordHash: passwordHash,
		issuer:       issuer,
		logger:       logger,
	}
}

/*
SignIn exchanges the admin password for a session token.

Returns:
  - Session: token and expiry
  - error: VALIDATION_ERROR without a password, UNAUTHORIZED on mismatch
*/
func (service *Service) SignIn(ctx context.Context, password string) (Session, error) {
	validator := &validate.Validator{}
	if err := validator.Required("password", password).Err(); err != nil {
		return Session{}, err
	}

	if !sec.MatchesPassword(service.passwordHash, password) {
		service.logger.WarnContext(ctx, "signin_rejected")
		return Session{}, apperr.Unauthorized("Invalid credentials")
	}

	token, err := service.issuer.GenerateToken(sec.RoleAdmin, constants.SessionTTL)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}

	service.logger.InfoContext(ctx, "signin_succeeded")
	return Session{Token: token, ExpiresAt: time.Now().Add(constants.SessionTTL)}, nil
}
