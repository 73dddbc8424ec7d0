// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec holds the admin credentials: the shared bearer secret, the
// bcrypt-hashed dashboard password and the HS256 session token.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role issued by the dashboard sign-in.
const RoleAdmin = "admin"

// AuthClaims is the session token payload.
type AuthClaims struct {
	jwt.RegisteredClaims
	Role string `json:"rol"`
}

// IsAdmin reports whether the claims grant dashboard access.
func (c *AuthClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// TokenService handles generation and verification of session tokens using HS256.
type TokenService struct {
	signingKey []byte
	issuer     string
}

// NewTokenService creates a new TokenService signing with the given secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: session secret must not be empty")
	}
	return &TokenService{signingKey: []byte(secret), issuer: issuer}, nil
}

// GenerateToken signs a token for role that expires after ttl.
func (service *TokenService) GenerateToken(role string, ttl time.Duration) (string, error) {
	issuedAt := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   role,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
		Role: role,
	})

	signed, err := token.SignedString(service.signingKey)
	if err != nil {
		return "", fmt.Errorf("sec: sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken accepts only HS256 tokens from this issuer that carry an
// unexpired exp claim.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return service.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("sec: invalid session token: %w", err)
	}
	return claims, nil
}
