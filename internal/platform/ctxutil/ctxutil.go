// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil stores the per-request values set by middleware: the
// correlation id, the request-scoped logger and the dashboard session.
//
// Keys are unexported, so values can only be reached through these helpers.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/sec"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
	sessionKey
)

// # Request Tracing

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the X-Request-ID of the request, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// # Structured Logging

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request logger, falling back to [slog.Default].
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// # Dashboard Session

func WithSession(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, sessionKey, claims)
}

// Session returns the verified session claims, or nil for anonymous requests.
func Session(ctx context.Context) *sec.AuthClaims {
	claims, _ := ctx.Value(sessionKey).(*sec.AuthClaims)
	return claims
}
