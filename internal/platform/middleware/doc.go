// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware holds the decorators the router applies to every request.

Order in internal/api:

  - RequestID, StructuredLogger: correlation id and the request logger.
  - RateLimit: per-IP token bucket.
  - PanicRecovery: a panic becomes a logged INTERNAL_ERROR.
  - Authenticate: restores the dashboard session, never rejects.
  - CORS: allow-list in production, open in development.

RequireAdmin is applied per route group by the domain handlers.
Every rejection is written through [respond.Error], so it carries the same
envelope as handler errors.
*/
package middleware
