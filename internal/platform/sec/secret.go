// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "crypto/subtle"

// Credentials is the explicit security configuration handed to handlers at
// startup, replacing ad-hoc environment lookups.
type Credentials struct {
	// Secret is the shared bearer value accepted by admin endpoints.
	Secret string

	// IsProduction toggles the Secure attribute on session cookies.
	IsProduction bool
}

// MatchesSecret reports whether candidate equals the configured secret.
//
// This is a plain equality check on a shared value, done in constant time.
// It is a placeholder access control, not a per-user credential scheme.
func (c Credentials) MatchesSecret(candidate string) bool {
	if c.Secret == "" || candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Secret), []byte(candidate)) == 1
}
