// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuid issues the identifiers used for request ids and media object
// names. They are UUIDv7, so they sort by creation time.
package uuid

import "github.com/google/uuid"

// New returns a fresh UUIDv7 in canonical form. It panics only if the
// system entropy source fails.
func New() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
