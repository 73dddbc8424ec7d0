// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package requestutil reads path parameters, query values and JSON bodies
// from incoming requests.
package requestutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/validate"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the body into target. Any read or syntax failure,
// including an oversized body, is reported as [validate.ErrInvalidJSON].
func DecodeJSON(request *http.Request, target any) error {
	body := http.MaxBytesReader(nil, request.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// ID returns the chi path parameter called name.
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Query returns the query value called name with surrounding spaces removed.
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

// IsJSONArray reports whether raw holds a value at all and, if so, whether
// that value is an array. JSON null counts as present and not an array.
func IsJSONArray(raw json.RawMessage) (present bool, isArray bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false, false
	}
	return true, trimmed[0] == '['
}
