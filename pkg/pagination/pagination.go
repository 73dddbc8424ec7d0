// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for paged views.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how a page number is reconciled with the size of a collection.
package pagination

import (
	"net/http"

	"github.com/taibuivan/folio/pkg/convert"
)

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds a page number and page size.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the index of the first element of [Page].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total / limit), or 0 when either is not positive.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ClampPage forces page into [1, totalPages].
//
// An empty collection (totalPages == 0) still has page 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < DefaultPage {
		page = DefaultPage
	}
	return page
}

// PageFromRequest parses the "page" query parameter.
//
// # Clamping
//
// Missing, invalid or non-positive values fall back to [DefaultPage].
// The upper bound depends on the collection and is applied by [ClampPage].
func PageFromRequest(r *http.Request) int {
	n := convert.ToIntD(r.URL.Query().Get("page"), DefaultPage)
	if n < DefaultPage {
		return DefaultPage
	}
	return n
}
