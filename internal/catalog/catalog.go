// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog turns a full, ordered content collection into the paged and
categorized view shown on the public site.

Everything here is pure and synchronous: no I/O, no shared state. [ComputeView]
is the single entry point; [State] wraps it for callers that keep a selection
across requests, and [Preview] holds the item open in the detail overlay.

Pipeline:

 1. Categories: "all" followed by the distinct categories in first-seen order.
 2. Filter: keep the items of the selected category, order preserved.
 3. Paginate: clamp the page and slice ItemsPerPage items.
 4. Bands: split the slice into lead, secondary and tertiary bands.
*/
package catalog

import (
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/slice"
)

const (
	// CategoryAll selects every item.
	CategoryAll = "all"

	// ItemsPerPage is the fixed page size of the public catalog.
	ItemsPerPage = 6

	// secondaryBandSize is how many items follow the lead item in the second band.
	secondaryBandSize = 3
)

// Categorized is anything that belongs to exactly one category.
type Categorized interface {
	CategoryName() string
}

// # Views

// Entry is an item tagged with its 1-based position in the filtered collection.
type Entry[T Categorized] struct {
	Position int `json:"position"`
	Item     T   `json:"item"`
}

// Bands splits one page into layout bands.
//
// Every item of the page appears in exactly one band, in page order.
type Bands[T Categorized] struct {
	Lead      []Entry[T] `json:"lead"`
	Secondary []Entry[T] `json:"secondary"`
	Tertiary  []Entry[T] `json:"tertiary"`
}

// View is the rendered state of one catalog page.
type View[T Categorized] struct {
	Categories       []string `json:"categories"`
	SelectedCategory string   `json:"selectedCategory"`
	CurrentPage      int      `json:"currentPage"`
	ItemsPerPage     int      `json:"itemsPerPage"`
	TotalPages       int      `json:"totalPages"`
	FilteredCount    int      `json:"filteredCount"`
	StartIndex       int      `json:"startIndex"`
	Items            []T      `json:"items"`
	Bands            Bands[T] `json:"bands"`
}

// # Pipeline

// Categories returns "all" followed by each distinct category in first-seen order.
func Categories[T Categorized](items []T) []string {
	seen := make(map[string]struct{}, len(items))
	categories := []string{CategoryAll}

	for _, item := range items {
		name := item.CategoryName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		categories = append(categories, name)
	}

	return categories
}

// HasCategory reports whether category is selectable for items.
func HasCategory[T Categorized](items []T, category string) bool {
	if category == CategoryAll {
		return true
	}
	for _, item := range items {
		if item.CategoryName() == category {
			return true
		}
	}
	return false
}

// Filter keeps the items of category; "all" passes everything through.
//
// The result never aliases the input.
func Filter[T Categorized](items []T, category string) []T {
	if category == CategoryAll {
		return append([]T{}, items...)
	}

	return slice.Filter(items, func(item T) bool {
		return item.CategoryName() == category
	})
}

// Page is one slice of a filtered collection.
type Page[T Categorized] struct {
	Items      []T
	Number     int
	TotalPages int
	StartIndex int
}

// Paginate returns page number (clamped to [1, totalPages]) of items.
func Paginate[T Categorized](items []T, number, perPage int) Page[T] {
	totalPages := pagination.TotalPages(len(items), perPage)
	number = pagination.ClampPage(number, totalPages)

	params := pagination.Params{Page: number, Limit: perPage}
	start := min(params.Offset(), len(items))
	end := min(start+perPage, len(items))

	return Page[T]{
		Items:      append([]T{}, items[start:end]...),
		Number:     number,
		TotalPages: totalPages,
		StartIndex: start,
	}
}

// SplitBands splits a page into lead (first item), secondary (next three)
// and tertiary (the rest). startIndex is the page's offset in the filtered set.
func SplitBands[T Categorized](items []T, startIndex int) Bands[T] {
	bands := Bands[T]{
		Lead:      []Entry[T]{},
		Secondary: []Entry[T]{},
		Tertiary:  []Entry[T]{},
	}

	for index, item := range items {
		entry := Entry[T]{Position: startIndex + index + 1, Item: item}
		switch {
		case index == 0:
			bands.Lead = append(bands.Lead, entry)
		case index <= secondaryBandSize:
			bands.Secondary = append(bands.Secondary, entry)
		default:
			bands.Tertiary = append(bands.Tertiary, entry)
		}
	}

	return bands
}

/*
ComputeView derives the catalog page for (items, category, page).

An unknown category yields an empty view for that category; callers holding
a selection across collection changes should use [State.Replace], which
falls back to "all".
*/
func ComputeView[T Categorized](items []T, category string, page int) View[T] {
	if category == "" {
		category = CategoryAll
	}

	filtered := Filter(items, category)
	current := Paginate(filtered, page, ItemsPerPage)

	return View[T]{
		Categories:       Categories(items),
		SelectedCategory: category,
		CurrentPage:      current.Number,
		ItemsPerPage:     ItemsPerPage,
		TotalPages:       current.TotalPages,
		FilteredCount:    len(filtered),
		StartIndex:       current.StartIndex,
		Items:            current.Items,
		Bands:            SplitBands(current.Items, current.StartIndex),
	}
}
