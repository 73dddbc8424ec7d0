// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "github.com/taibuivan/folio/pkg/pagination"

// State keeps a category selection and page number across collection changes.
//
// # Concurrency
//
// State is a single-caller value and is not safe for concurrent use.
type State[T Categorized] struct {
	items    []T
	category string
	page     int
}

// NewState starts on page 1 of "all".
func NewState[T Categorized](items []T) *State[T] {
	return &State[T]{
		items:    items,
		category: CategoryAll,
		page:     pagination.DefaultPage,
	}
}

// SelectCategory switches the partition and always returns to page 1.
// A category absent from the current items selects "all".
func (s *State[T]) SelectCategory(category string) {
	if category == "" || !HasCategory(s.items, category) {
		category = CategoryAll
	}
	s.category = category
	s.page = pagination.DefaultPage
}

// SetPage moves to page, clamped to the current filtered collection.
func (s *State[T]) SetPage(page int) {
	s.page = s.clamp(page)
}

// Replace swaps in a new collection.
//
// A selected category that no longer exists falls back to "all" (and page 1);
// otherwise the page is re-clamped to the new size.
func (s *State[T]) Replace(items []T) {
	s.items = items

	if !HasCategory(items, s.category) {
		s.SelectCategory(CategoryAll)
		return
	}
	s.page = s.clamp(s.page)
}

// Category returns the current selection.
func (s *State[T]) Category() string {
	return s.category
}

// Page returns the current page number.
func (s *State[T]) Page() int {
	return s.page
}

// View renders the current selection.
func (s *State[T]) View() View[T] {
	return ComputeView(s.items, s.category, s.page)
}

func (s *State[T]) clamp(page int) int {
	filtered := Filter(s.items, s.category)
	return pagination.ClampPage(page, pagination.TotalPages(len(filtered), ItemsPerPage))
}
