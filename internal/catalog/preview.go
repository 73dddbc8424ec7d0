// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// Preview holds at most one item open in the detail overlay.
//
// It is independent of [State]: paging or filtering never closes it.
type Preview[T any] struct {
	current T
	active  bool
}

// Open shows item, replacing whatever was open.
func (p *Preview[T]) Open(item T) {
	p.current = item
	p.active = true
}

// Close dismisses the overlay.
func (p *Preview[T]) Close() {
	var zero T
	p.current = zero
	p.active = false
}

// Current returns the open item, if any.
func (p *Preview[T]) Current() (T, bool) {
	return p.current, p.active
}

// Active reports whether an item is open.
func (p *Preview[T]) Active() bool {
	return p.active
}
