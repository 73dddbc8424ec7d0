// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "context"

// Source is a read-only view of one kind.
//
// Derived artifacts read through a Source so they can be built before the
// services that notify them.
type Source struct {
	repo   Repository
	schema Schema
}

func NewSource(repo Repository, s Schema) *Source {
	return &Source{repo: repo, schema: s}
}

// Schema returns the kind this source reads.
func (source *Source) Schema() Schema {
	return source.schema
}

// List returns the matching items, newest first.
func (source *Source) List(ctx context.Context, filter Filter) ([]*Item, error) {
	return source.repo.Find(ctx, filter)
}
