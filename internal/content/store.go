// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "context"

// Repository is the typed store for one content kind.
//
// Implementations validate documents against their [Schema] before writing
// and report missing rows as NOT_FOUND [apperr.AppError] values.
type Repository interface {
	// Find returns every matching item, newest first.
	Find(ctx context.Context, filter Filter) ([]*Item, error)

	// FindOne returns the newest matching item.
	FindOne(ctx context.Context, filter Filter) (*Item, error)

	// Insert persists a draft and returns it with id and timestamps assigned.
	Insert(ctx context.Context, draft *Draft) (*Item, error)

	// UpdateByID merges patch into the stored item and returns the result.
	UpdateByID(ctx context.Context, id string, patch Patch) (*Item, error)

	// DeleteByID removes an item and returns what was removed.
	DeleteByID(ctx context.Context, id string) (*Item, error)

	// Count returns the number of stored items.
	Count(ctx context.Context) (int, error)
}
