// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Contact, error)
	Count(ctx context.Context, filter Filter) (int, error)
	Create(ctx context.Context, c *Contact) error
	UpdateStatus(ctx context.Context, id string, status Status) (*Contact, error)
	Delete(ctx context.Context, id string) error
}
