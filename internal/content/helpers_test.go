// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/pkg/uuid"
)

// # Mocks

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Find(ctx context.Context, filter content.Filter) ([]*content.Item, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]*content.Item)
	return items, args.Error(1)
}

func (m *mockRepository) FindOne(ctx context.Context, filter content.Filter) (*content.Item, error) {
	args := m.Called(ctx, filter)
	item, _ := args.Get(0).(*content.Item)
	return item, args.Error(1)
}

func (m *mockRepository) Insert(ctx context.Context, draft *content.Draft) (*content.Item, error) {
	args := m.Called(ctx, draft)
	item, _ := args.Get(0).(*content.Item)
	return item, args.Error(1)
}

func (m *mockRepository) UpdateByID(ctx context.Context, id string, patch content.Patch) (*content.Item, error) {
	args := m.Called(ctx, id, patch)
	item, _ := args.Get(0).(*content.Item)
	return item, args.Error(1)
}

func (m *mockRepository) DeleteByID(ctx context.Context, id string) (*content.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*content.Item)
	return item, args.Error(1)
}

func (m *mockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// # Fakes

// journal records the order of store calls and revalidation triggers.
type journal struct {
	mu     sync.Mutex
	events []string
}

func (j *journal) add(event string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, event)
}

func (j *journal) Events() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.events)
}

// Trigger implements content.Revalidator.
func (j *journal) Trigger() {
	j.add("trigger")
}

// memoryRepository is an in-process Repository that enforces the schema the
// same way the Postgres store does.
type memoryRepository struct {
	mu      sync.Mutex
	schema  content.Schema
	items   []*content.Item
	journal *journal
	clock   time.Time
}

func newMemoryRepository(s content.Schema, j *journal) *memoryRepository {
	return &memoryRepository{schema: s, journal: j, clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *memoryRepository) Find(_ context.Context, filter content.Filter) ([]*content.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []*content.Item{}
	for i := len(r.items) - 1; i >= 0; i-- {
		item := r.items[i]
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Slug != "" && item.Slug != filter.Slug {
			continue
		}
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memoryRepository) FindOne(ctx context.Context, filter content.Filter) (*content.Item, error) {
	items, _ := r.Find(ctx, filter)
	if len(items) == 0 {
		return nil, apperr.NotFound(r.schema.Resource)
	}
	return items[0], nil
}

func (r *memoryRepository) Insert(_ context.Context, draft *content.Draft) (*content.Item, error) {
	if err := r.schema.Validate(draft); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.clock = r.clock.Add(time.Minute)
	item := &content.Item{
		ID:        uuid.New(),
		Kind:      r.schema.Kind,
		Draft:     *draft,
		CreatedAt: r.clock,
		UpdatedAt: r.clock,
	}
	r.items = append(r.items, item)
	r.journal.add("insert")

	copied := *item
	return &copied, nil
}

func (r *memoryRepository) UpdateByID(_ context.Context, id string, patch content.Patch) (*content.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.ID != id {
			continue
		}
		merged := item.Draft
		patch.Apply(&merged)
		if err := r.schema.Validate(&merged); err != nil {
			return nil, err
		}
		item.Draft = merged
		r.journal.add("update")
		copied := *item
		return &copied, nil
	}
	return nil, apperr.NotFound(r.schema.Resource)
}

func (r *memoryRepository) DeleteByID(_ context.Context, id string) (*content.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for index, item := range r.items {
		if item.ID == id {
			r.items = slices.Delete(r.items, index, index+1)
			r.journal.add("delete")
			return item, nil
		}
	}
	return nil, apperr.NotFound(r.schema.Resource)
}

func (r *memoryRepository) Count(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}

// # Fixtures

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func validProject(title, category string) content.Draft {
	return content.Draft{
		Title:       title,
		Slug:        "",
		Description: "A project",
		Content:     "Long body",
		Category:    category,
		Thumbnail:   "https://cdn.example.com/thumb.png",
		ImageURLs:   []string{"https://cdn.example.com/1.png"},
		Frameworks:  []content.Framework{{Title: "Go", ImageURL: "https://cdn.example.com/go.svg"}},
	}
}
