// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/slug"
	"github.com/taibuivan/folio/pkg/uuid"
)

// Revalidator is notified after every committed mutation.
//
// Trigger must not block; the rebuild it schedules runs outside the request.
type Revalidator interface {
	Trigger()
}

// Service implements the CRUD capability for one content kind.
type Service struct {
	repo        Repository
	schema      Schema
	revalidator Revalidator
	logger      *slog.Logger
}

// NewService composes a repository with the revalidator shared by all kinds.
func NewService(repo Repository, s Schema, revalidator Revalidator, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		schema:      s,
		revalidator: revalidator,
		logger:      logger.With(slog.String("kind", string(s.Kind))),
	}
}

// ByKind indexes services by the kind they manage.
func ByKind(services ...*Service) map[Kind]*Service {
	index := make(map[Kind]*Service, len(services))
	for _, service := range services {
		index[service.schema.Kind] = service
	}
	return index
}

// Schema returns the kind this service manages.
func (service *Service) Schema() Schema {
	return service.schema
}

// # Reads

// List returns the matching items, newest first.
func (service *Service) List(ctx context.Context, filter Filter) ([]*Item, error) {
	return service.repo.Find(ctx, filter)
}

// GetBySlug returns the item published under slug.
func (service *Service) GetBySlug(ctx context.Context, itemSlug string) (*Item, error) {
	if itemSlug == "" {
		return nil, apperr.NotFound(service.schema.Resource)
	}
	return service.repo.FindOne(ctx, Filter{Slug: itemSlug})
}

// Count returns the number of stored items.
func (service *Service) Count(ctx context.Context) (int, error) {
	return service.repo.Count(ctx)
}

// # Mutations

/*
Create persists a new item and schedules a sitemap rebuild.

Projects without a slug get one derived from the title.

Returns:
  - *Item: the stored item with id and timestamps
  - error: SCHEMA_VALIDATION when the store refuses the document
*/
func (service *Service) Create(ctx context.Context, draft *Draft) (*Item, error) {
	if service.schema.Kind == KindProject && draft.Slug == "" {
		draft.Slug = slug.From(draft.Title)
	}

	item, err := service.repo.Insert(ctx, draft)
	if err != nil {
		return nil, err
	}

	service.revalidator.Trigger()
	service.logger.Info("content_created", slog.String("id", item.ID), slog.String("title", item.Title))
	return item, nil
}

/*
Update applies a partial patch to an existing item and schedules a rebuild.

Returns:
  - *Item: the item after the patch
  - error: VALIDATION_ERROR without an id, NOT_FOUND when absent
*/
func (service *Service) Update(ctx context.Context, id string, patch Patch) (*Item, error) {
	validator := &validate.Validator{}
	if err := validator.Required(FieldID, id).Err(); err != nil {
		return nil, err
	}

	// A malformed id cannot name a stored item.
	if !uuid.Valid(id) {
		return nil, apperr.NotFound(service.schema.Resource)
	}

	item, err := service.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	service.revalidator.Trigger()
	service.logger.Info("content_updated", slog.String("id", item.ID))
	return item, nil
}

/*
Delete removes an item and schedules a rebuild.

Returns:
  - *Item: the removed item
  - error: VALIDATION_ERROR without an id, NOT_FOUND when absent
*/
func (service *Service) Delete(ctx context.Context, id string) (*Item, error) {
	validator := &validate.Validator{}
	if err := validator.Required(FieldID, id).Err(); err != nil {
		return nil, err
	}

	if !uuid.Valid(id) {
		return nil, apperr.NotFound(service.schema.Resource)
	}

	item, err := service.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	service.revalidator.Trigger()
	service.logger.Warn("content_deleted", slog.String("id", item.ID))
	return item, nil
}
