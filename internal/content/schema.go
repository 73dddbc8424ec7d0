// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"fmt"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// Schema describes one content kind: where it lives and which fields the
// store refuses to persist without.
type Schema struct {
	// Kind is the value stamped on every item of this collection.
	Kind Kind

	// Resource is the display name used in error and success messages.
	Resource string

	// Collection is the URL segment (e.g. "projects").
	Collection string

	// Folder is the object-store prefix for uploaded media.
	Folder string

	// Detailed kinds publish one page per item at /<collection>/<slug>.
	Detailed bool

	// Table is the backing Postgres table.
	Table schema.CatalogContentTable

	// extra adds the kind-specific rules on top of the shared ones.
	extra func(validator *validate.Validator, draft *Draft)
}

// # Registered Kinds

var (
	// Projects require a slug (detail page URL) and a long-form body.
	Projects = Schema{
		Kind:       KindProject,
		Resource:   "Project",
		Collection: "projects",
		Folder:     "projects",
		Detailed:   true,
		Table:      schema.CatalogProject,
		extra: func(validator *validate.Validator, draft *Draft) {
			validator.Required(FieldSlug, draft.Slug)
			validator.Required(FieldContent, draft.Content)
		},
	}

	// Videos link out to the hosting platform.
	Videos = Schema{
		Kind:       KindVideo,
		Resource:   "Video",
		Collection: "videos",
		Folder:     "youtube",
		Table:      schema.CatalogVideo,
		extra: func(validator *validate.Validator, draft *Draft) {
			validator.Required(FieldHref, draft.Href)
		},
	}

	// Achievements carry no fields beyond the shared ones.
	Achievements = Schema{
		Kind:       KindAchievement,
		Resource:   "Achievement",
		Collection: "achievements",
		Folder:     "achievements",
		Table:      schema.CatalogAchievement,
	}
)

// Schemas lists every content kind in display order.
func Schemas() []Schema {
	return []Schema{Projects, Videos, Achievements}
}

// SchemaFor resolves a URL collection segment to its schema.
func SchemaFor(collection string) (Schema, bool) {
	for _, candidate := range Schemas() {
		if candidate.Collection == collection {
			return candidate, true
		}
	}
	return Schema{}, false
}

/*
Validate checks a draft against the persistence rules of this kind.

Returns:
  - error: nil, or an [apperr.AppError] with code SCHEMA_VALIDATION (HTTP 500)
    whose message names the kind and whose details name each offending field
*/
func (s Schema) Validate(draft *Draft) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, draft.Title)
	validator.Required(FieldDescription, draft.Description)
	validator.Required(FieldCategory, draft.Category)
	validator.Required(FieldThumbnail, draft.Thumbnail)

	for index, framework := range draft.Frameworks {
		validator.Required(fmt.Sprintf("%s[%d].title", FieldFrameworks, index), framework.Title)
		validator.Required(fmt.Sprintf("%s[%d].imageUrl", FieldFrameworks, index), framework.ImageURL)
	}

	if s.extra != nil {
		s.extra(validator, draft)
	}

	if !validator.HasErrors() {
		return nil
	}
	return apperr.SchemaViolation(fmt.Sprintf("%s validation failed", s.Kind), validator.Errors()...)
}
