// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content defines the catalog entries shown on the public site and the
generic CRUD capability that manages them.

Projects, videos and achievements share one shape ([Item]) and one set of
operations. What differs between them (table, required fields, upload folder)
is described by a [Schema], so the repository, service and HTTP handler are
written once and instantiated per kind.

Every successful mutation is followed by a sitemap regeneration request; the
request is fire-and-forget and never affects the HTTP response.
*/
package content

import "time"

// # Domain Enums

// Kind identifies one of the catalog collections.
type Kind string

const (
	// KindProject is a portfolio project with a detail page.
	KindProject Kind = "project"

	// KindVideo is a published video linked through href.
	KindVideo Kind = "video"

	// KindAchievement is a certificate or award.
	KindAchievement Kind = "achievement"
)

// # JSON Field Names

const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldContent     = "content"
	FieldCategory    = "category"
	FieldThumbnail   = "thumbnail"
	FieldImageURLs   = "imageUrls"
	FieldPreviewLink = "previewLink"
	FieldHref        = "href"
	FieldFrameworks  = "frameworks"
)

// # Core Entities

// Framework is a technology tag attached to an item (e.g. "Go" + logo URL).
type Framework struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

// Draft holds the caller-supplied fields of an item, before the store assigns
// identity and timestamps.
//
// Category is free text and acts as the only partition key used by the
// public catalog filter.
type Draft struct {
	Title       string      `json:"title"`
	Slug        string      `json:"slug,omitempty"`
	Description string      `json:"description"`
	Content     string      `json:"content,omitempty"`
	Category    string      `json:"category"`
	Thumbnail   string      `json:"thumbnail"`
	ImageURLs   []string    `json:"imageUrls"`
	PreviewLink string      `json:"previewLink,omitempty"`
	Href        string      `json:"href,omitempty"`
	Frameworks  []Framework `json:"frameworks"`
}

// Item is a persisted catalog entry.
type Item struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Draft
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryName exposes the partition key to the catalog engine.
func (item *Item) CategoryName() string {
	return item.Category
}

// Filter narrows repository lookups. Zero fields are ignored.
type Filter struct {
	Category string
	Slug     string
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Slug        *string
	Description *string
	Content     *string
	Category    *string
	Thumbnail   *string
	PreviewLink *string
	Href        *string
	ImageURLs   *[]string
	Frameworks  *[]Framework
}

// Apply copies every non-nil field of the patch onto item.
func (patch Patch) Apply(item *Draft) {
	assign(&item.Title, patch.Title)
	assign(&item.Slug, patch.Slug)
	assign(&item.Description, patch.Description)
	assign(&item.Content, patch.Content)
	assign(&item.Category, patch.Category)
	assign(&item.Thumbnail, patch.Thumbnail)
	assign(&item.PreviewLink, patch.PreviewLink)
	assign(&item.Href, patch.Href)
	assign(&item.ImageURLs, patch.ImageURLs)
	assign(&item.Frameworks, patch.Frameworks)
}

// IsEmpty reports whether the patch changes nothing.
func (patch Patch) IsEmpty() bool {
	return patch == (Patch{})
}

// assign overwrites *target when value is set.
func assign[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}
