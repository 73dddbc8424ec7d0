// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sitemap keeps the public sitemap consistent with the stored content.

The sitemap is a derived artifact: it is rebuilt from the full current state
of every content kind and stored as a single XML document. Mutations never
wait for it. They call [Revalidator.Trigger], which enqueues a rebuild on a
single-slot queue consumed by [Revalidator.Run].

Consistency model:

  - A rebuild reads everything, so one rebuild covers every mutation that
    committed before it started.
  - While a rebuild is pending, further triggers are absorbed by it.
  - A trigger arriving during a running rebuild queues exactly one more.

Failures are logged and reported through the notify hook; they never reach
the caller that triggered them.
*/
package sitemap

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/pkg/slice"
)

// xmlns is the sitemaps.org protocol namespace.
const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// lastModLayout is the W3C date format accepted by crawlers.
const lastModLayout = "2006-01-02"

// Source exposes the items of one content kind.
type Source interface {
	Schema() content.Schema
	List(ctx context.Context, filter content.Filter) ([]*content.Item, error)
}

// # XML Document

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

// page is one static route of the site.
type page struct {
	path       string
	changeFreq string
	priority   float32
}

var (
	homePage    = page{path: "/", changeFreq: "weekly", priority: 1.0}
	contactPage = page{path: "/contact", changeFreq: "yearly", priority: 0.5}
)

// # Builder

// collection holds one kind and its items, newest first.
type collection struct {
	schema content.Schema
	items  []*content.Item
}

/*
build renders the sitemap for the given collections.

Layout: the home page, one listing page per collection (in source order),
the contact page, then one detail page per item of detailed kinds.
*/
func build(baseURL string, collections []collection) ([]byte, int, error) {
	base := strings.TrimRight(baseURL, "/")
	set := urlSet{Xmlns: xmlns}

	var newest time.Time
	for _, c := range collections {
		if latest := latestUpdate(c.items); latest.After(newest) {
			newest = latest
		}
	}

	set.URLs = append(set.URLs, entryFor(base, homePage, newest))

	for _, c := range collections {
		listing := page{path: "/" + c.schema.Collection, changeFreq: "weekly", priority: 0.8}
		set.URLs = append(set.URLs, entryFor(base, listing, latestUpdate(c.items)))
	}

	set.URLs = append(set.URLs, entryFor(base, contactPage, time.Time{}))

	for _, c := range collections {
		if !c.schema.Detailed {
			continue
		}
		for _, item := range c.items {
			if item.Slug == "" {
				continue
			}
			detail := page{path: "/" + c.schema.Collection + "/" + item.Slug, changeFreq: "monthly", priority: 0.6}
			set.URLs = append(set.URLs, entryFor(base, detail, item.UpdatedAt))
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, 0, err
	}
	return append([]byte(xml.Header), body...), len(set.URLs), nil
}

func entryFor(base string, p page, lastMod time.Time) urlEntry {
	entry := urlEntry{
		Loc:        base + p.path,
		ChangeFreq: p.changeFreq,
		Priority:   p.priority,
	}
	if !lastMod.IsZero() {
		entry.LastMod = lastMod.UTC().Format(lastModLayout)
	}
	return entry
}

// latestUpdate returns the most recent UpdatedAt among items.
func latestUpdate(items []*content.Item) time.Time {
	return slice.Reduce(items, time.Time{}, func(latest time.Time, item *content.Item) time.Time {
		if item.UpdatedAt.After(latest) {
			return item.UpdatedAt
		}
		return latest
	})
}
