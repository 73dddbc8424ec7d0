// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dashboard aggregates the counters shown on the admin landing page.

Each counter is an independent query. They run concurrently and a failing
query only blanks its own counter; the rest of the summary is still returned.
*/
package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/folio/internal/contact"
)

// # Metric Names

const (
	MetricProjects       = "projects"
	MetricVideos         = "videos"
	MetricAchievements   = "achievements"
	MetricContacts       = "contacts"
	MetricUnreadContacts = "unreadContacts"
)

// ContentCounter counts the items of one content kind.
type ContentCounter interface {
	Count(ctx context.Context) (int, error)
}

// ContactCounter counts inbox messages.
type ContactCounter interface {
	Count(ctx context.Context, filter contact.Filter) (int, error)
}

// Summary is the landing-page snapshot. A nil counter failed to load; its
// error message is in Errors under the metric name.
type Summary struct {
	ProjectCount       *int              `json:"projectCount"`
	VideoCount         *int              `json:"videoCount"`
	AchievementCount   *int              `json:"achievementCount"`
	ContactCount       *int              `json:"contactCount"`
	UnreadContactCount *int              `json:"unreadContactCount"`
	Errors             map[string]string `json:"errors,omitempty"`
}

// Reporter fans out the summary queries.
type Reporter struct {
	projects     ContentCounter
	videos       ContentCounter
	achievements ContentCounter
	contacts     ContactCounter
	logger       *slog.Logger
}

func NewReporter(projects, videos, achievements ContentCounter, contacts ContactCounter, logger *slog.Logger) *Reporter {
	return &Reporter{
		projects:     projects,
		videos:       videos,
		achievements: achievements,
		contacts:     contacts,
		logger:       logger,
	}
}

/*
Summarize runs every counter concurrently and waits for all of them.

Goroutines never return an error to the group, so one failure neither
cancels nor hides the others.
*/
func (reporter *Reporter) Summarize(ctx context.Context) Summary {
	var (
		summary Summary
		mu      sync.Mutex
		group   errgroup.Group
	)

	collect := func(metric string, target **int, count func(context.Context) (int, error)) {
		group.Go(func() error {
			value, err := count(ctx)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if summary.Errors == nil {
					summary.Errors = map[string]string{}
				}
				summary.Errors[metric] = err.Error()
				reporter.logger.Warn("dashboard_metric_failed",
					slog.String("metric", metric),
					slog.Any("error", err),
				)
				return nil
			}

			*target = &value
			return nil
		})
	}

	collect(MetricProjects, &summary.ProjectCount, reporter.projects.Count)
	collect(MetricVideos, &summary.VideoCount, reporter.videos.Count)
	collect(MetricAchievements, &summary.AchievementCount, reporter.achievements.Count)
	collect(MetricContacts, &summary.ContactCount, func(ctx context.Context) (int, error) {
		return reporter.contacts.Count(ctx, contact.Filter{})
	})
	collect(MetricUnreadContacts, &summary.UnreadContactCount, func(ctx context.Context) (int, error) {
		return reporter.contacts.Count(ctx, contact.Filter{Status: contact.StatusUnread})
	})

	_ = group.Wait()
	return summary
}
