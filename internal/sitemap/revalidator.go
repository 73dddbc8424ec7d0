// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sitemap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/platform/constants"
)

// Outcome reports the result of one rebuild.
type Outcome struct {
	StartedAt  time.Time
	FinishedAt time.Time
	URLs       int
	Err        error
}

// Option customizes a [Revalidator].
type Option func(*Revalidator)

// WithNotify registers a hook called after every background rebuild.
//
// The hook runs on the worker goroutine and must return quickly.
func WithNotify(notify func(Outcome)) Option {
	return func(r *Revalidator) {
		r.notify = notify
	}
}

// WithTimeout bounds a single rebuild.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Revalidator) {
		r.timeout = timeout
	}
}

// Revalidator rebuilds the sitemap after content mutations.
type Revalidator struct {
	sources []Source
	store   ArtifactStore
	baseURL string
	logger  *slog.Logger
	timeout time.Duration
	notify  func(Outcome)

	// pending holds at most one queued rebuild.
	pending chan struct{}

	mu   sync.Mutex
	last *Outcome
}

// NewRevalidator builds a revalidator over the given sources.
func NewRevalidator(store ArtifactStore, baseURL string, logger *slog.Logger, sources []Source, options ...Option) *Revalidator {
	revalidator := &Revalidator{
		sources: sources,
		store:   store,
		baseURL: baseURL,
		logger:  logger,
		timeout: constants.RegenerateTimeout,
		pending: make(chan struct{}, 1),
	}
	for _, option := range options {
		option(revalidator)
	}
	return revalidator
}

// # Scheduling

// Trigger enqueues a rebuild and returns immediately.
//
// If a rebuild is already queued it absorbs this trigger.
func (r *Revalidator) Trigger() {
	select {
	case r.pending <- struct{}{}:
	default:
	}
}

// Run consumes queued rebuilds until ctx is cancelled.
//
// Each rebuild gets its own timeout and is not cut short by ctx, so a
// shutdown never leaves a half-written artifact.
func (r *Revalidator) Run(ctx context.Context) {
	r.logger.Info("sitemap_worker_started")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("sitemap_worker_stopped")
			return
		case <-r.pending:
			outcome := r.rebuild(context.WithoutCancel(ctx))
			if r.notify != nil {
				r.notify(outcome)
			}
		}
	}
}

// LastOutcome returns the result of the most recent rebuild, if any.
func (r *Revalidator) LastOutcome() (Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == nil {
		return Outcome{}, false
	}
	return *r.last, true
}

// # Rebuild

// Regenerate rebuilds and stores the sitemap synchronously.
//
// It is idempotent: running it twice without intervening mutations stores
// the same document.
func (r *Revalidator) Regenerate(ctx context.Context) error {
	_, _, err := r.regenerate(ctx)
	return err
}

// Document returns the stored sitemap, rebuilding it once when none exists yet.
func (r *Revalidator) Document(ctx context.Context) ([]byte, error) {
	document, err := r.store.Load(ctx)
	if err == nil {
		return document, nil
	}
	if !errors.Is(err, ErrNoArtifact) {
		return nil, err
	}

	document, _, err = r.regenerate(ctx)
	return document, err
}

// rebuild runs one background regeneration and records its outcome.
func (r *Revalidator) rebuild(parent context.Context) Outcome {
	ctx, cancel := context.WithTimeout(parent, r.timeout)
	defer cancel()

	outcome := Outcome{StartedAt: time.Now()}
	_, outcome.URLs, outcome.Err = r.regenerate(ctx)
	outcome.FinishedAt = time.Now()

	if outcome.Err != nil {
		r.logger.Error("sitemap_regeneration_failed", slog.Any("error", outcome.Err))
	} else {
		r.logger.Info("sitemap_regenerated",
			slog.Int("urls", outcome.URLs),
			slog.Duration("took", outcome.FinishedAt.Sub(outcome.StartedAt)),
		)
	}

	r.mu.Lock()
	r.last = &outcome
	r.mu.Unlock()

	return outcome
}

func (r *Revalidator) regenerate(ctx context.Context) ([]byte, int, error) {
	collections := make([]collection, 0, len(r.sources))
	for _, source := range r.sources {
		items, err := source.List(ctx, content.Filter{})
		if err != nil {
			return nil, 0, fmt.Errorf("sitemap: list %s: %w", source.Schema().Collection, err)
		}
		collections = append(collections, collection{schema: source.Schema(), items: items})
	}

	document, urls, err := build(r.baseURL, collections)
	if err != nil {
		return nil, 0, fmt.Errorf("sitemap: render: %w", err)
	}

	if err := r.store.Save(ctx, document); err != nil {
		return nil, 0, err
	}
	return document, urls, nil
}
