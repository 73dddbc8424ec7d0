// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/api"
	"github.com/taibuivan/folio/internal/contact"
	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/dashboard"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/session"
	"github.com/taibuivan/folio/internal/sitemap"
)

const apiSecret = "router-secret"

// # Fakes

// staticRepository serves a fixed collection and refuses writes.
type staticRepository struct {
	items []*content.Item
}

func (repo *staticRepository) Find(context.Context, content.Filter) ([]*content.Item, error) {
	return append([]*content.Item{}, repo.items...), nil
}

func (repo *staticRepository) FindOne(_ context.Context, filter content.Filter) (*content.Item, error) {
	for _, item := range repo.items {
		if item.Slug == filter.Slug {
			return item, nil
		}
	}
	return nil, apperr.NotFound("Project")
}

func (repo *staticRepository) Insert(context.Context, *content.Draft) (*content.Item, error) {
	return nil, apperr.Internal(nil)
}

func (repo *staticRepository) UpdateByID(context.Context, string, content.Patch) (*content.Item, error) {
	return nil, apperr.NotFound("Project")
}

func (repo *staticRepository) DeleteByID(context.Context, string) (*content.Item, error) {
	return nil, apperr.NotFound("Project")
}

func (repo *staticRepository) Count(context.Context) (int, error) {
	return len(repo.items), nil
}

type emptyInbox struct{}

func (emptyInbox) List(context.Context, contact.Filter) ([]*contact.Contact, error) {
	return []*contact.Contact{}, nil
}
func (emptyInbox) Count(context.Context, contact.Filter) (int, error) { return 0, nil }
func (emptyInbox) Create(context.Context, *contact.Contact) error      { return nil }
func (emptyInbox) UpdateStatus(context.Context, string, contact.Status) (*contact.Contact, error) {
	return nil, apperr.NotFound("Contact")
}
func (emptyInbox) Delete(context.Context, string) error { return apperr.NotFound("Contact") }

type memoryArtifact struct {
	mu       sync.Mutex
	document []byte
}

func (store *memoryArtifact) Save(_ context.Context, document []byte) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.document = document
	return nil
}

func (store *memoryArtifact) Load(context.Context) ([]byte, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.document == nil {
		return nil, sitemap.ErrNoArtifact
	}
	return store.document, nil
}

// # Setup

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	tokens, err := sec.NewTokenService("session-secret", constants.AuthIssuer)
	require.NoError(t, err)

	credentials := sec.Credentials{Secret: apiSecret}
	guard := middleware.RequireAdmin(credentials)

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	projectRepo := &staticRepository{items: []*content.Item{{
		ID:        "0190f1b2-0000-7000-8000-000000000001",
		Kind:      content.KindProject,
		Draft:     content.Draft{Title: "Folio", Slug: "folio", Category: "web"},
		CreatedAt: now,
		UpdatedAt: now,
	}}}

	var (
		services []*content.Service
		sources  []sitemap.Source
	)
	repos := []content.Repository{projectRepo, &staticRepository{}, &staticRepository{}}
	for i, s := range content.Schemas() {
		sources = append(sources, content.NewSource(repos[i], s))
	}

	revalidator := sitemap.NewRevalidator(&memoryArtifact{}, "https://folio.example", logger, sources)

	var handlers []*content.Handler
	for i, s := range content.Schemas() {
		service := content.NewService(repos[i], s, revalidator, logger)
		services = append(services, service)
		handlers = append(handlers, content.NewHandler(service, guard))
	}

	contacts := contact.NewService(emptyInbox{}, logger)
	byKind := content.ByKind(services...)
	reporter := dashboard.NewReporter(
		byKind[content.KindProject], byKind[content.KindVideo], byKind[content.KindAchievement],
		contacts, logger,
	)
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{}, logger)

	return api.Router(t.Context(), &config.Config{Environment: "development"}, logger, tokens, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Sitemap:   sitemap.NewHandler(revalidator),
		Session:   session.NewHandler(session.NewService("", tokens, logger), credentials),
		Content:   handlers,
		Catalog:   content.NewCatalogHandler(services...),
		Contact:   contact.NewHandler(contacts, guard),
		Dashboard: dashboard.NewHandler(reporter, guard),
	})
}

// # Tests

func TestRouter_Mounts(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		admin      bool
		wantStatus int
		wantBody   string
	}{
		{"liveness", http.MethodGet, "/health", false, http.StatusOK, `"ok"`},
		{"readiness", http.MethodGet, "/ready", false, http.StatusOK, `"ready"`},
		{"sitemap", http.MethodGet, "/sitemap.xml", false, http.StatusOK, "https://folio.example/projects/folio"},
		{"catalog_public", http.MethodGet, "/api/v1/catalog/projects?category=web", false, http.StatusOK, `"filteredCount":1`},
		{"detail_public", http.MethodGet, "/api/v1/projects/by-slug/folio", false, http.StatusOK, `"title":"Folio"`},
		{"list_requires_admin", http.MethodGet, "/api/v1/projects", false, http.StatusUnauthorized, ""},
		{"list_with_secret", http.MethodGet, "/api/v1/projects", true, http.StatusOK, `"slug":"folio"`},
		{"videos_mounted", http.MethodGet, "/api/v1/videos", true, http.StatusOK, `"data":[]`},
		{"inbox_requires_admin", http.MethodGet, "/api/v1/contact", false, http.StatusUnauthorized, ""},
		{"dashboard_summary", http.MethodGet, "/api/v1/dashboard/summary", true, http.StatusOK, `"projectCount":1`},
		{"unknown_route", http.MethodGet, "/api/v1/recipes", true, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.admin {
				request.Header.Set("Authorization", "Bearer "+apiSecret)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())
			if tt.wantBody != "" {
				assert.True(t, strings.Contains(recorder.Body.String(), tt.wantBody), recorder.Body.String())
			}
		})
	}
}

func TestRouter_SignInDisabledWithoutHash(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", strings.NewReader(`{"password":"x"}`)))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
