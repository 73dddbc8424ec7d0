// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api assembles the chi routing tree and owns the [http.Server].

Routes:

	GET  /health, /ready          probes
	GET  /sitemap.xml             last generated sitemap
	     /api/v1/auth             dashboard session
	     /api/v1/catalog          public filtered views
	     /api/v1/contact          inbox
	     /api/v1/dashboard        counts
	     /api/v1/{collection}     CRUD per content kind
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/folio/internal/contact"
	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/dashboard"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/session"
)

type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// Handlers is everything the router mounts. Content holds one handler per
// content kind, mounted under its collection name.
type Handlers struct {
	Liveness  http.HandlerFunc
	Readiness http.HandlerFunc
	Sitemap   http.Handler

	Session   *session.Handler
	Content   []*content.Handler
	Catalog   *content.CatalogHandler
	Contact   *contact.Handler
	Dashboard *dashboard.Handler
}

func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	return &Server{
		log: log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           Router(ctx, cfg, log, verifier, h),
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Router builds the routing tree without binding a listener. ctx bounds the
// rate limiter's background eviction.
func Router(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		middleware.RequestID(),
		middleware.StructuredLogger(log),
		chimw.Timeout(constants.GlobalRequestTimeout),
		middleware.RateLimit(ctx),
		middleware.PanicRecovery(log),
		middleware.Authenticate(verifier),
		middleware.CORS(cfg),
		chimw.CleanPath,
	)

	router.Get("/health", h.Liveness)
	router.Get("/ready", h.Readiness)
	router.Method(http.MethodGet, "/sitemap.xml", h.Sitemap)

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Mount("/auth", h.Session.Routes())
		v1.Mount("/catalog", h.Catalog.Routes())
		v1.Mount("/contact", h.Contact.Routes())
		v1.Mount("/dashboard", h.Dashboard.Routes())

		for _, handler := range h.Content {
			v1.Mount("/"+handler.Collection(), handler.Routes())
		}
	})

	return router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_listening", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
