// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/respond"
)

type Handler struct {
	reporter *Reporter
	guard    func(http.Handler) http.Handler
}

func NewHandler(reporter *Reporter, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{reporter: reporter, guard: guard}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.With(handler.guard).Get("/summary", handler.summary)
	return router
}

/*
GET /api/v1/dashboard/summary.

Response:
  - 200: Summary (partial when some counters failed)
  - 401: Missing or invalid credentials
*/
func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.reporter.Summarize(request.Context()))
}
