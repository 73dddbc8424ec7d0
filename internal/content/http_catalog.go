// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/catalog"
	"github.com/taibuivan/folio/internal/platform/apperr"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/pkg/pagination"
)

// CatalogHandler serves the public, paged catalog of every kind.
type CatalogHandler struct {
	services map[string]*Service
}

// NewCatalogHandler indexes services by their URL collection segment.
func NewCatalogHandler(services ...*Service) *CatalogHandler {
	index := make(map[string]*Service, len(services))
	for _, service := range services {
		index[service.Schema().Collection] = service
	}
	return &CatalogHandler{services: index}
}

// Routes returns the public catalog endpoints.
func (handler *CatalogHandler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{collection}", handler.view)
	return router
}

/*
GET /api/v1/catalog/{collection}?category=&page=.

Description: Computes one catalog page. A category not present in the
collection selects "all"; out-of-range pages are clamped; an empty collection
renders an empty view.

Response:
  - 200: catalog.View[*Item]
  - 404: Unknown collection
*/
func (handler *CatalogHandler) view(writer http.ResponseWriter, request *http.Request) {
	service, ok := handler.services[requestutil.ID(request, "collection")]
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Collection"))
		return
	}

	items, err := service.List(request.Context(), Filter{})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state := catalog.NewState(items)
	state.SelectCategory(requestutil.Query(request, FieldCategory))
	state.SetPage(pagination.PageFromRequest(request))

	respond.OK(writer, state.View())
}
