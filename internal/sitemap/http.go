// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sitemap

import (
	"net/http"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/respond"
)

// Handler serves the stored sitemap document.
type Handler struct {
	revalidator *Revalidator
}

// NewHandler constructs a sitemap [Handler].
func NewHandler(revalidator *Revalidator) *Handler {
	return &Handler{revalidator: revalidator}
}

/*
ServeHTTP handles GET /sitemap.xml.

Response:
  - 200: application/xml document
  - 500: The artifact could not be loaded or built
*/
func (handler *Handler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.revalidator.Document(request.Context())
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	writer.Header().Set("Content-Type", "application/xml; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(document)
}
