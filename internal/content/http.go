// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/apperr"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pointer"
)

// maxIDBodyBytes bounds the optional JSON body of a delete request.
const maxIDBodyBytes = 4 << 10

// # Request Payloads

// itemPayload is the wire shape of create and update bodies.
//
// List fields stay raw so a wrong JSON type can be rejected explicitly
// instead of being silently dropped by the decoder.
type itemPayload struct {
	ID          *string         `json:"id"`
	Title       *string         `json:"title"`
	Slug        *string         `json:"slug"`
	Description *string         `json:"description"`
	Content     *string         `json:"content"`
	Category    *string         `json:"category"`
	Thumbnail   *string         `json:"thumbnail"`
	PreviewLink *string         `json:"previewLink"`
	Href        *string         `json:"href"`
	ImageURLs   json.RawMessage `json:"imageUrls"`
	Frameworks  json.RawMessage `json:"frameworks"`
}

// patch converts the payload into a [Patch], validating list field types.
func (payload itemPayload) patch() (Patch, error) {
	imageURLs, err := decodeList[string](FieldImageURLs, payload.ImageURLs)
	if err != nil {
		return Patch{}, err
	}

	frameworks, err := decodeList[Framework](FieldFrameworks, payload.Frameworks)
	if err != nil {
		return Patch{}, err
	}

	return Patch{
		Title:       payload.Title,
		Slug:        payload.Slug,
		Description: payload.Description,
		Content:     payload.Content,
		Category:    payload.Category,
		Thumbnail:   payload.Thumbnail,
		PreviewLink: payload.PreviewLink,
		Href:        payload.Href,
		ImageURLs:   imageURLs,
		Frameworks:  frameworks,
	}, nil
}

// draft converts the payload into a [Draft]. Frameworks must be sent as an
// array, possibly empty; an absent imageUrls becomes empty.
func (payload itemPayload) draft() (*Draft, error) {
	patch, err := payload.patch()
	if err != nil {
		return nil, err
	}
	if patch.Frameworks == nil {
		return nil, notArray(FieldFrameworks)
	}

	draft := &Draft{
		ImageURLs:  pointer.Fallback(patch.ImageURLs, []string{}),
		Frameworks: *patch.Frameworks,
	}
	patch.ImageURLs, patch.Frameworks = nil, nil
	patch.Apply(draft)

	return draft, nil
}

// decodeList decodes an optional JSON array field.
//
// An absent field yields nil. Any other JSON type, null included, is a
// VALIDATION_ERROR.
func decodeList[T any](field string, raw json.RawMessage) (*[]T, error) {
	present, isArray := requestutil.IsJSONArray(raw)
	if !present {
		return nil, nil
	}

	if !isArray {
		return nil, notArray(field)
	}

	list := []T{}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, notArray(field)
	}
	return &list, nil
}

func notArray(field string) error {
	return apperr.ValidationError(
		fmt.Sprintf("%s must be an array", field),
		apperr.FieldError{Field: field, Message: "Must be an array"},
	)
}

// # Handler Implementation

// Handler exposes the CRUD capability of one content kind over HTTP.
type Handler struct {
	service *Service
	guard   func(http.Handler) http.Handler
	upload  http.Handler
}

// NewHandler builds a handler whose management routes sit behind guard.
func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard}
}

// WithUpload mounts a media upload endpoint at POST /upload.
func (handler *Handler) WithUpload(upload http.Handler) *Handler {
	handler.upload = upload
	return handler
}

// Collection returns the URL segment the handler is mounted under.
func (handler *Handler) Collection() string {
	return handler.service.Schema().Collection
}

// Routes returns a [chi.Router] configured with the kind's endpoints.
//
// # Routing Strategy
//
//   - Public: detail lookup by slug for the site.
//   - Management: list, create, update, delete and upload behind the admin guard.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Endpoints
	router.Get("/by-slug/{slug}", handler.getBySlug)

	// ## Content Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(handler.guard)

		admin.Get("/", handler.list)
		admin.Post("/", handler.create)
		admin.Put("/", handler.update)
		admin.Delete("/", handler.delete)

		if handler.upload != nil {
			admin.Method(http.MethodPost, "/upload", handler.upload)
		}
	})

	return router
}

// # Handlers

/*
GET /api/v1/{kind}.

Description: Returns the full collection, newest first.

Response:
  - 200: []*Item
  - 401: Missing or invalid credentials
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{Category: requestutil.Query(request, FieldCategory)}

	items, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, items)
}

/*
GET /api/v1/{kind}/by-slug/{slug}.

Response:
  - 200: *Item
  - 404: No item published under the slug
*/
func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetBySlug(request.Context(), requestutil.ID(request, FieldSlug))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

/*
POST /api/v1/{kind}.

Request Body: itemPayload

Response:
  - 201: *Item
  - 400: Malformed JSON or a list field that is not an array
  - 500: SCHEMA_VALIDATION when required fields are missing
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload itemPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := payload.draft()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Create(request.Context(), draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, item)
}

/*
PUT /api/v1/{kind}.

Request Body: itemPayload with "id" (or ?id=) and the fields to change.

Response:
  - 200: *Item
  - 400: Missing id or a list field that is not an array
  - 404: Item not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var payload itemPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := pointer.Val(payload.ID)
	if id == "" {
		id = requestutil.Query(request, FieldID)
	}

	if err := (&validate.Validator{}).Required(FieldID, id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch, err := payload.patch()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Update(request.Context(), id, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

/*
DELETE /api/v1/{kind}?id=.

The id may also be sent as {"id": "..."} in the body.

Response:
  - 200: respond.MessageBody
  - 400: Missing id
  - 404: Item not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Query(request, FieldID)
	if id == "" {
		bodyID, err := idFromBody(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		id = bodyID
	}

	if _, err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, fmt.Sprintf("%s deleted successfully", handler.service.Schema().Resource))
}

// idFromBody reads an optional {"id": "..."} body. An empty body yields "".
func idFromBody(request *http.Request) (string, error) {
	if request.Body == nil {
		return "", nil
	}

	raw, err := io.ReadAll(io.LimitReader(request.Body, maxIDBodyBytes))
	if err != nil || len(raw) == 0 {
		return "", nil
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", validate.ErrInvalidJSON
	}
	return body.ID, nil
}
