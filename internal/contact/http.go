// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
)

type Handler struct {
	service *Service
	guard   func(http.Handler) http.Handler
}

func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard}
}

// Routes returns the contact form endpoint and the admin inbox.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Post("/", handler.submit)

	// Inbox
	router.Group(func(admin chi.Router) {
		admin.Use(handler.guard)

		admin.Get("/", handler.list)
		admin.Patch("/{id}", handler.updateStatus)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

type submitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	WhatsApp string `json:"whatsapp"`
}

type statusRequest struct {
	Status Status `json:"status"`
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input submitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c := &Contact{
		Name:     input.Name,
		Email:    input.Email,
		Subject:  input.Subject,
		Message:  input.Message,
		WhatsApp: input.WhatsApp,
	}

	if err := handler.service.Submit(request.Context(), c); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, c)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{Status: Status(requestutil.Query(request, FieldStatus))}

	contacts, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contacts)
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	var input statusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateStatus(request.Context(), requestutil.ID(request, FieldID), input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, FieldID)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Contact deleted successfully")
}
