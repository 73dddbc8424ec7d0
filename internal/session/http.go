// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/constants"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// Handler implements the sign-in and sign-out endpoints.
type Handler struct {
	service     *Service
	credentials sec.Credentials
}

func NewHandler(service *Service, credentials sec.Credentials) *Handler {
	return &Handler{service: service, credentials: credentials}
}

// Routes returns a [chi.Router] configured with the session endpoints.
//
// # Endpoints
//   - POST /signin  : Sets the session cookie.
//   - POST /signout : Clears it.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/signin", handler.signIn)
	router.Post("/signout", handler.signOut)
	return router
}

type signInRequest struct {
	Password string `json:"password"`
}

// cookie builds the session cookie with the attributes shared by set and clear.
func (handler *Handler) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     constants.SessionCookiePath,
		Expires:  expires,
		MaxAge:   maxAge,
		Secure:   handler.credentials.IsProduction,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

/*
POST /api/v1/auth/signin.

Request Body: signInRequest

Response:
  - 200: respond.MessageBody, session cookie set
  - 401: Wrong password
*/
func (handler *Handler) signIn(writer http.ResponseWriter, request *http.Request) {
	var input signInRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.SignIn(request.Context(), input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, handler.cookie(session.Token, session.ExpiresAt, int(constants.SessionTTL.Seconds())))
	respond.Message(writer, "Signed in successfully")
}

/*
POST /api/v1/auth/signout.

Description: Overwrites the session cookie with an empty, already expired one.

Response:
  - 200: respond.MessageBody
*/
func (handler *Handler) signOut(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, handler.cookie("", time.Unix(0, 0), -1))
	respond.Message(writer, "Logged out successfully")
}
