// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/contact"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/pkg/uuid"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context, filter contact.Filter) ([]*contact.Contact, error) {
	args := m.Called(ctx, filter)
	contacts, _ := args.Get(0).([]*contact.Contact)
	return contacts, args.Error(1)
}

func (m *mockRepository) Count(ctx context.Context, filter contact.Filter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, c *contact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockRepository) UpdateStatus(ctx context.Context, id string, status contact.Status) (*contact.Contact, error) {
	args := m.Called(ctx, id, status)
	c, _ := args.Get(0).(*contact.Contact)
	return c, args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newService(repo contact.Repository) *contact.Service {
	return contact.NewService(repo, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestSubmit_Normalizes(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *contact.Contact) bool {
		return c.Email == "jane.doe@example.com" && c.Name == "Jane" && c.Status == contact.StatusUnread
	})).Return(nil).Once()

	c := &contact.Contact{
		Name:     "  Jane ",
		Email:    "  Jane.Doe@Example.COM ",
		Subject:  "Hello",
		Message:  "Let's talk",
		WhatsApp: "+62 812",
		Status:   contact.StatusReplied,
	}

	require.NoError(t, newService(repo).Submit(context.Background(), c))
	repo.AssertExpectations(t)
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input contact.Contact
		field string
	}{
		{"bad_email", contact.Contact{Name: "a", Email: "not-an-email", Subject: "s", Message: "m", WhatsApp: "1"}, contact.FieldEmail},
		{"long_tld", contact.Contact{Name: "a", Email: "a@b.abcd", Subject: "s", Message: "m", WhatsApp: "1"}, contact.FieldEmail},
		{"missing_whatsapp", contact.Contact{Name: "a", Email: "a@b.io", Subject: "s", Message: "m"}, contact.FieldWhatsApp},
		{"blank_message", contact.Contact{Name: "a", Email: "a@b.io", Subject: "s", Message: "   ", WhatsApp: "1"}, contact.FieldMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			input := tt.input

			err := newService(repo).Submit(context.Background(), &input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			require.Len(t, appErr.Details, 1)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	id := uuid.New()

	repo := &mockRepository{}
	repo.On("UpdateStatus", mock.Anything, id, contact.StatusRead).
		Return(&contact.Contact{ID: id, Status: contact.StatusRead}, nil).Once()

	service := newService(repo)

	updated, err := service.UpdateStatus(context.Background(), id, contact.StatusRead)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusRead, updated.Status)

	_, err = service.UpdateStatus(context.Background(), id, "archived")
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)

	_, err = service.UpdateStatus(context.Background(), "nope", contact.StatusRead)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	repo.AssertExpectations(t)
}

func TestHandler_Routes(t *testing.T) {
	repo := &mockRepository{}
	guard := middleware.RequireAdmin(sec.Credentials{Secret: "s3cret"})
	router := contact.NewHandler(newService(repo), guard).Routes()

	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("List", mock.Anything, contact.Filter{Status: contact.StatusUnread}).
		Return([]*contact.Contact{{Name: "Jane"}}, nil).Once()
	missing := uuid.New()
	repo.On("Delete", mock.Anything, missing).Return(apperr.NotFound("Contact")).Once()

	serve := func(method, target, body string, authorized bool) *httptest.ResponseRecorder {
		request := httptest.NewRequest(method, target, strings.NewReader(body))
		if authorized {
			request.Header.Set(constants.HeaderAuthorization, "Bearer s3cret")
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	submitted := serve(http.MethodPost, "/", `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"Hello","whatsapp":"123"}`, false)
	assert.Equal(t, http.StatusCreated, submitted.Code)

	assert.Equal(t, http.StatusUnauthorized, serve(http.MethodGet, "/", "", false).Code)

	listed := serve(http.MethodGet, "/?status=unread", "", true)
	assert.Equal(t, http.StatusOK, listed.Code)
	assert.Contains(t, listed.Body.String(), `"name":"Jane"`)

	assert.Equal(t, http.StatusBadRequest, serve(http.MethodGet, "/?status=spam", "", true).Code)
	assert.Equal(t, http.StatusNotFound, serve(http.MethodDelete, "/"+missing, "", true).Code)

	repo.AssertExpectations(t)
}
