// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/uuid"
)

// emailPattern is intentionally loose: word characters around "@" and a 2-3
// letter top-level domain.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(ctx context.Context, filter Filter) ([]*Contact, error) {
	if filter.Status != "" {
		validator := &validate.Validator{}
		if err := validator.OneOf(FieldStatus, string(filter.Status), Statuses()...).Err(); err != nil {
			return nil, err
		}
	}
	return service.repo.List(ctx, filter)
}

func (service *Service) Count(ctx context.Context, filter Filter) (int, error) {
	return service.repo.Count(ctx, filter)
}

/*
Submit normalizes and stores a message from the public form.

Text fields are trimmed and the email is lower-cased before validation.
New messages always start as unread.
*/
func (service *Service) Submit(ctx context.Context, c *Contact) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
	c.WhatsApp = strings.TrimSpace(c.WhatsApp)
	c.Status = StatusUnread

	validator := &validate.Validator{}

	validator.Required(FieldName, c.Name).MaxLen(FieldName, c.Name, 200)
	validator.Required(FieldEmail, c.Email)
	if c.Email != "" {
		validator.Match(FieldEmail, c.Email, emailPattern, "Please enter a valid email")
	}
	validator.Required(FieldSubject, c.Subject).MaxLen(FieldSubject, c.Subject, 300)
	validator.Required(FieldMessage, c.Message).MaxLen(FieldMessage, c.Message, 5000)
	validator.Required(FieldWhatsApp, c.WhatsApp).MaxLen(FieldWhatsApp, c.WhatsApp, 50)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, c); err != nil {
		return err
	}

	service.logger.Info("contact_received", slog.String("contact_id", c.ID))
	return nil
}

func (service *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Contact, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, string(status), Statuses()...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if !uuid.Valid(id) {
		return nil, apperr.NotFound(resource)
	}

	updated, err := service.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	service.logger.Info("contact_status_updated",
		slog.String("contact_id", id),
		slog.String("status", string(status)),
	)
	return updated, nil
}

func (service *Service) Delete(ctx context.Context, id string) error {
	if !uuid.Valid(id) {
		return apperr.NotFound(resource)
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("contact_deleted", slog.String("contact_id", id))
	return nil
}
