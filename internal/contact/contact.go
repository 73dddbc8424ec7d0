// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package contact stores the messages visitors send through the public contact
form and lets the dashboard triage them.

Messages are private: creating or updating one never touches the sitemap.
*/
package contact

import "time"

// # Domain Enums

// Status tracks how far the admin has handled a message.
type Status string

const (
	StatusUnread  Status = "unread"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// Statuses lists every valid status.
func Statuses() []string {
	return []string{string(StatusUnread), string(StatusRead), string(StatusReplied)}
}

// # JSON Field Names

const (
	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldSubject  = "subject"
	FieldMessage  = "message"
	FieldWhatsApp = "whatsapp"
	FieldStatus   = "status"
)

// # Core Entities

// Contact is one message left through the contact form.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	WhatsApp  string    `json:"whatsapp"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Filter narrows inbox listings.
type Filter struct {
	Status Status
}
