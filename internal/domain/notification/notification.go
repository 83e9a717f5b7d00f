// Package notification holds the domain model and invariants for
// notifications delivered through the Omni gateway.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oggyb/omni-notify/internal/omni"
)

const (
	// MaxTextLength is the maximum allowed length for a notification body.
	MaxTextLength = 4096
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusSent    Status = "SENT"
	StatusFailed  Status = "FAILED"
)

// ParseStatus accepts a status name in any case.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusSent, StatusFailed:
		return st, nil
	default:
		return "", fmt.Errorf("unknown notification status %q", s)
	}
}

// RecipientType selects which gateway field carries the recipient.
type RecipientType string

const (
	RecipientPhoneNumber RecipientType = "phone_number"
	RecipientUserID      RecipientType = "user_id"
)

// ParseRecipientType accepts the wire names plus the PascalCase spellings
// used in project settings files.
func ParseRecipientType(s string) (RecipientType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "phone_number", "phonenumber", "phone":
		return RecipientPhoneNumber, nil
	case "user_id", "userid", "user":
		return RecipientUserID, nil
	default:
		return "", ErrUnknownRecipientType
	}
}

var (
	// ErrEmptyInstance is returned when no gateway instance is given.
	ErrEmptyInstance = errors.New("instance name is required")
	// ErrNoRecipient is returned when no recipient is given.
	ErrNoRecipient = errors.New("recipient is required")
	// ErrEmptyText is returned when the notification body is empty.
	ErrEmptyText = errors.New("notification text is required")
	// ErrTextTooLong is returned when the body exceeds MaxTextLength.
	ErrTextTooLong = errors.New("notification text exceeds maximum length")
	// ErrUnknownRecipientType is returned for anything but phone_number or user_id.
	ErrUnknownRecipientType = errors.New("recipient type must be phone_number or user_id")
)

// Notification is an outgoing message queued for delivery through a gateway instance.
type Notification struct {
	ID            uuid.UUID
	Instance      string
	Recipient     string
	RecipientType RecipientType
	Text          string
	Status        Status
	MessageID     string
	GatewayStatus string
	LastError     string
	SentAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewNotification constructs a pending Notification and enforces basic domain rules.
func NewNotification(instance, recipient string, recipientType RecipientType, text string) (*Notification, error) {
	instance = strings.TrimSpace(instance)
	recipient = strings.TrimSpace(recipient)
	text = strings.TrimSpace(text)

	if instance == "" {
		return nil, ErrEmptyInstance
	}
	if recipient == "" {
		return nil, ErrNoRecipient
	}
	if recipientType != RecipientPhoneNumber && recipientType != RecipientUserID {
		return nil, ErrUnknownRecipientType
	}
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	now := time.Now()
	return &Notification{
		ID:            uuid.New(),
		Instance:      instance,
		Recipient:     recipient,
		RecipientType: recipientType,
		Text:          text,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// TaskText renders the body of a task-completion notification.
func TaskText(title, status, url string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 Task Complete: %s\n\nStatus: %s", strings.TrimSpace(title), strings.TrimSpace(status))
	if url = strings.TrimSpace(url); url != "" {
		fmt.Fprintf(&b, "\nView task: %s", url)
	}
	return b.String()
}

// NewTaskNotification builds a pending notification announcing a finished task.
func NewTaskNotification(instance, recipient string, recipientType RecipientType, title, status, url string) (*Notification, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyText
	}
	return NewNotification(instance, recipient, recipientType, TaskText(title, status, url))
}

// SendTextRequest puts the recipient into the gateway field that matches its type.
func (n *Notification) SendTextRequest() omni.SendTextRequest {
	req := omni.SendTextRequest{Text: n.Text}
	switch n.RecipientType {
	case RecipientUserID:
		req.UserID = n.Recipient
	default:
		req.PhoneNumber = n.Recipient
	}
	return req
}

// MarkSent records a successful gateway response.
func (n *Notification) MarkSent(resp *omni.SendTextResponse) {
	now := time.Now()
	n.SentAt = &now
	n.UpdatedAt = now
	n.Status = StatusSent
	n.MessageID = resp.GetMessageID()
	n.GatewayStatus = resp.Status
	n.LastError = ""
}

// MarkFailed records why delivery failed. gatewayStatus may be empty when
// no gateway response was obtained.
func (n *Notification) MarkFailed(gatewayStatus, reason string) {
	n.UpdatedAt = time.Now()
	n.Status = StatusFailed
	n.GatewayStatus = gatewayStatus
	n.LastError = reason
}
