package response

import (
	"time"

	domain "github.com/oggyb/omni-notify/internal/domain/notification"
	"github.com/oggyb/omni-notify/internal/omni"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type SchedulerControlPayload struct {
	Message string `json:"message"`
}

type SchedulerControlResponse struct {
	Success   bool                    `json:"success"`
	Data      SchedulerControlPayload `json:"data"`
	Timestamp string                  `json:"timestamp"`
}

// NotificationDTO is the public representation of a notification.
type NotificationDTO struct {
	ID            string     `json:"id"`
	Instance      string     `json:"instance"`
	Recipient     string     `json:"recipient"`
	RecipientType string     `json:"recipientType"`
	Text          string     `json:"text"`
	Status        string     `json:"status"`
	MessageID     string     `json:"messageId,omitempty"`
	GatewayStatus string     `json:"gatewayStatus,omitempty"`
	LastError     string     `json:"lastError,omitempty"`
	SentAt        *time.Time `json:"sentAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type NotificationResponse struct {
	Success   bool            `json:"success"`
	Data      NotificationDTO `json:"data"`
	Timestamp string          `json:"timestamp"`
}

type NotificationsPayload struct {
	Items  []NotificationDTO `json:"items"`
	Status string            `json:"status"`
	Total  int64             `json:"total"`
	Page   int               `json:"page"`
	Limit  int               `json:"limit"`
}

type NotificationsResponse struct {
	Success   bool                 `json:"success"`
	Data      NotificationsPayload `json:"data"`
	Timestamp string               `json:"timestamp"`
}

// InstanceDTO mirrors omni.InstanceInfo in the API's camelCase style.
type InstanceDTO struct {
	InstanceName string `json:"instanceName"`
	ChannelType  string `json:"channelType"`
	DisplayName  string `json:"displayName"`
	Status       string `json:"status"`
	IsHealthy    bool   `json:"isHealthy"`
}

type InstancesPayload struct {
	Items []InstanceDTO `json:"items"`
	Total int           `json:"total"`
}

type InstancesResponse struct {
	Success   bool             `json:"success"`
	Data      InstancesPayload `json:"data"`
	Timestamp string           `json:"timestamp"`
}

type SendTextPayload struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

type SendTextResponse struct {
	Success   bool            `json:"success"`
	Data      SendTextPayload `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// FromDomainNotification converts a domain notification into its DTO.
func FromDomainNotification(n *domain.Notification) NotificationDTO {
	return NotificationDTO{
		ID:            n.ID.String(),
		Instance:      n.Instance,
		Recipient:     n.Recipient,
		RecipientType: string(n.RecipientType),
		Text:          n.Text,
		Status:        string(n.Status),
		MessageID:     n.MessageID,
		GatewayStatus: n.GatewayStatus,
		LastError:     n.LastError,
		SentAt:        n.SentAt,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func FromDomainNotifications(ns []*domain.Notification) []NotificationDTO {
	out := make([]NotificationDTO, len(ns))
	for i, n := range ns {
		out[i] = FromDomainNotification(n)
	}
	return out
}

func FromInstances(in []omni.InstanceInfo) []InstanceDTO {
	out := make([]InstanceDTO, len(in))
	for i, inst := range in {
		out[i] = InstanceDTO{
			InstanceName: inst.InstanceName,
			ChannelType:  inst.ChannelType,
			DisplayName:  inst.DisplayName,
			Status:       inst.Status,
			IsHealthy:    inst.IsHealthy,
		}
	}
	return out
}

func FromSendText(r *omni.SendTextResponse) SendTextPayload {
	return SendTextPayload{
		Success:   r.Success,
		MessageID: r.GetMessageID(),
		Status:    r.Status,
		Error:     r.GetError(),
	}
}
