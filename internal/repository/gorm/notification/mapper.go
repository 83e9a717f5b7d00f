package notificationgorm

import (
	"github.com/oggyb/omni-notify/internal/domain/notification"
)

func toDomain(m *NotificationModel) *notification.Notification {
	return &notification.Notification{
		ID:            m.ID,
		Instance:      m.Instance,
		Recipient:     m.Recipient,
		RecipientType: notification.RecipientType(m.RecipientType),
		Text:          m.Text,
		Status:        notification.Status(m.Status),
		MessageID:     m.MessageID,
		GatewayStatus: m.GatewayStatus,
		LastError:     m.LastError,
		SentAt:        m.SentAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toDomainMany(models []NotificationModel) []*notification.Notification {
	out := make([]*notification.Notification, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

func fromDomain(d *notification.Notification) *NotificationModel {
	return &NotificationModel{
		ID:            d.ID,
		Instance:      d.Instance,
		Recipient:     d.Recipient,
		RecipientType: string(d.RecipientType),
		Text:          d.Text,
		Status:        string(d.Status),
		MessageID:     d.MessageID,
		GatewayStatus: d.GatewayStatus,
		LastError:     d.LastError,
		SentAt:        d.SentAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
