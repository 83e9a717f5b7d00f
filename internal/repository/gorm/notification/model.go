package notificationgorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationModel is the GORM persistence model for notifications.
type NotificationModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Instance      string     `gorm:"size:100;not null;index"`
	Recipient     string     `gorm:"size:100;not null"`
	RecipientType string     `gorm:"size:20;not null"`
	Text          string     `gorm:"type:text;not null"`
	Status        string     `gorm:"size:20;not null;index:idx_notifications_status_created,priority:1"`
	MessageID     string     `gorm:"size:100;index"`
	GatewayStatus string     `gorm:"size:50"`
	LastError     string     `gorm:"type:text"`
	SentAt        *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"not null;index:idx_notifications_status_created,priority:2"`
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
