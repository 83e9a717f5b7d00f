package notificationgorm

import (
	"context"

	"github.com/oggyb/omni-notify/internal/db"
	"github.com/oggyb/omni-notify/internal/domain/notification"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is a GORM-backed implementation of notification.Repository.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a notification repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// Migrate creates or updates the notifications table.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&NotificationModel{})
}

// GetPending returns up to limit pending notifications ordered by creation time.
// Rows are locked with SKIP LOCKED so concurrent dispatchers never pick the same one.
func (r *Repository) GetPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	var models []NotificationModel

	err := r.db.WithContext(ctx).
		Where("status = ?", notification.StatusPending).
		Order("created_at ASC").
		Limit(limit).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toDomainMany(models), nil
}

// GetByStatus returns a page of notifications in the given status and the total count.
// Sent notifications are ordered by send time, everything else by creation time.
func (r *Repository) GetByStatus(ctx context.Context, status notification.Status, page, limit int) ([]*notification.Notification, int64, error) {
	var models []NotificationModel
	var total int64

	query := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if status == notification.StatusSent {
		order = "sent_at DESC"
	}

	err := query.
		Order(order).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	return toDomainMany(models), total, nil
}

// UpdateStatus persists the delivery state of a notification.
func (r *Repository) UpdateStatus(ctx context.Context, n *notification.Notification) error {
	updates := map[string]interface{}{
		"status":         string(n.Status),
		"message_id":     n.MessageID,
		"gateway_status": n.GatewayStatus,
		"last_error":     n.LastError,
		"sent_at":        n.SentAt,
	}

	return r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("id = ?", n.ID).
		Updates(updates).Error
}

// Save inserts a new notification record.
func (r *Repository) Save(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Create(fromDomain(n)).Error
}

var _ notification.Repository = (*Repository)(nil)
