package notification

import "context"

// Repository defines the persistence operations for Notification aggregates.
type Repository interface {
	// Save persists a new notification.
	Save(ctx context.Context, n *Notification) error

	// GetPending returns up to limit notifications still waiting to be sent,
	// oldest first.
	GetPending(ctx context.Context, limit int) ([]*Notification, error)

	// GetByStatus returns one page of notifications with the given status
	// along with the total number of matching records.
	GetByStatus(ctx context.Context, status Status, page, limit int) ([]*Notification, int64, error)

	// UpdateStatus persists the delivery state of an existing notification.
	UpdateStatus(ctx context.Context, n *Notification) error
}
