package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/oggyb/omni-notify/internal/cache"
	domain "github.com/oggyb/omni-notify/internal/domain/notification"
	"github.com/oggyb/omni-notify/internal/omni"
)

// ErrOmniDisabled is returned by NotifyTask when notifications are turned off.
var ErrOmniDisabled = errors.New("omni notifications are disabled")

// sentMarkerTTL is how long a sent notification stays looked-up-able in the cache.
const sentMarkerTTL = 24 * time.Hour

// persistTimeout bounds saving a delivery outcome after the send returns.
const persistTimeout = 5 * time.Second

type NotificationService interface {
	Enqueue(ctx context.Context, in EnqueueInput) (*domain.Notification, error)
	NotifyTask(ctx context.Context, title, status, url string) (*domain.Notification, error)
	List(ctx context.Context, status domain.Status, page, limit int) ([]*domain.Notification, int64, error)
	ProcessBatch(ctx context.Context) error
}

// EnqueueInput is a notification request. Empty Instance, Recipient and
// RecipientType fall back to the configured defaults.
type EnqueueInput struct {
	Instance      string
	Recipient     string
	RecipientType string
	Text          string
}

// Defaults is the target used when a request does not name one.
type Defaults struct {
	Enabled       bool
	Instance      string
	Recipient     string
	RecipientType string
}

type notificationService struct {
	repo     domain.Repository
	gateway  omni.Gateway
	cache    cache.Cache
	defaults Defaults

	batchSize         int
	maxWorkers        int
	perMessageTimeout time.Duration
}

// NewNotificationService creates a notification service with the given
// dependencies and batch settings. Config values are passed explicitly
// so this package does not depend on env.
func NewNotificationService(
	repo domain.Repository,
	gateway omni.Gateway,
	cache cache.Cache,
	defaults Defaults,
	batchSize int,
	maxWorkers int,
	perMessageTimeout time.Duration,
) NotificationService {
	// Fall back to safe values when config is missing or invalid.
	if batchSize <= 0 {
		batchSize = 100
	}
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if perMessageTimeout <= 0 {
		perMessageTimeout = 10 * time.Second
	}

	return &notificationService{
		repo:              repo,
		gateway:           gateway,
		cache:             cache,
		defaults:          defaults,
		batchSize:         batchSize,
		maxWorkers:        maxWorkers,
		perMessageTimeout: perMessageTimeout,
	}
}

func (s *notificationService) List(ctx context.Context, status domain.Status, page, limit int) ([]*domain.Notification, int64, error) {
	return s.repo.GetByStatus(ctx, status, page, limit)
}

// Enqueue validates the request and stores it as a pending notification.
func (s *notificationService) Enqueue(ctx context.Context, in EnqueueInput) (*domain.Notification, error) {
	instance, recipient, rtype, err := s.target(in.Instance, in.Recipient, in.RecipientType)
	if err != nil {
		return nil, err
	}

	n, err := domain.NewNotification(instance, recipient, rtype, in.Text)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("save notification: %w", err)
	}

	log.Printf("[Service] Queued notification %s for %s via %s", n.ID, n.Recipient, n.Instance)
	return n, nil
}

// NotifyTask queues a task-completion notification for the configured recipient.
func (s *notificationService) NotifyTask(ctx context.Context, title, status, url string) (*domain.Notification, error) {
	// Task notifications only go out when Omni is switched on.
	if !s.defaults.Enabled {
		return nil, ErrOmniDisabled
	}

	instance, recipient, rtype, err := s.target("", "", "")
	if err != nil {
		return nil, err
	}

	n, err := domain.NewTaskNotification(instance, recipient, rtype, title, status, url)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("save task notification: %w", err)
	}

	log.Printf("[Service] Queued task notification %s (%q)", n.ID, title)
	return n, nil
}

// target fills the request's blanks from the configured defaults.
//
// A request that names its own recipient keeps its own recipient type;
// the default type only travels with the default recipient. When no
// type is known at all the recipient is treated as a phone number.
func (s *notificationService) target(instance, recipient, recipientType string) (string, string, domain.RecipientType, error) {
	if strings.TrimSpace(instance) == "" {
		instance = s.defaults.Instance
	}
	if strings.TrimSpace(recipient) == "" {
		recipient = s.defaults.Recipient
		if strings.TrimSpace(recipientType) == "" {
			recipientType = s.defaults.RecipientType
		}
	}
	if strings.TrimSpace(recipientType) == "" {
		recipientType = string(domain.RecipientPhoneNumber)
	}

	rtype, err := domain.ParseRecipientType(recipientType)
	if err != nil {
		return "", "", "", err
	}
	return instance, recipient, rtype, nil
}

// ProcessBatch pulls a batch of pending notifications from the repository
// and delivers them through the gateway using a small worker pool. The batch
// size, worker count and per-message timeout are fixed at construction time.
func (s *notificationService) ProcessBatch(ctx context.Context) error {
	// Fetch pending notifications, oldest first.
	pending, err := s.repo.GetPending(ctx, s.batchSize)
	if err != nil {
		return fmt.Errorf("failed to fetch pending notifications: %w", err)
	}

	// Nothing to do; exit quickly so the scheduler can tick again.
	if len(pending) == 0 {
		log.Println("[Service] No pending notifications to process.")
		return nil
	}

	workerCount := len(pending)
	if workerCount > s.maxWorkers {
		workerCount = s.maxWorkers
	}

	log.Printf("[Service] Processing %d notifications with %d workers...", len(pending), workerCount)

	var wg sync.WaitGroup

	// Each worker takes a stride of the batch. With 3 workers:
	//   worker 1: indices 0, 3, 6, ...
	//   worker 2: indices 1, 4, 7, ...
	//   worker 3: indices 2, 5, 8, ...
	for w := 0; w < workerCount; w++ {
		wg.Add(1)

		go func(workerID, start int) {
			defer wg.Done()

			for i := start; i < len(pending); i += workerCount {
				// The scheduler's batch timeout cancels ctx; leave the rest PENDING.
				if ctx.Err() != nil {
					log.Printf("[Worker %d] Context cancelled, stopping worker", workerID)
					return
				}

				n := pending[i]

				// The timeout bounds the gateway call only; deliver saves
				// the outcome on its own context.
				msgCtx, cancel := context.WithTimeout(ctx, s.perMessageTimeout)
				if err := s.deliver(msgCtx, n); err != nil {
					log.Printf("[Worker %d] Failed to deliver %s: %v", workerID, n.ID, err)
				}
				cancel()
			}
		}(w+1, w)
	}

	// Wait until every worker has finished its share.
	wg.Wait()

	log.Println("[Service] Batch worker pool completed.")
	return nil
}

// deliver sends one notification and persists the outcome.
//
// Flow:
//   - Send the text through the gateway on ctx.
//   - Gateway error (transport, HTTP or decode): mark FAILED with the reason.
//   - Gateway answered success=false: mark FAILED with its status and error.
//   - Otherwise mark SENT and cache a sent marker keyed by message id.
//
// ctx may already be expired once the send returns, so the outcome is
// saved on a context detached from it. Nothing is retried here.
func (s *notificationService) deliver(ctx context.Context, n *domain.Notification) error {
	id := n.ID.String()

	resp, err := s.gateway.SendText(ctx, n.Instance, n.SendTextRequest())

	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if err != nil {
		n.MarkFailed("", failureReason(err))
		// Persist FAILED so the notification is not picked up again as PENDING.
		if uErr := s.repo.UpdateStatus(persistCtx, n); uErr != nil {
			log.Printf("[Service] Failed to persist FAILED status for %s: %v", id, uErr)
		}
		return fmt.Errorf("send notification %s: %w", id, err)
	}

	if !resp.Success {
		reason := resp.GetError()
		if reason == "" {
			reason = "gateway reported failure"
		}
		n.MarkFailed(resp.Status, reason)
		if uErr := s.repo.UpdateStatus(persistCtx, n); uErr != nil {
			log.Printf("[Service] Failed to persist FAILED status for %s: %v", id, uErr)
		}
		return fmt.Errorf("send notification %s: %s", id, reason)
	}

	n.MarkSent(resp)
	if err := s.repo.UpdateStatus(persistCtx, n); err != nil {
		log.Printf("[Service] Failed to persist SENT status for %s: %v", id, err)
		return fmt.Errorf("update status for %s: %w", id, err)
	}

	if s.cache != nil && n.MessageID != "" {
		key := cache.SentNotifications.Key(n.MessageID)
		if err := s.cache.Set(persistCtx, key, n.SentAt.Format(time.RFC3339), sentMarkerTTL); err != nil {
			log.Printf("[Service] Failed to cache sent marker for %s: %v", n.MessageID, err)
		}
	}

	return nil
}

// failureReason turns a gateway error into the text stored on the notification.
func failureReason(err error) string {
	var gwErr *omni.Error
	if !errors.As(err, &gwErr) {
		return err.Error()
	}
	switch gwErr.Kind {
	case omni.KindHTTP:
		return fmt.Sprintf("gateway status %d: %s", gwErr.Status, strings.TrimSpace(gwErr.Body))
	case omni.KindTransport:
		return "gateway unreachable: " + gwErr.Error()
	default:
		return "unexpected gateway response: " + gwErr.Error()
	}
}
