package request

// SchedulerRequest represents the JSON body for scheduler control.
type SchedulerRequest struct {
	// Action controls the scheduler. Allowed values:
	// - "start": start processing batches
	// - "stop":  stop processing batches
	// - "run":   process one batch now
	Action string `json:"action"`
}

// SendTextRequest is the body of POST /instances/{name}/send-text.
type SendTextRequest struct {
	PhoneNumber string `json:"phone_number,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	Text        string `json:"text"`
}

// NotificationRequest queues a notification. Empty target fields use
// the configured defaults.
type NotificationRequest struct {
	Instance      string `json:"instance,omitempty"`
	Recipient     string `json:"recipient,omitempty"`
	RecipientType string `json:"recipient_type,omitempty" enums:"phone_number,user_id"`
	Text          string `json:"text"`
}

// TaskNotificationRequest announces a finished task to the configured recipient.
type TaskNotificationRequest struct {
	Title  string `json:"title"`
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
}
