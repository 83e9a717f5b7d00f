package cache

import "fmt"

type Prefix string

const (
	SentNotifications Prefix = "sent_notifications"
	Instances         Prefix = "omni_instances"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
