package entity

import "time"

type NotificationCategory string

const (
	NotifyStatusChange NotificationCategory = "status_change"
	NotifyAssignment   NotificationCategory = "assignment"
	NotifyResolution   NotificationCategory = "resolution"
)

// NotificationEntity is created once and never mutated except the Read flag.
// Old rows are garbage-collected by the retention cron.
type NotificationEntity struct {
	ID          string               `json:"id"`
	RecipientID string               `json:"recipient_id"`
	Title       string               `json:"title"`
	Message     string               `json:"message"`
	Category    NotificationCategory `json:"category"`
	RelatedItem *string              `json:"related_item,omitempty"`
	Read        bool                 `json:"read"`
	CreatedAt   time.Time            `json:"created_at"`
}
