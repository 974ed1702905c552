package notification_dto

import "time"

type ParamNotificationID struct {
	ID string `params:"notification_id" validate:"required,uuid"`
}

type NotificationListFilter struct {
	UnreadOnly bool `query:"unread_only"`
	Page       int  `query:"page" validate:"omitempty,min=1,max=100"`
	Limit      int  `query:"limit" validate:"omitempty,min=1,max=100"`
}

type NotificationItem struct {
	NotificationID string    `json:"notification_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Category       string    `json:"category"`
	RelatedItem    *string   `json:"related_item,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
