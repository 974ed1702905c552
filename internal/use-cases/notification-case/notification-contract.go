package notification_case

import (
	"context"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos"
	notification_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/notification-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type NotificationServiceContract interface {
	ListNotifications(ctx context.Context, recipientID string, filter notification_dto.NotificationListFilter) ([]*notification_dto.NotificationItem, *dtos.PaginationMeta, *app_errors.AppError)
	UnreadCount(ctx context.Context, recipientID string) (*notification_dto.UnreadCountResponse, *app_errors.AppError)
	MarkRead(ctx context.Context, recipientID, notificationID string) *app_errors.AppError
}
