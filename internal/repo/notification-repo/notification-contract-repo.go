package notification_repo

import (
	"context"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type NotificationRepoContract interface {
	InsertNotification(ctx context.Context, n *entity.NotificationEntity) *app_errors.AppError
	ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool, page, limit int) ([]entity.NotificationEntity, *app_errors.AppError)
	CountForRecipient(ctx context.Context, recipientID string, unreadOnly bool) (int64, *app_errors.AppError)
	MarkRead(ctx context.Context, notificationID, recipientID string) *app_errors.AppError
	// DeleteOlderThan is the retention GC; returns the number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, *app_errors.AppError)
}
