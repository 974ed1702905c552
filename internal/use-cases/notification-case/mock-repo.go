package notification_case

import (
	"context"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) InsertNotification(ctx context.Context, n *entity.NotificationEntity) *app_errors.AppError {
	args := m.Called(ctx, n)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockNotificationRepo) ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool, page, limit int) ([]entity.NotificationEntity, *app_errors.AppError) {
	args := m.Called(ctx, recipientID, unreadOnly, page, limit)
	return args.Get(0).([]entity.NotificationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockNotificationRepo) CountForRecipient(ctx context.Context, recipientID string, unreadOnly bool) (int64, *app_errors.AppError) {
	args := m.Called(ctx, recipientID, unreadOnly)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}

func (m *MockNotificationRepo) MarkRead(ctx context.Context, notificationID, recipientID string) *app_errors.AppError {
	args := m.Called(ctx, notificationID, recipientID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockNotificationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, *app_errors.AppError) {
	args := m.Called(ctx, cutoff)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}
