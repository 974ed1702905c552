package worker_handler

import (
	"context"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	report_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/report-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	worker_task "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/tasks"
	"github.com/stretchr/testify/mock"
)

type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) GetReportByID(ctx context.Context, reportID string) (*entity.ReportEntity, *app_errors.AppError) {
	args := m.Called(ctx, reportID)
	return args.Get(0).(*entity.ReportEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) InsertReport(ctx context.Context, report *entity.ReportEntity) *app_errors.AppError {
	args := m.Called(ctx, report)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockReportRepo) ListReports(ctx context.Context, filter *report_dto.ReportListFilter) ([]entity.ReportEntity, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.ReportEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) CountReports(ctx context.Context, filter *report_dto.ReportListFilter) (int64, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) ListAssignedReports(ctx context.Context, assigneeRefs []string, status *entity.WorkItemStatus) ([]entity.ReportEntity, *app_errors.AppError) {
	args := m.Called(ctx, assigneeRefs, status)
	return args.Get(0).([]entity.ReportEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) CountAssignedReports(ctx context.Context, assigneeRefs []string) (int64, *app_errors.AppError) {
	args := m.Called(ctx, assigneeRefs)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) CountAssignedReportsByStatus(ctx context.Context, assigneeRefs []string) (map[entity.WorkItemStatus]int64, *app_errors.AppError) {
	args := m.Called(ctx, assigneeRefs)
	return args.Get(0).(map[entity.WorkItemStatus]int64), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) AssignReport(ctx context.Context, t tx.Tx, reportID string, expect entity.WorkItemStatus, assignee, assignedBy string, priority *entity.WorkItemPriority) (*entity.ReportEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, reportID, expect, assignee, assignedBy, priority)
	return args.Get(0).(*entity.ReportEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) TransitionReport(ctx context.Context, t tx.Tx, reportID string, expect, next entity.WorkItemStatus) (*entity.ReportEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, reportID, expect, next)
	return args.Get(0).(*entity.ReportEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportRepo) MarkPointsAwarded(ctx context.Context, t tx.Tx, reportID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, t, reportID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, email)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) GetWorkerByCode(ctx context.Context, employeeCode string) (*entity.WorkerEntity, *app_errors.AppError) {
	args := m.Called(ctx, employeeCode)
	return args.Get(0).(*entity.WorkerEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) GetWorkerByUserID(ctx context.Context, userID string) (*entity.WorkerEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.WorkerEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) CreditPoints(ctx context.Context, t tx.Tx, userID string, amount int) *app_errors.AppError {
	args := m.Called(ctx, t, userID, amount)
	return args.Get(0).(*app_errors.AppError)
}

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

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendResolutionEmail(to string, reportTitle string, points int) error {
	args := m.Called(to, reportTitle, points)
	return args.Error(0)
}

func (m *MockMailer) SendAssignmentEmail(to string, payload *worker_task.AssignmentNotifyPayload) error {
	args := m.Called(to, payload)
	return args.Error(0)
}

type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) *app_errors.AppError {
	args := m.Called(ctx)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTx) Rollback(ctx context.Context) *app_errors.AppError {
	args := m.Called(ctx)
	return args.Get(0).(*app_errors.AppError)
}

type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (tx.Tx, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).(tx.Tx), args.Get(1).(*app_errors.AppError)
}
