package workitem_case

import (
	"context"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	report_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/report-dto"
	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
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

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) GetTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) GetTaskByRelatedReport(ctx context.Context, reportID string) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, reportID)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) InsertTask(ctx context.Context, t tx.Tx, task *entity.TaskEntity) *app_errors.AppError {
	args := m.Called(ctx, t, task)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListAssignedTasks(ctx context.Context, assigneeID string, status *entity.WorkItemStatus) ([]entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, assigneeID, status)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) CountAssignedTasks(ctx context.Context, assigneeID string, excludeReportRefs []string) (int64, *app_errors.AppError) {
	args := m.Called(ctx, assigneeID, excludeReportRefs)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) CountAssignedTasksByStatus(ctx context.Context, assigneeID string, excludeReportRefs []string) (map[entity.WorkItemStatus]int64, *app_errors.AppError) {
	args := m.Called(ctx, assigneeID, excludeReportRefs)
	return args.Get(0).(map[entity.WorkItemStatus]int64), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) AssignTask(ctx context.Context, t tx.Tx, taskID string, expect entity.WorkItemStatus, assigneeID, assignedBy string, priority *entity.WorkItemPriority, deadline *time.Time) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, taskID, expect, assigneeID, assignedBy, priority, deadline)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) TransitionTask(ctx context.Context, t tx.Tx, taskID string, expect, next entity.WorkItemStatus) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, taskID, expect, next)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
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

type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) InsertNote(ctx context.Context, t tx.Tx, note *entity.WorkItemNote) *app_errors.AppError {
	args := m.Called(ctx, t, note)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockAuditRepo) ListNotes(ctx context.Context, itemID string, kind entity.WorkItemKind) ([]entity.WorkItemNote, *app_errors.AppError) {
	args := m.Called(ctx, itemID, kind)
	return args.Get(0).([]entity.WorkItemNote), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuditRepo) InsertEvent(ctx context.Context, t tx.Tx, event *entity.AddWorkItemEvent) *app_errors.AppError {
	args := m.Called(ctx, t, event)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockAuditRepo) ListEventsForItem(ctx context.Context, itemID string, kind entity.WorkItemKind, filter *workitem_dto.WorkItemEventFilter) ([]entity.WorkItemEventEntity, *app_errors.AppError) {
	args := m.Called(ctx, itemID, kind, filter)
	return args.Get(0).([]entity.WorkItemEventEntity), args.Get(1).(*app_errors.AppError)
}
