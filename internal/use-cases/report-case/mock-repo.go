package report_case

import (
	"context"

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
