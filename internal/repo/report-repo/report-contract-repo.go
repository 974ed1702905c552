package report_repo

import (
	"context"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	report_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/report-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type ReportRepoContract interface {
	GetReportByID(ctx context.Context, reportID string) (*entity.ReportEntity, *app_errors.AppError)
	InsertReport(ctx context.Context, report *entity.ReportEntity) *app_errors.AppError
	ListReports(ctx context.Context, filter *report_dto.ReportListFilter) ([]entity.ReportEntity, *app_errors.AppError)
	CountReports(ctx context.Context, filter *report_dto.ReportListFilter) (int64, *app_errors.AppError)
	ListAssignedReports(ctx context.Context, assigneeRefs []string, status *entity.WorkItemStatus) ([]entity.ReportEntity, *app_errors.AppError)
	CountAssignedReports(ctx context.Context, assigneeRefs []string) (int64, *app_errors.AppError)
	CountAssignedReportsByStatus(ctx context.Context, assigneeRefs []string) (map[entity.WorkItemStatus]int64, *app_errors.AppError)

	// AssignReport re-validates the expected pre-state at write time; zero
	// updated rows surface as CONCURRENT_MODIFICATION. assigned_at is only
	// filled on first assignment.
	AssignReport(ctx context.Context, t tx.Tx, reportID string, expect entity.WorkItemStatus, assignee, assignedBy string, priority *entity.WorkItemPriority) (*entity.ReportEntity, *app_errors.AppError)

	// TransitionReport conditionally moves the report from expect to next and
	// stamps started_at/resolved_at exactly once.
	TransitionReport(ctx context.Context, t tx.Tx, reportID string, expect, next entity.WorkItemStatus) (*entity.ReportEntity, *app_errors.AppError)

	// MarkPointsAwarded flips the award guard inside the caller's transaction
	// so the flag never commits without the matching credit; returns false
	// when the award was already issued (idempotent retry).
	MarkPointsAwarded(ctx context.Context, t tx.Tx, reportID string) (bool, *app_errors.AppError)
}
