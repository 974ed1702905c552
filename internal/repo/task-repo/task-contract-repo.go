package task_repo

import (
	"context"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type TaskRepoContract interface {
	GetTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError)
	// GetTaskByRelatedReport returns (nil, nil) when no derived task exists.
	GetTaskByRelatedReport(ctx context.Context, reportID string) (*entity.TaskEntity, *app_errors.AppError)
	InsertTask(ctx context.Context, t tx.Tx, task *entity.TaskEntity) *app_errors.AppError
	ListAssignedTasks(ctx context.Context, assigneeID string, status *entity.WorkItemStatus) ([]entity.TaskEntity, *app_errors.AppError)

	// CountAssignedTasks excludes tasks whose related report is assigned to
	// one of excludeReportRefs, so a report with a derived task is never
	// counted twice for the same assignee.
	CountAssignedTasks(ctx context.Context, assigneeID string, excludeReportRefs []string) (int64, *app_errors.AppError)
	CountAssignedTasksByStatus(ctx context.Context, assigneeID string, excludeReportRefs []string) (map[entity.WorkItemStatus]int64, *app_errors.AppError)

	AssignTask(ctx context.Context, t tx.Tx, taskID string, expect entity.WorkItemStatus, assigneeID, assignedBy string, priority *entity.WorkItemPriority, deadline *time.Time) (*entity.TaskEntity, *app_errors.AppError)
	TransitionTask(ctx context.Context, t tx.Tx, taskID string, expect, next entity.WorkItemStatus) (*entity.TaskEntity, *app_errors.AppError)
}
