package dashboard_case

import (
	"context"

	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type DashboardServiceContract interface {
	ListWorkItemsForAssignee(ctx context.Context, userID string, filter workitem_dto.UnifiedListFilter) ([]*workitem_dto.UnifiedWorkItem, *app_errors.AppError)
	GetWorkItemStats(ctx context.Context, userID string) (*workitem_dto.WorkItemStats, *app_errors.AppError)
}
