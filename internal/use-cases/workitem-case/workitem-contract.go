package workitem_case

import (
	"context"

	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type WorkItemServiceContract interface {
	AssignWorkItem(ctx context.Context, actorID, itemRef string, req *workitem_dto.AssignWorkItemRequest) (*workitem_dto.AssignWorkItemResponse, *app_errors.AppError)
	TransitionStatus(ctx context.Context, actorID, itemRef string, req *workitem_dto.TransitionStatusRequest) (*workitem_dto.TransitionStatusResponse, *app_errors.AppError)
	CreateTask(ctx context.Context, actorID string, req *workitem_dto.CreateTaskRequest) (*workitem_dto.CreateTaskResponse, *app_errors.AppError)
	AddNote(ctx context.Context, actorID, itemRef string, req *workitem_dto.AddNoteRequest) (*workitem_dto.AddNoteResponse, *app_errors.AppError)
	ListItemEvents(ctx context.Context, actorID, itemRef string, filter workitem_dto.WorkItemEventFilter) ([]*workitem_dto.WorkItemEventItem, *app_errors.AppError)
}
