package audit_repo

import (
	"context"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

// AuditRepoContract covers the two append-only logs shared by both work item
// kinds: free-text notes and assignment/status events.
type AuditRepoContract interface {
	InsertNote(ctx context.Context, t tx.Tx, note *entity.WorkItemNote) *app_errors.AppError
	ListNotes(ctx context.Context, itemID string, kind entity.WorkItemKind) ([]entity.WorkItemNote, *app_errors.AppError)
	InsertEvent(ctx context.Context, t tx.Tx, event *entity.AddWorkItemEvent) *app_errors.AppError
	ListEventsForItem(ctx context.Context, itemID string, kind entity.WorkItemKind, filter *workitem_dto.WorkItemEventFilter) ([]entity.WorkItemEventEntity, *app_errors.AppError)
}
