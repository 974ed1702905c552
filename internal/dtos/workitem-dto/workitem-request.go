package workitem_dto

import (
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	"github.com/go-playground/validator/v10"
)

// ParamItemRef carries the kind-prefixed work item reference, e.g.
// "report:<uuid>" or "task:<uuid>". The prefix decides which store the
// operation is dispatched to.
type ParamItemRef struct {
	Ref string `params:"item_ref" validate:"required,min=8"`
}

type AssignWorkItemRequest struct {
	AssigneeRef string     `json:"assignee_ref" validate:"required,assigneeRef"`
	Priority    *string    `json:"priority,omitempty" validate:"omitempty,itemPriority"`
	Note        *string    `json:"note,omitempty" validate:"omitempty,max=2000"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type TransitionStatusRequest struct {
	Status string  `json:"status" validate:"required,itemStatus"`
	Note   *string `json:"note,omitempty" validate:"omitempty,max=2000"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Description string     `json:"description" validate:"required,max=5000"`
	Priority    *string    `json:"priority,omitempty" validate:"omitempty,itemPriority"`
	AssigneeID  *string    `json:"assignee_id,omitempty" validate:"omitempty,uuid"`
	Department  *string    `json:"department,omitempty" validate:"omitempty,max=100"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type AddNoteRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

type WorkItemEventFilter struct {
	Action *string `query:"action"`
	Page   int     `query:"page" validate:"omitempty,min=1,max=100"`
	Limit  int     `query:"limit" validate:"omitempty,min=1,max=100"`
}

type UnifiedListFilter struct {
	Status *string `query:"status" validate:"omitempty,itemStatus"`
}

func IsValidItemStatus(fl validator.FieldLevel) bool {
	return entity.WorkItemStatus(fl.Field().String()).IsValid()
}

func IsValidItemPriority(fl validator.FieldLevel) bool {
	return entity.WorkItemPriority(fl.Field().String()).IsValid()
}

func IsValidAssigneeRef(fl validator.FieldLevel) bool {
	_, err := entity.ParseAssigneeRef(fl.Field().String())
	return err == nil
}
