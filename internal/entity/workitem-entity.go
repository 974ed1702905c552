package entity

import "time"

type WorkItemKind string

const (
	KindReport WorkItemKind = "report"
	KindTask   WorkItemKind = "task"
)

func (k WorkItemKind) IsValid() bool {
	switch k {
	case KindReport, KindTask:
		return true
	}
	return false
}

type WorkItemStatus string

const (
	StatusSubmitted    WorkItemStatus = "Submitted"
	StatusAcknowledged WorkItemStatus = "Acknowledged"
	StatusAssigned     WorkItemStatus = "Assigned"
	StatusInProgress   WorkItemStatus = "In_Progress"
	StatusResolved     WorkItemStatus = "Resolved"
	StatusRejected     WorkItemStatus = "Rejected"
	StatusClosed       WorkItemStatus = "Closed"
	StatusCompleted    WorkItemStatus = "Completed"
	StatusCancelled    WorkItemStatus = "Cancelled"
)

func (s WorkItemStatus) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusAcknowledged, StatusAssigned, StatusInProgress,
		StatusResolved, StatusRejected, StatusClosed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s.
func (s WorkItemStatus) IsTerminal() bool {
	switch s {
	case StatusResolved, StatusRejected, StatusClosed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type WorkItemPriority string

const (
	PriorityLow      WorkItemPriority = "Low"
	PriorityMedium   WorkItemPriority = "Medium"
	PriorityHigh     WorkItemPriority = "High"
	PriorityCritical WorkItemPriority = "Critical"
)

func (p WorkItemPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ReportEntity is a citizen-submitted work item. The assignee column holds an
// AssigneeRef in its string form (worker:<code> or user:<uuid>).
type ReportEntity struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Location      *string          `json:"location,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	Status        WorkItemStatus   `json:"status"`
	Priority      WorkItemPriority `json:"priority"`
	Assignee      *string          `json:"assignee,omitempty"`
	AssignedBy    *string          `json:"assigned_by,omitempty"`
	AssignedAt    *time.Time       `json:"assigned_at,omitempty"`
	StartedAt     *time.Time       `json:"started_at,omitempty"`
	ResolvedAt    *time.Time       `json:"resolved_at,omitempty"`
	PointsAwarded bool             `json:"points_awarded"`
	ReporterID    string           `json:"reporter_id"`
	District      *string          `json:"district,omitempty"`
	Municipality  *string          `json:"municipality,omitempty"`
	Ward          *string          `json:"ward,omitempty"`
	Department    *string          `json:"department,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     *time.Time       `json:"updated_at,omitempty"`
}

func (r *ReportEntity) Geography() Scope {
	return Scope{
		District:     r.District,
		Municipality: r.Municipality,
		Ward:         r.Ward,
	}
}

// TaskEntity is an internally created work item with a strict user reference
// as its assignee. RelatedReport links a task materialized from a report
// assignment back to its source report.
type TaskEntity struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Status        WorkItemStatus   `json:"status"`
	Priority      WorkItemPriority `json:"priority"`
	AssigneeID    *string          `json:"assignee_id,omitempty"`
	AssignedBy    *string          `json:"assigned_by,omitempty"`
	AssignedAt    *time.Time       `json:"assigned_at,omitempty"`
	StartedAt     *time.Time       `json:"started_at,omitempty"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	RelatedReport *string          `json:"related_report,omitempty"`
	Deadline      *time.Time       `json:"deadline,omitempty"`
	Department    *string          `json:"department,omitempty"`
	CreatedBy     string           `json:"created_by"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     *time.Time       `json:"updated_at,omitempty"`
}

// WorkItemNote is one entry of the append-only note log. Rows are never
// updated or deleted.
type WorkItemNote struct {
	ID        string       `json:"id"`
	ItemID    string       `json:"item_id"`
	ItemKind  WorkItemKind `json:"item_kind"`
	Text      string       `json:"text"`
	AuthorID  string       `json:"author_id"`
	CreatedAt time.Time    `json:"created_at"`
}

type ActionEvent string

const (
	ActionAssign      ActionEvent = "Assign"
	ActionReassign    ActionEvent = "Reassign"
	ActionTransition  ActionEvent = "Transition"
	ActionAcknowledge ActionEvent = "Acknowledge"
	ActionNote        ActionEvent = "Note"
)

// WorkItemEventEntity is the append-only audit trail of assignment and status
// actions on a work item.
type WorkItemEventEntity struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	ItemKind  WorkItemKind    `json:"item_kind"`
	ActorID   string          `json:"actor_id"`
	TargetRef *string         `json:"target_ref,omitempty"`
	Action    ActionEvent     `json:"action"`
	OldStatus *WorkItemStatus `json:"old_status,omitempty"`
	NewStatus *WorkItemStatus `json:"new_status,omitempty"`
	Note      *string         `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// AddWorkItemEvent is the insert shape for a WorkItemEventEntity; the repo
// fills CreatedAt.
type AddWorkItemEvent struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	ItemKind  WorkItemKind    `json:"item_kind"`
	ActorID   string          `json:"actor_id"`
	TargetRef *string         `json:"target_ref,omitempty"`
	Action    ActionEvent     `json:"action"`
	OldStatus *WorkItemStatus `json:"old_status,omitempty"`
	NewStatus *WorkItemStatus `json:"new_status,omitempty"`
	Note      *string         `json:"note,omitempty"`
}
