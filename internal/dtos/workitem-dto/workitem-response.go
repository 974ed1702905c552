package workitem_dto

import "time"

type AssignWorkItemResponse struct {
	ItemRef     string     `json:"item_ref"`
	Kind        string     `json:"kind"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Assignee    string     `json:"assignee"`
	AssignedBy  string     `json:"assigned_by"`
	AssignedAt  time.Time  `json:"assigned_at"`
	DerivedTask *string    `json:"derived_task,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type TransitionStatusResponse struct {
	ItemRef    string     `json:"item_ref"`
	Kind       string     `json:"kind"`
	OldStatus  string     `json:"old_status"`
	NewStatus  string     `json:"new_status"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// ElapsedSeconds is set on resolution: time spent between the first
	// In_Progress entry and the resolving transition.
	ElapsedSeconds *int64 `json:"elapsed_seconds,omitempty"`
}

type CreateTaskResponse struct {
	TaskID     string     `json:"task_id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	AssigneeID *string    `json:"assignee_id,omitempty"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type AddNoteResponse struct {
	NoteID    string    `json:"note_id"`
	ItemRef   string    `json:"item_ref"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type WorkItemEventItem struct {
	EventID   string    `json:"event_id"`
	ActorID   string    `json:"actor_id"`
	TargetRef *string   `json:"target_ref,omitempty"`
	Action    string    `json:"action"`
	OldStatus *string   `json:"old_status,omitempty"`
	NewStatus *string   `json:"new_status,omitempty"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UnifiedWorkItem is the normalized shape the dashboards consume; report and
// task records are merged into one collection under kind-prefixed ids.
type UnifiedWorkItem struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	AssignedBy    *string   `json:"assigned_by,omitempty"`
	Category      *string   `json:"category,omitempty"`
	RelatedReport *string   `json:"related_report,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type WorkItemStats struct {
	Total          int64            `json:"total"`
	TaskCount      int64            `json:"task_count"`
	ReportCount    int64            `json:"report_count"`
	ByStatus       map[string]int64 `json:"by_status"`
	CompletionRate float64          `json:"completion_rate"`
}
