package report_dto

import "time"

type CreateReportResponse struct {
	ReportID     string    `json:"report_id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Municipality *string   `json:"municipality,omitempty"`
	Ward         *string   `json:"ward,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReportListItem struct {
	ReportID   string     `json:"report_id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	Assignee   *string    `json:"assignee,omitempty"`
	Ward       *string    `json:"ward,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type ReportNoteItem struct {
	NoteID    string    `json:"note_id"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ReportDetailResponse struct {
	ReportID      string           `json:"report_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Location      *string          `json:"location,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	Status        string           `json:"status"`
	Priority      string           `json:"priority"`
	Assignee      *string          `json:"assignee,omitempty"`
	AssignedBy    *string          `json:"assigned_by,omitempty"`
	AssignedAt    *time.Time       `json:"assigned_at,omitempty"`
	ResolvedAt    *time.Time       `json:"resolved_at,omitempty"`
	District      *string          `json:"district,omitempty"`
	Municipality  *string          `json:"municipality,omitempty"`
	Ward          *string          `json:"ward,omitempty"`
	Department    *string          `json:"department,omitempty"`
	ReporterID    string           `json:"reporter_id"`
	Notes         []ReportNoteItem `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
}
