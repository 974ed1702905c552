package worker_task

const TaskNotifyStatusChange = "notify:status_change"

const TaskNotifyAssignment = "notify:assignment"

const TaskResolutionEffects = "default:resolution_effects"

const TaskNotificationRetention = "low:notification_retention"

// StatusChangeNotifyPayload fans out one in-app notification per recipient.
// Recipients are resolved at enqueue time so the handler stays a plain writer.
type StatusChangeNotifyPayload struct {
	ItemID     string   `json:"item_id"`
	ItemKind   string   `json:"item_kind"`
	ItemTitle  string   `json:"item_title"`
	OldStatus  string   `json:"old_status"`
	NewStatus  string   `json:"new_status"`
	ActorID    string   `json:"actor_id"`
	Recipients []string `json:"recipients"`
}

type AssignmentNotifyPayload struct {
	ItemID      string `json:"item_id"`
	ItemKind    string `json:"item_kind"`
	ItemTitle   string `json:"item_title"`
	AssigneeRef string `json:"assignee_ref"`
	AssignedBy  string `json:"assigned_by"`
	Priority    string `json:"priority"`
}

// ResolutionEffectsPayload triggers the points award and reporter email for a
// resolved report. Delivery is at-least-once; the handler must stay
// idempotent via the points_awarded flag.
type ResolutionEffectsPayload struct {
	ReportID string `json:"report_id"`
}
