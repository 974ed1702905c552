package workitem_case

import (
	"context"
	"fmt"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/queue"
	audit_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/audit-repo"
	report_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/report-repo"
	task_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/task-repo"
	user_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/user-repo"
	worker_task "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/tasks"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type WorkItemService struct {
	db        *pgxpool.Pool
	txManager tx.TxManager
	rr        report_repo.ReportRepoContract
	tr        task_repo.TaskRepoContract
	ur        user_repo.UserRepoContract
	ar        audit_repo.AuditRepoContract
	queue     queue.TaskQueueContract
}

func NewWorkItemService(db *pgxpool.Pool, redis *redis.Client) WorkItemServiceContract {
	return &WorkItemService{
		db:        db,
		txManager: tx.NewPgxTxManager(db),
		rr:        report_repo.NewReportRepo(db),
		tr:        task_repo.NewTaskRepo(db),
		ur:        user_repo.NewUserRepo(db),
		ar:        audit_repo.NewAuditRepo(db),
		queue:     queue.NewTaskQueue(redis),
	}
}

func (s *WorkItemService) AssignWorkItem(ctx context.Context, actorID, itemRef string, req *workitem_dto.AssignWorkItemRequest) (*workitem_dto.AssignWorkItemResponse, *app_errors.AppError) {
	kind, itemID, err := parseItemRef(itemRef)
	if err != nil {
		return nil, err
	}

	actor, err := s.ur.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	ref, parseErr := entity.ParseAssigneeRef(req.AssigneeRef)
	if parseErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "assignee.malformed_ref", parseErr)
	}

	var priority *entity.WorkItemPriority
	if req.Priority != nil {
		p := entity.WorkItemPriority(*req.Priority)
		priority = &p
	}

	if kind == entity.KindTask {
		return s.assignTask(ctx, actor, itemID, ref, priority, req)
	}
	return s.assignReport(ctx, actor, itemID, ref, priority, req)
}

func (s *WorkItemService) assignReport(ctx context.Context, actor *entity.UserEntity, reportID string, ref entity.AssigneeRef, priority *entity.WorkItemPriority, req *workitem_dto.AssignWorkItemRequest) (*workitem_dto.AssignWorkItemResponse, *app_errors.AppError) {
	report, err := s.rr.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if report.Status.IsTerminal() {
		return nil, app_errors.NewTerminalStateViolation(string(report.Status), string(entity.StatusAssigned))
	}

	if !actor.Role.IsAdminTier() {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.not_admin", nil)
	}

	cand, err := s.resolveCandidate(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err := verifyAssignAuthority(actor, cand); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	assigned, err := s.rr.AssignReport(ctx, t, reportID, report.Status, cand.ref.String(), actor.ID, priority)
	if err != nil {
		return nil, err
	}

	if req.Note != nil {
		if err := s.appendNote(ctx, t, entity.KindReport, reportID, *req.Note, actor.ID); err != nil {
			return nil, err
		}
	}

	action := entity.ActionAssign
	if report.Assignee != nil {
		action = entity.ActionReassign
	}
	refStr := cand.ref.String()
	event := &entity.AddWorkItemEvent{
		ItemID:    reportID,
		ItemKind:  entity.KindReport,
		ActorID:   actor.ID,
		TargetRef: &refStr,
		Action:    action,
		OldStatus: &report.Status,
		NewStatus: &assigned.Status,
		Note:      req.Note,
	}
	if err := s.insertEvent(ctx, t, event); err != nil {
		return nil, err
	}

	// Routing a report to a department head materializes an internal task so
	// the department can track its own half of the work.
	var derivedTask *string
	if cand.role == entity.RoleDepartmentHead {
		derived, err := s.materializeDerivedTask(ctx, t, assigned, cand, actor.ID, req.Deadline)
		if err != nil {
			return nil, err
		}
		derivedTask = derived
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	s.notifyAssignment(entity.KindReport, reportID, assigned.Title, cand.ref.String(), actor.ID, string(assigned.Priority))
	s.notifyStatusChange(entity.KindReport, reportID, assigned.Title, string(report.Status), string(assigned.Status), actor.ID, []string{report.ReporterID})

	return &workitem_dto.AssignWorkItemResponse{
		ItemRef:     itemRefString(entity.KindReport, reportID),
		Kind:        string(entity.KindReport),
		Status:      string(assigned.Status),
		Priority:    string(assigned.Priority),
		Assignee:    cand.ref.String(),
		AssignedBy:  actor.ID,
		AssignedAt:  derefTime(assigned.AssignedAt),
		DerivedTask: derivedTask,
		Deadline:    req.Deadline,
	}, nil
}

func (s *WorkItemService) assignTask(ctx context.Context, actor *entity.UserEntity, taskID string, ref entity.AssigneeRef, priority *entity.WorkItemPriority, req *workitem_dto.AssignWorkItemRequest) (*workitem_dto.AssignWorkItemResponse, *app_errors.AppError) {
	task, err := s.tr.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status.IsTerminal() {
		return nil, app_errors.NewTerminalStateViolation(string(task.Status), string(entity.StatusAssigned))
	}

	if !actor.Role.IsAdminTier() {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.not_admin", nil)
	}

	// tasks reference accounts directly, roster codes never reach this store
	if ref.Kind != entity.AssigneeUserID {
		return nil, app_errors.NewAppError(
			fiber.StatusUnprocessableEntity,
			app_errors.ErrUnknownAssignee,
			"assignee.user_required",
			fmt.Errorf("task assignee must be a user ref, got %s", ref.Kind),
		)
	}

	cand, err := s.resolveCandidate(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err := verifyAssignAuthority(actor, cand); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	assigned, err := s.tr.AssignTask(ctx, t, taskID, task.Status, cand.userID, actor.ID, priority, req.Deadline)
	if err != nil {
		return nil, err
	}

	if req.Note != nil {
		if err := s.appendNote(ctx, t, entity.KindTask, taskID, *req.Note, actor.ID); err != nil {
			return nil, err
		}
	}

	action := entity.ActionAssign
	if task.AssigneeID != nil {
		action = entity.ActionReassign
	}
	refStr := cand.ref.String()
	event := &entity.AddWorkItemEvent{
		ItemID:    taskID,
		ItemKind:  entity.KindTask,
		ActorID:   actor.ID,
		TargetRef: &refStr,
		Action:    action,
		OldStatus: &task.Status,
		NewStatus: &assigned.Status,
		Note:      req.Note,
	}
	if err := s.insertEvent(ctx, t, event); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	s.notifyAssignment(entity.KindTask, taskID, assigned.Title, cand.ref.String(), actor.ID, string(assigned.Priority))
	s.notifyStatusChange(entity.KindTask, taskID, assigned.Title, string(task.Status), string(assigned.Status), actor.ID, []string{task.CreatedBy})

	return &workitem_dto.AssignWorkItemResponse{
		ItemRef:    itemRefString(entity.KindTask, taskID),
		Kind:       string(entity.KindTask),
		Status:     string(assigned.Status),
		Priority:   string(assigned.Priority),
		Assignee:   cand.ref.String(),
		AssignedBy: actor.ID,
		AssignedAt: derefTime(assigned.AssignedAt),
		Deadline:   assigned.Deadline,
	}, nil
}

// materializeDerivedTask creates (or reuses) the task mirroring a report
// assigned to a department head. The derived task shares the report's
// lifecycle via status mirroring.
func (s *WorkItemService) materializeDerivedTask(ctx context.Context, t tx.Tx, report *entity.ReportEntity, cand *candidate, actorID string, deadline *time.Time) (*string, *app_errors.AppError) {
	existing, err := s.tr.GetTaskByRelatedReport(ctx, report.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		ref := itemRefString(entity.KindTask, existing.ID)
		return &ref, nil
	}

	taskID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	now := time.Now()
	task := &entity.TaskEntity{
		ID:            taskID.String(),
		Title:         report.Title,
		Description:   report.Description,
		Status:        entity.StatusAssigned,
		Priority:      report.Priority,
		AssigneeID:    &cand.userID,
		AssignedBy:    &actorID,
		AssignedAt:    &now,
		RelatedReport: &report.ID,
		Deadline:      deadline,
		Department:    report.Department,
		CreatedBy:     actorID,
		CreatedAt:     now,
	}
	if err := s.tr.InsertTask(ctx, t, task); err != nil {
		return nil, err
	}

	ref := itemRefString(entity.KindTask, task.ID)
	return &ref, nil
}

func (s *WorkItemService) CreateTask(ctx context.Context, actorID string, req *workitem_dto.CreateTaskRequest) (*workitem_dto.CreateTaskResponse, *app_errors.AppError) {
	actor, err := s.ur.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !actor.Role.IsAdminTier() {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.not_admin", nil)
	}

	priority := entity.PriorityMedium
	if req.Priority != nil {
		priority = entity.WorkItemPriority(*req.Priority)
	}

	taskID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	now := time.Now()
	task := &entity.TaskEntity{
		ID:          taskID.String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.StatusSubmitted,
		Priority:    priority,
		Deadline:    req.Deadline,
		Department:  req.Department,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
	}

	var cand *candidate
	if req.AssigneeID != nil {
		cand, err = s.resolveCandidate(ctx, entity.NewUserRef(*req.AssigneeID))
		if err != nil {
			return nil, err
		}
		if err := verifyAssignAuthority(actor, cand); err != nil {
			return nil, err
		}
		task.Status = entity.StatusAssigned
		task.AssigneeID = &cand.userID
		task.AssignedBy = &actor.ID
		task.AssignedAt = &now
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	if err := s.tr.InsertTask(ctx, t, task); err != nil {
		return nil, err
	}

	if cand != nil {
		refStr := cand.ref.String()
		event := &entity.AddWorkItemEvent{
			ItemID:    task.ID,
			ItemKind:  entity.KindTask,
			ActorID:   actor.ID,
			TargetRef: &refStr,
			Action:    entity.ActionAssign,
			NewStatus: &task.Status,
		}
		if err := s.insertEvent(ctx, t, event); err != nil {
			return nil, err
		}
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	if cand != nil {
		s.notifyAssignment(entity.KindTask, task.ID, task.Title, cand.ref.String(), actor.ID, string(task.Priority))
	}

	return &workitem_dto.CreateTaskResponse{
		TaskID:     task.ID,
		Title:      task.Title,
		Status:     string(task.Status),
		Priority:   string(task.Priority),
		AssigneeID: task.AssigneeID,
		Deadline:   task.Deadline,
		CreatedAt:  task.CreatedAt,
	}, nil
}

func (s *WorkItemService) AddNote(ctx context.Context, actorID, itemRef string, req *workitem_dto.AddNoteRequest) (*workitem_dto.AddNoteResponse, *app_errors.AppError) {
	kind, itemID, err := parseItemRef(itemRef)
	if err != nil {
		return nil, err
	}

	if err := s.checkItemExists(ctx, kind, itemID); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	note, appendErr := s.appendNoteReturning(ctx, t, kind, itemID, req.Text, actorID)
	if appendErr != nil {
		return nil, appendErr
	}

	event := &entity.AddWorkItemEvent{
		ItemID:   itemID,
		ItemKind: kind,
		ActorID:  actorID,
		Action:   entity.ActionNote,
		Note:     &req.Text,
	}
	if err := s.insertEvent(ctx, t, event); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	return &workitem_dto.AddNoteResponse{
		NoteID:    note.ID,
		ItemRef:   itemRef,
		Text:      note.Text,
		AuthorID:  note.AuthorID,
		CreatedAt: note.CreatedAt,
	}, nil
}

func (s *WorkItemService) ListItemEvents(ctx context.Context, actorID, itemRef string, filter workitem_dto.WorkItemEventFilter) ([]*workitem_dto.WorkItemEventItem, *app_errors.AppError) {
	kind, itemID, err := parseItemRef(itemRef)
	if err != nil {
		return nil, err
	}

	if err := s.checkItemExists(ctx, kind, itemID); err != nil {
		return nil, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	events, err := s.ar.ListEventsForItem(ctx, itemID, kind, &filter)
	if err != nil {
		return nil, err
	}

	var responses []*workitem_dto.WorkItemEventItem
	for _, e := range events {
		item := &workitem_dto.WorkItemEventItem{
			EventID:   e.ID,
			ActorID:   e.ActorID,
			TargetRef: e.TargetRef,
			Action:    string(e.Action),
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		}
		if e.OldStatus != nil {
			old := string(*e.OldStatus)
			item.OldStatus = &old
		}
		if e.NewStatus != nil {
			next := string(*e.NewStatus)
			item.NewStatus = &next
		}
		responses = append(responses, item)
	}

	return responses, nil
}

func (s *WorkItemService) checkItemExists(ctx context.Context, kind entity.WorkItemKind, itemID string) *app_errors.AppError {
	if kind == entity.KindTask {
		_, err := s.tr.GetTaskByID(ctx, itemID)
		return err
	}
	_, err := s.rr.GetReportByID(ctx, itemID)
	return err
}

func (s *WorkItemService) appendNoteReturning(ctx context.Context, t tx.Tx, kind entity.WorkItemKind, itemID, text, authorID string) (*entity.WorkItemNote, *app_errors.AppError) {
	noteID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}
	note := &entity.WorkItemNote{
		ID:        noteID.String(),
		ItemID:    itemID,
		ItemKind:  kind,
		Text:      text,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	if err := s.ar.InsertNote(ctx, t, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *WorkItemService) appendNote(ctx context.Context, t tx.Tx, kind entity.WorkItemKind, itemID, text, authorID string) *app_errors.AppError {
	_, err := s.appendNoteReturning(ctx, t, kind, itemID, text, authorID)
	return err
}

// notifyAssignment and notifyStatusChange run after commit; enqueue failures
// are logged and left to the caller's retry path, never unwound into the tx.
func (s *WorkItemService) notifyAssignment(kind entity.WorkItemKind, itemID, title, assigneeRef, assignedBy, priority string) {
	payload := &worker_task.AssignmentNotifyPayload{
		ItemID:      itemID,
		ItemKind:    string(kind),
		ItemTitle:   title,
		AssigneeRef: assigneeRef,
		AssignedBy:  assignedBy,
		Priority:    priority,
	}
	if err := s.queue.EnqueueAssignmentNotify(payload); err != nil {
		log.Error().Err(err).Str("item", itemID).Msg("failed to enqueue assignment notification")
	}
}

func (s *WorkItemService) notifyStatusChange(kind entity.WorkItemKind, itemID, title, oldStatus, newStatus, actorID string, recipients []string) {
	payload := &worker_task.StatusChangeNotifyPayload{
		ItemID:     itemID,
		ItemKind:   string(kind),
		ItemTitle:  title,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		ActorID:    actorID,
		Recipients: recipients,
	}
	if err := s.queue.EnqueueStatusChangeNotify(payload); err != nil {
		log.Error().Err(err).Str("item", itemID).Msg("failed to enqueue status change notification")
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
