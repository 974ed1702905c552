package workitem_case

import (
	"context"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	worker_task "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/tasks"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func (s *WorkItemService) TransitionStatus(ctx context.Context, actorID, itemRef string, req *workitem_dto.TransitionStatusRequest) (*workitem_dto.TransitionStatusResponse, *app_errors.AppError) {
	kind, itemID, err := parseItemRef(itemRef)
	if err != nil {
		return nil, err
	}

	actor, err := s.ur.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	next := entity.WorkItemStatus(req.Status)

	// assigned is the router's job, a direct write would skip its validation
	if next == entity.StatusAssigned {
		return nil, app_errors.NewAppError(
			fiber.StatusConflict,
			app_errors.ErrInvalidTransition,
			"transition.use_assignment_router",
			nil,
		)
	}

	if kind == entity.KindTask {
		return s.transitionTask(ctx, actor, itemID, next, req.Note)
	}
	return s.transitionReport(ctx, actor, itemID, next, req.Note)
}

func (s *WorkItemService) transitionReport(ctx context.Context, actor *entity.UserEntity, reportID string, next entity.WorkItemStatus, note *string) (*workitem_dto.TransitionStatusResponse, *app_errors.AppError) {
	report, err := s.rr.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if err := checkTransition(entity.KindReport, report.Status, next); err != nil {
		return nil, err
	}

	if err := s.verifyTransitionActor(ctx, actor, entity.KindReport, next, report.Assignee, report.Geography(), note); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	updated, err := s.rr.TransitionReport(ctx, t, reportID, report.Status, next)
	if err != nil {
		return nil, err
	}

	if note != nil {
		if err := s.appendNote(ctx, t, entity.KindReport, reportID, *note, actor.ID); err != nil {
			return nil, err
		}
	}

	action := entity.ActionTransition
	if next == entity.StatusAcknowledged {
		action = entity.ActionAcknowledge
	}
	event := &entity.AddWorkItemEvent{
		ItemID:    reportID,
		ItemKind:  entity.KindReport,
		ActorID:   actor.ID,
		Action:    action,
		OldStatus: &report.Status,
		NewStatus: &updated.Status,
		Note:      note,
	}
	if err := s.insertEvent(ctx, t, event); err != nil {
		return nil, err
	}

	if err := s.mirrorToDerivedTask(ctx, t, actor.ID, reportID, next); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	s.notifyStatusChange(entity.KindReport, reportID, updated.Title, string(report.Status), string(updated.Status), actor.ID, []string{updated.ReporterID})

	// first resolution triggers the point award; the flag keeps at-least-once
	// delivery from crediting twice
	if next == entity.StatusResolved && !updated.PointsAwarded {
		payload := &worker_task.ResolutionEffectsPayload{ReportID: reportID}
		if qErr := s.queue.EnqueueResolutionEffects(payload); qErr != nil {
			log.Error().Err(qErr).Str("report", reportID).Msg("failed to enqueue resolution effects")
		}
	}

	resp := &workitem_dto.TransitionStatusResponse{
		ItemRef:    itemRefString(entity.KindReport, reportID),
		Kind:       string(entity.KindReport),
		OldStatus:  string(report.Status),
		NewStatus:  string(updated.Status),
		StartedAt:  updated.StartedAt,
		ResolvedAt: updated.ResolvedAt,
	}
	if updated.StartedAt != nil && updated.ResolvedAt != nil {
		elapsed := int64(updated.ResolvedAt.Sub(*updated.StartedAt).Seconds())
		resp.ElapsedSeconds = &elapsed
	}
	return resp, nil
}

func (s *WorkItemService) transitionTask(ctx context.Context, actor *entity.UserEntity, taskID string, next entity.WorkItemStatus, note *string) (*workitem_dto.TransitionStatusResponse, *app_errors.AppError) {
	task, err := s.tr.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := checkTransition(entity.KindTask, task.Status, next); err != nil {
		return nil, err
	}

	if err := s.verifyTransitionActor(ctx, actor, entity.KindTask, next, task.AssigneeID, entity.Scope{}, note); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	updated, err := s.tr.TransitionTask(ctx, t, taskID, task.Status, next)
	if err != nil {
		return nil, err
	}

	if note != nil {
		if err := s.appendNote(ctx, t, entity.KindTask, taskID, *note, actor.ID); err != nil {
			return nil, err
		}
	}

	event := &entity.AddWorkItemEvent{
		ItemID:    taskID,
		ItemKind:  entity.KindTask,
		ActorID:   actor.ID,
		Action:    entity.ActionTransition,
		OldStatus: &task.Status,
		NewStatus: &updated.Status,
		Note:      note,
	}
	if err := s.insertEvent(ctx, t, event); err != nil {
		return nil, err
	}

	var mirroredReport *entity.ReportEntity
	if task.RelatedReport != nil {
		mirroredReport, err = s.mirrorToRelatedReport(ctx, t, actor.ID, *task.RelatedReport, next)
		if err != nil {
			return nil, err
		}
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	recipients := []string{task.CreatedBy}
	if task.AssigneeID != nil {
		recipients = append(recipients, *task.AssigneeID)
	}
	s.notifyStatusChange(entity.KindTask, taskID, updated.Title, string(task.Status), string(updated.Status), actor.ID, recipients)

	// a mirrored resolution on the source report carries the same side effects
	// as a direct one
	if mirroredReport != nil {
		s.notifyStatusChange(entity.KindReport, mirroredReport.ID, mirroredReport.Title,
			string(task.Status), string(mirroredReport.Status), actor.ID, []string{mirroredReport.ReporterID})
		if mirroredReport.Status == entity.StatusResolved && !mirroredReport.PointsAwarded {
			payload := &worker_task.ResolutionEffectsPayload{ReportID: mirroredReport.ID}
			if qErr := s.queue.EnqueueResolutionEffects(payload); qErr != nil {
				log.Error().Err(qErr).Str("report", mirroredReport.ID).Msg("failed to enqueue resolution effects")
			}
		}
	}

	resp := &workitem_dto.TransitionStatusResponse{
		ItemRef:    itemRefString(entity.KindTask, taskID),
		Kind:       string(entity.KindTask),
		OldStatus:  string(task.Status),
		NewStatus:  string(updated.Status),
		StartedAt:  updated.StartedAt,
		ResolvedAt: updated.CompletedAt,
	}
	if updated.StartedAt != nil && updated.CompletedAt != nil {
		elapsed := int64(updated.CompletedAt.Sub(*updated.StartedAt).Seconds())
		resp.ElapsedSeconds = &elapsed
	}
	return resp, nil
}

// verifyTransitionActor enforces who may perform a transition to next.
func (s *WorkItemService) verifyTransitionActor(ctx context.Context, actor *entity.UserEntity, kind entity.WorkItemKind, next entity.WorkItemStatus, assigneeRaw *string, geo entity.Scope, note *string) *app_errors.AppError {
	switch next {
	case entity.StatusAcknowledged:
		if !actor.Role.IsAdminTier() {
			return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.not_admin", nil)
		}
		if actor.Role != entity.RoleSuperAdmin && !actor.Scope().Contains(geo) {
			return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.outside_jurisdiction", nil)
		}
		return nil

	case entity.StatusInProgress:
		isAssignee, err := s.isItemAssignee(ctx, actor, kind, assigneeRaw)
		if err != nil {
			return err
		}
		if !isAssignee {
			return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden.not_assignee", nil)
		}
		return nil

	case entity.StatusResolved, entity.StatusCompleted:
		isAssignee, err := s.isItemAssignee(ctx, actor, kind, assigneeRaw)
		if err != nil {
			return err
		}
		if isAssignee {
			return nil
		}
		return s.requireAboveAssignee(ctx, actor, kind, assigneeRaw, geo)

	case entity.StatusRejected, entity.StatusCancelled:
		if note == nil || *note == "" {
			return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "transition.note_required", nil)
		}
		return s.requireAboveAssignee(ctx, actor, kind, assigneeRaw, geo)

	case entity.StatusClosed:
		return s.requireAboveAssignee(ctx, actor, kind, assigneeRaw, geo)
	}

	return app_errors.NewInvalidTransition("", string(next))
}

// requireAboveAssignee gates the override transitions: an admin strictly above
// the current assignee, acting inside their own jurisdiction. Reports pin
// their geography; tasks carry none, so they are bounded by the assignee's
// scope instead.
func (s *WorkItemService) requireAboveAssignee(ctx context.Context, actor *entity.UserEntity, kind entity.WorkItemKind, assigneeRaw *string, geo entity.Scope) *app_errors.AppError {
	if !actor.Role.IsAdminTier() {
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.not_admin", nil)
	}
	tier, err := s.assigneeTier(ctx, kind, assigneeRaw)
	if err != nil {
		return err
	}
	if actor.Role.Tier() <= tier {
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.tier_not_higher", nil)
	}
	if actor.Role == entity.RoleSuperAdmin {
		return nil
	}
	if kind == entity.KindReport {
		if !actor.Scope().Contains(geo) {
			return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.outside_jurisdiction", nil)
		}
		return nil
	}
	if assigneeRaw == nil {
		return nil
	}
	assignee, err := s.ur.GetUserByID(ctx, *assigneeRaw)
	if err != nil {
		if err.Type == app_errors.ErrNotFound {
			return nil
		}
		return err
	}
	if !actor.Scope().Contains(assignee.Scope()) {
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrScopeViolation, "scope.outside_jurisdiction", nil)
	}
	return nil
}

// mirrorToDerivedTask propagates a report transition onto its derived task in
// the same transaction so the pair never lands in an inconsistent state.
func (s *WorkItemService) mirrorToDerivedTask(ctx context.Context, t tx.Tx, actorID, reportID string, next entity.WorkItemStatus) *app_errors.AppError {
	mirrored, ok := mirrorStatus(entity.KindReport, next)
	if !ok {
		return nil
	}

	task, err := s.tr.GetTaskByRelatedReport(ctx, reportID)
	if err != nil {
		return err
	}
	if task == nil || task.Status == mirrored || task.Status.IsTerminal() {
		return nil
	}
	if checkTransition(entity.KindTask, task.Status, mirrored) != nil {
		return nil
	}

	updated, err := s.tr.TransitionTask(ctx, t, task.ID, task.Status, mirrored)
	if err != nil {
		return err
	}

	event := &entity.AddWorkItemEvent{
		ItemID:    task.ID,
		ItemKind:  entity.KindTask,
		ActorID:   actorID,
		Action:    entity.ActionTransition,
		OldStatus: &task.Status,
		NewStatus: &updated.Status,
	}
	return s.insertEvent(ctx, t, event)
}

// mirrorToRelatedReport is the task-side half of the pairing. It returns the
// updated report so the caller can fire the report's side effects after
// commit.
func (s *WorkItemService) mirrorToRelatedReport(ctx context.Context, t tx.Tx, actorID, reportID string, next entity.WorkItemStatus) (*entity.ReportEntity, *app_errors.AppError) {
	mirrored, ok := mirrorStatus(entity.KindTask, next)
	if !ok {
		return nil, nil
	}

	report, err := s.rr.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status == mirrored || report.Status.IsTerminal() {
		return nil, nil
	}
	if checkTransition(entity.KindReport, report.Status, mirrored) != nil {
		return nil, nil
	}

	updated, err := s.rr.TransitionReport(ctx, t, report.ID, report.Status, mirrored)
	if err != nil {
		return nil, err
	}

	event := &entity.AddWorkItemEvent{
		ItemID:    report.ID,
		ItemKind:  entity.KindReport,
		ActorID:   actorID,
		Action:    entity.ActionTransition,
		OldStatus: &report.Status,
		NewStatus: &updated.Status,
	}
	if err := s.insertEvent(ctx, t, event); err != nil {
		return nil, err
	}
	return updated, nil
}
