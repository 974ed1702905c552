package workitem_case

import (
	"context"
	"testing"
	"time"

	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// The current assignee picks up an assigned report.
func TestTransitionStatus_AssigneeStartsWork(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	tx := new(MockTx)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "staff-1"
	reportID := "report-1"
	req := &workitem_dto.TransitionStatusRequest{Status: "In_Progress"}

	staff := &entity.UserEntity{ID: actorID, Role: entity.RoleFieldStaff, IsActive: true}
	ur.On("GetUserByID", ctx, actorID).Return(staff, (*app_errors.AppError)(nil))

	assignee := "user:staff-1"
	report := &entity.ReportEntity{
		ID:         reportID,
		Title:      "Pothole on main street",
		Category:   "pothole",
		Status:     entity.StatusAssigned,
		Priority:   entity.PriorityHigh,
		Assignee:   &assignee,
		ReporterID: "citizen-1",
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	started := time.Now()
	updated := &entity.ReportEntity{
		ID:         reportID,
		Title:      report.Title,
		Category:   report.Category,
		Status:     entity.StatusInProgress,
		Priority:   entity.PriorityHigh,
		Assignee:   &assignee,
		StartedAt:  &started,
		ReporterID: "citizen-1",
	}
	rr.On("TransitionReport", ctx, tx, reportID, entity.StatusAssigned, entity.StatusInProgress).
		Return(updated, (*app_errors.AppError)(nil))

	ar.On("InsertEvent", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))

	// In_Progress mirrors, so the derived pair is probed
	tr.On("GetTaskByRelatedReport", ctx, reportID).Return((*entity.TaskEntity)(nil), (*app_errors.AppError)(nil))

	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	q.On("EnqueueStatusChangeNotify", mock.Anything).Return(nil)

	resp, err := service.TransitionStatus(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, string(entity.StatusAssigned), resp.OldStatus)
	assert.Equal(t, string(entity.StatusInProgress), resp.NewStatus)
	assert.NotNil(t, resp.StartedAt)
	assert.Nil(t, resp.ElapsedSeconds)

	rr.AssertExpectations(t)
	tr.AssertExpectations(t)
	tx.AssertExpectations(t)
	q.AssertExpectations(t)
}

// Terminal states refuse every transition attempt.
func TestTransitionStatus_TerminalState(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "admin-1"
	reportID := "report-1"
	req := &workitem_dto.TransitionStatusRequest{Status: "In_Progress"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	report := &entity.ReportEntity{ID: reportID, Status: entity.StatusRejected}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	resp, err := service.TransitionStatus(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 409, err.Code)
	assert.Equal(t, app_errors.ErrTerminalState, err.Type)

	rr.AssertExpectations(t)
}

// No edge from Submitted straight to Resolved.
func TestTransitionStatus_InvalidEdge(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "admin-1"
	reportID := "report-1"
	req := &workitem_dto.TransitionStatusRequest{Status: "Resolved"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	report := &entity.ReportEntity{ID: reportID, Status: entity.StatusSubmitted}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	resp, err := service.TransitionStatus(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 409, err.Code)
	assert.Equal(t, app_errors.ErrInvalidTransition, err.Type)

	rr.AssertExpectations(t)
}

// Assigned is only reachable through the router.
func TestTransitionStatus_DirectAssignRejected(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "admin-1"
	req := &workitem_dto.TransitionStatusRequest{Status: "Assigned"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	resp, err := service.TransitionStatus(ctx, actorID, "report:report-1", req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 409, err.Code)
	assert.Equal(t, app_errors.ErrInvalidTransition, err.Type)
	assert.Equal(t, "transition.use_assignment_router", err.MessageKey)
}

// Rejection without an explanatory note is refused.
func TestTransitionStatus_RejectRequiresNote(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "admin-1"
	reportID := "report-1"
	req := &workitem_dto.TransitionStatusRequest{Status: "Rejected"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	report := &entity.ReportEntity{ID: reportID, Status: entity.StatusSubmitted}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	resp, err := service.TransitionStatus(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, app_errors.ErrInvalidBody, err.Type)
	assert.Equal(t, "transition.note_required", err.MessageKey)

	rr.AssertExpectations(t)
}

// Only the current assignee may start work.
func TestTransitionStatus_NotAssignee(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "staff-2"
	reportID := "report-1"
	req := &workitem_dto.TransitionStatusRequest{Status: "In_Progress"}

	staff := &entity.UserEntity{ID: actorID, Role: entity.RoleFieldStaff, IsActive: true}
	ur.On("GetUserByID", ctx, actorID).Return(staff, (*app_errors.AppError)(nil))

	assignee := "user:staff-1"
	report := &entity.ReportEntity{ID: reportID, Status: entity.StatusAssigned, Assignee: &assignee}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	resp, err := service.TransitionStatus(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, app_errors.ErrForbidden, err.Type)
	assert.Equal(t, "forbidden.not_assignee", err.MessageKey)

	rr.AssertExpectations(t)
}

// Resolving a report mirrors completion onto its derived task and fires the
// point award exactly once.
func TestTransitionStatus_ResolveMirrorsDerivedTask(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	tx := new(MockTx)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "dh-1"
	reportID := "report-1"
	req := &workitem_dto.TransitionStatusRequest{Status: "Resolved"}

	head := &entity.UserEntity{ID: actorID, Role: entity.RoleDepartmentHead, IsActive: true}
	ur.On("GetUserByID", ctx, actorID).Return(head, (*app_errors.AppError)(nil))

	assignee := "user:dh-1"
	started := time.Now().Add(-2 * time.Hour)
	report := &entity.ReportEntity{
		ID:         reportID,
		Title:      "Broken water main",
		Category:   "water_supply",
		Status:     entity.StatusInProgress,
		Priority:   entity.PriorityCritical,
		Assignee:   &assignee,
		StartedAt:  &started,
		ReporterID: "citizen-1",
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resolved := time.Now()
	updated := &entity.ReportEntity{
		ID:         reportID,
		Title:      report.Title,
		Category:   report.Category,
		Status:     entity.StatusResolved,
		Priority:   entity.PriorityCritical,
		Assignee:   &assignee,
		StartedAt:  &started,
		ResolvedAt: &resolved,
		ReporterID: "citizen-1",
	}
	rr.On("TransitionReport", ctx, tx, reportID, entity.StatusInProgress, entity.StatusResolved).
		Return(updated, (*app_errors.AppError)(nil))

	ar.On("InsertEvent", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))

	derivedID := "task-9"
	aid := "dh-1"
	derived := &entity.TaskEntity{
		ID:            derivedID,
		Status:        entity.StatusInProgress,
		AssigneeID:    &aid,
		RelatedReport: &report.ID,
		CreatedBy:     "admin-1",
	}
	tr.On("GetTaskByRelatedReport", ctx, reportID).Return(derived, (*app_errors.AppError)(nil))

	completed := time.Now()
	mirrored := &entity.TaskEntity{
		ID:          derivedID,
		Status:      entity.StatusCompleted,
		CompletedAt: &completed,
	}
	tr.On("TransitionTask", ctx, tx, derivedID, entity.StatusInProgress, entity.StatusCompleted).
		Return(mirrored, (*app_errors.AppError)(nil))

	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	q.On("EnqueueStatusChangeNotify", mock.Anything).Return(nil)
	q.On("EnqueueResolutionEffects", mock.Anything).Return(nil)

	resp, err := service.TransitionStatus(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, string(entity.StatusResolved), resp.NewStatus)
	assert.NotNil(t, resp.ElapsedSeconds)
	assert.GreaterOrEqual(t, *resp.ElapsedSeconds, int64(7100))

	rr.AssertExpectations(t)
	tr.AssertExpectations(t)
	tx.AssertExpectations(t)
	q.AssertExpectations(t)
}

// Completing the derived task resolves the source report in the same tx.
func TestTransitionStatus_TaskCompletionMirrorsReport(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	tx := new(MockTx)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "dh-1"
	taskID := "task-9"
	reportID := "report-1"
	req := &workitem_dto.TransitionStatusRequest{Status: "Completed"}

	head := &entity.UserEntity{ID: actorID, Role: entity.RoleDepartmentHead, IsActive: true}
	ur.On("GetUserByID", ctx, actorID).Return(head, (*app_errors.AppError)(nil))

	aid := "dh-1"
	task := &entity.TaskEntity{
		ID:            taskID,
		Title:         "Broken water main",
		Status:        entity.StatusInProgress,
		AssigneeID:    &aid,
		RelatedReport: &reportID,
		CreatedBy:     "admin-1",
	}
	tr.On("GetTaskByID", ctx, taskID).Return(task, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	completed := time.Now()
	updatedTask := &entity.TaskEntity{
		ID:          taskID,
		Title:       task.Title,
		Status:      entity.StatusCompleted,
		CompletedAt: &completed,
	}
	tr.On("TransitionTask", ctx, tx, taskID, entity.StatusInProgress, entity.StatusCompleted).
		Return(updatedTask, (*app_errors.AppError)(nil))

	ar.On("InsertEvent", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))

	report := &entity.ReportEntity{
		ID:         reportID,
		Title:      "Broken water main",
		Category:   "water_supply",
		Status:     entity.StatusInProgress,
		ReporterID: "citizen-1",
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	resolvedAt := time.Now()
	mirroredReport := &entity.ReportEntity{
		ID:         reportID,
		Title:      report.Title,
		Category:   report.Category,
		Status:     entity.StatusResolved,
		ResolvedAt: &resolvedAt,
		ReporterID: "citizen-1",
	}
	rr.On("TransitionReport", ctx, tx, reportID, entity.StatusInProgress, entity.StatusResolved).
		Return(mirroredReport, (*app_errors.AppError)(nil))

	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	q.On("EnqueueStatusChangeNotify", mock.Anything).Return(nil).Twice()
	q.On("EnqueueResolutionEffects", mock.Anything).Return(nil)

	resp, err := service.TransitionStatus(ctx, actorID, "task:"+taskID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, string(entity.StatusCompleted), resp.NewStatus)

	rr.AssertExpectations(t)
	tr.AssertExpectations(t)
	tx.AssertExpectations(t)
	q.AssertExpectations(t)
}

// An admin above the assignee cannot reject a report outside their own
// jurisdiction.
func TestTransitionStatus_RejectOutsideJurisdiction(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "admin-1"
	reportID := "report-1"
	note := "duplicate of an existing report"
	req := &workitem_dto.TransitionStatusRequest{Status: "Rejected", Note: &note}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	d := "D1"
	foreign := "M2"
	assignee := "worker:EMP-042"
	report := &entity.ReportEntity{
		ID:           reportID,
		Status:       entity.StatusAssigned,
		Assignee:     &assignee,
		District:     &d,
		Municipality: &foreign,
		ReporterID:   "citizen-1",
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	resp, err := service.TransitionStatus(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, app_errors.ErrScopeViolation, err.Type)
	assert.Equal(t, "scope.outside_jurisdiction", err.MessageKey)

	rr.AssertExpectations(t)
	ur.AssertExpectations(t)
}

// Tasks carry no geography; the assignee's scope bounds who may cancel.
func TestTransitionStatus_CancelTaskOutsideScope(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "admin-2"
	taskID := "task-1"
	note := "work no longer needed"
	req := &workitem_dto.TransitionStatusRequest{Status: "Cancelled", Note: &note}

	d := "D1"
	m2 := "M2"
	actor := &entity.UserEntity{
		ID:           actorID,
		Role:         entity.RoleMunicipalityAdmin,
		District:     &d,
		Municipality: &m2,
		IsActive:     true,
	}
	ur.On("GetUserByID", ctx, actorID).Return(actor, (*app_errors.AppError)(nil))

	aid := "staff-1"
	task := &entity.TaskEntity{
		ID:         taskID,
		Status:     entity.StatusAssigned,
		AssigneeID: &aid,
		CreatedBy:  "admin-1",
	}
	tr.On("GetTaskByID", ctx, taskID).Return(task, (*app_errors.AppError)(nil))

	m1 := "M1"
	staff := &entity.UserEntity{
		ID:           aid,
		Role:         entity.RoleFieldStaff,
		District:     &d,
		Municipality: &m1,
		IsActive:     true,
	}
	ur.On("GetUserByID", ctx, aid).Return(staff, (*app_errors.AppError)(nil))

	resp, err := service.TransitionStatus(ctx, actorID, "task:"+taskID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, app_errors.ErrScopeViolation, err.Type)
	assert.Equal(t, "scope.outside_jurisdiction", err.MessageKey)

	tr.AssertExpectations(t)
	ur.AssertExpectations(t)
}

// Inside their jurisdiction, an admin above the assignee closes as usual.
func TestTransitionStatus_CloseWithinScope(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	tx := new(MockTx)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "admin-1"
	reportID := "report-1"
	req := &workitem_dto.TransitionStatusRequest{Status: "Closed"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	d := "D1"
	m := "M1"
	assignee := "worker:EMP-042"
	report := &entity.ReportEntity{
		ID:           reportID,
		Title:        "Overflowing garbage bin",
		Category:     "garbage",
		Status:       entity.StatusAssigned,
		Assignee:     &assignee,
		District:     &d,
		Municipality: &m,
		ReporterID:   "citizen-1",
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	updated := &entity.ReportEntity{
		ID:           reportID,
		Title:        report.Title,
		Category:     report.Category,
		Status:       entity.StatusClosed,
		Assignee:     &assignee,
		District:     &d,
		Municipality: &m,
		ReporterID:   "citizen-1",
	}
	rr.On("TransitionReport", ctx, tx, reportID, entity.StatusAssigned, entity.StatusClosed).
		Return(updated, (*app_errors.AppError)(nil))

	ar.On("InsertEvent", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))

	// Closed mirrors onto a derived task when one exists
	tr.On("GetTaskByRelatedReport", ctx, reportID).Return((*entity.TaskEntity)(nil), (*app_errors.AppError)(nil))

	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	q.On("EnqueueStatusChangeNotify", mock.Anything).Return(nil)

	resp, err := service.TransitionStatus(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, string(entity.StatusClosed), resp.NewStatus)

	rr.AssertExpectations(t)
	tx.AssertExpectations(t)
}

// An admin with scope over the report geography acknowledges intake.
func TestTransitionStatus_Acknowledge(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	tx := new(MockTx)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "admin-1"
	reportID := "report-1"
	req := &workitem_dto.TransitionStatusRequest{Status: "Acknowledged"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	d := "D1"
	m := "M1"
	report := &entity.ReportEntity{
		ID:           reportID,
		Title:        "Streetlight out",
		Category:     "street_light",
		Status:       entity.StatusSubmitted,
		District:     &d,
		Municipality: &m,
		ReporterID:   "citizen-1",
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	updated := &entity.ReportEntity{
		ID:           reportID,
		Title:        report.Title,
		Category:     report.Category,
		Status:       entity.StatusAcknowledged,
		District:     &d,
		Municipality: &m,
		ReporterID:   "citizen-1",
	}
	rr.On("TransitionReport", ctx, tx, reportID, entity.StatusSubmitted, entity.StatusAcknowledged).
		Return(updated, (*app_errors.AppError)(nil))

	ar.On("InsertEvent", ctx, tx, mock.MatchedBy(func(e *entity.AddWorkItemEvent) bool {
		return e.Action == entity.ActionAcknowledge
	})).Return((*app_errors.AppError)(nil))

	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	q.On("EnqueueStatusChangeNotify", mock.Anything).Return(nil)

	resp, err := service.TransitionStatus(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, string(entity.StatusAcknowledged), resp.NewStatus)

	rr.AssertExpectations(t)
	ar.AssertExpectations(t)
	tx.AssertExpectations(t)
}
