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

func newTestService(rr *MockReportRepo, tr *MockTaskRepo, ur *MockUserRepo, ar *MockAuditRepo, txm *MockTxManager, q *MockTaskQueue) *WorkItemService {
	return &WorkItemService{
		txManager: txm,
		rr:        rr,
		tr:        tr,
		ur:        ur,
		ar:        ar,
		queue:     q,
	}
}

func strPtr(s string) *string {
	return &s
}

func municipalityAdmin(id string) *entity.UserEntity {
	d := "D1"
	m := "M1"
	return &entity.UserEntity{
		ID:           id,
		Email:        id + "@city.example",
		Name:         "Admin",
		Role:         entity.RoleMunicipalityAdmin,
		District:     &d,
		Municipality: &m,
		IsActive:     true,
	}
}

func districtAdmin(id string) *entity.UserEntity {
	d := "D1"
	return &entity.UserEntity{
		ID:       id,
		Email:    id + "@city.example",
		Name:     "District Admin",
		Role:     entity.RoleDistrictAdmin,
		District: &d,
		IsActive: true,
	}
}

func rosterWorker(code string) *entity.WorkerEntity {
	d := "D1"
	m := "M1"
	w := "W5"
	uid := "worker-user-1"
	return &entity.WorkerEntity{
		EmployeeCode: code,
		UserID:       &uid,
		Name:         "Crew",
		Department:   "sanitation",
		District:     &d,
		Municipality: &m,
		Ward:         &w,
		Active:       true,
	}
}

// Happy path: municipality admin routes a submitted report to a roster worker.
func TestAssignWorkItem_ReportToWorker_Success(t *testing.T) {
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
	reportID := "0191c2a0-0000-7000-8000-000000000001"
	req := &workitem_dto.AssignWorkItemRequest{
		AssigneeRef: "worker:EMP-042",
		Priority:    strPtr("High"),
	}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	m := "M1"
	report := &entity.ReportEntity{
		ID:           reportID,
		Title:        "Overflowing garbage bin",
		Category:     "garbage",
		Status:       entity.StatusSubmitted,
		Priority:     entity.PriorityMedium,
		ReporterID:   "citizen-1",
		Municipality: &m,
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	ur.On("GetWorkerByCode", ctx, "EMP-042").Return(rosterWorker("EMP-042"), (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	now := time.Now()
	assignee := "worker:EMP-042"
	high := entity.PriorityHigh
	assigned := &entity.ReportEntity{
		ID:         reportID,
		Title:      report.Title,
		Category:   report.Category,
		Status:     entity.StatusAssigned,
		Priority:   entity.PriorityHigh,
		Assignee:   &assignee,
		AssignedBy: &actorID,
		AssignedAt: &now,
		ReporterID: "citizen-1",
	}
	rr.On("AssignReport", ctx, tx, reportID, entity.StatusSubmitted, assignee, actorID, &high).
		Return(assigned, (*app_errors.AppError)(nil))

	ar.On("InsertEvent", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	q.On("EnqueueAssignmentNotify", mock.Anything).Return(nil)
	q.On("EnqueueStatusChangeNotify", mock.Anything).Return(nil)

	resp, err := service.AssignWorkItem(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "report:"+reportID, resp.ItemRef)
	assert.Equal(t, string(entity.StatusAssigned), resp.Status)
	assert.Equal(t, "worker:EMP-042", resp.Assignee)
	assert.Nil(t, resp.DerivedTask)

	rr.AssertExpectations(t)
	ur.AssertExpectations(t)
	ar.AssertExpectations(t)
	tx.AssertExpectations(t)
	q.AssertExpectations(t)
}

// A district admin pins only the district; roster workers deeper in the tree
// still fall inside that jurisdiction.
func TestAssignWorkItem_DistrictAdminToRosterWorker(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	tx := new(MockTx)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "da-1"
	reportID := "report-1"
	req := &workitem_dto.AssignWorkItemRequest{AssigneeRef: "worker:EMP-042"}

	ur.On("GetUserByID", ctx, actorID).Return(districtAdmin(actorID), (*app_errors.AppError)(nil))

	d := "D1"
	m := "M1"
	report := &entity.ReportEntity{
		ID:           reportID,
		Title:        "Blocked storm drain",
		Category:     "sewage",
		Status:       entity.StatusSubmitted,
		Priority:     entity.PriorityMedium,
		ReporterID:   "citizen-1",
		District:     &d,
		Municipality: &m,
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	ur.On("GetWorkerByCode", ctx, "EMP-042").Return(rosterWorker("EMP-042"), (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	now := time.Now()
	assignee := "worker:EMP-042"
	assigned := &entity.ReportEntity{
		ID:         reportID,
		Title:      report.Title,
		Category:   report.Category,
		Status:     entity.StatusAssigned,
		Priority:   entity.PriorityMedium,
		Assignee:   &assignee,
		AssignedBy: &actorID,
		AssignedAt: &now,
		ReporterID: "citizen-1",
	}
	rr.On("AssignReport", ctx, tx, reportID, entity.StatusSubmitted, assignee, actorID, (*entity.WorkItemPriority)(nil)).
		Return(assigned, (*app_errors.AppError)(nil))

	ar.On("InsertEvent", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	q.On("EnqueueAssignmentNotify", mock.Anything).Return(nil)
	q.On("EnqueueStatusChangeNotify", mock.Anything).Return(nil)

	resp, err := service.AssignWorkItem(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "worker:EMP-042", resp.Assignee)

	rr.AssertExpectations(t)
	ur.AssertExpectations(t)
	tx.AssertExpectations(t)
}

// Terminal reports refuse any further routing.
func TestAssignWorkItem_TerminalReport(t *testing.T) {
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
	req := &workitem_dto.AssignWorkItemRequest{AssigneeRef: "worker:EMP-042"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	report := &entity.ReportEntity{
		ID:     reportID,
		Status: entity.StatusResolved,
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	resp, err := service.AssignWorkItem(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 409, err.Code)
	assert.Equal(t, app_errors.ErrTerminalState, err.Type)

	rr.AssertExpectations(t)
	ur.AssertExpectations(t)
}

// Citizens hold no routing authority.
func TestAssignWorkItem_ActorNotAdmin(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "citizen-1"
	reportID := "report-1"
	req := &workitem_dto.AssignWorkItemRequest{AssigneeRef: "worker:EMP-042"}

	citizen := &entity.UserEntity{ID: actorID, Role: entity.RoleCitizen, IsActive: true}
	ur.On("GetUserByID", ctx, actorID).Return(citizen, (*app_errors.AppError)(nil))

	report := &entity.ReportEntity{ID: reportID, Status: entity.StatusSubmitted}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	resp, err := service.AssignWorkItem(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, app_errors.ErrScopeViolation, err.Type)
	assert.Equal(t, "scope.not_admin", err.MessageKey)

	rr.AssertExpectations(t)
	ur.AssertExpectations(t)
}

// A worker code that is not on the roster is rejected as a whole.
func TestAssignWorkItem_UnknownWorkerCode(t *testing.T) {
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
	req := &workitem_dto.AssignWorkItemRequest{AssigneeRef: "worker:EMP-999"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	report := &entity.ReportEntity{ID: reportID, Status: entity.StatusSubmitted}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	ur.On("GetWorkerByCode", ctx, "EMP-999").Return((*entity.WorkerEntity)(nil), (*app_errors.AppError)(nil))

	resp, err := service.AssignWorkItem(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 422, err.Code)
	assert.Equal(t, app_errors.ErrUnknownAssignee, err.Type)

	rr.AssertExpectations(t)
	ur.AssertExpectations(t)
}

// Assigning across municipalities is a scope violation.
func TestAssignWorkItem_OutsideJurisdiction(t *testing.T) {
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
	req := &workitem_dto.AssignWorkItemRequest{AssigneeRef: "worker:EMP-042"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	report := &entity.ReportEntity{ID: reportID, Status: entity.StatusSubmitted}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	other := "M2"
	foreign := rosterWorker("EMP-042")
	foreign.Municipality = &other
	ur.On("GetWorkerByCode", ctx, "EMP-042").Return(foreign, (*app_errors.AppError)(nil))

	resp, err := service.AssignWorkItem(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, app_errors.ErrScopeViolation, err.Type)
	assert.Equal(t, "scope.outside_jurisdiction", err.MessageKey)

	rr.AssertExpectations(t)
	ur.AssertExpectations(t)
}

// A peer admin is not strictly below the actor.
func TestAssignWorkItem_CandidateTierNotLower(t *testing.T) {
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
	req := &workitem_dto.AssignWorkItemRequest{AssigneeRef: "user:admin-2"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	report := &entity.ReportEntity{ID: reportID, Status: entity.StatusSubmitted}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	ur.On("GetUserByID", ctx, "admin-2").Return(municipalityAdmin("admin-2"), (*app_errors.AppError)(nil))

	resp, err := service.AssignWorkItem(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, app_errors.ErrScopeViolation, err.Type)
	assert.Equal(t, "scope.tier_not_lower", err.MessageKey)

	rr.AssertExpectations(t)
	ur.AssertExpectations(t)
}

// The conditional UPDATE lost the race: someone moved the report first.
func TestAssignWorkItem_ConcurrentModification(t *testing.T) {
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
	req := &workitem_dto.AssignWorkItemRequest{AssigneeRef: "worker:EMP-042"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	report := &entity.ReportEntity{ID: reportID, Status: entity.StatusSubmitted}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	ur.On("GetWorkerByCode", ctx, "EMP-042").Return(rosterWorker("EMP-042"), (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	raceErr := app_errors.NewAppError(409, app_errors.ErrConcurrentModification, "workitem.concurrent_modification", nil)
	rr.On("AssignReport", ctx, tx, reportID, entity.StatusSubmitted, "worker:EMP-042", actorID, (*entity.WorkItemPriority)(nil)).
		Return((*entity.ReportEntity)(nil), raceErr)

	resp, err := service.AssignWorkItem(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrConcurrentModification, err.Type)

	rr.AssertExpectations(t)
	tx.AssertExpectations(t)
}

// Routing a report to a department head materializes the derived task.
func TestAssignWorkItem_DepartmentHeadDerivedTask(t *testing.T) {
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
	req := &workitem_dto.AssignWorkItemRequest{AssigneeRef: "user:dh-1"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	report := &entity.ReportEntity{
		ID:         reportID,
		Title:      "Broken water main",
		Category:   "water_supply",
		Status:     entity.StatusAcknowledged,
		Priority:   entity.PriorityCritical,
		ReporterID: "citizen-1",
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	d := "D1"
	m := "M1"
	dept := "water"
	head := &entity.UserEntity{
		ID:           "dh-1",
		Role:         entity.RoleDepartmentHead,
		District:     &d,
		Municipality: &m,
		Department:   &dept,
		IsActive:     true,
	}
	ur.On("GetUserByID", ctx, "dh-1").Return(head, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	now := time.Now()
	assignee := "user:dh-1"
	assigned := &entity.ReportEntity{
		ID:         reportID,
		Title:      report.Title,
		Category:   report.Category,
		Status:     entity.StatusAssigned,
		Priority:   entity.PriorityCritical,
		Assignee:   &assignee,
		AssignedBy: &actorID,
		AssignedAt: &now,
		ReporterID: "citizen-1",
	}
	rr.On("AssignReport", ctx, tx, reportID, entity.StatusAcknowledged, assignee, actorID, (*entity.WorkItemPriority)(nil)).
		Return(assigned, (*app_errors.AppError)(nil))

	ar.On("InsertEvent", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))

	tr.On("GetTaskByRelatedReport", ctx, reportID).Return((*entity.TaskEntity)(nil), (*app_errors.AppError)(nil))
	tr.On("InsertTask", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))

	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	q.On("EnqueueAssignmentNotify", mock.Anything).Return(nil)
	q.On("EnqueueStatusChangeNotify", mock.Anything).Return(nil)

	resp, err := service.AssignWorkItem(ctx, actorID, "report:"+reportID, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.NotNil(t, resp.DerivedTask)
	assert.Contains(t, *resp.DerivedTask, "task:")

	rr.AssertExpectations(t)
	tr.AssertExpectations(t)
	ur.AssertExpectations(t)
	tx.AssertExpectations(t)
}

// Roster codes never reach the internal task store.
func TestAssignWorkItem_TaskRejectsWorkerRef(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	tr := new(MockTaskRepo)
	ur := new(MockUserRepo)
	ar := new(MockAuditRepo)
	txm := new(MockTxManager)
	q := new(MockTaskQueue)
	service := newTestService(rr, tr, ur, ar, txm, q)

	actorID := "admin-1"
	taskID := "task-1"
	req := &workitem_dto.AssignWorkItemRequest{AssigneeRef: "worker:EMP-042"}

	ur.On("GetUserByID", ctx, actorID).Return(municipalityAdmin(actorID), (*app_errors.AppError)(nil))

	task := &entity.TaskEntity{ID: taskID, Status: entity.StatusSubmitted, CreatedBy: actorID}
	tr.On("GetTaskByID", ctx, taskID).Return(task, (*app_errors.AppError)(nil))

	resp, err := service.AssignWorkItem(ctx, actorID, "task:"+taskID, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 422, err.Code)
	assert.Equal(t, app_errors.ErrUnknownAssignee, err.Type)
	assert.Equal(t, "assignee.user_required", err.MessageKey)

	tr.AssertExpectations(t)
	ur.AssertExpectations(t)
}

// Malformed item refs fail fast, before any lookups.
func TestAssignWorkItem_MalformedItemRef(t *testing.T) {
	ctx := context.Background()

	service := newTestService(new(MockReportRepo), new(MockTaskRepo), new(MockUserRepo), new(MockAuditRepo), new(MockTxManager), new(MockTaskQueue))

	req := &workitem_dto.AssignWorkItemRequest{AssigneeRef: "worker:EMP-042"}

	resp, err := service.AssignWorkItem(ctx, "admin-1", "ticket-123", req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, app_errors.ErrInvalidParam, err.Type)
}
