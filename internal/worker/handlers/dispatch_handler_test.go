package worker_handler

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	worker_task "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestWorkerHandler(rr *MockReportRepo, ur *MockUserRepo, nr *MockNotificationRepo, mailer *MockMailer, txm *MockTxManager) *WorkerHandler {
	return &WorkerHandler{
		txm:           txm,
		rr:            rr,
		ur:            ur,
		nr:            nr,
		mailer:        mailer,
		retentionDays: 30,
	}
}

func makeTask(t *testing.T, name string, payload any) *asynq.Task {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	return asynq.NewTask(name, body)
}

func resolvedReport(id string) *entity.ReportEntity {
	resolved := time.Now()
	return &entity.ReportEntity{
		ID:         id,
		Title:      "Overflowing garbage bin",
		Category:   "garbage",
		Priority:   entity.PriorityHigh,
		Status:     entity.StatusResolved,
		ResolvedAt: &resolved,
		ReporterID: "citizen-1",
	}
}

// First resolution credits the reporter and tells them about it.
func TestResolutionEffects_CreditsReporterOnce(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ur := new(MockUserRepo)
	nr := new(MockNotificationRepo)
	mailer := new(MockMailer)
	txm := new(MockTxManager)
	tx := new(MockTx)
	wh := newTestWorkerHandler(rr, ur, nr, mailer, txm)

	report := resolvedReport("report-1")
	rr.On("GetReportByID", ctx, "report-1").Return(report, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))
	rr.On("MarkPointsAwarded", ctx, tx, "report-1").Return(true, (*app_errors.AppError)(nil))

	// garbage at High priority: 12 * 1.5
	ur.On("CreditPoints", ctx, tx, "citizen-1", 18).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	nr.On("InsertNotification", ctx, mock.MatchedBy(func(n *entity.NotificationEntity) bool {
		return n.RecipientID == "citizen-1" && n.Category == entity.NotifyResolution
	})).Return((*app_errors.AppError)(nil))

	reporter := &entity.UserEntity{ID: "citizen-1", Email: "citizen@city.example", Role: entity.RoleCitizen, IsActive: true}
	ur.On("GetUserByID", ctx, "citizen-1").Return(reporter, (*app_errors.AppError)(nil))
	mailer.On("SendResolutionEmail", "citizen@city.example", report.Title, 18).Return(nil)

	task := makeTask(t, worker_task.TaskResolutionEffects, &worker_task.ResolutionEffectsPayload{ReportID: "report-1"})
	err := wh.ResolutionEffectsHandler()(ctx, task)

	assert.NoError(t, err)
	rr.AssertExpectations(t)
	ur.AssertExpectations(t)
	nr.AssertExpectations(t)
	mailer.AssertExpectations(t)
	tx.AssertExpectations(t)
}

// A failed credit must not commit the guard flag; the redelivery still finds
// the award pending and credits in full.
func TestResolutionEffects_CreditFailureKeepsAwardRetryable(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ur := new(MockUserRepo)
	nr := new(MockNotificationRepo)
	mailer := new(MockMailer)
	txm := new(MockTxManager)
	tx := new(MockTx)
	wh := newTestWorkerHandler(rr, ur, nr, mailer, txm)

	report := resolvedReport("report-1")
	rr.On("GetReportByID", ctx, "report-1").Return(report, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))
	rr.On("MarkPointsAwarded", ctx, tx, "report-1").Return(true, (*app_errors.AppError)(nil))

	// rows-affected-zero shape: an AppError wrapping no cause must still fail
	// the delivery
	creditErr := app_errors.NewAppError(404, app_errors.ErrNotFound, "user.not_found", nil)
	ur.On("CreditPoints", ctx, tx, "citizen-1", 18).Return(creditErr)

	task := makeTask(t, worker_task.TaskResolutionEffects, &worker_task.ResolutionEffectsPayload{ReportID: "report-1"})
	err := wh.ResolutionEffectsHandler()(ctx, task)

	assert.Error(t, err)
	tx.AssertNotCalled(t, "Commit", ctx)
	nr.AssertNotCalled(t, "InsertNotification", mock.Anything, mock.Anything)
	tx.AssertExpectations(t)

	// redelivery: the guard flag rolled back with the credit, so the award
	// happens as if the first attempt never ran
	rr2 := new(MockReportRepo)
	ur2 := new(MockUserRepo)
	nr2 := new(MockNotificationRepo)
	mailer2 := new(MockMailer)
	txm2 := new(MockTxManager)
	tx2 := new(MockTx)
	wh2 := newTestWorkerHandler(rr2, ur2, nr2, mailer2, txm2)

	rr2.On("GetReportByID", ctx, "report-1").Return(report, (*app_errors.AppError)(nil))
	txm2.On("Begin", ctx).Return(tx2, (*app_errors.AppError)(nil))
	tx2.On("Rollback", ctx).Return((*app_errors.AppError)(nil))
	rr2.On("MarkPointsAwarded", ctx, tx2, "report-1").Return(true, (*app_errors.AppError)(nil))
	ur2.On("CreditPoints", ctx, tx2, "citizen-1", 18).Return((*app_errors.AppError)(nil))
	tx2.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	nr2.On("InsertNotification", ctx, mock.Anything).Return((*app_errors.AppError)(nil))
	reporter := &entity.UserEntity{ID: "citizen-1", Email: "citizen@city.example", Role: entity.RoleCitizen, IsActive: true}
	ur2.On("GetUserByID", ctx, "citizen-1").Return(reporter, (*app_errors.AppError)(nil))
	mailer2.On("SendResolutionEmail", "citizen@city.example", report.Title, 18).Return(nil)

	err = wh2.ResolutionEffectsHandler()(ctx, task)

	assert.NoError(t, err)
	ur2.AssertExpectations(t)
	tx2.AssertExpectations(t)
}

// A delivery that finds the flag already set acks without touching balances.
func TestResolutionEffects_AlreadyAwarded(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ur := new(MockUserRepo)
	nr := new(MockNotificationRepo)
	mailer := new(MockMailer)
	txm := new(MockTxManager)
	tx := new(MockTx)
	wh := newTestWorkerHandler(rr, ur, nr, mailer, txm)

	report := resolvedReport("report-1")
	report.PointsAwarded = true
	rr.On("GetReportByID", ctx, "report-1").Return(report, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))
	rr.On("MarkPointsAwarded", ctx, tx, "report-1").Return(false, (*app_errors.AppError)(nil))

	task := makeTask(t, worker_task.TaskResolutionEffects, &worker_task.ResolutionEffectsPayload{ReportID: "report-1"})
	err := wh.ResolutionEffectsHandler()(ctx, task)

	assert.NoError(t, err)
	ur.AssertNotCalled(t, "CreditPoints", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", ctx)
	rr.AssertExpectations(t)
}

// Assigning a report notifies the assignee and tells the reporter who is on
// the job, by name.
func TestAssignmentNotify_ReporterToldAssigneeName(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ur := new(MockUserRepo)
	nr := new(MockNotificationRepo)
	mailer := new(MockMailer)
	txm := new(MockTxManager)
	wh := newTestWorkerHandler(rr, ur, nr, mailer, txm)

	payload := &worker_task.AssignmentNotifyPayload{
		ItemID:      "report-1",
		ItemKind:    "report",
		ItemTitle:   "Overflowing garbage bin",
		AssigneeRef: "worker:EMP-042",
		AssignedBy:  "admin-1",
		Priority:    "High",
	}

	uid := "worker-user-1"
	worker := &entity.WorkerEntity{
		EmployeeCode: "EMP-042",
		UserID:       &uid,
		Name:         "Asha Verma",
		Department:   "sanitation",
		Active:       true,
	}
	ur.On("GetWorkerByCode", ctx, "EMP-042").Return(worker, (*app_errors.AppError)(nil))

	nr.On("InsertNotification", ctx, mock.MatchedBy(func(n *entity.NotificationEntity) bool {
		return n.RecipientID == uid && n.Category == entity.NotifyAssignment
	})).Return((*app_errors.AppError)(nil))

	assignee := &entity.UserEntity{ID: uid, Email: "asha@city.example", Name: "Asha Verma", Role: entity.RoleWorker, IsActive: true}
	ur.On("GetUserByID", ctx, uid).Return(assignee, (*app_errors.AppError)(nil))
	mailer.On("SendAssignmentEmail", "asha@city.example", mock.Anything).Return(nil)

	report := &entity.ReportEntity{ID: "report-1", Title: payload.ItemTitle, Status: entity.StatusAssigned, ReporterID: "citizen-1"}
	rr.On("GetReportByID", ctx, "report-1").Return(report, (*app_errors.AppError)(nil))

	nr.On("InsertNotification", ctx, mock.MatchedBy(func(n *entity.NotificationEntity) bool {
		return n.RecipientID == "citizen-1" && strings.Contains(n.Message, "Asha Verma")
	})).Return((*app_errors.AppError)(nil))

	task := makeTask(t, worker_task.TaskNotifyAssignment, payload)
	err := wh.AssignmentNotifyHandler()(ctx, task)

	assert.NoError(t, err)
	nr.AssertExpectations(t)
	ur.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

// A write failure fails the delivery even when the repo error wraps no cause.
func TestStatusChangeNotify_InsertFailureFailsDelivery(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ur := new(MockUserRepo)
	nr := new(MockNotificationRepo)
	mailer := new(MockMailer)
	txm := new(MockTxManager)
	wh := newTestWorkerHandler(rr, ur, nr, mailer, txm)

	payload := &worker_task.StatusChangeNotifyPayload{
		ItemID:     "report-1",
		ItemKind:   "report",
		ItemTitle:  "Overflowing garbage bin",
		OldStatus:  "Assigned",
		NewStatus:  "In_Progress",
		ActorID:    "worker-user-1",
		Recipients: []string{"citizen-1"},
	}

	insertErr := app_errors.NewAppError(500, app_errors.ErrInternal, "internal_error", nil)
	nr.On("InsertNotification", ctx, mock.Anything).Return(insertErr)

	task := makeTask(t, worker_task.TaskNotifyStatusChange, payload)
	err := wh.StatusChangeNotifyHandler()(ctx, task)

	assert.Error(t, err)
	nr.AssertExpectations(t)
}
