package report_case

import (
	"context"
	"testing"
	"time"

	report_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/report-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService(rr *MockReportRepo, ar *MockAuditRepo) *ReportService {
	return &ReportService{rr: rr, ar: ar}
}

func strPtr(s string) *string { return &s }

func TestCreateReport_Success(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ar := new(MockAuditRepo)
	service := newTestService(rr, ar)

	var inserted *entity.ReportEntity
	rr.On("InsertReport", ctx, mock.AnythingOfType("*entity.ReportEntity")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*entity.ReportEntity)
		}).
		Return((*app_errors.AppError)(nil))

	req := &report_dto.CreateReportRequest{
		Title:        "Broken street light on MG Road",
		Description:  "Lamp post 14 has been dark for a week.",
		Category:     "street_light",
		Municipality: "M1",
		Ward:         "W5",
	}

	resp, err := service.CreateReport(ctx, "citizen-1", req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.NotEmpty(t, resp.ReportID)
	assert.Equal(t, string(entity.StatusSubmitted), resp.Status)
	assert.Equal(t, string(entity.PriorityMedium), resp.Priority)

	assert.NotNil(t, inserted)
	assert.Equal(t, "citizen-1", inserted.ReporterID)
	assert.Equal(t, entity.StatusSubmitted, inserted.Status)
	assert.Equal(t, "M1", *inserted.Municipality)
	assert.Equal(t, "W5", *inserted.Ward)

	rr.AssertExpectations(t)
}

func TestCreateReport_ExplicitPriority(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ar := new(MockAuditRepo)
	service := newTestService(rr, ar)

	rr.On("InsertReport", ctx, mock.AnythingOfType("*entity.ReportEntity")).
		Return((*app_errors.AppError)(nil))

	req := &report_dto.CreateReportRequest{
		Title:        "Sewage overflow near market",
		Description:  "Raw sewage flooding the junction since morning.",
		Category:     "sewage",
		Priority:     strPtr(string(entity.PriorityCritical)),
		Municipality: "M1",
		Ward:         "W2",
	}

	resp, err := service.CreateReport(ctx, "citizen-2", req)

	assert.Nil(t, err)
	assert.Equal(t, string(entity.PriorityCritical), resp.Priority)
}

func TestListReports_PaginationMeta(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ar := new(MockAuditRepo)
	service := newTestService(rr, ar)

	reports := []entity.ReportEntity{
		{ID: "r1", Title: "Pothole", Category: "pothole", Status: entity.StatusSubmitted, Priority: entity.PriorityMedium, CreatedAt: time.Now()},
		{ID: "r2", Title: "Garbage pile", Category: "garbage", Status: entity.StatusAssigned, Priority: entity.PriorityHigh, CreatedAt: time.Now()},
	}
	rr.On("ListReports", ctx, mock.AnythingOfType("*report_dto.ReportListFilter")).Return(reports, (*app_errors.AppError)(nil))
	rr.On("CountReports", ctx, mock.AnythingOfType("*report_dto.ReportListFilter")).Return(42, (*app_errors.AppError)(nil))

	items, meta, err := service.ListReports(ctx, report_dto.ReportListFilter{Page: 2, Limit: 20})

	assert.Nil(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "r1", items[0].ReportID)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, 42, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	rr.AssertExpectations(t)
}

func TestListReports_DefaultsPageAndLimit(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ar := new(MockAuditRepo)
	service := newTestService(rr, ar)

	rr.On("ListReports", ctx, mock.MatchedBy(func(f *report_dto.ReportListFilter) bool {
		return f.Page == 1 && f.Limit == 20
	})).Return([]entity.ReportEntity{}, (*app_errors.AppError)(nil))
	rr.On("CountReports", ctx, mock.AnythingOfType("*report_dto.ReportListFilter")).Return(0, (*app_errors.AppError)(nil))

	items, meta, err := service.ListReports(ctx, report_dto.ReportListFilter{})

	assert.Nil(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 0, meta.TotalPages)

	rr.AssertExpectations(t)
}

func TestGetReportDetails_WithNotes(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ar := new(MockAuditRepo)
	service := newTestService(rr, ar)

	reportID := "0198c7a2-4ac1-7e7b-9df1-000000000001"
	report := &entity.ReportEntity{
		ID:           reportID,
		Title:        "Pothole on 4th cross",
		Description:  "Deep pothole, two-wheelers swerving into traffic.",
		Category:     "pothole",
		Status:       entity.StatusInProgress,
		Priority:     entity.PriorityHigh,
		Assignee:     strPtr("worker:EMP-042"),
		ReporterID:   "citizen-1",
		Municipality: strPtr("M1"),
		Ward:         strPtr("W5"),
		CreatedAt:    time.Now().Add(-48 * time.Hour),
	}
	rr.On("GetReportByID", ctx, reportID).Return(report, (*app_errors.AppError)(nil))

	notes := []entity.WorkItemNote{
		{ID: "n1", ItemID: reportID, ItemKind: entity.KindReport, Text: "Crew dispatched.", AuthorID: "admin-1", CreatedAt: time.Now().Add(-24 * time.Hour)},
		{ID: "n2", ItemID: reportID, ItemKind: entity.KindReport, Text: "Material ordered.", AuthorID: "admin-1", CreatedAt: time.Now().Add(-12 * time.Hour)},
	}
	ar.On("ListNotes", ctx, reportID, entity.KindReport).Return(notes, (*app_errors.AppError)(nil))

	resp, err := service.GetReportDetails(ctx, reportID)

	assert.Nil(t, err)
	assert.Equal(t, reportID, resp.ReportID)
	assert.Equal(t, "worker:EMP-042", *resp.Assignee)
	assert.Len(t, resp.Notes, 2)
	assert.Equal(t, "Crew dispatched.", resp.Notes[0].Text)

	rr.AssertExpectations(t)
	ar.AssertExpectations(t)
}

func TestGetReportDetails_NotFound(t *testing.T) {
	ctx := context.Background()

	rr := new(MockReportRepo)
	ar := new(MockAuditRepo)
	service := newTestService(rr, ar)

	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "report.not_found", nil)
	rr.On("GetReportByID", ctx, "missing").Return((*entity.ReportEntity)(nil), notFound)

	resp, err := service.GetReportDetails(ctx, "missing")

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrNotFound, err.Type)
}
