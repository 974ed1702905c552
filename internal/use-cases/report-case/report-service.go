package report_case

import (
	"context"
	"math"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos"
	report_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/report-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	audit_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/audit-repo"
	report_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/report-repo"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportService struct {
	rr report_repo.ReportRepoContract
	ar audit_repo.AuditRepoContract
}

func NewReportService(db *pgxpool.Pool) ReportServiceContract {
	return &ReportService{
		rr: report_repo.NewReportRepo(db),
		ar: audit_repo.NewAuditRepo(db),
	}
}

func (s *ReportService) CreateReport(ctx context.Context, reporterID string, req *report_dto.CreateReportRequest) (*report_dto.CreateReportResponse, *app_errors.AppError) {
	priority := entity.PriorityMedium
	if req.Priority != nil {
		priority = entity.WorkItemPriority(*req.Priority)
	}

	reportID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	report := &entity.ReportEntity{
		ID:           reportID.String(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		ImageURL:     req.ImageURL,
		Status:       entity.StatusSubmitted,
		Priority:     priority,
		ReporterID:   reporterID,
		District:     req.District,
		Municipality: &req.Municipality,
		Ward:         &req.Ward,
		Department:   req.Department,
		CreatedAt:    time.Now(),
	}

	if err := s.rr.InsertReport(ctx, report); err != nil {
		return nil, err
	}

	return &report_dto.CreateReportResponse{
		ReportID:     report.ID,
		Title:        report.Title,
		Category:     report.Category,
		Status:       string(report.Status),
		Priority:     string(report.Priority),
		Municipality: report.Municipality,
		Ward:         report.Ward,
		CreatedAt:    report.CreatedAt,
	}, nil
}

func (s *ReportService) ListReports(ctx context.Context, filter report_dto.ReportListFilter) ([]*report_dto.ReportListItem, *dtos.PaginationMeta, *app_errors.AppError) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	reports, err := s.rr.ListReports(ctx, &filter)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.rr.CountReports(ctx, &filter)
	if err != nil {
		return nil, nil, err
	}

	var responses []*report_dto.ReportListItem
	for i := range reports {
		r := &reports[i]
		responses = append(responses, &report_dto.ReportListItem{
			ReportID:   r.ID,
			Title:      r.Title,
			Category:   r.Category,
			Status:     string(r.Status),
			Priority:   string(r.Priority),
			Assignee:   r.Assignee,
			Ward:       r.Ward,
			CreatedAt:  r.CreatedAt,
			ResolvedAt: r.ResolvedAt,
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	paginationMeta := &dtos.PaginationMeta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	return responses, paginationMeta, nil
}

func (s *ReportService) GetReportDetails(ctx context.Context, reportID string) (*report_dto.ReportDetailResponse, *app_errors.AppError) {
	report, err := s.rr.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	notes, err := s.ar.ListNotes(ctx, reportID, entity.KindReport)
	if err != nil {
		return nil, err
	}

	noteItems := make([]report_dto.ReportNoteItem, 0, len(notes))
	for _, n := range notes {
		noteItems = append(noteItems, report_dto.ReportNoteItem{
			NoteID:    n.ID,
			Text:      n.Text,
			AuthorID:  n.AuthorID,
			CreatedAt: n.CreatedAt,
		})
	}

	return &report_dto.ReportDetailResponse{
		ReportID:     report.ID,
		Title:        report.Title,
		Description:  report.Description,
		Category:     report.Category,
		Location:     report.Location,
		ImageURL:     report.ImageURL,
		Status:       string(report.Status),
		Priority:     string(report.Priority),
		Assignee:     report.Assignee,
		AssignedBy:   report.AssignedBy,
		AssignedAt:   report.AssignedAt,
		ResolvedAt:   report.ResolvedAt,
		District:     report.District,
		Municipality: report.Municipality,
		Ward:         report.Ward,
		Department:   report.Department,
		ReporterID:   report.ReporterID,
		Notes:        noteItems,
		CreatedAt:    report.CreatedAt,
	}, nil
}
