package report_case

import (
	"context"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos"
	report_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/report-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type ReportServiceContract interface {
	CreateReport(ctx context.Context, reporterID string, req *report_dto.CreateReportRequest) (*report_dto.CreateReportResponse, *app_errors.AppError)
	ListReports(ctx context.Context, filter report_dto.ReportListFilter) ([]*report_dto.ReportListItem, *dtos.PaginationMeta, *app_errors.AppError)
	GetReportDetails(ctx context.Context, reportID string) (*report_dto.ReportDetailResponse, *app_errors.AppError)
}
