package report_handlers

import (
	"strings"

	report_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/report-dto"
	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers"
	internal_i18n "github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	report_case "github.com/Bharani-dharan-k/civic-main-sub000/internal/use-cases/report-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportHandler struct {
	validator *validator.Validate
	service   report_case.ReportServiceContract
	i18n      internal_i18n.Service
}

func NewReportHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *ReportHandler {
	validate := validator.New()
	validate.RegisterValidation("reportCategory", report_dto.IsValidReportCategory)
	validate.RegisterValidation("itemStatus", workitem_dto.IsValidItemStatus)
	validate.RegisterValidation("itemPriority", workitem_dto.IsValidItemPriority)
	return &ReportHandler{
		validator: validate,
		service:   report_case.NewReportService(db),
		i18n:      i18n,
	}
}

func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var req *report_dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	if req.Priority != nil {
		s := handlers.NormalizeStatusCase(*req.Priority)
		req.Priority = &s
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CreateReport(c.Context(), userID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_report", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	var filters report_dto.ReportListFilter
	if err := c.QueryParser(&filters); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if filters.Status != nil {
		s := handlers.NormalizeStatusCase(*filters.Status)
		filters.Status = &s
	}
	if filters.Limit == 0 {
		filters.Limit = 20
	} else if filters.Limit > 100 {
		filters.Limit = 100
	}

	if filters.Page == 0 {
		filters.Page = 1
	} else if filters.Page > 100 {
		filters.Page = 100
	}

	if err := h.validator.Struct(filters); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, paging, err := h.service.ListReports(c.Context(), filters)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=10")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_reports", nil), resp, reqID, paging)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *ReportHandler) GetReportDetails(c *fiber.Ctx) error {
	if _, err := handlers.GetUserID(c); err != nil {
		return err
	}

	reportID, err := handlers.GetParamReportID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetReportDetails(c.Context(), reportID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_report_detail", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
