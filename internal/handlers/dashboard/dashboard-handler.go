package dashboard_handlers

import (
	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers"
	internal_i18n "github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	dashboard_case "github.com/Bharani-dharan-k/civic-main-sub000/internal/use-cases/dashboard-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardHandler struct {
	validator *validator.Validate
	service   dashboard_case.DashboardServiceContract
	i18n      internal_i18n.Service
}

func NewDashboardHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *DashboardHandler {
	validate := validator.New()
	validate.RegisterValidation("itemStatus", workitem_dto.IsValidItemStatus)
	return &DashboardHandler{
		validator: validate,
		service:   dashboard_case.NewDashboardService(db),
		i18n:      i18n,
	}
}

// ListAssignedWorkItems returns the caller's merged report and task queue.
func (h *DashboardHandler) ListAssignedWorkItems(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var filter workitem_dto.UnifiedListFilter
	if err := c.QueryParser(&filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if filter.Status != nil {
		s := handlers.NormalizeStatusCase(*filter.Status)
		filter.Status = &s
	}

	if err := h.validator.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListWorkItemsForAssignee(c.Context(), userID, filter)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=10")
	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_work_items", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *DashboardHandler) GetWorkItemStats(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetWorkItemStats(c.Context(), userID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_work_item_stats", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
