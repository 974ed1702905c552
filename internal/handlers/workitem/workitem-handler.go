package workitem_handlers

import (
	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers"
	internal_i18n "github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	workitem_case "github.com/Bharani-dharan-k/civic-main-sub000/internal/use-cases/workitem-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type WorkItemHandler struct {
	validator *validator.Validate
	service   workitem_case.WorkItemServiceContract
	i18n      internal_i18n.Service
}

func NewWorkItemHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *WorkItemHandler {
	validate := validator.New()
	validate.RegisterValidation("itemStatus", workitem_dto.IsValidItemStatus)
	validate.RegisterValidation("itemPriority", workitem_dto.IsValidItemPriority)
	validate.RegisterValidation("assigneeRef", workitem_dto.IsValidAssigneeRef)
	return &WorkItemHandler{
		validator: validate,
		service:   workitem_case.NewWorkItemService(db, redis),
		i18n:      i18n,
	}
}

// AssignWorkItem is the single entry point into the Assigned state for both
// kinds of work item.
func (h *WorkItemHandler) AssignWorkItem(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	itemRef, err := handlers.GetParamItemRef(c, h.validator)
	if err != nil {
		return err
	}

	var req *workitem_dto.AssignWorkItemRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if req.Priority != nil {
		s := handlers.NormalizeStatusCase(*req.Priority)
		req.Priority = &s
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.AssignWorkItem(c.Context(), userID, itemRef, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_assign_item", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *WorkItemHandler) TransitionStatus(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	itemRef, err := handlers.GetParamItemRef(c, h.validator)
	if err != nil {
		return err
	}

	var req *workitem_dto.TransitionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	req.Status = handlers.NormalizeStatusCase(req.Status)

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.TransitionStatus(c.Context(), userID, itemRef, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_transition", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *WorkItemHandler) CreateTask(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var req *workitem_dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if req.Priority != nil {
		s := handlers.NormalizeStatusCase(*req.Priority)
		req.Priority = &s
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CreateTask(c.Context(), userID, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_task", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *WorkItemHandler) AddNote(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	itemRef, err := handlers.GetParamItemRef(c, h.validator)
	if err != nil {
		return err
	}

	var req *workitem_dto.AddNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.AddNote(c.Context(), userID, itemRef, req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_add_note", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *WorkItemHandler) ListItemEvents(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	itemRef, err := handlers.GetParamItemRef(c, h.validator)
	if err != nil {
		return err
	}

	var filter workitem_dto.WorkItemEventFilter
	if err := c.QueryParser(&filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListItemEvents(c.Context(), userID, itemRef, filter)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_events", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
