package notification_handlers

import (
	notification_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/notification-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers"
	internal_i18n "github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	notification_case "github.com/Bharani-dharan-k/civic-main-sub000/internal/use-cases/notification-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type NotificationHandler struct {
	validator *validator.Validate
	service   notification_case.NotificationServiceContract
	i18n      internal_i18n.Service
}

func NewNotificationHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *NotificationHandler {
	return &NotificationHandler{
		validator: validator.New(),
		service:   notification_case.NewNotificationService(db, redis),
		i18n:      i18n,
	}
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	var filter notification_dto.NotificationListFilter
	if err := c.QueryParser(&filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, paging, err := h.service.ListNotifications(c.Context(), userID, filter)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_notifications", nil), resp, reqID, paging)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.UnreadCount(c.Context(), userID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_unread_count", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := handlers.GetParamNotificationID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Context(), userID, notificationID); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_mark_read", nil), struct{}{}, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}

	return nil
}
