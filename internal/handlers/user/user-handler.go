package user_handlers

import (
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers"
	internal_i18n "github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	user_case "github.com/Bharani-dharan-k/civic-main-sub000/internal/use-cases/user-case"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type UserHandler struct {
	service user_case.UserServiceContract
	i18n    internal_i18n.Service
}

func NewUserHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *UserHandler {
	return &UserHandler{
		service: user_case.NewUserService(db, redis),
		i18n:    i18n,
	}
}

func (h *UserHandler) GetSelfProfile(c *fiber.Ctx) error {
	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.UserSelfProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_get_self", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
