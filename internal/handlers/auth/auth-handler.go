package auth_handlers

import (
	auth_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/auth-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers"
	internal_i18n "github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	auth_case "github.com/Bharani-dharan-k/civic-main-sub000/internal/use-cases/auth-case"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type AuthHandler struct {
	validator *validator.Validate
	service   auth_case.AuthServiceContract
	i18n      internal_i18n.Service
}

func NewAuthHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService, paseto *utils.PasetoMaker) *AuthHandler {
	validate := validator.New()
	return &AuthHandler{
		validator: validate,
		i18n:      i18n,
		service:   auth_case.NewAuthService(db, redis, paseto),
	}
}

func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var req auth_dto.LoginRequest

	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}
	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	ua := c.Get("User-Agent")
	if ua == "" {
		ua = "Unknown-Test-Client"
	}

	loginMetadata := auth_dto.LoginMetadata{
		UserAgent: ua,
		Device:    detectDeviceType(ua),
		IP:        c.IP(),
	}

	resp, err := h.service.LoginUser(c.Context(), req, loginMetadata)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_login", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// LogoutUser needs no body; the session jti comes from the auth middleware.
func (h *AuthHandler) LogoutUser(c *fiber.Ctx) error {
	jti, ok := c.Locals("jti").(string)
	if !ok || jti == "" {
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	if err := h.service.LogoutUser(c.Context(), jti); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_logout", nil), struct{}{}, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
