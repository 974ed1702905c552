package handlers

import (
	"strings"
	"unicode"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos"
	notification_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/notification-dto"
	report_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/report-dto"
	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse builds the standardized WebResponse envelope.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

func GetUserID(c *fiber.Ctx) (string, *app_errors.AppError) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return userID, nil
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

// GetParamItemRef pulls the kind-prefixed work item reference from the path.
func GetParamItemRef(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param workitem_dto.ParamItemRef
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.Ref, nil
}

func GetParamReportID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param report_dto.ParamReportID
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

func GetParamNotificationID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param notification_dto.ParamNotificationID
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

// NormalizeStatusCase maps loose client casing ("in progress", "IN_PROGRESS")
// onto the canonical Title_Case status spelling.
func NormalizeStatusCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")

	words := strings.Split(s, "_")
	for i, word := range words {
		if len(word) > 0 {
			runes := []rune(word)
			runes[0] = unicode.ToUpper(runes[0])
			words[i] = string(runes)
		}
	}

	return strings.Join(words, "_")
}
