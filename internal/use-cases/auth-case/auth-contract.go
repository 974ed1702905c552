package auth_case

import (
	"context"

	auth_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/auth-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type AuthServiceContract interface {
	LoginUser(ctx context.Context, req auth_dto.LoginRequest, loginMeta auth_dto.LoginMetadata) (*auth_dto.LoginResponse, *app_errors.AppError)
	LogoutUser(ctx context.Context, sessionID string) *app_errors.AppError
}
