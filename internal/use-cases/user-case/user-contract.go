package user_case

import (
	"context"

	user_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/user-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type UserServiceContract interface {
	UserSelfProfile(ctx context.Context, userID string) (*user_dto.UserProfileResponse, *app_errors.AppError)
}
