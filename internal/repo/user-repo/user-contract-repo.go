package user_repo

import (
	"context"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type UserRepoContract interface {
	GetUserByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError)
	GetUserByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError)
	// GetWorkerByCode returns (nil, nil) when the code is not on the roster.
	GetWorkerByCode(ctx context.Context, employeeCode string) (*entity.WorkerEntity, *app_errors.AppError)
	// GetWorkerByUserID returns (nil, nil) when the user has no roster row.
	GetWorkerByUserID(ctx context.Context, userID string) (*entity.WorkerEntity, *app_errors.AppError)
	// CreditPoints adds to the user's balance inside the caller's transaction.
	CreditPoints(ctx context.Context, t tx.Tx, userID string, amount int) *app_errors.AppError
}
