package tx

import (
	"context"

	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

type Tx interface {
	Commit(ctx context.Context) *app_errors.AppError
	Rollback(ctx context.Context) *app_errors.AppError
}

type TxManager interface {
	Begin(ctx context.Context) (Tx, *app_errors.AppError)
}
