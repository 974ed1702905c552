package user_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) UserRepoContract {
	return &UserRepo{
		db: db,
	}
}

const userColumns = `id, email, password_hash, name, role, points, district, municipality,
	ward, department, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.UserEntity, error) {
	var u entity.UserEntity
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Points,
		&u.District, &u.Municipality, &u.Ward, &u.Department, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt)
	return &u, err
}

func (r *UserRepo) GetUserByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM users
	WHERE id = $1;
	`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "user.not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return user, nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM users
	WHERE email = $1;
	`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "user.not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return user, nil
}

func (r *UserRepo) GetWorkerByCode(ctx context.Context, employeeCode string) (*entity.WorkerEntity, *app_errors.AppError) {
	query := `
	SELECT employee_code, user_id, name, department, district, municipality, ward, active, created_at
	FROM workers
	WHERE employee_code = $1
		AND active = TRUE;
	`

	var w entity.WorkerEntity
	if err := r.db.QueryRow(ctx, query, employeeCode).Scan(&w.EmployeeCode, &w.UserID, &w.Name,
		&w.Department, &w.District, &w.Municipality, &w.Ward, &w.Active, &w.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}

	return &w, nil
}

func (r *UserRepo) GetWorkerByUserID(ctx context.Context, userID string) (*entity.WorkerEntity, *app_errors.AppError) {
	query := `
	SELECT employee_code, user_id, name, department, district, municipality, ward, active, created_at
	FROM workers
	WHERE user_id = $1
		AND active = TRUE;
	`

	var w entity.WorkerEntity
	if err := r.db.QueryRow(ctx, query, userID).Scan(&w.EmployeeCode, &w.UserID, &w.Name,
		&w.Department, &w.District, &w.Municipality, &w.Ward, &w.Active, &w.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}

	return &w, nil
}

func (r *UserRepo) CreditPoints(ctx context.Context, t tx.Tx, userID string, amount int) *app_errors.AppError {
	query := `
	UPDATE users
	SET points = points + $1,
		updated_at = now()
	WHERE id = $2;
	`

	tag, err := tx.Unwrap(t).Exec(ctx, query, amount, userID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "user.not_found", nil)
	}

	return nil
}
