package user_case

import (
	"context"
	"fmt"
	"time"

	user_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/user-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	user_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/user-repo"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type UserService struct {
	redis *redis.Client
	repo  user_repo.UserRepoContract
}

func NewUserService(db *pgxpool.Pool, redis *redis.Client) UserServiceContract {
	return &UserService{
		redis: redis,
		repo:  user_repo.NewUserRepo(db),
	}
}

// UserSelfProfile reads through a short-lived Redis cache. Redis is a cache
// here, not a source of truth; cache errors fall back to the database. Points
// can lag up to the TTL after a resolution credits them.
func (s *UserService) UserSelfProfile(ctx context.Context, userID string) (*user_dto.UserProfileResponse, *app_errors.AppError) {
	redisKey := fmt.Sprintf("user_profile:%s", userID)
	cachedData, cachedErr := utils.GetCacheData[user_dto.UserProfileResponse](ctx, s.redis, redisKey)
	if cachedData != nil && cachedErr == nil {
		return cachedData, nil
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &user_dto.UserProfileResponse{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         string(user.Role),
		Points:       user.Points,
		District:     user.District,
		Municipality: user.Municipality,
		Ward:         user.Ward,
		Department:   user.Department,
		CreatedAt:    user.CreatedAt,
	}

	// linked roster row, if any
	worker, err := s.repo.GetWorkerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if worker != nil {
		resp.EmployeeCode = &worker.EmployeeCode
	}

	if err := utils.SetCacheData(ctx, s.redis, redisKey, resp, 15*time.Minute); err != nil {
		log.Error().Err(err.Err).Msg("An Error occured when trying to set profile cache")
		return nil, err
	}

	return resp, nil
}
