package auth_case

import (
	"context"
	"fmt"
	"time"

	auth_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/auth-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	user_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/user-repo"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const sessionTTL = 15 * time.Minute

type AuthService struct {
	redis  *redis.Client
	paseto *utils.PasetoMaker
	repo   user_repo.UserRepoContract
}

func NewAuthService(db *pgxpool.Pool, redis *redis.Client, paseto *utils.PasetoMaker) AuthServiceContract {
	return &AuthService{
		repo:   user_repo.NewUserRepo(db),
		redis:  redis,
		paseto: paseto,
	}
}

// LoginUser authenticates by email, issues a paseto token and records the
// session in Redis under session:<jti>. Accounts are provisioned by admins,
// so a missing user and a bad password both read as unauthorized.
func (s *AuthService) LoginUser(ctx context.Context, req auth_dto.LoginRequest, loginMeta auth_dto.LoginMetadata) (*auth_dto.LoginResponse, *app_errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		log.Debug().Msg("Login attempt for unknown email")
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", err.Err)
	}

	if isValid, hashErr := utils.VerifyHash(user.PasswordHash, req.Password); !isValid || hashErr != nil {
		log.Debug().Str("user_id", user.ID).Msg("Password verification failed")
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", hashErr)
	}

	if !user.IsActive {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "auth.inactive_account", nil)
	}

	sessionID, sessionErr := uuid.NewV7()
	if sessionErr != nil {
		log.Error().Err(sessionErr).Msg("An Error occured when trying to generate uuid v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", sessionErr)
	}

	token, pasetoErr := s.paseto.CreateToken(user.ID, user.Name, string(user.Role), sessionID.String(), sessionTTL)
	if pasetoErr != nil {
		log.Error().Err(pasetoErr).Msg("An Error occured when trying to generate paseto token")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", pasetoErr)
	}

	if loginMeta.Device == "" {
		loginMeta.Device = "Unknown Device"
	}

	redisKey := fmt.Sprintf("session:%s", sessionID)
	session := &SessionTracker{
		JTI:       sessionID.String(),
		UserID:    user.ID,
		Role:      string(user.Role),
		Token:     token,
		Device:    loginMeta.Device,
		UserAgent: loginMeta.UserAgent,
		IP:        loginMeta.IP,
		LoginAt:   time.Now().Format(time.RFC3339),
	}
	utils.SetCacheData(ctx, s.redis, redisKey, session, sessionTTL)

	sessionListKey := fmt.Sprintf("user_sessions:%s", user.ID)
	s.redis.SAdd(ctx, sessionListKey, session.JTI)

	return &auth_dto.LoginResponse{
		Token:     token,
		UserID:    user.ID,
		Name:      user.Name,
		Role:      string(user.Role),
		ExpiresAt: time.Now().Add(sessionTTL),
	}, nil
}

// LogoutUser drops the session record and its membership in the per-user set.
func (s *AuthService) LogoutUser(ctx context.Context, sessionID string) *app_errors.AppError {
	sessionKey := fmt.Sprintf("session:%s", sessionID)

	session, err := utils.GetCacheData[SessionTracker](ctx, s.redis, sessionKey)
	if err != nil || session == nil {
		// session already ended or never existed
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	if err := utils.DeleteCacheData(ctx, s.redis, sessionKey); err != nil {
		log.Error().Err(err).Msg("An Error occured when trying to delete session cache")
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	userSessionKey := fmt.Sprintf("user_sessions:%s", session.UserID)
	if err := s.redis.SRem(ctx, userSessionKey, session.JTI).Err(); err != nil {
		log.Error().Err(err).Msg("An Error occured when trying to prune session set")
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}
