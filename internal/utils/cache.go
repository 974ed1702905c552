package utils

import (
	"context"
	"time"

	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// GetCacheData reads a key from Redis and unmarshals it into T. A cache miss
// returns (nil, nil); stored values are expected to be JSON.
func GetCacheData[T any](ctx context.Context, rdb *redis.Client, cacheKey string) (*T, *app_errors.AppError) {
	val, err := rdb.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		return nil, nil // cache miss
	} else if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	var data T
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return &data, nil
}

// SetCacheData marshals data as JSON and stores it with the given expiry.
func SetCacheData[T any](ctx context.Context, rdb *redis.Client, cacheKey string, data *T, expire time.Duration) *app_errors.AppError {
	bytes, err := json.Marshal(data)
	if err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	if err := rdb.Set(ctx, cacheKey, bytes, expire).Err(); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}

// DeleteCacheData removes the key; deleting a missing key is not an error.
func DeleteCacheData(ctx context.Context, rdb *redis.Client, cacheKey string) error {
	return rdb.Del(ctx, cacheKey).Err()
}
