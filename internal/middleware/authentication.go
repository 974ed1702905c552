package middleware

import (
	"fmt"
	"strings"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos"
	auth_case "github.com/Bharani-dharan-k/civic-main-sub000/internal/use-cases/auth-case"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware validates the Authorization header ("Bearer <token>"),
// verifies the paseto token and checks the session still lives in Redis.
// On success it sets the context locals: user_id, name, role, jti.
func AuthMiddleware(pasetoMaker *utils.PasetoMaker, redis *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Authorization header is missing",
				},
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Token format is wrong. Use Bearer <token>.",
				},
			})
		}

		token := parts[1]

		payload, err := pasetoMaker.VerifyToken(token)
		if err != nil {
			log.Err(err).Msg("Verification error")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Token is invalid or expired (1)", // 1 => token cannot be verified
				},
			})
		}

		device := c.Get("X-Device-Name")
		if device == "" {
			device = "Unknown Device"
		}

		// a logged-out session leaves no Redis record even while the token
		// itself is still within its TTL
		redisKey := fmt.Sprintf("session:%s", payload.JTI)
		session, _ := utils.GetCacheData[auth_case.SessionTracker](c.Context(), redis, redisKey)
		if session == nil || session.Token != token {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Token is invalid or expired (2)", // 2 => session no longer in Redis
				},
			})
		}

		c.Locals("user_id", payload.UserID)
		c.Locals("name", payload.Name)
		c.Locals("role", payload.Role)
		c.Locals("jti", payload.JTI)
		c.Locals("device_name", device)

		return c.Next()
	}
}
