package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// RequestIDMiddleware attaches a unique request id unless the caller already
// sent one.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			id, err := gonanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate request id: %w", err)
			}
			requestID = fmt.Sprintf("CV-%s", id)
		}

		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)

		return c.Next()
	}
}
