package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AcceptLanguageMiddleware stores the primary Accept-Language tag in locals.
// In practice the header looks like "hi-IN,hi;q=0.9,en-US;q=0.8,en;q=0.7".
func AcceptLanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("Accept-Language", "en")
		lang := strings.Split(raw, ",")[0]
		lang = strings.Split(lang, "-")[0]
		c.Locals("lang", lang)
		return c.Next()
	}
}
