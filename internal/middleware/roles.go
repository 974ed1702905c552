package middleware

import (
	"slices"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	"github.com/gofiber/fiber/v2"
)

// RequireRoles checks the "role" context local against the allowed set.
// Missing role is a 401; a role outside the set is a 403.
func RequireRoles(allowedRoles ...entity.UserRole) fiber.Handler {
	allowed := make([]string, 0, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed = append(allowed, string(r))
	}

	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "No access, no role found.",
				},
			})
		}

		if slices.Contains(allowed, role) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status": "error",
			"error": dtos.ErrorResponse{
				Code:    fiber.StatusForbidden,
				Message: "You are not allowed to access this resource.",
			},
		})
	}
}

// RequireAdminTier admits any role above the citizen/worker tier. Scope and
// seniority checks stay in the services; this only gates the route.
func RequireAdminTier() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "No access, no role found.",
				},
			})
		}

		if entity.UserRole(role).IsAdminTier() {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status": "error",
			"error": dtos.ErrorResponse{
				Code:    fiber.StatusForbidden,
				Message: "You are not allowed to access this resource.",
			},
		})
	}
}
