package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// HealthRouter registers health and readiness endpoints.
func HealthRouter(app fiber.Router, db *pgxpool.Pool, redis *redis.Client) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "Health-OK",
			"message": "Service is alive.",
		})
	})
	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Alive.")
	})
	app.Get("/readyz", func(c *fiber.Ctx) error {
		if err := redis.Ping(c.Context()).Err(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "failed",
				"error":  "Redis is not ready.",
			})
		}

		if err := db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "failed",
				"error":  "Database is not ready.",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ready",
			"message": "Database and app are ready to serve.",
		})
	})
}
