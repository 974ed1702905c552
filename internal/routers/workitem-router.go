package routers

import (
	"fmt"
	"strings"
	"time"

	workitem_handlers "github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers/workitem"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/middleware"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func WorkItemRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfgStorage CfgRedisStorage) {
	r := api.Group("/work-items", middleware.AuthMiddleware(paseto, redis))
	workItemHandler := workitem_handlers.NewWorkItemHandler(db, redis, i18n)

	// redis storage for the fiber rate limiter
	redisAddr := strings.Split(redis.Options().Addr, ":")
	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     redisAddr[0],
		Password: redis.Options().Password,
		Port:     6379,
		Database: 1,
	})

	// assignment is the only way into the Assigned state; repeated reroutes of
	// the same item are rate limited per actor
	r.Post("/:item_ref/assign", middleware.RequireAdminTier(), limiter.New(limiter.Config{
		Max:        10,
		Expiration: 30 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			userID := c.Locals("user_id")
			itemRef := c.Params("item_ref")
			if userID == nil {
				return "assign:ip:" + c.IP() // fallback to ip
			}
			return fmt.Sprintf("assign:%v:%s", userID, itemRef)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "too_many_request",
			})
		},
		Storage: redisStore,
	}), workItemHandler.AssignWorkItem)

	r.Post("/:item_ref/status", workItemHandler.TransitionStatus)
	r.Post("/:item_ref/notes", workItemHandler.AddNote)
	r.Get("/:item_ref/events", workItemHandler.ListItemEvents)
	r.Post("/tasks/create", middleware.RequireAdminTier(), workItemHandler.CreateTask)
}
