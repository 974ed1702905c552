package routers

import (
	notification_handlers "github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers/notification"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/middleware"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func NotificationRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/notifications", middleware.AuthMiddleware(paseto, redis))
	notificationHandler := notification_handlers.NewNotificationHandler(db, redis, i18n)

	r.Get("/list", notificationHandler.ListNotifications)
	r.Get("/unread-count", notificationHandler.UnreadCount)
	r.Patch("/:notification_id/read", notificationHandler.MarkRead)
}
