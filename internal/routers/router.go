package routers

import (
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type CfgRedisStorage struct {
	Host     string
	Password string
}

// SetupRoutes wires up the API surface.
func SetupRoutes(app *fiber.App, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfgStorage CfgRedisStorage) {
	api := app.Group("/api/v1")

	AuthRouter(api, db, redis, i18n, paseto)
	UserRouter(api, db, redis, i18n, paseto)
	ReportRouter(api, db, redis, i18n, paseto)
	WorkItemRouter(api, db, redis, i18n, paseto, cfgStorage)
	DashboardRouter(api, db, redis, i18n, paseto)
	NotificationRouter(api, db, redis, i18n, paseto)
	HealthRouter(api, db, redis)
}
