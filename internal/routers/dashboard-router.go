package routers

import (
	dashboard_handlers "github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers/dashboard"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/middleware"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func DashboardRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/dashboard", middleware.AuthMiddleware(paseto, redis))
	dashboardHandler := dashboard_handlers.NewDashboardHandler(db, i18n)

	r.Get("/work-items", dashboardHandler.ListAssignedWorkItems)
	r.Get("/stats", dashboardHandler.GetWorkItemStats)
}
