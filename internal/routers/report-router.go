package routers

import (
	report_handlers "github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers/report"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/middleware"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func ReportRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/reports", middleware.AuthMiddleware(paseto, redis))
	reportHandler := report_handlers.NewReportHandler(db, i18n)

	r.Post("/create", reportHandler.CreateReport)
	r.Get("/list", reportHandler.ListReports)
	r.Get("/:report_id", reportHandler.GetReportDetails)
}
