package routers

import (
	user_handlers "github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers/user"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/middleware"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func UserRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/users", middleware.AuthMiddleware(paseto, redis))
	userHandler := user_handlers.NewUserHandler(db, redis, i18n)
	r.Get("/me", userHandler.GetSelfProfile)
}
