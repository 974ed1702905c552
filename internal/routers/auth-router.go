package routers

import (
	auth_handlers "github.com/Bharani-dharan-k/civic-main-sub000/internal/handlers/auth"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/middleware"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func AuthRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/auth")
	authHandler := auth_handlers.NewAuthHandler(db, redis, i18n, paseto)
	r.Post("/login", authHandler.LoginUser)
	r.Delete("/logout", middleware.AuthMiddleware(paseto, redis), authHandler.LogoutUser)
}
