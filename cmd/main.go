package main

// Entry point of the civic workflow API server. Loads configuration, sets up
// the Postgres and Redis pools, the paseto token maker and the Fiber app with
// its middleware stack, then serves until SIGINT/SIGTERM.

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/config"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/db"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/i18n"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/middleware"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/routers"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	i18nSvc := i18n.NewInitI18nService()
	cfg := config.LoadConfig()

	dbPool := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Redis pool")
	}

	paseto, err := utils.NewPasetoMaker(cfg.APP_SECRET.Paseto.HexKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize paseto maker")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	cfgStorage := routers.CfgRedisStorage{
		Host:     cfg.DATABASE.Redis.Addr,
		Password: cfg.DATABASE.Redis.Password,
	}
	routers.SetupRoutes(app, dbPool, redisPool, i18nSvc, paseto, cfgStorage)

	go func() {
		log.Info().Msgf("Starting %s on port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("Server closed gracefully.")
			} else {
				log.Fatal().Err(err).Msgf("Server failed to start, %v", err)
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown signal received... preparing to stop.")

	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("Redis pool closed.")
	}

	if dbPool != nil {
		dbPool.Close()
		log.Info().Msg("DB pool closed.")
	}

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msgf("Error during shutdown: %v", err)
	}
	log.Info().Msg("Server shut down gracefully.")
}
