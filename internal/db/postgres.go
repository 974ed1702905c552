package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// ConnectPool sets up a pgx connection pool for the service.
func ConnectPool(dsn string) *pgxpool.Pool {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Err(err).Msg("Failed to parse database DSN")
		return nil
	}

	cfg.MaxConns = 20
	cfg.MinConns = 5
	cfg.MaxConnIdleTime = time.Hour
	cfg.HealthCheckPeriod = time.Minute * 5

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Err(err).Msg("Failed to create database pool")
		return nil
	}

	return pool
}
