package worker

import (
	"context"

	worker_handler "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/handlers"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func RunWorker(ctx context.Context, redis *redis.Client, handler *worker_handler.WorkerHandler) error {
	srv := NewWorkerServer(redis)
	scheduler := NewScheduler(redis)

	mux := asynq.NewServeMux()
	RegisterWorkerHandlers(mux, handler)

	if err := RegisterCronJobs(scheduler); err != nil {
		return err
	}

	// Run scheduler
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Error().Err(err).Msg("scheduler error")
		}
	}()

	// Run worker
	go func() {
		if err := srv.Run(mux); err != nil {
			log.Error().Err(err).Msg("worker server error")
		}
	}()

	// wait for shutdown
	<-ctx.Done()
	log.Info().Msg("shutting down worker server...")

	scheduler.Shutdown()
	srv.Shutdown()

	return nil
}
