package worker_handler

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func (wh *WorkerHandler) NotificationRetentionHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Info().Msg("Worker handler: Notification retention hit.")
		cutoff := time.Now().AddDate(0, 0, -wh.retentionDays)

		removed, appErr := wh.nr.DeleteOlderThan(ctx, cutoff)
		if appErr != nil {
			log.Error().Err(appErr).Msg("Worker handler: Failed to delete stale notifications")
			return appErr
		}

		if removed > 0 {
			log.Info().Int64("removed", removed).Msg("Worker handler: Stale notifications removed")
		}

		return nil
	}
}
