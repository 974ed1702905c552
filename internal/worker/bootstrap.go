package worker

import (
	"fmt"

	worker_handler "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/handlers"
	worker_task "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(
		worker_task.TaskNotifyStatusChange,
		h.StatusChangeNotifyHandler(),
	)
	mux.HandleFunc(
		worker_task.TaskNotifyAssignment,
		h.AssignmentNotifyHandler(),
	)
	mux.HandleFunc(
		worker_task.TaskResolutionEffects,
		h.ResolutionEffectsHandler(),
	)
	mux.HandleFunc(worker_task.TaskNotificationRetention, h.NotificationRetentionHandler())
}

func RegisterCronJobs(s *asynq.Scheduler) error {
	jobs := []struct {
		spec  string
		task  *asynq.Task
		queue string
		desc  string
	}{
		{
			spec:  "0 3 * * *",
			task:  asynq.NewTask(worker_task.TaskNotificationRetention, nil),
			queue: "low",
			desc:  "purge stale notifications",
		},
	}

	for _, job := range jobs {
		if _, err := s.Register(job.spec, job.task, asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
