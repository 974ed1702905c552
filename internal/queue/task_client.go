package queue

import (
	worker_task "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type TaskQueueContract interface {
	EnqueueStatusChangeNotify(payload *worker_task.StatusChangeNotifyPayload) error
	EnqueueAssignmentNotify(payload *worker_task.AssignmentNotifyPayload) error
	EnqueueResolutionEffects(payload *worker_task.ResolutionEffectsPayload) error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) TaskQueueContract {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueStatusChangeNotify(payload *worker_task.StatusChangeNotifyPayload) error {
	log.Info().Msg("Preparing enqueueing payload.")
	p, _ := json.Marshal(payload)
	task := asynq.NewTask(worker_task.TaskNotifyStatusChange, p, asynq.Queue("notify"), asynq.MaxRetry(5))

	_, err := q.client.Enqueue(task)
	return err
}

func (q *TaskQueue) EnqueueAssignmentNotify(payload *worker_task.AssignmentNotifyPayload) error {
	log.Info().Msg("Preparing enqueueing payload.")
	p, _ := json.Marshal(payload)
	task := asynq.NewTask(worker_task.TaskNotifyAssignment, p, asynq.Queue("notify"), asynq.MaxRetry(5))

	_, err := q.client.Enqueue(task)
	return err
}

func (q *TaskQueue) EnqueueResolutionEffects(payload *worker_task.ResolutionEffectsPayload) error {
	log.Info().Msg("Preparing enqueueing payload.")
	p, _ := json.Marshal(payload)
	// points award rides on retries until the flag flips, so keep a generous cap
	task := asynq.NewTask(worker_task.TaskResolutionEffects, p, asynq.Queue("default"), asynq.MaxRetry(10))

	_, err := q.client.Enqueue(task)
	return err
}
