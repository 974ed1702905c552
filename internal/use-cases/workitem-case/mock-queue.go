package workitem_case

import (
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/queue"
	worker_task "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/tasks"
	"github.com/stretchr/testify/mock"
)

var _ queue.TaskQueueContract = (*MockTaskQueue)(nil)

type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueStatusChangeNotify(payload *worker_task.StatusChangeNotifyPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueAssignmentNotify(payload *worker_task.AssignmentNotifyPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueResolutionEffects(payload *worker_task.ResolutionEffectsPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
