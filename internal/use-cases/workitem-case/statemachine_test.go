package workitem_case

import (
	"testing"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestCheckTransition_ReportEdges(t *testing.T) {
	cases := []struct {
		name    string
		current entity.WorkItemStatus
		next    entity.WorkItemStatus
		errType string
	}{
		{"submitted to acknowledged", entity.StatusSubmitted, entity.StatusAcknowledged, ""},
		{"submitted to rejected", entity.StatusSubmitted, entity.StatusRejected, ""},
		{"assigned to in_progress", entity.StatusAssigned, entity.StatusInProgress, ""},
		{"in_progress to resolved", entity.StatusInProgress, entity.StatusResolved, ""},
		{"in_progress to closed", entity.StatusInProgress, entity.StatusClosed, ""},
		{"submitted to resolved", entity.StatusSubmitted, entity.StatusResolved, app_errors.ErrInvalidTransition},
		{"acknowledged to in_progress", entity.StatusAcknowledged, entity.StatusInProgress, app_errors.ErrInvalidTransition},
		{"resolved is terminal", entity.StatusResolved, entity.StatusClosed, app_errors.ErrTerminalState},
		{"rejected is terminal", entity.StatusRejected, entity.StatusAcknowledged, app_errors.ErrTerminalState},
		{"closed is terminal", entity.StatusClosed, entity.StatusInProgress, app_errors.ErrTerminalState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkTransition(entity.KindReport, tc.current, tc.next)
			if tc.errType == "" {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
				assert.Equal(t, tc.errType, err.Type)
			}
		})
	}
}

func TestCheckTransition_TaskEdges(t *testing.T) {
	cases := []struct {
		name    string
		current entity.WorkItemStatus
		next    entity.WorkItemStatus
		errType string
	}{
		{"assigned to in_progress", entity.StatusAssigned, entity.StatusInProgress, ""},
		{"in_progress to completed", entity.StatusInProgress, entity.StatusCompleted, ""},
		{"submitted to cancelled", entity.StatusSubmitted, entity.StatusCancelled, ""},
		{"submitted to completed", entity.StatusSubmitted, entity.StatusCompleted, app_errors.ErrInvalidTransition},
		{"assigned to completed", entity.StatusAssigned, entity.StatusCompleted, app_errors.ErrInvalidTransition},
		{"completed is terminal", entity.StatusCompleted, entity.StatusInProgress, app_errors.ErrTerminalState},
		{"cancelled is terminal", entity.StatusCancelled, entity.StatusInProgress, app_errors.ErrTerminalState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkTransition(entity.KindTask, tc.current, tc.next)
			if tc.errType == "" {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
				assert.Equal(t, tc.errType, err.Type)
			}
		})
	}
}

func TestMirrorStatus(t *testing.T) {
	mirrored, ok := mirrorStatus(entity.KindReport, entity.StatusResolved)
	assert.True(t, ok)
	assert.Equal(t, entity.StatusCompleted, mirrored)

	mirrored, ok = mirrorStatus(entity.KindReport, entity.StatusClosed)
	assert.True(t, ok)
	assert.Equal(t, entity.StatusCancelled, mirrored)

	mirrored, ok = mirrorStatus(entity.KindTask, entity.StatusCompleted)
	assert.True(t, ok)
	assert.Equal(t, entity.StatusResolved, mirrored)

	mirrored, ok = mirrorStatus(entity.KindTask, entity.StatusCancelled)
	assert.True(t, ok)
	assert.Equal(t, entity.StatusClosed, mirrored)

	_, ok = mirrorStatus(entity.KindReport, entity.StatusAcknowledged)
	assert.False(t, ok)
}
