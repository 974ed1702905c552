package workitem_case

import (
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
)

// Assigned is reachable only through the assignment router, so it never
// appears as a target in these tables.
var reportTransitions = map[entity.WorkItemStatus][]entity.WorkItemStatus{
	entity.StatusSubmitted:    {entity.StatusAcknowledged, entity.StatusRejected, entity.StatusClosed},
	entity.StatusAcknowledged: {entity.StatusRejected, entity.StatusClosed},
	entity.StatusAssigned:     {entity.StatusInProgress, entity.StatusRejected, entity.StatusClosed},
	entity.StatusInProgress:   {entity.StatusResolved, entity.StatusRejected, entity.StatusClosed},
}

var taskTransitions = map[entity.WorkItemStatus][]entity.WorkItemStatus{
	entity.StatusSubmitted:  {entity.StatusCancelled},
	entity.StatusAssigned:   {entity.StatusInProgress, entity.StatusCancelled},
	entity.StatusInProgress: {entity.StatusCompleted, entity.StatusCancelled},
}

func transitionTable(kind entity.WorkItemKind) map[entity.WorkItemStatus][]entity.WorkItemStatus {
	if kind == entity.KindTask {
		return taskTransitions
	}
	return reportTransitions
}

// checkTransition validates current -> next for the given kind. Terminal
// states always refuse before the table is consulted, states are never
// silently clamped.
func checkTransition(kind entity.WorkItemKind, current, next entity.WorkItemStatus) *app_errors.AppError {
	if current.IsTerminal() {
		return app_errors.NewTerminalStateViolation(string(current), string(next))
	}
	for _, allowed := range transitionTable(kind)[current] {
		if allowed == next {
			return nil
		}
	}
	return app_errors.NewInvalidTransition(string(current), string(next))
}

// mirrorStatus maps a transition onto the other half of a derived
// report/task pair. ok is false when nothing propagates.
func mirrorStatus(from entity.WorkItemKind, next entity.WorkItemStatus) (entity.WorkItemStatus, bool) {
	if from == entity.KindReport {
		switch next {
		case entity.StatusInProgress:
			return entity.StatusInProgress, true
		case entity.StatusResolved:
			return entity.StatusCompleted, true
		case entity.StatusClosed, entity.StatusRejected:
			return entity.StatusCancelled, true
		}
		return "", false
	}
	switch next {
	case entity.StatusInProgress:
		return entity.StatusInProgress, true
	case entity.StatusCompleted:
		return entity.StatusResolved, true
	case entity.StatusCancelled:
		return entity.StatusClosed, true
	}
	return "", false
}
