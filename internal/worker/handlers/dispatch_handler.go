package worker_handler

import (
	"context"
	"fmt"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	worker_task "github.com/Bharani-dharan-k/civic-main-sub000/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func (wh *WorkerHandler) StatusChangeNotifyHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Info().Msg("Worker handler: Status change notify hit.")
		var p worker_task.StatusChangeNotifyPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when trying to unmarshal task payload.")
			return err
		}

		title := fmt.Sprintf("%s is now %s", p.ItemTitle, p.NewStatus)
		message := fmt.Sprintf("Status of %s %q changed from %s to %s.",
			p.ItemKind, p.ItemTitle, p.OldStatus, p.NewStatus)

		for _, recipient := range p.Recipients {
			// the actor already knows what they did
			if recipient == p.ActorID {
				continue
			}
			n := &entity.NotificationEntity{
				ID:          uuid.Must(uuid.NewV7()).String(),
				RecipientID: recipient,
				Title:       title,
				Message:     message,
				Category:    entity.NotifyStatusChange,
				RelatedItem: &p.ItemID,
				CreatedAt:   time.Now(),
			}
			if err := wh.nr.InsertNotification(ctx, n); err != nil {
				log.Error().Err(err).Msg("Worker handler: Failed to insert notification")
				return err
			}
		}

		return nil
	}
}

func (wh *WorkerHandler) AssignmentNotifyHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Info().Msg("Worker handler: Assignment notify hit.")
		var p worker_task.AssignmentNotifyPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when trying to unmarshal task payload.")
			return err
		}

		ref, err := entity.ParseAssigneeRef(p.AssigneeRef)
		if err != nil {
			// malformed refs never become valid, drop instead of retrying
			log.Error().Err(err).Str("ref", p.AssigneeRef).Msg("Worker handler: Malformed assignee ref in payload")
			return nil
		}

		var recipientID, assigneeName, assigneeEmail string
		switch ref.Kind {
		case entity.AssigneeUserID:
			user, appErr := wh.ur.GetUserByID(ctx, ref.Value)
			if appErr != nil {
				if appErr.Type != app_errors.ErrNotFound {
					return appErr
				}
				// account removed after assignment; the reporter still gets told
				log.Warn().Str("user", ref.Value).Msg("Worker handler: Assigned user no longer exists")
			} else {
				recipientID = user.ID
				assigneeName = user.Name
				assigneeEmail = user.Email
			}
		case entity.AssigneeWorkerCode:
			worker, appErr := wh.ur.GetWorkerByCode(ctx, ref.Value)
			if appErr != nil {
				return appErr
			}
			if worker == nil {
				log.Warn().Str("code", ref.Value).Msg("Worker handler: Assigned worker left the roster")
			} else {
				assigneeName = worker.Name
				// roster rows without a linked account get no in-app notification
				if worker.UserID != nil {
					recipientID = *worker.UserID
				}
			}
		}

		if recipientID != "" {
			n := &entity.NotificationEntity{
				ID:          uuid.Must(uuid.NewV7()).String(),
				RecipientID: recipientID,
				Title:       fmt.Sprintf("New %s assigned to you", p.ItemKind),
				Message:     fmt.Sprintf("%q has been assigned to you with priority %s.", p.ItemTitle, p.Priority),
				Category:    entity.NotifyAssignment,
				RelatedItem: &p.ItemID,
				CreatedAt:   time.Now(),
			}
			if appErr := wh.nr.InsertNotification(ctx, n); appErr != nil {
				log.Error().Err(appErr).Msg("Worker handler: Failed to insert notification")
				return appErr
			}

			if assigneeEmail == "" {
				user, appErr := wh.ur.GetUserByID(ctx, recipientID)
				if appErr != nil {
					log.Error().Err(appErr).Msg("Worker handler: Failed to load assignee for email")
				} else {
					assigneeEmail = user.Email
				}
			}
			// the in-app copy is already written; mail stays best effort
			if assigneeEmail != "" {
				if mailErr := wh.mailer.SendAssignmentEmail(assigneeEmail, &p); mailErr != nil {
					log.Error().Err(mailErr).Msg("Worker handler: Failed to send assignment email")
				}
			}
		}

		if p.ItemKind != string(entity.KindReport) {
			return nil
		}

		// the reporter learns who is now on their report
		report, appErr := wh.rr.GetReportByID(ctx, p.ItemID)
		if appErr != nil {
			return appErr
		}
		if assigneeName == "" {
			assigneeName = p.AssigneeRef
		}
		rn := &entity.NotificationEntity{
			ID:          uuid.Must(uuid.NewV7()).String(),
			RecipientID: report.ReporterID,
			Title:       "A worker was assigned to your report",
			Message:     fmt.Sprintf("%s is now handling your report %q.", assigneeName, p.ItemTitle),
			Category:    entity.NotifyAssignment,
			RelatedItem: &p.ItemID,
			CreatedAt:   time.Now(),
		}
		if appErr := wh.nr.InsertNotification(ctx, rn); appErr != nil {
			log.Error().Err(appErr).Msg("Worker handler: Failed to insert notification")
			return appErr
		}

		return nil
	}
}

func (wh *WorkerHandler) ResolutionEffectsHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log.Info().Msg("Worker handler: Resolution effects hit.")
		var p worker_task.ResolutionEffectsPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when trying to unmarshal task payload.")
			return err
		}

		report, appErr := wh.rr.GetReportByID(ctx, p.ReportID)
		if appErr != nil {
			return appErr
		}

		// safety check, the enqueue happens after the transition commits
		if report.ResolvedAt == nil {
			return nil
		}

		points := entity.ResolutionPoints(report.Category, report.Priority)

		// the guard flag and the credit commit together; a failed credit rolls
		// the flag back so a redelivery can award again
		txn, appErr := wh.txm.Begin(ctx)
		if appErr != nil {
			return appErr
		}
		defer txn.Rollback(ctx)

		awarded, appErr := wh.rr.MarkPointsAwarded(ctx, txn, report.ID)
		if appErr != nil {
			return appErr
		}
		// idempotency: another delivery already flipped the flag
		if !awarded {
			return nil
		}

		if appErr := wh.ur.CreditPoints(ctx, txn, report.ReporterID, points); appErr != nil {
			log.Error().Err(appErr).Msg("Worker handler: Failed to credit reporter points")
			return appErr
		}

		if appErr := txn.Commit(ctx); appErr != nil {
			return appErr
		}

		message := fmt.Sprintf("Your report %q was resolved. You earned %d points.", report.Title, points)
		n := &entity.NotificationEntity{
			ID:          uuid.Must(uuid.NewV7()).String(),
			RecipientID: report.ReporterID,
			Title:       "Report resolved",
			Message:     message,
			Category:    entity.NotifyResolution,
			RelatedItem: &report.ID,
			CreatedAt:   time.Now(),
		}
		if appErr := wh.nr.InsertNotification(ctx, n); appErr != nil {
			log.Error().Err(appErr).Msg("Worker handler: Failed to insert notification")
		}

		reporter, appErr := wh.ur.GetUserByID(ctx, report.ReporterID)
		if appErr != nil {
			log.Error().Err(appErr).Msg("Worker handler: Failed to load reporter for email")
			return nil
		}

		if err := wh.mailer.SendResolutionEmail(reporter.Email, report.Title, points); err != nil {
			// points are already credited, do not retry the whole task for mail
			log.Error().Err(err).Msg("Worker handler: Failed to send resolution email")
		}

		return nil
	}
}
