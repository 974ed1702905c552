package notification_repo

import (
	"context"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepo(db *pgxpool.Pool) NotificationRepoContract {
	return &NotificationRepo{
		db: db,
	}
}

func (r *NotificationRepo) InsertNotification(ctx context.Context, n *entity.NotificationEntity) *app_errors.AppError {
	query := `
	INSERT INTO notifications (
		id,
		recipient_id,
		title,
		message,
		category,
		related_item,
		read,
		created_at
	) VALUES (
		$1,$2,$3,$4,$5,$6,FALSE,$7
	);
	`

	if _, err := r.db.Exec(ctx, query, n.ID, n.RecipientID, n.Title, n.Message,
		n.Category, n.RelatedItem, n.CreatedAt); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *NotificationRepo) ListForRecipient(ctx context.Context, recipientID string, unreadOnly bool, page, limit int) ([]entity.NotificationEntity, *app_errors.AppError) {
	query := `
	SELECT id, recipient_id, title, message, category, related_item, read, created_at
	FROM notifications
	WHERE recipient_id = $1
	`
	if unreadOnly {
		query += " AND read = FALSE"
	}
	query += " ORDER BY created_at DESC LIMIT $2 OFFSET $3;"

	offset := (page - 1) * limit
	rows, err := r.db.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var results []entity.NotificationEntity
	for rows.Next() {
		var n entity.NotificationEntity
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Title, &n.Message, &n.Category,
			&n.RelatedItem, &n.Read, &n.CreatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		results = append(results, n)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *NotificationRepo) CountForRecipient(ctx context.Context, recipientID string, unreadOnly bool) (int64, *app_errors.AppError) {
	query := `
	SELECT COUNT(*) FROM notifications
	WHERE recipient_id = $1
	`
	if unreadOnly {
		query += " AND read = FALSE"
	}

	var count int64
	if err := r.db.QueryRow(ctx, query+";", recipientID).Scan(&count); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return count, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID, recipientID string) *app_errors.AppError {
	query := `
	UPDATE notifications
	SET read = TRUE
	WHERE id = $1
		AND recipient_id = $2;
	`

	tag, err := r.db.Exec(ctx, query, notificationID, recipientID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "notification.not_found", nil)
	}

	return nil
}

func (r *NotificationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, *app_errors.AppError) {
	query := `
	DELETE FROM notifications
	WHERE created_at < $1;
	`

	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return tag.RowsAffected(), nil
}
