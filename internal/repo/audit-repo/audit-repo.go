package audit_repo

import (
	"context"
	"fmt"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepo struct {
	db *pgxpool.Pool
}

func NewAuditRepo(db *pgxpool.Pool) AuditRepoContract {
	return &AuditRepo{
		db: db,
	}
}

func (r *AuditRepo) InsertNote(ctx context.Context, t tx.Tx, note *entity.WorkItemNote) *app_errors.AppError {
	query := `
	INSERT INTO work_item_notes (
		id,
		item_id,
		item_kind,
		text,
		author_id,
		created_at
	) VALUES (
		$1,$2,$3,$4,$5,now()
	);
	`

	if _, err := tx.Unwrap(t).Exec(ctx, query, note.ID, note.ItemID, note.ItemKind,
		note.Text, note.AuthorID); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *AuditRepo) ListNotes(ctx context.Context, itemID string, kind entity.WorkItemKind) ([]entity.WorkItemNote, *app_errors.AppError) {
	query := `
	SELECT id, item_id, item_kind, text, author_id, created_at
	FROM work_item_notes
	WHERE item_id = $1
		AND item_kind = $2
	ORDER BY created_at ASC;
	`

	rows, err := r.db.Query(ctx, query, itemID, kind)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var results []entity.WorkItemNote
	for rows.Next() {
		var n entity.WorkItemNote
		if err := rows.Scan(&n.ID, &n.ItemID, &n.ItemKind, &n.Text, &n.AuthorID, &n.CreatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		results = append(results, n)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *AuditRepo) InsertEvent(ctx context.Context, t tx.Tx, event *entity.AddWorkItemEvent) *app_errors.AppError {
	query := `
	INSERT INTO work_item_events (
		id,
		item_id,
		item_kind,
		actor_id,
		target_ref,
		action,
		old_status,
		new_status,
		note,
		created_at
	) VALUES (
		$1,$2,$3,$4,$5,$6,$7,$8,$9,now()
	);
	`

	if _, err := tx.Unwrap(t).Exec(ctx, query, event.ID, event.ItemID, event.ItemKind,
		event.ActorID, event.TargetRef, event.Action, event.OldStatus, event.NewStatus,
		event.Note); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *AuditRepo) ListEventsForItem(ctx context.Context, itemID string, kind entity.WorkItemKind, filter *workitem_dto.WorkItemEventFilter) ([]entity.WorkItemEventEntity, *app_errors.AppError) {
	query := `
	SELECT id, item_id, item_kind, actor_id, target_ref, action, old_status, new_status, note, created_at
	FROM work_item_events
	WHERE item_id = $1
		AND item_kind = $2
	`

	args := []any{itemID, kind}
	argsPos := 3

	if filter.Action != nil {
		query += fmt.Sprintf(" AND action = $%d", argsPos)
		args = append(args, *filter.Action)
		argsPos++
	}

	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d;", argsPos, argsPos+1)

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var results []entity.WorkItemEventEntity
	for rows.Next() {
		var e entity.WorkItemEventEntity
		if err := rows.Scan(&e.ID, &e.ItemID, &e.ItemKind, &e.ActorID, &e.TargetRef,
			&e.Action, &e.OldStatus, &e.NewStatus, &e.Note, &e.CreatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		results = append(results, e)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}
