package task_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepo struct {
	db *pgxpool.Pool
}

func NewTaskRepo(db *pgxpool.Pool) TaskRepoContract {
	return &TaskRepo{
		db: db,
	}
}

const taskColumns = `id, title, description, status, priority, assignee_id, assigned_by,
	assigned_at, started_at, completed_at, related_report, deadline, department,
	created_by, created_at, updated_at`

func scanTask(row pgx.Row) (*entity.TaskEntity, error) {
	var t entity.TaskEntity
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.AssigneeID,
		&t.AssignedBy, &t.AssignedAt, &t.StartedAt, &t.CompletedAt, &t.RelatedReport,
		&t.Deadline, &t.Department, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *TaskRepo) GetTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM tasks
	WHERE id = $1;
	`, taskColumns)

	task, err := scanTask(r.db.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "task.not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return task, nil
}

func (r *TaskRepo) GetTaskByRelatedReport(ctx context.Context, reportID string) (*entity.TaskEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM tasks
	WHERE related_report = $1;
	`, taskColumns)

	task, err := scanTask(r.db.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, app_errors.MapPgxError(err)
	}

	return task, nil
}

func (r *TaskRepo) InsertTask(ctx context.Context, t tx.Tx, task *entity.TaskEntity) *app_errors.AppError {
	query := `
	INSERT INTO tasks (
		id,
		title,
		description,
		status,
		priority,
		assignee_id,
		assigned_by,
		assigned_at,
		related_report,
		deadline,
		department,
		created_by,
		created_at
	) VALUES (
		$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13
	);
	`

	if _, err := tx.Unwrap(t).Exec(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.AssigneeID,
		task.AssignedBy,
		task.AssignedAt,
		task.RelatedReport,
		task.Deadline,
		task.Department,
		task.CreatedBy,
		task.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *TaskRepo) ListAssignedTasks(ctx context.Context, assigneeID string, status *entity.WorkItemStatus) ([]entity.TaskEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM tasks
	WHERE assignee_id = $1
	`, taskColumns)

	args := []any{assigneeID}
	if status != nil {
		query += " AND status = $2"
		args = append(args, *status)
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	var results []entity.TaskEntity
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		results = append(results, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *TaskRepo) CountAssignedTasks(ctx context.Context, assigneeID string, excludeReportRefs []string) (int64, *app_errors.AppError) {
	query := `
	SELECT COUNT(*) FROM tasks t
	WHERE t.assignee_id = $1
		AND (t.related_report IS NULL OR NOT EXISTS (
			SELECT 1 FROM reports r
			WHERE r.id = t.related_report
				AND r.assignee = ANY($2)
		));
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, assigneeID, excludeReportRefs).Scan(&count); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return count, nil
}

func (r *TaskRepo) CountAssignedTasksByStatus(ctx context.Context, assigneeID string, excludeReportRefs []string) (map[entity.WorkItemStatus]int64, *app_errors.AppError) {
	query := `
	SELECT t.status, COUNT(*) FROM tasks t
	WHERE t.assignee_id = $1
		AND (t.related_report IS NULL OR NOT EXISTS (
			SELECT 1 FROM reports r
			WHERE r.id = t.related_report
				AND r.assignee = ANY($2)
		))
	GROUP BY t.status;
	`

	rows, err := r.db.Query(ctx, query, assigneeID, excludeReportRefs)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	counts := make(map[entity.WorkItemStatus]int64)
	for rows.Next() {
		var status entity.WorkItemStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return counts, nil
}

func (r *TaskRepo) AssignTask(ctx context.Context, t tx.Tx, taskID string, expect entity.WorkItemStatus, assigneeID, assignedBy string, priority *entity.WorkItemPriority, deadline *time.Time) (*entity.TaskEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	UPDATE tasks
	SET status = 'Assigned',
		assignee_id = $1,
		assigned_by = $2,
		assigned_at = COALESCE(assigned_at, now()),
		priority = COALESCE($3, priority),
		deadline = COALESCE($4, deadline),
		updated_at = now()
	WHERE id = $5
		AND status = $6
	RETURNING %s;
	`, taskColumns)

	task, err := scanTask(tx.Unwrap(t).QueryRow(ctx, query, assigneeID, assignedBy, priority, deadline, taskID, expect))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConcurrentModification, "workitem.concurrent_modification", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return task, nil
}

func (r *TaskRepo) TransitionTask(ctx context.Context, t tx.Tx, taskID string, expect, next entity.WorkItemStatus) (*entity.TaskEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	UPDATE tasks
	SET status = $1,
		started_at = CASE WHEN $1 = 'In_Progress' THEN COALESCE(started_at, now()) ELSE started_at END,
		completed_at = CASE WHEN $1 = 'Completed' THEN COALESCE(completed_at, now()) ELSE completed_at END,
		updated_at = now()
	WHERE id = $2
		AND status = $3
	RETURNING %s;
	`, taskColumns)

	task, err := scanTask(tx.Unwrap(t).QueryRow(ctx, query, next, taskID, expect))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConcurrentModification, "workitem.concurrent_modification", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return task, nil
}
