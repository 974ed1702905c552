package report_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	report_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/report-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepo(db *pgxpool.Pool) ReportRepoContract {
	return &ReportRepo{
		db: db,
	}
}

const reportColumns = `id, title, description, category, location, image_url, status, priority,
	assignee, assigned_by, assigned_at, started_at, resolved_at, points_awarded,
	reporter_id, district, municipality, ward, department, created_at, updated_at`

func scanReport(row pgx.Row) (*entity.ReportEntity, error) {
	var r entity.ReportEntity
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.Category, &r.Location, &r.ImageURL,
		&r.Status, &r.Priority, &r.Assignee, &r.AssignedBy, &r.AssignedAt, &r.StartedAt,
		&r.ResolvedAt, &r.PointsAwarded, &r.ReporterID, &r.District, &r.Municipality,
		&r.Ward, &r.Department, &r.CreatedAt, &r.UpdatedAt)
	return &r, err
}

func (r *ReportRepo) GetReportByID(ctx context.Context, reportID string) (*entity.ReportEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM reports
	WHERE id = $1;
	`, reportColumns)

	report, err := scanReport(r.db.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "report.not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return report, nil
}

func (r *ReportRepo) InsertReport(ctx context.Context, report *entity.ReportEntity) *app_errors.AppError {
	query := `
	INSERT INTO reports (
		id,
		title,
		description,
		category,
		location,
		image_url,
		status,
		priority,
		reporter_id,
		district,
		municipality,
		ward,
		department,
		created_at
	) VALUES (
		$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14
	);
	`

	if _, err := r.db.Exec(
		ctx,
		query,
		report.ID,
		report.Title,
		report.Description,
		report.Category,
		report.Location,
		report.ImageURL,
		report.Status,
		report.Priority,
		report.ReporterID,
		report.District,
		report.Municipality,
		report.Ward,
		report.Department,
		report.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}

func (r *ReportRepo) ListReports(ctx context.Context, filter *report_dto.ReportListFilter) ([]entity.ReportEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM reports
	WHERE 1 = 1
	`, reportColumns)

	args := []any{}
	argsPos := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argsPos)
		args = append(args, *filter.Status)
		argsPos++
	}
	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argsPos)
		args = append(args, *filter.Category)
		argsPos++
	}
	if filter.Municipality != nil {
		query += fmt.Sprintf(" AND municipality = $%d", argsPos)
		args = append(args, *filter.Municipality)
		argsPos++
	}
	if filter.Ward != nil {
		query += fmt.Sprintf(" AND ward = $%d", argsPos)
		args = append(args, *filter.Ward)
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

	var results []entity.ReportEntity
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		results = append(results, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *ReportRepo) CountReports(ctx context.Context, filter *report_dto.ReportListFilter) (int64, *app_errors.AppError) {
	query := `
	SELECT COUNT(*) FROM reports
	WHERE 1 = 1
	`
	args := []any{}
	argsPos := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argsPos)
		args = append(args, *filter.Status)
		argsPos++
	}
	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argsPos)
		args = append(args, *filter.Category)
		argsPos++
	}
	if filter.Municipality != nil {
		query += fmt.Sprintf(" AND municipality = $%d", argsPos)
		args = append(args, *filter.Municipality)
		argsPos++
	}
	if filter.Ward != nil {
		query += fmt.Sprintf(" AND ward = $%d", argsPos)
		args = append(args, *filter.Ward)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query+";", args...).Scan(&count); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return count, nil
}

func (r *ReportRepo) ListAssignedReports(ctx context.Context, assigneeRefs []string, status *entity.WorkItemStatus) ([]entity.ReportEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	SELECT %s FROM reports
	WHERE assignee = ANY($1)
		AND status IN ('Assigned', 'In_Progress', 'Acknowledged')
	`, reportColumns)

	args := []any{assigneeRefs}
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

	var results []entity.ReportEntity
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		results = append(results, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *ReportRepo) CountAssignedReports(ctx context.Context, assigneeRefs []string) (int64, *app_errors.AppError) {
	query := `
	SELECT COUNT(*) FROM reports
	WHERE assignee = ANY($1)
		AND status IN ('Assigned', 'In_Progress', 'Acknowledged');
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, assigneeRefs).Scan(&count); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return count, nil
}

func (r *ReportRepo) CountAssignedReportsByStatus(ctx context.Context, assigneeRefs []string) (map[entity.WorkItemStatus]int64, *app_errors.AppError) {
	query := `
	SELECT status, COUNT(*) FROM reports
	WHERE assignee = ANY($1)
	GROUP BY status;
	`

	rows, err := r.db.Query(ctx, query, assigneeRefs)
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

func (r *ReportRepo) AssignReport(ctx context.Context, t tx.Tx, reportID string, expect entity.WorkItemStatus, assignee, assignedBy string, priority *entity.WorkItemPriority) (*entity.ReportEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	UPDATE reports
	SET status = 'Assigned',
		assignee = $1,
		assigned_by = $2,
		assigned_at = COALESCE(assigned_at, now()),
		priority = COALESCE($3, priority),
		updated_at = now()
	WHERE id = $4
		AND status = $5
	RETURNING %s;
	`, reportColumns)

	report, err := scanReport(tx.Unwrap(t).QueryRow(ctx, query, assignee, assignedBy, priority, reportID, expect))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Existence was confirmed by the preceding read; the row moved
			// under us between read and write.
			return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConcurrentModification, "workitem.concurrent_modification", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return report, nil
}

func (r *ReportRepo) TransitionReport(ctx context.Context, t tx.Tx, reportID string, expect, next entity.WorkItemStatus) (*entity.ReportEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
	UPDATE reports
	SET status = $1,
		started_at = CASE WHEN $1 = 'In_Progress' THEN COALESCE(started_at, now()) ELSE started_at END,
		resolved_at = CASE WHEN $1 = 'Resolved' THEN COALESCE(resolved_at, now()) ELSE resolved_at END,
		updated_at = now()
	WHERE id = $2
		AND status = $3
	RETURNING %s;
	`, reportColumns)

	report, err := scanReport(tx.Unwrap(t).QueryRow(ctx, query, next, reportID, expect))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConcurrentModification, "workitem.concurrent_modification", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}

	return report, nil
}

func (r *ReportRepo) MarkPointsAwarded(ctx context.Context, t tx.Tx, reportID string) (bool, *app_errors.AppError) {
	query := `
	UPDATE reports
	SET points_awarded = TRUE
	WHERE id = $1
		AND points_awarded = FALSE;
	`

	tag, err := tx.Unwrap(t).Exec(ctx, query, reportID)
	if err != nil {
		return false, app_errors.MapPgxError(err)
	}

	return tag.RowsAffected() > 0, nil
}
