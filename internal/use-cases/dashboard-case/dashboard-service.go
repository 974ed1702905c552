package dashboard_case

import (
	"context"
	"fmt"
	"sort"

	workitem_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/workitem-dto"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/entity"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	report_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/report-repo"
	task_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/task-repo"
	user_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/user-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardService struct {
	rr report_repo.ReportRepoContract
	tr task_repo.TaskRepoContract
	ur user_repo.UserRepoContract
}

func NewDashboardService(db *pgxpool.Pool) DashboardServiceContract {
	return &DashboardService{
		rr: report_repo.NewReportRepo(db),
		tr: task_repo.NewTaskRepo(db),
		ur: user_repo.NewUserRepo(db),
	}
}

// assigneeRefs returns every ref form under which items may be assigned to
// this user: always the user ref, plus the roster ref when a worker row is
// linked to the account.
func (s *DashboardService) assigneeRefs(ctx context.Context, userID string) ([]string, *app_errors.AppError) {
	refs := []string{entity.NewUserRef(userID).String()}

	worker, err := s.ur.GetWorkerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if worker != nil {
		refs = append(refs, entity.NewWorkerRef(worker.EmployeeCode).String())
	}

	return refs, nil
}

func (s *DashboardService) ListWorkItemsForAssignee(ctx context.Context, userID string, filter workitem_dto.UnifiedListFilter) ([]*workitem_dto.UnifiedWorkItem, *app_errors.AppError) {
	if _, err := s.ur.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	refs, err := s.assigneeRefs(ctx, userID)
	if err != nil {
		return nil, err
	}

	var status *entity.WorkItemStatus
	if filter.Status != nil {
		st := entity.WorkItemStatus(*filter.Status)
		status = &st
	}

	// two independent reads, merged client-side
	reports, err := s.rr.ListAssignedReports(ctx, refs, status)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tr.ListAssignedTasks(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	items := make([]*workitem_dto.UnifiedWorkItem, 0, len(reports)+len(tasks))
	for i := range reports {
		r := &reports[i]
		category := r.Category
		items = append(items, &workitem_dto.UnifiedWorkItem{
			ID:          fmt.Sprintf("%s:%s", entity.KindReport, r.ID),
			Kind:        string(entity.KindReport),
			Title:       r.Title,
			Description: r.Description,
			Status:      string(r.Status),
			Priority:    string(r.Priority),
			AssignedBy:  r.AssignedBy,
			Category:    &category,
			CreatedAt:   r.CreatedAt,
		})
	}
	for i := range tasks {
		t := &tasks[i]
		items = append(items, &workitem_dto.UnifiedWorkItem{
			ID:            fmt.Sprintf("%s:%s", entity.KindTask, t.ID),
			Kind:          string(entity.KindTask),
			Title:         t.Title,
			Description:   t.Description,
			Status:        string(t.Status),
			Priority:      string(t.Priority),
			AssignedBy:    t.AssignedBy,
			RelatedReport: t.RelatedReport,
			CreatedAt:     t.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

func (s *DashboardService) GetWorkItemStats(ctx context.Context, userID string) (*workitem_dto.WorkItemStats, *app_errors.AppError) {
	if _, err := s.ur.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	refs, err := s.assigneeRefs(ctx, userID)
	if err != nil {
		return nil, err
	}

	reportByStatus, err := s.rr.CountAssignedReportsByStatus(ctx, refs)
	if err != nil {
		return nil, err
	}

	// tasks derived from reports already counted above are excluded here
	taskByStatus, err := s.tr.CountAssignedTasksByStatus(ctx, userID, refs)
	if err != nil {
		return nil, err
	}

	stats := &workitem_dto.WorkItemStats{
		ByStatus: make(map[string]int64),
	}

	var done int64
	for status, count := range reportByStatus {
		stats.ReportCount += count
		stats.ByStatus[string(status)] += count
		if status == entity.StatusResolved {
			done += count
		}
	}
	for status, count := range taskByStatus {
		stats.TaskCount += count
		stats.ByStatus[string(status)] += count
		if status == entity.StatusCompleted {
			done += count
		}
	}

	stats.Total = stats.ReportCount + stats.TaskCount
	if stats.Total > 0 {
		stats.CompletionRate = float64(done) / float64(stats.Total)
	}

	return stats, nil
}
