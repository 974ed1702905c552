package worker_handler

import (
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/tx"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/mail"
	notification_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/notification-repo"
	report_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/report-repo"
	user_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/user-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkerHandler struct {
	db            *pgxpool.Pool
	txm           tx.TxManager
	rr            report_repo.ReportRepoContract
	ur            user_repo.UserRepoContract
	nr            notification_repo.NotificationRepoContract
	mailer        mail.Mailer
	retentionDays int
}

func NewWorkerHandler(db *pgxpool.Pool, mailer mail.Mailer, retentionDays int) *WorkerHandler {
	return &WorkerHandler{
		db:            db,
		txm:           tx.NewPgxTxManager(db),
		rr:            report_repo.NewReportRepo(db),
		ur:            user_repo.NewUserRepo(db),
		nr:            notification_repo.NewNotificationRepo(db),
		mailer:        mailer,
		retentionDays: retentionDays,
	}
}
