package notification_case

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Bharani-dharan-k/civic-main-sub000/internal/abstraction/cache"
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos"
	notification_dto "github.com/Bharani-dharan-k/civic-main-sub000/internal/dtos/notification-dto"
	app_errors "github.com/Bharani-dharan-k/civic-main-sub000/internal/errors"
	notification_repo "github.com/Bharani-dharan-k/civic-main-sub000/internal/repo/notification-repo"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const unreadCountTTL = 30 * time.Second

type NotificationService struct {
	nr    notification_repo.NotificationRepoContract
	cache cache.Cache
}

func NewNotificationService(db *pgxpool.Pool, redis *redis.Client) NotificationServiceContract {
	return &NotificationService{
		nr:    notification_repo.NewNotificationRepo(db),
		cache: cache.NewRedisCache(redis),
	}
}

func (s *NotificationService) ListNotifications(ctx context.Context, recipientID string, filter notification_dto.NotificationListFilter) ([]*notification_dto.NotificationItem, *dtos.PaginationMeta, *app_errors.AppError) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	notifications, err := s.nr.ListForRecipient(ctx, recipientID, filter.UnreadOnly, filter.Page, filter.Limit)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.nr.CountForRecipient(ctx, recipientID, filter.UnreadOnly)
	if err != nil {
		return nil, nil, err
	}

	var items []*notification_dto.NotificationItem
	for i := range notifications {
		n := &notifications[i]
		items = append(items, &notification_dto.NotificationItem{
			NotificationID: n.ID,
			Title:          n.Title,
			Message:        n.Message,
			Category:       string(n.Category),
			RelatedItem:    n.RelatedItem,
			Read:           n.Read,
			CreatedAt:      n.CreatedAt,
		})
	}

	paginationMeta := &dtos.PaginationMeta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}

	return items, paginationMeta, nil
}

// UnreadCount is polled by clients, so the count is held in a short-lived
// cache. JSON round-trips numbers as float64.
func (s *NotificationService) UnreadCount(ctx context.Context, recipientID string) (*notification_dto.UnreadCountResponse, *app_errors.AppError) {
	key := fmt.Sprintf("notif_unread:%s", recipientID)
	if cached, cacheErr := s.cache.Get(ctx, key); cached != nil && cacheErr == nil {
		if f, ok := (*cached).(float64); ok {
			return &notification_dto.UnreadCountResponse{Unread: int64(f)}, nil
		}
	}

	unread, err := s.nr.CountForRecipient(ctx, recipientID, true)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, unread, unreadCountTTL); err != nil {
		log.Error().Err(err.Err).Msg("An Error occured when trying to set unread count cache")
	}

	return &notification_dto.UnreadCountResponse{Unread: unread}, nil
}

// MarkRead only touches rows owned by the caller; a foreign id reads as not
// found rather than forbidden.
func (s *NotificationService) MarkRead(ctx context.Context, recipientID, notificationID string) *app_errors.AppError {
	if err := s.nr.MarkRead(ctx, notificationID, recipientID); err != nil {
		return err
	}

	if err := s.cache.Del(ctx, fmt.Sprintf("notif_unread:%s", recipientID)); err != nil {
		log.Error().Err(err).Msg("An Error occured when trying to drop unread count cache")
	}

	return nil
}
