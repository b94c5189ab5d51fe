package usecase

import (
	"context"
	"fmt"

	"autohub-service/internal/data/repository"
	"autohub-service/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	ListUserNotifications(ctx context.Context, userID uuid.UUID) ([]response.NotificationResponse, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (*response.UnreadCountResponse, error)
	MarkRead(ctx context.Context, userID uuid.UUID, notificationID string) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) ListUserNotifications(ctx context.Context, userID uuid.UUID) ([]response.NotificationResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	notifications, err := s.repo.Notification.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	responses := make([]response.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = response.NotificationToResponse(n)
	}

	return responses, nil
}

func (s *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (*response.UnreadCountResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	count, err := s.repo.Notification.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	return &response.UnreadCountResponse{Count: count}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID uuid.UUID, notificationID string) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}

	id, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("%w: invalid notification ID", ErrInvalidPayload)
	}

	// Scoped to the caller so a user cannot mark someone else's notification.
	updated, err := s.repo.Notification.MarkRead(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if !updated {
		return fmt.Errorf("%w: notification %s", ErrNotFound, notificationID)
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}

	if err := s.repo.Notification.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}

	return nil
}

func (s *notificationService) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}

	if err := s.repo.Notification.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete notifications: %w", err)
	}

	s.log.Info("Notifications cleared", zap.String("user_id", userID.String()))
	return nil
}
