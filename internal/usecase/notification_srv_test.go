package usecase

import (
	"context"
	"testing"

	"autohub-service/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestNotificationService(t *testing.T) (*mockRepos, NotificationService) {
	t.Helper()

	mocks, repo := newMockRepos()
	return mocks, NewNotificationService(repo, zap.NewNop())
}

func TestListUserNotifications(t *testing.T) {
	mocks, svc := newTestNotificationService(t)
	userID := uuid.New()

	mocks.notification.On("FindByUserID", mock.Anything, userID).Return([]*entity.Notification{
		{
			BaseSimple: entity.BaseSimple{ID: uuid.New()},
			UserID:     userID,
			Title:      "Booking Accepted",
			Message:    "Good news! Your booking for Premium Wash has been accepted.",
		},
	}, nil)

	notifications, err := svc.ListUserNotifications(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, "Booking Accepted", notifications[0].Title)
}

func TestListUserNotifications_Unauthenticated(t *testing.T) {
	_, svc := newTestNotificationService(t)

	_, err := svc.ListUserNotifications(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCountUnread(t *testing.T) {
	mocks, svc := newTestNotificationService(t)
	userID := uuid.New()

	mocks.notification.On("CountUnread", mock.Anything, userID).Return(int64(3), nil)

	count, err := svc.CountUnread(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count.Count)
}

func TestMarkRead(t *testing.T) {
	mocks, svc := newTestNotificationService(t)
	userID := uuid.New()
	notificationID := uuid.New()

	mocks.notification.On("MarkRead", mock.Anything, notificationID, userID).Return(true, nil)

	err := svc.MarkRead(context.Background(), userID, notificationID.String())

	assert.NoError(t, err)
}

func TestMarkRead_NotOwnedOrMissing(t *testing.T) {
	mocks, svc := newTestNotificationService(t)
	userID := uuid.New()
	notificationID := uuid.New()

	// The repo matches on both id and user, so a foreign notification looks
	// the same as a missing one.
	mocks.notification.On("MarkRead", mock.Anything, notificationID, userID).Return(false, nil)

	err := svc.MarkRead(context.Background(), userID, notificationID.String())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkRead_InvalidID(t *testing.T) {
	_, svc := newTestNotificationService(t)

	err := svc.MarkRead(context.Background(), uuid.New(), "nope")

	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDeleteAll(t *testing.T) {
	mocks, svc := newTestNotificationService(t)
	userID := uuid.New()

	mocks.notification.On("DeleteByUserID", mock.Anything, userID).Return(nil)

	assert.NoError(t, svc.DeleteAll(context.Background(), userID))
}
