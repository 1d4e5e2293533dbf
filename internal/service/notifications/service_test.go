package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titikcuci/booking-service/internal/domain"
	notificationRepo "github.com/titikcuci/booking-service/internal/infra/storage/notification"
)

type fakeNotificationRepo struct {
	notifications map[int64]*domain.Notification
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Notification, error) {
	out := make([]*domain.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id, userID int64) error {
	n, ok := r.notifications[id]
	if !ok || n.UserID != userID {
		return notificationRepo.ErrNotificationNotFound
	}
	n.IsRead = true
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) (*Service, *fakeNotificationRepo) {
	t.Helper()

	repo := &fakeNotificationRepo{notifications: map[int64]*domain.Notification{
		1: {
			ID:        1,
			UserID:    7,
			Category:  domain.CategoryStatusUpdate,
			Title:     "Sedang Dicuci",
			Message:   "Kendaraan Anda sedang dalam proses pencucian. (TC-0209202601)",
			CreatedAt: time.Now().UTC(),
		},
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestListByUser(t *testing.T) {
	svc, _ := newService(t)

	list, err := svc.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, "Sedang Dicuci", list.Notifications[0].Title)
	assert.False(t, list.Notifications[0].IsRead)

	empty, err := svc.ListByUser(context.Background(), 8)
	require.NoError(t, err)
	assert.Empty(t, empty.Notifications)
}

func TestMarkRead(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo := newService(t)

		require.NoError(t, svc.MarkRead(context.Background(), 1, 7))
		assert.True(t, repo.notifications[1].IsRead)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.MarkRead(context.Background(), 99, 7)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})

	t.Run("ForeignNotificationReportsNotFound", func(t *testing.T) {
		svc, repo := newService(t)

		err := svc.MarkRead(context.Background(), 1, 8)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
		assert.False(t, repo.notifications[1].IsRead)
	})
}
