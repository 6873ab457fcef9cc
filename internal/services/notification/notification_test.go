package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/streamora/internal/models"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) List(ctx context.Context) []models.Notification {
	args := m.Called(ctx)
	return args.Get(0).([]models.Notification)
}

func (m *MockNotificationRepository) Add(ctx context.Context, notification models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ForUser(ctx context.Context, username string) []models.Notification {
	args := m.Called(ctx, username)
	return args.Get(0).([]models.Notification)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func newTestService(repo NotificationRepository) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, repo, nil, "streamora.notifications")
}

func TestNotify(t *testing.T) {
	ctx := context.Background()

	t.Run("direct notification", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("Add", ctx, mock.MatchedBy(func(n models.Notification) bool {
			return n.TargetUsername == "creator1" &&
				n.Category == models.CategoryPayment &&
				n.ID != "" && !n.Read
		})).Return(nil)

		svc := newTestService(repo)
		err := svc.Notify(ctx, "creator1", models.CategoryPayment, "payout approved")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("broadcast stores single record", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("Add", ctx, mock.MatchedBy(func(n models.Notification) bool {
			return n.TargetUsername == models.BroadcastTarget
		})).Return(nil)

		svc := newTestService(repo)
		err := svc.Notify(ctx, models.BroadcastTarget, models.CategoryGeneral, "site maintenance tonight")
		require.NoError(t, err)
		repo.AssertNumberOfCalls(t, "Add", 1)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		svc := newTestService(repo)

		err := svc.Notify(ctx, "creator1", models.CategoryGeneral, "")
		assert.ErrorIs(t, err, ErrEmptyMessage)
		repo.AssertNotCalled(t, "Add")
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		svc := newTestService(repo)

		err := svc.Notify(ctx, "creator1", "spam", "hello")
		assert.ErrorIs(t, err, ErrUnknownCategory)
		repo.AssertNotCalled(t, "Add")
	})
}

func TestInbox(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNotificationRepository)
	repo.On("ForUser", ctx, "creator1").Return([]models.Notification{
		{ID: "n1", TargetUsername: "creator1"},
		{ID: "n2", TargetUsername: models.BroadcastTarget},
	})

	svc := newTestService(repo)
	inbox := svc.Inbox(ctx, "creator1")
	require.Len(t, inbox, 2)
	assert.Equal(t, "n1", inbox[0].ID)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("MarkRead", ctx, "n1").Return(&models.Notification{ID: "n1", Read: true}, nil)

		svc := newTestService(repo)
		notification, err := svc.MarkRead(ctx, "n1")
		require.NoError(t, err)
		assert.True(t, notification.Read)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("MarkRead", ctx, "ghost").Return(nil, nil)

		svc := newTestService(repo)
		_, err := svc.MarkRead(ctx, "ghost")
		assert.ErrorIs(t, err, ErrUnknownID)
	})
}
