package moderation

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

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Get(ctx context.Context, username string) models.CreatorStats {
	args := m.Called(ctx, username)
	return args.Get(0).(models.CreatorStats)
}

func (m *MockStatsRepository) Save(ctx context.Context, stats models.CreatorStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) DeleteByUploader(ctx context.Context, username string) (int, error) {
	args := m.Called(ctx, username)
	return args.Int(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, target string, category models.NotificationCategory, message string) error {
	args := m.Called(ctx, target, category, message)
	return args.Error(0)
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIssueStrike(t *testing.T) {
	ctx := context.Background()

	t.Run("strike one keeps monetization", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1", IsMonetized: true})
		stats.On("Save", ctx, mock.MatchedBy(func(s models.CreatorStats) bool {
			return s.Strikes == 1 && s.IsMonetized
		})).Return(nil)

		videos := new(MockVideoRepository)
		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, "creator1", models.CategoryStrike,
			"⚠️ You have received Strike 1. Your videos will no longer be promoted on the home feed.").Return(nil)

		svc := New(noopLogger(), stats, videos, notifier)
		updated, err := svc.IssueStrike(ctx, "creator1", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Strikes)
		videos.AssertNotCalled(t, "DeleteByUploader")
		notifier.AssertExpectations(t)
	})

	t.Run("strike two disables monetization", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1", Strikes: 1, IsMonetized: true})
		stats.On("Save", ctx, mock.MatchedBy(func(s models.CreatorStats) bool {
			return s.Strikes == 2 && !s.IsMonetized
		})).Return(nil)

		videos := new(MockVideoRepository)
		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, "creator1", models.CategoryStrike,
			"⚠️ You have received Strike 2. Your monetization has been disabled.").Return(nil)

		svc := New(noopLogger(), stats, videos, notifier)
		updated, err := svc.IssueStrike(ctx, "creator1", 2)
		require.NoError(t, err)
		assert.False(t, updated.IsMonetized)
		videos.AssertNotCalled(t, "DeleteByUploader")
	})

	t.Run("strike three removes all videos", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1", Strikes: 2})
		stats.On("Save", ctx, mock.MatchedBy(func(s models.CreatorStats) bool {
			return s.Strikes == 3 && !s.IsMonetized
		})).Return(nil)

		videos := new(MockVideoRepository)
		videos.On("DeleteByUploader", ctx, "creator1").Return(4, nil)

		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, "creator1", models.CategoryStrike,
			"🚫 You have received Strike 3. Your channel has been suspended and all content removed.").Return(nil)

		svc := New(noopLogger(), stats, videos, notifier)
		updated, err := svc.IssueStrike(ctx, "creator1", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Strikes)
		videos.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("level must escalate", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1", Strikes: 2})

		svc := New(noopLogger(), stats, new(MockVideoRepository), new(MockNotifier))
		_, err := svc.IssueStrike(ctx, "creator1", 2)
		assert.ErrorIs(t, err, ErrStrikeNotEscalating)
		stats.AssertNotCalled(t, "Save")
	})

	t.Run("level out of range", func(t *testing.T) {
		svc := New(noopLogger(), new(MockStatsRepository), new(MockVideoRepository), new(MockNotifier))

		_, err := svc.IssueStrike(ctx, "creator1", 0)
		assert.ErrorIs(t, err, ErrInvalidStrikeLevel)

		_, err = svc.IssueStrike(ctx, "creator1", 4)
		assert.ErrorIs(t, err, ErrInvalidStrikeLevel)
	})
}

func TestClearStrikes(t *testing.T) {
	ctx := context.Background()

	stats := new(MockStatsRepository)
	stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1", Strikes: 3, IsMonetized: false})
	stats.On("Save", ctx, mock.MatchedBy(func(s models.CreatorStats) bool {
		// Сбрасывается только счетчик, монетизация остается выключенной.
		return s.Strikes == 0 && !s.IsMonetized
	})).Return(nil)

	svc := New(noopLogger(), stats, new(MockVideoRepository), new(MockNotifier))
	updated, err := svc.ClearStrikes(ctx, "creator1")
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Strikes)
	assert.False(t, updated.IsMonetized)
}
