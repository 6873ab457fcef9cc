package video

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/storage/collections"
	"github.com/magabrotheeeer/streamora/internal/storage/kv"
)

// Каталог тестируется поверх памяти вместо моков: сценарии лент, поиска
// и просмотров проще выражаются через реальное состояние коллекций.
func newTestService(t *testing.T) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := kv.NewMemory()
	return New(
		collections.NewVideos(store, log),
		collections.NewStats(store, log),
		collections.NewSubscriptions(store, log),
	)
}

var creatorSession = models.Session{Username: "creator1", Name: "Creator One", Role: models.RoleUser}

func TestSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	video, err := svc.Save(ctx, creatorSession, models.DummyVideo{
		Type:  "long",
		Title: "First upload",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, video.ID)
	assert.Equal(t, "creator1", video.UploaderUsername)

	t.Run("edit keeps counters and ownership", func(t *testing.T) {
		_, err := svc.AddView(ctx, video.ID)
		require.NoError(t, err)

		updated, err := svc.Save(ctx, creatorSession, models.DummyVideo{
			ID:    video.ID,
			Type:  "long",
			Title: "First upload, renamed",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), updated.Views)
		assert.Equal(t, video.CreatedAt, updated.CreatedAt)
	})

	t.Run("stranger cannot edit", func(t *testing.T) {
		stranger := models.Session{Username: "other", Name: "Other", Role: models.RoleUser}
		_, err := svc.Save(ctx, stranger, models.DummyVideo{
			ID:    video.ID,
			Type:  "long",
			Title: "Hijacked",
		})
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("admin can delete anything", func(t *testing.T) {
		admin := models.Session{Username: "admin", Name: "Admin", Role: models.RoleAdmin}
		require.NoError(t, svc.Delete(ctx, admin, video.ID))

		_, err := svc.ByID(ctx, video.ID)
		assert.ErrorIs(t, err, ErrVideoNotFound)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		err := svc.Delete(ctx, creatorSession, "ghost")
		assert.ErrorIs(t, err, ErrVideoNotFound)
	})
}

func TestFeeds(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	seed := []models.DummyVideo{
		{Type: "long", Title: "Promoted with thumbnail", ThumbnailURL: "https://img/1.jpg", IsPromoted: true},
		{Type: "long", Title: "Promoted without thumbnail", IsPromoted: true},
		{Type: "long", Title: "Not promoted", ThumbnailURL: "https://img/3.jpg"},
		{Type: "short", Title: "A short", IsPromoted: true},
		{Type: "embedded", Title: "Embedded promoted", ThumbnailURL: "https://img/5.jpg", IsPromoted: true},
	}
	for _, v := range seed {
		_, err := svc.Save(ctx, creatorSession, v)
		require.NoError(t, err)
	}

	t.Run("home feed", func(t *testing.T) {
		feed := svc.HomeFeed(ctx)
		require.Len(t, feed, 2)
		for _, v := range feed {
			assert.True(t, v.IsPromoted)
			assert.NotEmpty(t, v.ThumbnailURL)
			assert.NotEqual(t, models.VideoShort, v.Type)
		}
	})

	t.Run("shorts feed", func(t *testing.T) {
		feed := svc.ShortsFeed(ctx)
		require.Len(t, feed, 1)
		assert.Equal(t, "A short", feed[0].Title)
	})

	t.Run("promoted with thumbnail count", func(t *testing.T) {
		assert.Equal(t, 2, svc.PromotedWithThumbnailCount(ctx))
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Save(ctx, creatorSession, models.DummyVideo{
		Type: "long", Title: "Golang tutorial", Tags: []string{"programming"},
	})
	require.NoError(t, err)
	_, err = svc.Save(ctx, creatorSession, models.DummyVideo{
		Type: "long", Title: "Cooking show", Tags: []string{"food", "go-to recipes"},
	})
	require.NoError(t, err)

	t.Run("matches title case-insensitively", func(t *testing.T) {
		result, err := svc.Search(ctx, "GOLANG")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Golang tutorial", result[0].Title)
	})

	t.Run("matches tags", func(t *testing.T) {
		result, err := svc.Search(ctx, "recipes")
		require.NoError(t, err)
		require.Len(t, result, 1)
	})

	t.Run("query too short", func(t *testing.T) {
		_, err := svc.Search(ctx, " g ")
		assert.ErrorIs(t, err, ErrQueryTooShort)
	})

	t.Run("no matches", func(t *testing.T) {
		result, err := svc.Search(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestAddView(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := kv.NewMemory()
	stats := collections.NewStats(store, log)
	svc := New(collections.NewVideos(store, log), stats, collections.NewSubscriptions(store, log))

	video, err := svc.Save(ctx, creatorSession, models.DummyVideo{Type: "long", Title: "Monetized upload"})
	require.NoError(t, err)

	t.Run("counts view without monetization", func(t *testing.T) {
		updated, err := svc.AddView(ctx, video.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), updated.Views)

		creator := stats.Get(ctx, "creator1")
		assert.Equal(t, int64(1), creator.TotalViews)
		assert.Zero(t, creator.TotalEarnings)
	})

	t.Run("accrues earnings for monetized creator", func(t *testing.T) {
		creator := stats.Get(ctx, "creator1")
		creator.IsMonetized = true
		creator.AdEligible = true
		creator.CPMRank = models.RankGold
		creator.MonetizationPlan = models.PlanPremium
		require.NoError(t, stats.Save(ctx, creator))

		_, err := svc.AddView(ctx, video.ID)
		require.NoError(t, err)

		creator = stats.Get(ctx, "creator1")
		// gold CPM 8 на тысячу показов, премиальная доля 0.70
		assert.InDelta(t, 8.0/1000*0.70, creator.TotalEarnings, 1e-9)
		assert.Equal(t, int64(2), creator.TotalViews)
	})
}

func TestLikeAndComment(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	video, err := svc.Save(ctx, creatorSession, models.DummyVideo{Type: "short", Title: "Clip"})
	require.NoError(t, err)

	liked, err := svc.Like(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), liked.Likes)

	viewer := models.Session{Username: "viewer", Name: "Viewer", Role: models.RoleUser}
	commented, err := svc.AddComment(ctx, viewer, video.ID, "nice one")
	require.NoError(t, err)
	require.Len(t, commented.Comments, 1)
	assert.Equal(t, "viewer", commented.Comments[0].Username)
	assert.Equal(t, "nice one", commented.Comments[0].Text)
}

func TestSubscriptions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	subscribed, err := svc.ToggleSubscription(ctx, "viewer", "creator1")
	require.NoError(t, err)
	assert.True(t, subscribed)
	assert.True(t, svc.IsSubscribed(ctx, "viewer", "creator1"))
	assert.Equal(t, []string{"creator1"}, svc.Subscriptions(ctx, "viewer"))

	subscribed, err = svc.ToggleSubscription(ctx, "viewer", "creator1")
	require.NoError(t, err)
	assert.False(t, subscribed)
	assert.Empty(t, svc.Subscriptions(ctx, "viewer"))
}
