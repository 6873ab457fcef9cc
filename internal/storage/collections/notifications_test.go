package collections

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/storage/kv"
)

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifications_BroadcastSharedAcrossInboxes(t *testing.T) {
	ctx := context.Background()
	repo := NewNotifications(kv.NewMemory(), noopLogger())

	direct := models.Notification{
		ID:             "n-1",
		TargetUsername: "alice",
		Category:       models.CategoryGeneral,
		Message:        "only for alice",
		CreatedAt:      time.Now().UTC(),
	}
	broadcast := models.Notification{
		ID:             "n-2",
		TargetUsername: models.BroadcastTarget,
		Category:       models.CategoryGeneral,
		Message:        "maintenance tonight",
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.Add(ctx, direct))
	require.NoError(t, repo.Add(ctx, broadcast))

	t.Run("broadcast lands in every inbox", func(t *testing.T) {
		alice := repo.ForUser(ctx, "alice")
		require.Len(t, alice, 2)

		bob := repo.ForUser(ctx, "bob")
		require.Len(t, bob, 1)
		assert.Equal(t, "n-2", bob[0].ID)
		assert.Equal(t, models.BroadcastTarget, bob[0].TargetUsername)
	})

	t.Run("mark read is shared for broadcast", func(t *testing.T) {
		updated, err := repo.MarkRead(ctx, "n-2")
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.Read)

		for _, username := range []string{"alice", "bob"} {
			for _, n := range repo.ForUser(ctx, username) {
				if n.ID == "n-2" {
					assert.True(t, n.Read, "broadcast must be read for %s", username)
				}
			}
		}
	})

	t.Run("direct notification untouched", func(t *testing.T) {
		alice := repo.ForUser(ctx, "alice")
		for _, n := range alice {
			if n.ID == "n-1" {
				assert.False(t, n.Read)
			}
		}
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		updated, err := repo.MarkRead(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}
