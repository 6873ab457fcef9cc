package collections

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/storage/kv"
	"github.com/magabrotheeeer/streamora/internal/storage/records"
)

// Stats репозиторий статистики создателей. Коллекция — map,
// ключ которой совпадает с username создателя.
type Stats struct {
	store kv.Store
	log   *slog.Logger
}

// NewStats создает репозиторий статистики.
func NewStats(store kv.Store, log *slog.Logger) *Stats {
	return &Stats{store: store, log: log}
}

func (s *Stats) all(ctx context.Context) map[string]models.CreatorStats {
	m, err := records.Load[map[string]models.CreatorStats](ctx, s.store, userStatsKey)
	if err != nil {
		s.log.Warn("stats collection unreadable, using empty", sl.Err(err))
		return map[string]models.CreatorStats{}
	}
	if m == nil {
		return map[string]models.CreatorStats{}
	}
	return m
}

// Get возвращает статистику создателя. Для username без записи
// возвращаются дефолтные нулевые значения — детерминированно,
// без побочной записи в хранилище.
func (s *Stats) Get(ctx context.Context, username string) models.CreatorStats {
	if stats, ok := s.all(ctx)[username]; ok {
		return stats
	}
	return models.DefaultCreatorStats(username)
}

// All возвращает все сохраненные записи статистики.
func (s *Stats) All(ctx context.Context) map[string]models.CreatorStats {
	return s.all(ctx)
}

// Save сохраняет статистику создателя под его username.
func (s *Stats) Save(ctx context.Context, stats models.CreatorStats) error {
	m := s.all(ctx)
	m[stats.Username] = stats
	return records.Store(ctx, s.store, userStatsKey, m)
}
