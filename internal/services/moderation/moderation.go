// Package moderation реализует лестницу страйков: три ступени с нарастающими
// последствиями для канала создателя и обнуление счетчика.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/magabrotheeeer/streamora/internal/lib/metrics"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Ошибки уровня бизнес-логики модерации.
var (
	ErrInvalidStrikeLevel  = errors.New("strike level must be between 1 and 3")
	ErrStrikeNotEscalating = errors.New("strike level must exceed the current count")
)

// StatsRepository доступ к статистике создателей.
type StatsRepository interface {
	Get(ctx context.Context, username string) models.CreatorStats
	Save(ctx context.Context, stats models.CreatorStats) error
}

// VideoRepository операции над роликами, нужные модерации.
type VideoRepository interface {
	DeleteByUploader(ctx context.Context, username string) (int, error)
}

// Notifier отправка системных уведомлений пользователям.
type Notifier interface {
	Notify(ctx context.Context, target string, category models.NotificationCategory, message string) error
}

// Service движок модерации.
type Service struct {
	log      *slog.Logger
	stats    StatsRepository
	videos   VideoRepository
	notifier Notifier
}

// New создает движок модерации.
func New(log *slog.Logger, stats StatsRepository, videos VideoRepository, notifier Notifier) *Service {
	return &Service{log: log, stats: stats, videos: videos, notifier: notifier}
}

func strikeMessage(level int) string {
	switch level {
	case 1:
		return "⚠️ You have received Strike 1. Your videos will no longer be promoted on the home feed."
	case 2:
		return "⚠️ You have received Strike 2. Your monetization has been disabled."
	default:
		return "🚫 You have received Strike 3. Your channel has been suspended and all content removed."
	}
}

// IssueStrike выдает создателю страйк уровня level.
// Уровень обязан превышать текущий счетчик: лестница движется только вверх.
// Со второго страйка монетизация принудительно отключается, третий дополнительно
// удаляет все ролики создателя. Счетчик и флаги сохраняются до удаления роликов,
// чтобы сбой каскада не потерял сам страйк.
func (s *Service) IssueStrike(ctx context.Context, username string, level int) (models.CreatorStats, error) {
	const op = "services.moderation.IssueStrike"

	if level < 1 || level > 3 {
		return models.CreatorStats{}, ErrInvalidStrikeLevel
	}

	stats := s.stats.Get(ctx, username)
	if level <= stats.Strikes {
		return models.CreatorStats{}, ErrStrikeNotEscalating
	}

	stats.Strikes = level
	if level >= 2 {
		stats.IsMonetized = false
	}
	if err := s.stats.Save(ctx, stats); err != nil {
		return models.CreatorStats{}, fmt.Errorf("%s: %w", op, err)
	}

	if level == 3 {
		removed, err := s.videos.DeleteByUploader(ctx, username)
		if err != nil {
			return models.CreatorStats{}, fmt.Errorf("%s: %w", op, err)
		}
		s.log.Info("channel suspended, videos removed",
			slog.String("username", username),
			slog.Int("removed", removed))
	}

	if err := s.notifier.Notify(ctx, username, models.CategoryStrike, strikeMessage(level)); err != nil {
		return models.CreatorStats{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.StrikesIssued.WithLabelValues(strconv.Itoa(level)).Inc()
	return stats, nil
}

// ClearStrikes обнуляет счетчик страйков создателя.
// Побочные эффекты прошлых страйков не откатываются: монетизацию включает
// обратно только админ, удаленные ролики не восстанавливаются.
func (s *Service) ClearStrikes(ctx context.Context, username string) (models.CreatorStats, error) {
	const op = "services.moderation.ClearStrikes"

	stats := s.stats.Get(ctx, username)
	stats.Strikes = 0
	if err := s.stats.Save(ctx, stats); err != nil {
		return models.CreatorStats{}, fmt.Errorf("%s: %w", op, err)
	}
	return stats, nil
}
