// Package video реализует каталог роликов: публикацию и редактирование,
// ленты, поиск, просмотры с начислением рекламного дохода, лайки,
// комментарии и подписки на каналы.
package video

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/services/monetization"
)

// SearchLimit максимум результатов поиска.
const SearchLimit = 10

// Ошибки уровня бизнес-логики каталога.
var (
	ErrVideoNotFound = errors.New("video not found")
	ErrNotOwner      = errors.New("video belongs to another user")
	ErrQueryTooShort = errors.New("search query is too short")
)

// VideoRepository доступ к коллекции роликов.
type VideoRepository interface {
	List(ctx context.Context) []models.Video
	Save(ctx context.Context, video models.Video) error
	ByID(ctx context.Context, id string) *models.Video
	ByUploader(ctx context.Context, username string) []models.Video
	Delete(ctx context.Context, id string) error
}

// StatsRepository доступ к статистике создателей.
type StatsRepository interface {
	Get(ctx context.Context, username string) models.CreatorStats
	Save(ctx context.Context, stats models.CreatorStats) error
}

// SubscriptionRepository доступ к подпискам на каналы.
type SubscriptionRepository interface {
	For(ctx context.Context, username string) []string
	IsSubscribed(ctx context.Context, subscriber, creator string) bool
	Toggle(ctx context.Context, subscriber, creator string) (bool, error)
}

// Service каталог роликов.
type Service struct {
	videos        VideoRepository
	stats         StatsRepository
	subscriptions SubscriptionRepository
}

// New создает каталог роликов.
func New(videos VideoRepository, stats StatsRepository, subscriptions SubscriptionRepository) *Service {
	return &Service{videos: videos, stats: stats, subscriptions: subscriptions}
}

// Save публикует новый ролик или обновляет существующий.
// Править чужой ролик может только админ; счетчики и комментарии
// при правке сохраняются.
func (s *Service) Save(ctx context.Context, session models.Session, req models.DummyVideo) (models.Video, error) {
	const op = "services.video.Save"

	video := models.Video{
		ID:               req.ID,
		Type:             models.VideoType(req.Type),
		Title:            req.Title,
		Description:      req.Description,
		Tags:             req.Tags,
		ThumbnailURL:     req.ThumbnailURL,
		VideoURL:         req.VideoURL,
		EmbedURL:         req.EmbedURL,
		EmbedSource:      req.EmbedSource,
		UploaderUsername: session.Username,
		UploaderName:     session.Name,
		IsPromoted:       req.IsPromoted,
		CreatedAt:        time.Now().UTC(),
		Duration:         req.Duration,
	}

	if req.ID == "" {
		video.ID = uuid.NewString()
	} else if existing := s.videos.ByID(ctx, req.ID); existing != nil {
		if existing.UploaderUsername != session.Username && !session.IsAdmin() {
			return models.Video{}, ErrNotOwner
		}
		video.UploaderUsername = existing.UploaderUsername
		video.UploaderName = existing.UploaderName
		video.Views = existing.Views
		video.Likes = existing.Likes
		video.Comments = existing.Comments
		video.CreatedAt = existing.CreatedAt
	}

	if err := s.videos.Save(ctx, video); err != nil {
		return models.Video{}, fmt.Errorf("%s: %w", op, err)
	}
	return video, nil
}

// Delete удаляет ролик. Доступно владельцу и админу.
func (s *Service) Delete(ctx context.Context, session models.Session, id string) error {
	const op = "services.video.Delete"

	video := s.videos.ByID(ctx, id)
	if video == nil {
		return ErrVideoNotFound
	}
	if video.UploaderUsername != session.Username && !session.IsAdmin() {
		return ErrNotOwner
	}
	if err := s.videos.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ByID возвращает ролик по id.
func (s *Service) ByID(ctx context.Context, id string) (models.Video, error) {
	video := s.videos.ByID(ctx, id)
	if video == nil {
		return models.Video{}, ErrVideoNotFound
	}
	return *video, nil
}

// ByUploader возвращает ролики одного создателя.
func (s *Service) ByUploader(ctx context.Context, username string) []models.Video {
	return s.videos.ByUploader(ctx, username)
}

// HomeFeed возвращает домашнюю ленту: продвигаемые длинные и встроенные
// ролики с превью.
func (s *Service) HomeFeed(ctx context.Context) []models.Video {
	var result []models.Video
	for _, video := range s.videos.List(ctx) {
		if video.PromotableToHome() {
			result = append(result, video)
		}
	}
	return result
}

// PromotedWithThumbnailCount возвращает число роликов, допущенных к
// продвижению: флаг isPromoted и наличие превью, тип не учитывается.
func (s *Service) PromotedWithThumbnailCount(ctx context.Context) int {
	count := 0
	for _, video := range s.videos.List(ctx) {
		if video.IsPromoted && video.ThumbnailURL != "" {
			count++
		}
	}
	return count
}

// ShortsFeed возвращает ленту коротких роликов.
func (s *Service) ShortsFeed(ctx context.Context) []models.Video {
	var result []models.Video
	for _, video := range s.videos.List(ctx) {
		if video.Type == models.VideoShort {
			result = append(result, video)
		}
	}
	return result
}

// Search ищет ролики по подстроке в названии и тегах без учета регистра.
// Запрос короче двух символов отклоняется, выдача ограничена SearchLimit.
func (s *Service) Search(ctx context.Context, query string) ([]models.Video, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < 2 {
		return nil, ErrQueryTooShort
	}

	var result []models.Video
	for _, video := range s.videos.List(ctx) {
		if matchesQuery(video, query) {
			result = append(result, video)
			if len(result) == SearchLimit {
				break
			}
		}
	}
	return result, nil
}

func matchesQuery(video models.Video, query string) bool {
	if strings.Contains(strings.ToLower(video.Title), query) {
		return true
	}
	for _, tag := range video.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// AddView засчитывает просмотр: счетчик ролика, суммарные просмотры
// создателя и, для монетизированного канала, доход по ставке CPM
// с учетом доли плана.
func (s *Service) AddView(ctx context.Context, id string) (models.Video, error) {
	const op = "services.video.AddView"

	video := s.videos.ByID(ctx, id)
	if video == nil {
		return models.Video{}, ErrVideoNotFound
	}
	video.Views++
	if err := s.videos.Save(ctx, *video); err != nil {
		return models.Video{}, fmt.Errorf("%s: %w", op, err)
	}

	stats := s.stats.Get(ctx, video.UploaderUsername)
	stats.TotalViews++
	if stats.IsMonetized && stats.AdEligible {
		perView := monetization.CPMRate(stats.CPMRank) / 1000 * monetization.RevenueShare(stats.MonetizationPlan)
		stats.EstimatedEarnings += perView
		stats.TotalEarnings += perView
	}
	if err := s.stats.Save(ctx, stats); err != nil {
		return models.Video{}, fmt.Errorf("%s: %w", op, err)
	}
	return *video, nil
}

// Like увеличивает счетчик лайков ролика.
func (s *Service) Like(ctx context.Context, id string) (models.Video, error) {
	const op = "services.video.Like"

	video := s.videos.ByID(ctx, id)
	if video == nil {
		return models.Video{}, ErrVideoNotFound
	}
	video.Likes++
	if err := s.videos.Save(ctx, *video); err != nil {
		return models.Video{}, fmt.Errorf("%s: %w", op, err)
	}
	return *video, nil
}

// AddComment добавляет комментарий под роликом от имени сессии.
func (s *Service) AddComment(ctx context.Context, session models.Session, id, text string) (models.Video, error) {
	const op = "services.video.AddComment"

	video := s.videos.ByID(ctx, id)
	if video == nil {
		return models.Video{}, ErrVideoNotFound
	}
	video.Comments = append(video.Comments, models.Comment{
		ID:        uuid.NewString(),
		Username:  session.Username,
		Name:      session.Name,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	if err := s.videos.Save(ctx, *video); err != nil {
		return models.Video{}, fmt.Errorf("%s: %w", op, err)
	}
	return *video, nil
}

// ToggleSubscription подписывает или отписывает пользователя от канала.
// Возвращает итоговое состояние подписки. Счетчик subscriberCount создателя
// остается под ручным контролем админа и здесь не меняется.
func (s *Service) ToggleSubscription(ctx context.Context, subscriber, creator string) (bool, error) {
	const op = "services.video.ToggleSubscription"

	subscribed, err := s.subscriptions.Toggle(ctx, subscriber, creator)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return subscribed, nil
}

// Subscriptions возвращает каналы, на которые подписан пользователь.
func (s *Service) Subscriptions(ctx context.Context, username string) []string {
	return s.subscriptions.For(ctx, username)
}

// IsSubscribed сообщает, подписан ли пользователь на канал.
func (s *Service) IsSubscribed(ctx context.Context, subscriber, creator string) bool {
	return s.subscriptions.IsSubscribed(ctx, subscriber, creator)
}
