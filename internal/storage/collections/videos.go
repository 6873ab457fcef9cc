package collections

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/storage/kv"
	"github.com/magabrotheeeer/streamora/internal/storage/records"
)

// Videos репозиторий коллекции роликов.
type Videos struct {
	store kv.Store
	log   *slog.Logger
}

// NewVideos создает репозиторий роликов.
func NewVideos(store kv.Store, log *slog.Logger) *Videos {
	return &Videos{store: store, log: log}
}

// List возвращает все ролики, самые свежие — первыми.
func (v *Videos) List(ctx context.Context) []models.Video {
	list, err := records.Load[[]models.Video](ctx, v.store, videosKey)
	if err != nil {
		v.log.Warn("video collection unreadable, using empty", sl.Err(err))
		return nil
	}
	return list
}

// Save вставляет ролик или заменяет существующий по id.
func (v *Videos) Save(ctx context.Context, video models.Video) error {
	list := v.List(ctx)
	list = records.UpsertBy(list, func(x models.Video) bool { return x.ID == video.ID }, video)
	return records.Store(ctx, v.store, videosKey, list)
}

// ByID возвращает ролик по id или nil.
func (v *Videos) ByID(ctx context.Context, id string) *models.Video {
	return records.FindBy(v.List(ctx), func(x models.Video) bool { return x.ID == id })
}

// ByUploader возвращает ролики одного создателя.
func (v *Videos) ByUploader(ctx context.Context, username string) []models.Video {
	var result []models.Video
	for _, video := range v.List(ctx) {
		if video.UploaderUsername == username {
			result = append(result, video)
		}
	}
	return result
}

// Delete удаляет ролик по id.
func (v *Videos) Delete(ctx context.Context, id string) error {
	list := records.DeleteBy(v.List(ctx), func(x models.Video) bool { return x.ID == id })
	return records.Store(ctx, v.store, videosKey, list)
}

// DeleteByUploader удаляет все ролики создателя одной записью коллекции.
// Возвращает количество удаленных записей.
func (v *Videos) DeleteByUploader(ctx context.Context, username string) (int, error) {
	list := v.List(ctx)
	remaining := records.DeleteBy(list, func(x models.Video) bool { return x.UploaderUsername == username })
	removed := len(list) - len(remaining)
	if removed == 0 {
		return 0, nil
	}
	if err := records.Store(ctx, v.store, videosKey, remaining); err != nil {
		return 0, err
	}
	return removed, nil
}
