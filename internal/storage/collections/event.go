package collections

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/storage/kv"
	"github.com/magabrotheeeer/streamora/internal/storage/records"
)

// SiteEvents репозиторий активного события площадки.
// Хранится не более одной записи.
type SiteEvents struct {
	store kv.Store
	log   *slog.Logger
}

// NewSiteEvents создает репозиторий событий.
func NewSiteEvents(store kv.Store, log *slog.Logger) *SiteEvents {
	return &SiteEvents{store: store, log: log}
}

// Active возвращает активное событие или nil.
func (e *SiteEvents) Active(ctx context.Context) *models.SiteEvent {
	event, err := records.Load[*models.SiteEvent](ctx, e.store, siteEventKey)
	if err != nil {
		e.log.Warn("site event unreadable, treating as none", sl.Err(err))
		return nil
	}
	return event
}

// Set сохраняет активное событие.
func (e *SiteEvents) Set(ctx context.Context, event models.SiteEvent) error {
	return records.Store(ctx, e.store, siteEventKey, &event)
}

// Clear убирает активное событие.
func (e *SiteEvents) Clear(ctx context.Context) error {
	return e.store.Del(ctx, siteEventKey)
}
