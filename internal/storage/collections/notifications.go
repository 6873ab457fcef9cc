package collections

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/storage/kv"
	"github.com/magabrotheeeer/streamora/internal/storage/records"
)

// Notifications репозиторий коллекции уведомлений.
type Notifications struct {
	store kv.Store
	log   *slog.Logger
}

// NewNotifications создает репозиторий уведомлений.
func NewNotifications(store kv.Store, log *slog.Logger) *Notifications {
	return &Notifications{store: store, log: log}
}

// List возвращает все уведомления, самые свежие — первыми.
func (n *Notifications) List(ctx context.Context) []models.Notification {
	list, err := records.Load[[]models.Notification](ctx, n.store, notificationsKey)
	if err != nil {
		n.log.Warn("notification collection unreadable, using empty", sl.Err(err))
		return nil
	}
	return list
}

// Add добавляет уведомление в начало коллекции.
func (n *Notifications) Add(ctx context.Context, notification models.Notification) error {
	list := append([]models.Notification{notification}, n.List(ctx)...)
	return records.Store(ctx, n.store, notificationsKey, list)
}

// ForUser возвращает входящие пользователя: адресованные лично ему
// и широковещательные. Чистый фильтр по всей коллекции при каждом чтении.
func (n *Notifications) ForUser(ctx context.Context, username string) []models.Notification {
	var result []models.Notification
	for _, item := range n.List(ctx) {
		if item.TargetUsername == username || item.TargetUsername == models.BroadcastTarget {
			result = append(result, item)
		}
	}
	return result
}

// MarkRead выставляет read у одной записи и возвращает её.
// Для неизвестного id возвращает nil без ошибки.
func (n *Notifications) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	list := n.List(ctx)
	found := records.FindBy(list, func(x models.Notification) bool { return x.ID == id })
	if found == nil {
		return nil, nil
	}
	found.Read = true
	if err := records.Store(ctx, n.store, notificationsKey, list); err != nil {
		return nil, err
	}
	result := *found
	return &result, nil
}
