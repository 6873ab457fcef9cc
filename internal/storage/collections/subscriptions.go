package collections

import (
	"context"
	"log/slog"
	"slices"

	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/storage/kv"
	"github.com/magabrotheeeer/streamora/internal/storage/records"
)

// Subscriptions репозиторий подписок зрителей на каналы.
// Коллекция — map username зрителя -> список username каналов.
// Счетчик subscriberCount в статистике создателя от этой коллекции
// не зависит и правится только админом.
type Subscriptions struct {
	store kv.Store
	log   *slog.Logger
}

// NewSubscriptions создает репозиторий подписок.
func NewSubscriptions(store kv.Store, log *slog.Logger) *Subscriptions {
	return &Subscriptions{store: store, log: log}
}

func (s *Subscriptions) all(ctx context.Context) map[string][]string {
	m, err := records.Load[map[string][]string](ctx, s.store, subscriptionsKey)
	if err != nil {
		s.log.Warn("subscription collection unreadable, using empty", sl.Err(err))
		return map[string][]string{}
	}
	if m == nil {
		return map[string][]string{}
	}
	return m
}

// For возвращает список каналов, на которые подписан пользователь.
func (s *Subscriptions) For(ctx context.Context, username string) []string {
	return s.all(ctx)[username]
}

// IsSubscribed проверяет наличие подписки.
func (s *Subscriptions) IsSubscribed(ctx context.Context, subscriber, creator string) bool {
	return slices.Contains(s.all(ctx)[subscriber], creator)
}

// Toggle переключает подписку и возвращает итоговое состояние:
// true — подписка оформлена, false — снята.
func (s *Subscriptions) Toggle(ctx context.Context, subscriber, creator string) (bool, error) {
	m := s.all(ctx)
	list := m[subscriber]
	idx := slices.Index(list, creator)
	subscribed := idx < 0
	if subscribed {
		list = append(list, creator)
	} else {
		list = slices.Delete(list, idx, idx+1)
	}
	m[subscriber] = list
	if err := records.Store(ctx, s.store, subscriptionsKey, m); err != nil {
		return false, err
	}
	return subscribed, nil
}
