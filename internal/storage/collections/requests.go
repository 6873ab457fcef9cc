package collections

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/storage/kv"
	"github.com/magabrotheeeer/streamora/internal/storage/records"
)

// MonetizationRequests репозиторий заявок на монетизацию.
// Идентичность записи — username заявителя, не id: повторная заявка
// перезаписывает существующую.
type MonetizationRequests struct {
	store kv.Store
	log   *slog.Logger
}

// NewMonetizationRequests создает репозиторий заявок на монетизацию.
func NewMonetizationRequests(store kv.Store, log *slog.Logger) *MonetizationRequests {
	return &MonetizationRequests{store: store, log: log}
}

// List возвращает все заявки.
func (m *MonetizationRequests) List(ctx context.Context) []models.MonetizationRequest {
	list, err := records.Load[[]models.MonetizationRequest](ctx, m.store, monRequestsKey)
	if err != nil {
		m.log.Warn("monetization request collection unreadable, using empty", sl.Err(err))
		return nil
	}
	return list
}

// Upsert вставляет заявку либо заменяет существующую заявку того же username.
func (m *MonetizationRequests) Upsert(ctx context.Context, req models.MonetizationRequest) error {
	list := records.UpsertBy(m.List(ctx),
		func(x models.MonetizationRequest) bool { return x.Username == req.Username }, req)
	return records.Store(ctx, m.store, monRequestsKey, list)
}

// SetStatus переводит заявку по id в новый статус и возвращает её.
// Для неизвестного id возвращает nil без ошибки.
func (m *MonetizationRequests) SetStatus(ctx context.Context, id string, status models.RequestStatus) (*models.MonetizationRequest, error) {
	list := m.List(ctx)
	found := records.FindBy(list, func(x models.MonetizationRequest) bool { return x.ID == id })
	if found == nil {
		return nil, nil
	}
	found.Status = status
	if err := records.Store(ctx, m.store, monRequestsKey, list); err != nil {
		return nil, err
	}
	result := *found
	return &result, nil
}

// PayoutRequests репозиторий заявок на выплату. Записи только добавляются,
// идентичность — id.
type PayoutRequests struct {
	store kv.Store
	log   *slog.Logger
}

// NewPayoutRequests создает репозиторий заявок на выплату.
func NewPayoutRequests(store kv.Store, log *slog.Logger) *PayoutRequests {
	return &PayoutRequests{store: store, log: log}
}

// List возвращает все заявки.
func (p *PayoutRequests) List(ctx context.Context) []models.PayoutRequest {
	list, err := records.Load[[]models.PayoutRequest](ctx, p.store, payoutsKey)
	if err != nil {
		p.log.Warn("payout request collection unreadable, using empty", sl.Err(err))
		return nil
	}
	return list
}

// Add добавляет заявку в начало коллекции.
func (p *PayoutRequests) Add(ctx context.Context, req models.PayoutRequest) error {
	list := append([]models.PayoutRequest{req}, p.List(ctx)...)
	return records.Store(ctx, p.store, payoutsKey, list)
}

// SetStatus переводит заявку по id в новый статус и возвращает её.
// Для неизвестного id возвращает nil без ошибки.
func (p *PayoutRequests) SetStatus(ctx context.Context, id string, status models.RequestStatus) (*models.PayoutRequest, error) {
	list := p.List(ctx)
	found := records.FindBy(list, func(x models.PayoutRequest) bool { return x.ID == id })
	if found == nil {
		return nil, nil
	}
	found.Status = status
	if err := records.Store(ctx, p.store, payoutsKey, list); err != nil {
		return nil, err
	}
	result := *found
	return &result, nil
}
