// Package event управляет тематическим событием площадки.
// Активным бывает не более одного события, запуск нового заменяет текущее.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/streamora/internal/models"
)

// SiteEventRepository доступ к записи активного события.
type SiteEventRepository interface {
	Active(ctx context.Context) *models.SiteEvent
	Set(ctx context.Context, event models.SiteEvent) error
	Clear(ctx context.Context) error
}

// Service управление событием площадки.
type Service struct {
	repo SiteEventRepository
}

// New создает сервис событий.
func New(repo SiteEventRepository) *Service {
	return &Service{repo: repo}
}

// Start запускает событие, заменяя предыдущее.
func (s *Service) Start(ctx context.Context, req models.DummySiteEvent) (models.SiteEvent, error) {
	const op = "services.event.Start"

	event := models.SiteEvent{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Theme:     req.Theme,
		Active:    true,
		StartedAt: time.Now().UTC(),
	}
	if err := s.repo.Set(ctx, event); err != nil {
		return models.SiteEvent{}, fmt.Errorf("%s: %w", op, err)
	}
	return event, nil
}

// Stop завершает активное событие.
func (s *Service) Stop(ctx context.Context) error {
	const op = "services.event.Stop"

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Active возвращает активное событие или nil.
func (s *Service) Active(ctx context.Context) *models.SiteEvent {
	return s.repo.Active(ctx)
}
