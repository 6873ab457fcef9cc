// Package notification реализует диспетчер уведомлений: доставку личных
// и широковещательных сообщений, входящие пользователя и отметку о прочтении.
// Каждое сохраненное уведомление дополнительно публикуется в RabbitMQ для
// внешних потребителей; недоступность брокера доставку не блокирует.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/streamora/internal/lib/metrics"
	"github.com/magabrotheeeer/streamora/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Ошибки уровня бизнес-логики уведомлений.
var (
	ErrEmptyMessage    = errors.New("notification message is empty")
	ErrUnknownCategory = errors.New("unknown notification category")
	ErrUnknownID       = errors.New("notification not found")
)

// NotificationRepository доступ к коллекции уведомлений.
type NotificationRepository interface {
	List(ctx context.Context) []models.Notification
	Add(ctx context.Context, notification models.Notification) error
	ForUser(ctx context.Context, username string) []models.Notification
	MarkRead(ctx context.Context, id string) (*models.Notification, error)
}

// Service диспетчер уведомлений.
type Service struct {
	log      *slog.Logger
	repo     NotificationRepository
	channel  *amqp.Channel
	exchange string
}

// New создает диспетчер уведомлений. channel может быть nil,
// тогда публикация в брокер пропускается.
func New(log *slog.Logger, repo NotificationRepository, channel *amqp.Channel, exchange string) *Service {
	return &Service{log: log, repo: repo, channel: channel, exchange: exchange}
}

// Notify сохраняет уведомление и публикует его в брокер.
// target — username получателя или "ALL" для широковещательной рассылки.
func (s *Service) Notify(ctx context.Context, target string, category models.NotificationCategory, message string) error {
	const op = "services.notification.Notify"

	if message == "" {
		return ErrEmptyMessage
	}
	if !models.ValidCategory(category) {
		return ErrUnknownCategory
	}

	notification := models.Notification{
		ID:             uuid.NewString(),
		TargetUsername: target,
		Category:       category,
		Message:        message,
		CreatedAt:      time.Now().UTC(),
		Read:           false,
	}
	if err := s.repo.Add(ctx, notification); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	metrics.NotificationsSent.WithLabelValues(string(category)).Inc()

	if s.channel != nil {
		routingkey := fmt.Sprintf("notification.%s", category)
		if err := rabbitmq.PublishMessage(s.channel, s.exchange, routingkey, notification); err != nil {
			s.log.Warn("failed to publish notification to broker", sl.Err(err))
		}
	}
	return nil
}

// Send обрабатывает админскую рассылку из JSON-запроса.
func (s *Service) Send(ctx context.Context, req models.DummySendNotification) error {
	return s.Notify(ctx, req.Target, models.NotificationCategory(req.Category), req.Message)
}

// Inbox возвращает входящие пользователя: личные и широковещательные.
func (s *Service) Inbox(ctx context.Context, username string) []models.Notification {
	return s.repo.ForUser(ctx, username)
}

// All возвращает все уведомления для админской панели.
func (s *Service) All(ctx context.Context) []models.Notification {
	return s.repo.List(ctx)
}

// MarkRead помечает уведомление прочитанным. У широковещательной записи
// флаг общий на всех получателей.
func (s *Service) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	const op = "services.notification.MarkRead"

	notification, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if notification == nil {
		return nil, ErrUnknownID
	}
	return notification, nil
}
