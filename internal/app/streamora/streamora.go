// Package streamora собирает приложение: подключения к хранилищам,
// сервисы, HTTP-сервер и его жизненный цикл.
package streamora

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/streamora/internal/config"
	"github.com/magabrotheeeer/streamora/internal/lib/jwt"
	"github.com/magabrotheeeer/streamora/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	authservice "github.com/magabrotheeeer/streamora/internal/services/auth"
	eventservice "github.com/magabrotheeeer/streamora/internal/services/event"
	moderationservice "github.com/magabrotheeeer/streamora/internal/services/moderation"
	monetizationservice "github.com/magabrotheeeer/streamora/internal/services/monetization"
	notificationservice "github.com/magabrotheeeer/streamora/internal/services/notification"
	videoservice "github.com/magabrotheeeer/streamora/internal/services/video"
	"github.com/magabrotheeeer/streamora/internal/storage/collections"
	"github.com/magabrotheeeer/streamora/internal/storage/kv"
	"github.com/magabrotheeeer/streamora/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	amqp   *amqp.Connection
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}

	store, err := kv.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	var amqpConn *amqp.Connection
	var amqpChannel *amqp.Channel
	if cfg.RabbitMQ.URL != "" {
		amqpConn, amqpChannel, err = rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			// Брокер вспомогательный: без него уведомления просто не публикуются наружу.
			logger.Warn("rabbitmq unavailable, broker publishing disabled", sl.Err(err))
			amqpConn, amqpChannel = nil, nil
		}
	}

	stats := collections.NewStats(store, logger)
	videos := collections.NewVideos(store, logger)
	notifications := collections.NewNotifications(store, logger)
	monetizationRequests := collections.NewMonetizationRequests(store, logger)
	payoutRequests := collections.NewPayoutRequests(store, logger)
	subscriptions := collections.NewSubscriptions(store, logger)
	siteEvents := collections.NewSiteEvents(store, logger)

	maker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	notificationService := notificationservice.New(logger, notifications, amqpChannel, cfg.RabbitMQ.Exchange)
	authService := authservice.New(db, maker, cfg.AdminAccount)
	monetizationService := monetizationservice.New(stats, monetizationRequests, payoutRequests, notificationService)
	moderationService := moderationservice.New(logger, stats, videos, notificationService)
	videoService := videoservice.New(videos, stats, subscriptions)
	eventService := eventservice.New(siteEvents)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, maker, &Services{
		Auth:         authService,
		Monetization: monetizationService,
		Moderation:   moderationService,
		Notification: notificationService,
		Video:        videoService,
		Event:        eventService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		amqp:   amqpConn,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", sl.Err(closeErr))
		}
		if a.amqp != nil {
			if closeErr := a.amqp.Close(); closeErr != nil {
				a.logger.Error("failed to close rabbitmq connection", sl.Err(closeErr))
			}
		}
		return err
	}
}
