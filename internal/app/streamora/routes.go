// Package streamora предоставляет маршруты для основного приложения.
package streamora

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/streamora/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/streamora/internal/http/handlers/auth/register"
	creatorflags "github.com/magabrotheeeer/streamora/internal/http/handlers/creator/flags"
	eventread "github.com/magabrotheeeer/streamora/internal/http/handlers/event/read"
	eventset "github.com/magabrotheeeer/streamora/internal/http/handlers/event/set"
	eventstop "github.com/magabrotheeeer/streamora/internal/http/handlers/event/stop"
	"github.com/magabrotheeeer/streamora/internal/http/handlers/health"
	monetizationactivate "github.com/magabrotheeeer/streamora/internal/http/handlers/monetization/activate"
	monetizationeligibility "github.com/magabrotheeeer/streamora/internal/http/handlers/monetization/eligibility"
	monetizationlist "github.com/magabrotheeeer/streamora/internal/http/handlers/monetization/list"
	monetizationrequest "github.com/magabrotheeeer/streamora/internal/http/handlers/monetization/request"
	monetizationresolve "github.com/magabrotheeeer/streamora/internal/http/handlers/monetization/resolve"
	notificationinbox "github.com/magabrotheeeer/streamora/internal/http/handlers/notification/inbox"
	notificationlist "github.com/magabrotheeeer/streamora/internal/http/handlers/notification/list"
	notificationmarkread "github.com/magabrotheeeer/streamora/internal/http/handlers/notification/markread"
	notificationsend "github.com/magabrotheeeer/streamora/internal/http/handlers/notification/send"
	payoutlist "github.com/magabrotheeeer/streamora/internal/http/handlers/payout/list"
	payoutrequest "github.com/magabrotheeeer/streamora/internal/http/handlers/payout/request"
	payoutresolve "github.com/magabrotheeeer/streamora/internal/http/handlers/payout/resolve"
	statslist "github.com/magabrotheeeer/streamora/internal/http/handlers/stats/list"
	statsread "github.com/magabrotheeeer/streamora/internal/http/handlers/stats/read"
	statsupdate "github.com/magabrotheeeer/streamora/internal/http/handlers/stats/update"
	strikeclear "github.com/magabrotheeeer/streamora/internal/http/handlers/strike/clear"
	strikeissue "github.com/magabrotheeeer/streamora/internal/http/handlers/strike/issue"
	subscriptiontoggle "github.com/magabrotheeeer/streamora/internal/http/handlers/subscription/toggle"
	userslist "github.com/magabrotheeeer/streamora/internal/http/handlers/users/list"
	videocomment "github.com/magabrotheeeer/streamora/internal/http/handlers/video/comment"
	videofeed "github.com/magabrotheeeer/streamora/internal/http/handlers/video/feed"
	videolike "github.com/magabrotheeeer/streamora/internal/http/handlers/video/like"
	videolist "github.com/magabrotheeeer/streamora/internal/http/handlers/video/list"
	videoread "github.com/magabrotheeeer/streamora/internal/http/handlers/video/read"
	videoremove "github.com/magabrotheeeer/streamora/internal/http/handlers/video/remove"
	videosave "github.com/magabrotheeeer/streamora/internal/http/handlers/video/save"
	videosearch "github.com/magabrotheeeer/streamora/internal/http/handlers/video/search"
	videoshorts "github.com/magabrotheeeer/streamora/internal/http/handlers/video/shorts"
	videoview "github.com/magabrotheeeer/streamora/internal/http/handlers/video/view"
	"github.com/magabrotheeeer/streamora/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streamora/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/streamora/internal/services/auth"
	eventservice "github.com/magabrotheeeer/streamora/internal/services/event"
	moderationservice "github.com/magabrotheeeer/streamora/internal/services/moderation"
	monetizationservice "github.com/magabrotheeeer/streamora/internal/services/monetization"
	notificationservice "github.com/magabrotheeeer/streamora/internal/services/notification"
	videoservice "github.com/magabrotheeeer/streamora/internal/services/video"
)

// Services собирает сервисы приложения для регистрации маршрутов.
type Services struct {
	Auth         *authservice.Service
	Monetization *monetizationservice.Service
	Moderation   *moderationservice.Service
	Notification *notificationservice.Service
	Video        *videoservice.Service
	Event        *eventservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, maker jwt.Maker, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(maker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/stats", statsread.New(logger, s.Monetization).ServeHTTP)
			r.Get("/monetization/eligibility", monetizationeligibility.New(logger, s.Monetization).ServeHTTP)
			r.Post("/monetization/request", monetizationrequest.New(logger, s.Monetization).ServeHTTP)
			r.Post("/monetization/activate", monetizationactivate.New(logger, s.Monetization).ServeHTTP)
			r.Post("/payouts/request", payoutrequest.New(logger, s.Monetization).ServeHTTP)

			r.Get("/notifications", notificationinbox.New(logger, s.Notification).ServeHTTP)
			r.Post("/notifications/{id}/read", notificationmarkread.New(logger, s.Notification).ServeHTTP)

			r.Post("/videos", videosave.New(logger, s.Video).ServeHTTP)
			r.Get("/videos", videolist.New(logger, s.Video).ServeHTTP)
			r.Get("/videos/{id}", videoread.New(logger, s.Video).ServeHTTP)
			r.Delete("/videos/{id}", videoremove.New(logger, s.Video).ServeHTTP)
			r.Post("/videos/{id}/view", videoview.New(logger, s.Video).ServeHTTP)
			r.Post("/videos/{id}/like", videolike.New(logger, s.Video).ServeHTTP)
			r.Post("/videos/{id}/comments", videocomment.New(logger, s.Video).ServeHTTP)
			r.Get("/feed", videofeed.New(logger, s.Video).ServeHTTP)
			r.Get("/shorts", videoshorts.New(logger, s.Video).ServeHTTP)
			r.Get("/search", videosearch.New(logger, s.Video).ServeHTTP)
			r.Post("/subscriptions/{username}", subscriptiontoggle.New(logger, s.Video).ServeHTTP)
			r.Get("/event", eventread.New(logger, s.Event).ServeHTTP)

			// Админская группа
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))

				r.Get("/admin/users", userslist.New(logger, s.Auth).ServeHTTP)
				r.Get("/admin/stats", statslist.New(logger, s.Monetization).ServeHTTP)
				r.Put("/admin/stats/{username}", statsupdate.New(logger, s.Monetization).ServeHTTP)
				r.Get("/admin/monetization", monetizationlist.New(logger, s.Monetization).ServeHTTP)
				r.Post("/admin/monetization/{id}", monetizationresolve.New(logger, s.Monetization).ServeHTTP)
				r.Get("/admin/payouts", payoutlist.New(logger, s.Monetization).ServeHTTP)
				r.Post("/admin/payouts/{id}", payoutresolve.New(logger, s.Monetization).ServeHTTP)
				r.Post("/admin/notifications", notificationsend.New(logger, s.Notification).ServeHTTP)
				r.Get("/admin/notifications", notificationlist.New(logger, s.Notification).ServeHTTP)
				r.Post("/admin/strikes/{username}", strikeissue.New(logger, s.Moderation).ServeHTTP)
				r.Delete("/admin/strikes/{username}", strikeclear.New(logger, s.Moderation).ServeHTTP)
				r.Patch("/admin/creators/{username}/flags", creatorflags.New(logger, s.Monetization).ServeHTTP)
				r.Post("/admin/event", eventset.New(logger, s.Event).ServeHTTP)
				r.Delete("/admin/event", eventstop.New(logger, s.Event).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
