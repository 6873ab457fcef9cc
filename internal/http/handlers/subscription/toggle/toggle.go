// Package toggle реализует HTTP-обработчик подписки на канал:
// один и тот же запрос подписывает и отписывает.
package toggle

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/lib/sl"
)

// Handler управляет HTTP-запросами на подписку.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики подписок.
type Service interface {
	ToggleSubscription(ctx context.Context, subscriber, creator string) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Подписаться или отписаться
// @Description Переключает подписку текущего пользователя на канал создателя.
// @Tags Subscriptions
// @Produce  json
// @Security BearerAuth
// @Param username path string true "Username создателя"
// @Success 200 {object} map[string]any "Итоговое состояние подписки"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сохранении"
// @Router /subscriptions/{username} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.toggle"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session, ok := middlewarectx.SessionFromContext(r.Context())
	if !ok {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	creator := chi.URLParam(r, "username")

	subscribed, err := h.service.ToggleSubscription(r.Context(), session.Username, creator)
	if err != nil {
		log.Error("failed to toggle subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle subscription"))
		return
	}

	log.Info("subscription toggled",
		slog.String("subscriber", session.Username),
		slog.String("creator", creator),
		slog.Bool("subscribed", subscribed))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"subscribed": subscribed,
	}))
}
