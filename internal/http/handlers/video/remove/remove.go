// Package remove реализует HTTP-обработчик удаления ролика.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/services/video"
)

// Handler управляет HTTP-запросами на удаление ролика.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики каталога роликов.
type Service interface {
	Delete(ctx context.Context, session models.Session, id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить ролик
// @Description Удаляет ролик. Доступно владельцу и админу.
// @Tags Videos
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID ролика"
// @Success 200 {object} map[string]any "Ролик удален"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Ролик принадлежит другому пользователю"
// @Failure 404 {object} response.ErrorResponse "Ролик не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении"
// @Router /videos/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.remove"
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

	id := chi.URLParam(r, "id")

	err := h.service.Delete(r.Context(), session, id)
	if errors.Is(err, video.ErrVideoNotFound) {
		log.Warn("video not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("video not found"))
		return
	}
	if errors.Is(err, video.ErrNotOwner) {
		log.Warn("video delete denied", slog.String("username", session.Username))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("video belongs to another user"))
		return
	}
	if err != nil {
		log.Error("failed to delete video", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete video"))
		return
	}

	log.Info("video deleted", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deleted": true,
	}))
}
