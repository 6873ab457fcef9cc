// Package view реализует HTTP-обработчик засчитывания просмотра ролика.
package view

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/services/video"
)

// Handler управляет HTTP-запросами на засчитывание просмотра.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики просмотров.
type Service interface {
	AddView(ctx context.Context, id string) (models.Video, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Засчитать просмотр
// @Description Увеличивает счетчик просмотров и начисляет доход монетизированному создателю.
// @Tags Videos
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID ролика"
// @Success 200 {object} map[string]any "Ролик с обновленным счетчиком"
// @Failure 404 {object} response.ErrorResponse "Ролик не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сохранении"
// @Router /videos/{id}/view [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.view"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	updated, err := h.service.AddView(r.Context(), id)
	if errors.Is(err, video.ErrVideoNotFound) {
		log.Warn("video not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("video not found"))
		return
	}
	if err != nil {
		log.Error("failed to add view", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not add view"))
		return
	}

	render.JSON(w, r, response.OKWithData(updated))
}
