// Package read реализует HTTP-обработчик чтения одного ролика.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/services/video"
)

// Handler управляет HTTP-запросами на чтение ролика.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики каталога роликов.
type Service interface {
	ByID(ctx context.Context, id string) (models.Video, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить ролик
// @Description Возвращает ролик по идентификатору.
// @Tags Videos
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID ролика"
// @Success 200 {object} map[string]any "Ролик"
// @Failure 404 {object} response.ErrorResponse "Ролик не найден"
// @Router /videos/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	found, err := h.service.ByID(r.Context(), id)
	if errors.Is(err, video.ErrVideoNotFound) {
		log.Warn("video not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("video not found"))
		return
	}

	render.JSON(w, r, response.OKWithData(found))
}
