// Package shorts реализует HTTP-обработчик ленты коротких роликов.
package shorts

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Handler управляет HTTP-запросами на ленту коротких роликов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики лент.
type Service interface {
	ShortsFeed(ctx context.Context) []models.Video
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Лента коротких роликов
// @Description Возвращает все короткие ролики.
// @Tags Videos
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список роликов"
// @Router /shorts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.shorts"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	feed := h.service.ShortsFeed(r.Context())
	log.Info("shorts feed served", slog.Int("count", len(feed)))
	render.JSON(w, r, response.OKWithData(feed))
}
