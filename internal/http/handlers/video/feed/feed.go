// Package feed реализует HTTP-обработчик домашней ленты:
// продвигаемые длинные и встроенные ролики с превью.
package feed

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Handler управляет HTTP-запросами на домашнюю ленту.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики лент.
type Service interface {
	HomeFeed(ctx context.Context) []models.Video
	PromotedWithThumbnailCount(ctx context.Context) int
}

// FeedResponse тело ответа домашней ленты.
type FeedResponse struct {
	PromotedCount int            `json:"promotedCount"`
	Videos        []models.Video `json:"videos"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Домашняя лента
// @Description Возвращает продвигаемые длинные и встроенные ролики с превью.
// @Tags Videos
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список роликов"
// @Router /feed [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.feed"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	feed := h.service.HomeFeed(r.Context())
	promoted := h.service.PromotedWithThumbnailCount(r.Context())
	log.Info("home feed served", slog.Int("count", len(feed)), slog.Int("promoted", promoted))
	render.JSON(w, r, response.OKWithData(FeedResponse{
		PromotedCount: promoted,
		Videos:        feed,
	}))
}
