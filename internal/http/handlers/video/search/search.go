// Package search реализует HTTP-обработчик поиска роликов по названию и тегам.
package search

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/services/video"
)

// Handler управляет HTTP-запросами на поиск.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики поиска.
type Service interface {
	Search(ctx context.Context, query string) ([]models.Video, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Найти ролики
// @Description Ищет ролики по подстроке в названии и тегах, без учета регистра.
// @Tags Videos
// @Produce  json
// @Security BearerAuth
// @Param q query string true "Поисковый запрос, минимум 2 символа"
// @Success 200 {object} map[string]any "Список найденных роликов"
// @Failure 422 {object} response.ErrorResponse "Слишком короткий запрос"
// @Router /search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.search"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("q")

	result, err := h.service.Search(r.Context(), query)
	if errors.Is(err, video.ErrQueryTooShort) {
		log.Warn("search query too short", slog.String("query", query))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("search query is too short"))
		return
	}

	log.Info("search served",
		slog.String("query", query),
		slog.Int("count", len(result)))
	render.JSON(w, r, response.OKWithData(result))
}
