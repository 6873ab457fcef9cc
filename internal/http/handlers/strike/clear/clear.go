// Package clear реализует HTTP-обработчик сброса страйков создателя.
//
// Сбрасывается только счетчик: последствия прошлых страйков не откатываются.
package clear

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Handler управляет HTTP-запросами на сброс страйков.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики модерации.
type Service interface {
	ClearStrikes(ctx context.Context, username string) (models.CreatorStats, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Сбросить страйки
// @Description Обнуляет счетчик страйков создателя без отката последствий. Доступно только админу.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Param username path string true "Username создателя"
// @Success 200 {object} map[string]any "Обновленная статистика создателя"
// @Failure 403 {object} response.ErrorResponse "Требуется роль admin"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сбросе"
// @Router /admin/strikes/{username} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.strike.clear"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := chi.URLParam(r, "username")

	stats, err := h.service.ClearStrikes(r.Context(), username)
	if err != nil {
		log.Error("failed to clear strikes", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not clear strikes"))
		return
	}

	log.Info("strikes cleared", slog.String("username", username))
	render.JSON(w, r, response.OKWithData(stats))
}
