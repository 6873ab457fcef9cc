// Package list реализует HTTP-обработчик полного журнала уведомлений
// для админской панели.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Handler управляет HTTP-запросами на журнал уведомлений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики уведомлений.
type Service interface {
	All(ctx context.Context) []models.Notification
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Журнал уведомлений
// @Description Возвращает все отправленные уведомления. Доступно только админу.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список уведомлений"
// @Failure 403 {object} response.ErrorResponse "Требуется роль admin"
// @Router /admin/notifications [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.notification.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	all := h.service.All(r.Context())
	log.Info("notifications listed", slog.Int("count", len(all)))
	render.JSON(w, r, response.OKWithData(all))
}
