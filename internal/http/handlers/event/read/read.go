// Package read реализует HTTP-обработчик чтения активного события площадки.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Handler управляет HTTP-запросами на чтение события.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики событий.
type Service interface {
	Active(ctx context.Context) *models.SiteEvent
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Активное событие
// @Description Возвращает активное событие площадки или null.
// @Tags Events
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Активное событие или null"
// @Router /event [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	event := h.service.Active(r.Context())
	if event == nil {
		log.Info("no active site event")
	}
	render.JSON(w, r, response.OKWithData(map[string]any{
		"event": event,
	}))
}
