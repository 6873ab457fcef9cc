// Package list реализует HTTP-обработчик списка заявок на монетизацию
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

// Handler управляет HTTP-запросами на список заявок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики заявок на монетизацию.
type Service interface {
	Requests(ctx context.Context) []models.MonetizationRequest
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список заявок на монетизацию
// @Description Возвращает все заявки на монетизацию. Доступно только админу.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список заявок"
// @Failure 403 {object} response.ErrorResponse "Требуется роль admin"
// @Router /admin/monetization [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.monetization.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	requests := h.service.Requests(r.Context())
	log.Info("monetization requests listed", slog.Int("count", len(requests)))
	render.JSON(w, r, response.OKWithData(requests))
}
