// Package eligibility реализует HTTP-обработчик проверки права создателя
// на монетизацию.
package eligibility

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/services/monetization"
)

// Handler управляет HTTP-запросами на проверку права.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики проверки права.
type Service interface {
	Eligibility(ctx context.Context, username string) monetization.EligibilityReport
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Проверить право на монетизацию
// @Description Возвращает развернутый отчет: пороги, одобрение админа и итоговое право.
// @Tags Monetization
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Отчет о праве на монетизацию"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Router /monetization/eligibility [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.monetization.eligibility"
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

	report := h.service.Eligibility(r.Context(), session.Username)
	render.JSON(w, r, response.OKWithData(report))
}
