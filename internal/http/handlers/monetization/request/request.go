// Package request реализует HTTP-обработчик подачи заявки на монетизацию.
//
// Повторная подача перезаписывает предыдущую заявку пользователя.
package request

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Handler управляет HTTP-запросами на подачу заявки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики заявок на монетизацию.
type Service interface {
	Request(ctx context.Context, session models.Session) (models.MonetizationRequest, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Подать заявку на монетизацию
// @Description Создает заявку текущего пользователя или перезаписывает существующую.
// @Tags Monetization
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Созданная заявка"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сохранении заявки"
// @Router /monetization/request [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.monetization.request"
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

	req, err := h.service.Request(r.Context(), session)
	if err != nil {
		log.Error("failed to submit monetization request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not submit monetization request"))
		return
	}

	log.Info("monetization request submitted", slog.String("username", session.Username))
	render.JSON(w, r, response.OKWithData(req))
}
