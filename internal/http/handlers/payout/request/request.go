// Package request реализует HTTP-обработчик подачи заявки на выплату.
//
// Сумма фиксируется в момент подачи по текущему totalEarnings создателя.
package request

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/services/monetization"
)

// Handler управляет HTTP-запросами на подачу заявки на выплату.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выплат.
type Service interface {
	RequestPayout(ctx context.Context, session models.Session) (models.PayoutRequest, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Запросить выплату
// @Description Создает заявку на выплату накопленного дохода текущего пользователя.
// @Tags Payouts
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Созданная заявка"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Недостаточный доход или нет PayPal"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сохранении заявки"
// @Router /payouts/request [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payout.request"
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

	req, err := h.service.RequestPayout(r.Context(), session)
	if errors.Is(err, monetization.ErrBelowMinimumPayout) || errors.Is(err, monetization.ErrNoPayPalEmail) {
		log.Warn("payout request rejected", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}
	if err != nil {
		log.Error("failed to submit payout request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not submit payout request"))
		return
	}

	log.Info("payout requested",
		slog.String("username", session.Username),
		slog.Float64("amount", req.Amount))
	render.JSON(w, r, response.OKWithData(req))
}
