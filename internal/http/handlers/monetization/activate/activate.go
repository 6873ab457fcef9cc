// Package activate реализует HTTP-обработчик активации монетизации:
// создатель с подтвержденным правом указывает платежные реквизиты.
package activate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/streamora/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/services/monetization"
)

// Handler управляет HTTP-запросами на активацию монетизации.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики активации.
type Service interface {
	Activate(ctx context.Context, username string, req models.DummyActivate) (models.CreatorStats, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Активировать монетизацию
// @Description Включает монетизацию создателю с подтвержденным правом, сохраняет PayPal и пин.
// @Tags Monetization
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyActivate true "Платежные реквизиты"
// @Success 200 {object} map[string]any "Обновленная статистика"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Нет права или некорректные реквизиты"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при активации"
// @Router /monetization/activate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.monetization.activate"
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

	var req models.DummyActivate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	stats, err := h.service.Activate(r.Context(), session.Username, req)
	if errors.Is(err, monetization.ErrNotEligible) ||
		errors.Is(err, monetization.ErrInvalidPayPalEmail) ||
		errors.Is(err, monetization.ErrMissingAdPin) {
		log.Warn("activation rejected", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}
	if err != nil {
		log.Error("failed to activate monetization", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not activate monetization"))
		return
	}

	log.Info("monetization activated", slog.String("username", session.Username))
	render.JSON(w, r, response.OKWithData(stats))
}
