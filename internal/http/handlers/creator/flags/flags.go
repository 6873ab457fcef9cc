// Package flags реализует HTTP-обработчик частичного обновления
// админских флагов создателя: ранга CPM, плана, премиума и доверенного статуса.
package flags

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/lib/sl"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Handler управляет HTTP-запросами на обновление флагов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики флагов создателя.
type Service interface {
	SetCreatorFlags(ctx context.Context, username string, req models.DummyCreatorFlags) (models.CreatorStats, error)
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
// @Summary Изменить флаги создателя
// @Description Частично обновляет ранг CPM, план, премиум и доверенный статус. Доступно только админу.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param username path string true "Username создателя"
// @Param request body models.DummyCreatorFlags true "Флаги для обновления"
// @Success 200 {object} map[string]any "Обновленная статистика создателя"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Требуется роль admin"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сохранении"
// @Router /admin/creators/{username}/flags [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.creator.flags"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := chi.URLParam(r, "username")

	var req models.DummyCreatorFlags
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

	stats, err := h.service.SetCreatorFlags(r.Context(), username, req)
	if err != nil {
		log.Error("failed to update creator flags", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update creator flags"))
		return
	}

	log.Info("creator flags updated", slog.String("username", username))
	render.JSON(w, r, response.OKWithData(stats))
}
