// Package list реализует HTTP-обработчик списка роликов создателя.
//
// Без параметра username возвращаются ролики текущего пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streamora/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streamora/internal/http/response"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Handler управляет HTTP-запросами на список роликов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики каталога роликов.
type Service interface {
	ByUploader(ctx context.Context, username string) []models.Video
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Ролики создателя
// @Description Возвращает ролики указанного создателя или текущего пользователя.
// @Tags Videos
// @Produce  json
// @Security BearerAuth
// @Param username query string false "Username создателя"
// @Success 200 {object} map[string]any "Список роликов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Router /videos [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := r.URL.Query().Get("username")
	if username == "" {
		session, ok := middlewarectx.SessionFromContext(r.Context())
		if !ok {
			log.Error("username not found in context")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}
		username = session.Username
	}

	videos := h.service.ByUploader(r.Context(), username)
	render.JSON(w, r, response.OKWithData(videos))
}
