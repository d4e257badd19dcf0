// Package list реализует HTTP-обработчик выдачи заказов с учётом роли.
//
// Сотрудник и администратор видят все заказы; покупатель — только заказы
// своего профиля, а при отсутствии связанного профиля получает пустой список.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/backoffice/internal/http/middlewarectx"
	"github.com/magabrotheeeer/backoffice/internal/http/response"
	"github.com/magabrotheeeer/backoffice/internal/lib/sl"
	"github.com/magabrotheeeer/backoffice/internal/models"
)

// Handler обрабатывает запросы на получение списка заказов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка заказов.
type Service interface {
	List(ctx context.Context, identity *models.Identity) ([]*models.Order, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список заказов
// @Description Возвращает заказы с учётом роли: покупатель видит только свои.
// @Tags Orders
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список заказов"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /orders [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.List(r.Context(), identity)
	if err != nil {
		log.Error("failed to list orders", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list orders"))
		return
	}

	log.Info("list orders",
		slog.Int("count", len(res)), slog.String("role", identity.Role))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":  len(res),
		"orders": res,
	}))
}
