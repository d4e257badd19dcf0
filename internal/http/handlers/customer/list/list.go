// Package list реализует HTTP-обработчик выдачи списка покупателей.
// Маршрут доступен ролям employee и administrator.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/backoffice/internal/http/response"
	"github.com/magabrotheeeer/backoffice/internal/lib/sl"
	"github.com/magabrotheeeer/backoffice/internal/models"
)

// Handler обрабатывает запросы на получение списка покупателей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка покупателей.
type Service interface {
	List(ctx context.Context) ([]*models.Customer, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список покупателей
// @Description Возвращает всех покупателей. Доступно сотруднику и администратору.
// @Tags Customers
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список покупателей"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /customers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list customers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list customers"))
		return
	}

	log.Info("list customers", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":     len(res),
		"customers": res,
	}))
}
