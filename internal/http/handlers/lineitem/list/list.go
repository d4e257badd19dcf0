// Package list реализует HTTP-обработчик выдачи всех позиций заказов
// с подставленным названием товара. Маршрут доступен ролям employee
// и administrator.
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

// Handler обрабатывает запросы на получение позиций заказов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка позиций.
type Service interface {
	ListLineItems(ctx context.Context) ([]*models.LineItem, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список позиций заказов
// @Description Возвращает все позиции заказов с названием товара.
// @Tags OrderLineItems
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список позиций"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /order-line-items [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.lineitem.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.ListLineItems(r.Context())
	if err != nil {
		log.Error("failed to list line items", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list line items"))
		return
	}

	log.Info("list line items", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":      len(res),
		"line_items": res,
	}))
}
