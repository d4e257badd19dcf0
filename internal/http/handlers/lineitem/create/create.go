// Package create реализует HTTP-обработчик добавления позиции заказа.
//
// Позиция и пересчитанный total заказа фиксируются одной транзакцией;
// ссылка на несуществующий заказ или товар дает 404.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/backoffice/internal/http/response"
	"github.com/magabrotheeeer/backoffice/internal/lib/sl"
	"github.com/magabrotheeeer/backoffice/internal/models"
	"github.com/magabrotheeeer/backoffice/internal/storage/repository"
)

// Request — входные данные новой позиции заказа. Указатели отличают
// пропущенное поле от нулевого значения: unit_price может быть 0.
type Request struct {
	OrderID   *int     `json:"order_id" validate:"required,gt=0"`
	ProductID *int     `json:"product_id" validate:"required,gt=0"`
	Quantity  *int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice *float64 `json:"unit_price" validate:"required,gte=0"`
}

// Handler обрабатывает запросы на добавление позиции заказа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления позиции.
type Service interface {
	AddLineItem(ctx context.Context, orderID, productID, quantity int, unitPrice float64) (*models.LineItem, error)
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
// @Summary Добавить позицию заказа
// @Description Вставляет позицию и пересчитывает сумму заказа в одной транзакции.
// @Tags OrderLineItems
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Данные новой позиции"
// @Success 201 {object} map[string]any "Позиция создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Заказ или товар не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /order-line-items [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.lineitem.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded")

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	res, err := h.service.AddLineItem(r.Context(), *req.OrderID, *req.ProductID, *req.Quantity, *req.UnitPrice)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("order or product not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("order or product not found"))
			return
		}
		log.Error("failed to create line item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create line item"))
		return
	}

	log.Info("line item created",
		slog.Int("id", res.ID), slog.Int("order_id", res.OrderID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"line_item": res,
	}))
}
