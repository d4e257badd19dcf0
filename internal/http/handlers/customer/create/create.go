// Package create реализует HTTP-обработчик добавления покупателя.
// Маршрут доступен ролям employee и administrator; дубликат email дает 409.
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

// Request — входные данные нового покупателя.
type Request struct {
	Name     string  `json:"name" validate:"required"`
	LastName string  `json:"last_name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	UserUID  *string `json:"user_uid"`
}

// Handler обрабатывает запросы на добавление покупателя.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания покупателя.
type Service interface {
	Create(ctx context.Context, customer models.Customer) (*models.Customer, error)
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
// @Summary Добавить покупателя
// @Description Создает профиль покупателя. Доступно сотруднику и администратору.
// @Tags Customers
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Данные нового покупателя"
// @Success 201 {object} map[string]any "Покупатель создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 409 {object} response.ErrorResponse "Email уже занят"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /customers [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.create"

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
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	customer := models.Customer{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		UserUID:  req.UserUID,
	}

	res, err := h.service.Create(r.Context(), customer)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			log.Error("customer conflict", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("email already in use"))
			return
		}
		log.Error("failed to create customer", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create customer"))
		return
	}

	log.Info("customer created", slog.Int("id", res.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"customer": res,
	}))
}
