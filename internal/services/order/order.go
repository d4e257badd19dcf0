// Package order содержит бизнес-логику заказов: выдачу с учётом роли
// запрашивающего и добавление позиций с пересчётом суммы заказа.
package order

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/backoffice/internal/lib/sl"
	"github.com/magabrotheeeer/backoffice/internal/models"
	"github.com/magabrotheeeer/backoffice/internal/rabbitmq"
	"github.com/magabrotheeeer/backoffice/internal/storage/repository"
)

// OrderRepository определяет методы для работы с заказами в хранилище.
type OrderRepository interface {
	// ListOrders возвращает все заказы.
	ListOrders(ctx context.Context) ([]*models.Order, error)
	// ListOrdersByCustomer возвращает заказы одного покупателя.
	ListOrdersByCustomer(ctx context.Context, customerID int) ([]*models.Order, error)
	// GetCustomerByUserUID возвращает профиль покупателя по UID пользователя.
	GetCustomerByUserUID(ctx context.Context, userUID string) (*models.Customer, error)
	// CreateLineItem вставляет позицию и пересчитывает total в одной транзакции.
	CreateLineItem(ctx context.Context, item models.LineItem) (*models.LineItem, error)
	// ListLineItems возвращает все позиции заказов с названием товара.
	ListLineItems(ctx context.Context) ([]*models.LineItem, error)
}

// EventPublisher публикует события заказов для фоновых потребителей.
type EventPublisher interface {
	PublishLineItemCreated(event rabbitmq.LineItemEvent) error
}

// Service реализует операции над заказами и их позициями.
type Service struct {
	repo   OrderRepository
	events EventPublisher
	log    *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo OrderRepository, events EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// List возвращает заказы с учётом роли: сотрудник и администратор видят все,
// покупатель — только заказы своего профиля. Если у пользователя-покупателя
// нет связанного профиля, результат — пустой список, а не ошибка.
func (s *Service) List(ctx context.Context, identity *models.Identity) ([]*models.Order, error) {
	if identity.Role != models.RoleCustomer {
		return s.repo.ListOrders(ctx)
	}

	customer, err := s.repo.GetCustomerByUserUID(ctx, identity.UserUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []*models.Order{}, nil
		}
		return nil, err
	}
	return s.repo.ListOrdersByCustomer(ctx, customer.ID)
}

// AddLineItem добавляет позицию заказа. Subtotal считается из количества и
// цены, переданной вызывающей стороной — перерасчёта по каталожной цене нет.
// Вставка строки и новый total заказа фиксируются одной транзакцией; списание
// stock делает триггер в базе. Событие публикуется после коммита, его сбой
// запрос не проваливает.
func (s *Service) AddLineItem(ctx context.Context, orderID, productID, quantity int, unitPrice float64) (*models.LineItem, error) {
	item := models.LineItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  float64(quantity) * unitPrice,
	}

	result, err := s.repo.CreateLineItem(ctx, item)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new line item",
		slog.Int("id", result.ID), slog.Int("order_id", result.OrderID))

	event := rabbitmq.LineItemEvent{
		OrderID:   result.OrderID,
		ProductID: result.ProductID,
		Quantity:  result.Quantity,
		Subtotal:  result.Subtotal,
	}
	if err := s.events.PublishLineItemCreated(event); err != nil {
		s.log.Warn("failed to publish line item event", sl.Err(err))
	}

	return result, nil
}

// ListLineItems возвращает все позиции заказов с названием товара.
func (s *Service) ListLineItems(ctx context.Context) ([]*models.LineItem, error) {
	return s.repo.ListLineItems(ctx)
}
