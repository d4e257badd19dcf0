// Package customer содержит бизнес-логику работы с профилями покупателей.
package customer

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/backoffice/internal/models"
)

// CustomerRepository определяет методы для работы с покупателями в хранилище.
type CustomerRepository interface {
	// CreateCustomer добавляет покупателя и возвращает сохранённую строку.
	CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error)
	// ListCustomers возвращает всех покупателей.
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
}

// Service реализует операции над профилями покупателей.
type Service struct {
	repo CustomerRepository
	log  *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo CustomerRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// List возвращает всех покупателей.
func (s *Service) List(ctx context.Context) ([]*models.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

// Create добавляет нового покупателя. Дубликат email всплывает из базы
// как repository.ErrConflict.
func (s *Service) Create(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	result, err := s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new customer", slog.Int("id", result.ID))
	return result, nil
}
