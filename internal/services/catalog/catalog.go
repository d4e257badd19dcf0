// Package catalog содержит бизнес-логику каталога товаров с кешированием.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/backoffice/internal/lib/sl"
	"github.com/magabrotheeeer/backoffice/internal/models"
)

const activeProductsKey = "products:active"

// ProductRepository определяет методы для работы с товарами в хранилище.
type ProductRepository interface {
	// CreateProduct добавляет товар и возвращает сохранённую строку.
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	// ListActiveProducts возвращает активные товары.
	ListActiveProducts(ctx context.Context) ([]*models.Product, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует операции каталога. Публичная выдача активных товаров
// кешируется с коротким TTL; создание товара инвалидирует кеш.
type Service struct {
	repo  ProductRepository
	cache Cache
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo ProductRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// ListActive возвращает активные товары, используя кеш или репозиторий.
func (s *Service) ListActive(ctx context.Context) ([]*models.Product, error) {
	var cached []*models.Product
	found, err := s.cache.Get(activeProductsKey, &cached)
	if err != nil {
		s.log.Warn("failed to read products cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	result, err := s.repo.ListActiveProducts(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(activeProductsKey, result, time.Minute); err != nil {
		s.log.Warn("failed to cache products", sl.Err(err))
	}
	return result, nil
}

// Create добавляет новый товар и сбрасывает кеш публичной выдачи.
// Проверка роли administrator выполняется на маршруте, не здесь.
func (s *Service) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	result, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(activeProductsKey); err != nil {
		s.log.Warn("failed to invalidate products cache", sl.Err(err))
	}
	s.log.Info("created new product", slog.Int("id", result.ID))
	return result, nil
}
