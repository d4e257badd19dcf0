package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/backoffice/internal/models"
	"github.com/magabrotheeeer/backoffice/internal/services/catalog"
)

type ProductRepoMock struct {
	mock.Mock
}

func (m *ProductRepoMock) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	args := m.Called(ctx, product)
	res, _ := args.Get(0).(*models.Product)
	return res, args.Error(1)
}

func (m *ProductRepoMock) ListActiveProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]*models.Product)
	return res, args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCatalogService_ListActive(t *testing.T) {
	products := []*models.Product{
		{ID: 1, Name: "Keyboard", Price: 49.90, Stock: 12, Active: true},
		{ID: 2, Name: "Mouse", Price: 19.90, Stock: 30, Active: true},
	}

	t.Run("cache miss reads repository and fills cache", func(t *testing.T) {
		repo := new(ProductRepoMock)
		cache := new(CacheMock)
		svc := catalog.NewService(repo, cache, newNoopLogger())

		cache.On("Get", "products:active", mock.Anything).Return(false, nil).Once()
		repo.On("ListActiveProducts", mock.Anything).Return(products, nil).Once()
		cache.On("Set", "products:active", products, time.Minute).Return(nil).Once()

		got, err := svc.ListActive(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, products, got)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache error falls back to repository", func(t *testing.T) {
		repo := new(ProductRepoMock)
		cache := new(CacheMock)
		svc := catalog.NewService(repo, cache, newNoopLogger())

		cache.On("Get", "products:active", mock.Anything).
			Return(false, errors.New("redis down")).Once()
		repo.On("ListActiveProducts", mock.Anything).Return(products, nil).Once()
		cache.On("Set", "products:active", products, time.Minute).
			Return(errors.New("redis down")).Once()

		got, err := svc.ListActive(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, products, got)

		repo.AssertExpectations(t)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		repo := new(ProductRepoMock)
		cache := new(CacheMock)
		svc := catalog.NewService(repo, cache, newNoopLogger())

		cache.On("Get", "products:active", mock.Anything).Return(false, nil).Once()
		repo.On("ListActiveProducts", mock.Anything).
			Return(nil, errors.New("db error")).Once()

		got, err := svc.ListActive(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCatalogService_Create(t *testing.T) {
	repo := new(ProductRepoMock)
	cache := new(CacheMock)
	svc := catalog.NewService(repo, cache, newNoopLogger())

	newProduct := models.Product{Name: "Monitor", Price: 199.00, Stock: 5, Active: true}
	created := &models.Product{ID: 3, Name: "Monitor", Price: 199.00, Stock: 5, Active: true}

	repo.On("CreateProduct", mock.Anything, newProduct).Return(created, nil).Once()
	cache.On("Invalidate", "products:active").Return(nil).Once()

	got, err := svc.Create(context.Background(), newProduct)
	assert.NoError(t, err)
	assert.Equal(t, created, got)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
