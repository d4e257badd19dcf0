package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/backoffice/internal/models"
)

// CreateProduct вставляет новый товар и возвращает сохранённую строку.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO products (name, description, price, stock, active)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, name, description, price, stock, active`
	var result models.Product
	row := s.DB.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Price, product.Stock, product.Active)
	if err := row.Scan(&result.ID, &result.Name, &result.Description,
		&result.Price, &result.Stock, &result.Active); err != nil {
		return nil, wrapPgError(op, err)
	}
	return &result, nil
}

// ListActiveProducts возвращает активные товары в порядке возрастания ID.
// Неактивные товары в публичную выдачу не попадают.
func (s *Storage) ListActiveProducts(ctx context.Context) ([]*models.Product, error) {
	const op = "storage.ListActiveProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, stock, active
			  FROM products
			  WHERE active = TRUE
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	result := make([]*models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Active); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetProduct возвращает товар по ID.
func (s *Storage) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	const op = "storage.GetProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, stock, active
			  FROM products
			  WHERE id = $1`
	var p models.Product
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Active); err != nil {
		return nil, wrapPgError(op, err)
	}
	return &p, nil
}
