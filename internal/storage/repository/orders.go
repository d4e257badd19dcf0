package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/backoffice/internal/models"
)

// ListOrders возвращает все заказы с именем покупателя, новые первыми.
func (s *Storage) ListOrders(ctx context.Context) ([]*models.Order, error) {
	const op = "storage.ListOrders"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT o.id, o.customer_id, c.name || ' ' || c.last_name, o.order_date, o.status, o.total
			  FROM orders o
			  JOIN customers c ON o.customer_id = c.id
			  ORDER BY o.order_date DESC`
	return s.queryOrders(ctx, op, query)
}

// ListOrdersByCustomer возвращает заказы одного покупателя, новые первыми.
func (s *Storage) ListOrdersByCustomer(ctx context.Context, customerID int) ([]*models.Order, error) {
	const op = "storage.ListOrdersByCustomer"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT o.id, o.customer_id, c.name || ' ' || c.last_name, o.order_date, o.status, o.total
			  FROM orders o
			  JOIN customers c ON o.customer_id = c.id
			  WHERE o.customer_id = $1
			  ORDER BY o.order_date DESC`
	return s.queryOrders(ctx, op, query, customerID)
}

func (s *Storage) queryOrders(ctx context.Context, op, query string, args ...any) ([]*models.Order, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	result := make([]*models.Order, 0)
	for rows.Next() {
		var o models.Order
		if err = rows.Scan(&o.ID, &o.CustomerID, &o.CustomerName,
			&o.OrderDate, &o.Status, &o.Total); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetOrder возвращает заказ по ID.
func (s *Storage) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	const op = "storage.GetOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, customer_id, order_date, status, total
			  FROM orders
			  WHERE id = $1`
	var o models.Order
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.Status, &o.Total); err != nil {
		return nil, wrapPgError(op, err)
	}
	return &o, nil
}

// CreateLineItem вставляет позицию заказа и пересчитывает сумму заказа
// в одной транзакции: либо появляются и строка, и новый total, либо ничего.
// Списание stock делает триггер в базе, здесь оно не дублируется.
func (s *Storage) CreateLineItem(ctx context.Context, item models.LineItem) (*models.LineItem, error) {
	const op = "storage.CreateLineItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertQuery := `INSERT INTO order_items (order_id, product_id, quantity, unit_price, subtotal)
			    VALUES ($1, $2, $3, $4, $5)
			    RETURNING id, order_id, product_id, quantity, unit_price, subtotal`
	var result models.LineItem
	row := tx.QueryRowContext(ctx, insertQuery,
		item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal)
	if err = row.Scan(&result.ID, &result.OrderID, &result.ProductID,
		&result.Quantity, &result.UnitPrice, &result.Subtotal); err != nil {
		return nil, wrapPgError(op, err)
	}

	totalQuery := `UPDATE orders
			   SET total = (SELECT COALESCE(SUM(subtotal), 0)
					FROM order_items
					WHERE order_id = $1)
			   WHERE id = $1`
	if _, err = tx.ExecContext(ctx, totalQuery, item.OrderID); err != nil {
		return nil, wrapPgError(op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListLineItems возвращает все позиции заказов с названием товара,
// сгруппированные по заказу.
func (s *Storage) ListLineItems(ctx context.Context) ([]*models.LineItem, error) {
	const op = "storage.ListLineItems"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT li.id, li.order_id, li.product_id, p.name, li.quantity, li.unit_price, li.subtotal
			  FROM order_items li
			  JOIN products p ON li.product_id = p.id
			  ORDER BY li.order_id, li.id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	result := make([]*models.LineItem, 0)
	for rows.Next() {
		var li models.LineItem
		if err = rows.Scan(&li.ID, &li.OrderID, &li.ProductID, &li.ProductName,
			&li.Quantity, &li.UnitPrice, &li.Subtotal); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &li)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
