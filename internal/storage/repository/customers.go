package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/backoffice/internal/models"
)

// CreateCustomer вставляет нового покупателя и возвращает сохранённую строку.
func (s *Storage) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	const op = "storage.CreateCustomer"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO customers (name, last_name, email, phone, address, user_uid)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, name, last_name, email, phone, address, user_uid`
	var result models.Customer
	row := s.DB.QueryRowContext(ctx, query,
		customer.Name, customer.LastName, customer.Email, customer.Phone,
		customer.Address, customer.UserUID)
	if err := row.Scan(&result.ID, &result.Name, &result.LastName, &result.Email,
		&result.Phone, &result.Address, &result.UserUID); err != nil {
		return nil, wrapPgError(op, err)
	}
	return &result, nil
}

// ListCustomers возвращает всех покупателей в порядке возрастания ID.
func (s *Storage) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	const op = "storage.ListCustomers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, last_name, email, phone, address, user_uid
			  FROM customers
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	result := make([]*models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err = rows.Scan(&c.ID, &c.Name, &c.LastName, &c.Email,
			&c.Phone, &c.Address, &c.UserUID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetCustomerByUserUID возвращает профиль покупателя, связанный с учётной
// записью пользователя. Если профиля нет — ErrNotFound.
func (s *Storage) GetCustomerByUserUID(ctx context.Context, userUID string) (*models.Customer, error) {
	const op = "storage.GetCustomerByUserUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, last_name, email, phone, address, user_uid
			  FROM customers
			  WHERE user_uid = $1`
	var c models.Customer
	row := s.DB.QueryRowContext(ctx, query, userUID)
	if err := row.Scan(&c.ID, &c.Name, &c.LastName, &c.Email,
		&c.Phone, &c.Address, &c.UserUID); err != nil {
		return nil, wrapPgError(op, err)
	}
	return &c, nil
}
