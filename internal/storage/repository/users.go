package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/backoffice/internal/models"
)

// RegisterUser сохраняет нового пользователя в базу данных и возвращает его UID.
// Уникальность username и email обеспечивается ограничениями базы,
// предварительной проверки нет — гонка двух регистраций решается констрейнтом.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (username, email, password_hash, role)
			  VALUES ($1, $2, $3, $4)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Role).Scan(&newUID); err != nil {
		return "", wrapPgError(op, err)
	}
	return newUID, nil
}

// GetUserByLogin возвращает пользователя по username или email —
// форма входа принимает и то, и другое в одном поле.
func (s *Storage) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.GetUserByLogin"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, username, email, password_hash, role
			  FROM users
			  WHERE username = $1 OR email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, login)
	if err := row.Scan(&u.UID, &u.Username, &u.Email, &u.PasswordHash, &u.Role); err != nil {
		return nil, wrapPgError(op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, username, email, password_hash, role
			  FROM users
			  WHERE uid = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, userUID)
	if err := row.Scan(&u.UID, &u.Username, &u.Email, &u.PasswordHash, &u.Role); err != nil {
		return nil, wrapPgError(op, err)
	}
	return u, nil
}
