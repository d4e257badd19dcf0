// Package auth содержит бизнес-логику регистрации, входа и проверки токенов.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/backoffice/internal/lib/jwt"
	"github.com/magabrotheeeer/backoffice/internal/lib/password"
	"github.com/magabrotheeeer/backoffice/internal/models"
	"github.com/magabrotheeeer/backoffice/internal/storage/repository"
)

// ErrInvalidCredentials возвращается и при неизвестном логине, и при неверном
// пароле — ответ одинаковый, чтобы не раскрывать существование учётной записи.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByLogin возвращает пользователя по username или email.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}

// Service отвечает за регистрацию пользователей и выпуск токенов доступа.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и ролью "customer".
// Дубликат username или email всплывает из базы как repository.ErrConflict.
func (s *Service) Register(ctx context.Context, username, email, rawPassword string) (*models.User, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleCustomer, // дефолтная роль при регистрации
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.UID = uid
	user.PasswordHash = ""
	return &user, nil
}

// Login проверяет пару логин/пароль и выпускает подписанный токен доступа
// с claims {sub, username, rol} и сроком жизни из конфигурации.
func (s *Service) Login(ctx context.Context, login, rawPassword string) (token, role string, err error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.UID, user.Username, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return token, user.Role, nil
}
