package auth

import (
	"fmt"

	"github.com/magabrotheeeer/backoffice/internal/lib/jwt"
	"github.com/magabrotheeeer/backoffice/internal/models"
)

// Verifier проверяет токен доступа и возвращает личность запрашивающего.
// Реализация выбирается один раз на старте по config.AuthMode,
// per-request ветвления между реализациями нет.
type Verifier interface {
	Verify(token string) (*models.Identity, error)
}

// JWTVerifier — рабочая реализация: проверяет подпись и срок действия токена.
type JWTVerifier struct {
	maker jwt.Maker
}

// NewJWTVerifier создает JWTVerifier поверх переданного jwt.Maker.
func NewJWTVerifier(maker jwt.Maker) *JWTVerifier {
	return &JWTVerifier{maker: maker}
}

// Verify разбирает токен и возвращает личность из его claims.
func (v *JWTVerifier) Verify(token string) (*models.Identity, error) {
	claims, err := v.maker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &models.Identity{
		UserUID:  claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// AlwaysAdminStub — демонстрационная заглушка: пропускает любой запрос
// как администратора, токен не проверяется вовсе. Включается только
// через auth_mode: demo-admin.
type AlwaysAdminStub struct{}

// Verify возвращает фиксированную администраторскую личность.
func (AlwaysAdminStub) Verify(_ string) (*models.Identity, error) {
	return &models.Identity{
		UserUID:  "00000000-0000-0000-0000-000000000000",
		Username: "admin_demo",
		Role:     models.RoleAdministrator,
	}, nil
}

// NewVerifier выбирает реализацию Verifier по режиму из конфигурации.
func NewVerifier(mode string, maker jwt.Maker) (Verifier, error) {
	switch mode {
	case "jwt", "":
		return NewJWTVerifier(maker), nil
	case "demo-admin":
		return AlwaysAdminStub{}, nil
	default:
		return nil, fmt.Errorf("unknown auth mode: %q", mode)
	}
}
